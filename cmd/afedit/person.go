package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"actionfilter/person"
	"actionfilter/util"
)

func newPersonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "person FILE",
		Short: "Print display headers for a yaml or json list of person records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			var persons []*person.Person
			err := util.LoadYaml(&persons, args[0])
			if err != nil {
				return err
			}

			for _, psn := range persons {
				fmt.Fprintln(cmd.OutOrStdout(), person.NewHeader(psn).Render())
			}
			return nil
		},
	}
}
