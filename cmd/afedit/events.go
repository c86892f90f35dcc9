package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"actionfilter/eventname"
)

func newEventsCommand() *cobra.Command {
	var actionStep bool

	cmd := &cobra.Command{
		Use:   "events [SEARCH]",
		Short: "List event names grouped for selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ap *app) error {

				names, err := ap.duck.EventNames(ap.ctx)
				if err != nil {
					return err
				}

				groups := eventname.Grouped(names)
				hint := eventname.Hint(groups, actionStep)
				out := cmd.OutOrStdout()

				if eventname.Disabled(groups, actionStep) {
					fmt.Fprintln(out, hint)
					return nil
				}

				if len(args) == 1 {
					groups = eventname.Search(groups, args[0])
				}

				for _, group := range groups {
					if len(group.Options) == 0 {
						continue
					}
					fmt.Fprintf(out, "%s:\n", group.Label)
					for _, opt := range group.Options {
						fmt.Fprintf(out, "  %s\t%s\n", opt.Value, opt.Label)
					}
				}

				if hint != "" {
					fmt.Fprintln(out, hint)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&actionStep, "action-step", false, "select for an action step, which needs custom events")

	return cmd
}
