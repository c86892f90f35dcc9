package main

import (
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"actionfilter"
)

func newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit filters interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ap *app) error {

				model := actionfilter.NewModel(ap.ctx, ap.query, ap.choices, ap.logger)

				_, err := tea.NewProgram(model).Run()
				return err
			})
		},
	}
}
