package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cfgPath string

func newRootCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:           "afedit",
		Short:         "Edit the action and event filters of a query",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "afedit.yaml", "config file, a sample is written when missing")

	return cmd
}

// withApp loads config and sets up the app around run.
func withApp(cmd *cobra.Command, run func(ap *app) error) error {

	cfg, wrote, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if wrote {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote sample config to %s\n", cfgPath)
	}

	ap, err := setup(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer ap.close()

	err = run(ap)
	if err != nil {
		ap.logger.Error(ap.ctx, "command failed", err)
	}
	return err
}
