package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "graft",
		Short:         "graft inserts named snippets into source files after anchor lines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Preview changes without writing files")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
