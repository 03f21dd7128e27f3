package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/graft/internal/config"
)

func newValidateCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a patch-set configuration without touching any file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(src)
			if err != nil {
				return err
			}
			printConfigOverview(cmd.OutOrStdout(), cfg)
			return nil
		},
	}

	src.register(cmd)
	return cmd
}

func printConfigOverview(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Configuration %q is valid: %d file(s), %d patch(es)\n", cfg.Name, len(cfg.Files), cfg.TotalPatches())
	for _, f := range cfg.Files {
		fmt.Fprintf(w, "  %s (%s)\n", f.DisplayName(), f.Path)
		for _, d := range f.Descriptors() {
			fmt.Fprintf(w, "    - %s [%s anchor]\n", d.Name, d.Anchor.Mode())
		}
	}
}
