package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oukeidos/sortpix/internal/config"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show config file locations and the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Config files (later wins):")
			for _, path := range config.Paths() {
				state := "absent"
				if _, err := os.Stat(path); err == nil {
					state = "present"
				}
				fmt.Fprintf(out, "  %-9s %s\n", state, path)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Effective configuration:")
			fmt.Fprintf(out, "  extensions:  %v\n", cfg.Extensions)
			fmt.Fprintf(out, "  log_file:    %s\n", cfg.LogFile)
			fmt.Fprintf(out, "  display box: %dx%d\n", cfg.DisplayWidth, cfg.DisplayHeight)
			fmt.Fprintf(out, "  sorted:      %v\n", cfg.Sorted)
			fmt.Fprintf(out, "  seed:        %d\n", cfg.Seed)
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
