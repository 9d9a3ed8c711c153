package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/sortpix/internal/labels"
)

func newLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels <image-dir>",
		Short: "List label directories and their keyboard shortcuts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDir(args[0]); err != nil {
				return err
			}
			set, err := labels.Discover(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if set.Len() == 0 {
				fmt.Fprintln(out, "No label directories found.")
				return nil
			}
			for i := range set.Labels() {
				key, ok := set.Shortcut(i)
				if !ok {
					key = "-"
				}
				fmt.Fprintf(out, "  %-3s %s\n", key, set.Label(i).Name)
			}
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
