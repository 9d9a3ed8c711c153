package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oukeidos/sortpix/internal/config"
	"github.com/oukeidos/sortpix/internal/session"
)

type logOptions struct {
	tail int
}

func newLogCmd() *cobra.Command {
	opts := logOptions{}
	cmd := &cobra.Command{
		Use:   "log <image-dir>",
		Short: "Show the action log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, args[0], &opts)
		},
	}
	cmd.Flags().IntVarP(&opts.tail, "tail", "n", 0, "Show only the last N rows (0 = all)")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runLog(cmd *cobra.Command, dir string, opts *logOptions) error {
	if err := requireDir(dir); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	rows, err := session.ReadLog(logPath(dir, cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "Log is empty.")
		return nil
	}

	start := 0
	if opts.tail > 0 && opts.tail < len(rows) {
		start = len(rows) - opts.tail
	}
	for _, row := range rows[start:] {
		fmt.Fprintf(out, "%s  %-8s %-4s %-24s %s\n",
			row.Timestamp, row.Serial, row.Iteration, row.Base, row.Label)
	}

	perLabel := make(map[string]int)
	var order []string
	for _, row := range rows {
		if _, seen := perLabel[row.Label]; !seen {
			order = append(order, row.Label)
		}
		perLabel[row.Label]++
	}
	var parts []string
	for _, label := range order {
		parts = append(parts, fmt.Sprintf("%s=%d", label, perLabel[label]))
	}
	fmt.Fprintf(out, "%d row(s): %s\n", len(rows), strings.Join(parts, " "))
	return nil
}
