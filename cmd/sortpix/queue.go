package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oukeidos/sortpix/internal/config"
	"github.com/oukeidos/sortpix/internal/exifinfo"
	"github.com/oukeidos/sortpix/internal/queue"
	"github.com/oukeidos/sortpix/internal/session"
)

type queueOptions struct {
	verbose bool
}

func newQueueCmd() *cobra.Command {
	opts := queueOptions{}
	cmd := &cobra.Command{
		Use:   "queue <image-dir>",
		Short: "List the images waiting to be labeled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueue(cmd, args[0], &opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show parse status and EXIF capture time per image")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runQueue(cmd *cobra.Command, dir string, opts *queueOptions) error {
	if err := requireDir(dir); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	images, err := queue.Scan(dir, cfg.Extensions)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range images {
		if !opts.verbose {
			fmt.Fprintln(out, name)
			continue
		}
		status := "ok"
		if _, err := session.ParseName(name); err != nil {
			status = "unparseable"
		}
		captured := "-"
		if t, ok := exifinfo.CaptureTime(filepath.Join(dir, name)); ok {
			captured = t.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(out, "%-40s %-12s %s\n", name, status, captured)
	}
	fmt.Fprintf(out, "%d image(s)\n", len(images))
	return nil
}
