package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oukeidos/sortpix/internal/config"
	"github.com/oukeidos/sortpix/internal/labels"
	"github.com/oukeidos/sortpix/internal/queue"
	"github.com/oukeidos/sortpix/internal/session"
)

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", path)
	}
	return nil
}

// runSummary prints what a labeling session over dir would see.
func runSummary(cmd *cobra.Command, dir string) error {
	if err := requireDir(dir); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	set, err := labels.Discover(dir)
	if err != nil {
		return err
	}
	images, err := queue.Scan(dir, cfg.Extensions)
	if err != nil {
		return err
	}
	rows, err := session.ReadLog(logPath(dir, cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Labels: %d\n", set.Len())
	for i := range set.Labels() {
		fmt.Fprintf(out, "  %s\n", set.Display(i))
	}
	fmt.Fprintf(out, "Images waiting: %d\n", len(images))
	fmt.Fprintf(out, "Logged actions: %d\n", len(rows))
	return nil
}

func logPath(dir string, cfg *config.Config) string {
	name := cfg.LogFile
	if name == "" {
		name = session.LogFileName
	}
	return filepath.Join(dir, name)
}
