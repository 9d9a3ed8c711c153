package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/sortpix/internal/licenses"
)

func newAboutCmd() *cobra.Command {
	var showLicense bool
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description and link",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if showLicense {
				fmt.Fprint(out, licenses.Text())
				return
			}
			fmt.Fprintln(out, "sortpix - sort loose images into labeled sub-directories")
			fmt.Fprintln(out, "https://github.com/oukeidos/sortpix")
		},
	}
	cmd.Flags().BoolVar(&showLicense, "license", false, "print the license text")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
