// Package main provides the entry point for the readmetrics CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readmetrics/readmetrics/cmd/readmetrics/commands"
	"github.com/readmetrics/readmetrics/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "readmetrics",
		Short: "Readmetrics - profile README activity statistics generator",
		Long: `Readmetrics aggregates coding-activity signals into text statistics
and keeps the managed section of a profile README up to date.

Commands:
  run       Generate the report and update the profile README
  preview   Render report blocks locally without touching GitHub`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "readmetrics %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
