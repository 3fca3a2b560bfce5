// Package cli defines Cobra command definitions for the rehearse CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rehearse-dev/rehearse/internal/tui"
)

var version = "dev" // set via ldflags at build time

// NewRootCmd builds the rehearse command tree.
func NewRootCmd() *cobra.Command {
	var opts practiceOptions

	rootCmd := &cobra.Command{
		Use:   "rehearse",
		Short: "Timed interview practice with keyword feedback",
		Long: `Rehearse asks interview questions one at a time, gives you a fixed
time to answer each, and scores every answer by the keywords it covers.
At the end it shows a coverage report you can export as CSV.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// When no subcommand is provided, launch TUI if TTY, show help otherwise
			if !tui.IsTTY() {
				return cmd.Help()
			}
			return runPractice(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().String("dir", "", "Project directory holding .rehearse/ (default: current directory)")

	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newQuestionsCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newReportsCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// projectRoot returns the --dir flag or the working directory.
func projectRoot(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}
