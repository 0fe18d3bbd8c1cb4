// Package cli provides the command-line interface for tracediff.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/tracediff/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Missing file, malformed trace, or configuration error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command. The root command performs
// the comparison itself; validate and version are subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewCompareCommand()
	rootCmd.Use = "tracediff [flags] <expected-trace> <actual-trace>"
	rootCmd.Short = "Find the first divergence between two execution traces"
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
