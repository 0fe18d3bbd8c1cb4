package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/tracediff/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile-file>",
		Short: "Validate a comparison profile",
		Long: `Validate a tracediff comparison profile without comparing any traces.

Checks:
  - YAML syntax
  - Anchor is not empty
  - Field count is at least 1
  - Output format and color mode values
  - TRACEDIFF_* environment overrides`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	profilePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", profilePath)

	cfg, err := config.Load(ctx, profilePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nProfile valid!\n")
	fmt.Fprintf(out, "  Anchor: %q\n", cfg.Anchor)
	fmt.Fprintf(out, "  Fields: %d\n", cfg.Fields)
	fmt.Fprintf(out, "  Strict: %t\n", cfg.Strict)
	fmt.Fprintf(out, "  Output: %s\n", cfg.Output)
	fmt.Fprintf(out, "  Color:  %s\n", cfg.Color)

	return nil
}
