package output

import (
	"context"
	"io"
)

// Formatter renders comparison reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds the differing field and source line numbers.
	Verbose bool

	// Color highlights the expected and actual records with ANSI escapes.
	Color bool
}
