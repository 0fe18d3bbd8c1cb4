package output

import (
	"context"
	"fmt"
	"io"
)

const (
	colorRed   = "\033[1;31m"
	colorGreen = "\033[1;32m"
	colorReset = "\033[0m"
)

// TextFormatter formats reports as human-readable text.
// A report without a divergence produces no output at all.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the divergence as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if !report.HasDivergence() {
		return nil
	}

	div := report.Divergence
	fmt.Fprintf(w, "Error at line %d:\n", div.Line)
	fmt.Fprintf(w, "Expected: %s\n", f.paint(colorGreen, div.Expected))
	fmt.Fprintf(w, "Actual:   %s\n", f.paint(colorRed, div.Actual))
	fmt.Fprintf(w, "Previous: %s\n", div.Previous)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Field:    %d (expected %q, actual %q)\n",
			div.Field, div.ExpectedField, div.ActualField)
		fmt.Fprintf(w, "Source:   %s:%d, %s:%d\n",
			report.Expected, div.ExpectedLineNum,
			report.Actual, div.ActualLineNum)
	}
	return nil
}

func (f *TextFormatter) paint(color, s string) string {
	if !f.opts.Color {
		return s
	}
	return color + s + colorReset
}
