// Package trace provides streaming access to execution-trace files.
package trace

// Line is a single raw line read from a trace.
type Line struct {
	// Raw is the original line content without its line terminator.
	Raw string

	// Source is the name of the trace this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// Preamble describes the lines discarded before the first trace record.
type Preamble struct {
	// Skipped is the number of lines discarded, including the anchor line.
	Skipped int

	// Found reports whether an anchor line was reached.
	Found bool

	// AnchorLine is the 1-based line number of the anchor, or 0 if not found.
	AnchorLine int
}
