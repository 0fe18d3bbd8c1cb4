// Package differ locates the first divergence between two execution traces.
package differ

import "github.com/ccollicutt/tracediff/pkg/trace"

// Stream identifies one side of a comparison.
type Stream string

const (
	StreamExpected Stream = "expected"
	StreamActual   Stream = "actual"
)

// Divergence is the first pair of records that disagree on a checked field.
type Divergence struct {
	// Line is the zero-based pairing index, counted from the line after
	// each trace's anchor. It is not a file line number.
	Line int `json:"line"`

	// Field is the zero-based index of the first differing field.
	Field int `json:"field"`

	// Expected is the raw expected record.
	Expected string `json:"expected"`

	// Actual is the raw actual record.
	Actual string `json:"actual"`

	// Previous is the raw actual record preceding Actual, empty when Line is 0.
	Previous string `json:"previous"`

	// ExpectedField and ActualField are the lowercased values that differ.
	ExpectedField string `json:"expected_field"`
	ActualField   string `json:"actual_field"`

	// ExpectedLineNum and ActualLineNum are 1-based file line numbers.
	ExpectedLineNum int `json:"expected_line_num"`
	ActualLineNum   int `json:"actual_line_num"`
}

// Result is the outcome of a comparison.
type Result struct {
	// Divergence is nil when all paired records agree.
	Divergence *Divergence

	// Pairs is the number of record pairs that agreed before the comparison stopped.
	Pairs int

	// Fields is the number of leading fields that were checked per record.
	Fields int

	// ExpectedPreamble and ActualPreamble describe the skipped preambles.
	ExpectedPreamble trace.Preamble
	ActualPreamble   trace.Preamble
}

// Diverged returns true if a divergence was found.
func (r *Result) Diverged() bool {
	return r.Divergence != nil
}

// Compared returns true if at least one record pair was examined.
// A false value means the comparison was vacuous.
func (r *Result) Compared() bool {
	return r.Pairs > 0 || r.Divergence != nil
}
