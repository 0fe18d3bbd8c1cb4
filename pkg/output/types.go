// Package output provides formatting and output generation for comparison results.
package output

import (
	"github.com/ccollicutt/tracediff/pkg/differ"
)

// Report is the complete comparison output.
type Report struct {
	// Expected and Actual are the names of the compared traces.
	Expected string `json:"expected"`
	Actual   string `json:"actual"`

	// Match is true when no divergence was found.
	Match bool `json:"match"`

	// Divergence is the first mismatching record pair, if any.
	Divergence *differ.Divergence `json:"divergence,omitempty"`

	// Summary provides statistics about the comparison.
	Summary Summary `json:"summary"`
}

// Summary provides statistics about the comparison.
type Summary struct {
	// PairsCompared is the number of record pairs that agreed.
	PairsCompared int `json:"pairs_compared"`

	// FieldsChecked is the number of leading fields compared per record.
	FieldsChecked int `json:"fields_checked"`

	// ExpectedPreamble and ActualPreamble count discarded lines, anchor included.
	ExpectedPreamble int `json:"expected_preamble_lines"`
	ActualPreamble   int `json:"actual_preamble_lines"`

	// Vacuous is true when no record pair could be formed.
	Vacuous bool `json:"vacuous"`
}

// NewReport creates a Report from a comparison result.
func NewReport(result *differ.Result, expected, actual string) *Report {
	return &Report{
		Expected:   expected,
		Actual:     actual,
		Match:      !result.Diverged(),
		Divergence: result.Divergence,
		Summary: Summary{
			PairsCompared:    result.Pairs,
			FieldsChecked:    result.Fields,
			ExpectedPreamble: result.ExpectedPreamble.Skipped,
			ActualPreamble:   result.ActualPreamble.Skipped,
			Vacuous:          !result.Compared(),
		},
	}
}

// HasDivergence returns true if the traces diverged.
func (r *Report) HasDivergence() bool {
	return r.Divergence != nil
}
