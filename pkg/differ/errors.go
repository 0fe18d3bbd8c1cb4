package differ

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrMalformedLine indicates a compared record has too few fields.
	ErrMalformedLine = errors.New("malformed trace line")

	// ErrLengthMismatch indicates one trace has records left after the other ended.
	ErrLengthMismatch = errors.New("trace length mismatch")

	// ErrNoAnchor indicates a trace has no line starting with the anchor.
	ErrNoAnchor = errors.New("trace has no anchor line")
)

// MalformedLineError reports a record with fewer fields than are compared.
type MalformedLineError struct {
	Stream  Stream
	Source  string
	LineNum int
	Line    string
	Tokens  int
	Want    int
}

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s: %s trace %s:%d has %d field(s), need %d: %q",
		ErrMalformedLine, e.Stream, e.Source, e.LineNum, e.Tokens, e.Want, e.Line)
}

// Unwrap returns ErrMalformedLine.
func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

// LengthMismatchError reports records left unpaired after the shorter trace ended.
type LengthMismatchError struct {
	// Paired is the number of pairs compared.
	Paired int

	// ExpectedExtra and ActualExtra count unpaired records; at most one is non-zero.
	ExpectedExtra int
	ActualExtra   int
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	if e.ExpectedExtra > 0 {
		return fmt.Sprintf("%s: actual trace ended after %d record(s), expected has %d more",
			ErrLengthMismatch, e.Paired, e.ExpectedExtra)
	}
	return fmt.Sprintf("%s: expected trace ended after %d record(s), actual has %d more",
		ErrLengthMismatch, e.Paired, e.ActualExtra)
}

// Unwrap returns ErrLengthMismatch.
func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

// NoAnchorError reports a trace whose preamble never ended.
type NoAnchorError struct {
	Stream Stream
	Source string
	Anchor string
}

// Error implements the error interface.
func (e *NoAnchorError) Error() string {
	return fmt.Sprintf("%s: %s trace %s has no line starting with %q",
		ErrNoAnchor, e.Stream, e.Source, e.Anchor)
}

// Unwrap returns ErrNoAnchor.
func (e *NoAnchorError) Unwrap() error {
	return ErrNoAnchor
}
