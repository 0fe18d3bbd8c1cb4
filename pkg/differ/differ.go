package differ

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ccollicutt/tracediff/pkg/trace"
)

// Defaults match the traces produced by the emulator test suite.
const (
	DefaultAnchor = "A"
	DefaultFields = 7
)

// Differ compares an expected trace with an actual trace.
type Differ struct {
	anchor string
	fields int
	strict bool
	logger *log.Entry

	tokenizer *trace.Tokenizer
}

// Option configures differ behavior.
type Option func(*Differ)

// WithAnchor sets the prefix that marks the end of a trace's preamble.
func WithAnchor(anchor string) Option {
	return func(d *Differ) {
		d.anchor = anchor
	}
}

// WithFields sets how many leading fields of each record are compared.
func WithFields(n int) Option {
	return func(d *Differ) {
		d.fields = n
	}
}

// WithStrict turns unequal trace lengths and missing anchors into errors.
func WithStrict(strict bool) Option {
	return func(d *Differ) {
		d.strict = strict
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Entry) Option {
	return func(d *Differ) {
		d.logger = logger
	}
}

// New creates a Differ. Without options it checks the first 7 fields of
// every record after the first line starting with "A".
func New(opts ...Option) *Differ {
	discard := log.New()
	discard.SetOutput(io.Discard)

	d := &Differ{
		anchor:    DefaultAnchor,
		fields:    DefaultFields,
		logger:    log.NewEntry(discard),
		tokenizer: trace.NewTokenizer(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CompareFiles opens both paths and compares them.
// Both files are closed before CompareFiles returns.
func CompareFiles(ctx context.Context, expectedPath, actualPath string, opts ...Option) (*Result, error) {
	expected, err := trace.Open(expectedPath)
	if err != nil {
		return nil, err
	}
	defer expected.Close()

	actual, err := trace.Open(actualPath)
	if err != nil {
		return nil, err
	}
	defer actual.Close()

	return New(opts...).Compare(ctx, expected, actual)
}

// Compare skips each trace's preamble independently, then walks both traces
// in lockstep and stops at the first pair of records that disagree on one of
// the checked fields. Comparison ends when either trace is exhausted.
func (d *Differ) Compare(ctx context.Context, expected, actual trace.Source) (*Result, error) {
	if d.fields < 1 {
		return nil, fmt.Errorf("fields must be >= 1, got %d", d.fields)
	}

	result := &Result{Fields: d.fields}

	var err error
	result.ExpectedPreamble, err = d.skipPreamble(ctx, StreamExpected, expected)
	if err != nil {
		return nil, err
	}
	result.ActualPreamble, err = d.skipPreamble(ctx, StreamActual, actual)
	if err != nil {
		return nil, err
	}

	previous := ""
	for {
		exp, err := next(ctx, expected)
		if err != nil {
			return nil, err
		}
		act, err := next(ctx, actual)
		if err != nil {
			return nil, err
		}

		if exp == nil || act == nil {
			if err := d.checkLength(ctx, result.Pairs, exp, act, expected, actual); err != nil {
				return nil, err
			}
			break
		}

		div, err := d.compareRecords(exp, act)
		if err != nil {
			return nil, err
		}
		if div != nil {
			div.Line = result.Pairs
			div.Previous = previous
			result.Divergence = div
			d.logger.WithFields(log.Fields{
				"line":          div.Line,
				"field":         div.Field,
				"expected_line": div.ExpectedLineNum,
				"actual_line":   div.ActualLineNum,
			}).Debug("traces diverged")
			return result, nil
		}

		result.Pairs++
		previous = act.Raw
	}

	d.logger.WithField("pairs", result.Pairs).Debug("traces agree")
	return result, nil
}

func (d *Differ) skipPreamble(ctx context.Context, stream Stream, src trace.Source) (trace.Preamble, error) {
	p, err := trace.SkipPreamble(ctx, src, d.anchor)
	if err != nil {
		return p, fmt.Errorf("skipping %s preamble: %w", stream, err)
	}

	d.logger.WithFields(log.Fields{
		"stream":      stream,
		"source":      src.Name(),
		"skipped":     p.Skipped,
		"anchor_line": p.AnchorLine,
	}).Debug("skipped preamble")

	if !p.Found {
		if d.strict {
			return p, &NoAnchorError{Stream: stream, Source: src.Name(), Anchor: d.anchor}
		}
		d.logger.WithField("stream", stream).Warn("no anchor line found, nothing to compare")
	}
	return p, nil
}

// compareRecords checks fields in order and returns the first mismatch.
// A record that runs out of fields before a mismatch is found is malformed.
func (d *Differ) compareRecords(exp, act *trace.Line) (*Divergence, error) {
	expTokens := d.tokenizer.Tokenize(exp.Raw)
	actTokens := d.tokenizer.Tokenize(act.Raw)

	for i := 0; i < d.fields; i++ {
		if i >= len(expTokens) {
			return nil, malformed(StreamExpected, exp, len(expTokens), d.fields)
		}
		if i >= len(actTokens) {
			return nil, malformed(StreamActual, act, len(actTokens), d.fields)
		}
		if expTokens[i] != actTokens[i] {
			return &Divergence{
				Field:           i,
				Expected:        exp.Raw,
				Actual:          act.Raw,
				ExpectedField:   expTokens[i],
				ActualField:     actTokens[i],
				ExpectedLineNum: exp.LineNum,
				ActualLineNum:   act.LineNum,
			}, nil
		}
	}
	return nil, nil
}

// checkLength runs after one trace is exhausted. In strict mode the remainder
// of the longer trace is counted and reported.
func (d *Differ) checkLength(ctx context.Context, pairs int, exp, act *trace.Line, expected, actual trace.Source) error {
	if exp == nil && act == nil {
		return nil
	}
	if !d.strict {
		d.logger.WithField("pairs", pairs).Debug("traces differ in length, ignoring unpaired records")
		return nil
	}

	lerr := &LengthMismatchError{Paired: pairs}
	if exp != nil {
		n, err := drain(ctx, expected)
		if err != nil {
			return err
		}
		lerr.ExpectedExtra = n + 1
	} else {
		n, err := drain(ctx, actual)
		if err != nil {
			return err
		}
		lerr.ActualExtra = n + 1
	}
	return lerr
}

func malformed(stream Stream, line *trace.Line, tokens, want int) error {
	return &MalformedLineError{
		Stream:  stream,
		Source:  line.Source,
		LineNum: line.LineNum,
		Line:    line.Raw,
		Tokens:  tokens,
		Want:    want,
	}
}

// next returns the next line, or nil at the end of the trace.
func next(ctx context.Context, src trace.Source) (*trace.Line, error) {
	line, err := src.Next(ctx)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return line, nil
}

func drain(ctx context.Context, src trace.Source) (int, error) {
	n := 0
	for {
		line, err := next(ctx, src)
		if err != nil {
			return n, err
		}
		if line == nil {
			return n, nil
		}
		n++
	}
}
