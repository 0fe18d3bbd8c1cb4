package trace

import (
	"context"
)

// Source provides an iterator over the lines of one trace.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Name identifies the trace in reports and errors.
	Name() string

	// Close releases any resources held by the source.
	Close() error
}
