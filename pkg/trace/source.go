package trace

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds memory per line; traces are streamed, never loaded whole.
const maxLineSize = 1024 * 1024

// ReaderSource implements Source over an io.Reader.
type ReaderSource struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// NewReaderSource creates a Source reading lines from r.
// The name is used in reports and error messages.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ReaderSource{
		name:    name,
		scanner: scanner,
	}
}

// Open opens a trace file for streaming.
// The returned source must be closed by the caller.
func Open(path string) (*ReaderSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening trace file %s: %w", path, err)
	}

	src := NewReaderSource(path, f)
	src.closer = f
	return src, nil
}

// Name returns the trace name.
func (s *ReaderSource) Name() string {
	return s.name
}

// Next returns the next line.
// Returns io.EOF when the trace is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.scanner.Scan() {
		s.line++
		return &Line{
			Raw:     s.scanner.Text(),
			Source:  s.name,
			LineNum: s.line,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.name, err)
	}
	return nil, io.EOF
}

// Close releases the underlying file, if any. It is safe to call more than once.
func (s *ReaderSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
