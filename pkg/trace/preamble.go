package trace

import (
	"context"
	"errors"
	"io"
	"strings"
)

// SkipPreamble discards lines from src up to and including the first line
// that starts with anchor. The match is a case-sensitive prefix match.
//
// An exhausted source is not an error: the returned Preamble has Found set
// to false and any later call to Next yields io.EOF.
func SkipPreamble(ctx context.Context, src Source, anchor string) (Preamble, error) {
	var p Preamble
	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		if err != nil {
			return p, err
		}

		p.Skipped++
		if strings.HasPrefix(line.Raw, anchor) {
			p.Found = true
			p.AnchorLine = line.LineNum
			return p, nil
		}
	}
}
