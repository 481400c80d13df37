package scan

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderjulianmartinez/franschema/internal/source"
)

// StreamError reports a chunk source failure. Blocks completed before the
// failure are still returned alongside it.
type StreamError struct {
	Offset int64
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("read chunk at offset %d: %v", e.Offset, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// Result is the outcome of scanning one stream.
type Result struct {
	Blocks       []Block
	BytesScanned int64
	Chunks       int
	Stats        Stats
}

// Data returns the raw bytes of every block, in stream order.
func (r *Result) Data() [][]byte {
	out := make([][]byte, len(r.Blocks))
	for i, b := range r.Blocks {
		out[i] = b.Data
	}
	return out
}

// Extract drains src through a new Scanner. On a source error it returns the
// partial result together with a *StreamError; the open candidate, if any, is
// discarded.
func Extract(ctx context.Context, src source.ChunkSource, opts ...Option) (*Result, error) {
	s := NewScanner(opts...)
	res := &Result{}

	finish := func() *Result {
		res.Blocks = s.Close()
		res.BytesScanned = s.Offset()
		res.Stats = s.Stats()
		return res
	}

	for {
		if err := ctx.Err(); err != nil {
			return finish(), &StreamError{Offset: s.Offset(), Err: err}
		}

		chunk, err := src.Next(ctx)
		if len(chunk) > 0 {
			_, _ = s.Write(chunk)
			res.Chunks++
		}
		if errors.Is(err, io.EOF) {
			return finish(), nil
		}
		if err != nil {
			return finish(), &StreamError{Offset: s.Offset(), Err: err}
		}
	}
}
