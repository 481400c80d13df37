// Package file reads local franchise files as fixed-size chunks.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderjulianmartinez/franschema/internal/source"
)

// DefaultChunkSize is used when no chunk size is configured.
const DefaultChunkSize = 64 * 1024

// Reader turns an io.Reader into a ChunkSource. Each Next call performs at
// most one Read, so chunk boundaries follow whatever the underlying reader
// returns, capped at the chunk size.
type Reader struct {
	r   io.Reader
	c   io.Closer
	buf []byte
}

var _ source.ChunkSource = (*Reader)(nil)

// NewReader wraps r. chunkSize <= 0 selects DefaultChunkSize.
func NewReader(r io.Reader, chunkSize int) *Reader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	rd := &Reader{r: r, buf: make([]byte, chunkSize)}
	if c, ok := r.(io.Closer); ok {
		rd.c = c
	}
	return rd
}

// Open opens path for chunked reading. The caller must Close the Reader.
func Open(path string, chunkSize int) (*Reader, error) {
	if path == "" {
		return nil, errors.New("file path is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("franchise file not found: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open franchise file: %w", err)
	}
	return NewReader(f, chunkSize), nil
}

// Next returns the next chunk. Empty reads are skipped so callers never see
// a zero-length chunk without an error.
func (r *Reader) Next(ctx context.Context) ([]byte, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, err := r.r.Read(r.buf)
		if n > 0 {
			if errors.Is(err, io.EOF) {
				return r.buf[:n], io.EOF
			}
			return r.buf[:n], err
		}
		if err != nil {
			return nil, err
		}
	}
}

// Close closes the underlying reader if it is an io.Closer.
func (r *Reader) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}
