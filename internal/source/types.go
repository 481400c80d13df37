// Package source defines where the bytes of a franchise file come from.
package source

import "context"

// ChunkSource yields a stream as an ordered, finite sequence of chunks.
//
// Next returns the next chunk, or io.EOF once the stream is exhausted. A
// chunk may accompany io.EOF. Any other error ends the stream. Chunk sizes
// are arbitrary and the returned slice is only valid until the next call.
type ChunkSource interface {
	Next(ctx context.Context) ([]byte, error)
}

// Func adapts a function to ChunkSource.
type Func func(ctx context.Context) ([]byte, error)

func (f Func) Next(ctx context.Context) ([]byte, error) { return f(ctx) }
