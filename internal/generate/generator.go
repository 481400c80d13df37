// Package generate turns an extracted schema block into the bytes that get
// persisted. Interpreting the schema contents is left to downstream tools;
// generators here only pass the block through or compress it.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/alexanderjulianmartinez/franschema/internal/scan"
)

// Generator derives an output buffer from one schema block. It is called once
// per block, possibly zero times per file.
type Generator interface {
	Generate(ctx context.Context, block scan.Block) ([]byte, error)
	// Ext is the file extension for generated output, including the dot.
	Ext() string
}

// Raw returns the block unchanged.
type Raw struct{}

func (Raw) Generate(ctx context.Context, block scan.Block) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return block.Data, nil
}

func (Raw) Ext() string { return ".xml" }

// Compressed wraps another generator and compresses its output.
type Compressed struct {
	Inner  Generator
	Format string
}

// New returns the generator for a compression name: "", "none", "gzip",
// "zstd" or "lz4".
func New(compression string) (Generator, error) {
	switch compression {
	case "", "none":
		return Raw{}, nil
	case "gzip", "zstd", "lz4":
		return Compressed{Inner: Raw{}, Format: compression}, nil
	default:
		return nil, fmt.Errorf("unknown compression %q", compression)
	}
}

func (c Compressed) Generate(ctx context.Context, block scan.Block) ([]byte, error) {
	data, err := c.Inner.Generate(ctx, block)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var w io.WriteCloser
	switch c.Format {
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "zstd":
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		w = zw
	case "lz4":
		w = lz4.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unknown compression %q", c.Format)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%s compress: %w", c.Format, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s compress: %w", c.Format, err)
	}
	return buf.Bytes(), nil
}

func (c Compressed) Ext() string {
	switch c.Format {
	case "gzip":
		return c.Inner.Ext() + ".gz"
	case "zstd":
		return c.Inner.Ext() + ".zst"
	case "lz4":
		return c.Inner.Ext() + ".lz4"
	default:
		return c.Inner.Ext()
	}
}

// Func adapts a function to Generator.
type Func struct {
	Fn        func(ctx context.Context, block scan.Block) ([]byte, error)
	Extension string
}

func (f Func) Generate(ctx context.Context, block scan.Block) ([]byte, error) {
	return f.Fn(ctx, block)
}

func (f Func) Ext() string { return f.Extension }
