package file

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"
)

func drain(t *testing.T, r *Reader) [][]byte {
	t.Helper()
	var chunks [][]byte
	for {
		c, err := r.Next(context.Background())
		if len(c) > 0 {
			chunks = append(chunks, append([]byte(nil), c...))
		}
		if errors.Is(err, io.EOF) {
			return chunks
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
	}
}

func TestReader_ChunkSize(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 10)
	chunks := drain(t, NewReader(bytes.NewReader(data), 16))
	if len(chunks) != 7 {
		t.Fatalf("expected 7 chunks, got %d", len(chunks))
	}
	for i, c := range chunks[:6] {
		if len(c) != 16 {
			t.Fatalf("chunk %d has %d bytes", i, len(c))
		}
	}
	if !bytes.Equal(bytes.Join(chunks, nil), data) {
		t.Fatal("chunks do not reassemble the input")
	}
}

func TestReader_ShortReads(t *testing.T) {
	data := []byte("franchise")
	chunks := drain(t, NewReader(iotest.OneByteReader(bytes.NewReader(data)), 4))
	if len(chunks) != len(data) {
		t.Fatalf("expected one chunk per byte, got %d", len(chunks))
	}
}

func TestReader_DefaultChunkSize(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), 0)
	if len(r.buf) != DefaultChunkSize {
		t.Fatalf("expected default chunk size %d, got %d", DefaultChunkSize, len(r.buf))
	}
}

func TestReader_Error(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom), 8)
	if _, err := r.Next(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestReader_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewReader(bytes.NewReader([]byte("x")), 8)
	if _, err := r.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CAREER-TEST")
	if err := os.WriteFile(path, []byte("save data"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path, 4)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()
	if got := bytes.Join(drain(t, r), nil); string(got) != "save data" {
		t.Fatalf("unexpected content %q", got)
	}

	if _, err := Open(filepath.Join(dir, "missing"), 4); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Open(dir, 4); err == nil {
		t.Fatal("expected error for directory")
	}
	if _, err := Open("", 4); err == nil {
		t.Fatal("expected error for empty path")
	}
}
