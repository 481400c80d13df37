// Package filesystem writes schema artifacts into a local directory.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderjulianmartinez/franschema/internal/sink"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Sink writes each artifact to <dir>/<artifact name>.
type Sink struct {
	dir    string
	atomic bool
}

// New creates dir if needed. With atomic set, files are written to a temp
// file in dir and renamed into place.
func New(dir string, atomic bool) (*Sink, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("filesystem sink: dir is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("filesystem sink: %w", err)
	}
	return &Sink{dir: dir, atomic: atomic}, nil
}

func (s *Sink) Name() string { return "filesystem" }

// Dir returns the output directory.
func (s *Sink) Dir() string { return s.dir }

func (s *Sink) Store(ctx context.Context, a sink.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	dest, err := s.path(a.Name())
	if err != nil {
		return err
	}
	if !s.atomic {
		return os.WriteFile(dest, a.Data, filePerm)
	}
	return writeAtomic(dest, a.Data)
}

func (s *Sink) Close() error { return nil }

func (s *Sink) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.IsAbs(name) ||
		strings.ContainsAny(name, `/\`) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: unsafe name %q", sink.ErrInvalidArtifact, name)
	}
	return filepath.Join(s.dir, name), nil
}

func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, filePerm)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
