// Package sink persists generated schema output.
package sink

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrInvalidArtifact is returned for artifacts that cannot be named or stored.
var ErrInvalidArtifact = errors.New("invalid artifact")

// Artifact is the generated output of one schema block.
type Artifact struct {
	RunID  string
	Source string // local path or s3:// URI of the scanned file
	Index  int    // block position within the file, from 0
	Offset int64  // stream offset of the block
	Ext    string
	Data   []byte
}

// Name is the stable object name of the artifact:
// <file>-<source hash>-schema-<index><ext>. The hash is the first 8 hex digits
// of the SHA-256 of the full Source, so inputs sharing a base name in
// different directories or buckets get distinct names.
func (a Artifact) Name() string {
	base := path.Base(strings.ReplaceAll(a.Source, "\\", "/"))
	return fmt.Sprintf("%s-%s-schema-%03d%s", base, SourceHash(a.Source), a.Index, a.Ext)
}

// SourceHash returns the short hash that Name uses to tell sources apart.
func SourceHash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:4])
}

// Checksum returns the hex SHA-256 of Data.
func (a Artifact) Checksum() string {
	sum := sha256.Sum256(a.Data)
	return hex.EncodeToString(sum[:])
}

// Validate checks that the artifact can be named and stored.
func (a Artifact) Validate() error {
	if a.Source == "" {
		return fmt.Errorf("%w: source is required", ErrInvalidArtifact)
	}
	if a.Index < 0 {
		return fmt.Errorf("%w: negative index", ErrInvalidArtifact)
	}
	if len(a.Data) == 0 {
		return fmt.Errorf("%w: empty data", ErrInvalidArtifact)
	}
	switch base := path.Base(strings.ReplaceAll(a.Source, "\\", "/")); base {
	case ".", "/", "..":
		return fmt.Errorf("%w: source %q has no file name", ErrInvalidArtifact, a.Source)
	}
	return nil
}

// Sink stores artifacts. Implementations must be safe for concurrent use.
type Sink interface {
	Name() string
	Store(ctx context.Context, a Artifact) error
	Close() error
}

// Fanout stores every artifact in all of its sinks.
type Fanout []Sink

func (f Fanout) Name() string {
	names := make([]string, len(f))
	for i, s := range f {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

// Store tries every sink, even after a failure, and joins the errors.
func (f Fanout) Store(ctx context.Context, a Artifact) error {
	var errs []error
	for _, s := range f {
		if err := s.Store(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() error {
	var errs []error
	for _, s := range f {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}
