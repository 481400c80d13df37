// Package s3 uploads schema artifacts to an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/alexanderjulianmartinez/franschema/internal/sink"
)

// Uploader is satisfied by *manager.Uploader.
type Uploader interface {
	Upload(ctx context.Context, input *awss3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type Sink struct {
	up     Uploader
	bucket string
	prefix string
}

// New wraps client in a multipart-capable uploader.
func New(client manager.UploadAPIClient, bucket, prefix string) (*Sink, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 sink: client is required")
	}
	return NewWithUploader(manager.NewUploader(client), bucket, prefix)
}

func NewWithUploader(up Uploader, bucket, prefix string) (*Sink, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 sink: bucket is required")
	}
	return &Sink{up: up, bucket: bucket, prefix: prefix}, nil
}

func (s *Sink) Name() string { return "s3" }

// Key is <prefix><run id>/<artifact name>.
func (s *Sink) Key(a sink.Artifact) string {
	key := a.Name()
	if a.RunID != "" {
		key = a.RunID + "/" + key
	}
	if s.prefix == "" {
		return key
	}
	return strings.TrimSuffix(s.prefix, "/") + "/" + key
}

func (s *Sink) Store(ctx context.Context, a sink.Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}

	ctxUpload, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	_, err := s.up.Upload(ctxUpload, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.Key(a)),
		Body:        bytes.NewReader(a.Data),
		ContentType: aws.String(contentType(a.Ext)),
		Metadata: map[string]string{
			"source": a.Source,
			"offset": fmt.Sprint(a.Offset),
			"sha256": a.Checksum(),
		},
	})
	if err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

func (s *Sink) Close() error { return nil }

func contentType(ext string) string {
	switch {
	case strings.HasSuffix(ext, ".gz"):
		return "application/gzip"
	case strings.HasSuffix(ext, ".zst"):
		return "application/zstd"
	case strings.HasSuffix(ext, ".lz4"):
		return "application/x-lz4"
	case ext == ".xml":
		return "application/xml"
	default:
		return "application/octet-stream"
	}
}
