// Package s3 streams franchise files stored in S3 as chunks.
package s3

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/alexanderjulianmartinez/franschema/internal/source/file"
)

// GetObjectAPI is the part of the S3 client the source needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

// Object identifies one S3 object.
type Object struct {
	Bucket string
	Key    string
}

func (o Object) String() string { return "s3://" + o.Bucket + "/" + o.Key }

// ParseURI parses s3://bucket/key. ok is false for anything else.
func ParseURI(uri string) (obj Object, ok bool) {
	rest, found := strings.CutPrefix(uri, "s3://")
	if !found {
		return Object{}, false
	}
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return Object{}, false
	}
	return Object{Bucket: bucket, Key: key}, true
}

// Open starts a GetObject download and returns its body as a chunked reader.
// The body is never buffered as a whole; the caller must Close the reader.
func Open(ctx context.Context, api GetObjectAPI, obj Object, chunkSize int) (*file.Reader, error) {
	if api == nil {
		return nil, errors.New("s3 client is required")
	}
	if obj.Bucket == "" || obj.Key == "" {
		return nil, fmt.Errorf("invalid s3 object %q", obj.String())
	}
	out, err := api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(obj.Bucket),
		Key:    aws.String(obj.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s: %w", obj, err)
	}
	return file.NewReader(out.Body, chunkSize), nil
}
