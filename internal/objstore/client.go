// Package objstore builds the S3 client shared by the S3 source and sink.
package objstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options selects the region and, optionally, static credentials. Without
// static credentials the default AWS credential chain is used.
type Options struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// NewS3Client loads the AWS config for opts and returns an S3 client.
func NewS3Client(ctx context.Context, opts Options) (*s3.Client, error) {
	if opts.Region == "" {
		return nil, fmt.Errorf("s3 region not set")
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" || opts.SecretKey != "" {
		if opts.AccessKey == "" || opts.SecretKey == "" {
			return nil, fmt.Errorf("s3 access key and secret key must be set together")
		}
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = &opts.Endpoint
			o.UsePathStyle = true
		}
	}), nil
}
