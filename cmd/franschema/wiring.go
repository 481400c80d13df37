package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderjulianmartinez/franschema/internal/config"
	"github.com/alexanderjulianmartinez/franschema/internal/extract"
	"github.com/alexanderjulianmartinez/franschema/internal/generate"
	"github.com/alexanderjulianmartinez/franschema/internal/objstore"
	"github.com/alexanderjulianmartinez/franschema/internal/sink"
	"github.com/alexanderjulianmartinez/franschema/internal/sink/filesystem"
	"github.com/alexanderjulianmartinez/franschema/internal/sink/kafka"
	"github.com/alexanderjulianmartinez/franschema/internal/sink/mysql"
	"github.com/alexanderjulianmartinez/franschema/internal/sink/postgres"
	sinks3 "github.com/alexanderjulianmartinez/franschema/internal/sink/s3"
)

// overrides are command-line values that take precedence over the config.
type overrides struct {
	chunkSize   int
	outDir      string
	concurrency int
	compression string
}

func loadConfig(path string, o overrides) (*config.Config, error) {
	var cfg *config.Config
	if path == "" {
		cfg = config.Default()
	} else {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if o.chunkSize > 0 {
		cfg.Source.ChunkSize = o.chunkSize
	}
	if o.concurrency > 0 {
		cfg.Concurrency = o.concurrency
	}
	if o.compression != "" {
		cfg.Generator.Compression = o.compression
	}
	if o.outDir != "" {
		if cfg.Sinks.Filesystem == nil {
			cfg.Sinks.Filesystem = &config.FilesystemConfig{}
		}
		cfg.Sinks.Filesystem.Dir = o.outDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildSinks opens every configured sink, each wrapped with the retry policy.
// Sinks opened before a failure are closed again.
func buildSinks(ctx context.Context, cfg *config.Config) ([]sink.Sink, error) {
	var out []sink.Sink
	fail := func(err error) ([]sink.Sink, error) {
		_ = sink.Fanout(out).Close()
		return nil, err
	}
	add := func(s sink.Sink) {
		out = append(out, sink.WithRetry(s, cfg.Retry.Attempts, cfg.Retry.Delay))
	}

	sc := cfg.Sinks
	if fs := sc.Filesystem; fs != nil {
		atomic := fs.Atomic == nil || *fs.Atomic
		s, err := filesystem.New(fs.Dir, atomic)
		if err != nil {
			return fail(err)
		}
		add(s)
	}
	if m := sc.MySQL; m != nil {
		s, err := mysql.New(ctx, m.DSN, m.Table)
		if err != nil {
			return fail(fmt.Errorf("mysql sink: %w", err))
		}
		add(s)
	}
	if p := sc.Postgres; p != nil {
		s, err := postgres.New(ctx, p.DSN)
		if err != nil {
			return fail(fmt.Errorf("postgres sink: %w", err))
		}
		add(s)
	}
	if c := sc.S3; c != nil {
		client, err := objstore.NewS3Client(ctx, s3Options(c))
		if err != nil {
			return fail(fmt.Errorf("s3 sink: %w", err))
		}
		s, err := sinks3.New(client, c.Bucket, c.Prefix)
		if err != nil {
			return fail(err)
		}
		add(s)
	}
	if k := sc.Kafka; k != nil {
		s, err := kafka.New(k.Brokers, k.Topic)
		if err != nil {
			return fail(fmt.Errorf("kafka sink: %w", err))
		}
		add(s)
	}
	return out, nil
}

func s3Options(c *config.S3Config) objstore.Options {
	return objstore.Options{
		Region:    c.Region,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Endpoint:  c.Endpoint,
	}
}

func newRunner(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*extract.Runner, error) {
	gen, err := generate.New(cfg.Generator.Compression)
	if err != nil {
		return nil, err
	}
	sinks, err := buildSinks(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rc := extract.Config{
		Sinks:        sinks,
		Generator:    gen,
		Logger:       logger,
		ChunkSize:    cfg.Source.ChunkSize,
		MaxCandidate: cfg.Scan.MaxCandidateBytes,
		Concurrency:  cfg.Concurrency,
	}
	if c := cfg.Source.S3; c != nil {
		client, err := objstore.NewS3Client(ctx, s3Options(c))
		if err != nil {
			_ = sink.Fanout(sinks).Close()
			return nil, fmt.Errorf("s3 source: %w", err)
		}
		rc.S3 = client
	}

	r, err := extract.New(rc)
	if err != nil {
		_ = sink.Fanout(sinks).Close()
		return nil, err
	}
	return r, nil
}
