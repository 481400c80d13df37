// Package extract drives franchise files through the scanner, the generator
// and the configured sinks.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderjulianmartinez/franschema/internal/generate"
	"github.com/alexanderjulianmartinez/franschema/internal/report"
	"github.com/alexanderjulianmartinez/franschema/internal/scan"
	"github.com/alexanderjulianmartinez/franschema/internal/sink"
	"github.com/alexanderjulianmartinez/franschema/internal/source"
	"github.com/alexanderjulianmartinez/franschema/internal/source/file"
	s3src "github.com/alexanderjulianmartinez/franschema/internal/source/s3"
	"github.com/alexanderjulianmartinez/franschema/pkg/types"
)

// Config configures a Runner.
type Config struct {
	Sinks     []sink.Sink
	Generator generate.Generator // defaults to generate.Raw
	Logger    *slog.Logger

	ChunkSize    int
	MaxCandidate int
	// Concurrency bounds how many files Run scans at once (default 1).
	Concurrency int

	// S3 is needed only for s3:// inputs.
	S3 s3src.GetObjectAPI

	// RunID tags every artifact; a random UUID when empty.
	RunID string
}

// Runner extracts schema blocks from files. Each file gets its own scanner,
// so files are independent and may be processed concurrently.
type Runner struct {
	sinks        []sink.Sink
	gen          generate.Generator
	logger       *slog.Logger
	chunkSize    int
	maxCandidate int
	concurrency  int
	s3           s3src.GetObjectAPI
	runID        string
}

func New(cfg Config) (*Runner, error) {
	if len(cfg.Sinks) == 0 {
		return nil, fmt.Errorf("at least one sink is required")
	}
	for i, s := range cfg.Sinks {
		if s == nil {
			return nil, fmt.Errorf("sink %d is nil", i)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gen := cfg.Generator
	if gen == nil {
		gen = generate.Raw{}
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	return &Runner{
		sinks:        cfg.Sinks,
		gen:          gen,
		logger:       logger.With("run", runID),
		chunkSize:    cfg.ChunkSize,
		maxCandidate: cfg.MaxCandidate,
		concurrency:  concurrency,
		s3:           cfg.S3,
		runID:        runID,
	}, nil
}

func (r *Runner) RunID() string { return r.runID }

// Run extracts every input, at most Concurrency at a time. Reports are in
// input order. Per-file failures are recorded in the reports; the returned
// error is only set when ctx ends the run.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]*types.FileReport, error) {
	reports := make([]*types.FileReport, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			rep, err := r.RunFile(gctx, in)
			reports[i] = rep
			if err != nil && ctx.Err() != nil {
				return err
			}
			return nil
		})
	}
	err := g.Wait()
	return reports, err
}

// RunFile extracts one local path or s3://bucket/key URI. A file that cannot
// be opened yields a report with a stream error.
func (r *Runner) RunFile(ctx context.Context, input string) (*types.FileReport, error) {
	src, closeFn, err := r.open(ctx, input)
	if err != nil {
		r.logger.Error("open failed", "source", input, "error", err)
		rep := &types.FileReport{RunID: r.runID, Source: input, StreamError: err.Error(), Blocks: []types.BlockReport{}}
		report.Evaluate(rep)
		return rep, err
	}
	defer func() {
		if err := closeFn(); err != nil {
			r.logger.Warn("close failed", "source", input, "error", err)
		}
	}()
	return r.Process(ctx, input, src)
}

func (r *Runner) open(ctx context.Context, input string) (source.ChunkSource, func() error, error) {
	if obj, ok := s3src.ParseURI(input); ok {
		if r.s3 == nil {
			return nil, nil, fmt.Errorf("%s: no s3 source configured", input)
		}
		rd, err := s3src.Open(ctx, r.s3, obj, r.chunkSize)
		if err != nil {
			return nil, nil, err
		}
		return rd, rd.Close, nil
	}
	rd, err := file.Open(input, r.chunkSize)
	if err != nil {
		return nil, nil, err
	}
	return rd, rd.Close, nil
}

// Process scans src, generates output for every block and stores it in all
// sinks. Blocks found before a stream error are still stored.
func (r *Runner) Process(ctx context.Context, name string, src source.ChunkSource) (*types.FileReport, error) {
	logger := r.logger.With("source", name)
	started := time.Now()
	logger.Info("scanning")

	var opts []scan.Option
	if r.maxCandidate > 0 {
		opts = append(opts, scan.WithMaxCandidate(r.maxCandidate))
	}
	res, scanErr := scan.Extract(ctx, src, opts...)

	rep := &types.FileReport{
		RunID:        r.runID,
		Source:       name,
		BytesScanned: res.BytesScanned,
		Chunks:       res.Chunks,
		Candidates:   candidates(res.Stats),
		Blocks:       make([]types.BlockReport, 0, len(res.Blocks)),
	}
	if scanErr != nil {
		rep.StreamError = scanErr.Error()
		logger.Error("stream failed", "error", scanErr, "blocks", len(res.Blocks))
	}

	for i, b := range res.Blocks {
		if ctx.Err() != nil {
			break
		}
		rep.Blocks = append(rep.Blocks, r.store(ctx, logger, name, i, b))
	}

	rep.DurationMS = time.Since(started).Milliseconds()
	report.Evaluate(rep)
	logger.Info("finished",
		"blocks", len(rep.Blocks),
		"bytes", rep.BytesScanned,
		"rejected", res.Stats.Rejected(),
		"status", rep.Status,
		"duration", time.Since(started))

	return rep, ctx.Err()
}

func (r *Runner) store(ctx context.Context, logger *slog.Logger, name string, i int, b scan.Block) types.BlockReport {
	a := sink.Artifact{
		RunID:  r.runID,
		Source: name,
		Index:  i,
		Offset: b.Offset,
		Ext:    r.gen.Ext(),
	}
	br := types.BlockReport{Index: i, Offset: b.Offset, Size: b.Len(), Name: a.Name()}
	logger.Debug("schema block found", "index", i, "offset", b.Offset, "size", b.Len())

	data, err := r.gen.Generate(ctx, b)
	if err != nil {
		logger.Warn("generate failed", "index", i, "error", err)
		br.Errors = append(br.Errors, fmt.Sprintf("generate: %v", err))
		return br
	}
	a.Data = data
	br.SHA256 = a.Checksum()

	for _, s := range r.sinks {
		if err := s.Store(ctx, a); err != nil {
			logger.Warn("store failed", "sink", s.Name(), "artifact", a.Name(), "error", err)
			br.Errors = append(br.Errors, fmt.Sprintf("%s: %v", s.Name(), err))
			continue
		}
		br.Stored = append(br.Stored, s.Name())
	}
	logger.Debug("schema block stored", "artifact", a.Name(), "sinks", br.Stored)
	return br
}

// Close closes every sink.
func (r *Runner) Close() error {
	return sink.Fanout(r.sinks).Close()
}

func candidates(s scan.Stats) types.Candidates {
	return types.Candidates{
		Starts:      s.Starts,
		Confirmed:   s.Confirmed,
		Superseded:  s.Superseded,
		Unconfirmed: s.Unconfirmed,
		Truncated:   s.Truncated,
		Oversized:   s.Oversized,
	}
}
