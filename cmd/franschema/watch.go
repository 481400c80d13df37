package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderjulianmartinez/franschema/internal/watch"
)

var (
	watchFlags    overrides
	watchPattern  string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Extract schemas whenever a franchise file in dir is saved",
	Long: `Watch a save directory and re-run extraction for every file matching
source.pattern (or --pattern) once it has stopped changing. A report is
printed for each extraction. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cfgFile, watchFlags)
		if err != nil {
			return err
		}
		if watchPattern != "" {
			cfg.Source.Pattern = watchPattern
		}
		logger := newLogger(cfg.Log, cmd.ErrOrStderr())

		runner, err := newRunner(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := runner.Close(); err != nil {
				logger.Warn("closing sinks", "error", err)
			}
		}()

		w, err := watch.New(watch.Config{
			Dir:      args[0],
			Pattern:  cfg.Source.Pattern,
			Debounce: watchDebounce,
			Logger:   logger,
			Handle: func(ctx context.Context, path string) {
				rep, err := runner.RunFile(ctx, path)
				if err != nil {
					logger.Error("extract failed", "path", path, "error", err)
				}
				if err := writeOutput(cmd.OutOrStdout(), outputFormat, rep); err != nil {
					logger.Error("write report", "error", err)
				}
			},
		})
		if err != nil {
			return err
		}
		return w.Run(ctx)
	},
}

func init() {
	f := watchCmd.Flags()
	f.StringVar(&watchPattern, "pattern", "", "file name pattern (overrides source.pattern)")
	f.DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before a changed file is scanned")
	f.IntVar(&watchFlags.chunkSize, "chunk-size", 0, "bytes per read (overrides source.chunkSize)")
	f.StringVar(&watchFlags.outDir, "out", "", "output directory for the filesystem sink")
	f.StringVar(&watchFlags.compression, "compression", "", "none, gzip, zstd or lz4")
}
