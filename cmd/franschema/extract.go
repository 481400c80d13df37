package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexanderjulianmartinez/franschema/internal/report"
)

var extractFlags overrides

var extractCmd = &cobra.Command{
	Use:   "extract <file|s3://bucket/key>...",
	Short: "Extract schema documents from franchise files",
	Long: `Scan each file and store every schema document it contains.

Files are scanned independently, up to --concurrency at a time. One report
per file is printed to stdout; logs go to stderr.

Examples:
  franschema extract CAREER-2018
  franschema extract --out ./out -o json CAREER-*
  franschema extract --config franschema.yaml s3://saves/league/CAREER-1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cfgFile, extractFlags)
		if err != nil {
			return err
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

		reports, runErr := runner.Run(ctx, args)
		if err := writeOutput(cmd.OutOrStdout(), outputFormat, reports); err != nil {
			return err
		}
		if runErr != nil {
			return runErr
		}
		if report.Blocking(reports) {
			return errors.New("extraction finished with blocking issues")
		}
		return nil
	},
}

func init() {
	f := extractCmd.Flags()
	f.IntVar(&extractFlags.chunkSize, "chunk-size", 0, "bytes per read (overrides source.chunkSize)")
	f.StringVar(&extractFlags.outDir, "out", "", "output directory for the filesystem sink")
	f.IntVar(&extractFlags.concurrency, "concurrency", 0, "files scanned in parallel")
	f.StringVar(&extractFlags.compression, "compression", "", "none, gzip, zstd or lz4")
}
