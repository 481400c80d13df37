package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile, overrides{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Loaded config successfully")
		fmt.Fprintf(out, "Chunk size: %d\n", cfg.Source.ChunkSize)
		fmt.Fprintf(out, "Concurrency: %d\n", cfg.Concurrency)
		fmt.Fprintf(out, "Compression: %s\n", cfg.Generator.Compression)
		fmt.Fprintf(out, "Sinks: %s\n", strings.Join(cfg.Sinks.Names(), ", "))
		if cfg.Scan.MaxCandidateBytes > 0 {
			fmt.Fprintf(out, "Max candidate: %d bytes\n", cfg.Scan.MaxCandidateBytes)
		}
		return nil
	},
}
