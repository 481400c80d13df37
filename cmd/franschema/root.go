package main

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "franschema",
	Short: "Extract schema documents from franchise save files",
	Long: `franschema scans franchise save files as a byte stream and extracts the
embedded schema documents. Each document starts at a binary start marker,
must mention "e-Schemas" before its end, and ends at </FranTkData>.

Extracted documents are written to the configured sinks: a local directory,
MySQL, PostgreSQL, S3 or a Kafka topic.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: built-in config writing to ./schemas)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	rootCmd.AddCommand(extractCmd, checkCmd, watchCmd, versionCmd)
}
