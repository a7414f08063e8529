package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"lf2-hq/datafile/pkg/cli"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lf2data",
	Short: "lf2data - Little Fighter 2 object data toolkit",
	Long: `lf2data is a parser and validation toolkit for Little Fighter 2
object data files.

It understands both plain-text object data and the classic encoded .dat
format, and provides:
  - Single-file parsing with precise, positioned errors
  - Batch validation of data directories (lint)
  - A catalog of parsed objects backed by memory or SQLite
  - Continuous re-parsing via filesystem watching and cron rescans`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
