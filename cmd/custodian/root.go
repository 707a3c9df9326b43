package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "custodian",
	Short: "Custodian - document classification and retention engine",
	Long: `Custodian scans directories of documents and classifies each file against
a catalog of sensitive-data patterns (credit cards, health records, PII and
more), computes a retention deadline from the file's timestamp, checks the
file's content hash against VirusTotal, and writes a JSON report recording
whether each file should be retained or deleted.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
