package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"custodian-hq/custodian/pkg/cli"
	"custodian-hq/custodian/pkg/config"
	"custodian-hq/custodian/pkg/results"
	"custodian-hq/custodian/pkg/scan"
	"custodian-hq/custodian/pkg/telemetry/logging"
)

var resultsFlags struct {
	path   string
	limit  int
	format string
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect stored scan history",
	Long: `Inspect scans persisted by the results store.

Examples:
  # List recent scans
  custodian results list

  # List against an explicit database file
  custodian results list --db history.db

  # Show the full report of one scan
  custodian results show 6ba7b810-9dad-11d1-80b4-00c04fd430c8`,
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scans, newest first",
	RunE:  listResults,
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <scan-id>",
	Short: "Print the stored report of a scan",
	Args:  cobra.ExactArgs(1),
	RunE:  showResults,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsShowCmd)

	resultsCmd.PersistentFlags().StringVar(&resultsFlags.path, "db", "", "results database path")
	resultsListCmd.Flags().IntVarP(&resultsFlags.limit, "limit", "n", 20, "maximum scans to list")
	resultsListCmd.Flags().StringVar(&resultsFlags.format, "format", "text", "output format: text, json")
}

func openResultsStore() (results.Store, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	path := cfg.Results.Path
	if resultsFlags.path != "" {
		path = resultsFlags.path
	}
	if path == "" {
		return nil, cli.NewConfigError("results.path", "no results database configured")
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Telemetry.Logging.Level,
		Format: cfg.Telemetry.Logging.Format,
	})
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}

	return results.NewSQLiteStore(results.SQLiteConfig{Path: path}, logger)
}

func listResults(cmd *cobra.Command, args []string) error {
	store, err := openResultsStore()
	if err != nil {
		return err
	}
	defer store.Close()

	scans, err := store.ListScans(cmd.Context(), resultsFlags.limit)
	if err != nil {
		return cli.NewCommandError("results list", err)
	}

	if resultsFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(scans)
	}

	if len(scans) == 0 {
		fmt.Println("No stored scans.")
		return nil
	}

	for _, summary := range scans {
		fmt.Printf("%s  %s  %4d file(s)  %s\n",
			summary.ID,
			summary.StartedAt.Format("2006-01-02 15:04:05"),
			summary.FileCount,
			summary.Directory,
		)
	}
	return nil
}

func showResults(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid scan id %q: %w", args[0], err)
	}

	store, err := openResultsStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.GetRecords(cmd.Context(), id)
	if err != nil {
		return cli.NewCommandError("results show", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no records stored for scan %s", id)
	}

	return scan.EncodeReport(os.Stdout, records)
}
