package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"custodian-hq/custodian/pkg/catalog"
	"custodian-hq/custodian/pkg/cli"
	"custodian-hq/custodian/pkg/config"
	"custodian-hq/custodian/pkg/extract"
	"custodian-hq/custodian/pkg/reputation"
	"custodian-hq/custodian/pkg/results"
	"custodian-hq/custodian/pkg/scan"
	"custodian-hq/custodian/pkg/telemetry/logging"
	"custodian-hq/custodian/pkg/telemetry/metrics"
)

var scanFlags struct {
	directory string
	output    string
	workers   int
	catalog   string
	schedule  string
	apiKey    string
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory and report classifications and dispositions",
	Long: `Scan every regular file in a directory through the classification
pipeline: text extraction, pattern matching against the catalog, retention
calculation, content-hash reputation lookup, and disposition.

The report is written as indented JSON, one record per file in directory
order. Records for unreadable or unsupported files carry an Error field
instead of classification results.

Examples:
  # Scan with the built-in catalog, report to stdout
  custodian scan --dir /srv/documents

  # Custom catalog and report file
  custodian scan --dir /srv/documents --catalog catalog.yaml --output report.json

  # Recurring scan every night at 03:00
  custodian scan --dir /srv/documents --schedule "0 3 * * *"`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanFlags.directory, "dir", "d", "", "directory to scan")
	scanCmd.Flags().StringVarP(&scanFlags.output, "output", "o", "", "report path (default stdout)")
	scanCmd.Flags().IntVarP(&scanFlags.workers, "workers", "w", 0, "concurrent file workers")
	scanCmd.Flags().StringVar(&scanFlags.catalog, "catalog", "", "pattern catalog file (default built-in)")
	scanCmd.Flags().StringVar(&scanFlags.schedule, "schedule", "", "cron schedule for recurring scans")
	scanCmd.Flags().StringVar(&scanFlags.apiKey, "api-key", "", "VirusTotal API key")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if scanFlags.directory != "" {
		cfg.Scan.Directory = scanFlags.directory
	}
	if scanFlags.output != "" {
		cfg.Scan.Output = scanFlags.output
	}
	if scanFlags.workers > 0 {
		cfg.Scan.Workers = scanFlags.workers
	}
	if scanFlags.catalog != "" {
		cfg.Catalog.Path = scanFlags.catalog
	}
	if scanFlags.schedule != "" {
		cfg.Scan.Schedule = scanFlags.schedule
	}
	if scanFlags.apiKey != "" {
		cfg.Reputation.APIKey = scanFlags.apiKey
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if cfg.Scan.Directory == "" {
		return cli.NewConfigError("scan.directory", "no directory to scan; set --dir or scan.directory")
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Telemetry.Logging.Level,
		Format: cfg.Telemetry.Logging.Format,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cli.SetupSignalHandler())
	defer cancel()

	// Pattern catalog, built-in or from file, with optional hot reload.
	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return cli.NewCommandError("scan", err)
		}
	} else {
		cat = catalog.Default()
	}
	store := catalog.NewStore(cat)
	logger.Info("catalog loaded", "detectors", cat.Len(), "path", cfg.Catalog.Path)

	if cfg.Catalog.Watch {
		watcher, err := catalog.NewWatcher(cfg.Catalog.Path, store, logger)
		if err != nil {
			return cli.NewCommandError("scan", err)
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("catalog watcher stopped", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	// Reputation lookups fail soft: without an API key every lookup is
	// rejected upstream and the verdict degrades to unknown.
	if cfg.Reputation.APIKey == "" {
		logger.Warn("no VirusTotal API key configured, reputation verdicts will be unknown")
	}
	client := reputation.NewClient(reputation.ClientConfig{
		BaseURL:           cfg.Reputation.Endpoint,
		APIKey:            cfg.Reputation.APIKey,
		Timeout:           cfg.Reputation.Timeout,
		MaxConcurrent:     cfg.Reputation.MaxConcurrent,
		RequestsPerMinute: cfg.Reputation.RequestsPerMinute,
	})
	resolver := reputation.NewResolver(client, logger)

	var scanMetrics *metrics.ScanMetrics
	if cfg.Telemetry.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		scanMetrics = metrics.NewScanMetrics(registry)
		server := metrics.NewServer(cfg.Telemetry.Metrics.ListenAddress, registry, logger)
		go server.Start(ctx)
		logger.Info("metrics endpoint started", "address", cfg.Telemetry.Metrics.ListenAddress)
	}

	var resultsStore results.Store
	if cfg.Results.Enabled {
		sqlStore, err := results.NewSQLiteStore(results.SQLiteConfig{Path: cfg.Results.Path}, logger)
		if err != nil {
			return cli.NewCommandError("scan", err)
		}
		defer sqlStore.Close()
		resultsStore = sqlStore
	}

	scanner, err := scan.NewScanner(scan.Options{
		Catalog:    store,
		Extractors: extract.NewRegistry(),
		Resolver:   resolver,
		Workers:    cfg.Scan.Workers,
		Metrics:    scanMetrics,
		Logger:     logger,
	})
	if err != nil {
		return cli.NewCommandError("scan", err)
	}

	runOnce := func() error {
		started := time.Now()
		paths, err := scan.DiscoverFiles(cfg.Scan.Directory)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", cfg.Scan.Directory, err)
		}
		logger.Info("scan started", "directory", cfg.Scan.Directory, "files", len(paths))

		records := scanner.Scan(ctx, paths)

		if err := scan.WriteReport(cfg.Scan.Output, records); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("scan finished",
			"files", len(records),
			"duration", time.Since(started).Round(time.Millisecond),
		)

		if resultsStore != nil {
			summary := results.ScanSummary{
				ID:        uuid.New(),
				Directory: cfg.Scan.Directory,
				StartedAt: started,
				FileCount: len(records),
			}
			if err := resultsStore.SaveScan(ctx, summary, records); err != nil {
				logger.Error("failed to store scan results", "error", err)
			} else {
				logger.Debug("scan results stored", "scan_id", summary.ID)
			}
		}
		return nil
	}

	if cfg.Scan.Schedule == "" {
		if err := runOnce(); err != nil {
			return cli.NewCommandError("scan", err)
		}
		return nil
	}

	// Scheduled mode: run immediately, then on every cron tick until a
	// shutdown signal arrives.
	if err := runOnce(); err != nil {
		return cli.NewCommandError("scan", err)
	}

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Scan.Schedule, func() {
		if err := runOnce(); err != nil {
			logger.Error("scheduled scan failed", "error", err)
		}
	})
	if err != nil {
		return cli.NewConfigError("scan.schedule", err.Error())
	}
	scheduler.Start()
	logger.Info("scan scheduler started", "schedule", cfg.Scan.Schedule)

	<-ctx.Done()
	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	logger.Info("scan scheduler stopped")
	return nil
}
