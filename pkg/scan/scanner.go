package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"custodian-hq/custodian/pkg/catalog"
	"custodian-hq/custodian/pkg/classify"
	"custodian-hq/custodian/pkg/extract"
	"custodian-hq/custodian/pkg/reputation"
	"custodian-hq/custodian/pkg/retention"
	"custodian-hq/custodian/pkg/telemetry/metrics"
)

// Resolver is the reputation capability the scanner depends on.
// *reputation.Resolver satisfies it; tests substitute fixed verdicts.
type Resolver interface {
	Resolve(ctx context.Context, hash string) reputation.Result
}

// Options configures a Scanner.
type Options struct {
	// Catalog holds the active pattern catalog. Required.
	Catalog *catalog.Store

	// Extractors is the format-reader registry. Required.
	Extractors *extract.Registry

	// Resolver resolves content hashes to reputation verdicts. Required.
	Resolver Resolver

	// Workers bounds the number of files processed concurrently.
	// Defaults to 4.
	Workers int

	// Metrics receives scan metrics. Optional.
	Metrics *metrics.ScanMetrics

	// Logger receives scan logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Now supplies the current time for disposition evaluation.
	// Defaults to time.Now; tests pin it.
	Now func() time.Time
}

// Scanner runs the classification pipeline over a set of files.
type Scanner struct {
	catalog    *catalog.Store
	extractors *extract.Registry
	resolver   Resolver
	workers    int
	metrics    *metrics.ScanMetrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewScanner creates a scanner from options.
func NewScanner(opts Options) (*Scanner, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("scanner requires a catalog")
	}
	if opts.Extractors == nil {
		return nil, fmt.Errorf("scanner requires an extractor registry")
	}
	if opts.Resolver == nil {
		return nil, fmt.Errorf("scanner requires a reputation resolver")
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Scanner{
		catalog:    opts.Catalog,
		extractors: opts.Extractors,
		resolver:   opts.Resolver,
		workers:    opts.Workers,
		metrics:    opts.Metrics,
		logger:     opts.Logger.With("component", "scan.scanner"),
		now:        opts.Now,
	}, nil
}

// Scan processes every file through the per-file pipeline using a bounded
// worker pool. The returned slice has exactly one record per input path, in
// input order. Cancelling the context stops new files from being picked up;
// files already processed keep their results and the rest become error
// records, so the one-record-per-file guarantee holds even on abort.
func (s *Scanner) Scan(ctx context.Context, paths []string) []Record {
	start := time.Now()

	// Snapshot the catalog once so a hot reload mid-scan cannot split the
	// scan across two policies.
	classifier := classify.New(s.catalog.Current())

	records := make([]Record, len(paths))
	processed := make([]bool, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := s.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				records[idx] = s.processFile(ctx, classifier, paths[idx])
				processed[idx] = true
			}
		}()
	}

	// Feed jobs until done or cancelled. In-flight files finish; the rest
	// are marked below.
feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i, ok := range processed {
		if !ok {
			records[i] = errRecord(filepath.Base(paths[i]),
				fmt.Errorf("scan cancelled before file was processed"))
			s.metrics.RecordFile("error")
		}
	}

	elapsed := time.Since(start)
	s.metrics.RecordScanDuration(elapsed.Seconds())
	s.logger.Info("scan complete",
		"files", len(paths),
		"duration_ms", elapsed.Milliseconds(),
	)

	return records
}

// processFile runs one file through extract -> classify -> hash ->
// reputation -> disposition and assembles its record. Failures to read or
// extract the file are fatal for this file only and produce an error record.
func (s *Scanner) processFile(ctx context.Context, classifier *classify.Classifier, path string) Record {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		s.logger.Warn("failed to stat file", "file", name, "error", err)
		s.metrics.RecordFile("error")
		return errRecord(name, err)
	}

	text, err := s.extractors.Extract(path)
	if err != nil {
		s.logger.Warn("text extraction failed", "file", name, "error", err)
		s.metrics.RecordFile("error")
		return errRecord(name, err)
	}

	result := classifier.Classify(text)
	for _, c := range result.Categories {
		s.metrics.RecordCategory(string(c))
	}

	hash, err := HashFile(path)
	if err != nil {
		s.logger.Warn("hashing failed", "file", name, "error", err)
		s.metrics.RecordFile("error")
		return errRecord(name, err)
	}

	rep := s.resolver.Resolve(ctx, hash)
	s.metrics.RecordVerdict(rep.Verdict.String())

	deletionDate := retention.DeletionDate(info.ModTime(), result.RetentionDays)
	disposition := retention.Resolve(s.now(), deletionDate, rep.Verdict)

	if disposition.State == retention.StateDeleted {
		s.metrics.RecordDisposition("deleted")
	} else {
		s.metrics.RecordDisposition("retained")
	}
	s.metrics.RecordFile("ok")

	s.logger.Debug("file classified",
		"file", name,
		"categories", len(result.Categories),
		"retention_days", result.RetentionDays,
		"verdict", rep.Verdict.String(),
	)

	return Record{
		FileName:         name,
		Classifications:  result.CategoryNames(),
		VirusTotalResult: verdictDisplay(rep.Verdict),
		RetentionDays:    result.RetentionDays,
		DeletionDate:     formatDate(deletionDate),
		DeletionStatus:   statusDisplay(disposition),
		Hash:             hash,
	}
}
