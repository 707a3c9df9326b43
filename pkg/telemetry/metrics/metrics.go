// Package metrics exposes Prometheus metrics for the scanner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ScanMetrics tracks scan activity.
//
// Metrics:
//   - custodian_files_scanned_total: files processed, by outcome
//   - custodian_category_matches_total: detector matches, by category
//   - custodian_reputation_lookups_total: reputation resolutions, by verdict
//   - custodian_dispositions_total: final dispositions, by state
//   - custodian_scan_duration_seconds: wall-clock duration of whole scans
type ScanMetrics struct {
	filesScanned      *prometheus.CounterVec
	categoryMatches   *prometheus.CounterVec
	reputationLookups *prometheus.CounterVec
	dispositions      *prometheus.CounterVec
	scanDuration      prometheus.Histogram
}

// NewScanMetrics creates and registers scan metrics with the registry.
// A nil registry registers nothing, which keeps tests quiet.
func NewScanMetrics(registry *prometheus.Registry) *ScanMetrics {
	m := &ScanMetrics{
		filesScanned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "custodian",
				Name:      "files_scanned_total",
				Help:      "Total number of files processed, by outcome (ok or error)",
			},
			[]string{"outcome"},
		),
		categoryMatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "custodian",
				Name:      "category_matches_total",
				Help:      "Total number of detector matches, by category",
			},
			[]string{"category"},
		),
		reputationLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "custodian",
				Name:      "reputation_lookups_total",
				Help:      "Total number of reputation resolutions, by verdict",
			},
			[]string{"verdict"},
		),
		dispositions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "custodian",
				Name:      "dispositions_total",
				Help:      "Total number of final dispositions, by state",
			},
			[]string{"state"},
		),
		scanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "custodian",
				Name:      "scan_duration_seconds",
				Help:      "Wall-clock duration of complete scans in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.5min
			},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.filesScanned,
			m.categoryMatches,
			m.reputationLookups,
			m.dispositions,
			m.scanDuration,
		)
	}

	return m
}

// RecordFile records one processed file by outcome ("ok" or "error").
func (m *ScanMetrics) RecordFile(outcome string) {
	if m == nil {
		return
	}
	m.filesScanned.WithLabelValues(outcome).Inc()
}

// RecordCategory records a detector match for a category.
func (m *ScanMetrics) RecordCategory(category string) {
	if m == nil {
		return
	}
	m.categoryMatches.WithLabelValues(category).Inc()
}

// RecordVerdict records a resolved reputation verdict.
func (m *ScanMetrics) RecordVerdict(verdict string) {
	if m == nil {
		return
	}
	m.reputationLookups.WithLabelValues(verdict).Inc()
}

// RecordDisposition records a final disposition state ("retained" or "deleted").
func (m *ScanMetrics) RecordDisposition(state string) {
	if m == nil {
		return
	}
	m.dispositions.WithLabelValues(state).Inc()
}

// RecordScanDuration records the wall-clock duration of a whole scan.
func (m *ScanMetrics) RecordScanDuration(seconds float64) {
	if m == nil {
		return
	}
	m.scanDuration.Observe(seconds)
}
