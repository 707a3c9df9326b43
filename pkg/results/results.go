// Package results stores finished scan reports for later inspection.
//
// The engine itself never depends on the store: a scan produces its report
// whether or not a store is configured. The store is a local audit trail,
// not the downstream ingestion pipeline, which stays a separate collaborator
// consuming the JSON output contract.
package results

import (
	"context"
	"time"

	"github.com/google/uuid"

	"custodian-hq/custodian/pkg/scan"
)

// ScanSummary describes one stored scan.
type ScanSummary struct {
	// ID uniquely identifies the scan.
	ID uuid.UUID

	// Directory is the directory that was scanned.
	Directory string

	// StartedAt is when the scan began.
	StartedAt time.Time

	// FileCount is the number of records in the scan's report.
	FileCount int
}

// Store persists scan reports.
type Store interface {
	// SaveScan stores a scan summary and its records. Record order is
	// preserved.
	SaveScan(ctx context.Context, summary ScanSummary, records []scan.Record) error

	// ListScans returns stored scan summaries, newest first, at most limit.
	// A non-positive limit returns all.
	ListScans(ctx context.Context, limit int) ([]ScanSummary, error)

	// GetRecords returns a stored scan's records in report order.
	GetRecords(ctx context.Context, id uuid.UUID) ([]scan.Record, error)

	// Close releases the store's resources.
	Close() error
}
