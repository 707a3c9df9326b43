package results

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"custodian-hq/custodian/pkg/scan"
)

// MemoryStore is an in-memory Store, used in tests and when no results
// database is configured but past-scan queries are still wanted within a
// process lifetime.
type MemoryStore struct {
	mu        sync.RWMutex
	summaries map[uuid.UUID]ScanSummary
	records   map[uuid.UUID][]scan.Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		summaries: make(map[uuid.UUID]ScanSummary),
		records:   make(map[uuid.UUID][]scan.Record),
	}
}

// SaveScan stores a scan in memory.
func (s *MemoryStore) SaveScan(ctx context.Context, summary ScanSummary, records []scan.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.summaries[summary.ID]; exists {
		return fmt.Errorf("scan %s already stored", summary.ID)
	}

	summary.FileCount = len(records)
	s.summaries[summary.ID] = summary
	s.records[summary.ID] = append([]scan.Record(nil), records...)
	return nil
}

// ListScans returns stored scans, newest first.
func (s *MemoryStore) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]ScanSummary, 0, len(s.summaries))
	for _, sum := range s.summaries {
		summaries = append(summaries, sum)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StartedAt.After(summaries[j].StartedAt)
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// GetRecords returns a stored scan's records.
func (s *MemoryStore) GetRecords(ctx context.Context, id uuid.UUID) ([]scan.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("scan %s not found", id)
	}
	return append([]scan.Record(nil), records...), nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
