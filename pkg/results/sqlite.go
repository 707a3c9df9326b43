package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"custodian-hq/custodian/pkg/scan"
)

// schema is the results database schema. Records are stored both as the
// serialized report-contract JSON and with a few extracted columns so past
// scans can be filtered without decoding every record.
const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id         TEXT PRIMARY KEY,
	directory  TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL,
	file_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS scan_records (
	scan_id   TEXT NOT NULL REFERENCES scans(id),
	position  INTEGER NOT NULL,
	file_name TEXT NOT NULL,
	hash      TEXT,
	status    TEXT,
	error     TEXT,
	record    TEXT NOT NULL,
	PRIMARY KEY (scan_id, position)
);

CREATE INDEX IF NOT EXISTS idx_scan_records_hash ON scan_records(hash);
`

// SQLiteConfig contains configuration for the SQLite results store.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (creating if necessary) the results database and
// initializes its schema.
func NewSQLiteStore(config SQLiteConfig, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database %q: %w", config.Path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", config.BusyTimeout.Milliseconds())); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create results schema: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger.With("component", "results.sqlite"),
	}

	s.logger.Info("results store initialized", "path", config.Path)
	return s, nil
}

// SaveScan stores a scan summary and its records in one transaction.
func (s *SQLiteStore) SaveScan(ctx context.Context, summary ScanSummary, records []scan.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scans (id, directory, started_at, file_count) VALUES (?, ?, ?, ?)`,
		summary.ID.String(), summary.Directory, summary.StartedAt.UTC(), len(records),
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO scan_records (scan_id, position, file_name, hash, status, error, record)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to serialize record %d: %w", i, err)
		}
		_, err = stmt.ExecContext(ctx,
			summary.ID.String(), i, rec.FileName,
			nullable(rec.Hash), nullable(rec.DeletionStatus), nullable(rec.Err),
			string(data),
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scan: %w", err)
	}

	s.logger.Debug("scan stored",
		"scan_id", summary.ID.String(),
		"records", len(records),
	)
	return nil
}

// ListScans returns stored scans, newest first.
func (s *SQLiteStore) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	query := `SELECT id, directory, started_at, file_count FROM scans ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	var summaries []ScanSummary
	for rows.Next() {
		var (
			idStr   string
			summary ScanSummary
		)
		if err := rows.Scan(&idStr, &summary.Directory, &summary.StartedAt, &summary.FileCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		summary.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid scan id %q: %w", idStr, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// GetRecords returns a stored scan's records in report order.
func (s *SQLiteStore) GetRecords(ctx context.Context, id uuid.UUID) ([]scan.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record FROM scan_records WHERE scan_id = ? ORDER BY position`,
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []scan.Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var rec scan.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode stored record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// nullable converts an empty string to NULL.
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
