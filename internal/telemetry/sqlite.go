package telemetry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"normativa/internal/model"
)

// SQLiteStore is the default persistent backend. WAL mode keeps
// concurrent request-path appends from blocking on the aggregation
// reads.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id              TEXT PRIMARY KEY,
	created_at      INTEGER NOT NULL,
	model_variant   TEXT NOT NULL,
	issues          TEXT NOT NULL,
	fixes           TEXT NOT NULL,
	autofix_applied INTEGER NOT NULL,
	error_count     INTEGER NOT NULL,
	warn_count      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_events_created_at ON audit_events(created_at);

CREATE TABLE IF NOT EXISTS builder_promotions (
	fix_code      TEXT PRIMARY KEY,
	presence_rate REAL NOT NULL,
	window_days   INTEGER NOT NULL,
	promoted      INTEGER NOT NULL,
	promoted_at   INTEGER NOT NULL
);
`

// OpenSQLite opens (and if needed creates) the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append persists one event
func (s *SQLiteStore) Append(ctx context.Context, ev model.TelemetryEvent) error {
	issues, err := json.Marshal(ev.Issues)
	if err != nil {
		return fmt.Errorf("encode issues: %w", err)
	}
	fixes, err := json.Marshal(ev.Fixes)
	if err != nil {
		return fmt.Errorf("encode fixes: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO audit_events (id, created_at, model_variant, issues, fixes, autofix_applied, error_count, warn_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.CreatedAt.UnixMilli(), string(ev.ModelVariant), string(issues), string(fixes),
		boolToInt(ev.AutofixApplied), ev.ErrorCount, ev.WarnCount)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// EventsSince returns all events created at or after the cutoff,
// oldest first
func (s *SQLiteStore) EventsSince(ctx context.Context, cutoff time.Time) ([]model.TelemetryEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, model_variant, issues, fixes, autofix_applied, error_count, warn_count
		 FROM audit_events WHERE created_at >= ? ORDER BY created_at ASC`,
		cutoff.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []model.TelemetryEvent
	for rows.Next() {
		var (
			ev            model.TelemetryEvent
			createdAt     int64
			variant       string
			issues, fixes string
			autofix       int
		)
		if err := rows.Scan(&ev.ID, &createdAt, &variant, &issues, &fixes, &autofix, &ev.ErrorCount, &ev.WarnCount); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.CreatedAt = time.UnixMilli(createdAt)
		ev.ModelVariant = model.Variant(variant)
		ev.AutofixApplied = autofix != 0
		if err := json.Unmarshal([]byte(issues), &ev.Issues); err != nil {
			return nil, fmt.Errorf("decode issues for event %s: %w", ev.ID, err)
		}
		if err := json.Unmarshal([]byte(fixes), &ev.Fixes); err != nil {
			return nil, fmt.Errorf("decode fixes for event %s: %w", ev.ID, err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// RecordPromotion inserts the record unless the fix code already has
// one. INSERT OR IGNORE keeps concurrent promotion runs idempotent.
func (s *SQLiteStore) RecordPromotion(ctx context.Context, rec model.PromotionRecord) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO builder_promotions (fix_code, presence_rate, window_days, promoted, promoted_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.FixCode, rec.PresenceRate, rec.WindowDays, boolToInt(rec.Promoted), rec.PromotedAt.UnixMilli())
	if err != nil {
		return false, fmt.Errorf("record promotion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record promotion: %w", err)
	}
	return n > 0, nil
}

// PromotedCodes lists the fix codes with a promotion record
func (s *SQLiteStore) PromotedCodes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fix_code FROM builder_promotions WHERE promoted = 1 ORDER BY fix_code`)
	if err != nil {
		return nil, fmt.Errorf("query promotions: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
