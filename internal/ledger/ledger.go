// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger records completed export runs in a SQLite database so the
// history of incremental exports can be inspected later.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/chat-archive/pkg/types"
)

const defaultListLimit = 20

// Ledger manages the run history database.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating its parent
// directory and schema as needed.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			input_file TEXT,
			total INTEGER,
			matched INTEGER,
			exported INTEGER,
			files INTEGER,
			watermark_before TEXT,
			watermark_after TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run. A run without an ID is assigned a random UUID; the
// stored run is returned.
func (l *Ledger) Record(ctx context.Context, run types.RunSummary) (types.RunSummary, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, input_file, total, matched,
			exported, files, watermark_before, watermark_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		formatTime(run.StartedAt),
		formatTime(run.FinishedAt),
		run.InputFile,
		run.Total,
		run.Matched,
		run.Exported,
		run.Files,
		formatTime(run.WatermarkBefore),
		formatTime(run.WatermarkAfter),
	)
	if err != nil {
		return run, fmt.Errorf("recording run %s: %w", run.ID, err)
	}
	return run, nil
}

// List returns up to limit runs, newest first. A non-positive limit uses
// the default of 20.
func (l *Ledger) List(ctx context.Context, limit int) ([]types.RunSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, input_file, total, matched,
			exported, files, watermark_before, watermark_after
		FROM runs ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunSummary
	for rows.Next() {
		var (
			r                 types.RunSummary
			started, finished string
			wmBefore, wmAfter string
			input             sql.NullString
		)
		if err := rows.Scan(&r.ID, &started, &finished, &input, &r.Total, &r.Matched,
			&r.Exported, &r.Files, &wmBefore, &wmAfter); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.InputFile = input.String
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		r.WatermarkBefore = parseTime(wmBefore)
		r.WatermarkAfter = parseTime(wmAfter)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
