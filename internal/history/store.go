// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists discovery runs and their selections in a
// SQLite database, so past searches can be listed and re-fetched
// without touching the sources again.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-scout/pkg/types"
)

const dbFile = "paper-scout.db"

const defaultMaxRuns = 20

// Run is one recorded discovery run.
type Run struct {
	ID                int64     `json:"id"`
	Query             string    `json:"query"`
	RanAt             time.Time `json:"ran_at"`
	CandidatesSeen    int       `json:"candidates_seen"`
	DuplicatesRemoved int       `json:"duplicates_removed"`
	AdapterErrors     []string  `json:"adapter_errors,omitempty"`
	Selected          int       `json:"selected"`
}

// Store manages the run history SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// NewStore opens or creates the history database at dir/paper-scout.db
// and creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = defaultMaxRuns
	}

	s := &Store{db: db, maxRuns: maxRuns}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			ran_at TEXT NOT NULL,
			candidates_seen INTEGER NOT NULL,
			duplicates_removed INTEGER NOT NULL,
			adapter_errors TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS selections (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			rank INTEGER NOT NULL,
			title TEXT NOT NULL,
			pdf_link TEXT NOT NULL,
			source TEXT,
			score REAL NOT NULL,
			PRIMARY KEY (run_id, rank)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun inserts a run and its selection, returning the run ID.
func (s *Store) RecordRun(ctx context.Context, run Run, selected []types.ScoredCandidate) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	ranAt := run.RanAt
	if ranAt.IsZero() {
		ranAt = time.Now()
	}

	var errsJSON []byte
	if len(run.AdapterErrors) > 0 {
		errsJSON, err = json.Marshal(run.AdapterErrors)
		if err != nil {
			return 0, fmt.Errorf("marshaling adapter errors: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (query, ran_at, candidates_seen, duplicates_removed, adapter_errors)
		 VALUES (?, ?, ?, ?, ?)`,
		run.Query, ranAt.Format(time.RFC3339), run.CandidatesSeen, run.DuplicatesRemoved, string(errsJSON))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for i, sc := range selected {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO selections (run_id, rank, title, pdf_link, source, score)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, i+1, sc.Title, sc.PDFLink, sc.Source, sc.Score); err != nil {
			return 0, fmt.Errorf("inserting selection %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first. A limit of zero
// uses the store default.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.query, r.ran_at, r.candidates_seen, r.duplicates_removed, r.adapter_errors,
			(SELECT COUNT(*) FROM selections sel WHERE sel.run_id = r.id)
		 FROM runs r
		 ORDER BY r.id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			ranAt    string
			errsJSON sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Query, &ranAt, &run.CandidatesSeen,
			&run.DuplicatesRemoved, &errsJSON, &run.Selected); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, ranAt); parseErr == nil {
			run.RanAt = t
		}
		if errsJSON.Valid && errsJSON.String != "" {
			json.Unmarshal([]byte(errsJSON.String), &run.AdapterErrors)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunSelection returns the selection recorded for a run, in rank order.
func (s *Store) RunSelection(ctx context.Context, runID int64) ([]types.ScoredCandidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, pdf_link, source, score
		 FROM selections
		 WHERE run_id = ?
		 ORDER BY rank`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying selection: %w", err)
	}
	defer rows.Close()

	var selected []types.ScoredCandidate
	for rows.Next() {
		var (
			sc     types.ScoredCandidate
			source sql.NullString
		)
		if err := rows.Scan(&sc.Title, &sc.PDFLink, &source, &sc.Score); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		sc.Source = source.String
		selected = append(selected, sc)
	}
	return selected, rows.Err()
}
