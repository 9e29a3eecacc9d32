// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists scan outcomes in a SQLite database so authors
// can see how a document's reference hygiene changes across revisions.
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

	"github.com/pdiddy/texsweep/pkg/types"
)

const dbFile = "history.db"

// Store manages the scan history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Run is one recorded scan of a document.
type Run struct {
	ID        int64     `json:"id" yaml:"id"`
	Document  string    `json:"document" yaml:"document"`
	ScannedAt time.Time `json:"scanned_at" yaml:"scanned_at"`

	Anchors   int `json:"anchors" yaml:"anchors"`
	Citations int `json:"citations" yaml:"citations"`
	Equations int `json:"equations" yaml:"equations"`

	UnreferencedAnchors   int `json:"unreferenced_anchors" yaml:"unreferenced_anchors"`
	UnreferencedEquations int `json:"unreferenced_equations" yaml:"unreferenced_equations"`

	// AnchorNames lists the unreferenced label names at the time of the run.
	AnchorNames []string `json:"anchor_names,omitempty" yaml:"anchor_names,omitempty"`
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the directory and schema as needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
			document TEXT NOT NULL,
			scanned_at TEXT NOT NULL,
			anchors INTEGER NOT NULL,
			citations INTEGER NOT NULL,
			equations INTEGER NOT NULL,
			unreferenced_anchors INTEGER NOT NULL,
			unreferenced_equations INTEGER NOT NULL,
			anchor_names TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_document ON runs(document)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts the outcome of one analysis as a new run.
func (s *Store) Record(ctx context.Context, a *types.Analysis) error {
	names := make([]string, len(a.UnreferencedAnchors))
	for i, anchor := range a.UnreferencedAnchors {
		names[i] = anchor.Name
	}
	namesJSON, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("marshaling anchor names: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (document, scanned_at, anchors, citations, equations,
			unreferenced_anchors, unreferenced_equations, anchor_names)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Document,
		time.Now().UTC().Format(time.RFC3339Nano),
		a.AnchorCount,
		a.CitationCount,
		a.EquationCount,
		len(a.UnreferencedAnchors),
		len(a.UnreferencedEquations),
		string(namesJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first. A non-empty document
// filters to runs of that document; limit <= 0 uses the store default.
func (s *Store) Recent(ctx context.Context, document string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, document, scanned_at, anchors, citations, equations,
			unreferenced_anchors, unreferenced_equations, anchor_names
		FROM runs`
	var args []any
	if document != "" {
		query += ` WHERE document = ?`
		args = append(args, document)
	}
	query += ` ORDER BY scanned_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			scannedAt string
			namesJSON sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Document, &scannedAt,
			&run.Anchors, &run.Citations, &run.Equations,
			&run.UnreferencedAnchors, &run.UnreferencedEquations, &namesJSON); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}

		run.ScannedAt, err = time.Parse(time.RFC3339Nano, scannedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", scannedAt, err)
		}

		if namesJSON.Valid && namesJSON.String != "" {
			if err := json.Unmarshal([]byte(namesJSON.String), &run.AnchorNames); err != nil {
				return nil, fmt.Errorf("parsing anchor names: %w", err)
			}
		}

		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
