// Package session persists concept-elicitation dialogue sessions in
// SQLite so an interrupted conversation can resume where it stopped.
// The dialogue state travels as an opaque JSON blob; this package never
// interprets it.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Record is one persisted dialogue session.
type Record struct {
	ID          string  `json:"id"`
	ConceptName string  `json:"concept_name"`
	Level       string  `json:"level"` // current dialogue level
	State       string  `json:"state"` // serialized dialogue state (JSON)
	StartedAt   string  `json:"started_at"`
	UpdatedAt   string  `json:"updated_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// Store is the SQLite-backed session store.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens SQLite with WAL
// mode, and runs migrations.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("session: create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sessions.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("session: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("session: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("session: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id           TEXT PRIMARY KEY,
			concept_name TEXT NOT NULL,
			level        TEXT NOT NULL,
			state        TEXT NOT NULL,
			started_at   TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at   TEXT NOT NULL DEFAULT (datetime('now')),
			completed_at TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_concept ON sessions(concept_name);
		CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save upserts a session. The updated_at timestamp always advances.
func (s *Store) Save(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("session id is required")
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, concept_name, level, state, updated_at)
		 VALUES (?, ?, ?, ?, datetime('now'))
		 ON CONFLICT(id) DO UPDATE SET
		 	concept_name = excluded.concept_name,
		 	level        = excluded.level,
		 	state        = excluded.state,
		 	updated_at   = datetime('now')`,
		r.ID, r.ConceptName, r.Level, r.State,
	)
	return err
}

// Get retrieves a session by ID.
func (s *Store) Get(id string) (Record, error) {
	row := s.db.QueryRow(
		`SELECT id, concept_name, level, state, started_at, updated_at, completed_at
		 FROM sessions WHERE id = ?`, id,
	)
	var r Record
	err := row.Scan(&r.ID, &r.ConceptName, &r.Level, &r.State, &r.StartedAt, &r.UpdatedAt, &r.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

// Complete marks a session as finished.
func (s *Store) Complete(id string) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET completed_at = datetime('now'), updated_at = datetime('now')
		 WHERE id = ? AND completed_at IS NULL`, id,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Recent returns the most recently touched sessions, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, concept_name, level, state, started_at, updated_at, completed_at
		 FROM sessions ORDER BY updated_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.ConceptName, &r.Level, &r.State, &r.StartedAt, &r.UpdatedAt, &r.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
