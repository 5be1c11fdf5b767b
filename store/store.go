// Package store persists the run counter and an archive of generated
// exercises in a SQLite database (pure Go driver, no cgo).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS counter (
	name  TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS exercise (
	id         TEXT PRIMARY KEY,
	run        INTEGER NOT NULL,
	topology   TEXT NOT NULL,
	voltage    REAL NOT NULL,
	regimes    TEXT NOT NULL,
	seed       INTEGER NOT NULL,
	attempts   INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS exercise_run ON exercise(run);
`

// Record is one archived exercise.
type Record struct {
	ID        string
	Run       int
	Topology  string
	Voltage   float64
	Regimes   string
	Seed      int64
	Attempts  int
	CreatedAt time.Time
}

// Store is a SQLite backed run counter and exercise archive.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and runs migrations.
// The parent directory is created when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection: an in-memory database lives per connection and
	// the counter update must not interleave
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var v int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case v != schemaVersion:
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// NextRun increments the persisted run counter and returns the new value.
// The first call on a fresh database returns 1.
func (s *Store) NextRun(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO counter(name, value) VALUES('run', 1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1`); err != nil {
		return 0, fmt.Errorf("increment run: %w", err)
	}
	var run int
	if err := tx.QueryRowContext(ctx, "SELECT value FROM counter WHERE name = 'run'").Scan(&run); err != nil {
		return 0, fmt.Errorf("read run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run tx: %w", err)
	}
	return run, nil
}

// SaveExercise archives rec. An empty ID gets a random UUID and a zero
// CreatedAt gets the current time; the stored record is returned.
func (s *Store) SaveExercise(ctx context.Context, rec Record) (Record, error) {
	if s.db == nil {
		return rec, ErrClosed
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exercise(id, run, topology, voltage, regimes, seed, attempts, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Run, rec.Topology, rec.Voltage, rec.Regimes, rec.Seed, rec.Attempts,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return rec, fmt.Errorf("save exercise %s: %w", rec.ID, err)
	}
	return rec, nil
}

// ListExercises returns archived exercises, newest run first.
// A limit ≤ 0 returns all of them.
func (s *Store) ListExercises(ctx context.Context, limit int) ([]Record, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run, topology, voltage, regimes, seed, attempts, created_at
		 FROM exercise ORDER BY run DESC, created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec     Record
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.Run, &rec.Topology, &rec.Voltage, &rec.Regimes,
			&rec.Seed, &rec.Attempts, &created); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
