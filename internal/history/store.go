// Package history keeps a SQLite log of finished solves.
//
// Only final results are stored (cost, tour, effort). Partial search state is
// never persisted: every solve starts from scratch.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// ErrInvalidRun is returned by Record for a run without an outcome.
var ErrInvalidRun = errors.New("history: invalid run")

// Run is one finished solve.
type Run struct {
	ID        string
	Instance  string
	Cities    int
	Cost      float64 // +Inf when no tour was found
	Tour      []int   // nil when no tour was found
	Optimal   bool
	Outcome   string
	Nodes     int64
	Pruned    int64
	Elapsed   time.Duration
	CreatedAt time.Time
}

// Store is a SQLite-backed run log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. ":memory:" is allowed.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("history: create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: set pragma %s: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: initialize schema: %w", err)
	}

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == nil && version >= schemaVersion {
		return nil
	}

	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT OR IGNORE INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		instance TEXT NOT NULL,
		cities INTEGER NOT NULL,
		cost REAL,
		tour TEXT,
		optimal INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		nodes INTEGER NOT NULL,
		pruned INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err = s.db.Exec(schema)

	return err
}

// Record stores run. Missing ID and CreatedAt are filled in; the stored ID is
// returned.
func (s *Store) Record(ctx context.Context, run Run) (string, error) {
	if run.Outcome == "" {
		return "", fmt.Errorf("%w: empty outcome", ErrInvalidRun)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	var (
		cost sql.NullFloat64
		tour sql.NullString
	)
	if !math.IsInf(run.Cost, 0) && !math.IsNaN(run.Cost) {
		cost = sql.NullFloat64{Float64: run.Cost, Valid: true}
	}
	if run.Tour != nil {
		tour = sql.NullString{String: formatTour(run.Tour), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, instance, cities, cost, tour, optimal, outcome, nodes, pruned, elapsed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Instance, run.Cities, cost, tour, run.Optimal, run.Outcome,
		run.Nodes, run.Pruned, int64(run.Elapsed), run.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("history: insert run: %w", err)
	}

	return run.ID, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, instance, cities, cost, tour, optimal, outcome, nodes, pruned, elapsed_ns, created_at
		FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			cost    sql.NullFloat64
			tour    sql.NullString
			elapsed int64
		)
		if err := rows.Scan(&r.ID, &r.Instance, &r.Cities, &cost, &tour, &r.Optimal, &r.Outcome,
			&r.Nodes, &r.Pruned, &elapsed, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		r.Cost = math.Inf(1)
		if cost.Valid {
			r.Cost = cost.Float64
		}
		if tour.Valid {
			if r.Tour, err = parseTour(tour.String); err != nil {
				return nil, err
			}
		}
		r.Elapsed = time.Duration(elapsed)
		out = append(out, r)
	}

	return out, rows.Err()
}

func formatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, c := range tour {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, ",")
}

func parseTour(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("history: corrupt tour %q: %w", s, err)
		}
		out[i] = v
	}

	return out, nil
}
