// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A run is recorded once it ends. Nothing here can restore a run in progress.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run outcomes.
const (
	OutcomeWon      = "won"
	OutcomeGameOver = "game_over"
	OutcomeQuit     = "quit"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run through a level pack.
type RunEntry struct {
	ID            int64
	PackID        string
	LevelsCleared int
	Goals         int
	TrailWalls    int
	Outcome       string
	Duration      int // Duration in seconds
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			levels_cleared INTEGER NOT NULL DEFAULT 0,
			goals INTEGER NOT NULL DEFAULT 0,
			trail_walls INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack_id ON runs(pack_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pack_id, levels_cleared DESC, goals DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (pack_id, levels_cleared, goals, trail_walls, outcome, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.PackID, run.LevelsCleared, run.Goals, run.TrailWalls, run.Outcome, run.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs for a pack: most levels cleared first,
// then most goals, then fewest trail walls.
func (s *Store) TopRuns(packID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, pack_id, levels_cleared, goals, trail_walls, outcome, duration_secs, created_at
		 FROM runs
		 WHERE pack_id = ?
		 ORDER BY levels_cleared DESC, goals DESC, trail_walls ASC, id ASC
		 LIMIT ?`,
		packID, limit,
	)
}

// RecentRuns retrieves the latest N runs across all packs.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, pack_id, levels_cleared, goals, trail_walls, outcome, duration_secs, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// BestLevels returns the most levels cleared in one run of a pack.
// Returns 0 if no runs exist.
func (s *Store) BestLevels(packID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(levels_cleared) FROM runs WHERE pack_id = ?",
		packID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// ClearRuns deletes all runs for a pack.
func (s *Store) ClearRuns(packID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PackID, &e.LevelsCleared, &e.Goals, &e.TrailWalls,
			&e.Outcome, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
