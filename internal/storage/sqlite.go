// Package storage provides SQLite-based persistence for simulation run
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/levelsim/internal/level"
	"github.com/vovakirdan/levelsim/internal/sim"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is one persisted simulation run.
type RunEntry struct {
	ID             int64
	RunID          string
	LevelName      string
	Difficulty     string
	Seed           string
	Duration       float64
	Ticks          int
	TimeBroadcasts int
	EventsStarted  int
	CellsBlocked   int
	CellsUsable    int
	CellsUsed      int
	CellsDestroyed int
	CellsDamaged   int
	CellsAnomaly   int
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path. It creates the
// parent directories if needed and runs migrations.
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
			run_id TEXT NOT NULL UNIQUE,
			level_name TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			seed TEXT NOT NULL,
			duration REAL NOT NULL,
			ticks INTEGER NOT NULL,
			time_broadcasts INTEGER NOT NULL,
			events_started INTEGER NOT NULL,
			cells_blocked INTEGER NOT NULL DEFAULT 0,
			cells_usable INTEGER NOT NULL DEFAULT 0,
			cells_used INTEGER NOT NULL DEFAULT 0,
			cells_destroyed INTEGER NOT NULL DEFAULT 0,
			cells_damaged INTEGER NOT NULL DEFAULT 0,
			cells_anomaly INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_name ON runs(level_name);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(level_name, created_at DESC);
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

// SaveRun records a completed simulation run. Returns the row ID.
func (s *Store) SaveRun(report sim.Report) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (
			run_id, level_name, difficulty, seed, duration, ticks,
			time_broadcasts, events_started,
			cells_blocked, cells_usable, cells_used,
			cells_destroyed, cells_damaged, cells_anomaly
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.RunID, report.LevelName, report.Difficulty, report.Seed,
		report.Duration, report.Ticks,
		report.TimeBroadcasts, len(report.EventsStarted),
		report.FinalStates[level.Blocked], report.FinalStates[level.Usable],
		report.FinalStates[level.Used], report.FinalStates[level.Destroyed],
		report.FinalStates[level.Damaged], report.FinalStates[level.Anomaly],
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, run_id, level_name, difficulty, seed, duration, ticks,
	time_broadcasts, events_started,
	cells_blocked, cells_usable, cells_used,
	cells_destroyed, cells_damaged, cells_anomaly, created_at`

// RecentRuns retrieves the most recent N runs for the given level.
func (s *Store) RecentRuns(levelName string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level_name = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		levelName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

// AllRuns retrieves every stored run, newest first.
func (s *Store) AllRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

// RunCount returns the number of stored runs for the given level.
func (s *Store) RunCount(levelName string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM runs WHERE level_name = ?",
		levelName,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return count, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(levelName string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE level_name = ?", levelName); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.RunID, &e.LevelName, &e.Difficulty, &e.Seed,
			&e.Duration, &e.Ticks, &e.TimeBroadcasts, &e.EventsStarted,
			&e.CellsBlocked, &e.CellsUsable, &e.CellsUsed,
			&e.CellsDestroyed, &e.CellsDamaged, &e.CellsAnomaly,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
