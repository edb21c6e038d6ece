// Package storage records solved puzzles in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTimeLayout is how SQLite's CURRENT_TIMESTAMP is rendered as text.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Solve is one completed puzzle.
type Solve struct {
	ID        int64
	PuzzleID  string
	SessionID string
	Moves     int
	Undos     int
	Duration  time.Duration
	CreatedAt time.Time
}

// PuzzleStats contains aggregated results for one puzzle.
type PuzzleStats struct {
	PuzzleID     string
	Solves       int
	FewestMoves  int
	FastestSolve time.Duration
	AvgMoves     float64
	LastSolved   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			undos INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle_id ON solves(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(puzzle_id, moves, duration_ms);
		CREATE INDEX IF NOT EXISTS idx_solves_session ON solves(session_id);
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

// SaveSolve records a completed puzzle and returns the new record's ID.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.PuzzleID == "" {
		return 0, errors.New("storage: solve has no puzzle id")
	}

	result, err := s.db.Exec(
		`INSERT INTO solves (puzzle_id, session_id, moves, undos, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		solve.PuzzleID, solve.SessionID, solve.Moves, solve.Undos, solve.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the best N solves for a puzzle: fewest moves first,
// then fastest.
func (s *Store) BestSolves(puzzleID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, session_id, moves, undos, duration_ms, created_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// SessionSolves retrieves every solve recorded by one session, newest first.
func (s *Store) SessionSolves(sessionID string) ([]Solve, error) {
	rows, err := s.db.Query(
		`SELECT id, puzzle_id, session_id, moves, undos, duration_ms, created_at
		 FROM solves
		 WHERE session_id = ?
		 ORDER BY id DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var (
			sv        Solve
			ms        int64
			createdAt any
		)
		if err := rows.Scan(&sv.ID, &sv.PuzzleID, &sv.SessionID, &sv.Moves, &sv.Undos, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sv.Duration = time.Duration(ms) * time.Millisecond
		sv.CreatedAt = parseTime(createdAt)
		solves = append(solves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// PuzzleStats retrieves aggregated results for one puzzle. A puzzle that was
// never solved yields zero stats.
func (s *Store) PuzzleStats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	var (
		fastest    int64
		lastSolved any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(duration_ms), 0),
		        COALESCE(AVG(moves), 0), MAX(created_at)
		 FROM solves WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.Solves, &stats.FewestMoves, &fastest, &stats.AvgMoves, &lastSolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}

	stats.FastestSolve = time.Duration(fastest) * time.Millisecond
	stats.LastSolved = parseTime(lastSolved)
	return stats, nil
}

// AllPuzzleStats retrieves statistics for every puzzle that has been solved.
func (s *Store) AllPuzzleStats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(*), MIN(moves), MIN(duration_ms), AVG(moves), MAX(created_at)
		 FROM solves
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var (
			ps         PuzzleStats
			fastest    int64
			lastSolved any
		)
		if err := rows.Scan(&ps.PuzzleID, &ps.Solves, &ps.FewestMoves, &fastest, &ps.AvgMoves, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.FastestSolve = time.Duration(fastest) * time.Millisecond
		ps.LastSolved = parseTime(lastSolved)
		stats[ps.PuzzleID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSolves deletes all solves for the given puzzle.
func (s *Store) ClearSolves(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime handles datetimes that the driver returns either as time.Time
// or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
