// Package storage provides SQLite-based persistence for recorded sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-anglers/internal/replay"
)

// ErrReplayNotFound is returned when no replay matches the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// ReplaySummary is one row of the replay listing, without frames.
type ReplaySummary struct {
	ID        string
	GameID    string
	Seed      int64
	Score     int
	Won       bool
	GameOver  bool
	Frames    int
	Duration  time.Duration // Sum of recorded frame durations
	CreatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			config BLOB,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			frame_count INTEGER NOT NULL DEFAULT 0,
			duration_ns INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_frames (
			replay_id TEXT NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			delta_ns INTEGER NOT NULL,
			held INTEGER NOT NULL,
			actions INTEGER NOT NULL,
			PRIMARY KEY (replay_id, tick)
		);
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

// SaveReplay stores a recording with all its frames and returns its new ID.
func (s *Store) SaveReplay(rec replay.Recording) (string, error) {
	id := uuid.NewString()

	var total time.Duration
	for _, f := range rec.Frames {
		total += f.Delta
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO replays (id, game_id, seed, config, score, won, game_over, frame_count, duration_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.GameID, rec.Seed, rec.Config, rec.Score, rec.Won, rec.GameOver, len(rec.Frames), int64(total),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO replay_frames (replay_id, tick, delta_ns, held, actions) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range rec.Frames {
		if _, err := stmt.Exec(id, i, int64(f.Delta), f.Held, f.Actions); err != nil {
			return "", fmt.Errorf("storage: cannot save frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

// LoadReplay retrieves a recording with all its frames.
// An unambiguous ID prefix is accepted as well.
func (s *Store) LoadReplay(id string) (replay.Recording, error) {
	var rec replay.Recording
	var createdAt any

	fullID, err := s.resolveID(id)
	if err != nil {
		return rec, err
	}

	err = s.db.QueryRow(
		`SELECT id, game_id, seed, config, score, won, game_over, created_at
		 FROM replays
		 WHERE id = ?`,
		fullID,
	).Scan(&rec.ID, &rec.GameID, &rec.Seed, &rec.Config, &rec.Score, &rec.Won, &rec.GameOver, &createdAt)
	if err == sql.ErrNoRows {
		return rec, fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT delta_ns, held, actions
		 FROM replay_frames
		 WHERE replay_id = ?
		 ORDER BY tick`,
		fullID,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f replay.Frame
		var delta int64
		if err := rows.Scan(&delta, &f.Held, &f.Actions); err != nil {
			return rec, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		f.Delta = time.Duration(delta)
		rec.Frames = append(rec.Frames, f)
	}

	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// resolveID expands a unique prefix to a full replay ID.
// The prefix is compared literally; LIKE wildcards in it match nothing.
func (s *Store) resolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty ID", ErrReplayNotFound)
	}

	rows, err := s.db.Query("SELECT id FROM replays WHERE substr(id, 1, length(?)) = ? LIMIT 2", prefix, prefix)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query replay: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrReplayNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("storage: replay ID %q is ambiguous", prefix)
	}
}

// ListReplays retrieves the most recent replays, newest first.
func (s *Store) ListReplays(limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, score, won, game_over, frame_count, duration_ns, created_at
		 FROM replays
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplaySummary
	for rows.Next() {
		var e ReplaySummary
		var duration int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Seed, &e.Score, &e.Won, &e.GameOver, &e.Frames, &duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(duration)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteReplay removes a replay and its frames.
func (s *Store) DeleteReplay(id string) error {
	fullID, err := s.resolveID(id)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM replay_frames WHERE replay_id = ?", fullID); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE id = ?", fullID); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
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
