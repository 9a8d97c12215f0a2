// Package store keeps a history of finished games in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Result is how a game ended.
type Result string

const (
	ResultWon       Result = "won"
	ResultLost      Result = "lost"
	ResultAbandoned Result = "abandoned"
)

// Record is one finished game.
type Record struct {
	ID        string
	Disks     int
	Moves     int
	MaxMoves  int
	Result    Result
	Scrambled bool
	StartedAt time.Time
	Duration  time.Duration
}

// Store persists records in a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	disks INTEGER NOT NULL,
	moves INTEGER NOT NULL,
	max_moves INTEGER NOT NULL,
	result TEXT NOT NULL,
	scrambled INTEGER NOT NULL DEFAULT 0,
	started_at INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_disks_result ON games(disks, result);
CREATE INDEX IF NOT EXISTS idx_games_started_at ON games(started_at)
`

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save inserts rec.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("store: record has no ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, disks, moves, max_moves, result, scrambled, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Disks, rec.Moves, rec.MaxMoves, string(rec.Result), rec.Scrambled,
		rec.StartedAt.UnixMilli(), rec.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("save game %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, disks, moves, max_moves, result, scrambled, started_at, duration_ms
		 FROM games ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent games: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Best returns the won game with the fewest moves for the disk count, ties
// broken by the shorter duration.
func (s *Store) Best(ctx context.Context, disks int) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.db.QueryRowContext(ctx,
		`SELECT id, disks, moves, max_moves, result, scrambled, started_at, duration_ms
		 FROM games WHERE disks = ? AND result = ?
		 ORDER BY moves, duration_ms LIMIT 1`, disks, string(ResultWon))
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec        Record
		result     string
		startedMS  int64
		durationMS int64
	)
	if err := row.Scan(&rec.ID, &rec.Disks, &rec.Moves, &rec.MaxMoves, &result, &rec.Scrambled, &startedMS, &durationMS); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan game: %w", err)
	}
	rec.Result = Result(result)
	rec.StartedAt = time.UnixMilli(startedMS)
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	return rec, nil
}
