// Package history persists finished game results to SQLite. Only outcomes
// are stored; the knowledge base itself is never persisted, every game
// starts from nothing.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"sweeper/internal/runner"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id     TEXT PRIMARY KEY,
	played_at   INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	height      INTEGER NOT NULL,
	width       INTEGER NOT NULL,
	mines       INTEGER NOT NULL,
	won         INTEGER NOT NULL,
	moves       INTEGER NOT NULL,
	safe_moves  INTEGER NOT NULL,
	guesses     INTEGER NOT NULL,
	flagged     INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_games_played_at ON games(played_at DESC);
`

// Stats summarizes the stored games.
type Stats struct {
	Games    int
	Wins     int
	WinRate  float64
	AvgMoves float64
}

// Store records game results in a SQLite database.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// Open initializes the database at the given path, creating the directory
// and schema as needed. ":memory:" opens an in-memory store.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logger.Debug("set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logger.Debug("set sqlite journal_mode", zap.Error(err))
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	logger.Debug("history store opened", zap.String("path", path))
	return &Store{db: db, path: path, logger: logger}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Save records one finished game. Saving the same game twice is ignored.
func (s *Store) Save(res runner.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT OR IGNORE INTO games
		(game_id, played_at, seed, height, width, mines, won, moves, safe_moves, guesses, flagged, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.GameID, res.PlayedAt.UnixMilli(), res.Seed, res.Height, res.Width,
		res.Mines, res.Won, res.Moves, res.SafeMoves, res.Guesses, res.Flagged,
		res.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("save game %s: %w", res.GameID, err)
	}
	return nil
}

// SaveAll records a batch of finished games.
func (s *Store) SaveAll(results []runner.Result) error {
	for _, res := range results {
		if err := s.Save(res); err != nil {
			return err
		}
	}
	return nil
}

// Recent returns up to limit results, most recent first.
func (s *Store) Recent(limit int) ([]runner.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT game_id, played_at, seed, height, width, mines,
		won, moves, safe_moves, guesses, flagged, duration_ms
		FROM games ORDER BY played_at DESC, game_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}
	defer rows.Close()

	var results []runner.Result
	for rows.Next() {
		var res runner.Result
		var playedAt, durationMS int64
		if err := rows.Scan(&res.GameID, &playedAt, &res.Seed, &res.Height,
			&res.Width, &res.Mines, &res.Won, &res.Moves, &res.SafeMoves,
			&res.Guesses, &res.Flagged, &durationMS); err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		res.PlayedAt = time.UnixMilli(playedAt)
		res.Duration = time.Duration(durationMS) * time.Millisecond
		results = append(results, res)
	}
	return results, rows.Err()
}

// Stats aggregates all stored games.
func (s *Store) Stats() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats Stats
	var avgMoves sql.NullFloat64
	err := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(won), 0), AVG(moves) FROM games`).
		Scan(&stats.Games, &stats.Wins, &avgMoves)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	if stats.Games > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Games)
	}
	stats.AvgMoves = avgMoves.Float64
	return stats, nil
}
