// Package sqlite provides a SQLite-backed match history store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"termpong/internal/history"
	"termpong/internal/history/sqlite/migrations"
	"termpong/internal/pong"
)

// ErrAlreadyExists is returned when a record with the same ID was stored before.
var ErrAlreadyExists = errors.New("match record already exists")

// Store persists finished matches in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite history store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Append inserts one finished match.
func (s *Store) Append(ctx context.Context, record pong.MatchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return history.ErrNotConfigured
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("match id is required")
	}
	completedAt := record.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO match_history (
		   id,
		   player_score,
		   ai_score,
		   winner,
		   completed_at
		 ) VALUES (?, ?, ?, ?, ?)`,
		id,
		record.PlayerScore,
		record.AIScore,
		record.Winner,
		toMillis(completedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("append match record: %w", err)
	}
	return nil
}

// LoadRecent returns up to n matches, most recent first.
func (s *Store) LoadRecent(ctx context.Context, n int) ([]pong.MatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, history.ErrNotConfigured
	}
	limit := n
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, player_score, ai_score, winner, completed_at
		 FROM match_history
		 ORDER BY completed_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("load recent matches: %w", err)
	}
	defer rows.Close()

	records := make([]pong.MatchRecord, 0)
	for rows.Next() {
		var (
			record      pong.MatchRecord
			completedAt int64
		)
		if err := rows.Scan(&record.ID, &record.PlayerScore, &record.AIScore, &record.Winner, &completedAt); err != nil {
			return nil, fmt.Errorf("scan match record: %w", err)
		}
		record.CompletedAt = fromMillis(completedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate match records: %w", err)
	}
	return records, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	default:
		return false
	}
}
