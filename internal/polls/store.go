// Package polls is the polling subsystem: polls, options, votes, and the
// minimal user records votes hang off. Backed by an embedded sqlite
// database under the engine's data dir, or in-memory when no DSN is set.
package polls

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNotOwner        = errors.New("not the poll owner")
	ErrPollClosed      = errors.New("poll has expired")
	ErrDuplicateVote   = errors.New("user already voted on this poll")
	ErrDuplicateOption = errors.New("option already exists on this poll")
	ErrOptionMismatch  = errors.New("option does not belong to this poll")
	ErrUserExists      = errors.New("email or username already taken")
)

type Store struct {
	db *sql.DB
}

// Open connects and migrates. An empty dsn selects a private in-memory
// database, which keeps the subsystem inside process memory.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = "file:polls?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	} else {
		dsn = fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", dsn)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite wants a single writer
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS users (
  user_id TEXT PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  username TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS polls (
  poll_id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  question TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  created_by TEXT NOT NULL REFERENCES users(user_id),
  created_at TEXT NOT NULL,
  expires_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_polls_created_at ON polls(created_at DESC);
CREATE TABLE IF NOT EXISTS options (
  option_id TEXT PRIMARY KEY,
  poll_id TEXT NOT NULL REFERENCES polls(poll_id) ON DELETE CASCADE,
  option_text TEXT NOT NULL,
  created_at TEXT NOT NULL,
  UNIQUE(poll_id, option_text)
);
CREATE TABLE IF NOT EXISTS votes (
  vote_id TEXT PRIMARY KEY,
  poll_id TEXT NOT NULL REFERENCES polls(poll_id) ON DELETE CASCADE,
  option_id TEXT NOT NULL REFERENCES options(option_id) ON DELETE CASCADE,
  user_id TEXT NOT NULL REFERENCES users(user_id),
  cast_at TEXT NOT NULL,
  UNIQUE(poll_id, user_id)
);
`)
	return err
}

func fmtTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
