package export

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

const createEntriesTable = `CREATE TABLE IF NOT EXISTS entries (
	key    TEXT PRIMARY KEY,
	value  TEXT NOT NULL,
	source TEXT NOT NULL
)`

const upsertEntry = `INSERT INTO entries (key, value, source) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, source = excluded.source`

// SQLiteSink writes records into the entries table of a SQLite database.
type SQLiteSink struct {
	db *sql.DB

	mu     sync.Mutex
	closed bool
}

// OpenSQLite opens (or creates) the SQLite database at path.
func OpenSQLite(path string) (*SQLiteSink, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(createEntriesTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create entries table: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

// Put inserts or replaces rec.
func (s *SQLiteSink) Put(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, upsertEntry, rec.Key, string(rec.Value), string(rec.Source))
	return err
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.db == nil {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
