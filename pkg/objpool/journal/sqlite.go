package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists journal events to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite journal store.
// The path should be a file path (e.g., "./objpool.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			pool_id TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			kind TEXT NOT NULL,
			detail TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			PRIMARY KEY (pool_id, sequence)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_pool_id
		ON events(pool_id)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(poolID string, kind Kind, detail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	// Assign the next sequence for this pool atomically
	_, err := s.db.Exec(`
		INSERT INTO events (pool_id, sequence, kind, detail, timestamp)
		VALUES (
			?,
			COALESCE((SELECT MAX(sequence) FROM events WHERE pool_id = ?), 0) + 1,
			?, ?, ?
		)
	`, poolID, poolID, string(kind), detail, time.Now().UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// List implements Store.
func (s *SQLiteStore) List(poolID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT sequence, kind, detail, timestamp
		FROM events
		WHERE pool_id = ?
		ORDER BY sequence
	`, poolID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var evt Event
		var kind, timestamp string
		if err := rows.Scan(&evt.Sequence, &kind, &evt.Detail, &timestamp); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		evt.PoolID = poolID
		evt.Kind = Kind(kind)
		evt.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// DeletePool implements Store.
func (s *SQLiteStore) DeletePool(poolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM events WHERE pool_id = ?
	`, poolID)
	if err != nil {
		return fmt.Errorf("delete pool events: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
