// Package kv provides the string-keyed, string-valued store backing all
// persisted app state. Typed repositories in board/persistence sit on top
// of it; nothing else writes to it directly.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/hariyo-app/hariyo/shared/db"
)

// Store defines the persistence contract for app state.
type Store interface {
	// Get returns the value for key. found is false when the key has
	// never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Transactor runs fn so that every store write inside it commits or
// rolls back as one unit. Services use it for multi-key updates, such as
// a post's like count and the liked-ids set.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ Store = (*SQLStore)(nil)
var _ Store = (*MemoryStore)(nil)
var _ Transactor = (*SQLTransactor)(nil)
var _ Transactor = (*MemoryStore)(nil)

// SQLStore implements Store on the sqlite kv table.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a SQLStore from a standard sql.DB.
func NewSQLStore(conn *sql.DB) *SQLStore {
	return &SQLStore{db: conn}
}

const getQuery = `SELECT value FROM kv WHERE key = ?`

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key cannot be empty")
	}

	var value string
	err := db.GetExecutor(ctx, s.db).QueryRowContext(ctx, getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	return value, true, nil
}

const setQuery = `
	INSERT INTO kv (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
`

func (s *SQLStore) Set(ctx context.Context, key string, value string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if _, err := db.GetExecutor(ctx, s.db).ExecContext(ctx, setQuery, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}

	return nil
}

const deleteQuery = `DELETE FROM kv WHERE key = ?`

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if _, err := db.GetExecutor(ctx, s.db).ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}

// SQLTransactor implements Transactor by opening a database transaction
// that SQLStore picks up from the context through db.GetExecutor.
type SQLTransactor struct {
	db *sql.DB
}

// NewSQLTransactor creates a SQLTransactor over the same connection the
// SQLStore uses.
func NewSQLTransactor(conn *sql.DB) *SQLTransactor {
	return &SQLTransactor{db: conn}
}

func (t *SQLTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.RunInTransaction(ctx, t.db, fn)
}

// MemoryStore implements Store in memory, for tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// RunInTransaction on the in-memory fake is a pass-through: writes apply
// immediately and are not rolled back on error. Atomicity is exercised
// against the SQL store.
func (s *MemoryStore) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
