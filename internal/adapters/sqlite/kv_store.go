// Package sqlite contains SQLite implementations of the secondary
// ports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/waymark/internal/ports/secondary"
)

// KVStore implements secondary.StateStore with a SQLite blob table.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a new SQLite-backed state store.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Get retrieves the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ?",
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", secondary.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

// Ensure KVStore implements the interface.
var _ secondary.StateStore = (*KVStore)(nil)
