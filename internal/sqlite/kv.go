package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ganot/lumina/internal/repository"
)

// KVRepository implements repository.KV on SQLite
type KVRepository struct {
	db *DB
}

// NewKVRepository creates a new KVRepository
func NewKVRepository(db *DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get retrieves the value stored under key
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value
func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}

	return nil
}

// Delete removes key; deleting a missing key is not an error
func (r *KVRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}
