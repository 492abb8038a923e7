package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

const upsertQuery = `
	INSERT INTO storage (key, value, updated_at) VALUES (?, ?, datetime('now'))
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

// StorageRepository is a durable key/value store holding JSON documents,
// used the same way a browser uses local storage
type StorageRepository struct {
	db *sqlx.DB
}

// NewStorageRepository creates a new storage repository
func NewStorageRepository(db *sqlx.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

// Get retrieves a stored value, missing key results in empty string
func (r *StorageRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM storage WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value, replacing the previous one
func (r *StorageRepository) Set(ctx context.Context, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return critical(fmt.Errorf("set %s: %w", key, err))
		}
		return nil
	}, errCritical)
}

// Append adds a record to the JSON array stored under the key.
// A missing or malformed value is replaced by a new array.
func (r *StorageRepository) Append(ctx context.Context, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record for %s: %w", key, err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if err := r.appendTx(ctx, key, data); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return critical(err)
		}
		return nil
	}, errCritical)
}

// Keys returns all stored keys
func (r *StorageRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, "SELECT key FROM storage ORDER BY key"); err != nil {
		return nil, fmt.Errorf("get keys: %w", err)
	}
	return keys, nil
}

func (r *StorageRepository) appendTx(ctx context.Context, key string, data json.RawMessage) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var value string
	err = tx.GetContext(ctx, &value, "SELECT value FROM storage WHERE key = ?", key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("get %s: %w", key, err)
	}

	records := []json.RawMessage{}
	if value != "" {
		if err := json.Unmarshal([]byte(value), &records); err != nil {
			lgr.Printf("[WARN] malformed value under %q, starting a new log: %v", key, err)
			records = []json.RawMessage{}
		}
	}
	records = append(records, data)

	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if _, err := tx.ExecContext(ctx, upsertQuery, key, string(encoded)); err != nil {
		return fmt.Errorf("append to %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}
