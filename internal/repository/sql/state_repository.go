package sql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iyhunko/storefront-search/internal/repository"
)

// StateRepository stores store aggregates as jsonb rows of the store_state table.
type StateRepository struct {
	db  *sql.DB
	txn *sql.Tx
}

// NewStateRepository creates a new StateRepository instance.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) getExecutor() dbExecutor {
	if r.txn != nil {
		return r.txn
	}
	return r.db
}

// Load decodes the value stored under key into dst.
func (r *StateRepository) Load(ctx context.Context, key repository.StateKey, dst any) (bool, error) {
	query := `SELECT value FROM store_state WHERE key = $1`

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	var raw []byte
	if err := stmt.QueryRowContext(ctx, string(key)).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		slog.Error("failed to load state", slog.String("key", string(key)), slog.Any("err", err))
		return false, fmt.Errorf("failed to query state %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode state %s: %w", key, err)
	}
	return true, nil
}

// Save upserts value under key.
func (r *StateRepository) Save(ctx context.Context, key repository.StateKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state %s: %w", key, err)
	}

	query := `INSERT INTO store_state (key, value, updated_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert statement: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, string(key), raw, time.Now()); err != nil {
		slog.Error("failed to save state", slog.String("key", string(key)), slog.Any("err", err))
		return fmt.Errorf("failed to save state %s: %w", key, convertError(err))
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *StateRepository) Delete(ctx context.Context, key repository.StateKey) error {
	query := `DELETE FROM store_state WHERE key = $1`

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare delete statement: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, string(key)); err != nil {
		slog.Error("failed to delete state", slog.String("key", string(key)), slog.Any("err", err))
		return fmt.Errorf("failed to delete state %s: %w", key, err)
	}
	return nil
}
