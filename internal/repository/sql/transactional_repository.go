package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
)

// TransactionalRepository provides methods to work with multiple repositories in a single transaction
type TransactionalRepository struct {
	db *sql.DB
}

// NewTransactionalRepository creates a new TransactionalRepository
func NewTransactionalRepository(db *sql.DB) *TransactionalRepository {
	return &TransactionalRepository{db: db}
}

// RecordCheckout writes the checkout event into the outbox and clears the cart in a single transaction.
func (tr *TransactionalRepository) RecordCheckout(ctx context.Context, event *model.Event) error {
	tx, err := tr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	eventRepo := &EventRepository{
		db:  tr.db,
		txn: tx,
	}

	stateRepo := &StateRepository{
		db:  tr.db,
		txn: tx,
	}

	if _, err := eventRepo.Create(ctx, event); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create event: %w", err)
	}

	if err := stateRepo.Delete(ctx, repository.CartKey); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
