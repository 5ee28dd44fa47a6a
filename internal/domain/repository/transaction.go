package repository

import (
	"context"
	"time"

	"paytrack/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Transaction, error)
	// FindByUserIDAndRange retrieves transactions for a user with date in [from, to).
	FindByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.Transaction, error)
	// Create creates a new transaction. Returns the ID of the created transaction.
	Create(ctx context.Context, tx *entity.Transaction) (uint, error)
	// Delete deletes a transaction by its ID.
	Delete(ctx context.Context, id uint) error
}
