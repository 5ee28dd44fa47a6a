package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*entity.Transaction, error) {
	var tx entity.Transaction
	if err := r.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, err)
	}
	return &tx, nil
}

// FindByUserIDAndRange retrieves transactions for a user with date in [from, to).
func (r *transactionRepository) FindByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.Transaction, error) {
	var txs []*entity.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date desc").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions for user %s: %w", userID, err)
	}
	return txs, nil
}

// Create creates a new transaction. Returns the ID of the created transaction.
func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) (uint, error) {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return 0, fmt.Errorf("failed to create transaction for user %s: %w", tx.UserID, err)
	}
	return tx.ID, nil
}

// Delete deletes a transaction by its ID.
func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Transaction{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	return nil
}
