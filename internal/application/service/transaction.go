package service

import (
	"context"

	"paytrack/internal/application/dto"
)

// TransactionService defines the interface for income/expense records.
type TransactionService interface {
	// CreateTransaction records an income or expense.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	// ListMonth retrieves a user's transactions for one calendar month.
	ListMonth(ctx context.Context, userID string, year, month int) ([]dto.TransactionResponse, error)
	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, id uint, userID string) error
}
