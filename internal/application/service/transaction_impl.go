package service

import (
	"context"
	"fmt"
	"time"

	"paytrack/internal/application/dto"
	"paytrack/internal/domain/constant"
	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

type transactionService struct {
	txRepo repository.TransactionRepository
	log    logger.Logger
}

// NewTransactionService creates a new instance of TransactionService implementation.
func NewTransactionService(txRepo repository.TransactionRepository, log logger.Logger) TransactionService {
	return &transactionService{txRepo: txRepo, log: log}
}

// CreateTransaction records an income or expense.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txType := constant.TransactionType(req.Type)
	if !txType.Valid() {
		txType = constant.TransactionExpense
	}
	if !req.Amount.IsPositive() {
		return nil, appErrors.ErrInvalidAmount
	}
	category := constant.Category(req.Category)
	if !category.Valid() {
		category = constant.CategoryOther
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &entity.Transaction{
		UserID:   req.UserID,
		Type:     txType,
		Category: category,
		Amount:   req.Amount,
		Note:     req.Note,
		Date:     date,
	}
	if _, err := s.txRepo.Create(ctx, tx); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create transaction for user %s", req.UserID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	resp := dto.ToTransactionResponse(tx)
	return &resp, nil
}

// ListMonth retrieves a user's transactions for one calendar month.
func (s *transactionService) ListMonth(ctx context.Context, userID string, year, month int) ([]dto.TransactionResponse, error) {
	if month < 1 || month > 12 || year < 1970 {
		return nil, appErrors.ErrInvalidPeriod
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	txs, err := s.txRepo.FindByUserIDAndRange(ctx, userID, from, to)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list transactions for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToTransactionResponseList(txs), nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, id uint, userID string) error {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil || tx.UserID != userID {
		return appErrors.ErrTransactionNotFound
	}

	if err := s.txRepo.Delete(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete transaction %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}
