package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/entity"
)

// CreateTransactionRequest is the DTO for recording an income or expense.
type CreateTransactionRequest struct {
	UserID   string          `json:"user_id"`
	Type     string          `json:"type"` // income|expense
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
	Date     time.Time       `json:"date"`
}

// TransactionResponse is the DTO for sending transaction information to the client.
type TransactionResponse struct {
	ID           uint            `json:"id"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	CategoryIcon string          `json:"category_icon"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	Date         time.Time       `json:"date"`
}

// ToTransactionResponse converts an entity.Transaction to a DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		Type:         string(tx.Type),
		Category:     tx.Category.String(),
		CategoryIcon: tx.Category.Icon(),
		Amount:       tx.Amount,
		Note:         tx.Note,
		Date:         tx.Date,
	}
}

// ToTransactionResponseList converts a slice of entity.Transaction to DTOs.
func ToTransactionResponseList(txs []*entity.Transaction) []TransactionResponse {
	list := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		list[i] = ToTransactionResponse(tx)
	}
	return list
}
