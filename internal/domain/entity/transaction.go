package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/constant"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	ID        uint                     `gorm:"primaryKey;autoIncrement"`
	UserID    string                   `gorm:"column:user_id;index"`
	Type      constant.TransactionType `gorm:"column:type"`
	Category  constant.Category        `gorm:"column:category"`
	Amount    decimal.Decimal          `gorm:"column:amount;type:decimal(12,2)"`
	Note      string                   `gorm:"column:note;type:text"`
	Date      time.Time                `gorm:"column:date;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Transaction entity.
func (Transaction) TableName() string {
	return "transactions"
}
