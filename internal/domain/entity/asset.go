package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/constant"
)

// Asset represents a store of value owned by a user.
type Asset struct {
	ID        uint               `gorm:"primaryKey;autoIncrement"`
	UserID    string             `gorm:"column:user_id;index"`
	Name      string             `gorm:"column:name;type:text"`
	Type      constant.AssetType `gorm:"column:type"`
	Balance   decimal.Decimal    `gorm:"column:balance;type:decimal(12,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Asset entity.
func (Asset) TableName() string {
	return "assets"
}
