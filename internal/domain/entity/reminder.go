package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/constant"
)

// Reminder represents a recurring monthly payment obligation.
type Reminder struct {
	ID         uint              `gorm:"primaryKey;autoIncrement"`
	UserID     string            `gorm:"column:user_id;index"`
	Title      string            `gorm:"column:title;type:text"`
	Amount     decimal.Decimal   `gorm:"column:amount;type:decimal(12,2)"`
	DueDay     int               `gorm:"column:due_day"`     // Day of month, 1-31
	NotifyTime string            `gorm:"column:notify_time"` // HH:MM, empty means the user default
	IsEnabled  bool              `gorm:"column:is_enabled"`
	Category   constant.Category `gorm:"column:category"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// RefID returns the reminder's store identifier as the opaque string the
// notification layer keys on.
func (r *Reminder) RefID() string {
	return strconv.FormatUint(uint64(r.ID), 10)
}
