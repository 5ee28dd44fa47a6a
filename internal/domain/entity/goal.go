package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal represents a target amount a user is saving towards.
type SavingsGoal struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	UserID       string          `gorm:"column:user_id;index"`
	Name         string          `gorm:"column:name;type:text"`
	TargetAmount decimal.Decimal `gorm:"column:target_amount;type:decimal(12,2)"`
	SavedAmount  decimal.Decimal `gorm:"column:saved_amount;type:decimal(12,2)"`
	Deadline     *time.Time      `gorm:"column:deadline"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the SavingsGoal entity.
func (SavingsGoal) TableName() string {
	return "savings_goals"
}

// Progress returns the saved fraction in [0, 1]. A zero target counts as complete.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 1
	}
	p, _ := g.SavedAmount.Div(g.TargetAmount).Float64()
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Achieved reports whether the saved amount has reached the target.
func (g *SavingsGoal) Achieved() bool {
	return g.SavedAmount.GreaterThanOrEqual(g.TargetAmount)
}
