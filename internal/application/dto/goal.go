package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/entity"
)

// CreateGoalRequest is the DTO for creating a new savings goal.
type CreateGoalRequest struct {
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
}

// ContributeGoalRequest is the DTO for adding to a goal's saved amount.
type ContributeGoalRequest struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse is the DTO for sending savings goal information to the client.
type GoalResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	Progress     float64         `json:"progress"`
	Achieved     bool            `json:"achieved"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToGoalResponse converts an entity.SavingsGoal to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		SavedAmount:  g.SavedAmount,
		Progress:     g.Progress(),
		Achieved:     g.Achieved(),
		Deadline:     g.Deadline,
		CreatedAt:    g.CreatedAt,
	}
}

// ToGoalResponseList converts a slice of entity.SavingsGoal to DTOs.
func ToGoalResponseList(goals []*entity.SavingsGoal) []GoalResponse {
	list := make([]GoalResponse, len(goals))
	for i, g := range goals {
		list[i] = ToGoalResponse(g)
	}
	return list
}
