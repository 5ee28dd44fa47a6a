package service

import (
	"context"

	"paytrack/internal/application/dto"
)

// GoalService defines the interface for savings goals.
type GoalService interface {
	// CreateGoal stores a new savings goal.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*dto.GoalResponse, error)
	// Contribute adds to a goal's saved amount.
	Contribute(ctx context.Context, id uint, req dto.ContributeGoalRequest) (*dto.GoalResponse, error)
	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, id uint, userID string) error
	// ListGoals retrieves all goals for a user.
	ListGoals(ctx context.Context, userID string) ([]dto.GoalResponse, error)
}
