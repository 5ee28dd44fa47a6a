package repository

import (
	"context"

	"paytrack/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal data operations.
type GoalRepository interface {
	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uint) (*entity.SavingsGoal, error)
	// FindByUserID retrieves all goals for a specific user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.SavingsGoal, error)
	// Create creates a new goal. Returns the ID of the created goal.
	Create(ctx context.Context, goal *entity.SavingsGoal) (uint, error)
	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.SavingsGoal) error
	// Delete deletes a goal by its ID.
	Delete(ctx context.Context, id uint) error
}
