package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new instance of GoalRepository.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uint) (*entity.SavingsGoal, error) {
	var goal entity.SavingsGoal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("savings goal %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find savings goal %d: %w", id, err)
	}
	return &goal, nil
}

// FindByUserID retrieves all goals for a specific user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.SavingsGoal, error) {
	var goals []*entity.SavingsGoal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to find savings goals for user %s: %w", userID, err)
	}
	return goals, nil
}

// Create creates a new goal. Returns the ID of the created goal.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) (uint, error) {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return 0, fmt.Errorf("failed to create savings goal for user %s: %w", goal.UserID, err)
	}
	return goal.ID, nil
}

// Update updates an existing goal.
func (r *goalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return fmt.Errorf("failed to update savings goal %d: %w", goal.ID, err)
	}
	return nil
}

// Delete deletes a goal by its ID.
func (r *goalRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.SavingsGoal{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete savings goal %d: %w", id, err)
	}
	return nil
}
