package service

import (
	"context"
	"fmt"
	"strings"

	"paytrack/internal/application/dto"
	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

type goalService struct {
	goalRepo repository.GoalRepository
	log      logger.Logger
}

// NewGoalService creates a new instance of GoalService implementation.
func NewGoalService(goalRepo repository.GoalRepository, log logger.Logger) GoalService {
	return &goalService{goalRepo: goalRepo, log: log}
}

// CreateGoal stores a new savings goal.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.ErrInvalidTitle
	}
	if !req.TargetAmount.IsPositive() {
		return nil, appErrors.ErrInvalidAmount
	}

	goal := &entity.SavingsGoal{
		UserID:       req.UserID,
		Name:         strings.TrimSpace(req.Name),
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
	}
	if _, err := s.goalRepo.Create(ctx, goal); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create savings goal for user %s", req.UserID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	resp := dto.ToGoalResponse(goal)
	return &resp, nil
}

// Contribute adds to a goal's saved amount.
func (s *goalService) Contribute(ctx context.Context, id uint, req dto.ContributeGoalRequest) (*dto.GoalResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, appErrors.ErrInvalidAmount
	}

	goal, err := s.goalRepo.FindByID(ctx, id)
	if err != nil || goal.UserID != req.UserID {
		return nil, appErrors.ErrGoalNotFound
	}

	goal.SavedAmount = goal.SavedAmount.Add(req.Amount)
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update savings goal %d", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if goal.Achieved() {
		s.log.Info(fmt.Sprintf("Savings goal %d reached its target", id))
	}
	resp := dto.ToGoalResponse(goal)
	return &resp, nil
}

// DeleteGoal removes a goal.
func (s *goalService) DeleteGoal(ctx context.Context, id uint, userID string) error {
	goal, err := s.goalRepo.FindByID(ctx, id)
	if err != nil || goal.UserID != userID {
		return appErrors.ErrGoalNotFound
	}

	if err := s.goalRepo.Delete(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete savings goal %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// ListGoals retrieves all goals for a user.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]dto.GoalResponse, error) {
	goals, err := s.goalRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list savings goals for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToGoalResponseList(goals), nil
}
