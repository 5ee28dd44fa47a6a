package service

import (
	"context"

	"paytrack/internal/application/dto"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	// GetOrCreateUser finds a user by ID or creates a new one if not found.
	GetOrCreateUser(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error)
	// GetUser finds a user by ID. Returns an error if not found.
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	// LinkLine attaches a LINE account for push delivery.
	LinkLine(ctx context.Context, req dto.LinkLineRequest) error
	// UpdateNotifyTime changes the user's default delivery time and
	// reschedules enabled reminders that inherit it.
	UpdateNotifyTime(ctx context.Context, req dto.UpdateNotifyTimeRequest) error
	// DeleteUser deletes the user and all their reminders, cancelling any
	// scheduled notifications.
	DeleteUser(ctx context.Context, userID string) error
}
