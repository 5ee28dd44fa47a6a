package repository

import (
	"context"

	"paytrack/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, userID string) (*entity.User, error)
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error
	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error
	// Delete deletes a user by their ID.
	Delete(ctx context.Context, userID string) error
}
