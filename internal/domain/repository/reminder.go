package repository

import (
	"context"

	"paytrack/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Reminder, error)
	// FindByUserID retrieves all reminders for a specific user, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// FindEnabled retrieves all enabled reminders (used for rescheduling on startup).
	FindEnabled(ctx context.Context) ([]*entity.Reminder, error)
	// FindEnabledByUserID retrieves enabled reminders for a specific user.
	FindEnabledByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// Create creates a new reminder. Returns the ID of the created reminder.
	Create(ctx context.Context, reminder *entity.Reminder) (uint, error)
	// Update updates an existing reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error
	// Delete deletes a reminder by its ID.
	Delete(ctx context.Context, id uint) error
	// DeleteByUserID deletes all reminders for a specific user.
	DeleteByUserID(ctx context.Context, userID string) error
}
