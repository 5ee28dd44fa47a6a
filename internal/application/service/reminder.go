package service

import (
	"context"

	"paytrack/internal/application/dto"
)

// ReminderService defines the interface for payment-reminder business logic.
// Every mutation keeps the notification platform's schedule consistent with
// stored state: enabled reminders have exactly one scheduled notification,
// disabled or deleted reminders have none.
type ReminderService interface {
	// CreateReminder validates and stores a new reminder, scheduling its
	// notification when enabled.
	CreateReminder(ctx context.Context, req dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	// UpdateReminder updates a reminder and replaces or cancels its notification.
	UpdateReminder(ctx context.Context, id uint, req dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	// ToggleReminder flips the enabled flag and schedules or cancels accordingly.
	ToggleReminder(ctx context.Context, id uint, userID string) (*dto.ReminderResponse, error)
	// DeleteReminder removes a reminder and cancels its notification.
	DeleteReminder(ctx context.Context, id uint, userID string) error
	// ListReminders retrieves all reminders for a user.
	ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error)
	// SyncSchedules re-registers every enabled reminder's notification on
	// startup; the store is durable, the in-process schedule is not.
	SyncSchedules(ctx context.Context) error
	// RecipientFor resolves the delivery target for a reminder at fire time.
	RecipientFor(ctx context.Context, reminderID string) (string, error)
}
