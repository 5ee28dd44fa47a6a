package service

import (
	"context"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/notification"
)

// NotificationService keeps the platform notification schedule consistent
// with stored reminders. Every operation catches platform errors at the
// boundary, logs them, and returns a safe sentinel (false, "" or an empty
// slice); callers only ever branch on whether the operation took effect.
type NotificationService interface {
	// RequestNotificationPermissions checks the current permission status,
	// prompting if it is not already granted, and performs Android channel
	// setup. Returns true only if the final status is granted.
	RequestNotificationPermissions(ctx context.Context) bool
	// HasNotificationPermissions reports the current permission status.
	HasNotificationPermissions(ctx context.Context) bool
	// ScheduleReminderNotification registers a monthly notification for the
	// reminder, replacing any previous one with the same identifier.
	// notifyTime is HH:MM; invalid components fall back to 09:00 independently.
	// Returns the platform identifier, or "" on failure.
	ScheduleReminderNotification(ctx context.Context, reminderID, title string, amount decimal.Decimal, dayOfMonth int, notifyTime string) string
	// CancelReminderNotification removes the reminder's notification, best effort.
	CancelReminderNotification(ctx context.Context, reminderID string)
	// CancelAllNotifications removes every scheduled notification, best effort.
	CancelAllNotifications(ctx context.Context)
	// GetAllScheduledNotifications lists scheduled notifications; empty on failure.
	GetAllScheduledNotifications(ctx context.Context) []notification.ScheduledNotification
	// SendImmediateNotification fires a one-off notification not tied to any
	// reminder. Returns the platform identifier, or "" on failure.
	SendImmediateNotification(ctx context.Context, title, body string, data map[string]any) string
}
