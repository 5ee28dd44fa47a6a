package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/notification"
	"paytrack/internal/pkg/logger"
)

const (
	reminderChannelID   = "reminders"
	reminderChannelName = "Payment Reminders"
	reminderTitle       = "💰 Payment Reminder"

	defaultNotifyHour   = 9
	defaultNotifyMinute = 0
)

var reminderChannel = notification.Channel{
	Name:             reminderChannelName,
	Importance:       notification.ImportanceHigh,
	VibrationPattern: []int{0, 250, 250, 250},
	LightColor:       "#FF231F7C",
}

type notificationService struct {
	platform notification.Platform
	log      logger.Logger
	now      func() time.Time

	// Serializes cancel-then-schedule sequences per identifier so two rapid
	// saves of the same reminder cannot interleave and drop a schedule.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewNotificationService creates a new NotificationService implementation on
// top of the given platform. Foreground handler behavior is injected once
// here instead of being registered as an import side effect.
func NewNotificationService(platform notification.Platform, behavior notification.HandlerBehavior, log logger.Logger) NotificationService {
	platform.SetNotificationHandler(behavior)
	return &notificationService{
		platform: platform,
		log:      log,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lock acquires the per-identifier mutex, creating it on first use.
// Mutexes are never reclaimed; the map is bounded by the number of reminders.
func (s *notificationService) lock(identifier string) func() {
	s.mu.Lock()
	m, ok := s.locks[identifier]
	if !ok {
		m = &sync.Mutex{}
		s.locks[identifier] = m
	}
	s.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// RequestNotificationPermissions checks the current status, prompts when not
// already granted, and on Android (re)creates the reminders channel. All
// failure paths collapse to false: callers only branch on "can I schedule".
func (s *notificationService) RequestNotificationPermissions(ctx context.Context) bool {
	status, err := s.platform.GetPermissions(ctx)
	if err != nil {
		s.log.Error("Failed to read notification permissions", err)
		return false
	}
	if status != notification.PermissionGranted {
		status, err = s.platform.RequestPermissions(ctx)
		if err != nil {
			s.log.Error("Failed to request notification permissions", err)
			return false
		}
	}
	if s.platform.OS() == "android" {
		if err := s.platform.SetNotificationChannel(ctx, reminderChannelID, reminderChannel); err != nil {
			s.log.Error("Failed to set up reminders notification channel", err)
			return false
		}
	}
	return status == notification.PermissionGranted
}

// HasNotificationPermissions reports the current permission status.
func (s *notificationService) HasNotificationPermissions(ctx context.Context) bool {
	status, err := s.platform.GetPermissions(ctx)
	if err != nil {
		s.log.Error("Failed to read notification permissions", err)
		return false
	}
	return status == notification.PermissionGranted
}

// ScheduleReminderNotification cancels any existing notification for the
// reminder and registers a fresh monthly one. The cancel-then-schedule
// sequence is idempotent: cancelling an unknown identifier is a no-op at the
// platform, so at most one notification per reminder exists afterwards.
func (s *notificationService) ScheduleReminderNotification(ctx context.Context, reminderID, title string, amount decimal.Decimal, dayOfMonth int, notifyTime string) string {
	identifier := notification.Identifier(reminderID)
	unlock := s.lock(identifier)
	defer unlock()

	if err := s.platform.Cancel(ctx, identifier); err != nil {
		// Best effort; the platform treats a same-identifier schedule as an
		// upsert, so a failed cancel still converges to one notification.
		s.log.Error(fmt.Sprintf("Failed to cancel existing notification %s before rescheduling", identifier), err)
	}

	hour, minute := parseClock(notifyTime)
	trigger := notification.Trigger{
		Day:      dayOfMonth,
		Hour:     hour,
		Minute:   minute,
		Repeats:  true,
		NextFire: nextTriggerTime(s.now(), dayOfMonth, hour, minute),
	}

	id, err := s.platform.Schedule(ctx, notification.Request{
		Identifier: identifier,
		ChannelID:  reminderChannelID,
		Content: notification.Content{
			Title: reminderTitle,
			Body:  fmt.Sprintf("%s: RM %s is due today", title, amount.StringFixed(2)),
			Data: map[string]any{
				"reminderId": reminderID,
				"type":       "reminder",
				"amount":     amount.StringFixed(2),
			},
		},
		Trigger: &trigger,
	})
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to schedule notification for reminder %s", reminderID), err)
		return ""
	}
	s.log.Info(fmt.Sprintf("Scheduled notification %s (day %d at %02d:%02d, next fire %v)", id, dayOfMonth, hour, minute, trigger.NextFire))
	return id
}

// CancelReminderNotification removes the reminder's notification. Cancellation
// is best effort; errors are logged and never propagated.
func (s *notificationService) CancelReminderNotification(ctx context.Context, reminderID string) {
	identifier := notification.Identifier(reminderID)
	unlock := s.lock(identifier)
	defer unlock()

	if err := s.platform.Cancel(ctx, identifier); err != nil {
		s.log.Error(fmt.Sprintf("Failed to cancel notification %s", identifier), err)
	}
}

// CancelAllNotifications removes every scheduled notification, best effort.
func (s *notificationService) CancelAllNotifications(ctx context.Context) {
	if err := s.platform.CancelAll(ctx); err != nil {
		s.log.Error("Failed to cancel all notifications", err)
	}
}

// GetAllScheduledNotifications lists scheduled notifications. Returns an empty
// slice on failure so callers never need nil checks.
func (s *notificationService) GetAllScheduledNotifications(ctx context.Context) []notification.ScheduledNotification {
	list, err := s.platform.GetScheduled(ctx)
	if err != nil {
		s.log.Error("Failed to list scheduled notifications", err)
		return []notification.ScheduledNotification{}
	}
	if list == nil {
		list = []notification.ScheduledNotification{}
	}
	return list
}

// SendImmediateNotification fires a one-off notification with a nil trigger.
func (s *notificationService) SendImmediateNotification(ctx context.Context, title, body string, data map[string]any) string {
	id, err := s.platform.Schedule(ctx, notification.Request{
		ChannelID: reminderChannelID,
		Content: notification.Content{
			Title: title,
			Body:  body,
			Data:  data,
		},
	})
	if err != nil {
		s.log.Error("Failed to send immediate notification", err)
		return ""
	}
	return id
}

// parseClock parses an HH:MM string. Each component falls back to its default
// (09:00) independently, so a malformed hour does not invalidate a valid
// minute. Never returns an error: a reminder with a garbled time still
// schedules at a sane hour.
func parseClock(s string) (hour, minute int) {
	hour, minute = defaultNotifyHour, defaultNotifyMinute

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return hour, minute
	}
	if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && h >= 0 && h <= 23 {
		hour = h
	}
	if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && m >= 0 && m <= 59 {
		minute = m
	}
	return hour, minute
}

// nextTriggerTime computes the first occurrence of day/hour/minute strictly
// after now. If the instant in the current month has already passed, the
// month advances by one. Out-of-range days are not clamped: time.Date
// normalizes them into the following month, and the recurring trigger itself
// only fires in months that contain the day.
func nextTriggerTime(now time.Time, day, hour, minute int) time.Time {
	t := time.Date(now.Year(), now.Month(), day, hour, minute, 0, 0, now.Location())
	if !t.After(now) {
		t = time.Date(now.Year(), now.Month()+1, day, hour, minute, 0, 0, now.Location())
	}
	return t
}
