package notification

import (
	"context"
	"time"
)

// IdentifierPrefix is prepended to a reminder's store ID to form its
// notification identifier. The format must stay stable so that schedules
// registered by earlier deployments remain addressable.
const IdentifierPrefix = "reminder-"

// Identifier derives the notification identifier for a reminder.
func Identifier(reminderID string) string {
	return IdentifierPrefix + reminderID
}

// PermissionStatus is the platform's answer to a permission query.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)

// Trigger describes a monthly recurrence: fire on Day at Hour:Minute.
// NextFire is the computed first occurrence; the platform's recurrence engine
// is authoritative for actual firing and simply skips months that do not
// contain Day.
type Trigger struct {
	Day      int       `json:"day"`
	Hour     int       `json:"hour"`
	Minute   int       `json:"minute"`
	Repeats  bool      `json:"repeats"`
	NextFire time.Time `json:"next_fire"`
}

// Content is the displayable payload of a notification. Data travels opaque
// through the platform for downstream consumers (deep links, tap handling).
type Content struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// Request is a scheduling request submitted to the platform. A nil Trigger
// means fire immediately. An empty Identifier asks the platform to assign one.
type Request struct {
	Identifier string
	ChannelID  string
	Content    Content
	Trigger    *Trigger
}

// ScheduledNotification is a notification currently registered with the platform.
type ScheduledNotification struct {
	Identifier string  `json:"identifier"`
	Content    Content `json:"content"`
	Trigger    Trigger `json:"trigger"`
}

// Channel groups notifications under shared importance and presentation
// settings. Only meaningful on Android-like platforms; re-registering the same
// ID updates settings in place.
type Channel struct {
	Name             string
	Importance       Importance
	VibrationPattern []int
	LightColor       string
}

// Importance controls how intrusively a channel's notifications display.
type Importance int

const (
	ImportanceDefault Importance = iota
	ImportanceHigh
	ImportanceMax
)

// HandlerBehavior configures how notifications present while the app is in
// the foreground. It is injected once at startup rather than registered as a
// package-level side effect, so construction order carries no hidden state.
type HandlerBehavior struct {
	ShowAlert bool
	PlaySound bool
	SetBadge  bool
}

// Platform is the notification service the scheduler drives. Implementations
// wrap either a real device notification API or a server-side stand-in.
// Cancelling an unknown identifier is a no-op, not an error.
type Platform interface {
	// OS returns the platform label ("android", "ios", ...).
	OS() string
	// GetPermissions returns the current permission status.
	GetPermissions(ctx context.Context) (PermissionStatus, error)
	// RequestPermissions prompts for permission if possible and returns the
	// resulting status.
	RequestPermissions(ctx context.Context) (PermissionStatus, error)
	// SetNotificationChannel creates or updates a notification channel.
	SetNotificationChannel(ctx context.Context, id string, ch Channel) error
	// SetNotificationHandler installs the foreground presentation behavior.
	SetNotificationHandler(b HandlerBehavior)
	// Schedule registers a notification and returns its identifier.
	Schedule(ctx context.Context, req Request) (string, error)
	// Cancel removes the notification with the given identifier, if present.
	Cancel(ctx context.Context, identifier string) error
	// CancelAll removes every scheduled notification.
	CancelAll(ctx context.Context) error
	// GetScheduled lists all currently scheduled notifications.
	GetScheduled(ctx context.Context) ([]ScheduledNotification, error)
}
