package errors

import "errors"

// Custom application errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrGoalNotFound        = errors.New("savings goal not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTitle        = errors.New("title must not be empty")
	ErrInvalidAmount       = errors.New("amount must be a positive decimal")
	ErrInvalidDueDay       = errors.New("due day must be between 1 and 31")
	ErrInvalidCategory     = errors.New("unknown category")
	ErrInvalidPeriod       = errors.New("invalid report period")
	ErrDatabaseOperation   = errors.New("database operation failed")
	ErrScheduling          = errors.New("notification scheduling failed")
	ErrNotificationSend    = errors.New("notification delivery failed")
	ErrInternalServer      = errors.New("internal server error")
)
