package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/entity"
)

// CreateReminderRequest is the DTO for creating a new payment reminder.
type CreateReminderRequest struct {
	UserID     string          `json:"user_id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	DueDay     int             `json:"due_day"`
	Category   string          `json:"category"`
	NotifyTime string          `json:"notify_time,omitempty"` // HH:MM, user default when empty
	IsEnabled  *bool           `json:"is_enabled,omitempty"`  // Defaults to true
}

// UpdateReminderRequest is the DTO for updating an existing reminder.
type UpdateReminderRequest struct {
	UserID     string          `json:"user_id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	DueDay     int             `json:"due_day"`
	Category   string          `json:"category"`
	NotifyTime string          `json:"notify_time,omitempty"`
	IsEnabled  bool            `json:"is_enabled"`
}

// ToggleReminderRequest is the DTO for flipping a reminder's enabled flag.
type ToggleReminderRequest struct {
	UserID string `json:"user_id"`
}

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	DueDay       int             `json:"due_day"`
	Category     string          `json:"category"`
	CategoryIcon string          `json:"category_icon"`
	NotifyTime   string          `json:"notify_time,omitempty"`
	IsEnabled    bool            `json:"is_enabled"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:           r.ID,
		Title:        r.Title,
		Amount:       r.Amount,
		DueDay:       r.DueDay,
		Category:     r.Category.String(),
		CategoryIcon: r.Category.Icon(),
		NotifyTime:   r.NotifyTime,
		IsEnabled:    r.IsEnabled,
		CreatedAt:    r.CreatedAt,
	}
}

// ToReminderResponseList converts a slice of entity.Reminder to DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}
