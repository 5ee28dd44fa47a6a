package dto

import (
	"time"

	"paytrack/internal/domain/entity"
)

// RegisterUserRequest is the DTO for creating (or fetching) a user account.
type RegisterUserRequest struct {
	UserID     string  `json:"user_id"`
	LineUserID *string `json:"line_user_id,omitempty"`
	NotifyTime string  `json:"notify_time,omitempty"` // HH:MM, defaults when empty
}

// LinkLineRequest is the DTO for linking a LINE account for push delivery.
type LinkLineRequest struct {
	UserID     string `json:"user_id"`
	LineUserID string `json:"line_user_id"`
}

// UpdateNotifyTimeRequest is the DTO for changing a user's default delivery time.
type UpdateNotifyTimeRequest struct {
	UserID     string `json:"user_id"`
	NotifyTime string `json:"notify_time"`
}

// UserResponse is the DTO for sending user information to the client.
type UserResponse struct {
	ID         string    `json:"id"`
	LineLinked bool      `json:"line_linked"`
	NotifyTime string    `json:"notify_time"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		LineLinked: u.LineUserID != nil && *u.LineUserID != "",
		NotifyTime: u.NotifyTime,
		CreatedAt:  u.CreatedAt,
	}
}
