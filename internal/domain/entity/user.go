package entity

import "time"

// User represents an account owner. IDs are opaque strings assigned by the
// client (the mobile app uses its auth provider's UID).
type User struct {
	ID         string  `gorm:"column:user_id;primaryKey"`
	LineUserID *string `gorm:"column:line_user_id"` // Push delivery target; nil until the user links LINE
	NotifyTime string  `gorm:"column:notify_time"`  // Default HH:MM delivery time for this user's reminders
	CreatedAt  time.Time
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// Recipient returns the linked LINE user id, or "" when none is linked.
func (u *User) Recipient() string {
	if u.LineUserID == nil {
		return ""
	}
	return *u.LineUserID
}
