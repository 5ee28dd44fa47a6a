package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, id uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find reminder %d: %w", id, err)
	}
	return &reminder, nil
}

// FindByUserID retrieves all reminders for a specific user, newest first.
func (r *reminderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find reminders for user %s: %w", userID, err)
	}
	return reminders, nil
}

// FindEnabled retrieves all enabled reminders.
func (r *reminderRepository) FindEnabled(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("is_enabled = ?", true).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find enabled reminders: %w", err)
	}
	return reminders, nil
}

// FindEnabledByUserID retrieves enabled reminders for a specific user.
func (r *reminderRepository) FindEnabledByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ? AND is_enabled = ?", userID, true).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find enabled reminders for user %s: %w", userID, err)
	}
	return reminders, nil
}

// Create creates a new reminder. Returns the ID of the created reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) (uint, error) {
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return 0, fmt.Errorf("failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return reminder.ID, nil
}

// Update updates an existing reminder.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	if err := r.db.WithContext(ctx).Save(reminder).Error; err != nil {
		return fmt.Errorf("failed to update reminder %d: %w", reminder.ID, err)
	}
	return nil
}

// Delete deletes a reminder by its ID.
func (r *reminderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Reminder{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reminder %d: %w", id, err)
	}
	return nil
}

// DeleteByUserID deletes all reminders for a specific user.
func (r *reminderRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("failed to delete reminders for user %s: %w", userID, err)
	}
	return nil
}
