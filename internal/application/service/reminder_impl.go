package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"paytrack/internal/application/dto"
	"paytrack/internal/domain/constant"
	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

type reminderService struct {
	reminderRepo      repository.ReminderRepository
	userRepo          repository.UserRepository
	notificationSvc   NotificationService
	defaultNotifyTime string
	log               logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	userRepo repository.UserRepository,
	notificationSvc NotificationService,
	defaultNotifyTime string,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		reminderRepo:      reminderRepo,
		userRepo:          userRepo,
		notificationSvc:   notificationSvc,
		defaultNotifyTime: defaultNotifyTime,
		log:               log,
	}
}

func (s *reminderService) validate(req dto.CreateReminderRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return appErrors.ErrInvalidTitle
	}
	if !req.Amount.IsPositive() {
		return appErrors.ErrInvalidAmount
	}
	if req.DueDay < 1 || req.DueDay > 31 {
		return appErrors.ErrInvalidDueDay
	}
	if req.Category != "" && !constant.Category(req.Category).Valid() {
		return appErrors.ErrInvalidCategory
	}
	return nil
}

// notifyTimeFor picks the effective HH:MM delivery time for a reminder:
// the reminder's own, then the owner's default, then the service default.
func (s *reminderService) notifyTimeFor(ctx context.Context, r *entity.Reminder) string {
	if r.NotifyTime != "" {
		return r.NotifyTime
	}
	if user, err := s.userRepo.FindByID(ctx, r.UserID); err == nil && user.NotifyTime != "" {
		return user.NotifyTime
	}
	return s.defaultNotifyTime
}

// schedule registers the reminder's notification. A failed schedule is logged
// and does not fail the store write; the reminder stays saved and the next
// mutation or startup sync will retry.
func (s *reminderService) schedule(ctx context.Context, r *entity.Reminder) {
	id := s.notificationSvc.ScheduleReminderNotification(ctx, r.RefID(), r.Title, r.Amount, r.DueDay, s.notifyTimeFor(ctx, r))
	if id == "" {
		s.log.Warn(fmt.Sprintf("Reminder %d saved but its notification was not scheduled", r.ID))
	}
}

// CreateReminder validates and stores a new reminder, scheduling its
// notification when enabled.
func (s *reminderService) CreateReminder(ctx context.Context, req dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	category := constant.Category(req.Category)
	if req.Category == "" {
		category = constant.CategoryOther
	}

	reminder := &entity.Reminder{
		UserID:     req.UserID,
		Title:      strings.TrimSpace(req.Title),
		Amount:     req.Amount,
		DueDay:     req.DueDay,
		NotifyTime: req.NotifyTime,
		IsEnabled:  enabled,
		Category:   category,
	}
	if _, err := s.reminderRepo.Create(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for user %s", req.UserID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if reminder.IsEnabled {
		s.schedule(ctx, reminder)
	}

	s.log.Info(fmt.Sprintf("Created reminder %d for user %s", reminder.ID, req.UserID))
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// findOwned fetches a reminder and checks ownership. A reminder belonging to
// another user is reported as not found, not as forbidden.
func (s *reminderService) findOwned(ctx context.Context, id uint, userID string) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.ErrReminderNotFound
	}
	if reminder.UserID != userID {
		return nil, appErrors.ErrReminderNotFound
	}
	return reminder, nil
}

// UpdateReminder updates a reminder and replaces or cancels its notification.
func (s *reminderService) UpdateReminder(ctx context.Context, id uint, req dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	if err := s.validate(dto.CreateReminderRequest{
		Title:    req.Title,
		Amount:   req.Amount,
		DueDay:   req.DueDay,
		Category: req.Category,
	}); err != nil {
		return nil, err
	}

	reminder, err := s.findOwned(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	reminder.Title = strings.TrimSpace(req.Title)
	reminder.Amount = req.Amount
	reminder.DueDay = req.DueDay
	reminder.NotifyTime = req.NotifyTime
	reminder.IsEnabled = req.IsEnabled
	if req.Category != "" {
		reminder.Category = constant.Category(req.Category)
	}

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update reminder %d", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if reminder.IsEnabled {
		s.schedule(ctx, reminder)
	} else {
		s.notificationSvc.CancelReminderNotification(ctx, reminder.RefID())
	}

	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// ToggleReminder flips the enabled flag and schedules or cancels accordingly.
func (s *reminderService) ToggleReminder(ctx context.Context, id uint, userID string) (*dto.ReminderResponse, error) {
	reminder, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	reminder.IsEnabled = !reminder.IsEnabled
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to toggle reminder %d", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if reminder.IsEnabled {
		s.schedule(ctx, reminder)
	} else {
		s.notificationSvc.CancelReminderNotification(ctx, reminder.RefID())
	}

	s.log.Info(fmt.Sprintf("Toggled reminder %d to enabled=%v", id, reminder.IsEnabled))
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// DeleteReminder removes a reminder and cancels its notification.
func (s *reminderService) DeleteReminder(ctx context.Context, id uint, userID string) error {
	reminder, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.reminderRepo.Delete(ctx, reminder.ID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminder %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.notificationSvc.CancelReminderNotification(ctx, reminder.RefID())
	s.log.Info(fmt.Sprintf("Deleted reminder %d for user %s", id, userID))
	return nil
}

// ListReminders retrieves all reminders for a user.
func (s *reminderService) ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// SyncSchedules re-registers every enabled reminder's notification.
func (s *reminderService) SyncSchedules(ctx context.Context) error {
	reminders, err := s.reminderRepo.FindEnabled(ctx)
	if err != nil {
		s.log.Error("Failed to load reminders for schedule sync", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	scheduled := 0
	for _, reminder := range reminders {
		if id := s.notificationSvc.ScheduleReminderNotification(ctx, reminder.RefID(), reminder.Title, reminder.Amount, reminder.DueDay, s.notifyTimeFor(ctx, reminder)); id != "" {
			scheduled++
		}
	}
	s.log.Info(fmt.Sprintf("Schedule sync complete: %d of %d enabled reminders scheduled", scheduled, len(reminders)))
	return nil
}

// RecipientFor resolves a reminder's delivery target: the owner's linked LINE
// account, or "" when none is linked (the platform falls back to its default).
func (s *reminderService) RecipientFor(ctx context.Context, reminderID string) (string, error) {
	id, err := strconv.ParseUint(reminderID, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid reminder id %q: %w", reminderID, err)
	}
	reminder, err := s.reminderRepo.FindByID(ctx, uint(id))
	if err != nil {
		return "", appErrors.ErrReminderNotFound
	}
	user, err := s.userRepo.FindByID(ctx, reminder.UserID)
	if err != nil {
		return "", appErrors.ErrUserNotFound
	}
	return user.Recipient(), nil
}
