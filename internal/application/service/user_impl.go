package service

import (
	"context"
	"fmt"

	"paytrack/internal/application/dto"
	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

type userService struct {
	userRepo          repository.UserRepository
	reminderRepo      repository.ReminderRepository
	notificationSvc   NotificationService
	defaultNotifyTime string
	log               logger.Logger
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(
	userRepo repository.UserRepository,
	reminderRepo repository.ReminderRepository,
	notificationSvc NotificationService,
	defaultNotifyTime string,
	log logger.Logger,
) UserService {
	return &userService{
		userRepo:          userRepo,
		reminderRepo:      reminderRepo,
		notificationSvc:   notificationSvc,
		defaultNotifyTime: defaultNotifyTime,
		log:               log,
	}
}

// GetOrCreateUser finds a user by ID or creates a new one if not found.
func (s *userService) GetOrCreateUser(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err == nil {
		resp := dto.ToUserResponse(user)
		return &resp, nil
	}

	notifyTime := req.NotifyTime
	if notifyTime == "" {
		notifyTime = s.defaultNotifyTime
	}
	user = &entity.User{
		ID:         req.UserID,
		LineUserID: req.LineUserID,
		NotifyTime: notifyTime,
	}
	if createErr := s.userRepo.Create(ctx, user); createErr != nil {
		s.log.Error(fmt.Sprintf("Failed to create user %s", req.UserID), createErr)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, createErr)
	}
	s.log.Info(fmt.Sprintf("Created user %s", req.UserID))
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// GetUser finds a user by ID. Returns an error if not found.
func (s *userService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// LinkLine attaches a LINE account for push delivery.
func (s *userService) LinkLine(ctx context.Context, req dto.LinkLineRequest) error {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return appErrors.ErrUserNotFound
	}

	user.LineUserID = &req.LineUserID
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to link LINE account for user %s", req.UserID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Linked LINE account for user %s", req.UserID))
	return nil
}

// UpdateNotifyTime changes the user's default delivery time and reschedules
// enabled reminders that inherit it (those without a time of their own).
func (s *userService) UpdateNotifyTime(ctx context.Context, req dto.UpdateNotifyTimeRequest) error {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return appErrors.ErrUserNotFound
	}

	user.NotifyTime = req.NotifyTime
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update notify time for user %s", req.UserID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	reminders, err := s.reminderRepo.FindEnabledByUserID(ctx, req.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load reminders for reschedule after notify time change, user %s", req.UserID), err)
		return nil // The time is saved; schedules catch up on the next sync.
	}
	for _, reminder := range reminders {
		if reminder.NotifyTime != "" {
			continue
		}
		s.notificationSvc.ScheduleReminderNotification(ctx, reminder.RefID(), reminder.Title, reminder.Amount, reminder.DueDay, req.NotifyTime)
	}
	return nil
}

// DeleteUser deletes the user and all their reminders, cancelling any
// scheduled notifications first so no orphaned schedule outlives the store.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	reminders, err := s.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load reminders for user %s during deletion", userID), err)
	} else {
		for _, reminder := range reminders {
			s.notificationSvc.CancelReminderNotification(ctx, reminder.RefID())
		}
	}

	if err := s.reminderRepo.DeleteByUserID(ctx, userID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminders for user %s", userID), err)
		// Continue; the user row is the authority for account existence.
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete user %s", userID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Deleted user %s and their reminders", userID))
	return nil
}
