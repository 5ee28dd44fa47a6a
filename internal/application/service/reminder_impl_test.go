package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"paytrack/internal/application/dto"
	"paytrack/internal/domain/constant"
	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/notification"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

// fakeReminderRepo is an in-memory ReminderRepository.
type fakeReminderRepo struct {
	reminders map[uint]*entity.Reminder
	nextID    uint
	createErr error
	updateErr error
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[uint]*entity.Reminder), nextID: 1}
}

func (f *fakeReminderRepo) FindByID(ctx context.Context, id uint) (*entity.Reminder, error) {
	r, ok := f.reminders[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReminderRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var out []*entity.Reminder
	for _, r := range f.reminders {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) FindEnabled(ctx context.Context) ([]*entity.Reminder, error) {
	var out []*entity.Reminder
	for _, r := range f.reminders {
		if r.IsEnabled {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) FindEnabledByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var out []*entity.Reminder
	for _, r := range f.reminders {
		if r.UserID == userID && r.IsEnabled {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) Create(ctx context.Context, reminder *entity.Reminder) (uint, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	reminder.ID = f.nextID
	f.nextID++
	cp := *reminder
	f.reminders[reminder.ID] = &cp
	return reminder.ID, nil
}

func (f *fakeReminderRepo) Update(ctx context.Context, reminder *entity.Reminder) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *reminder
	f.reminders[reminder.ID] = &cp
	return nil
}

func (f *fakeReminderRepo) Delete(ctx context.Context, id uint) error {
	delete(f.reminders, id)
	return nil
}

func (f *fakeReminderRepo) DeleteByUserID(ctx context.Context, userID string) error {
	for id, r := range f.reminders {
		if r.UserID == userID {
			delete(f.reminders, id)
		}
	}
	return nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID string) error {
	delete(f.users, userID)
	return nil
}

// fakeNotificationService records schedule/cancel calls without a platform.
type fakeNotificationService struct {
	scheduleCalls []string // reminder IDs, in order
	notifyTimes   []string
	cancelCalls   []string
	failSchedule  bool
	onCancel      func(reminderID string)
}

func (f *fakeNotificationService) RequestNotificationPermissions(ctx context.Context) bool { return true }
func (f *fakeNotificationService) HasNotificationPermissions(ctx context.Context) bool     { return true }

func (f *fakeNotificationService) ScheduleReminderNotification(ctx context.Context, reminderID, title string, amount decimal.Decimal, dayOfMonth int, notifyTime string) string {
	f.scheduleCalls = append(f.scheduleCalls, reminderID)
	f.notifyTimes = append(f.notifyTimes, notifyTime)
	if f.failSchedule {
		return ""
	}
	return notification.Identifier(reminderID)
}

func (f *fakeNotificationService) CancelReminderNotification(ctx context.Context, reminderID string) {
	f.cancelCalls = append(f.cancelCalls, reminderID)
	if f.onCancel != nil {
		f.onCancel(reminderID)
	}
}

func (f *fakeNotificationService) CancelAllNotifications(ctx context.Context) {}

func (f *fakeNotificationService) GetAllScheduledNotifications(ctx context.Context) []notification.ScheduledNotification {
	return nil
}

func (f *fakeNotificationService) SendImmediateNotification(ctx context.Context, title, body string, data map[string]any) string {
	return "immediate-1"
}

func newReminderTestService(reminderRepo *fakeReminderRepo, userRepo *fakeUserRepo, notifySvc *fakeNotificationService) ReminderService {
	return NewReminderService(reminderRepo, userRepo, notifySvc, "09:00", logger.New("error", "test"))
}

func validCreateRequest() dto.CreateReminderRequest {
	return dto.CreateReminderRequest{
		UserID:   "u1",
		Title:    "Electricity Bill",
		Amount:   decimal.NewFromFloat(150.50),
		DueDay:   15,
		Category: "bills",
	}
}

func TestCreateReminder_SchedulesWhenEnabled(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1"})
	notifySvc := &fakeNotificationService{}
	svc := newReminderTestService(reminderRepo, userRepo, notifySvc)

	resp, err := svc.CreateReminder(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsEnabled {
		t.Fatalf("reminder should default to enabled")
	}
	if len(notifySvc.scheduleCalls) != 1 || notifySvc.scheduleCalls[0] != "1" {
		t.Fatalf("want one schedule call for reminder 1, got %v", notifySvc.scheduleCalls)
	}
	if notifySvc.notifyTimes[0] != "09:00" {
		t.Fatalf("want service default notify time, got %q", notifySvc.notifyTimes[0])
	}
}

func TestCreateReminder_DisabledSkipsScheduling(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1"})
	notifySvc := &fakeNotificationService{}
	svc := newReminderTestService(reminderRepo, userRepo, notifySvc)

	disabled := false
	req := validCreateRequest()
	req.IsEnabled = &disabled

	if _, err := svc.CreateReminder(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifySvc.scheduleCalls) != 0 {
		t.Fatalf("disabled reminder must not be scheduled, got %v", notifySvc.scheduleCalls)
	}
}

func TestCreateReminder_UserNotifyTimePreferred(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", NotifyTime: "21:30"})
	notifySvc := &fakeNotificationService{}
	svc := newReminderTestService(reminderRepo, userRepo, notifySvc)

	if _, err := svc.CreateReminder(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifySvc.notifyTimes[0] != "21:30" {
		t.Fatalf("want user's notify time, got %q", notifySvc.notifyTimes[0])
	}
}

func TestCreateReminder_ScheduleFailureStillPersists(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1"})
	notifySvc := &fakeNotificationService{failSchedule: true}
	svc := newReminderTestService(reminderRepo, userRepo, notifySvc)

	resp, err := svc.CreateReminder(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("schedule failure must not fail the create: %v", err)
	}
	if _, ok := reminderRepo.reminders[resp.ID]; !ok {
		t.Fatalf("reminder should be persisted despite schedule failure")
	}
}

func TestCreateReminder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateReminderRequest)
		want   error
	}{
		{"empty title", func(r *dto.CreateReminderRequest) { r.Title = "  " }, appErrors.ErrInvalidTitle},
		{"zero amount", func(r *dto.CreateReminderRequest) { r.Amount = decimal.Zero }, appErrors.ErrInvalidAmount},
		{"negative amount", func(r *dto.CreateReminderRequest) { r.Amount = decimal.NewFromInt(-5) }, appErrors.ErrInvalidAmount},
		{"day zero", func(r *dto.CreateReminderRequest) { r.DueDay = 0 }, appErrors.ErrInvalidDueDay},
		{"day 32", func(r *dto.CreateReminderRequest) { r.DueDay = 32 }, appErrors.ErrInvalidDueDay},
		{"bad category", func(r *dto.CreateReminderRequest) { r.Category = "gambling" }, appErrors.ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newReminderTestService(newFakeReminderRepo(), newFakeUserRepo(&entity.User{ID: "u1"}), &fakeNotificationService{})
			req := validCreateRequest()
			tt.mutate(&req)
			if _, err := svc.CreateReminder(context.Background(), req); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateReminder_UnknownUser(t *testing.T) {
	svc := newReminderTestService(newFakeReminderRepo(), newFakeUserRepo(), &fakeNotificationService{})
	if _, err := svc.CreateReminder(context.Background(), validCreateRequest()); !errors.Is(err, appErrors.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

func TestToggleReminder_CancelsWhenDisabled(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1"})
	notifySvc := &fakeNotificationService{}
	svc := newReminderTestService(reminderRepo, userRepo, notifySvc)

	resp, err := svc.CreateReminder(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	toggled, err := svc.ToggleReminder(context.Background(), resp.ID, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.IsEnabled {
		t.Fatalf("toggle should disable an enabled reminder")
	}
	if len(notifySvc.cancelCalls) != 1 || notifySvc.cancelCalls[0] != "1" {
		t.Fatalf("want one cancel for reminder 1, got %v", notifySvc.cancelCalls)
	}

	// Toggling back re-schedules.
	toggled, err = svc.ToggleReminder(context.Background(), resp.ID, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.IsEnabled {
		t.Fatalf("second toggle should re-enable")
	}
	if len(notifySvc.scheduleCalls) != 2 {
		t.Fatalf("want a second schedule call, got %v", notifySvc.scheduleCalls)
	}
}

func TestUpdateReminder_OwnershipHidesForeignReminder(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1"}, &entity.User{ID: "u2"})
	svc := newReminderTestService(reminderRepo, userRepo, &fakeNotificationService{})

	resp, err := svc.CreateReminder(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.UpdateReminder(context.Background(), resp.ID, dto.UpdateReminderRequest{
		UserID: "u2",
		Title:  "Hijack",
		Amount: decimal.NewFromInt(1),
		DueDay: 1,
	})
	if !errors.Is(err, appErrors.ErrReminderNotFound) {
		t.Fatalf("foreign reminder must look not-found, got %v", err)
	}
}

func TestDeleteReminder_CancelsNotification(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1"})
	notifySvc := &fakeNotificationService{}
	svc := newReminderTestService(reminderRepo, userRepo, notifySvc)

	resp, err := svc.CreateReminder(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteReminder(context.Background(), resp.ID, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifySvc.cancelCalls) != 1 {
		t.Fatalf("want one cancel call, got %v", notifySvc.cancelCalls)
	}
	if len(reminderRepo.reminders) != 0 {
		t.Fatalf("reminder should be gone from the store")
	}
}

func TestSyncSchedules_SchedulesOnlyEnabled(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1"})
	notifySvc := &fakeNotificationService{}
	svc := newReminderTestService(reminderRepo, userRepo, notifySvc)

	reminderRepo.reminders[1] = &entity.Reminder{ID: 1, UserID: "u1", Title: "Rent", Amount: decimal.NewFromInt(800), DueDay: 1, IsEnabled: true, Category: constant.CategoryBills}
	reminderRepo.reminders[2] = &entity.Reminder{ID: 2, UserID: "u1", Title: "Gym", Amount: decimal.NewFromInt(50), DueDay: 5, IsEnabled: false, Category: constant.CategoryHealth}

	if err := svc.SyncSchedules(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifySvc.scheduleCalls) != 1 || notifySvc.scheduleCalls[0] != "1" {
		t.Fatalf("only the enabled reminder should be scheduled, got %v", notifySvc.scheduleCalls)
	}
}

func TestRecipientFor(t *testing.T) {
	lineID := "U12345"
	reminderRepo := newFakeReminderRepo()
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", LineUserID: &lineID})
	svc := newReminderTestService(reminderRepo, userRepo, &fakeNotificationService{})

	reminderRepo.reminders[7] = &entity.Reminder{ID: 7, UserID: "u1", Title: "Rent", Amount: decimal.NewFromInt(800), DueDay: 1, IsEnabled: true}

	got, err := svc.RecipientFor(context.Background(), "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != lineID {
		t.Fatalf("want %q, got %q", lineID, got)
	}

	if _, err := svc.RecipientFor(context.Background(), "99"); !errors.Is(err, appErrors.ErrReminderNotFound) {
		t.Fatalf("want ErrReminderNotFound, got %v", err)
	}
	if _, err := svc.RecipientFor(context.Background(), "not-a-number"); err == nil {
		t.Fatalf("want error for malformed id")
	}
}
