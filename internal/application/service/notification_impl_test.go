package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/notification"
	"paytrack/internal/pkg/logger"
)

// fakePlatform is an in-memory notification.Platform with programmable failures.
type fakePlatform struct {
	os            string
	permStatus    notification.PermissionStatus
	permErr       error
	requestStatus notification.PermissionStatus
	requestErr    error
	requestCalls  int
	channels      map[string]notification.Channel
	channelErr    error
	scheduled     map[string]notification.Request
	scheduleErr   error
	cancelErr     error
	cancelAllErr  error
	getErr        error
	cancelCalls   []string
	immediateSeq  int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		os:            "android",
		permStatus:    notification.PermissionGranted,
		requestStatus: notification.PermissionGranted,
		channels:      make(map[string]notification.Channel),
		scheduled:     make(map[string]notification.Request),
	}
}

func (f *fakePlatform) OS() string { return f.os }

func (f *fakePlatform) GetPermissions(ctx context.Context) (notification.PermissionStatus, error) {
	return f.permStatus, f.permErr
}

func (f *fakePlatform) RequestPermissions(ctx context.Context) (notification.PermissionStatus, error) {
	f.requestCalls++
	return f.requestStatus, f.requestErr
}

func (f *fakePlatform) SetNotificationChannel(ctx context.Context, id string, ch notification.Channel) error {
	if f.channelErr != nil {
		return f.channelErr
	}
	f.channels[id] = ch
	return nil
}

func (f *fakePlatform) SetNotificationHandler(b notification.HandlerBehavior) {}

func (f *fakePlatform) Schedule(ctx context.Context, req notification.Request) (string, error) {
	if f.scheduleErr != nil {
		return "", f.scheduleErr
	}
	identifier := req.Identifier
	if identifier == "" {
		f.immediateSeq++
		identifier = fmt.Sprintf("immediate-%d", f.immediateSeq)
	}
	if req.Trigger != nil {
		f.scheduled[identifier] = req
	}
	return identifier, nil
}

func (f *fakePlatform) Cancel(ctx context.Context, identifier string) error {
	f.cancelCalls = append(f.cancelCalls, identifier)
	if f.cancelErr != nil {
		return f.cancelErr
	}
	delete(f.scheduled, identifier)
	return nil
}

func (f *fakePlatform) CancelAll(ctx context.Context) error {
	if f.cancelAllErr != nil {
		return f.cancelAllErr
	}
	f.scheduled = make(map[string]notification.Request)
	return nil
}

func (f *fakePlatform) GetScheduled(ctx context.Context) ([]notification.ScheduledNotification, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	list := make([]notification.ScheduledNotification, 0, len(f.scheduled))
	for id, req := range f.scheduled {
		list = append(list, notification.ScheduledNotification{Identifier: id, Content: req.Content, Trigger: *req.Trigger})
	}
	return list, nil
}

func newTestService(t *testing.T, f *fakePlatform) *notificationService {
	t.Helper()
	svc := NewNotificationService(f, notification.HandlerBehavior{ShowAlert: true}, logger.New("error", "test"))
	impl, ok := svc.(*notificationService)
	if !ok {
		t.Fatalf("unexpected service implementation type")
	}
	return impl
}

func TestScheduleReminderNotification_Payload(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(t, f)

	id := s.ScheduleReminderNotification(context.Background(), "r1", "Electricity Bill", decimal.NewFromFloat(150.50), 15, "")
	if id != "reminder-r1" {
		t.Fatalf("want identifier reminder-r1, got %q", id)
	}

	req, ok := f.scheduled["reminder-r1"]
	if !ok {
		t.Fatalf("expected a scheduled request for reminder-r1")
	}
	if req.Content.Body != "Electricity Bill: RM 150.50 is due today" {
		t.Errorf("unexpected body %q", req.Content.Body)
	}
	if req.Trigger.Day != 15 || req.Trigger.Hour != 9 || req.Trigger.Minute != 0 || !req.Trigger.Repeats {
		t.Errorf("unexpected trigger %+v", req.Trigger)
	}
	if req.Content.Data["type"] != "reminder" || req.Content.Data["reminderId"] != "r1" {
		t.Errorf("unexpected data payload %+v", req.Content.Data)
	}
}

func TestScheduleReminderNotification_TwiceKeepsOne(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(t, f)

	s.ScheduleReminderNotification(context.Background(), "r1", "Rent", decimal.NewFromInt(800), 1, "08:00")
	s.ScheduleReminderNotification(context.Background(), "r1", "Rent", decimal.NewFromInt(850), 1, "08:00")

	if len(f.scheduled) != 1 {
		t.Fatalf("want exactly one scheduled notification, got %d", len(f.scheduled))
	}
	if got := f.scheduled["reminder-r1"].Content.Body; got != "Rent: RM 850.00 is due today" {
		t.Errorf("second schedule should have replaced the first, body %q", got)
	}
	// Cancel runs before each schedule.
	if len(f.cancelCalls) != 2 {
		t.Errorf("want 2 cancel calls, got %d", len(f.cancelCalls))
	}
}

func TestScheduleReminderNotification_PlatformError(t *testing.T) {
	f := newFakePlatform()
	f.scheduleErr = errors.New("platform down")
	s := newTestService(t, f)

	if id := s.ScheduleReminderNotification(context.Background(), "r1", "Rent", decimal.NewFromInt(800), 1, ""); id != "" {
		t.Errorf("want empty identifier on platform error, got %q", id)
	}
}

func TestScheduleReminderNotification_CancelFailureStillSchedules(t *testing.T) {
	f := newFakePlatform()
	f.cancelErr = errors.New("cancel failed")
	s := newTestService(t, f)

	if id := s.ScheduleReminderNotification(context.Background(), "r2", "Water Bill", decimal.NewFromInt(30), 5, ""); id != "reminder-r2" {
		t.Errorf("schedule should proceed past a failed cancel, got %q", id)
	}
	if _, ok := f.scheduled["reminder-r2"]; !ok {
		t.Errorf("expected notification to be scheduled despite cancel failure")
	}
}

func TestCancelReminderNotification_RemovesEntry(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(t, f)

	s.ScheduleReminderNotification(context.Background(), "r1", "Rent", decimal.NewFromInt(800), 1, "")
	s.CancelReminderNotification(context.Background(), "r1")

	for _, n := range s.GetAllScheduledNotifications(context.Background()) {
		if n.Identifier == "reminder-r1" {
			t.Fatalf("cancelled notification still listed")
		}
	}
}

func TestCancelReminderNotification_SwallowsError(t *testing.T) {
	f := newFakePlatform()
	f.cancelErr = errors.New("cancel failed")
	s := newTestService(t, f)

	// Must not panic or propagate.
	s.CancelReminderNotification(context.Background(), "r1")
}

func TestCancelAllNotifications_SwallowsError(t *testing.T) {
	f := newFakePlatform()
	f.cancelAllErr = errors.New("boom")
	s := newTestService(t, f)

	s.CancelAllNotifications(context.Background())
}

func TestGetAllScheduledNotifications_EmptyOnError(t *testing.T) {
	f := newFakePlatform()
	f.getErr = errors.New("boom")
	s := newTestService(t, f)

	list := s.GetAllScheduledNotifications(context.Background())
	if list == nil || len(list) != 0 {
		t.Fatalf("want empty non-nil slice on error, got %v", list)
	}
}

func TestSendImmediateNotification(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(t, f)

	id := s.SendImmediateNotification(context.Background(), "Test", "hello", map[string]any{"type": "test"})
	if id == "" {
		t.Fatalf("want platform-assigned identifier, got empty")
	}
	if len(f.scheduled) != 0 {
		t.Errorf("immediate notifications must not be registered as scheduled")
	}

	f.scheduleErr = errors.New("boom")
	if id := s.SendImmediateNotification(context.Background(), "Test", "hello", nil); id != "" {
		t.Errorf("want empty identifier on error, got %q", id)
	}
}

func TestRequestNotificationPermissions_AlreadyGranted(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(t, f)

	if !s.RequestNotificationPermissions(context.Background()) {
		t.Fatalf("want true when status is already granted")
	}
	if f.requestCalls != 0 {
		t.Errorf("prompt must not run when already granted, got %d calls", f.requestCalls)
	}
	ch, ok := f.channels[reminderChannelID]
	if !ok {
		t.Fatalf("android channel setup did not run")
	}
	if ch.Name != "Payment Reminders" || ch.Importance != notification.ImportanceHigh {
		t.Errorf("unexpected channel settings %+v", ch)
	}
}

func TestRequestNotificationPermissions_PromptOutcomes(t *testing.T) {
	cases := []struct {
		name   string
		status notification.PermissionStatus
		want   bool
	}{
		{"granted after prompt", notification.PermissionGranted, true},
		{"denied after prompt", notification.PermissionDenied, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakePlatform()
			f.permStatus = notification.PermissionUndetermined
			f.requestStatus = tc.status
			s := newTestService(t, f)

			if got := s.RequestNotificationPermissions(context.Background()); got != tc.want {
				t.Errorf("want %v, got %v", tc.want, got)
			}
			if f.requestCalls != 1 {
				t.Errorf("want exactly one prompt, got %d", f.requestCalls)
			}
		})
	}
}

func TestRequestNotificationPermissions_IOSSkipsChannel(t *testing.T) {
	f := newFakePlatform()
	f.os = "ios"
	s := newTestService(t, f)

	if !s.RequestNotificationPermissions(context.Background()) {
		t.Fatalf("want true on granted status")
	}
	if len(f.channels) != 0 {
		t.Errorf("channel setup must not run on ios")
	}
}

func TestRequestNotificationPermissions_Errors(t *testing.T) {
	f := newFakePlatform()
	f.permErr = errors.New("boom")
	s := newTestService(t, f)
	if s.RequestNotificationPermissions(context.Background()) {
		t.Errorf("want false when the status read fails")
	}

	f = newFakePlatform()
	f.channelErr = errors.New("boom")
	s = newTestService(t, f)
	if s.RequestNotificationPermissions(context.Background()) {
		t.Errorf("want false when channel setup fails")
	}
}

func TestHasNotificationPermissions(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(t, f)
	if !s.HasNotificationPermissions(context.Background()) {
		t.Errorf("want true on granted")
	}

	f.permStatus = notification.PermissionDenied
	if s.HasNotificationPermissions(context.Background()) {
		t.Errorf("want false on denied")
	}

	f.permErr = errors.New("boom")
	if s.HasNotificationPermissions(context.Background()) {
		t.Errorf("want false on error")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in         string
		wantHour   int
		wantMinute int
	}{
		{"09:30", 9, 30},
		{"23:59", 23, 59},
		{"0:00", 0, 0},
		{"7:05", 7, 5},
		// Each component falls back independently.
		{"25:99", 9, 0},
		{"25:30", 9, 30},
		{"08:75", 8, 0},
		{"-1:15", 9, 15},
		// Unparseable input defaults entirely.
		{"", 9, 0},
		{"morning", 9, 0},
		{"0930", 9, 0},
	}
	for _, tc := range cases {
		h, m := parseClock(tc.in)
		if h != tc.wantHour || m != tc.wantMinute {
			t.Errorf("parseClock(%q) = %d:%d, want %d:%d", tc.in, h, m, tc.wantHour, tc.wantMinute)
		}
	}
}

func TestNextTriggerTime(t *testing.T) {
	at := func(y int, mo time.Month, d, h, min int) time.Time {
		return time.Date(y, mo, d, h, min, 0, 0, time.UTC)
	}
	cases := []struct {
		name string
		now  time.Time
		day  int
		want time.Time
	}{
		{"before day this month", at(2025, time.March, 10, 12, 0), 15, at(2025, time.March, 15, 9, 0)},
		{"after day this month", at(2025, time.March, 20, 12, 0), 15, at(2025, time.April, 15, 9, 0)},
		{"same day before time", at(2025, time.March, 15, 8, 59), 15, at(2025, time.March, 15, 9, 0)},
		{"exact instant advances", at(2025, time.March, 15, 9, 0), 15, at(2025, time.April, 15, 9, 0)},
		{"december wraps year", at(2025, time.December, 20, 12, 0), 15, at(2026, time.January, 15, 9, 0)},
		// Out-of-range days are not clamped; time.Date normalizes them
		// into the following month.
		{"day 31 in april rolls over", at(2025, time.April, 10, 12, 0), 31, at(2025, time.May, 1, 9, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nextTriggerTime(tc.now, tc.day, 9, 0)
			if !got.Equal(tc.want) {
				t.Errorf("want %v, got %v", tc.want, got)
			}
		})
	}
}
