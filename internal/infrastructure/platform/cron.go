package platform

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"

	"paytrack/internal/domain/notification"
	"paytrack/internal/pkg/logger"
)

// Sender delivers a fired notification to a recipient.
type Sender interface {
	Ready() bool
	Push(to, title, body string) error
}

// RecipientResolver maps a reminder's store ID to a delivery target at fire
// time, so ownership changes between scheduling and firing are picked up.
type RecipientResolver func(ctx context.Context, reminderID string) (string, error)

type entry struct {
	req    notification.Request
	cronID cron.EntryID
}

// CronPlatform is a server-side stand-in for a device notification service.
// Monthly triggers become cron jobs; delivery goes out through the Sender.
// Permission status reflects whether the sender is configured, since that is
// the only thing standing between a fired job and a delivered notification.
type CronPlatform struct {
	cron             *cron.Cron
	log              logger.Logger
	sender           Sender
	resolve          RecipientResolver
	defaultRecipient string
	osLabel          string

	mu       sync.Mutex
	entries  map[string]entry
	channels map[string]notification.Channel
	handler  notification.HandlerBehavior
	seq      atomic.Uint64
}

// New creates and starts a CronPlatform. The recipient resolver is wired in
// afterwards via SetRecipientResolver to avoid a construction cycle with the
// services that own reminder data.
func New(osLabel, defaultRecipient string, sender Sender, log logger.Logger) *CronPlatform {
	c := cron.New(cron.WithSeconds())
	c.Start()
	return &CronPlatform{
		cron:             c,
		log:              log,
		sender:           sender,
		defaultRecipient: defaultRecipient,
		osLabel:          osLabel,
		entries:          make(map[string]entry),
		channels:         make(map[string]notification.Channel),
	}
}

// SetRecipientResolver installs the fire-time recipient lookup. Called once
// during startup wiring.
func (p *CronPlatform) SetRecipientResolver(r RecipientResolver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolve = r
}

// OS returns the platform label.
func (p *CronPlatform) OS() string {
	return p.osLabel
}

// GetPermissions returns the current permission status.
func (p *CronPlatform) GetPermissions(ctx context.Context) (notification.PermissionStatus, error) {
	if p.sender != nil && p.sender.Ready() {
		return notification.PermissionGranted, nil
	}
	return notification.PermissionDenied, nil
}

// RequestPermissions re-evaluates sender configuration. There is no user to
// prompt on a server, so this never upgrades a denied status by itself.
func (p *CronPlatform) RequestPermissions(ctx context.Context) (notification.PermissionStatus, error) {
	status, err := p.GetPermissions(ctx)
	if status != notification.PermissionGranted {
		p.log.Warn("Notification permissions denied: delivery sender is not configured")
	}
	return status, err
}

// SetNotificationChannel creates or updates a notification channel.
// Re-registering an existing ID replaces its settings.
func (p *CronPlatform) SetNotificationChannel(ctx context.Context, id string, ch notification.Channel) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels[id] = ch
	p.log.Debug(fmt.Sprintf("Notification channel %q registered (%s)", id, ch.Name))
	return nil
}

// SetNotificationHandler installs the foreground presentation behavior.
func (p *CronPlatform) SetNotificationHandler(b notification.HandlerBehavior) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = b
}

// Channel returns the registered channel settings for id, if any.
func (p *CronPlatform) Channel(id string) (notification.Channel, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch, ok := p.channels[id]
	return ch, ok
}

// cronSpec renders a monthly trigger as a 6-field cron expression.
// Days absent from a month (for example 31 in April) simply never match,
// so the job skips those months rather than firing on a clamped day.
func cronSpec(t notification.Trigger) string {
	return fmt.Sprintf("0 %d %d %d * *", t.Minute, t.Hour, t.Day)
}

// Schedule registers a notification and returns its identifier. A request
// that reuses an identifier replaces the previous registration (upsert).
// A nil trigger delivers immediately without registering anything.
func (p *CronPlatform) Schedule(ctx context.Context, req notification.Request) (string, error) {
	identifier := req.Identifier

	if req.Trigger == nil {
		if identifier == "" {
			identifier = fmt.Sprintf("immediate-%d", p.seq.Add(1))
		}
		go p.deliver(identifier, req)
		return identifier, nil
	}

	if identifier == "" {
		identifier = fmt.Sprintf("notification-%d", p.seq.Add(1))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.entries[identifier]; ok {
		p.cron.Remove(existing.cronID)
		delete(p.entries, identifier)
	}

	id, err := p.cron.AddFunc(cronSpec(*req.Trigger), func() {
		p.deliver(identifier, req)
	})
	if err != nil {
		return "", fmt.Errorf("failed to add cron job for %s: %w", identifier, err)
	}

	p.entries[identifier] = entry{req: req, cronID: id}
	p.log.Debug(fmt.Sprintf("Scheduled notification %s (day=%d %02d:%02d)", identifier, req.Trigger.Day, req.Trigger.Hour, req.Trigger.Minute))
	return identifier, nil
}

// Cancel removes the notification with the given identifier. Cancelling an
// unknown identifier is a no-op.
func (p *CronPlatform) Cancel(ctx context.Context, identifier string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e, ok := p.entries[identifier]; ok {
		p.cron.Remove(e.cronID)
		delete(p.entries, identifier)
		p.log.Debug(fmt.Sprintf("Cancelled notification %s", identifier))
	}
	return nil
}

// CancelAll removes every scheduled notification.
func (p *CronPlatform) CancelAll(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for identifier, e := range p.entries {
		p.cron.Remove(e.cronID)
		delete(p.entries, identifier)
	}
	return nil
}

// GetScheduled lists all currently scheduled notifications.
func (p *CronPlatform) GetScheduled(ctx context.Context) ([]notification.ScheduledNotification, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	list := make([]notification.ScheduledNotification, 0, len(p.entries))
	for identifier, e := range p.entries {
		list = append(list, notification.ScheduledNotification{
			Identifier: identifier,
			Content:    e.req.Content,
			Trigger:    *e.req.Trigger,
		})
	}
	return list, nil
}

// Stop stops the cron engine and waits for running jobs to complete.
func (p *CronPlatform) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.log.Info("Notification platform stopped.")
}

// deliver pushes a fired notification to its recipient. Failures are logged;
// a recurring job will try again next month.
func (p *CronPlatform) deliver(identifier string, req notification.Request) {
	p.mu.Lock()
	resolve := p.resolve
	p.mu.Unlock()

	to := p.defaultRecipient
	if reminderID, ok := req.Content.Data["reminderId"].(string); ok && reminderID != "" && resolve != nil {
		resolved, err := resolve(context.Background(), reminderID)
		if err != nil {
			p.log.Error(fmt.Sprintf("Failed to resolve recipient for notification %s", identifier), err)
		} else if resolved != "" {
			to = resolved
		}
	}
	if to == "" {
		p.log.Warn(fmt.Sprintf("No recipient for notification %s, skipping delivery", identifier))
		return
	}
	if p.sender == nil || !p.sender.Ready() {
		p.log.Warn(fmt.Sprintf("Delivery sender not configured, dropping notification %s", identifier))
		return
	}
	if err := p.sender.Push(to, req.Content.Title, req.Content.Body); err != nil {
		p.log.Error(fmt.Sprintf("Failed to deliver notification %s", identifier), err)
		return
	}
	p.log.Info(fmt.Sprintf("Delivered notification %s", identifier))
}
