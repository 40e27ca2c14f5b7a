package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/domain/notification"
	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
)

// Notifier consumes leave events and records audit and notification rows.
// It runs off the write path: a slow or failing notifier never blocks a
// leave mutation or a payroll run.
type Notifier struct {
	notificationRepo notification.Repository
	settings         setting.SettingService
	events           <-chan leave.Event
}

func NewNotifier(
	notificationRepo notification.Repository,
	settings setting.SettingService,
	events <-chan leave.Event,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		settings:         settings,
		events:           events,
	}
}

// Run drains the event channel until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-n.events:
			if !ok {
				return
			}
			n.handle(ctx, event)
		}
	}
}

func (n *Notifier) handle(ctx context.Context, event leave.Event) {
	details := formatChanges(event.Changes)

	_, err := n.notificationRepo.CreateAudit(ctx, notification.AuditLog{
		Actor:      event.Actor,
		Action:     string(event.Action),
		EntityName: "leave",
		EntityID:   event.EmployeeID,
		Details:    details,
	})
	if err != nil {
		slog.Error("failed to write audit log", "event_id", event.ID, "error", err)
	}

	subject := fmt.Sprintf("Leave %s for %s on %s", event.Action, event.EmpID, event.Date.Format("2006-01-02"))
	body := subject
	if details != "" {
		body += "\n" + details
	}

	recipients := []string{event.EmpID}
	if boss := n.settings.Get(ctx, setting.KeyBossEmail, ""); boss != "" {
		recipients = append(recipients, boss)
	}

	for _, recipient := range recipients {
		_, err := n.notificationRepo.CreateNotification(ctx, notification.NotificationLog{
			Recipient: recipient,
			Method:    notification.MethodEmail,
			Subject:   subject,
			Body:      body,
			Status:    notification.DeliveryPending,
		})
		if err != nil {
			slog.Error("failed to write notification log", "event_id", event.ID, "recipient", recipient, "error", err)
		}
	}
}

func formatChanges(changes map[string]leave.FieldChange) string {
	if len(changes) == 0 {
		return ""
	}
	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		c := changes[field]
		parts = append(parts, fmt.Sprintf("%s: %q -> %q", field, c.Before, c.After))
	}
	return strings.Join(parts, ", ")
}
