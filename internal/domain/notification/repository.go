package notification

import "context"

type Repository interface {
	CreateNotification(ctx context.Context, log NotificationLog) (NotificationLog, error)
	CreateAudit(ctx context.Context, log AuditLog) (AuditLog, error)

	ListNotifications(ctx context.Context, limit int) ([]NotificationLog, error)
	ListAudits(ctx context.Context, limit int) ([]AuditLog, error)
}
