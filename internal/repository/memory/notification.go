package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staffhq/attendance-backend-go/internal/domain/notification"
)

type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []notification.NotificationLog
	audits        []notification.AuditLog
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateNotification(_ context.Context, log notification.NotificationLog) (notification.NotificationLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = uuid.NewString()
	log.CreatedAt = time.Now()
	r.notifications = append(r.notifications, log)
	return log, nil
}

func (r *NotificationRepository) CreateAudit(_ context.Context, log notification.AuditLog) (notification.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = uuid.NewString()
	log.CreatedAt = time.Now()
	r.audits = append(r.audits, log)
	return log, nil
}

func (r *NotificationRepository) ListNotifications(_ context.Context, limit int) ([]notification.NotificationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]notification.NotificationLog, len(r.notifications))
	copy(logs, r.notifications)
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (r *NotificationRepository) ListAudits(_ context.Context, limit int) ([]notification.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]notification.AuditLog, len(r.audits))
	copy(logs, r.audits)
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}
