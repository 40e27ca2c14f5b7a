package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhq/attendance-backend-go/internal/domain/notification"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

// CreateNotification implements notification.Repository.
func (r *notificationRepositoryImpl) CreateNotification(ctx context.Context, log notification.NotificationLog) (notification.NotificationLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notification_logs (recipient, method, subject, body, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, recipient, method, subject, body, status, created_at
	`

	var saved notification.NotificationLog
	err := q.QueryRow(ctx, query, log.Recipient, log.Method, log.Subject, log.Body, log.Status).Scan(
		&saved.ID, &saved.Recipient, &saved.Method, &saved.Subject, &saved.Body, &saved.Status, &saved.CreatedAt,
	)
	if err != nil {
		return notification.NotificationLog{}, fmt.Errorf("failed to create notification log: %w", err)
	}

	return saved, nil
}

// CreateAudit implements notification.Repository.
func (r *notificationRepositoryImpl) CreateAudit(ctx context.Context, log notification.AuditLog) (notification.AuditLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (actor, action, entity_name, entity_id, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, actor, action, entity_name, entity_id, details, created_at
	`

	var saved notification.AuditLog
	err := q.QueryRow(ctx, query, log.Actor, log.Action, log.EntityName, log.EntityID, log.Details).Scan(
		&saved.ID, &saved.Actor, &saved.Action, &saved.EntityName, &saved.EntityID, &saved.Details, &saved.CreatedAt,
	)
	if err != nil {
		return notification.AuditLog{}, fmt.Errorf("failed to create audit log: %w", err)
	}

	return saved, nil
}

// ListNotifications implements notification.Repository.
func (r *notificationRepositoryImpl) ListNotifications(ctx context.Context, limit int) ([]notification.NotificationLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient, method, subject, body, status, created_at
		FROM notification_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification logs: %w", err)
	}
	defer rows.Close()

	var logs []notification.NotificationLog
	for rows.Next() {
		var log notification.NotificationLog
		if err := rows.Scan(&log.ID, &log.Recipient, &log.Method, &log.Subject, &log.Body, &log.Status, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// ListAudits implements notification.Repository.
func (r *notificationRepositoryImpl) ListAudits(ctx context.Context, limit int) ([]notification.AuditLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, actor, action, entity_name, entity_id, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []notification.AuditLog
	for rows.Next() {
		var log notification.AuditLog
		if err := rows.Scan(&log.ID, &log.Actor, &log.Action, &log.EntityName, &log.EntityID, &log.Details, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
