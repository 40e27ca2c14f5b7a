package http

import (
	"net/http"

	"github.com/staffhq/attendance-backend-go/internal/domain/notification"
	"github.com/staffhq/attendance-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	ListNotifications(w http.ResponseWriter, r *http.Request)
	ListAudits(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationRepo notification.Repository
}

func NewNotificationHandler(notificationRepo notification.Repository) NotificationHandler {
	return &notificationHandlerImpl{notificationRepo: notificationRepo}
}

// ListNotifications implements NotificationHandler.
func (h *notificationHandlerImpl) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)

	logs, err := h.notificationRepo.ListNotifications(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]notification.NotificationLogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, notification.NotificationLogResponse{
			ID:        log.ID,
			Recipient: log.Recipient,
			Method:    string(log.Method),
			Subject:   log.Subject,
			Body:      log.Body,
			Status:    string(log.Status),
			CreatedAt: log.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	response.Success(w, result)
}

// ListAudits implements NotificationHandler.
func (h *notificationHandlerImpl) ListAudits(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)

	logs, err := h.notificationRepo.ListAudits(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]notification.AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, notification.AuditLogResponse{
			ID:         log.ID,
			Actor:      log.Actor,
			Action:     log.Action,
			EntityName: log.EntityName,
			EntityID:   log.EntityID,
			Details:    log.Details,
			CreatedAt:  log.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	response.Success(w, result)
}
