package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
	"github.com/staffhq/attendance-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

// Upsert implements SettingHandler.
func (h *settingHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req setting.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingService.Set(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, setting.SettingResponse{
		Key:   result.Key,
		Value: result.Value,
	})
}

// List implements SettingHandler.
func (h *settingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]setting.SettingResponse, 0, len(settings))
	for _, s := range settings {
		result = append(result, setting.SettingResponse{Key: s.Key, Value: s.Value})
	}

	response.Success(w, result)
}
