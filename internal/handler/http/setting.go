package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/domain/setting"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &SettingHandlerImpl{settingService: settingService}
}

// Get implements SettingHandler.
func (h *SettingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// Update implements SettingHandler.
func (h *SettingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.settingService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}
