package handlers

import (
	"net/http"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/service"
)

// SettingHandler handles HTTP requests for system settings. Secret values
// are write-only: the API reports presence, never the stored value.
type SettingHandler struct {
	settingService *service.SettingService
}

// NewSettingHandler creates a new SettingHandler with the provided service dependency.
func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// SettingStatusResponse reports which settings are configured.
type SettingStatusResponse struct {
	GeminiKeyConfigured bool `json:"geminiKeyConfigured"`
}

// Settings handles GET requests for the settings status.
//
// Endpoint: GET /api/settings
// Response: 200 OK with SettingStatusResponse
func (h *SettingHandler) Settings(w http.ResponseWriter, _ *http.Request) {
	configured, err := h.settingService.HasGeminiAPIKey()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, SettingStatusResponse{GeminiKeyConfigured: configured})
}

// UpdateGeminiKey handles PUT requests to store the Gemini API key.
//
// Endpoint: PUT /api/settings/gemini-key
// Response: 200 OK with SettingStatusResponse
// Error: 400 Bad Request when the key is empty
func (h *SettingHandler) UpdateGeminiKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateGeminiKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "apiKey is required")
		return
	}

	if err := h.settingService.SetGeminiAPIKey(req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, SettingStatusResponse{GeminiKeyConfigured: true})
}
