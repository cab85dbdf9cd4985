package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"finance-tracker/internal/api/request"
	"finance-tracker/internal/api/response"
	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/service"
)

// SettingHandler handles HTTP requests for application settings.
type SettingHandler struct {
	settingService *service.SettingService
}

// NewSettingHandler creates a new SettingHandler with the provided service dependency.
func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// Settings handles GET requests to retrieve all settings.
// Secret values are masked in the listing.
//
// Endpoint: GET /api/settings
// Response: 200 OK with array of Setting
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingHandler) Settings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.settingService.GetSettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}

// GetSetting handles GET requests to retrieve a single setting value.
//
// Endpoint: GET /api/settings/{key}
// Response: 200 OK with {"key": ..., "value": ...}
// Error: 404 Not Found if the key has no stored value
// Error: 500 Internal Server Error if retrieval or decryption fails
func (h *SettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := h.settingService.GetSetting(key)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSettingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

// SetSetting handles PUT requests to store a setting value.
// The market data API key is encrypted before storage.
//
// Endpoint: PUT /api/settings/{key}
// Request Body: SetSettingRequest (value)
// Response: 200 OK with {"key": ...}
// Error: 400 Bad Request if the request body is invalid
// Error: 500 Internal Server Error if storage fails or encryption is unavailable
func (h *SettingHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	req, err := parseJSON[request.SetSettingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settingService.SetSetting(r.Context(), key, req.Value); err != nil {
		if errors.Is(err, apperrors.ErrEncryptionKeyMissing) {
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrEncryptionKeyMissing.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store setting", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"key": key})
}
