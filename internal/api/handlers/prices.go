package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"finance-tracker/internal/api/response"
	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/service"
)

// PriceHandler handles HTTP requests for stored price snapshots.
type PriceHandler struct {
	refreshService *service.RefreshService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(refreshService *service.RefreshService) *PriceHandler {
	return &PriceHandler{
		refreshService: refreshService,
	}
}

// LatestPrice handles GET requests for the most recent stored snapshot of a
// symbol. Snapshots are written by the scheduled refresh job.
//
// Endpoint: GET /api/price/{symbol}
// Response: 200 OK with PriceSnapshot
// Error: 404 Not Found if no snapshot exists for the symbol
// Error: 500 Internal Server Error if retrieval fails
func (h *PriceHandler) LatestPrice(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	snapshot, err := h.refreshService.LatestSnapshot(symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve price snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}

// Refresh handles POST requests to trigger an immediate price refresh for
// all held symbols, outside the cron schedule.
//
// Endpoint: POST /api/price/refresh
// Response: 202 Accepted
// Error: 500 Internal Server Error if the refresh fails
func (h *PriceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.refreshService.RefreshAll(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusAccepted, nil)
}
