package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"finance-tracker/internal/api/request"
	"finance-tracker/internal/api/response"
	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/internal/validation"
)

// InvestmentHandler handles HTTP requests for investment endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the investmentService.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler with the provided service dependency.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// Investments handles GET requests to retrieve all investments.
//
// Endpoint: GET /api/investment
// Response: 200 OK with array of Investment
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) Investments(w http.ResponseWriter, _ *http.Request) {
	investments, err := h.investmentService.GetInvestments()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// GetInvestment handles GET requests to retrieve a single investment by ID.
//
// Endpoint: GET /api/investment/{uuid}
// Response: 200 OK with Investment
// Error: 400 Bad Request if investment ID is invalid (validated by middleware)
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	investment, err := h.investmentService.GetInvestment(investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// CreateInvestment handles POST requests to create a new investment position.
// The position starts empty; quantity and average cost follow from lots.
//
// Endpoint: POST /api/investment
// Request Body: CreateInvestmentRequest (symbol, name, assetClass)
// Response: 201 Created with Investment
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the symbol already exists
// Error: 500 Internal Server Error if creation fails
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.CreateInvestment(r.Context(), req.Symbol, req.Name, req.AssetClass)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateSymbol) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateSymbol.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// DeleteInvestment handles DELETE requests to remove an investment and its lots.
//
// Endpoint: DELETE /api/investment/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if investment ID is invalid (validated by middleware)
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if deletion fails
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	err := h.investmentService.DeleteInvestment(r.Context(), investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Lots handles GET requests to retrieve an investment's lot history.
//
// Endpoint: GET /api/investment/{uuid}/lots
// Response: 200 OK with array of AssetLot, oldest first
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) Lots(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	lots, err := h.investmentService.GetLots(investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, lots)
}

// RecordLot handles POST requests to record a buy or sell lot.
// The investment's position is recomputed from its full lot history and the
// updated investment is returned.
//
// Endpoint: POST /api/investment/{uuid}/lots
// Request Body: RecordLotRequest (type, quantity, pricePerUnit, fees, date)
// Response: 201 Created with updated Investment
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if recording fails
func (h *InvestmentHandler) RecordLot(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.RecordLotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecordLot(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	lot := model.AssetLot{
		Type:         req.Type,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Fees:         req.Fees,
	}
	if req.Date != "" {
		date, err := time.Parse(repository.DateLayout, req.Date)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		lot.Date = date
	}

	investment, err := h.investmentService.RecordLot(r.Context(), investmentID, lot)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRecordLot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// Performance handles GET requests to value a single investment against its
// current quote. A failed price fetch yields zero values with priceValid=false.
//
// Endpoint: GET /api/investment/{uuid}/performance
// Response: 200 OK with PerformanceSnapshot
// Error: 404 Not Found if investment not found
func (h *InvestmentHandler) Performance(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	snapshot, err := h.investmentService.Performance(r.Context(), investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}

// History handles GET requests for an investment's price series.
// The timeframe query parameter selects the window (1d, 1w, 1m, 3m, 1y)
// and defaults to 1m. The series is never empty: fetch failures fall back
// to a synthesized series.
//
// Endpoint: GET /api/investment/{uuid}/history?timeframe=1m
// Response: 200 OK with array of PricePoint
// Error: 400 Bad Request if the timeframe is unknown
// Error: 404 Not Found if investment not found
func (h *InvestmentHandler) History(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	tf := marketdata.Timeframe(r.URL.Query().Get("timeframe"))
	if tf == "" {
		tf = marketdata.Timeframe1M
	}
	if !marketdata.ValidTimeframe(tf) {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidTimeframe.Error(), string(tf))
		return
	}

	points, err := h.investmentService.History(r.Context(), investmentID, tf)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// PortfolioSummary handles GET requests to value the whole portfolio.
// Quotes for all holdings are fetched in one batch; positions whose fetch
// failed degrade to zero values without failing the summary.
//
// Endpoint: GET /api/investment/portfolio/summary
// Response: 200 OK with PortfolioSummary
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.investmentService.PortfolioSummary(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
