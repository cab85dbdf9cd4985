package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"finance-tracker/internal/api/request"
	"finance-tracker/internal/api/response"
	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/service"
	"finance-tracker/internal/validation"
)

// BudgetHandler handles HTTP requests for budget endpoints.
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the provided service dependency.
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// Budgets handles GET requests to retrieve all budgets.
//
// Endpoint: GET /api/budget
// Response: 200 OK with array of Budget
// Error: 500 Internal Server Error if retrieval fails
func (h *BudgetHandler) Budgets(w http.ResponseWriter, _ *http.Request) {
	budgets, err := h.budgetService.GetBudgets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBudgets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, budgets)
}

// CreateBudget handles POST requests to create a category spending limit.
//
// Endpoint: POST /api/budget
// Request Body: CreateBudgetRequest (category, monthlyLimit)
// Response: 201 Created with Budget
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the category already has a budget
// Error: 500 Internal Server Error if creation fails
func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateBudgetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateBudget(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	budget, err := h.budgetService.CreateBudget(r.Context(), req.Category, req.MonthlyLimit)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCategory) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateCategory.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create budget", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, budget)
}

// UpdateBudget handles PUT requests to change a budget's monthly limit.
//
// Endpoint: PUT /api/budget/{uuid}
// Request Body: UpdateBudgetRequest (monthlyLimit)
// Response: 200 OK with updated Budget
// Error: 400 Bad Request if budget ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if budget not found
// Error: 500 Internal Server Error if update fails
func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateBudgetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateBudget(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	budget, err := h.budgetService.UpdateBudget(r.Context(), budgetID, req.MonthlyLimit)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update budget", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, budget)
}

// DeleteBudget handles DELETE requests to remove a budget.
//
// Endpoint: DELETE /api/budget/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if budget ID is invalid (validated by middleware)
// Error: 404 Not Found if budget not found
// Error: 500 Internal Server Error if deletion fails
func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "uuid")

	err := h.budgetService.DeleteBudget(r.Context(), budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete budget", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Summary handles GET requests to evaluate budgets against recorded
// expenses. The month query parameter is YYYY-MM and defaults to the
// current month.
//
// Endpoint: GET /api/budget/summary?month=2026-08
// Response: 200 OK with array of BudgetSummary
// Error: 400 Bad Request if the month is malformed
func (h *BudgetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	summaries, err := h.budgetService.GetBudgetSummaries(month)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summaries)
}
