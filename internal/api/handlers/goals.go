package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"finance-tracker/internal/api/request"
	"finance-tracker/internal/api/response"
	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/internal/validation"
)

// GoalHandler handles HTTP requests for savings goal endpoints.
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler with the provided service dependency.
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Goals handles GET requests to retrieve all goals with derived progress.
//
// Endpoint: GET /api/goal
// Response: 200 OK with array of GoalSummary
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) Goals(w http.ResponseWriter, _ *http.Request) {
	goals, err := h.goalService.GetGoals()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goals)
}

// GetGoal handles GET requests to retrieve a single goal by ID.
//
// Endpoint: GET /api/goal/{uuid}
// Response: 200 OK with GoalSummary
// Error: 400 Bad Request if goal ID is invalid (validated by middleware)
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	goal, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goal)
}

// CreateGoal handles POST requests to create a savings goal.
//
// Endpoint: POST /api/goal
// Request Body: CreateGoalRequest (name, targetAmount, currentAmount, deadline)
// Response: 201 Created with GoalSummary
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal := model.Goal{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
	}
	if req.Deadline != "" {
		deadline, _ := time.Parse(repository.DateLayout, req.Deadline)
		goal.Deadline = &deadline
	}

	summary, err := h.goalService.CreateGoal(r.Context(), goal)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, summary)
}

// UpdateGoal handles PUT requests to update a goal.
// Omitted fields keep their stored values; an empty deadline clears it.
//
// Endpoint: PUT /api/goal/{uuid}
// Request Body: UpdateGoalRequest (all fields optional)
// Response: 200 OK with updated GoalSummary
// Error: 400 Bad Request if goal ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if update fails
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	existing, err := h.goalService.GetGoal(goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update goal", err.Error())
		return
	}

	goal := existing.Goal
	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			goal.Deadline = nil
		} else {
			deadline, _ := time.Parse(repository.DateLayout, *req.Deadline)
			goal.Deadline = &deadline
		}
	}

	summary, err := h.goalService.UpdateGoal(r.Context(), goal)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// DeleteGoal handles DELETE requests to remove a goal.
//
// Endpoint: DELETE /api/goal/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if goal ID is invalid (validated by middleware)
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if deletion fails
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	err := h.goalService.DeleteGoal(r.Context(), goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Contribute handles POST requests to add to a goal's balance.
// Negative amounts withdraw; the balance never drops below zero.
//
// Endpoint: POST /api/goal/{uuid}/contribute
// Request Body: ContributeRequest (amount)
// Response: 200 OK with updated GoalSummary
// Error: 400 Bad Request if goal ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if update fails
func (h *GoalHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.ContributeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateContribute(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	summary, err := h.goalService.Contribute(r.Context(), goalID, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
