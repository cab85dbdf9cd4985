package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
)

// Spending status thresholds, as a fraction of the monthly limit.
const budgetWarningThreshold = 0.8

// BudgetService manages per-category monthly spending limits and computes
// spending status against recorded expenses.
type BudgetService struct {
	budgets      *repository.BudgetRepository
	transactions *repository.TransactionRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgets *repository.BudgetRepository, transactions *repository.TransactionRepository) *BudgetService {
	return &BudgetService{
		budgets:      budgets,
		transactions: transactions,
	}
}

// GetBudgets returns all budgets.
func (s *BudgetService) GetBudgets() ([]model.Budget, error) {
	return s.budgets.GetBudgets()
}

// CreateBudget creates a spending limit for a category.
func (s *BudgetService) CreateBudget(ctx context.Context, category string, monthlyLimit float64) (model.Budget, error) {
	budget := model.Budget{
		ID:           uuid.NewString(),
		Category:     category,
		MonthlyLimit: monthlyLimit,
	}

	if err := s.budgets.CreateBudget(ctx, budget); err != nil {
		return model.Budget{}, err
	}

	return s.budgets.GetBudget(budget.ID)
}

// UpdateBudget changes the monthly limit of an existing budget.
func (s *BudgetService) UpdateBudget(ctx context.Context, id string, monthlyLimit float64) (model.Budget, error) {
	if err := s.budgets.UpdateBudget(ctx, id, monthlyLimit); err != nil {
		return model.Budget{}, err
	}

	return s.budgets.GetBudget(id)
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, id string) error {
	return s.budgets.DeleteBudget(ctx, id)
}

// GetBudgetSummaries evaluates every budget against the expenses recorded in
// the given month ("YYYY-MM", empty for the current month). Status moves to
// warning at 80% of the limit and exceeded at or above 100%.
func (s *BudgetService) GetBudgetSummaries(month string) ([]model.BudgetSummary, error) {
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	end := start.AddDate(0, 1, 0)

	budgets, err := s.budgets.GetBudgets()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.BudgetSummary, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.transactions.SumExpensesByCategory(budget.Category, start, end)
		if err != nil {
			return nil, err
		}

		summary := model.BudgetSummary{
			Budget:    budget,
			Month:     month,
			Spent:     spent,
			Remaining: budget.MonthlyLimit - spent,
			Status:    model.BudgetStatusOK,
		}
		if budget.MonthlyLimit > 0 {
			summary.UsedPercent = spent / budget.MonthlyLimit * 100
		}

		switch {
		case spent >= budget.MonthlyLimit:
			summary.Status = model.BudgetStatusExceeded
		case spent >= budget.MonthlyLimit*budgetWarningThreshold:
			summary.Status = model.BudgetStatusWarning
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
