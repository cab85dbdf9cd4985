package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/internal/testutil"
)

func newBudgetService(t *testing.T) (*service.BudgetService, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := service.NewBudgetService(
		repository.NewBudgetRepository(db),
		repository.NewTransactionRepository(db),
	)
	return svc, db
}

// TestBudgetService_GetBudgetSummaries tests spending status evaluation.
//
// WHY: Status thresholds are the product's alerting mechanism: warning at
// 80% of the limit, exceeded at or above 100%. Both boundaries must be
// inclusive on the documented side.
func TestBudgetService_GetBudgetSummaries(t *testing.T) {
	t.Run("reports ok below the warning threshold", func(t *testing.T) {
		svc, db := newBudgetService(t)
		testutil.CreateBudget(t, db, "groceries", 500)
		testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "groceries", 399.99, "2026-08-05")

		summaries, err := svc.GetBudgetSummaries("2026-08")
		if err != nil {
			t.Fatalf("GetBudgetSummaries() returned unexpected error: %v", err)
		}
		if len(summaries) != 1 {
			t.Fatalf("Expected 1 summary, got %d", len(summaries))
		}
		if summaries[0].Status != model.BudgetStatusOK {
			t.Errorf("Expected ok status, got %s", summaries[0].Status)
		}
		if !almostEqual(summaries[0].Remaining, 100.01) {
			t.Errorf("Expected remaining 100.01, got %v", summaries[0].Remaining)
		}
	})

	t.Run("reports warning at exactly 80 percent", func(t *testing.T) {
		svc, db := newBudgetService(t)
		testutil.CreateBudget(t, db, "groceries", 500)
		testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "groceries", 400, "2026-08-05")

		summaries, err := svc.GetBudgetSummaries("2026-08")
		if err != nil {
			t.Fatalf("GetBudgetSummaries() returned unexpected error: %v", err)
		}
		if summaries[0].Status != model.BudgetStatusWarning {
			t.Errorf("Expected warning status at 80%%, got %s", summaries[0].Status)
		}
	})

	t.Run("reports exceeded at exactly the limit", func(t *testing.T) {
		svc, db := newBudgetService(t)
		testutil.CreateBudget(t, db, "groceries", 500)
		testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "groceries", 500, "2026-08-05")

		summaries, err := svc.GetBudgetSummaries("2026-08")
		if err != nil {
			t.Fatalf("GetBudgetSummaries() returned unexpected error: %v", err)
		}
		if summaries[0].Status != model.BudgetStatusExceeded {
			t.Errorf("Expected exceeded status at 100%%, got %s", summaries[0].Status)
		}
		if summaries[0].UsedPercent != 100 {
			t.Errorf("Expected 100%% used, got %v", summaries[0].UsedPercent)
		}
	})

	t.Run("counts only the requested month and category", func(t *testing.T) {
		svc, db := newBudgetService(t)
		testutil.CreateBudget(t, db, "groceries", 500)
		testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "groceries", 100, "2026-08-05")
		// Different month, different category, and income: all excluded
		testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "groceries", 100, "2026-07-05")
		testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "rent", 100, "2026-08-05")
		testutil.CreateTransaction(t, db, model.TransactionTypeIncome, "groceries", 100, "2026-08-05")

		summaries, err := svc.GetBudgetSummaries("2026-08")
		if err != nil {
			t.Fatalf("GetBudgetSummaries() returned unexpected error: %v", err)
		}
		if summaries[0].Spent != 100 {
			t.Errorf("Expected spent 100, got %v", summaries[0].Spent)
		}
	})
}

// TestBudgetService_CreateBudget tests budget creation constraints.
func TestBudgetService_CreateBudget(t *testing.T) {
	t.Run("rejects duplicate category", func(t *testing.T) {
		svc, _ := newBudgetService(t)

		if _, err := svc.CreateBudget(t.Context(), "groceries", 500); err != nil {
			t.Fatalf("CreateBudget() returned unexpected error: %v", err)
		}

		_, err := svc.CreateBudget(t.Context(), "groceries", 600)
		if !errors.Is(err, apperrors.ErrDuplicateCategory) {
			t.Errorf("Expected ErrDuplicateCategory, got %v", err)
		}
	})
}
