package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/api/request"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/internal/testutil"
)

func setupTransactionHandler(t *testing.T) (*TransactionHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := service.NewTransactionService(repository.NewTransactionRepository(db))
	return NewTransactionHandler(svc), db
}

func TestTransactionHandler_Transactions(t *testing.T) {
	t.Run("returns empty array when no transactions exist", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d transactions", len(response))
		}
	})

	t.Run("returns all transactions successfully", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		tx1 := testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "groceries", 50, "2026-08-01")
		tx2 := testutil.CreateTransaction(t, db, model.TransactionTypeIncome, "salary", 3000, "2026-08-02")

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(response))
		}

		found := make(map[string]bool)
		for _, tx := range response {
			found[tx.ID] = true
		}
		if !found[tx1.ID] || !found[tx2.ID] {
			t.Error("Expected both transactions in response")
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("creates transaction successfully", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", request.CreateTransactionRequest{
			Date:     "2026-08-15",
			Type:     model.TransactionTypeExpense,
			Category: "groceries",
			Amount:   45.20,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		testutil.AssertRowCount(t, db, "cash_transaction", 1)
	})

	t.Run("returns 400 for unknown transaction type", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", request.CreateTransactionRequest{
			Type:     "transfer",
			Category: "misc",
			Amount:   10,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for unknown fields in body", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction",
			map[string]any{"type": "expense", "category": "misc", "amount": 10, "typoField": true}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_MonthlySummary(t *testing.T) {
	t.Run("returns summary for requested month", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		testutil.CreateTransaction(t, db, model.TransactionTypeIncome, "salary", 3000, "2026-08-01")
		testutil.CreateTransaction(t, db, model.TransactionTypeExpense, "rent", 900, "2026-08-02")

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction/summary",
			map[string]string{"month": "2026-08"})
		w := httptest.NewRecorder()

		handler.MonthlySummary(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.MonthlySummary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Income != 3000 || response.Expenses != 900 {
			t.Errorf("Unexpected summary: %+v", response)
		}
	})

	t.Run("returns 400 for malformed month", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction/summary",
			map[string]string{"month": "not-a-month"})
		w := httptest.NewRecorder()

		handler.MonthlySummary(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
