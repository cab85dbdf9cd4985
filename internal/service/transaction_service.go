package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
)

// TransactionService manages cash transactions and derives monthly summaries
// from them.
type TransactionService struct {
	repo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// GetTransactions returns all transactions, newest first.
func (s *TransactionService) GetTransactions() ([]model.Transaction, error) {
	return s.repo.GetTransactions()
}

// GetTransaction returns a single transaction by ID.
func (s *TransactionService) GetTransaction(id string) (model.Transaction, error) {
	return s.repo.GetTransaction(id)
}

// CreateTransaction records a new income or expense entry.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	tx.ID = uuid.NewString()
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}

	return s.repo.GetTransaction(tx.ID)
}

// UpdateTransaction replaces a transaction's mutable fields.
func (s *TransactionService) UpdateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}

	return s.repo.GetTransaction(tx.ID)
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// MonthlySummary aggregates one calendar month of transactions into totals
// and a per-category expense breakdown. month is "YYYY-MM"; an empty month
// means the current month.
func (s *TransactionService) MonthlySummary(month string) (model.MonthlySummary, error) {
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return model.MonthlySummary{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	end := start.AddDate(0, 1, 0)

	transactions, err := s.repo.GetTransactionsByPeriod(start, end)
	if err != nil {
		return model.MonthlySummary{}, err
	}

	summary := model.MonthlySummary{
		Month:      month,
		ByCategory: map[string]float64{},
	}

	for _, tx := range transactions {
		switch tx.Type {
		case model.TransactionTypeIncome:
			summary.Income += tx.Amount
		case model.TransactionTypeExpense:
			summary.Expenses += tx.Amount
			summary.ByCategory[tx.Category] += tx.Amount
		}
	}

	summary.Net = summary.Income - summary.Expenses

	return summary, nil
}
