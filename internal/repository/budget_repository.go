package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/model"
)

// BudgetRepository provides data access methods for the budget table.
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository with the provided database connection.
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// GetBudgets retrieves all budgets ordered by category.
func (s *BudgetRepository) GetBudgets() ([]model.Budget, error) {
	query := `
		SELECT id, category, monthly_limit, created_at
		FROM budget
		ORDER BY category ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget table: %w", err)
	}
	defer rows.Close()

	budgets := []model.Budget{}
	for rows.Next() {
		var createdAtStr string
		var budget model.Budget

		if err := rows.Scan(&budget.ID, &budget.Category, &budget.MonthlyLimit, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan budget table results: %w", err)
		}

		budget.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		budgets = append(budgets, budget)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget table: %w", err)
	}

	return budgets, nil
}

// GetBudget retrieves a single budget by ID.
// Returns apperrors.ErrBudgetNotFound if no row exists.
func (s *BudgetRepository) GetBudget(id string) (model.Budget, error) {
	query := `
		SELECT id, category, monthly_limit, created_at
		FROM budget
		WHERE id = ?
	`

	var createdAtStr string
	var budget model.Budget

	err := s.db.QueryRow(query, id).Scan(&budget.ID, &budget.Category, &budget.MonthlyLimit, &createdAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Budget{}, apperrors.ErrBudgetNotFound
	}
	if err != nil {
		return model.Budget{}, fmt.Errorf("failed to scan budget table results: %w", err)
	}

	budget.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Budget{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return budget, nil
}

// CreateBudget inserts a new budget row.
// Budgets are keyed by category; creating a second budget for the same
// category fails the uniqueness constraint.
func (s *BudgetRepository) CreateBudget(ctx context.Context, budget model.Budget) error {
	query := `
		INSERT INTO budget (id, category, monthly_limit, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		budget.ID,
		budget.Category,
		budget.MonthlyLimit,
		FormatDateTime(time.Now()),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateCategory
		}
		return fmt.Errorf("failed to insert budget: %w", err)
	}

	return nil
}

// UpdateBudget updates a budget's monthly limit.
// Returns apperrors.ErrBudgetNotFound if no row was updated.
func (s *BudgetRepository) UpdateBudget(ctx context.Context, id string, monthlyLimit float64) error {
	result, err := s.db.ExecContext(ctx, `UPDATE budget SET monthly_limit = ? WHERE id = ?`, monthlyLimit, id)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBudgetNotFound
	}

	return nil
}

// DeleteBudget removes a budget.
// Returns apperrors.ErrBudgetNotFound if no row was deleted.
func (s *BudgetRepository) DeleteBudget(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM budget WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBudgetNotFound
	}

	return nil
}
