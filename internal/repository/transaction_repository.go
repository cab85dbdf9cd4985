package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/model"
)

// TransactionRepository provides data access methods for the cash_transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions retrieves all transactions ordered by date descending.
func (s *TransactionRepository) GetTransactions() ([]model.Transaction, error) {
	query := `
		SELECT id, date, type, category, amount, description, created_at
		FROM cash_transaction
		ORDER BY date DESC, created_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransactionsByPeriod retrieves transactions within the half-open
// interval [startDate, endDate), ordered by date ascending.
func (s *TransactionRepository) GetTransactionsByPeriod(startDate, endDate time.Time) ([]model.Transaction, error) {
	query := `
		SELECT id, date, type, category, amount, description, created_at
		FROM cash_transaction
		WHERE date >= ? AND date < ?
		ORDER BY date ASC
	`

	rows, err := s.db.Query(query, FormatDateTime(startDate), FormatDateTime(endDate))
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by ID.
// Returns apperrors.ErrTransactionNotFound if no row exists.
func (s *TransactionRepository) GetTransaction(id string) (model.Transaction, error) {
	query := `
		SELECT id, date, type, category, amount, description, created_at
		FROM cash_transaction
		WHERE id = ?
	`

	transaction, err := scanTransaction(s.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}

	return transaction, nil
}

// SumExpensesByCategory sums expense amounts for a category within the
// half-open interval [startDate, endDate).
func (s *TransactionRepository) SumExpensesByCategory(category string, startDate, endDate time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM cash_transaction
		WHERE type = 'expense' AND category = ? AND date >= ? AND date < ?
	`

	var total float64
	err := s.db.QueryRow(query, category, FormatDateTime(startDate), FormatDateTime(endDate)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return total, nil
}

// CreateTransaction inserts a new transaction row.
func (s *TransactionRepository) CreateTransaction(ctx context.Context, transaction model.Transaction) error {
	query := `
		INSERT INTO cash_transaction (id, date, type, category, amount, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		transaction.ID,
		FormatDateTime(transaction.Date),
		transaction.Type,
		transaction.Category,
		transaction.Amount,
		transaction.Description,
		FormatDateTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// UpdateTransaction updates an existing transaction row.
// Returns apperrors.ErrTransactionNotFound if no row was updated.
func (s *TransactionRepository) UpdateTransaction(ctx context.Context, transaction model.Transaction) error {
	query := `
		UPDATE cash_transaction
		SET date = ?, type = ?, category = ?, amount = ?, description = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		FormatDateTime(transaction.Date),
		transaction.Type,
		transaction.Category,
		transaction.Amount,
		transaction.Description,
		transaction.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction.
// Returns apperrors.ErrTransactionNotFound if no row was deleted.
func (s *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cash_transaction WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

type transactionScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row transactionScanner) (model.Transaction, error) {
	var dateStr, createdAtStr string
	var description sql.NullString
	var transaction model.Transaction

	err := row.Scan(
		&transaction.ID,
		&dateStr,
		&transaction.Type,
		&transaction.Category,
		&transaction.Amount,
		&description,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan cash_transaction table results: %w", err)
	}

	transaction.Date, err = ParseTime(dateStr)
	if err != nil || transaction.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	transaction.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if description.Valid {
		transaction.Description = description.String
	}

	return transaction, nil
}
