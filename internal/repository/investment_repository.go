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

// InvestmentRepository provides data access methods for the investment and
// asset_lot tables. Investments carry derived position fields (quantity,
// average cost); lots are the append-only source of truth behind them.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// GetInvestments retrieves all investments ordered by symbol.
func (s *InvestmentRepository) GetInvestments() ([]model.Investment, error) {
	query := `
		SELECT id, symbol, name, asset_class, quantity, average_cost, created_at, updated_at
		FROM investment
		ORDER BY symbol ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}
	for rows.Next() {
		investment, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, investment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return investments, nil
}

// GetInvestment retrieves a single investment by ID.
// Returns apperrors.ErrInvestmentNotFound if no row exists.
func (s *InvestmentRepository) GetInvestment(id string) (model.Investment, error) {
	query := `
		SELECT id, symbol, name, asset_class, quantity, average_cost, created_at, updated_at
		FROM investment
		WHERE id = ?
	`

	row := s.db.QueryRow(query, id)
	investment, err := scanInvestment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, err
	}

	return investment, nil
}

// GetInvestmentBySymbol retrieves a single investment by symbol.
// Returns apperrors.ErrInvestmentNotFound if no row exists.
func (s *InvestmentRepository) GetInvestmentBySymbol(symbol string) (model.Investment, error) {
	query := `
		SELECT id, symbol, name, asset_class, quantity, average_cost, created_at, updated_at
		FROM investment
		WHERE symbol = ?
	`

	row := s.db.QueryRow(query, symbol)
	investment, err := scanInvestment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, err
	}

	return investment, nil
}

// CreateInvestment inserts a new investment row.
// Returns apperrors.ErrDuplicateSymbol on a symbol uniqueness violation.
func (s *InvestmentRepository) CreateInvestment(ctx context.Context, investment model.Investment) error {
	query := `
		INSERT INTO investment (id, symbol, name, asset_class, quantity, average_cost, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := FormatDateTime(time.Now())
	_, err := s.db.ExecContext(ctx, query,
		investment.ID,
		investment.Symbol,
		investment.Name,
		investment.AssetClass,
		investment.Quantity,
		investment.AverageCost,
		now,
		now,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateSymbol
		}
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	return nil
}

// UpdatePosition stores the recomputed derived position fields.
func (s *InvestmentRepository) UpdatePosition(ctx context.Context, id string, quantity, averageCost float64) error {
	query := `
		UPDATE investment
		SET quantity = ?, average_cost = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, quantity, averageCost, FormatDateTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("failed to update investment position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

// DeleteInvestment removes an investment. The asset_lot foreign key cascades,
// deleting the full lot history with it.
func (s *InvestmentRepository) DeleteInvestment(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM investment WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

// GetLots retrieves the full lot history for an investment, oldest first.
func (s *InvestmentRepository) GetLots(investmentID string) ([]model.AssetLot, error) {
	query := `
		SELECT id, investment_id, type, quantity, price_per_unit, fees, date, created_at
		FROM asset_lot
		WHERE investment_id = ?
		ORDER BY date ASC, created_at ASC
	`

	rows, err := s.db.Query(query, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset_lot table: %w", err)
	}
	defer rows.Close()

	lots := []model.AssetLot{}
	for rows.Next() {
		var dateStr, createdAtStr string
		var lot model.AssetLot

		err := rows.Scan(
			&lot.ID,
			&lot.InvestmentID,
			&lot.Type,
			&lot.Quantity,
			&lot.PricePerUnit,
			&lot.Fees,
			&dateStr,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset_lot table results: %w", err)
		}

		lot.Date, err = ParseTime(dateStr)
		if err != nil || lot.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		lot.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || lot.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		lots = append(lots, lot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset_lot table: %w", err)
	}

	return lots, nil
}

// CreateLot appends a lot to an investment's history.
func (s *InvestmentRepository) CreateLot(ctx context.Context, lot model.AssetLot) error {
	query := `
		INSERT INTO asset_lot (id, investment_id, type, quantity, price_per_unit, fees, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		lot.ID,
		lot.InvestmentID,
		lot.Type,
		lot.Quantity,
		lot.PricePerUnit,
		lot.Fees,
		FormatDateTime(lot.Date),
		FormatDateTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset lot: %w", err)
	}

	return nil
}

// investmentScanner abstracts *sql.Row and *sql.Rows for scanInvestment.
type investmentScanner interface {
	Scan(dest ...any) error
}

func scanInvestment(row investmentScanner) (model.Investment, error) {
	var createdAtStr, updatedAtStr string
	var investment model.Investment

	err := row.Scan(
		&investment.ID,
		&investment.Symbol,
		&investment.Name,
		&investment.AssetClass,
		&investment.Quantity,
		&investment.AverageCost,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Investment{}, err
		}
		return model.Investment{}, fmt.Errorf("failed to scan investment table results: %w", err)
	}

	investment.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to parse date: %w", err)
	}
	investment.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return investment, nil
}
