package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/model"
)

// PriceRepository provides data access methods for the price_snapshot table.
// Snapshots are append-only; the scheduled refresh job writes one row per
// held symbol per run.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// InsertSnapshots appends a batch of price snapshots in one transaction.
func (s *PriceRepository) InsertSnapshots(ctx context.Context, snapshots []model.PriceSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO price_snapshot (id, symbol, price, change, change_percent, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for _, snapshot := range snapshots {
		_, err := tx.ExecContext(ctx, query,
			snapshot.ID,
			snapshot.Symbol,
			snapshot.Price,
			snapshot.Change,
			snapshot.ChangePercent,
			FormatDateTime(snapshot.FetchedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert price snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price snapshots: %w", err)
	}

	return nil
}

// GetLatestSnapshot retrieves the most recent stored snapshot for a symbol.
// Returns apperrors.ErrPriceSnapshotNotFound if none exists.
func (s *PriceRepository) GetLatestSnapshot(symbol string) (model.PriceSnapshot, error) {
	query := `
		SELECT id, symbol, price, change, change_percent, fetched_at
		FROM price_snapshot
		WHERE symbol = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	var fetchedAtStr string
	var snapshot model.PriceSnapshot

	err := s.db.QueryRow(query, symbol).Scan(
		&snapshot.ID,
		&snapshot.Symbol,
		&snapshot.Price,
		&snapshot.Change,
		&snapshot.ChangePercent,
		&fetchedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PriceSnapshot{}, apperrors.ErrPriceSnapshotNotFound
	}
	if err != nil {
		return model.PriceSnapshot{}, fmt.Errorf("failed to scan price_snapshot table results: %w", err)
	}

	snapshot.FetchedAt, err = ParseTime(fetchedAtStr)
	if err != nil {
		return model.PriceSnapshot{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return snapshot, nil
}
