package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/model"
)

// SettingRepository provides data access methods for the app_setting table.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSettings retrieves all stored settings.
func (s *SettingRepository) GetSettings() ([]model.Setting, error) {
	query := `SELECT "key", value, updated_at FROM app_setting ORDER BY "key" ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query app_setting table: %w", err)
	}
	defer rows.Close()

	settings := []model.Setting{}
	for rows.Next() {
		var updatedAtStr sql.NullString
		var setting model.Setting

		if err := rows.Scan(&setting.Key, &setting.Value, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan app_setting table results: %w", err)
		}

		if updatedAtStr.Valid {
			setting.UpdatedAt, err = ParseTime(updatedAtStr.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse date: %w", err)
			}
		}

		settings = append(settings, setting)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating app_setting table: %w", err)
	}

	return settings, nil
}

// GetSetting retrieves the value stored under key.
// Returns apperrors.ErrSettingNotFound if the key has no value.
func (s *SettingRepository) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_setting WHERE "key" = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %s: %w", key, err)
	}

	return value, nil
}

// SetSetting stores value under key, inserting or updating as needed.
func (s *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_setting (id, "key", value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT("key") DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, uuid.NewString(), key, value, FormatDateTime(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}

	return nil
}
