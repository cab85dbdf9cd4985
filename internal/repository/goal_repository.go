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

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// GetGoals retrieves all goals ordered by creation time.
func (s *GoalRepository) GetGoals() ([]model.Goal, error) {
	query := `
		SELECT id, name, target_amount, current_amount, deadline, created_at
		FROM goal
		ORDER BY created_at ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// GetGoal retrieves a single goal by ID.
// Returns apperrors.ErrGoalNotFound if no row exists.
func (s *GoalRepository) GetGoal(id string) (model.Goal, error) {
	query := `
		SELECT id, name, target_amount, current_amount, deadline, created_at
		FROM goal
		WHERE id = ?
	`

	goal, err := scanGoal(s.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, apperrors.ErrGoalNotFound
	}
	if err != nil {
		return model.Goal{}, err
	}

	return goal, nil
}

// CreateGoal inserts a new goal row.
func (s *GoalRepository) CreateGoal(ctx context.Context, goal model.Goal) error {
	query := `
		INSERT INTO goal (id, name, target_amount, current_amount, deadline, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var deadline any
	if goal.Deadline != nil {
		deadline = FormatDateTime(*goal.Deadline)
	}

	_, err := s.db.ExecContext(ctx, query,
		goal.ID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		deadline,
		FormatDateTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	return nil
}

// UpdateGoal updates a goal's name, target, current amount and deadline.
// Returns apperrors.ErrGoalNotFound if no row was updated.
func (s *GoalRepository) UpdateGoal(ctx context.Context, goal model.Goal) error {
	query := `
		UPDATE goal
		SET name = ?, target_amount = ?, current_amount = ?, deadline = ?
		WHERE id = ?
	`

	var deadline any
	if goal.Deadline != nil {
		deadline = FormatDateTime(*goal.Deadline)
	}

	result, err := s.db.ExecContext(ctx, query,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		deadline,
		goal.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

// DeleteGoal removes a goal.
// Returns apperrors.ErrGoalNotFound if no row was deleted.
func (s *GoalRepository) DeleteGoal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM goal WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

type goalScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row goalScanner) (model.Goal, error) {
	var deadlineStr sql.NullString
	var createdAtStr string
	var goal model.Goal

	err := row.Scan(
		&goal.ID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&deadlineStr,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Goal{}, err
		}
		return model.Goal{}, fmt.Errorf("failed to scan goal table results: %w", err)
	}

	if deadlineStr.Valid {
		deadline, err := ParseTime(deadlineStr.String)
		if err != nil {
			return model.Goal{}, fmt.Errorf("failed to parse date: %w", err)
		}
		goal.Deadline = &deadline
	}

	goal.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return goal, nil
}
