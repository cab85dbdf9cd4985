package service

import (
	"context"

	"github.com/google/uuid"

	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
)

// GoalService manages savings goals and their progress.
type GoalService struct {
	repo *repository.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(repo *repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GetGoals returns all goals with derived progress.
func (s *GoalService) GetGoals() ([]model.GoalSummary, error) {
	goals, err := s.repo.GetGoals()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.GoalSummary, len(goals))
	for i, goal := range goals {
		summaries[i] = summarizeGoal(goal)
	}

	return summaries, nil
}

// GetGoal returns a single goal with derived progress.
func (s *GoalService) GetGoal(id string) (model.GoalSummary, error) {
	goal, err := s.repo.GetGoal(id)
	if err != nil {
		return model.GoalSummary{}, err
	}

	return summarizeGoal(goal), nil
}

// CreateGoal creates a new savings goal.
func (s *GoalService) CreateGoal(ctx context.Context, goal model.Goal) (model.GoalSummary, error) {
	goal.ID = uuid.NewString()

	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return model.GoalSummary{}, err
	}

	return s.GetGoal(goal.ID)
}

// UpdateGoal replaces a goal's mutable fields.
func (s *GoalService) UpdateGoal(ctx context.Context, goal model.Goal) (model.GoalSummary, error) {
	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return model.GoalSummary{}, err
	}

	return s.GetGoal(goal.ID)
}

// DeleteGoal removes a goal.
func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	return s.repo.DeleteGoal(ctx, id)
}

// Contribute adds an amount to a goal's current balance. Negative amounts
// withdraw; the balance never drops below zero.
func (s *GoalService) Contribute(ctx context.Context, id string, amount float64) (model.GoalSummary, error) {
	goal, err := s.repo.GetGoal(id)
	if err != nil {
		return model.GoalSummary{}, err
	}

	goal.CurrentAmount += amount
	if goal.CurrentAmount < 0 {
		goal.CurrentAmount = 0
	}

	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return model.GoalSummary{}, err
	}

	return s.GetGoal(id)
}

func summarizeGoal(goal model.Goal) model.GoalSummary {
	summary := model.GoalSummary{
		Goal:   goal,
		Status: model.GoalStatusActive,
	}

	if goal.TargetAmount > 0 {
		summary.ProgressPercent = goal.CurrentAmount / goal.TargetAmount * 100
		if summary.ProgressPercent > 100 {
			summary.ProgressPercent = 100
		}
	}
	if goal.CurrentAmount >= goal.TargetAmount && goal.TargetAmount > 0 {
		summary.Status = model.GoalStatusCompleted
	}

	return summary
}
