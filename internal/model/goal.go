package model

import "time"

// Goal status values.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// Goal represents a savings goal with a target amount and optional deadline.
type Goal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
}

// GoalSummary is a goal enriched with derived progress data.
type GoalSummary struct {
	Goal
	ProgressPercent float64 `json:"progressPercent"`
	Status          string  `json:"status"`
}
