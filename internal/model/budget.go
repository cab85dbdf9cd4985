package model

import "time"

// Budget status values, derived from spend against the monthly limit.
const (
	BudgetStatusOK       = "ok"
	BudgetStatusWarning  = "warning"
	BudgetStatusExceeded = "exceeded"
)

// Budget represents a per-category monthly spending limit.
type Budget struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	MonthlyLimit float64   `json:"monthlyLimit"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// BudgetSummary is a budget enriched with derived spend data for one month.
// Spent is computed from expense transactions in the period on every read.
type BudgetSummary struct {
	Budget
	Month       string  `json:"month"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	UsedPercent float64 `json:"usedPercent"`
	Status      string  `json:"status"`
}
