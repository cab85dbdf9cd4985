package model

import "time"

// Transaction type values for Transaction.Type.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction represents a single cash income or expense record.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// MonthlySummary aggregates cash flow for a calendar month.
type MonthlySummary struct {
	Month      string             `json:"month"`
	Income     float64            `json:"income"`
	Expenses   float64            `json:"expenses"`
	Net        float64            `json:"net"`
	ByCategory map[string]float64 `json:"byCategory"`
}
