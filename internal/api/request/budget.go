package request

// CreateBudgetRequest is the request body for creating a category budget.
type CreateBudgetRequest struct {
	Category     string  `json:"category"`
	MonthlyLimit float64 `json:"monthlyLimit"`
}

// UpdateBudgetRequest is the request body for changing a budget's limit.
type UpdateBudgetRequest struct {
	MonthlyLimit float64 `json:"monthlyLimit"`
}
