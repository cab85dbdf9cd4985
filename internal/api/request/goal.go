package request

// CreateGoalRequest is the request body for creating a savings goal.
// Deadline is optional YYYY-MM-DD.
type CreateGoalRequest struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
}

// UpdateGoalRequest is the request body for updating a savings goal.
// Nil fields keep their stored value.
type UpdateGoalRequest struct {
	Name         *string  `json:"name"`
	TargetAmount *float64 `json:"targetAmount"`
	Deadline     *string  `json:"deadline"`
}

// ContributeRequest is the request body for adding to a goal's balance.
type ContributeRequest struct {
	Amount float64 `json:"amount"`
}
