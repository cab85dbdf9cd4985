package request

// CreateTransactionRequest is the request body for recording a cash
// transaction.
type CreateTransactionRequest struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// UpdateTransactionRequest is the request body for updating a cash
// transaction. Nil fields keep their stored value.
type UpdateTransactionRequest struct {
	Date        *string  `json:"date"`
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
}
