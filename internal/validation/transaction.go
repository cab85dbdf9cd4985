package validation

import (
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	"income": true, "expense": true,
}

// ValidateCreateTransaction validates a cash transaction creation request.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format if provided
//   - type: Must be one of: income, expense
//   - category: Non-empty
//   - amount: Must be positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a cash transaction update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Type != nil {
		if !ValidTransactionType[*req.Type] {
			errors["type"] = fmt.Sprintf("invalid type: %s", *req.Type)
		}
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			errors["category"] = "category is required"
		}
	}
	if req.Amount != nil {
		if *req.Amount <= 0.0 {
			errors["amount"] = "amount must be positive"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
