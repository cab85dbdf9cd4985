package validation

import (
	"strings"

	"finance-tracker/internal/api/request"
)

// ValidateCreateBudget validates a budget creation request.
//
// Required fields:
//   - category: Non-empty
//   - monthlyLimit: Must be positive
func ValidateCreateBudget(req request.CreateBudgetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}

	if req.MonthlyLimit <= 0.0 {
		errors["monthlyLimit"] = "monthlyLimit must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateBudget validates a budget update request.
func ValidateUpdateBudget(req request.UpdateBudgetRequest) error {
	if req.MonthlyLimit <= 0.0 {
		return &Error{Fields: map[string]string{"monthlyLimit": "monthlyLimit must be positive"}}
	}

	return nil
}
