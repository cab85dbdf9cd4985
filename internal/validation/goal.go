package validation

import (
	"strings"
	"time"

	"finance-tracker/internal/api/request"
)

// ValidateCreateGoal validates a goal creation request.
//
// Required fields:
//   - name: Non-empty
//   - targetAmount: Must be positive
//   - currentAmount: Must not be negative
//   - deadline: Must be in YYYY-MM-DD format if provided
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.TargetAmount <= 0.0 {
		errors["targetAmount"] = "targetAmount must be positive"
	}

	if req.CurrentAmount < 0.0 {
		errors["currentAmount"] = "currentAmount must not be negative"
	}

	if req.Deadline != "" {
		if _, err := time.Parse("2006-01-02", req.Deadline); err != nil {
			errors["deadline"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateGoal validates a goal update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name is required"
		}
	}
	if req.TargetAmount != nil {
		if *req.TargetAmount <= 0.0 {
			errors["targetAmount"] = "targetAmount must be positive"
		}
	}
	if req.Deadline != nil && *req.Deadline != "" {
		if _, err := time.Parse("2006-01-02", *req.Deadline); err != nil {
			errors["deadline"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateContribute validates a goal contribution request.
func ValidateContribute(req request.ContributeRequest) error {
	if req.Amount == 0.0 {
		return &Error{Fields: map[string]string{"amount": "amount must not be zero"}}
	}

	return nil
}
