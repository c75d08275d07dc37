package validation

import (
	"strings"
	"time"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// ValidateCreateContribution validates a contribution creation request.
//
// Required fields:
//   - goalId: positive integer (existence is checked by the store)
//   - amount: positive decimal, same limits as a goal target
//   - date: YYYY-MM-DD or RFC3339
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateContribution(req request.CreateContributionRequest) (model.NewContribution, error) {
	errors := make(map[string]string)

	if req.GoalID <= 0 {
		errors["goalId"] = "goalId is required"
	}

	amount := parseAmount("amount", string(req.Amount), errors)

	var date time.Time
	if raw := strings.TrimSpace(req.Date); raw == "" {
		errors["date"] = "date is required"
	} else if d, err := ParseDate(raw); err != nil {
		errors["date"] = err.Error()
	} else {
		date = d
	}

	if len(errors) > 0 {
		return model.NewContribution{}, &Error{Fields: errors}
	}

	return model.NewContribution{
		GoalID: req.GoalID,
		Amount: amount,
		Date:   date,
	}, nil
}
