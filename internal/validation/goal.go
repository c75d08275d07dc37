package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// MaxGoalNameLength is the maximum goal name length in characters.
const MaxGoalNameLength = 100

// ValidateCreateGoal validates a goal creation request.
//
// Required fields:
//   - name: non-empty after trimming, at most 100 characters
//   - targetAmount: positive decimal, at most 9999999999999.99 after rounding to 2 places
//   - currency: exactly "INR" or "USD"
//
// Returns the trimmed, rounded goal, or a validation Error with field-specific
// messages. Values are never clamped into range.
func ValidateCreateGoal(req request.CreateGoalRequest) (model.NewGoal, error) {
	errors := make(map[string]string)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errors["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > MaxGoalNameLength {
		errors["name"] = fmt.Sprintf("name must be at most %d characters", MaxGoalNameLength)
	}

	target := parseAmount("targetAmount", string(req.TargetAmount), errors)
	c := parseCurrency("currency", req.Currency, errors)

	if len(errors) > 0 {
		return model.NewGoal{}, &Error{Fields: errors}
	}

	return model.NewGoal{
		Name:         name,
		TargetAmount: target,
		Currency:     c,
	}, nil
}

// ValidateGoalID parses a goal ID path parameter. IDs are positive integers.
func ValidateGoalID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidGoalID, raw)
	}
	return id, nil
}
