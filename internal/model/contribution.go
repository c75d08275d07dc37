package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is a single deposit toward a goal.
// Date is the calendar day of the contribution (UTC midnight), distinct from
// CreatedAt, the moment it was recorded.
type Contribution struct {
	ID        int64
	GoalID    int64
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// NewContribution holds validated input for creating a contribution.
type NewContribution struct {
	GoalID int64
	Amount decimal.Decimal
	Date   time.Time
}
