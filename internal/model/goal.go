package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
)

// Goal represents a savings goal as held by the store.
// TargetAmount is always positive and kept at two decimal places.
type Goal struct {
	ID           int64
	Name         string
	TargetAmount decimal.Decimal
	Currency     currency.Currency
	CreatedAt    time.Time
}

// NewGoal holds validated input for creating a goal.
// The store assigns ID and CreatedAt.
type NewGoal struct {
	Name         string
	TargetAmount decimal.Decimal
	Currency     currency.Currency
}

// Progress holds the values derived from a goal and its contributions.
//
// TotalSaved and Remaining are in the goal's own currency, rounded to two
// decimal places. ProgressPercentage lies in [0, 100].
type Progress struct {
	TotalSaved         decimal.Decimal
	ProgressPercentage float64
	Remaining          decimal.Decimal
}

// GoalWithContributions is a goal together with its contributions
// (ordered by ID) and the derived progress.
type GoalWithContributions struct {
	Goal
	Contributions []Contribution
	Progress
}
