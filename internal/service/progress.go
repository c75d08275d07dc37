package service

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// CalculateProgress derives saved total, percentage and remaining amount for a goal.
//
// All amounts are in the goal's own currency and summed as decimals, so there is
// no float drift. The percentage is capped at 100 and is 0 for a non-positive
// target; remaining is never negative. Money values are rounded to two places.
//
// Example:
//
//	// target 1000.00, contributions 500.00 + 200.00
//	p := CalculateProgress(goal, contributions)
//	// p.TotalSaved = 700.00, p.ProgressPercentage = 70, p.Remaining = 300.00
func CalculateProgress(goal model.Goal, contributions []model.Contribution) model.Progress {
	totalSaved := decimal.Zero
	for _, c := range contributions {
		totalSaved = totalSaved.Add(c.Amount)
	}

	remaining := goal.TargetAmount.Sub(totalSaved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return model.Progress{
		TotalSaved:         currency.Round(totalSaved),
		ProgressPercentage: percentage(totalSaved, goal.TargetAmount),
		Remaining:          currency.Round(remaining),
	}
}

// percentage returns saved/target*100 clamped to [0, 100].
func percentage(saved, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}

	p := saved.Div(target).Mul(hundred)
	switch {
	case p.GreaterThan(hundred):
		return 100
	case p.IsNegative():
		return 0
	}

	f, _ := p.Float64()
	return f
}
