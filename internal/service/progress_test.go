package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
)

func goalWithTarget(target string) model.Goal {
	return model.Goal{ID: 1, Name: "Test", TargetAmount: decimal.RequireFromString(target), Currency: currency.INR}
}

func contributions(amounts ...string) []model.Contribution {
	result := make([]model.Contribution, len(amounts))
	for i, a := range amounts {
		result[i] = model.Contribution{ID: int64(i + 1), GoalID: 1, Amount: decimal.RequireFromString(a)}
	}
	return result
}

// TestCalculateProgress tests the per-goal progress derivation.
//
// WHY: Every goal response and the dashboard are built from these numbers.
// The cap at 100% and the non-negative remaining amount are visible to users.
func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		amounts       []string
		wantSaved     string
		wantPercent   float64
		wantRemaining string
	}{
		{"no contributions", "1000.00", nil, "0", 0, "1000.00"},
		{"partial progress", "1000.00", []string{"500.00", "200.00"}, "700.00", 70, "300.00"},
		{"exactly reached", "1000.00", []string{"1000.00"}, "1000.00", 100, "0"},
		{"over target caps at 100", "1000.00", []string{"800.00", "700.00"}, "1500.00", 100, "0"},
		{"decimal sums do not drift", "0.30", []string{"0.10", "0.20"}, "0.30", 100, "0"},
		{"zero target yields zero", "0", []string{"50.00"}, "50.00", 0, "0"},
		{"negative target yields zero", "-10", []string{"50.00"}, "50.00", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := service.CalculateProgress(goalWithTarget(tt.target), contributions(tt.amounts...))

			assert.True(t, decimal.RequireFromString(tt.wantSaved).Equal(p.TotalSaved), "totalSaved = %s", p.TotalSaved)
			assert.InDelta(t, tt.wantPercent, p.ProgressPercentage, 1e-9)
			assert.True(t, decimal.RequireFromString(tt.wantRemaining).Equal(p.Remaining), "remaining = %s", p.Remaining)
		})
	}

	t.Run("percentage stays within bounds", func(t *testing.T) {
		for _, amount := range []string{"0.01", "1", "333.33", "999.99", "1000", "1000.01", "123456789"} {
			p := service.CalculateProgress(goalWithTarget("1000.00"), contributions(amount))
			assert.GreaterOrEqual(t, p.ProgressPercentage, 0.0)
			assert.LessOrEqual(t, p.ProgressPercentage, 100.0)
			assert.False(t, p.Remaining.IsNegative())
			assert.True(t, p.Remaining.LessThanOrEqual(decimal.RequireFromString("1000.00")))
		}
	})

	t.Run("one third rounds saved but not percentage", func(t *testing.T) {
		p := service.CalculateProgress(goalWithTarget("300.00"), contributions("100.00"))
		assert.InDelta(t, 33.3333, p.ProgressPercentage, 0.0001)
		assert.Equal(t, "200.00", p.Remaining.StringFixed(2))
	})
}
