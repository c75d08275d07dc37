package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
)

// GoalBuilder provides a fluent interface for creating test goals.
// Builders write through a repository.Store, so the same test data works
// against both the memory and the SQLite backend.
//
// Example usage:
//
//	// Simple creation with defaults
//	goal := testutil.NewGoal().Build(t, store)
//
//	// Customized goal
//	goal := testutil.NewGoal().
//	    WithName("Emergency Fund").
//	    WithTarget("1000.00").
//	    WithCurrency(currency.USD).
//	    Build(t, store)
type GoalBuilder struct {
	Name         string
	TargetAmount decimal.Decimal
	Currency     currency.Currency
}

// NewGoal creates a GoalBuilder with sensible defaults (1000.00 INR).
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		Name:         MakeGoalName("Test Goal"),
		TargetAmount: decimal.RequireFromString("1000.00"),
		Currency:     currency.INR,
	}
}

// WithName sets a custom name.
func (b *GoalBuilder) WithName(name string) *GoalBuilder {
	b.Name = name
	return b
}

// WithTarget sets the target amount from a decimal string.
func (b *GoalBuilder) WithTarget(amount string) *GoalBuilder {
	b.TargetAmount = decimal.RequireFromString(amount)
	return b
}

// WithCurrency sets the goal currency.
func (b *GoalBuilder) WithCurrency(c currency.Currency) *GoalBuilder {
	b.Currency = c
	return b
}

// Build creates the goal in the store and returns it.
func (b *GoalBuilder) Build(t *testing.T, store repository.Store) model.Goal {
	t.Helper()

	goal, err := store.CreateGoal(context.Background(), model.NewGoal{
		Name:         b.Name,
		TargetAmount: currency.Round(b.TargetAmount),
		Currency:     b.Currency,
	})
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return goal
}

// ContributionBuilder provides a fluent interface for creating test contributions.
//
// Example usage:
//
//	contribution := testutil.NewContribution(goal.ID).
//	    WithAmount("250.00").
//	    WithDate("2024-01-15").
//	    Build(t, store)
type ContributionBuilder struct {
	GoalID int64
	Amount decimal.Decimal
	Date   time.Time
}

// NewContribution creates a ContributionBuilder for the given goal (100.00 on 2024-01-01).
func NewContribution(goalID int64) *ContributionBuilder {
	return &ContributionBuilder{
		GoalID: goalID,
		Amount: decimal.RequireFromString("100.00"),
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithAmount sets the amount from a decimal string.
func (b *ContributionBuilder) WithAmount(amount string) *ContributionBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

// WithDate sets the contribution date from a YYYY-MM-DD string.
func (b *ContributionBuilder) WithDate(date string) *ContributionBuilder {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	b.Date = d
	return b
}

// Build creates the contribution in the store and returns it.
func (b *ContributionBuilder) Build(t *testing.T, store repository.Store) model.Contribution {
	t.Helper()

	contribution, err := store.CreateContribution(context.Background(), model.NewContribution{
		GoalID: b.GoalID,
		Amount: currency.Round(b.Amount),
		Date:   b.Date,
	})
	if err != nil {
		t.Fatalf("Failed to create test contribution: %v", err)
	}

	return contribution
}

// Convenience functions

// CreateGoal creates a goal with the given target and currency.
//
// Example usage:
//
//	goal := testutil.CreateGoal(t, store, "1000.00", currency.INR)
func CreateGoal(t *testing.T, store repository.Store, target string, c currency.Currency) model.Goal {
	t.Helper()
	return NewGoal().WithTarget(target).WithCurrency(c).Build(t, store)
}

// CreateGoalWithContributions creates a goal and one contribution per amount.
//
// Example usage:
//
//	goal := testutil.CreateGoalWithContributions(t, store, "1000.00", currency.INR, "500.00", "200.00")
func CreateGoalWithContributions(t *testing.T, store repository.Store, target string, c currency.Currency, amounts ...string) model.Goal {
	t.Helper()

	goal := CreateGoal(t, store, target, c)
	for _, amount := range amounts {
		NewContribution(goal.ID).WithAmount(amount).Build(t, store)
	}
	return goal
}
