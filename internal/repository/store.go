package repository

import (
	"context"
	"sync/atomic"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// Store is the goal and contribution storage contract.
//
// The store owns identity assignment: IDs are unique per collection,
// increase monotonically and are never reused within the store's lifetime.
// GetGoal reports a missing goal with apperrors.ErrGoalNotFound, and
// CreateContribution does the same when the referenced goal does not exist.
type Store interface {
	CreateGoal(ctx context.Context, goal model.NewGoal) (model.Goal, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	GetGoal(ctx context.Context, id int64) (model.Goal, error)
	CreateContribution(ctx context.Context, contribution model.NewContribution) (model.Contribution, error)
	ListContributionsByGoal(ctx context.Context, goalID int64) ([]model.Contribution, error)
	Ping(ctx context.Context) error
}

// Sequence hands out identifiers. Implementations must never return the
// same value twice and must return increasing values.
type Sequence interface {
	Next() int64
}

// Counter is a Sequence backed by an atomic counter.
type Counter struct {
	last atomic.Int64
}

// NewCounter returns a Counter whose first value is start.
func NewCounter(start int64) *Counter {
	c := &Counter{}
	c.last.Store(start - 1)
	return c
}

// Next returns the next identifier.
func (c *Counter) Next() int64 {
	return c.last.Add(1)
}
