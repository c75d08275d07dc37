package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
)

// fixedSequence returns the same value every time.
type fixedSequence struct{ id int64 }

func (s fixedSequence) Next() int64 { return s.id }

func TestCounter(t *testing.T) {
	c := repository.NewCounter(5)

	assert.Equal(t, int64(5), c.Next())
	assert.Equal(t, int64(6), c.Next())
	assert.Equal(t, int64(7), c.Next())
}

func TestMemoryStore_Options(t *testing.T) {
	t.Run("custom sequences and clock", func(t *testing.T) {
		now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
		store := repository.NewMemoryStore(
			repository.WithGoalSequence(repository.NewCounter(100)),
			repository.WithContributionSequence(repository.NewCounter(500)),
			repository.WithClock(func() time.Time { return now }),
		)
		ctx := context.Background()

		goal, err := store.CreateGoal(ctx, model.NewGoal{
			Name:         "House",
			TargetAmount: decimal.RequireFromString("100.00"),
			Currency:     currency.INR,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), goal.ID)
		assert.Equal(t, now.UTC(), goal.CreatedAt)

		contribution, err := store.CreateContribution(ctx, model.NewContribution{
			GoalID: goal.ID,
			Amount: decimal.RequireFromString("1.00"),
			Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(500), contribution.ID)
	})

	// WHY: a broken Sequence must surface as an error rather than silently
	// overwrite an existing record.
	t.Run("reused sequence value is rejected", func(t *testing.T) {
		store := repository.NewMemoryStore(repository.WithGoalSequence(fixedSequence{id: 7}))
		ctx := context.Background()
		input := model.NewGoal{Name: "A", TargetAmount: decimal.RequireFromString("1.00"), Currency: currency.USD}

		_, err := store.CreateGoal(ctx, input)
		require.NoError(t, err)

		_, err = store.CreateGoal(ctx, input)
		assert.Error(t, err)

		goals, err := store.ListGoals(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 1)
	})
}
