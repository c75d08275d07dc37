package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// MemoryStore keeps goals and contributions in process memory.
// Everything is lost on restart.
type MemoryStore struct {
	mu            sync.RWMutex
	goals         map[int64]model.Goal
	contributions map[int64]model.Contribution

	goalIDs         Sequence
	contributionIDs Sequence
	now             func() time.Time
}

// MemoryOption customizes a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithGoalSequence sets the identity strategy for goals.
func WithGoalSequence(seq Sequence) MemoryOption {
	return func(s *MemoryStore) { s.goalIDs = seq }
}

// WithContributionSequence sets the identity strategy for contributions.
func WithContributionSequence(seq Sequence) MemoryOption {
	return func(s *MemoryStore) { s.contributionIDs = seq }
}

// WithClock sets the function used for creation timestamps.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an empty MemoryStore. Both collections number
// from 1 unless a different Sequence is supplied.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		goals:           make(map[int64]model.Goal),
		contributions:   make(map[int64]model.Contribution),
		goalIDs:         NewCounter(1),
		contributionIDs: NewCounter(1),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGoal stores a new goal and returns it with its assigned ID and timestamp.
func (s *MemoryStore) CreateGoal(_ context.Context, g model.NewGoal) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.goalIDs.Next()
	if _, exists := s.goals[id]; exists {
		return model.Goal{}, fmt.Errorf("goal sequence returned used ID %d", id)
	}

	goal := model.Goal{
		ID:           id,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Currency:     g.Currency,
		CreatedAt:    s.now().UTC(),
	}
	s.goals[id] = goal
	return goal, nil
}

// ListGoals returns all goals ordered by ID.
func (s *MemoryStore) ListGoals(_ context.Context) ([]model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]model.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		goals = append(goals, g)
	}
	slices.SortFunc(goals, func(a, b model.Goal) int { return cmp.Compare(a.ID, b.ID) })
	return goals, nil
}

// GetGoal returns the goal with the given ID or apperrors.ErrGoalNotFound.
func (s *MemoryStore) GetGoal(_ context.Context, id int64) (model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[id]
	if !ok {
		return model.Goal{}, fmt.Errorf("%w: id %d", apperrors.ErrGoalNotFound, id)
	}
	return goal, nil
}

// CreateContribution stores a contribution for an existing goal.
// The existence check and the insert happen under the same lock.
func (s *MemoryStore) CreateContribution(_ context.Context, c model.NewContribution) (model.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[c.GoalID]; !ok {
		return model.Contribution{}, fmt.Errorf("%w: id %d", apperrors.ErrGoalNotFound, c.GoalID)
	}

	id := s.contributionIDs.Next()
	if _, exists := s.contributions[id]; exists {
		return model.Contribution{}, fmt.Errorf("contribution sequence returned used ID %d", id)
	}

	contribution := model.Contribution{
		ID:        id,
		GoalID:    c.GoalID,
		Amount:    c.Amount,
		Date:      c.Date,
		CreatedAt: s.now().UTC(),
	}
	s.contributions[id] = contribution
	return contribution, nil
}

// ListContributionsByGoal returns the goal's contributions ordered by ID.
// An unknown goal yields an empty slice.
func (s *MemoryStore) ListContributionsByGoal(_ context.Context, goalID int64) ([]model.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contributions := []model.Contribution{}
	for _, c := range s.contributions {
		if c.GoalID == goalID {
			contributions = append(contributions, c)
		}
	}
	slices.SortFunc(contributions, func(a, b model.Contribution) int { return cmp.Compare(a.ID, b.ID) })
	return contributions, nil
}

// Ping always succeeds for the memory store.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
