package service

import (
	"context"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
)

// ContributionService handles contribution-related business logic.
type ContributionService struct {
	store repository.Store
}

// NewContributionService creates a new ContributionService with the provided store.
func NewContributionService(store repository.Store) *ContributionService {
	return &ContributionService{
		store: store,
	}
}

// CreateContribution records a validated contribution.
// The store checks the goal exists and inserts atomically; an unknown goal
// yields an error wrapping apperrors.ErrGoalNotFound and nothing is stored.
func (s *ContributionService) CreateContribution(ctx context.Context, c model.NewContribution) (model.Contribution, error) {
	return s.store.CreateContribution(ctx, c)
}
