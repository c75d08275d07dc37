package service

import (
	"context"
	"fmt"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
)

// GoalService handles goal-related business logic.
// It loads goals with their contributions and attaches the derived progress.
type GoalService struct {
	store repository.Store
}

// NewGoalService creates a new GoalService with the provided store.
func NewGoalService(store repository.Store) *GoalService {
	return &GoalService{
		store: store,
	}
}

// ListGoals retrieves every goal, ordered by ID, with contributions and progress.
// Returns an empty slice if no goals exist.
func (s *GoalService) ListGoals(ctx context.Context) ([]model.GoalWithContributions, error) {
	goals, err := s.store.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	result := make([]model.GoalWithContributions, 0, len(goals))
	for _, g := range goals {
		withContributions, err := s.withContributions(ctx, g)
		if err != nil {
			return nil, err
		}
		result = append(result, withContributions)
	}

	return result, nil
}

// GetGoal retrieves a single goal with contributions and progress.
// Returns an error wrapping apperrors.ErrGoalNotFound if the goal does not exist.
func (s *GoalService) GetGoal(ctx context.Context, id int64) (model.GoalWithContributions, error) {
	g, err := s.store.GetGoal(ctx, id)
	if err != nil {
		return model.GoalWithContributions{}, err
	}

	return s.withContributions(ctx, g)
}

// CreateGoal stores a validated goal. A new goal has no contributions, so its
// progress is zero saved and the full target remaining.
func (s *GoalService) CreateGoal(ctx context.Context, newGoal model.NewGoal) (model.GoalWithContributions, error) {
	g, err := s.store.CreateGoal(ctx, newGoal)
	if err != nil {
		return model.GoalWithContributions{}, fmt.Errorf("failed to store goal: %w", err)
	}

	contributions := []model.Contribution{}
	return model.GoalWithContributions{
		Goal:          g,
		Contributions: contributions,
		Progress:      CalculateProgress(g, contributions),
	}, nil
}

// ListContributions retrieves the contributions of one goal, ordered by ID.
// Returns an error wrapping apperrors.ErrGoalNotFound if the goal does not exist,
// so an unknown goal is distinguishable from a goal with no contributions.
func (s *GoalService) ListContributions(ctx context.Context, goalID int64) ([]model.Contribution, error) {
	if _, err := s.store.GetGoal(ctx, goalID); err != nil {
		return nil, err
	}

	contributions, err := s.store.ListContributionsByGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions for goal %d: %w", goalID, err)
	}
	return contributions, nil
}

func (s *GoalService) withContributions(ctx context.Context, g model.Goal) (model.GoalWithContributions, error) {
	contributions, err := s.store.ListContributionsByGoal(ctx, g.ID)
	if err != nil {
		return model.GoalWithContributions{}, fmt.Errorf("failed to load contributions for goal %d: %w", g.ID, err)
	}

	return model.GoalWithContributions{
		Goal:          g,
		Contributions: contributions,
		Progress:      CalculateProgress(g, contributions),
	}, nil
}
