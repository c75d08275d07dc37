package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/exchangerate"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// AggregateDashboard normalizes every goal into the reporting currency (INR)
// and sums targets and saved amounts.
//
// The rate must be positive even when every goal is already in INR: a
// dashboard is never produced from an invalid rate. Totals are rounded to two
// places after summing; overall progress is computed from the rounded totals
// and lies in [0, 100].
//
// Example:
//
//	// goal A: 1000.00 INR, goal B: 100.00 USD, rate 83.50
//	d, _ := AggregateDashboard(goals, rate)
//	// d.TotalTarget = 9350.00
func AggregateDashboard(goals []model.GoalWithContributions, rate model.ExchangeRate) (model.DashboardData, error) {
	if !rate.Rate.IsPositive() {
		return model.DashboardData{}, fmt.Errorf("%w: got %s", currency.ErrInvalidRate, rate.Rate)
	}

	totalTarget := decimal.Zero
	totalSaved := decimal.Zero

	for _, g := range goals {
		target, err := currency.ToReporting(g.TargetAmount, g.Currency, rate.Rate)
		if err != nil {
			return model.DashboardData{}, fmt.Errorf("goal %d: %w", g.ID, err)
		}
		saved, err := currency.ToReporting(g.TotalSaved, g.Currency, rate.Rate)
		if err != nil {
			return model.DashboardData{}, fmt.Errorf("goal %d: %w", g.ID, err)
		}

		totalTarget = totalTarget.Add(target)
		totalSaved = totalSaved.Add(saved)
	}

	totalTarget = currency.Round(totalTarget)
	totalSaved = currency.Round(totalSaved)

	return model.DashboardData{
		TotalTarget:     totalTarget,
		TotalSaved:      totalSaved,
		OverallProgress: percentage(totalSaved, totalTarget),
		ExchangeRate:    rate,
		GoalCount:       len(goals),
	}, nil
}

// DashboardService builds the cross-goal INR summary.
type DashboardService struct {
	goalService *GoalService
	rateClient  exchangerate.Client
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(goalService *GoalService, rateClient exchangerate.Client) *DashboardService {
	return &DashboardService{
		goalService: goalService,
		rateClient:  rateClient,
	}
}

// GetDashboard loads all goals and a fresh exchange rate concurrently, then aggregates.
// If either load fails the other is cancelled and no dashboard is returned.
func (s *DashboardService) GetDashboard(ctx context.Context) (model.DashboardData, error) {
	var goals []model.GoalWithContributions
	var rate model.ExchangeRate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = s.goalService.ListGoals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rate, err = s.rateClient.LatestRate(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch exchange rate: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.DashboardData{}, err
	}

	return AggregateDashboard(goals, rate)
}
