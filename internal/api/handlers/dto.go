package handlers

import (
	"encoding/json"
	"time"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// Wire format: money values are strings with exactly two decimals,
// percentages are numbers and the exchange rate is an exact JSON number.

// ContributionResponse represents a contribution in API responses.
type ContributionResponse struct {
	ID        int64     `json:"id"`
	GoalID    int64     `json:"goalId"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// GoalDisplay holds the goal's values formatted for display in its own currency.
type GoalDisplay struct {
	TargetAmount       string `json:"targetAmount"`
	TotalSaved         string `json:"totalSaved"`
	Remaining          string `json:"remaining"`
	ProgressPercentage string `json:"progressPercentage"`
}

// GoalResponse represents a goal with its contributions and progress.
type GoalResponse struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	TargetAmount       string                 `json:"targetAmount"`
	Currency           string                 `json:"currency"`
	CreatedAt          time.Time              `json:"createdAt"`
	Contributions      []ContributionResponse `json:"contributions"`
	TotalSaved         string                 `json:"totalSaved"`
	ProgressPercentage float64                `json:"progressPercentage"`
	Remaining          string                 `json:"remaining"`
	Display            GoalDisplay            `json:"display"`
}

// ExchangeRateResponse represents GET /api/exchange-rate.
type ExchangeRateResponse struct {
	Rate              json.Number `json:"rate"`
	LastUpdated       string      `json:"lastUpdated"`
	ProviderUpdatedAt string      `json:"providerUpdatedAt,omitempty"`
}

// DashboardDisplay holds the dashboard totals formatted for display.
type DashboardDisplay struct {
	TotalTarget        string `json:"totalTarget"`
	TotalSaved         string `json:"totalSaved"`
	TotalSavedUSD      string `json:"totalSavedUsd"`
	ProgressPercentage string `json:"progressPercentage"`
	ExchangeRate       string `json:"exchangeRate"`
}

// DashboardResponse represents GET /api/dashboard. Totals are in INR.
type DashboardResponse struct {
	TotalTarget     string               `json:"totalTarget"`
	TotalSaved      string               `json:"totalSaved"`
	OverallProgress float64              `json:"overallProgress"`
	GoalCount       int                  `json:"goalCount"`
	ExchangeRate    ExchangeRateResponse `json:"exchangeRate"`
	Display         DashboardDisplay     `json:"display"`
}

// ConvertResponse represents GET /api/convert.
type ConvertResponse struct {
	Amount    string      `json:"amount"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Converted string      `json:"converted"`
	Rate      json.Number `json:"rate"`
	Display   string      `json:"display"`
}

func newContributionResponse(c model.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:        c.ID,
		GoalID:    c.GoalID,
		Amount:    currency.FixedString(c.Amount),
		Date:      c.Date.Format("2006-01-02"),
		CreatedAt: c.CreatedAt,
	}
}

func newContributionResponses(contributions []model.Contribution) []ContributionResponse {
	result := make([]ContributionResponse, len(contributions))
	for i, c := range contributions {
		result[i] = newContributionResponse(c)
	}
	return result
}

func newGoalResponse(g model.GoalWithContributions) GoalResponse {
	return GoalResponse{
		ID:                 g.ID,
		Name:               g.Name,
		TargetAmount:       currency.FixedString(g.TargetAmount),
		Currency:           g.Currency.String(),
		CreatedAt:          g.CreatedAt,
		Contributions:      newContributionResponses(g.Contributions),
		TotalSaved:         currency.FixedString(g.TotalSaved),
		ProgressPercentage: g.ProgressPercentage,
		Remaining:          currency.FixedString(g.Remaining),
		Display: GoalDisplay{
			TargetAmount:       currency.Format(g.TargetAmount, g.Currency),
			TotalSaved:         currency.Format(g.TotalSaved, g.Currency),
			Remaining:          currency.Format(g.Remaining, g.Currency),
			ProgressPercentage: currency.FormatPercentage(g.ProgressPercentage),
		},
	}
}

func newExchangeRateResponse(rate model.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		Rate:              json.Number(rate.Rate.String()),
		LastUpdated:       rate.LastUpdated,
		ProviderUpdatedAt: rate.ProviderUpdatedAt,
	}
}

func newDashboardResponse(d model.DashboardData) (DashboardResponse, error) {
	savedUSD, err := currency.Convert(d.TotalSaved, currency.INR, currency.USD, d.ExchangeRate.Rate)
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		TotalTarget:     currency.FixedString(d.TotalTarget),
		TotalSaved:      currency.FixedString(d.TotalSaved),
		OverallProgress: d.OverallProgress,
		GoalCount:       d.GoalCount,
		ExchangeRate:    newExchangeRateResponse(d.ExchangeRate),
		Display: DashboardDisplay{
			TotalTarget:        currency.Format(d.TotalTarget, currency.INR),
			TotalSaved:         currency.Format(d.TotalSaved, currency.INR),
			TotalSavedUSD:      currency.Format(savedUSD, currency.USD),
			ProgressPercentage: currency.FormatPercentage(d.OverallProgress),
			ExchangeRate:       currency.FormatRate(d.ExchangeRate.Rate),
		},
	}, nil
}
