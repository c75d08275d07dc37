package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/exchangerate"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// ExchangeRateService exposes the live USD→INR rate and conversions based on it.
type ExchangeRateService struct {
	client exchangerate.Client
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(client exchangerate.Client) *ExchangeRateService {
	return &ExchangeRateService{
		client: client,
	}
}

// GetExchangeRate fetches a fresh rate from the provider.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context) (model.ExchangeRate, error) {
	return s.client.LatestRate(ctx)
}

// Convert converts amount between currencies using a freshly fetched rate.
// The rate is fetched even for same-currency requests so every successful
// response reports the rate it was computed against.
// The converted amount is rounded to two places.
func (s *ExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to currency.Currency) (model.Conversion, error) {
	rate, err := s.client.LatestRate(ctx)
	if err != nil {
		return model.Conversion{}, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}

	converted, err := currency.Convert(amount, from, to, rate.Rate)
	if err != nil {
		return model.Conversion{}, err
	}

	return model.Conversion{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: currency.Round(converted),
		Rate:      rate,
	}, nil
}
