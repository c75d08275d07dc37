package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
)

// ExchangeRate is a freshly fetched USD→INR rate. It is never persisted.
type ExchangeRate struct {
	Rate              decimal.Decimal // INR per 1 USD
	LastUpdated       string          // fetch time as HH:MM:SS (24h)
	FetchedAt         time.Time
	ProviderUpdatedAt string // provider's own last-update stamp, may be empty
}

// DashboardData is the aggregate across all goals, normalized to INR.
type DashboardData struct {
	TotalTarget     decimal.Decimal
	TotalSaved      decimal.Decimal
	OverallProgress float64
	ExchangeRate    ExchangeRate
	GoalCount       int
}

// Conversion is the result of converting an amount with a fetched rate.
// Converted is rounded to two decimal places.
type Conversion struct {
	Amount    decimal.Decimal
	From      currency.Currency
	To        currency.Currency
	Converted decimal.Decimal
	Rate      ExchangeRate
}
