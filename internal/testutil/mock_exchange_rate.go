package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// DefaultMockRate is the INR-per-USD rate the mock returns unless configured.
const DefaultMockRate = "83.50"

// MockExchangeRateClient is a mock implementation of exchangerate.Client for testing.
// It returns a predefined rate instead of calling the provider.
// Safe for concurrent use, the dashboard fetches the rate from its own goroutine.
type MockExchangeRateClient struct {
	mu sync.Mutex
	// MockRate is the rate to return from LatestRate
	MockRate model.ExchangeRate
	// MockError is the error to return from LatestRate
	MockError error
	// QueryCount tracks how many times LatestRate was called
	QueryCount int
}

// NewMockExchangeRateClient creates a mock client returning DefaultMockRate.
func NewMockExchangeRateClient() *MockExchangeRateClient {
	return &MockExchangeRateClient{
		MockRate: CreateMockExchangeRate(DefaultMockRate),
	}
}

// LatestRate returns the configured MockRate and MockError.
func (m *MockExchangeRateClient) LatestRate(_ context.Context) (model.ExchangeRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.QueryCount++
	if m.MockError != nil {
		return model.ExchangeRate{}, m.MockError
	}
	return m.MockRate, nil
}

// Queries returns QueryCount under the lock.
func (m *MockExchangeRateClient) Queries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.QueryCount
}

// WithError configures the mock to return the specified error.
func (m *MockExchangeRateClient) WithError(err error) *MockExchangeRateClient {
	m.MockError = err
	return m
}

// WithRate configures the mock to return the given rate, e.g. "83.50".
// Panics on a malformed rate string since it is a test programming error.
func (m *MockExchangeRateClient) WithRate(rate string) *MockExchangeRateClient {
	m.MockRate = CreateMockExchangeRate(rate)
	return m
}

// CreateMockExchangeRate builds an ExchangeRate with fixed timestamps.
func CreateMockExchangeRate(rate string) model.ExchangeRate {
	fetchedAt := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)
	return model.ExchangeRate{
		Rate:              decimal.RequireFromString(rate),
		LastUpdated:       fetchedAt.Format("15:04:05"),
		FetchedAt:         fetchedAt,
		ProviderUpdatedAt: "Fri, 15 Mar 2024 00:00:01 +0000",
	}
}
