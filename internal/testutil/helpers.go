package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/config"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/exchangerate"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
)

// NewTestMemoryStore creates an empty in-memory store with sequences starting at 1.
func NewTestMemoryStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	return repository.NewMemoryStore()
}

// NewTestSQLiteStore creates a SQLiteStore over a fresh in-memory database.
// The database is returned as well for row-count assertions.
func NewTestSQLiteStore(t *testing.T) (*repository.SQLiteStore, *sql.DB) {
	t.Helper()

	db := SetupTestDB(t)
	return repository.NewSQLiteStore(db), db
}

func NewTestGoalService(t *testing.T, store repository.Store) *service.GoalService {
	t.Helper()

	return service.NewGoalService(store)
}

func NewTestContributionService(t *testing.T, store repository.Store) *service.ContributionService {
	t.Helper()

	return service.NewContributionService(store)
}

// NewTestExchangeRateService creates an ExchangeRateService with a mock or real client.
func NewTestExchangeRateService(t *testing.T, client exchangerate.Client) *service.ExchangeRateService {
	t.Helper()

	return service.NewExchangeRateService(client)
}

func NewTestDashboardService(t *testing.T, store repository.Store, client exchangerate.Client) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(service.NewGoalService(store), client)
}

// NewTestSystemService creates a SystemService backed by the given database.
// Pass a nil db for the memory backend.
func NewTestSystemService(t *testing.T, store repository.Store, db *sql.DB) *service.SystemService {
	t.Helper()

	backend := config.StoreMemory
	if db != nil {
		backend = config.StoreSQLite
	}
	return service.NewSystemService(store, db, backend)
}

// MakeGoalName generates a unique goal name for testing.
//
// Example usage:
//
//	name := testutil.MakeGoalName("Vacation")
//	// Returns: "Vacation ABC123"
func MakeGoalName(base string) string {
	if base == "" {
		base = "Goal"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
