package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidGoalID indicates that a goal ID is not a positive integer.
	ErrInvalidGoalID = errors.New("invalid goal ID")
)

// Exchange rate errors represent failures of the external rate provider.
// Both abort any computation that depends on a live rate.
var (
	// ErrExchangeRateNotConfigured indicates that no provider API key is set.
	ErrExchangeRateNotConfigured = errors.New("exchange rate API key not configured")

	// ErrExchangeRateUpstream indicates the provider was unreachable, answered
	// with an error status, or returned an unexpected payload.
	ErrExchangeRateUpstream = errors.New("exchange rate provider error")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These messages are what callers see; the underlying cause is only logged.
var (
	// Goal operation errors
	ErrFailedToRetrieveGoals = errors.New("failed to fetch goals")
	ErrFailedToRetrieveGoal  = errors.New("failed to fetch goal")
	ErrFailedToCreateGoal    = errors.New("failed to create goal")

	// Contribution operation errors
	ErrFailedToRetrieveContributions = errors.New("failed to fetch contributions")
	ErrFailedToCreateContribution    = errors.New("failed to create contribution")

	// Exchange rate and dashboard errors
	ErrFailedToRetrieveExchangeRate = errors.New("failed to fetch exchange rate")
	ErrFailedToGetDashboard         = errors.New("failed to fetch dashboard data")
	ErrFailedToConvert              = errors.New("failed to convert amount")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that stored data could not be decoded
	// (e.g., an amount column that is not a valid decimal).
	ErrDataInconsistency = errors.New("data inconsistency detected")
)
