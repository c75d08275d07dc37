package validation_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/validation"
)

// fieldErrors extracts the field map from a validation error.
func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	return verr.Fields
}

func TestValidateCreateGoal(t *testing.T) {
	t.Run("valid request is trimmed and rounded", func(t *testing.T) {
		goal, err := validation.ValidateCreateGoal(request.CreateGoalRequest{
			Name:         "  Emergency Fund  ",
			TargetAmount: "1000.005",
			Currency:     "INR",
		})
		require.NoError(t, err)

		assert.Equal(t, "Emergency Fund", goal.Name)
		assert.Equal(t, "1000.01", goal.TargetAmount.StringFixed(2))
		assert.Equal(t, currency.INR, goal.Currency)
	})

	t.Run("number form is accepted", func(t *testing.T) {
		goal, err := validation.ValidateCreateGoal(request.CreateGoalRequest{
			Name: "Car", TargetAmount: "2500", Currency: "USD",
		})
		require.NoError(t, err)
		assert.Equal(t, "2500.00", goal.TargetAmount.StringFixed(2))
	})

	tests := []struct {
		name  string
		req   request.CreateGoalRequest
		field string
	}{
		{"empty name", request.CreateGoalRequest{Name: "", TargetAmount: "10", Currency: "INR"}, "name"},
		{"whitespace name", request.CreateGoalRequest{Name: "   ", TargetAmount: "10", Currency: "INR"}, "name"},
		{"long name", request.CreateGoalRequest{Name: strings.Repeat("a", 101), TargetAmount: "10", Currency: "INR"}, "name"},
		{"negative target", request.CreateGoalRequest{Name: "x", TargetAmount: "-5", Currency: "INR"}, "targetAmount"},
		{"zero target", request.CreateGoalRequest{Name: "x", TargetAmount: "0", Currency: "INR"}, "targetAmount"},
		{"target rounds to zero", request.CreateGoalRequest{Name: "x", TargetAmount: "0.004", Currency: "INR"}, "targetAmount"},
		{"non numeric target", request.CreateGoalRequest{Name: "x", TargetAmount: "lots", Currency: "INR"}, "targetAmount"},
		{"missing target", request.CreateGoalRequest{Name: "x", Currency: "INR"}, "targetAmount"},
		{"target too large", request.CreateGoalRequest{Name: "x", TargetAmount: "10000000000000", Currency: "INR"}, "targetAmount"},
		{"target with exponent", request.CreateGoalRequest{Name: "x", TargetAmount: "1e3", Currency: "INR"}, "targetAmount"},
		{"target with too many decimals", request.CreateGoalRequest{Name: "x", TargetAmount: request.Amount("1." + strings.Repeat("1", 21)), Currency: "INR"}, "targetAmount"},
		{"lowercase currency", request.CreateGoalRequest{Name: "x", TargetAmount: "10", Currency: "usd"}, "currency"},
		{"unsupported currency", request.CreateGoalRequest{Name: "x", TargetAmount: "10", Currency: "EUR"}, "currency"},
		{"missing currency", request.CreateGoalRequest{Name: "x", TargetAmount: "10"}, "currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.ValidateCreateGoal(tt.req)
			fields := fieldErrors(t, err)
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, 1)
		})
	}

	t.Run("100 character name is accepted", func(t *testing.T) {
		_, err := validation.ValidateCreateGoal(request.CreateGoalRequest{
			Name: strings.Repeat("ä", 100), TargetAmount: "10", Currency: "INR",
		})
		assert.NoError(t, err)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		_, err := validation.ValidateCreateGoal(request.CreateGoalRequest{})
		fields := fieldErrors(t, err)
		assert.Len(t, fields, 3)
		assert.Equal(t, "currency: currency must be INR or USD; name: name is required; targetAmount: targetAmount is required", err.Error())
	})
}

func TestValidateCreateContribution(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		c, err := validation.ValidateCreateContribution(request.CreateContributionRequest{
			GoalID: 3, Amount: "250.5", Date: "2024-02-29",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), c.GoalID)
		assert.Equal(t, "250.50", c.Amount.StringFixed(2))
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), c.Date)
	})

	tests := []struct {
		name  string
		req   request.CreateContributionRequest
		field string
	}{
		{"missing goal", request.CreateContributionRequest{Amount: "1", Date: "2024-01-01"}, "goalId"},
		{"negative goal", request.CreateContributionRequest{GoalID: -1, Amount: "1", Date: "2024-01-01"}, "goalId"},
		{"negative amount", request.CreateContributionRequest{GoalID: 1, Amount: "-1", Date: "2024-01-01"}, "amount"},
		{"zero amount", request.CreateContributionRequest{GoalID: 1, Amount: "0.00", Date: "2024-01-01"}, "amount"},
		{"missing date", request.CreateContributionRequest{GoalID: 1, Amount: "1"}, "date"},
		{"invalid date", request.CreateContributionRequest{GoalID: 1, Amount: "1", Date: "2024-02-30"}, "date"},
		{"garbage date", request.CreateContributionRequest{GoalID: 1, Amount: "1", Date: "yesterday"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.ValidateCreateContribution(tt.req)
			fields := fieldErrors(t, err)
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, 1)
		})
	}
}

// WHY: exponent notation used to reach decimal rescaling, where a short string
// like "1e99999999" cost close to a minute of CPU before being rejected.
func TestValidateAmount_RejectsHugeScalesQuickly(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1e99999999", "targetAmount must be a number"},
		{"1e-99999999", "targetAmount must be a number"},
		{"-1E99999999", "targetAmount must be a number"},
		{strings.Repeat("9", 100000), "targetAmount must not exceed 9999999999999.99"},
		{"-" + strings.Repeat("9", 100000), "targetAmount must be positive"},
		{"0." + strings.Repeat("0", 100000) + "1", "targetAmount must have at most 20 decimal places"},
		{strings.Repeat("0", 100000) + "5", ""},
	}

	for _, tt := range tests {
		name := tt.raw
		if len(name) > 20 {
			name = name[:20] + "..."
		}
		t.Run(name, func(t *testing.T) {
			start := time.Now()
			goal, err := validation.ValidateCreateGoal(request.CreateGoalRequest{
				Name: "x", TargetAmount: request.Amount(tt.raw), Currency: "INR",
			})
			assert.Less(t, time.Since(start), time.Second)

			if tt.want == "" {
				require.NoError(t, err)
				assert.Equal(t, "5.00", goal.TargetAmount.StringFixed(2))
				return
			}
			assert.Equal(t, tt.want, fieldErrors(t, err)["targetAmount"])
		})
	}

	_, _, _, err := validation.ValidateConvert(request.ConvertRequest{Amount: "1e99999999", From: "USD", To: "INR"})
	assert.Equal(t, "amount must be a number", fieldErrors(t, err)["amount"])
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T23:30:00-05:00", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := validation.ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := validation.ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestValidateGoalID(t *testing.T) {
	id, err := validation.ValidateGoalID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5", "99999999999999999999"} {
		_, err := validation.ValidateGoalID(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidGoalID, raw)
	}
}

func TestValidateConvert(t *testing.T) {
	amount, from, to, err := validation.ValidateConvert(request.ConvertRequest{Amount: "100", From: "USD", To: "INR"})
	require.NoError(t, err)
	assert.Equal(t, "100.00", amount.StringFixed(2))
	assert.Equal(t, currency.USD, from)
	assert.Equal(t, currency.INR, to)

	_, _, _, err = validation.ValidateConvert(request.ConvertRequest{Amount: "x", From: "GBP", To: ""})
	fields := fieldErrors(t, err)
	assert.Len(t, fields, 3)
}
