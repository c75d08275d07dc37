package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/handlers"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/testutil"
)

func setupGoalHandler(t *testing.T) (*handlers.GoalHandler, *repository.MemoryStore) {
	t.Helper()

	store := testutil.NewTestMemoryStore(t)
	return handlers.NewGoalHandler(testutil.NewTestGoalService(t, store)), store
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var resp response.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp), w.Body.String())
	return resp
}

// TestGoalHandler_Goals tests the GET /api/goals endpoint.
//
// WHY: This is the primary listing endpoint. The frontend renders goal cards
// straight from these fields, including the preformatted display block.
func TestGoalHandler_Goals(t *testing.T) {
	t.Run("returns 200 with empty array", func(t *testing.T) {
		handler, _ := setupGoalHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
		w := httptest.NewRecorder()

		handler.Goals(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns goals with progress and display values", func(t *testing.T) {
		handler, store := setupGoalHandler(t)
		g := testutil.CreateGoalWithContributions(t, store, "1000.00", currency.INR, "500.00", "200.00")
		testutil.CreateGoal(t, store, "2500.00", currency.USD)

		req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
		w := httptest.NewRecorder()

		handler.Goals(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []handlers.GoalResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp, 2)

		first := resp[0]
		assert.Equal(t, g.ID, first.ID)
		assert.Equal(t, g.Name, first.Name)
		assert.Equal(t, "1000.00", first.TargetAmount)
		assert.Equal(t, "INR", first.Currency)
		assert.Equal(t, "700.00", first.TotalSaved)
		assert.Equal(t, 70.0, first.ProgressPercentage)
		assert.Equal(t, "300.00", first.Remaining)
		assert.Len(t, first.Contributions, 2)
		assert.Equal(t, "500.00", first.Contributions[0].Amount)
		assert.Equal(t, "2024-01-01", first.Contributions[0].Date)
		assert.Equal(t, handlers.GoalDisplay{
			TargetAmount:       "₹1,000",
			TotalSaved:         "₹700",
			Remaining:          "₹300",
			ProgressPercentage: "70.0%",
		}, first.Display)

		second := resp[1]
		assert.Equal(t, "USD", second.Currency)
		assert.NotNil(t, second.Contributions)
		assert.Equal(t, "$2,500", second.Display.TargetAmount)
		assert.Equal(t, "0.0%", second.Display.ProgressPercentage)
	})
}

func TestGoalHandler_Goal(t *testing.T) {
	t.Run("returns goal by ID", func(t *testing.T) {
		handler, store := setupGoalHandler(t)
		g := testutil.CreateGoalWithContributions(t, store, "100.00", currency.USD, "150.00")

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/goals/1", map[string]string{"id": "1"})
		w := httptest.NewRecorder()

		handler.Goal(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp handlers.GoalResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, g.ID, resp.ID)
		assert.Equal(t, 100.0, resp.ProgressPercentage)
		assert.Equal(t, "0.00", resp.Remaining)
	})

	t.Run("returns 404 for unknown goal", func(t *testing.T) {
		handler, _ := setupGoalHandler(t)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/goals/7", map[string]string{"id": "7"})
		w := httptest.NewRecorder()

		handler.Goal(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "goal not found", decodeError(t, w).Error)
	})

	t.Run("returns 400 for invalid ID", func(t *testing.T) {
		handler, _ := setupGoalHandler(t)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/goals/abc", map[string]string{"id": "abc"})
		w := httptest.NewRecorder()

		handler.Goal(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGoalHandler_GoalContributions(t *testing.T) {
	t.Run("returns contributions ordered by ID", func(t *testing.T) {
		handler, store := setupGoalHandler(t)
		g := testutil.CreateGoal(t, store, "1000.00", currency.INR)
		testutil.NewContribution(g.ID).WithAmount("1.00").WithDate("2024-05-02").Build(t, store)
		testutil.NewContribution(g.ID).WithAmount("2.00").WithDate("2024-05-01").Build(t, store)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/goals/1/contributions", map[string]string{"id": "1"})
		w := httptest.NewRecorder()

		handler.GoalContributions(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []handlers.ContributionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Less(t, resp[0].ID, resp[1].ID)
		assert.Equal(t, "1.00", resp[0].Amount)
		assert.Equal(t, g.ID, resp[1].GoalID)
	})

	t.Run("returns empty array for goal without contributions", func(t *testing.T) {
		handler, store := setupGoalHandler(t)
		testutil.CreateGoal(t, store, "1000.00", currency.INR)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/goals/1/contributions", map[string]string{"id": "1"})
		w := httptest.NewRecorder()

		handler.GoalContributions(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns 404 for unknown goal", func(t *testing.T) {
		handler, _ := setupGoalHandler(t)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/goals/3/contributions", map[string]string{"id": "3"})
		w := httptest.NewRecorder()

		handler.GoalContributions(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestGoalHandler_CreateGoal tests the POST /api/goals endpoint.
//
// WHY: Invalid targets must be rejected with a field error and must never
// reach the store, otherwise progress math would divide by a non-positive target.
func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("creates goal from string amount", func(t *testing.T) {
		handler, store := setupGoalHandler(t)

		req := newJSONRequest(http.MethodPost, "/api/goals", `{"name":"Emergency Fund","targetAmount":"5000","currency":"INR"}`)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp handlers.GoalResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Positive(t, resp.ID)
		assert.Equal(t, "Emergency Fund", resp.Name)
		assert.Equal(t, "5000.00", resp.TargetAmount)
		assert.Equal(t, "0.00", resp.TotalSaved)
		assert.Equal(t, "5000.00", resp.Remaining)
		assert.Empty(t, resp.Contributions)

		goals, err := store.ListGoals(req.Context())
		require.NoError(t, err)
		assert.Len(t, goals, 1)
	})

	t.Run("creates goal from number amount", func(t *testing.T) {
		handler, _ := setupGoalHandler(t)

		req := newJSONRequest(http.MethodPost, "/api/goals", `{"name":"Trip","targetAmount":1234.567,"currency":"USD"}`)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp handlers.GoalResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "1234.57", resp.TargetAmount)
		assert.Equal(t, "$1,235", resp.Display.TargetAmount)
	})

	t.Run("rejects negative target without storing", func(t *testing.T) {
		handler, store := setupGoalHandler(t)

		req := newJSONRequest(http.MethodPost, "/api/goals", `{"name":"Car","targetAmount":"-5","currency":"INR"}`)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, "validation failed", resp.Error)
		details, ok := resp.Details.(map[string]any)
		require.True(t, ok, "details should be a field map, got %T", resp.Details)
		assert.Contains(t, details, "targetAmount")

		goals, err := store.ListGoals(req.Context())
		require.NoError(t, err)
		assert.Empty(t, goals)
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		handler, _ := setupGoalHandler(t)

		req := newJSONRequest(http.MethodPost, "/api/goals", `{"name":"Car","targetAmount":"5","currency":"usd"}`)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		details, _ := decodeError(t, w).Details.(map[string]any)
		assert.Contains(t, details, "currency")
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		handler, _ := setupGoalHandler(t)

		for _, body := range []string{``, `{`, `{} {}`, `[1]`} {
			req := newJSONRequest(http.MethodPost, "/api/goals", body)
			w := httptest.NewRecorder()

			handler.CreateGoal(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, "invalid request body", decodeError(t, w).Error, body)
		}
	})

	t.Run("wrong JSON types are field errors", func(t *testing.T) {
		handler, store := setupGoalHandler(t)

		tests := []struct {
			body  string
			field string
			want  string
		}{
			{`{"name":"x","targetAmount":true,"currency":"INR"}`, "targetAmount", "targetAmount must be a number"},
			{`{"name":"x","targetAmount":{"v":1},"currency":"INR"}`, "targetAmount", "targetAmount must be a number"},
			{`{"name":7,"targetAmount":"10","currency":"INR"}`, "name", "name must be a string"},
			{`{"name":"x","targetAmount":"10","currency":["INR"]}`, "currency", "currency must be a string"},
		}

		for _, tt := range tests {
			req := newJSONRequest(http.MethodPost, "/api/goals", tt.body)
			w := httptest.NewRecorder()

			handler.CreateGoal(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code, tt.body)
			resp := decodeError(t, w)
			assert.Equal(t, "validation failed", resp.Error, tt.body)
			details, ok := resp.Details.(map[string]any)
			require.True(t, ok, tt.body)
			assert.Equal(t, tt.want, details[tt.field], tt.body)
		}

		goals, err := store.ListGoals(context.Background())
		require.NoError(t, err)
		assert.Empty(t, goals)
	})
}
