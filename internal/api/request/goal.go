package request

// CreateGoalRequest is the body of POST /api/goals.
type CreateGoalRequest struct {
	Name         string `json:"name"`
	TargetAmount Amount `json:"targetAmount"`
	Currency     string `json:"currency"`
}
