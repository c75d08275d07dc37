package request

// CreateContributionRequest is the body of POST /api/contributions.
type CreateContributionRequest struct {
	GoalID int64  `json:"goalId"`
	Amount Amount `json:"amount"`
	Date   string `json:"date"`
}
