package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/validation"
)

// ContributionHandler handles HTTP requests for contribution endpoints.
type ContributionHandler struct {
	contributionService *service.ContributionService
}

// NewContributionHandler creates a new ContributionHandler with the provided service dependency.
func NewContributionHandler(contributionService *service.ContributionService) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
	}
}

// CreateContribution handles POST requests to record a contribution toward a goal.
//
// Endpoint: POST /api/contributions
// Request Body: CreateContributionRequest (goalId, amount, date)
// Response: 201 Created with ContributionResponse
// Error: 400 Bad Request if the body is malformed, validation fails or the goal
// does not exist (details: field map, an unknown goal is reported on goalId)
// Error: 500 Internal Server Error if creation fails
func (h *ContributionHandler) CreateContribution(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateContributionRequest](r)
	if err != nil {
		respondBodyError(w, err)
		return
	}

	newContribution, err := validation.ValidateCreateContribution(req)
	if err != nil {
		response.RespondValidationError(w, err)
		return
	}

	contribution, err := h.contributionService.CreateContribution(r.Context(), newContribution)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondValidationError(w, &validation.Error{
				Fields: map[string]string{"goalId": apperrors.ErrGoalNotFound.Error()},
			})
			return
		}
		response.RespondInternalError(w, r, http.StatusInternalServerError, apperrors.ErrFailedToCreateContribution.Error(), nil, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, newContributionResponse(contribution))
}
