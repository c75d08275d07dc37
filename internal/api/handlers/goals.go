package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/validation"
)

// GoalHandler handles HTTP requests for goal endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the goalService.
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler with the provided service dependency.
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Goals handles GET requests to retrieve all goals with contributions and progress.
//
// Endpoint: GET /api/goals
// Response: 200 OK with array of GoalResponse (empty array when there are none)
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.ListGoals(r.Context())
	if err != nil {
		response.RespondInternalError(w, r, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), nil, err)
		return
	}

	result := make([]GoalResponse, len(goals))
	for i, g := range goals {
		result[i] = newGoalResponse(g)
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Goal handles GET requests to retrieve a single goal.
//
// Endpoint: GET /api/goals/{id}
// Response: 200 OK with GoalResponse
// Error: 400 Bad Request if the ID is not a positive integer
// Error: 404 Not Found if the goal does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) Goal(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ValidateGoalID(chi.URLParam(r, "id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid goal ID", err.Error())
		return
	}

	goal, err := h.goalService.GetGoal(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), nil)
			return
		}
		response.RespondInternalError(w, r, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoal.Error(), nil, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, newGoalResponse(goal))
}

// GoalContributions handles GET requests to retrieve the contributions of one goal.
//
// Endpoint: GET /api/goals/{id}/contributions
// Response: 200 OK with array of ContributionResponse ordered by ID
// Error: 400 Bad Request if the ID is not a positive integer
// Error: 404 Not Found if the goal does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) GoalContributions(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ValidateGoalID(chi.URLParam(r, "id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid goal ID", err.Error())
		return
	}

	contributions, err := h.goalService.ListContributions(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), nil)
			return
		}
		response.RespondInternalError(w, r, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveContributions.Error(), nil, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, newContributionResponses(contributions))
}

// CreateGoal handles POST requests to create a new goal.
// Invalid input is rejected before anything is stored.
//
// Endpoint: POST /api/goals
// Request Body: CreateGoalRequest (name, targetAmount, currency)
// Response: 201 Created with GoalResponse
// Error: 400 Bad Request if the body is malformed or validation fails (details: field map)
// Error: 500 Internal Server Error if creation fails
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoalRequest](r)
	if err != nil {
		respondBodyError(w, err)
		return
	}

	newGoal, err := validation.ValidateCreateGoal(req)
	if err != nil {
		response.RespondValidationError(w, err)
		return
	}

	goal, err := h.goalService.CreateGoal(r.Context(), newGoal)
	if err != nil {
		response.RespondInternalError(w, r, http.StatusInternalServerError, apperrors.ErrFailedToCreateGoal.Error(), nil, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, newGoalResponse(goal))
}
