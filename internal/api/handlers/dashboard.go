package handlers

import (
	"net/http"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
)

// DashboardHandler handles the aggregate dashboard endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard handles GET requests for the INR summary across all goals.
// A fresh exchange rate is fetched on every call.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with DashboardResponse
// Error: 500 Internal Server Error if the goals or the exchange rate cannot be loaded
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.RespondInternalError(w, r, http.StatusInternalServerError,
			apperrors.ErrFailedToGetDashboard.Error(), detailOrNil(rateErrorDetail(err)), err)
		return
	}

	result, err := newDashboardResponse(dashboard)
	if err != nil {
		response.RespondInternalError(w, r, http.StatusInternalServerError, apperrors.ErrFailedToGetDashboard.Error(), nil, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
