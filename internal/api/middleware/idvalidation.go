// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/validation"
)

// ValidateGoalIDMiddleware validates that the id URL parameter is a positive integer.
// Returns 400 Bad Request if the goal ID is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateGoalIDMiddleware)
//	    r.Get("/", handler.GetGoal)
//	})
func ValidateGoalIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "goal ID is required", nil)
			return
		}

		if _, err := validation.ValidateGoalID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid goal ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
