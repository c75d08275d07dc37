package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/middleware"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/config"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
)

// Services groups the services the router dispatches to.
type Services struct {
	System       *service.SystemService
	Goal         *service.GoalService
	Contribution *service.ContributionService
	ExchangeRate *service.ExchangeRateService
	Dashboard    *service.DashboardService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(custommiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/goals", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(services.Goal)
			r.Get("/", goalHandler.Goals)
			r.Post("/", goalHandler.CreateGoal)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateGoalIDMiddleware)
				r.Get("/", goalHandler.Goal)
				r.Get("/contributions", goalHandler.GoalContributions)
			})
		})

		contributionHandler := handlers.NewContributionHandler(services.Contribution)
		r.Post("/contributions", contributionHandler.CreateContribution)

		dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
		r.Get("/dashboard", dashboardHandler.Dashboard)

		exchangeRateHandler := handlers.NewExchangeRateHandler(services.ExchangeRate)
		r.Get("/exchange-rate", exchangeRateHandler.ExchangeRate)
		r.Get("/convert", exchangeRateHandler.Convert)
	})

	return r
}
