package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/config"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/database"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/exchangerate"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Savings Goal Tracker %s", version.Version)

	// Open the goal store
	var store repository.Store
	var db *sql.DB

	switch cfg.Store.Backend {
	case config.StoreSQLite:
		db, err = database.Open(cfg.Store.Path)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		store = repository.NewSQLiteStore(db)
		log.Printf("Connected to database: %s", cfg.Store.Path)
	default:
		store = repository.NewMemoryStore()
		log.Printf("Using in-memory store, data is lost on restart")
	}

	if cfg.ExchangeRate.APIKey == "" {
		log.Printf("EXCHANGE_RATE_API_KEY is not set, dashboard and exchange rate requests will fail")
	}
	rateClient := exchangerate.NewAPIClient(cfg.ExchangeRate)

	// Create services
	goalService := service.NewGoalService(store)
	services := api.Services{
		System:       service.NewSystemService(store, db, cfg.Store.Backend),
		Goal:         goalService,
		Contribution: service.NewContributionService(store),
		ExchangeRate: service.NewExchangeRateService(rateClient),
		Dashboard:    service.NewDashboardService(goalService, rateClient),
	}

	// Create router
	router := api.NewRouter(services, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return
	}

	log.Println("Server exited")
}
