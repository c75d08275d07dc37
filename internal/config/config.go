package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	CORS         CORSConfig
	ExchangeRate ExchangeRateConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// StoreConfig selects and configures the goal store backend
type StoreConfig struct {
	Backend string
	Path    string // SQLite database file, only used by the sqlite backend
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ExchangeRateConfig configures the live USD→INR rate provider.
// An empty APIKey is not a load error: every rate fetch fails instead.
type ExchangeRateConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("EXCHANGE_RATE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXCHANGE_RATE_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid EXCHANGE_RATE_TIMEOUT: must be positive, got %s", timeout)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
			Path:    getEnv("DB_PATH", "./data/savings_goals.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		ExchangeRate: ExchangeRateConfig{
			APIKey:  os.Getenv("EXCHANGE_RATE_API_KEY"),
			BaseURL: strings.TrimRight(getEnv("EXCHANGE_RATE_BASE_URL", "https://v6.exchangerate-api.com"), "/"),
			Timeout: timeout,
		},
	}

	switch config.Store.Backend {
	case StoreMemory, StoreSQLite:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be %q or %q", config.Store.Backend, StoreMemory, StoreSQLite)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
