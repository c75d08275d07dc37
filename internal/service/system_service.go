package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/database"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	store   repository.Store
	db      *sql.DB // nil for the memory backend
	backend string
}

// NewSystemService creates a new SystemService.
// db may be nil when the store is not database backed.
func NewSystemService(store repository.Store, db *sql.DB, backend string) *SystemService {
	return &SystemService{
		store:   store,
		db:      db,
		backend: backend,
	}
}

// CheckHealth checks the health of the store
func (s *SystemService) CheckHealth(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// CheckVersion reports the application version, store backend and, for
// SQLite, the applied migration version.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	info := model.VersionInfo{
		AppVersion:   version.Version,
		StoreBackend: s.backend,
	}

	if s.db != nil {
		schemaVersion, err := database.SchemaVersion(s.db)
		if err != nil {
			return model.VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersionInfo, err)
		}
		info.SchemaVersion = schemaVersion
	}

	return info, nil
}
