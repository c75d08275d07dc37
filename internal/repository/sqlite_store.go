package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// Column formats. Contribution dates are calendar days; created_at holds the
// full UTC instant.
const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339Nano
)

// SQLiteStore provides data access methods for the goal and contribution tables.
// Identifiers come from AUTOINCREMENT primary keys, which SQLite never reuses.
// Amounts are stored as fixed two-decimal TEXT so no float conversion happens.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore with the provided database connection.
// The schema must already be migrated (see database.Open).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// CreateGoal inserts a goal and returns it with the database-assigned ID.
func (s *SQLiteStore) CreateGoal(ctx context.Context, g model.NewGoal) (model.Goal, error) {
	createdAt := s.now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO goal (name, target_amount, currency, created_at) VALUES (?, ?, ?, ?)`,
		g.Name,
		currency.FixedString(g.TargetAmount),
		string(g.Currency),
		createdAt.Format(timestampLayout),
	)
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to insert goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to read goal id: %w", err)
	}

	return model.Goal{
		ID:           id,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Currency:     g.Currency,
		CreatedAt:    createdAt,
	}, nil
}

// ListGoals retrieves all goals ordered by ID.
// Returns an empty slice if no goals exist.
func (s *SQLiteStore) ListGoals(ctx context.Context) ([]model.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, target_amount, currency, created_at
		FROM goal
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// GetGoal retrieves a single goal by ID.
// Returns apperrors.ErrGoalNotFound if no row matches.
func (s *SQLiteStore) GetGoal(ctx context.Context, id int64) (model.Goal, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, target_amount, currency, created_at
		FROM goal
		WHERE id = ?
	`, id)

	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, fmt.Errorf("%w: id %d", apperrors.ErrGoalNotFound, id)
	}
	return g, err
}

// CreateContribution inserts a contribution inside a transaction that first
// checks the goal exists.
func (s *SQLiteStore) CreateContribution(ctx context.Context, c model.NewContribution) (model.Contribution, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Contribution{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after Commit is a no-op

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM goal WHERE id = ?`, c.GoalID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Contribution{}, fmt.Errorf("%w: id %d", apperrors.ErrGoalNotFound, c.GoalID)
	}
	if err != nil {
		return model.Contribution{}, fmt.Errorf("failed to look up goal: %w", err)
	}

	createdAt := s.now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO contribution (goal_id, amount, date, created_at) VALUES (?, ?, ?, ?)`,
		c.GoalID,
		currency.FixedString(c.Amount),
		c.Date.Format(dateLayout),
		createdAt.Format(timestampLayout),
	)
	if err != nil {
		return model.Contribution{}, fmt.Errorf("failed to insert contribution: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Contribution{}, fmt.Errorf("failed to read contribution id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Contribution{}, fmt.Errorf("failed to commit contribution: %w", err)
	}

	return model.Contribution{
		ID:        id,
		GoalID:    c.GoalID,
		Amount:    c.Amount,
		Date:      c.Date,
		CreatedAt: createdAt,
	}, nil
}

// ListContributionsByGoal retrieves a goal's contributions ordered by ID.
func (s *SQLiteStore) ListContributionsByGoal(ctx context.Context, goalID int64) ([]model.Contribution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, goal_id, amount, date, created_at
		FROM contribution
		WHERE goal_id = ?
		ORDER BY id ASC
	`, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contribution table: %w", err)
	}
	defer rows.Close()

	contributions := []model.Contribution{}
	for rows.Next() {
		var c model.Contribution
		var amountStr, dateStr, createdAtStr string

		if err := rows.Scan(&c.ID, &c.GoalID, &amountStr, &dateStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan contribution table results: %w", err)
		}

		if c.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("%w: contribution %d amount %q", apperrors.ErrDataInconsistency, c.ID, amountStr)
		}
		if c.Date, err = parseColumnTime(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("%w: contribution %d: %w", apperrors.ErrDataInconsistency, c.ID, err)
		}
		if c.CreatedAt, err = parseColumnTime(timestampLayout, createdAtStr); err != nil {
			return nil, fmt.Errorf("%w: contribution %d: %w", apperrors.ErrDataInconsistency, c.ID, err)
		}

		contributions = append(contributions, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contribution table: %w", err)
	}

	return contributions, nil
}

// Ping checks database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (model.Goal, error) {
	var g model.Goal
	var targetStr, currencyStr, createdAtStr string

	if err := row.Scan(&g.ID, &g.Name, &targetStr, &currencyStr, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Goal{}, err
		}
		return model.Goal{}, fmt.Errorf("failed to scan goal table results: %w", err)
	}

	var err error
	if g.TargetAmount, err = decimal.NewFromString(targetStr); err != nil {
		return model.Goal{}, fmt.Errorf("%w: goal %d target %q", apperrors.ErrDataInconsistency, g.ID, targetStr)
	}
	if g.Currency, err = currency.Parse(currencyStr); err != nil {
		return model.Goal{}, fmt.Errorf("%w: goal %d: %w", apperrors.ErrDataInconsistency, g.ID, err)
	}
	if g.CreatedAt, err = parseColumnTime(timestampLayout, createdAtStr); err != nil {
		return model.Goal{}, fmt.Errorf("%w: goal %d: %w", apperrors.ErrDataInconsistency, g.ID, err)
	}

	return g, nil
}

// parseColumnTime reads a stored date or timestamp in the given layout and
// returns it in UTC. A value in any other shape means the row was not written
// by this store.
func parseColumnTime(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected time value %q: %w", value, err)
	}
	return t.UTC(), nil
}
