package status

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mano7284/PRD2workflow-Backend/pkg/repository"
)

type store struct {
	db *sql.DB
}

// NewStore creates a PostgreSQL-backed status check store.
func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) Insert(ctx context.Context, check Check) error {
	q := "INSERT INTO status_checks(id, client_name, created_at) VALUES ($1, $2, $3)"

	if _, err := s.db.ExecContext(ctx, q, check.ID, check.ClientName, check.Timestamp); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (s *store) List(ctx context.Context) ([]Check, error) {
	q := "SELECT id, client_name, created_at FROM status_checks ORDER BY created_at DESC"

	checks, err := repository.QueryMany(ctx, s.db, q, nil, scanCheck)
	if err != nil {
		return nil, fmt.Errorf("query status checks: %w", err)
	}
	return checks, nil
}

func scanCheck(s repository.Scanner) (Check, error) {
	var c Check
	err := s.Scan(&c.ID, &c.ClientName, &c.Timestamp)
	return c, err
}

type unavailable struct{}

// NewUnavailableStore creates a Store stub used when the database is disabled.
func NewUnavailableStore() Store {
	return unavailable{}
}

func (unavailable) Insert(context.Context, Check) error {
	return ErrStoreUnavailable
}

func (unavailable) List(context.Context) ([]Check, error) {
	return nil, ErrStoreUnavailable
}
