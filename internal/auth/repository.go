package auth

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/pkg/repository"
)

const userColumns = "id, email, name, password_hash, created_at, is_active"

type store struct {
	db *sql.DB
}

// NewStore creates a PostgreSQL-backed user store.
func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) Insert(ctx context.Context, user User) error {
	q := `
		INSERT INTO users(id, email, name, password_hash, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(
		ctx, q,
		user.ID,
		user.Email,
		user.Name,
		user.passwordHash,
		user.CreatedAt,
		user.IsActive,
	)
	return repository.MapError(err, ErrNotFound, ErrDuplicateEmail)
}

func (s *store) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := "SELECT " + userColumns + " FROM users WHERE lower(email) = lower($1)"
	return s.findOne(ctx, q, email)
}

func (s *store) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := "SELECT " + userColumns + " FROM users WHERE id = $1"
	return s.findOne(ctx, q, id)
}

func (s *store) findOne(ctx context.Context, q string, arg any) (*User, error) {
	u, err := repository.QueryOne(ctx, s.db, q, []any{arg}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateEmail)
	}
	return &u, nil
}

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.passwordHash,
		&u.CreatedAt,
		&u.IsActive,
	)
	return u, err
}
