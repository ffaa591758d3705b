package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const tokenType = "bearer"

// Store persists and retrieves user accounts.
type Store interface {
	Insert(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// System defines the public contract for auth domain operations.
type System interface {
	Handler() *Handler
	Middleware() func(http.Handler) http.Handler

	Register(ctx context.Context, cmd RegisterCommand) (*Token, error)
	Login(ctx context.Context, creds Credentials) (*Token, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*User, error)
}

type system struct {
	store  Store
	tokens *Tokens
	logger *slog.Logger
}

// New creates an auth system backed by the given store and token signer.
func New(store Store, tokens *Tokens, logger *slog.Logger) System {
	return &system{
		store:  store,
		tokens: tokens,
		logger: logger.With("system", "auth"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Middleware() func(http.Handler) http.Handler {
	return Optional(s.tokens)
}

func (s *system) Register(ctx context.Context, cmd RegisterCommand) (*Token, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, ErrInvalidRequest
	}

	if existing, err := s.store.FindByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	} else if err != nil && !isNotFound(err) {
		return nil, err
	}

	hash, err := hashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        cmd.Email,
		Name:         cmd.Name,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
		passwordHash: hash,
	}

	if err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "id", user.ID)
	return s.issueToken(user)
}

func (s *system) Login(ctx context.Context, creds Credentials) (*Token, error) {
	user, err := s.store.FindByEmail(ctx, creds.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(creds.Password, user.passwordHash) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "id", user.ID)
	return s.issueToken(*user)
}

func (s *system) CurrentUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.store.FindByID(ctx, id)
}

func (s *system) issueToken(user User) (*Token, error) {
	signed, err := s.tokens.Sign(user.ID)
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: signed,
		TokenType:   tokenType,
		User:        user,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
