package auth

import (
	"context"

	"github.com/google/uuid"
)

type unavailable struct{}

// NewUnavailableStore creates a Store stub used when the database is
// disabled. Registration, login, and identity lookup all report
// ErrStoreUnavailable; token verification still works, so requests with
// a valid token proceed with an id-only identity.
func NewUnavailableStore() Store {
	return unavailable{}
}

func (unavailable) Insert(context.Context, User) error {
	return ErrStoreUnavailable
}

func (unavailable) FindByEmail(context.Context, string) (*User, error) {
	return nil, ErrStoreUnavailable
}

func (unavailable) FindByID(context.Context, uuid.UUID) (*User, error) {
	return nil, ErrStoreUnavailable
}
