package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// WithUserID returns a context carrying the authenticated user's id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// UserID returns the authenticated user's id from the context, or nil
// when the request carried no valid token.
func UserID(ctx context.Context) *uuid.UUID {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
