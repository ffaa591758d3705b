// Package auth implements the account and token domain: registration,
// credential verification, HS256 access tokens, and the middleware that
// resolves an optional bearer token into a request identity.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves
// the package.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`

	passwordHash string
}

// Token is the response body for successful registration and login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// RegisterCommand carries the inputs for account creation.
type RegisterCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Credentials carries the inputs for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
