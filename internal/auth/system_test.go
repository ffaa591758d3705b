package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/internal/auth"
)

type memoryStore struct {
	byEmail map[string]auth.User
	byID    map[uuid.UUID]auth.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		byEmail: make(map[string]auth.User),
		byID:    make(map[uuid.UUID]auth.User),
	}
}

func (m *memoryStore) Insert(_ context.Context, user auth.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return auth.ErrDuplicateEmail
	}
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
	return nil
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return &user, nil
}

func (m *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*auth.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return &user, nil
}

func newSystem(store auth.Store) auth.System {
	tokens := auth.NewTokens(&auth.Config{Secret: "test-secret", TokenTTL: "1h"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.New(store, tokens, logger)
}

func TestRegisterAndLogin(t *testing.T) {
	sys := newSystem(newMemoryStore())

	token, err := sys.Register(context.Background(), auth.RegisterCommand{
		Email:    "dana@example.com",
		Password: "hunter2-but-longer",
		Name:     "Dana",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if token.AccessToken == "" {
		t.Error("expected non-empty access token")
	}
	if token.TokenType != "bearer" {
		t.Errorf("token type = %s", token.TokenType)
	}
	if !token.User.IsActive {
		t.Error("expected new user to be active")
	}

	login, err := sys.Login(context.Background(), auth.Credentials{
		Email:    "dana@example.com",
		Password: "hunter2-but-longer",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != token.User.ID {
		t.Errorf("login user id = %s, want %s", login.User.ID, token.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	sys := newSystem(newMemoryStore())
	cmd := auth.RegisterCommand{Email: "dup@example.com", Password: "pw12345678"}

	if _, err := sys.Register(context.Background(), cmd); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := sys.Register(context.Background(), cmd)
	if !errors.Is(err, auth.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	sys := newSystem(newMemoryStore())

	_, err := sys.Register(context.Background(), auth.RegisterCommand{Email: "a@b.c"})
	if !errors.Is(err, auth.ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	sys := newSystem(newMemoryStore())

	if _, err := sys.Register(context.Background(), auth.RegisterCommand{
		Email:    "eve@example.com",
		Password: "correct-password",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := sys.Login(context.Background(), auth.Credentials{
		Email:    "eve@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	sys := newSystem(newMemoryStore())

	_, err := sys.Login(context.Background(), auth.Credentials{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUnavailableStore(t *testing.T) {
	sys := newSystem(auth.NewUnavailableStore())

	_, err := sys.Register(context.Background(), auth.RegisterCommand{
		Email:    "a@example.com",
		Password: "pw12345678",
	})
	if !errors.Is(err, auth.ErrStoreUnavailable) {
		t.Errorf("register err = %v, want ErrStoreUnavailable", err)
	}

	_, err = sys.Login(context.Background(), auth.Credentials{Email: "a@example.com", Password: "pw"})
	if !errors.Is(err, auth.ErrStoreUnavailable) {
		t.Errorf("login err = %v, want ErrStoreUnavailable", err)
	}
}

func TestOptionalMiddleware(t *testing.T) {
	tokens := auth.NewTokens(&auth.Config{Secret: "test-secret", TokenTTL: "1h"})
	userID := uuid.New()

	signed, err := tokens.Sign(userID)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	var captured *uuid.UUID
	handler := auth.Optional(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = auth.UserID(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		want   *uuid.UUID
	}{
		{"valid token", "Bearer " + signed, &userID},
		{"no header", "", nil},
		{"malformed header", "Token abc", nil},
		{"invalid token", "Bearer garbage", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = nil
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.want == nil {
				if captured != nil {
					t.Errorf("expected anonymous request, got user %s", captured)
				}
				return
			}

			if captured == nil || *captured != *tt.want {
				t.Errorf("captured = %v, want %s", captured, tt.want)
			}
		})
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{auth.ErrNotFound, http.StatusNotFound},
		{auth.ErrDuplicateEmail, http.StatusBadRequest},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrTokenExpired, http.StatusUnauthorized},
		{auth.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := auth.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
