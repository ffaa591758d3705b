package status_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mano7284/PRD2workflow-Backend/internal/status"
	"github.com/mano7284/PRD2workflow-Backend/pkg/routes"
)

type memoryStore struct {
	checks []status.Check
}

func (m *memoryStore) Insert(_ context.Context, check status.Check) error {
	m.checks = append(m.checks, check)
	return nil
}

func (m *memoryStore) List(context.Context) ([]status.Check, error) {
	return m.checks, nil
}

func newSystem(store status.Store) status.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return status.New(store, logger)
}

func TestCreateAndList(t *testing.T) {
	store := &memoryStore{}
	sys := newSystem(store)

	check, err := sys.Create(context.Background(), status.CreateCommand{ClientName: "web"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if check.ClientName != "web" {
		t.Errorf("client name = %s", check.ClientName)
	}

	checks, err := sys.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(checks) != 1 {
		t.Errorf("checks = %d, want 1", len(checks))
	}
}

func TestCreateMissingClientName(t *testing.T) {
	sys := newSystem(&memoryStore{})

	_, err := sys.Create(context.Background(), status.CreateCommand{})
	if !errors.Is(err, status.ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestUnavailableStoreSurfaces503(t *testing.T) {
	sys := newSystem(status.NewUnavailableStore())
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	post := httptest.NewRequest("POST", "/status", strings.NewReader(`{"client_name": "web"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, post)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("POST status = %d, want 503", rec.Code)
	}

	get := httptest.NewRequest("GET", "/status", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, get)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("GET status = %d, want 503", rec.Code)
	}
}
