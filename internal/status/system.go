package status

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Store persists and retrieves status checks. Unlike the analysis and
// workflow stores, a status check exists only as a stored record, so an
// unavailable store fails the create as well.
type Store interface {
	Insert(ctx context.Context, check Check) error
	List(ctx context.Context) ([]Check, error)
}

// System defines the public contract for status check operations.
type System interface {
	Handler() *Handler

	Create(ctx context.Context, cmd CreateCommand) (*Check, error)
	List(ctx context.Context) ([]Check, error)
}

type system struct {
	store  Store
	logger *slog.Logger
}

// New creates a status check system backed by the given store.
func New(store Store, logger *slog.Logger) System {
	return &system{
		store:  store,
		logger: logger.With("system", "status"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Create(ctx context.Context, cmd CreateCommand) (*Check, error) {
	if cmd.ClientName == "" {
		return nil, ErrInvalidRequest
	}

	check := Check{
		ID:         uuid.New(),
		ClientName: cmd.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, check); err != nil {
		return nil, err
	}

	return &check, nil
}

func (s *system) List(ctx context.Context) ([]Check, error) {
	return s.store.List(ctx)
}
