package workflows

import (
	"context"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/pkg/pagination"
)

type unavailable struct{}

// NewUnavailableStore creates a Store stub used when the database is
// disabled. Every operation reports ErrStoreUnavailable; the orchestrator
// tolerates this on writes and surfaces it on reads.
func NewUnavailableStore() Store {
	return unavailable{}
}

func (unavailable) Insert(context.Context, Workflow) error {
	return ErrStoreUnavailable
}

func (unavailable) List(
	context.Context,
	pagination.PageRequest,
	*uuid.UUID,
) (*pagination.PageResult[Workflow], error) {
	return nil, ErrStoreUnavailable
}

func (unavailable) Find(context.Context, uuid.UUID, *uuid.UUID) (*Workflow, error) {
	return nil, ErrStoreUnavailable
}
