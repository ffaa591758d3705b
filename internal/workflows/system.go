package workflows

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/internal/gemini"
	"github.com/mano7284/PRD2workflow-Backend/internal/graph"
	"github.com/mano7284/PRD2workflow-Backend/internal/prompts"
	"github.com/mano7284/PRD2workflow-Backend/pkg/pagination"
)

// Sampling parameters for workflow prompts. Tighter than the analysis
// settings so the model stays close to the requested node schema.
var generation = gemini.GenerationConfig{
	Temperature:     0.1,
	TopK:            20,
	TopP:            0.8,
	MaxOutputTokens: 2048,
}

// Generator produces model output for a composed prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, gen gemini.GenerationConfig) (string, error)
}

// Store persists and retrieves workflow records. Insert failures with
// ErrStoreUnavailable are tolerated by the orchestrator, read failures
// are propagated.
type Store interface {
	Insert(ctx context.Context, record Workflow) error

	List(
		ctx context.Context,
		page pagination.PageRequest,
		owner *uuid.UUID,
	) (*pagination.PageResult[Workflow], error)

	Find(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*Workflow, error)
}

// System defines the public contract for workflow domain operations.
type System interface {
	Handler() *Handler

	Generate(ctx context.Context, cmd GenerateCommand) (*Workflow, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		owner *uuid.UUID,
	) (*pagination.PageResult[Workflow], error)

	Find(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*Workflow, error)
}

type orchestrator struct {
	generator  Generator
	store      Store
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a workflow orchestrator implementing the System interface.
func New(
	generator Generator,
	store Store,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &orchestrator{
		generator:  generator,
		store:      store,
		logger:     logger.With("system", "workflows"),
		pagination: pagination,
	}
}

func (o *orchestrator) Handler() *Handler {
	return NewHandler(o, o.logger, o.pagination)
}

// Generate builds the workflow graph for a document. Model call failures
// propagate to the caller; an unusable response body degrades to the
// deterministic fallback graph keyed off the document content.
func (o *orchestrator) Generate(ctx context.Context, cmd GenerateCommand) (*Workflow, error) {
	if cmd.Content == "" {
		return nil, ErrEmptyDocument
	}

	prompt := prompts.Compose(prompts.Workflow(cmd.Flow), cmd.Content)

	raw, err := o.generator.Generate(ctx, prompt, generation)
	if err != nil {
		return nil, err
	}

	nodes, err := graph.Normalize(raw)
	if err != nil {
		o.logger.Warn("workflow response unusable, synthesizing fallback", "flow", cmd.Flow)
		nodes = graph.Synthesize(cmd.Content, cmd.Flow)
	}

	for _, issue := range graph.Validate(nodes) {
		o.logger.Warn("workflow graph inconsistency", "issue", issue.String())
	}

	record := Workflow{
		ID:             uuid.New(),
		Nodes:          nodes,
		WorkflowType:   cmd.Flow,
		DocumentLength: len(cmd.Content),
		Timestamp:      time.Now().UTC(),
		UserID:         cmd.UserID,
	}

	o.persist(ctx, record)
	return &record, nil
}

func (o *orchestrator) List(
	ctx context.Context,
	page pagination.PageRequest,
	owner *uuid.UUID,
) (*pagination.PageResult[Workflow], error) {
	page.Normalize(o.pagination)
	return o.store.List(ctx, page, owner)
}

func (o *orchestrator) Find(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*Workflow, error) {
	return o.store.Find(ctx, id, owner)
}

func (o *orchestrator) persist(ctx context.Context, record Workflow) {
	err := o.store.Insert(ctx, record)
	if err == nil {
		return
	}

	if errors.Is(err, ErrStoreUnavailable) {
		o.logger.Debug("workflow not persisted, store unavailable", "id", record.ID)
		return
	}

	o.logger.Warn("failed to persist workflow", "id", record.ID, "error", err)
}
