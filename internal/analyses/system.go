package analyses

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/internal/extract"
	"github.com/mano7284/PRD2workflow-Backend/internal/gemini"
	"github.com/mano7284/PRD2workflow-Backend/internal/prompts"
	"github.com/mano7284/PRD2workflow-Backend/pkg/formatting"
	"github.com/mano7284/PRD2workflow-Backend/pkg/pagination"
)

// Sampling parameters for analysis prompts. Lower temperature keeps the
// model on the requested JSON schema without flattening its prose output.
var generation = gemini.GenerationConfig{
	Temperature:     0.3,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 2048,
}

// Generator produces model output for a composed prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, gen gemini.GenerationConfig) (string, error)
}

// Store persists and retrieves analysis records. Implementations may be
// unavailable; Insert failures with ErrStoreUnavailable are tolerated by
// the orchestrator, read failures are propagated.
type Store interface {
	Insert(ctx context.Context, record Analysis) error

	List(
		ctx context.Context,
		page pagination.PageRequest,
		owner *uuid.UUID,
	) (*pagination.PageResult[Analysis], error)

	Find(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*Analysis, error)
}

// System defines the public contract for analysis domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error)

	AnalyzeFile(
		ctx context.Context,
		filename string,
		data []byte,
		analysisType string,
		userID *uuid.UUID,
	) (*FileAnalysis, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		owner *uuid.UUID,
	) (*pagination.PageResult[Analysis], error)

	Find(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*Analysis, error)
}

type orchestrator struct {
	generator  Generator
	store      Store
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an analysis orchestrator implementing the System interface.
func New(
	generator Generator,
	store Store,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &orchestrator{
		generator:  generator,
		store:      store,
		logger:     logger.With("system", "analyses"),
		pagination: pagination,
	}
}

func (o *orchestrator) Handler(maxUploadSize int64) *Handler {
	return NewHandler(o, o.logger, o.pagination, maxUploadSize)
}

func (o *orchestrator) Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error) {
	if cmd.Content == "" {
		return nil, ErrEmptyDocument
	}

	prompt := prompts.Compose(prompts.Analysis(cmd.AnalysisType), cmd.Content)

	raw, err := o.generator.Generate(ctx, prompt, generation)
	if err != nil {
		return nil, err
	}

	record := Analysis{
		ID:             uuid.New(),
		Result:         o.decode(raw),
		DocumentLength: len(cmd.Content),
		AnalysisType:   cmd.AnalysisType,
		Timestamp:      time.Now().UTC(),
		UserID:         cmd.UserID,
	}

	o.persist(ctx, record)
	return &record, nil
}

func (o *orchestrator) AnalyzeFile(
	ctx context.Context,
	filename string,
	data []byte,
	analysisType string,
	userID *uuid.UUID,
) (*FileAnalysis, error) {
	extracted, err := extract.FromFile(filename, data)
	if err != nil {
		return nil, err
	}

	analysis, err := o.Analyze(ctx, AnalyzeCommand{
		Content:      extracted.Text,
		AnalysisType: analysisType,
		UserID:       userID,
	})
	if err != nil {
		return nil, err
	}

	return &FileAnalysis{
		Analysis:  *analysis,
		Filename:  filename,
		PageCount: extracted.PageCount,
	}, nil
}

func (o *orchestrator) List(
	ctx context.Context,
	page pagination.PageRequest,
	owner *uuid.UUID,
) (*pagination.PageResult[Analysis], error) {
	page.Normalize(o.pagination)
	return o.store.List(ctx, page, owner)
}

func (o *orchestrator) Find(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*Analysis, error) {
	return o.store.Find(ctx, id, owner)
}

// decode parses model output into a structured result. Responses that
// cannot be decoded as a JSON object degrade to a raw_analysis wrapper
// rather than failing the request.
func (o *orchestrator) decode(raw string) map[string]any {
	result, origin, err := formatting.Decode[map[string]any](raw, formatting.ObjectFragment)
	if err != nil {
		o.logger.Warn("analysis result not decodable, returning raw text")
		return map[string]any{"raw_analysis": raw}
	}

	if origin == formatting.OriginFragment {
		o.logger.Debug("analysis result recovered from response fragment")
	}

	return result
}

func (o *orchestrator) persist(ctx context.Context, record Analysis) {
	err := o.store.Insert(ctx, record)
	if err == nil {
		return
	}

	if errors.Is(err, ErrStoreUnavailable) {
		o.logger.Debug("analysis not persisted, store unavailable", "id", record.ID)
		return
	}

	o.logger.Warn("failed to persist analysis", "id", record.ID, "error", err)
}
