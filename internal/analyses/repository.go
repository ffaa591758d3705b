package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/pkg/pagination"
	"github.com/mano7284/PRD2workflow-Backend/pkg/query"
	"github.com/mano7284/PRD2workflow-Backend/pkg/repository"
)

type store struct {
	db *sql.DB
}

// NewStore creates a PostgreSQL-backed analysis store.
func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) Insert(ctx context.Context, record Analysis) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("encode analysis result: %w", err)
	}

	q := `
		INSERT INTO analyses(id, analysis_result, document_length, analysis_type, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.db.ExecContext(
		ctx, q,
		record.ID,
		result,
		record.DocumentLength,
		record.AnalysisType,
		record.Timestamp,
		record.UserID,
	)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return nil
}

func (s *store) List(
	ctx context.Context,
	page pagination.PageRequest,
	owner *uuid.UUID,
) (*pagination.PageResult[Analysis], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("UserID", owner).
		WhereSearch(page.Search, "AnalysisType")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, s.db, pageSQL, pageArgs, scanAnalysis)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *store) Find(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*Analysis, error) {
	qb := query.
		NewBuilder(projection).
		WhereEquals("ID", id).
		WhereEquals("UserID", owner)

	q, args := qb.BuildSingleOrNull()

	a, err := repository.QueryOne(ctx, s.db, q, args, scanAnalysis)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &a, nil
}
