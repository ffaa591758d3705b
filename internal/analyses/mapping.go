package analyses

import (
	"encoding/json"
	"fmt"

	"github.com/mano7284/PRD2workflow-Backend/pkg/query"
	"github.com/mano7284/PRD2workflow-Backend/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "analyses", "a").
	Project("id", "ID").
	Project("analysis_result", "Result").
	Project("document_length", "DocumentLength").
	Project("analysis_type", "AnalysisType").
	Project("created_at", "Timestamp").
	Project("user_id", "UserID")

var defaultSort = query.SortField{
	Field:      "Timestamp",
	Descending: true,
}

// scanAnalysis scans a row, decoding the JSONB result column.
func scanAnalysis(s repository.Scanner) (Analysis, error) {
	var (
		a      Analysis
		result []byte
	)

	err := s.Scan(
		&a.ID,
		&result,
		&a.DocumentLength,
		&a.AnalysisType,
		&a.Timestamp,
		&a.UserID,
	)
	if err != nil {
		return a, err
	}

	if err := json.Unmarshal(result, &a.Result); err != nil {
		return a, fmt.Errorf("decode stored analysis result: %w", err)
	}

	return a, nil
}
