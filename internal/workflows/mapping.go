package workflows

import (
	"encoding/json"
	"fmt"

	"github.com/mano7284/PRD2workflow-Backend/pkg/query"
	"github.com/mano7284/PRD2workflow-Backend/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "workflows", "w").
	Project("id", "ID").
	Project("workflow_nodes", "Nodes").
	Project("workflow_type", "WorkflowType").
	Project("document_length", "DocumentLength").
	Project("created_at", "Timestamp").
	Project("user_id", "UserID")

var defaultSort = query.SortField{
	Field:      "Timestamp",
	Descending: true,
}

// scanWorkflow scans a row, decoding the JSONB nodes column.
func scanWorkflow(s repository.Scanner) (Workflow, error) {
	var (
		w     Workflow
		nodes []byte
	)

	err := s.Scan(
		&w.ID,
		&nodes,
		&w.WorkflowType,
		&w.DocumentLength,
		&w.Timestamp,
		&w.UserID,
	)
	if err != nil {
		return w, err
	}

	if err := json.Unmarshal(nodes, &w.Nodes); err != nil {
		return w, fmt.Errorf("decode stored workflow nodes: %w", err)
	}

	return w, nil
}
