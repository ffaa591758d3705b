// Package workflows implements the workflow generation domain. It turns a
// requirements document into a node graph via the model, normalizing the
// response and synthesizing a deterministic fallback graph when the
// response is unusable.
package workflows

import (
	"time"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/internal/graph"
)

// Workflow represents one generated workflow graph.
type Workflow struct {
	ID             uuid.UUID    `json:"id"`
	Nodes          []graph.Node `json:"workflow_nodes"`
	WorkflowType   graph.Flow   `json:"workflow_type"`
	DocumentLength int          `json:"document_length"`
	Timestamp      time.Time    `json:"timestamp"`
	UserID         *uuid.UUID   `json:"user_id"`
}

// GenerateCommand carries the inputs for workflow generation.
type GenerateCommand struct {
	Content string
	Flow    graph.Flow
	UserID  *uuid.UUID
}
