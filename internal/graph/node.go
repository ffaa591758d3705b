// Package graph defines the workflow graph model and the two paths that
// produce it: normalization of model output and deterministic synthesis
// from document content.
package graph

// Kind classifies a node's role within a workflow graph.
type Kind string

const (
	KindStart    Kind = "start"
	KindProcess  Kind = "process"
	KindDecision Kind = "decision"
	KindEnd      Kind = "end"
)

// ParseKind maps an arbitrary kind string onto the closed set. Unrecognized
// values coerce to KindProcess so that schema drift in model output degrades
// to a renderable step instead of failing the graph.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindStart, KindProcess, KindDecision, KindEnd:
		return Kind(s)
	default:
		return KindProcess
	}
}

// Flow selects a workflow family for prompt construction and fallback synthesis.
type Flow string

const (
	FlowUserJourney      Flow = "user_journey"
	FlowServiceBlueprint Flow = "service_blueprint"
	FlowFeatureFlow      Flow = "feature_flow"
)

// Node is a single step in a workflow graph. X and Y are layout hints for a
// downstream renderer; Connections holds the ids of target nodes. Branch
// labels present in model output are flattened away during normalization.
type Node struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"type"`
	Label       string   `json:"label"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Connections []string `json:"connections"`
}
