package graph

import "fmt"

// Issue describes a structural inconsistency found in a graph. Issues are
// advisory: generated graphs are returned to callers regardless, and issues
// exist so orchestrators can log when model output drifts from the expected
// shape.
type Issue struct {
	NodeID  string
	Message string
}

func (i Issue) String() string {
	if i.NodeID == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.NodeID, i.Message)
}

// Validate reports structural issues in a node sequence: missing start or
// end boundary nodes, connection targets that resolve to no node, and
// decision nodes with fewer than two outgoing branches.
func Validate(nodes []Node) []Issue {
	var issues []Issue

	ids := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		ids[n.ID] = struct{}{}
	}

	var hasStart, hasEnd bool
	for _, n := range nodes {
		switch n.Kind {
		case KindStart:
			hasStart = true
		case KindEnd:
			hasEnd = true
		case KindDecision:
			if len(n.Connections) < 2 {
				issues = append(issues, Issue{
					NodeID:  n.ID,
					Message: fmt.Sprintf("decision node has %d branches, expected at least 2", len(n.Connections)),
				})
			}
		}

		for _, target := range n.Connections {
			if _, ok := ids[target]; !ok {
				issues = append(issues, Issue{
					NodeID:  n.ID,
					Message: fmt.Sprintf("connection target %q does not resolve to a node", target),
				})
			}
		}
	}

	if !hasStart {
		issues = append(issues, Issue{Message: "graph has no start node"})
	}
	if !hasEnd {
		issues = append(issues, Issue{Message: "graph has no end node"})
	}

	return issues
}
