package graph

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mano7284/PRD2workflow-Backend/pkg/formatting"
)

// Layout defaults applied when model output omits coordinates. Sequential
// steps advance along x; y stays on the main flow line.
const (
	layoutBaseX = 200
	layoutStepX = 300
	layoutBaseY = 100
)

// ErrUnusable is returned when model output cannot be normalized into a
// meaningful graph: unparseable content, or a result of two or fewer nodes.
var ErrUnusable = errors.New("response is not a usable workflow graph")

// rawConnection tolerates both connection encodings seen in model output:
// a bare target id string, or an object carrying a target and a branch
// label. Entries in any other shape decode to an empty target and are
// dropped during node construction, so one bad connection never discards
// the rest of the graph.
type rawConnection struct {
	Target string
}

func (c *rawConnection) UnmarshalJSON(data []byte) error {
	var target string
	if err := json.Unmarshal(data, &target); err == nil {
		c.Target = target
		return nil
	}

	var obj struct {
		Target string `json:"target"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		c.Target = obj.Target
	}
	return nil
}

type rawNode struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Label       string          `json:"label"`
	X           *int            `json:"x"`
	Y           *int            `json:"y"`
	Connections []rawConnection `json:"connections"`
}

// nodeList accepts either a bare array of nodes or an object that wraps the
// array under a workflow or nodes key. Elements that are not node objects
// are skipped rather than failing the whole array.
type nodeList []rawNode

func (l *nodeList) UnmarshalJSON(data []byte) error {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = decodeElements(arr)
		return nil
	}

	var wrapper struct {
		Workflow []json.RawMessage `json:"workflow"`
		Nodes    []json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	if wrapper.Workflow != nil {
		*l = decodeElements(wrapper.Workflow)
		return nil
	}
	*l = decodeElements(wrapper.Nodes)
	return nil
}

func decodeElements(elements []json.RawMessage) []rawNode {
	nodes := make([]rawNode, 0, len(elements))
	for _, element := range elements {
		var rn rawNode
		if err := json.Unmarshal(element, &rn); err != nil {
			continue
		}
		nodes = append(nodes, rn)
	}
	return nodes
}

// Normalize converts model output into an ordered node sequence. It strips
// code fences, parses the content, and falls back to the first balanced
// array fragment within it. Malformed elements are skipped rather than
// discarding the rest. Missing fields receive deterministic defaults;
// connection objects are flattened to their target ids. Returns ErrUnusable
// when nothing parses or the graph is too small to render.
func Normalize(content string) ([]Node, error) {
	raw, _, err := formatting.Decode[nodeList](content, formatting.ArrayFragment)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnusable, err)
	}

	if len(raw) <= 2 {
		return nil, ErrUnusable
	}

	nodes := make([]Node, 0, len(raw))
	for i, rn := range raw {
		nodes = append(nodes, buildNode(rn, i))
	}
	return nodes, nil
}

func buildNode(rn rawNode, index int) Node {
	n := Node{
		ID:          rn.ID,
		Kind:        ParseKind(rn.Type),
		Label:       rn.Label,
		X:           layoutBaseX + index*layoutStepX,
		Y:           layoutBaseY,
		Connections: make([]string, 0, len(rn.Connections)),
	}

	if n.ID == "" {
		n.ID = fmt.Sprintf("node_%d", index)
	}
	if n.Label == "" {
		n.Label = fmt.Sprintf("Step %d", index+1)
	}
	if rn.X != nil {
		n.X = *rn.X
	}
	if rn.Y != nil {
		n.Y = *rn.Y
	}

	for _, conn := range rn.Connections {
		if conn.Target != "" {
			n.Connections = append(n.Connections, conn.Target)
		}
	}

	return n
}
