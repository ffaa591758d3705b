package graph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mano7284/PRD2workflow-Backend/internal/graph"
)

const wellFormedArray = `[
  {"id": "start", "type": "start", "label": "Open App", "x": 200, "y": 100,
   "connections": [{"target": "browse", "label": "Continue"}]},
  {"id": "browse", "type": "process", "label": "Browse Catalog", "x": 500, "y": 100,
   "connections": ["checkout"]},
  {"id": "checkout", "type": "end", "label": "Checkout", "x": 800, "y": 100,
   "connections": []}
]`

func TestNormalizePreservesNodes(t *testing.T) {
	nodes, err := graph.Normalize(wellFormedArray)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d, want 3", len(nodes))
	}

	wantIDs := []string{"start", "browse", "checkout"}
	for i, id := range wantIDs {
		if nodes[i].ID != id {
			t.Errorf("nodes[%d].ID = %q, want %q", i, nodes[i].ID, id)
		}
	}

	if nodes[0].Kind != graph.KindStart || nodes[2].Kind != graph.KindEnd {
		t.Errorf("boundary kinds = %s/%s, want start/end", nodes[0].Kind, nodes[2].Kind)
	}
}

func TestNormalizeFlattensConnections(t *testing.T) {
	nodes, err := graph.Normalize(wellFormedArray)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	// Labeled connection objects reduce to the target id; bare strings pass through.
	if len(nodes[0].Connections) != 1 || nodes[0].Connections[0] != "browse" {
		t.Errorf("nodes[0].Connections = %v, want [browse]", nodes[0].Connections)
	}
	if len(nodes[1].Connections) != 1 || nodes[1].Connections[0] != "checkout" {
		t.Errorf("nodes[1].Connections = %v, want [checkout]", nodes[1].Connections)
	}
	if len(nodes[2].Connections) != 0 {
		t.Errorf("nodes[2].Connections = %v, want empty", nodes[2].Connections)
	}
}

func TestNormalizeWrapperShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"workflow key", `{"workflow": ` + wellFormedArray + `}`},
		{"nodes key", `{"nodes": ` + wellFormedArray + `}`},
		{"json fence", "```json\n" + wellFormedArray + "\n```"},
		{"plain fence", "```\n" + wellFormedArray + "\n```"},
		{"embedded array", "Here is your workflow:\n" + wellFormedArray + "\nEnjoy!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := graph.Normalize(tt.content)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if len(nodes) != 3 {
				t.Errorf("len(nodes) = %d, want 3", len(nodes))
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	content := `[{}, {}, {"type": "mystery"}]`

	nodes, err := graph.Normalize(content)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if nodes[0].ID != "node_0" || nodes[1].ID != "node_1" {
		t.Errorf("synthetic ids = %q/%q, want node_0/node_1", nodes[0].ID, nodes[1].ID)
	}
	if nodes[0].Label != "Step 1" || nodes[2].Label != "Step 3" {
		t.Errorf("default labels = %q/%q, want Step 1/Step 3", nodes[0].Label, nodes[2].Label)
	}
	if nodes[0].X != 200 || nodes[1].X != 500 || nodes[2].X != 800 {
		t.Errorf("layout x = %d/%d/%d, want 200/500/800", nodes[0].X, nodes[1].X, nodes[2].X)
	}
	if nodes[0].Y != 100 {
		t.Errorf("layout y = %d, want 100", nodes[0].Y)
	}

	// Unrecognized kinds coerce to process.
	if nodes[2].Kind != graph.KindProcess {
		t.Errorf("nodes[2].Kind = %s, want process", nodes[2].Kind)
	}
}

func TestNormalizeSkipsMalformedElements(t *testing.T) {
	content := `[
		{"id": "start", "type": "start", "label": "Begin"},
		42,
		"not a node",
		{"id": "work", "type": "process", "label": "Work"},
		{"id": "end", "type": "end", "label": "Done"}
	]`

	nodes, err := graph.Normalize(content)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	if !reflect.DeepEqual(ids, []string{"start", "work", "end"}) {
		t.Errorf("ids = %v, want [start work end]", ids)
	}
}

func TestNormalizeSkipsMalformedConnections(t *testing.T) {
	content := `[
		{"id": "a", "connections": ["b", 7, {"target": "c"}, true]},
		{"id": "b"},
		{"id": "c"}
	]`

	nodes, err := graph.Normalize(content)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if !reflect.DeepEqual(nodes[0].Connections, []string{"b", "c"}) {
		t.Errorf("connections = %v, want [b c]", nodes[0].Connections)
	}
}

func TestNormalizeUnusable(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "I could not produce a workflow for this document."},
		{"empty", ""},
		{"too small", `[{"id": "a"}, {"id": "b"}]`},
		{"empty array", `[]`},
		{"object without known wrapper", `{"steps": [{"id": "a"}, {"id": "b"}, {"id": "c"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graph.Normalize(tt.content)
			if !errors.Is(err, graph.ErrUnusable) {
				t.Errorf("Normalize() error = %v, want ErrUnusable", err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want graph.Kind
	}{
		{"start", graph.KindStart},
		{"process", graph.KindProcess},
		{"decision", graph.KindDecision},
		{"end", graph.KindEnd},
		{"", graph.KindProcess},
		{"diamond", graph.KindProcess},
	}

	for _, tt := range tests {
		if got := graph.ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
