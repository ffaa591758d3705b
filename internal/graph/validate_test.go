package graph_test

import (
	"strings"
	"testing"

	"github.com/mano7284/PRD2workflow-Backend/internal/graph"
)

func TestValidate(t *testing.T) {
	valid := []graph.Node{
		{ID: "start", Kind: graph.KindStart, Connections: []string{"check"}},
		{ID: "check", Kind: graph.KindDecision, Connections: []string{"done", "start"}},
		{ID: "done", Kind: graph.KindEnd, Connections: []string{}},
	}

	if issues := graph.Validate(valid); len(issues) != 0 {
		t.Errorf("Validate(valid) = %v, want no issues", issues)
	}

	t.Run("dangling target", func(t *testing.T) {
		nodes := []graph.Node{
			{ID: "start", Kind: graph.KindStart, Connections: []string{"missing"}},
			{ID: "done", Kind: graph.KindEnd},
		}
		issues := graph.Validate(nodes)
		if len(issues) != 1 || !strings.Contains(issues[0].Message, "missing") {
			t.Errorf("issues = %v, want one dangling target issue", issues)
		}
	})

	t.Run("single-branch decision", func(t *testing.T) {
		nodes := []graph.Node{
			{ID: "start", Kind: graph.KindStart, Connections: []string{"check"}},
			{ID: "check", Kind: graph.KindDecision, Connections: []string{"done"}},
			{ID: "done", Kind: graph.KindEnd},
		}
		issues := graph.Validate(nodes)
		if len(issues) != 1 || issues[0].NodeID != "check" {
			t.Errorf("issues = %v, want one branch-count issue on check", issues)
		}
	})

	t.Run("missing boundaries", func(t *testing.T) {
		nodes := []graph.Node{
			{ID: "a", Kind: graph.KindProcess, Connections: []string{"b"}},
			{ID: "b", Kind: graph.KindProcess},
		}
		issues := graph.Validate(nodes)
		if len(issues) != 2 {
			t.Errorf("issues = %v, want missing start and missing end", issues)
		}
	})
}
