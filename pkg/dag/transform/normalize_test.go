package transform

import (
	"testing"

	"github.com/emgraph/emgraph/pkg/dag"
	serr "github.com/emgraph/emgraph/pkg/errors"
)

func TestNormalize_RejectsCycle(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "b", To: "a"})

	_, err := Normalize(g)
	if !serr.Is(err, serr.ErrCodeInvalidInput) {
		t.Fatalf("Normalize() error = %v, want ErrCodeInvalidInput", err)
	}
}

func TestNormalize_RemovesSelfReferenceThenSucceeds(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "a"})

	result, err := Normalize(g)
	if err != nil {
		t.Fatalf("Normalize() error = %v, want nil", err)
	}
	if result.SelfReferencesRemoved != 1 {
		t.Errorf("SelfReferencesRemoved = %d, want 1", result.SelfReferencesRemoved)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() after Normalize = %v, want nil", err)
	}
}

func TestNormalize_EndToEndProducesValidLayout(t *testing.T) {
	g := dag.New(nil)
	for _, id := range []string{"app", "auth", "cache", "db", "metrics"} {
		g.AddNode(dag.Node{ID: id})
	}
	g.AddEdge(dag.Edge{From: "app", To: "auth"})
	g.AddEdge(dag.Edge{From: "app", To: "cache"})
	g.AddEdge(dag.Edge{From: "app", To: "metrics"})
	g.AddEdge(dag.Edge{From: "auth", To: "db"})
	g.AddEdge(dag.Edge{From: "cache", To: "db"})
	g.AddEdge(dag.Edge{From: "auth", To: "metrics"})

	if _, err := Normalize(g); err != nil {
		t.Fatalf("Normalize() error = %v, want nil", err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	for _, n := range g.Nodes() {
		if n.X < 0 {
			t.Errorf("node %q has unassigned X = %d", n.ID, n.X)
		}
		if n.IsDummy() {
			t.Errorf("dummy node %q survived normalization", n.ID)
		}
	}
}

func TestNormalize_OptimalOption(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddNode(dag.Node{ID: "c"})
	g.AddEdge(dag.Edge{From: "a", To: "c"})
	g.AddEdge(dag.Edge{From: "b", To: "c"})

	_, err := NormalizeWithOptions(g, NormalizeOptions{Optimal: true, MaxFanout: 4})
	if err != nil {
		t.Fatalf("NormalizeWithOptions() error = %v, want nil", err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
