package transform

import (
	"testing"

	"github.com/emgraph/emgraph/pkg/dag"
)

func TestInsertDummies_SingleRowEdgeUntouched(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a", Row: 1})
	g.AddNode(dag.Node{ID: "b", Row: 0})
	g.AddEdge(dag.Edge{From: "a", To: "b"})

	InsertDummies(g, NewDummyCounter(g))

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
}

func TestInsertDummies_SpansMultipleRows(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "deep", Row: 0})
	g.AddNode(dag.Node{ID: "app", Row: 3})
	g.AddEdge(dag.Edge{From: "app", To: "deep"})

	InsertDummies(g, NewDummyCounter(g))

	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", g.NodeCount())
	}

	dummies := 0
	for _, n := range g.Nodes() {
		if n.IsDummy() {
			dummies++
		}
	}
	if dummies != 2 {
		t.Errorf("dummy count = %d, want 2", dummies)
	}

	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestInsertDummies_NoCollisionWithExistingIDs(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "dummy1", Row: 0})
	g.AddNode(dag.Node{ID: "app", Row: 2})
	g.AddEdge(dag.Edge{From: "app", To: "dummy1"})

	InsertDummies(g, NewDummyCounter(g))

	if _, ok := g.Node("dummy2"); !ok {
		t.Error("expected a fresh dummy2 ID to avoid colliding with existing dummy1")
	}
}

func TestDummyCounter_NeverRepeats(t *testing.T) {
	g := dag.New(nil)
	c := NewDummyCounter(g)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := c.Next()
		if seen[id] {
			t.Fatalf("Next() returned duplicate ID %q", id)
		}
		seen[id] = true
	}
}
