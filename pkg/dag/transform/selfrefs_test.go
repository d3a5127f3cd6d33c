package transform

import (
	"testing"

	"github.com/emgraph/emgraph/pkg/dag"
)

func TestRemoveSelfReferences_NoSelfRefs(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})

	removed := RemoveSelfReferences(g)

	if removed != 0 {
		t.Errorf("RemoveSelfReferences() removed %d edges, want 0", removed)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestRemoveSelfReferences_SelfRef(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "a"})

	removed := RemoveSelfReferences(g)

	if removed != 1 {
		t.Errorf("RemoveSelfReferences() removed %d edges, want 1", removed)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestRemoveSelfReferences_MultipleSelfRefs(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "a"})
	g.AddEdge(dag.Edge{From: "b", To: "b"})

	removed := RemoveSelfReferences(g)

	if removed != 2 {
		t.Errorf("RemoveSelfReferences() removed %d edges, want 2", removed)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}
