package transform

import (
	"testing"

	"github.com/emgraph/emgraph/pkg/dag"
)

func TestRemoveDummies_CollapsesChain(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "app", Row: 3, X: 0})
	g.AddNode(dag.Node{ID: "dummy1", Row: 2, X: 0, Kind: dag.NodeKindDummy})
	g.AddNode(dag.Node{ID: "dummy2", Row: 1, X: 0, Kind: dag.NodeKindDummy})
	g.AddNode(dag.Node{ID: "deep", Row: 0, X: 0})
	g.AddEdge(dag.Edge{From: "app", To: "dummy1"})
	g.AddEdge(dag.Edge{From: "dummy1", To: "dummy2"})
	g.AddEdge(dag.Edge{From: "dummy2", To: "deep"})

	RemoveDummies(g)

	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	children := g.Children("app")
	if len(children) != 1 || children[0] != "deep" {
		t.Errorf("Children(app) = %v, want [deep]", children)
	}
}

func TestRemoveDummies_NoDummies(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a", Row: 1})
	g.AddNode(dag.Node{ID: "b", Row: 0})
	g.AddEdge(dag.Edge{From: "a", To: "b"})

	RemoveDummies(g)

	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("graph was modified: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestCompactRows_ClosesGaps(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a", Row: 0, X: 5})
	g.AddNode(dag.Node{ID: "b", Row: 0, X: 9})
	g.AddNode(dag.Node{ID: "c", Row: 0, X: 12})

	CompactRows(g)

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	c, _ := g.Node("c")
	if a.X != 0 || b.X != 1 || c.X != 2 {
		t.Errorf("X = (%d, %d, %d), want (0, 1, 2)", a.X, b.X, c.X)
	}
}
