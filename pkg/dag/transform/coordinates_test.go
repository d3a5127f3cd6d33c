package transform

import (
	"testing"

	"github.com/emgraph/emgraph/pkg/dag"
)

func TestAssignCoordinates_CentersSingleParentOverSingleChild(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "child", Row: 0, X: 3})
	g.AddNode(dag.Node{ID: "parent", Row: 1, X: 0})
	g.AddEdge(dag.Edge{From: "parent", To: "child"})

	AssignCoordinates(g, 2)

	parent, _ := g.Node("parent")
	if parent.X != 3 {
		t.Errorf("parent.X = %d, want 3", parent.X)
	}
}

func TestAssignCoordinates_DummyNeverLosesPriority(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "top", Row: 1, X: 0})
	g.AddNode(dag.Node{ID: "d", Row: 0, X: 2, Kind: dag.NodeKindDummy})
	g.AddNode(dag.Node{ID: "other", Row: 0, X: 0})
	g.AddEdge(dag.Edge{From: "top", To: "d"})
	g.AddEdge(dag.Edge{From: "top", To: "other"})

	if priorityFor(g, mustNode(g, "d"), true) <= priorityFor(g, mustNode(g, "other"), true) {
		t.Error("dummy priority should exceed a regular node's")
	}
}

func mustNode(g *dag.DAG, id string) *dag.Node {
	n, _ := g.Node(id)
	return n
}
