package transform

import (
	"testing"

	"github.com/emgraph/emgraph/pkg/dag"
)

func TestAssignLayers_LinearChain(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "app"})
	g.AddNode(dag.Node{ID: "lib"})
	g.AddNode(dag.Node{ID: "core"})
	g.AddEdge(dag.Edge{From: "app", To: "lib"})
	g.AddEdge(dag.Edge{From: "lib", To: "core"})

	AssignLayers(g)

	app, _ := g.Node("app")
	lib, _ := g.Node("lib")
	core, _ := g.Node("core")
	if core.Row != 0 || lib.Row != 1 || app.Row != 2 {
		t.Errorf("rows = (core=%d, lib=%d, app=%d), want (0, 1, 2)", core.Row, lib.Row, app.Row)
	}
}

func TestAssignLayers_IsolatedNodeGetsRowZero(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "lonely", Row: -1})

	AssignLayers(g)

	lonely, _ := g.Node("lonely")
	if lonely.Row != 0 {
		t.Errorf("lonely.Row = %d, want 0", lonely.Row)
	}
}

func TestAssignLayers_PicksLongestPath(t *testing.T) {
	// app → lib → core, and app → core directly: app must sit above lib,
	// which sits above core, so app ends up 2 rows above core even though
	// a direct edge to core also exists.
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "app"})
	g.AddNode(dag.Node{ID: "lib"})
	g.AddNode(dag.Node{ID: "core"})
	g.AddEdge(dag.Edge{From: "app", To: "lib"})
	g.AddEdge(dag.Edge{From: "lib", To: "core"})
	g.AddEdge(dag.Edge{From: "app", To: "core"})

	AssignLayers(g)

	app, _ := g.Node("app")
	core, _ := g.Node("core")
	if core.Row != 0 {
		t.Errorf("core.Row = %d, want 0", core.Row)
	}
	if app.Row != 2 {
		t.Errorf("app.Row = %d, want 2", app.Row)
	}
}
