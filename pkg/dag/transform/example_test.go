package transform_test

import (
	"fmt"

	"github.com/emgraph/emgraph/pkg/dag"
	"github.com/emgraph/emgraph/pkg/dag/transform"
)

func ExampleNormalize() {
	// Build a raw reference graph (not yet normalized).
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "app"})
	_ = g.AddNode(dag.Node{ID: "auth"})
	_ = g.AddNode(dag.Node{ID: "cache"})
	_ = g.AddNode(dag.Node{ID: "db"})

	// References: app → auth → db, app → cache → db, app → db (transitive).
	_ = g.AddEdge(dag.Edge{From: "app", To: "auth"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "cache"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "db"}) // Transitive - will be removed
	_ = g.AddEdge(dag.Edge{From: "auth", To: "db"})
	_ = g.AddEdge(dag.Edge{From: "cache", To: "db"})

	fmt.Println("Before normalize:")
	fmt.Println("  Nodes:", g.NodeCount())
	fmt.Println("  Edges:", g.EdgeCount())

	// Normalize: assigns rows, removes transitive edges, reduces crossings.
	if _, err := transform.Normalize(g); err != nil {
		fmt.Println("normalize failed:", err)
		return
	}

	fmt.Println("After normalize:")
	fmt.Println("  Nodes:", g.NodeCount())
	fmt.Println("  Edges:", g.EdgeCount())
	fmt.Println("  Rows:", g.RowCount())
	// Output:
	// Before normalize:
	//   Nodes: 4
	//   Edges: 5
	// After normalize:
	//   Nodes: 4
	//   Edges: 4
	//   Rows: 3
}

func ExampleRemoveSelfReferences() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "A"})
	_ = g.AddNode(dag.Node{ID: "B"})
	_ = g.AddEdge(dag.Edge{From: "A", To: "B"})
	_ = g.AddEdge(dag.Edge{From: "A", To: "A"}) // Self-reference

	fmt.Println("Edges before:", g.EdgeCount())
	removed := transform.RemoveSelfReferences(g)
	fmt.Println("Removed:", removed)
	fmt.Println("Edges after:", g.EdgeCount())
	// Output:
	// Edges before: 2
	// Removed: 1
	// Edges after: 1
}

func ExampleTransitiveReduction() {
	// A references B references C, plus a redundant direct A → C.
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "A", Row: 2})
	_ = g.AddNode(dag.Node{ID: "B", Row: 1})
	_ = g.AddNode(dag.Node{ID: "C", Row: 0})
	_ = g.AddEdge(dag.Edge{From: "A", To: "B"})
	_ = g.AddEdge(dag.Edge{From: "B", To: "C"})
	_ = g.AddEdge(dag.Edge{From: "A", To: "C"}) // Redundant

	fmt.Println("Before reduction:", g.EdgeCount(), "edges")
	transform.TransitiveReduction(g)
	fmt.Println("After reduction:", g.EdgeCount(), "edges")
	// Output:
	// Before reduction: 3 edges
	// After reduction: 2 edges
}

func ExampleAssignLayers() {
	// app references lib references core; core is the row-0 foundation.
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "app"})
	_ = g.AddNode(dag.Node{ID: "lib"})
	_ = g.AddNode(dag.Node{ID: "core"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "lib"})
	_ = g.AddEdge(dag.Edge{From: "lib", To: "core"})

	transform.AssignLayers(g)

	app, _ := g.Node("app")
	lib, _ := g.Node("lib")
	core, _ := g.Node("core")

	fmt.Println("core row:", core.Row)
	fmt.Println("lib row:", lib.Row)
	fmt.Println("app row:", app.Row)
	// Output:
	// core row: 0
	// lib row: 1
	// app row: 2
}

func ExampleInsertDummies() {
	// app references deep directly, three rows up - too far for a single edge.
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "deep", Row: 0})
	_ = g.AddNode(dag.Node{ID: "app", Row: 3})
	_ = g.AddEdge(dag.Edge{From: "app", To: "deep"})

	fmt.Println("Before insert:")
	fmt.Println("  Nodes:", g.NodeCount())

	transform.InsertDummies(g, transform.NewDummyCounter(g))

	fmt.Println("After insert:")
	fmt.Println("  Nodes:", g.NodeCount())

	dummies := 0
	for _, n := range g.Nodes() {
		if n.IsDummy() {
			dummies++
		}
	}
	fmt.Println("  Dummies:", dummies)
	// Output:
	// Before insert:
	//   Nodes: 2
	// After insert:
	//   Nodes: 4
	//   Dummies: 2
}
