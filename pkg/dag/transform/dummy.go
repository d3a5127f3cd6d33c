package transform

import (
	"fmt"

	"github.com/emgraph/emgraph/pkg/dag"
)

// DummyCounter generates unique dummy-node identifiers of the form
// "dummy<N>". It is owned by a single pipeline run rather than shared as
// package-level state, so two layouts running concurrently never collide
// and a run is fully reproducible regardless of how many others are in
// flight.
type DummyCounter struct {
	next int
	used map[string]struct{}
}

// NewDummyCounter creates a counter seeded to avoid colliding with any ID
// already present in g.
func NewDummyCounter(g *dag.DAG) *DummyCounter {
	used := make(map[string]struct{}, g.NodeCount())
	for _, n := range g.Nodes() {
		used[n.ID] = struct{}{}
	}
	return &DummyCounter{next: 1, used: used}
}

// Next returns the next unused "dummy<N>" identifier.
func (c *DummyCounter) Next() string {
	for {
		id := fmt.Sprintf("dummy%d", c.next)
		c.next++
		if _, taken := c.used[id]; !taken {
			c.used[id] = struct{}{}
			return id
		}
	}
}

// InsertDummies breaks edges that span more than one row into chains of
// single-row edges connected by synthetic [dag.NodeKindDummy] nodes. For
// example:
//
//	Before: app (row 3) → core (row 0)   [spans 3 rows]
//	After:  app → dummy1 → dummy2 → core [3 single-row edges]
//
// # Algorithm
//
// InsertDummies processes a worklist of edges seeded from the graph's
// current edges, using it as a stack: pop an edge, and if it still spans
// more than one row, replace it with a dummy inserted one row below the
// source and push the new (dummy, original target) edge back onto the
// stack. Repeat until the worklist is empty, at which point every edge in
// the graph spans exactly one row.
//
// # Nil Handling
//
// InsertDummies panics if g or counter is nil. If g is empty (zero nodes),
// the function returns immediately.
//
// # Performance
//
// Time complexity is O(E·D) where E is the number of edges and D is the
// maximum row span of an edge, since each long edge requires D-1 dummy
// insertions.
func InsertDummies(g *dag.DAG, counter *DummyCounter) {
	type pendingEdge struct{ from, to string }

	var stack []pendingEdge
	for _, e := range g.Edges() {
		if spansMultipleRows(g, e) {
			stack = append(stack, pendingEdge{e.From, e.To})
		}
	}

	for len(stack) > 0 {
		last := len(stack) - 1
		edge := stack[last]
		stack = stack[:last]

		src, srcOK := g.Node(edge.from)
		dst, dstOK := g.Node(edge.to)
		if !srcOK || !dstOK || src.Row-dst.Row <= 1 {
			continue
		}

		dummyID := counter.Next()
		if err := g.AddNode(dag.Node{ID: dummyID, Row: src.Row - 1, X: -1, Kind: dag.NodeKindDummy}); err != nil {
			panic(err)
		}
		g.RemoveEdge(edge.from, edge.to)
		if err := g.AddEdge(dag.Edge{From: edge.from, To: dummyID}); err != nil {
			panic(err)
		}
		if err := g.AddEdge(dag.Edge{From: dummyID, To: edge.to}); err != nil {
			panic(err)
		}

		if src.Row-1-dst.Row > 1 {
			stack = append(stack, pendingEdge{dummyID, edge.to})
		}
	}
}

func spansMultipleRows(g *dag.DAG, e dag.Edge) bool {
	src, srcOK := g.Node(e.From)
	dst, dstOK := g.Node(e.To)
	return srcOK && dstOK && src.Row-dst.Row > 1
}
