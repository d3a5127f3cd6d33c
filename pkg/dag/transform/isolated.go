package transform

import "github.com/emgraph/emgraph/pkg/dag"

// PlaceIsolatedNodes assigns row and X coordinates to nodes with no edges
// at all, which every earlier stage leaves untouched.
//
// Isolated nodes are placed at Row 0, alongside the real roots/sinks of
// the graph, since without any neighbor to anchor them there is no
// principled row to prefer - Row 0 at least keeps them out of the middle
// of the diagram. They are given X positions one past the rightmost
// connected node already in row 0, in the order [dag.DAG.Isolated] returns
// them, so they form a trailing run rather than overlapping real nodes.
//
// # Nil Handling
//
// PlaceIsolatedNodes panics if g is nil. If g has no isolated nodes, the
// function returns immediately without modifying the graph.
func PlaceIsolatedNodes(g *dag.DAG) {
	isolated := g.Isolated()
	if len(isolated) == 0 {
		return
	}

	maxX := -1
	for _, n := range g.NodesInRow(0) {
		if g.InDegree(n.ID) > 0 || g.OutDegree(n.ID) > 0 {
			if n.X > maxX {
				maxX = n.X
			}
		}
	}

	next := maxX + 1
	for _, n := range isolated {
		n.Row = 0
		n.X = next
		next++
	}
	g.Reindex()
}
