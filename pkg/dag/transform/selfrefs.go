package transform

import "github.com/emgraph/emgraph/pkg/dag"

// RemoveSelfReferences removes edges from a node to itself and returns how
// many were removed.
//
// Self-references are common in real ingest data (an article that lists
// itself among its own references) and are never meaningful in a layered
// layout - a node cannot sit one row above itself. This pass always runs
// first, before any other transformation, so that downstream cycle
// detection doesn't reject a graph over a defect this trivial to fix.
//
// RemoveSelfReferences does not attempt to break any other cycle; multi-node
// cycles are rejected outright by [dag.DAG.HasCycle] rather than repaired.
func RemoveSelfReferences(g *dag.DAG) int {
	var removed int
	for _, e := range g.Edges() {
		if e.From == e.To {
			g.RemoveEdge(e.From, e.To)
			removed++
		}
	}
	return removed
}
