package transform

import (
	"slices"
	"testing"

	"github.com/emgraph/emgraph/pkg/dag"
)

// rowOrder returns the IDs of row's nodes from left to right by X.
func rowOrder(g *dag.DAG, row int) []string {
	nodes := slices.Clone(g.NodesInRow(row))
	slices.SortFunc(nodes, func(a, b *dag.Node) int { return a.X - b.X })
	return dag.NodeIDs(nodes)
}

func buildCrossedRows(g *dag.DAG) {
	g.AddNode(dag.Node{ID: "b0", Row: 0, X: 0})
	g.AddNode(dag.Node{ID: "b1", Row: 0, X: 1})
	g.AddNode(dag.Node{ID: "t0", Row: 1, X: 0})
	g.AddNode(dag.Node{ID: "t1", Row: 1, X: 1})
	// t0 → b1 and t1 → b0 cross when drawn in this order.
	g.AddEdge(dag.Edge{From: "t0", To: "b1"})
	g.AddEdge(dag.Edge{From: "t1", To: "b0"})
}

func TestReduceCrossings_UncrossesTwoByTwo(t *testing.T) {
	g := dag.New(nil)
	buildCrossedRows(g)

	before := dag.CountLayerCrossings(g, []string{"t0", "t1"}, []string{"b0", "b1"})
	ReduceCrossings(g, 10)

	after := dag.CountLayerCrossings(g, rowOrder(g, 1), rowOrder(g, 0))

	if after > before {
		t.Errorf("crossings after = %d, want <= %d", after, before)
	}
}

func TestReduceCrossingsOptimal_FindsZeroCrossingOrder(t *testing.T) {
	g := dag.New(nil)
	buildCrossedRows(g)

	ReduceCrossingsOptimal(g, 8, 0)

	after := dag.CountLayerCrossings(g, rowOrder(g, 1), rowOrder(g, 0))

	if after != 0 {
		t.Errorf("crossings after optimal reorder = %d, want 0", after)
	}
}

func TestReduceCrossingsOptimal_SkipsWideRows(t *testing.T) {
	g := dag.New(nil)
	for i := 0; i < 10; i++ {
		g.AddNode(dag.Node{ID: string(rune('a' + i)), Row: 0, X: i})
	}

	// Should not hang or panic searching a 10-node row against maxFanout 4.
	ReduceCrossingsOptimal(g, 4, 0)

	if g.NodeCount() != 10 {
		t.Errorf("NodeCount() = %d, want 10", g.NodeCount())
	}
}
