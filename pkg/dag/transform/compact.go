package transform

import (
	"cmp"
	"slices"

	"github.com/emgraph/emgraph/pkg/dag"
)

// RemoveDummies deletes every [dag.NodeKindDummy] node, reconnecting the
// original nodes at each chain's ends with a direct edge.
//
// Because [InsertDummies] only ever creates dummies with exactly one
// parent and one child, every chain has a unique non-dummy node at its
// start and a unique non-dummy node at its end; RemoveDummies walks each
// chain forward from its non-dummy source to find that end before
// deleting the chain.
//
// # Nil Handling
//
// RemoveDummies panics if g is nil. If g has no dummy nodes, the function
// returns immediately without modifying the graph.
func RemoveDummies(g *dag.DAG) {
	var newEdges []dag.Edge
	var dummyIDs []string

	for _, n := range g.Nodes() {
		if n.IsDummy() {
			dummyIDs = append(dummyIDs, n.ID)
			continue
		}
		for _, childID := range g.Children(n.ID) {
			if child, ok := g.Node(childID); !ok || !child.IsDummy() {
				continue
			}
			newEdges = append(newEdges, dag.Edge{From: n.ID, To: chainEnd(g, childID)})
		}
	}

	for _, e := range newEdges {
		if err := g.AddEdge(e); err != nil {
			panic(err)
		}
	}
	for _, id := range dummyIDs {
		g.RemoveNode(id)
	}
}

func chainEnd(g *dag.DAG, dummyID string) string {
	current := dummyID
	for {
		n, ok := g.Node(current)
		if !ok || !n.IsDummy() {
			return current
		}
		children := g.Children(current)
		if len(children) == 0 {
			return current
		}
		current = children[0]
	}
}

// CompactRows closes horizontal gaps left by dummy removal, renumbering
// every row's X positions to consecutive integers starting at 0, in
// ascending order of their current X. Ties (equal X, which should not
// normally occur after ordering) are broken by keeping the existing
// relative order.
//
// # Nil Handling
//
// CompactRows panics if g is nil. If g is empty, the function returns
// immediately.
func CompactRows(g *dag.DAG) {
	for _, row := range g.RowIDs() {
		nodes := slices.Clone(g.NodesInRow(row))
		slices.SortStableFunc(nodes, func(a, b *dag.Node) int { return cmp.Compare(a.X, b.X) })
		for i, n := range nodes {
			n.X = i
		}
	}
}
