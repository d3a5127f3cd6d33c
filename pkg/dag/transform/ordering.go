package transform

import (
	"cmp"
	"math"
	"slices"

	"github.com/emgraph/emgraph/pkg/dag"
	"github.com/emgraph/emgraph/pkg/dag/perm"
)

// ReduceCrossings reorders nodes within each row to reduce edge crossings
// between adjacent rows, using the barycenter heuristic: alternating
// upward and downward sweeps, each sorting every row by the mean position
// of its already-placed neighbors (parents on the upward sweep, children
// on the downward sweep) and breaking ties by keeping the previous order
// (a stable sort).
//
// Each sweep computes every node's barycenter from the positions left by
// the previous sweep before reassigning any row - a single synchronized
// step rather than updating positions row by row as they're touched.
//
// iterations defaults to 50 if <= 0.
func ReduceCrossings(g *dag.DAG, iterations int) {
	if iterations <= 0 {
		iterations = 50
	}
	for i := 0; i < iterations; i++ {
		sweep(g, false)
		sweep(g, true)
	}
}

func sweep(g *dag.DAG, downward bool) {
	neighborsOf := g.Parents
	if downward {
		neighborsOf = g.Children
	}

	centers := make(map[string]float64, g.NodeCount())
	for _, n := range g.Nodes() {
		centers[n.ID] = barycenter(g, neighborsOf(n.ID))
	}

	for _, row := range g.RowIDs() {
		nodes := slices.Clone(g.NodesInRow(row))
		slices.SortStableFunc(nodes, func(a, b *dag.Node) int { return cmp.Compare(a.X, b.X) })
		slices.SortStableFunc(nodes, func(a, b *dag.Node) int {
			return cmp.Compare(centers[a.ID], centers[b.ID])
		})
		for i, n := range nodes {
			n.X = i
		}
	}
}

func barycenter(g *dag.DAG, neighborIDs []string) float64 {
	if len(neighborIDs) == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for _, id := range neighborIDs {
		if n, ok := g.Node(id); ok {
			sum += float64(n.X)
		}
	}
	return sum / float64(len(neighborIDs))
}

// ReduceCrossingsOptimal reorders each row by searching its permutation
// space (via [perm.Generate] for rows of up to smallRowLimit nodes and
// [perm.PQTree] for wider ones, bounded by maxPerms) for the arrangement
// with the fewest crossings against its already-fixed neighbors. Rows larger than maxFanout fall back to the
// barycenter heuristic, since the permutation space grows factorially and
// an exhaustive search over a wide row would never return.
//
// This is the slow, thorough counterpart to [ReduceCrossings]: "optimal"
// within the search budget and within each row in isolation, not globally
// optimal across the whole graph, since rows interact and a better
// per-row ordering does not guarantee a better total crossing count.
func ReduceCrossingsOptimal(g *dag.DAG, maxFanout, maxPerms int) {
	ReduceCrossings(g, 1)
	if maxFanout <= 0 {
		maxFanout = 8
	}
	if maxPerms <= 0 {
		maxPerms = 40320 // 8!
	}

	for _, row := range g.RowIDs() {
		nodes := g.NodesInRow(row)
		if len(nodes) < 2 || len(nodes) > maxFanout {
			continue
		}
		optimizeRow(g, nodes, maxPerms)
	}
}

// smallRowLimit is the row width below which brute-force enumeration via
// [perm.Generate] (Heap's algorithm, all n! permutations materialized
// up front) is cheaper than walking [perm.PQTree]: 6! = 720 permutations
// is a trivial allocation, and Heap's algorithm avoids the PQTree's
// constraint bookkeeping entirely for rows this narrow.
const smallRowLimit = 6

func optimizeRow(g *dag.DAG, nodes []*dag.Node, maxPerms int) {
	nodes = slices.Clone(nodes)
	slices.SortStableFunc(nodes, func(a, b *dag.Node) int { return cmp.Compare(a.X, b.X) })
	ids := dag.NodeIDs(nodes)

	bestOrder := slices.Clone(ids)
	bestCrossings := rowCrossings(g, nodes, bestOrder)

	consider := func(order []int) {
		candidate := make([]string, len(order))
		for i, idx := range order {
			candidate[i] = ids[idx]
		}
		if c := rowCrossings(g, nodes, candidate); c < bestCrossings {
			bestCrossings = c
			bestOrder = candidate
		}
	}

	if len(ids) <= smallRowLimit {
		for _, order := range perm.Generate(len(ids), maxPerms) {
			consider(order)
		}
	} else {
		tree := perm.NewPQTree(len(ids))
		count := 0
		tree.EnumerateFunc(func(order []int) bool {
			count++
			consider(order)
			return count < maxPerms
		})
	}

	for i, id := range bestOrder {
		if n, ok := g.Node(id); ok {
			n.X = i
		}
	}
}

func rowCrossings(g *dag.DAG, nodes []*dag.Node, order []string) int {
	if len(nodes) == 0 {
		return 0
	}
	row := nodes[0].Row
	byX := func(r int) []string {
		ns := slices.Clone(g.NodesInRow(r))
		slices.SortStableFunc(ns, func(a, b *dag.Node) int { return cmp.Compare(a.X, b.X) })
		return dag.NodeIDs(ns)
	}
	total := 0
	if above := byX(row + 1); len(above) > 0 {
		total += dag.CountLayerCrossings(g, above, order)
	}
	if below := byX(row - 1); len(below) > 0 {
		total += dag.CountLayerCrossings(g, order, below)
	}
	return total
}
