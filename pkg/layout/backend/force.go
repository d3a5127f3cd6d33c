package backend

import (
	"context"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/emgraph/emgraph/pkg/dag"
	"github.com/emgraph/emgraph/pkg/layout"
)

// Force lays nodes out with a Fruchterman-Reingold spring simulation
// instead of a layered pass, then discretizes the resulting 2D positions
// into rows and within-row ordinals the same way [Graphviz] does.
//
// Row still carries its layered-layout meaning (0 = references nothing,
// increasing toward referencers): the simulation's y-axis is seeded from
// topological depth so the physical layout settles into a readable
// approximation of that ordering rather than an arbitrary one.
type Force struct {
	// Iterations is the number of simulation steps. Zero uses a default of 200.
	Iterations int
}

func init() {
	layout.Register("force", Force{})
}

const (
	forceDefaultIterations = 200
	forceArea              = 1000.0
	forceGravity           = 0.01
)

func (f Force) Layout(ctx context.Context, g *dag.DAG, opts layout.Options) error {
	iterations := f.Iterations
	if iterations == 0 {
		iterations = forceDefaultIterations
	}

	ids, index, gonumGraph := buildGonumGraph(g)
	positions := initPositions(g, ids, index)

	k := math.Sqrt(forceArea / math.Max(float64(len(ids)), 1))
	for i := 0; i < iterations; i++ {
		temperature := forceArea / 10 * (1 - float64(i)/float64(iterations))
		step(gonumGraph, ids, positions, k, temperature)
	}

	assignRowsAndXFromPositions(g, ids, positions)
	return nil
}

type vec struct{ x, y float64 }

func buildGonumGraph(g *dag.DAG) ([]string, map[string]int64, *simple.DirectedGraph) {
	nodes := g.Nodes()
	ids := make([]string, len(nodes))
	index := make(map[string]int64, len(nodes))
	gg := simple.NewDirectedGraph()

	for i, n := range nodes {
		ids[i] = n.ID
		index[n.ID] = int64(i)
		gg.AddNode(simple.Node(int64(i)))
	}
	for _, n := range nodes {
		for _, to := range g.Children(n.ID) {
			gg.SetEdge(gg.NewEdge(simple.Node(index[n.ID]), simple.Node(index[to])))
		}
	}
	return ids, index, gg
}

// initPositions seeds each node's y-coordinate from its longest path to a
// leaf (references-nothing) node, so the simulation starts close to a
// layered arrangement instead of from pure noise.
func initPositions(g *dag.DAG, ids []string, index map[string]int64) []vec {
	depth := longestPathFromLeaves(g, ids)

	positions := make([]vec, len(ids))
	for i, id := range ids {
		positions[i] = vec{
			x: float64((index[id]*2654435761)%1000) / 10,
			y: float64(depth[id]) * 50,
		}
	}
	return positions
}

func longestPathFromLeaves(g *dag.DAG, ids []string) map[string]int {
	depth := make(map[string]int, len(ids))
	var visit func(id string) int
	visiting := make(map[string]bool)
	visit = func(id string) int {
		if d, ok := depth[id]; ok {
			return d
		}
		if visiting[id] {
			return 0
		}
		visiting[id] = true
		best := 0
		for _, child := range g.Children(id) {
			if d := visit(child) + 1; d > best {
				best = d
			}
		}
		visiting[id] = false
		depth[id] = best
		return best
	}
	for _, id := range ids {
		visit(id)
	}
	return depth
}

func step(gg *simple.DirectedGraph, ids []string, positions []vec, k, temperature float64) {
	n := len(ids)
	disp := make([]vec, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := positions[i].x - positions[j].x
			dy := positions[i].y - positions[j].y
			dist := math.Max(math.Hypot(dx, dy), 0.01)
			repel := (k * k) / dist
			disp[i].x += dx / dist * repel
			disp[i].y += dy / dist * repel
		}
	}

	edges := gg.Edges()
	for edges.Next() {
		e := edges.Edge()
		i, j := e.From().ID(), e.To().ID()
		dx := positions[i].x - positions[j].x
		dy := positions[i].y - positions[j].y
		dist := math.Max(math.Hypot(dx, dy), 0.01)
		attract := (dist * dist) / k
		fx := dx / dist * attract
		fy := dy / dist * attract
		disp[i].x -= fx
		disp[i].y -= fy
		disp[j].x += fx
		disp[j].y += fy
	}

	for i := range positions {
		// Mild pull toward the origin keeps disconnected components from
		// drifting apart indefinitely under pure repulsion.
		disp[i].x -= positions[i].x * forceGravity
		disp[i].y -= positions[i].y * forceGravity

		dist := math.Max(math.Hypot(disp[i].x, disp[i].y), 0.01)
		positions[i].x += disp[i].x / dist * math.Min(dist, temperature)
		positions[i].y += disp[i].y / dist * math.Min(dist, temperature)
	}
}

func assignRowsAndXFromPositions(g *dag.DAG, ids []string, positions []vec) {
	// Bucket into rows by rounding y to the nearest multiple of a fixed
	// spacing, collapsing the continuous simulation output into discrete
	// rows the same way dot's rank assignment does for [Graphviz].
	bucket := 25.0
	rowOf := make(map[int]int)
	byNode := g.Nodes()
	nodeByID := make(map[string]*dag.Node, len(byNode))
	for _, n := range byNode {
		nodeByID[n.ID] = n
	}

	type placed struct {
		id  string
		key int
		x   float64
	}
	placements := make([]placed, len(ids))
	for i, id := range ids {
		key := int(math.Round(positions[i].y / bucket))
		placements[i] = placed{id: id, key: key, x: positions[i].x}
	}

	keys := make([]int, 0)
	seen := make(map[int]bool)
	for _, p := range placements {
		if !seen[p.key] {
			seen[p.key] = true
			keys = append(keys, p.key)
		}
	}
	sort.Ints(keys)
	for i, k := range keys {
		rowOf[k] = i
	}

	rows := make(map[int][]placed)
	for _, p := range placements {
		row := rowOf[p.key]
		rows[row] = append(rows[row], p)
	}
	for row, ps := range rows {
		sort.Slice(ps, func(i, j int) bool { return ps[i].x < ps[j].x })
		for x, p := range ps {
			n := nodeByID[p.id]
			n.Row = row
			n.X = x
		}
	}
}
