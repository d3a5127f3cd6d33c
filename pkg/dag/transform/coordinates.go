package transform

import (
	"slices"

	"github.com/emgraph/emgraph/pkg/dag"
)

// dummyPriority is the priority assigned to dummy nodes, high enough to
// always be processed (and therefore placed) before any regular node, so
// edges routed through a dummy chain stay as straight as possible.
const dummyPriority = 1 << 30

// AssignCoordinates refines each node's X position toward the mean X of
// its neighbors, alternating upward and downward passes, pushing
// neighboring nodes along a row when there isn't room to move without
// displacing them.
//
// iterations defaults to 2 if <= 0.
//
// # Algorithm
//
// Each pass (see moveCloser) computes, for every node, a priority (how
// strongly it should get its way when two nodes in a row want to move
// into the same space) and an ideal X (the mean X of its neighbors on one
// side - parents on the upward pass, children on the downward pass).
// Within each row, nodes are then repositioned toward their ideal X in
// descending priority order: the rest of the row is pushed along a stack
// until a locked node (already positioned earlier in this pass) or a row
// boundary is hit, at which point the whole pushed chain is laid out
// contiguously from that point.
//
// Dummy nodes get the highest priority, since they only exist to keep a
// long edge straight and have no competing interest of their own.
func AssignCoordinates(g *dag.DAG, iterations int) {
	if iterations <= 0 {
		iterations = 2
	}
	for i := 0; i < iterations; i++ {
		moveCloser(g, false)
		moveCloser(g, true)
	}
}

func moveCloser(g *dag.DAG, downward bool) {
	neighborsOf := g.Parents
	if downward {
		neighborsOf = g.Children
	}

	priority := make(map[string]int, g.NodeCount())
	idealX := make(map[string]int, g.NodeCount())
	for _, n := range g.Nodes() {
		priority[n.ID] = priorityFor(g, n, downward)
		idealX[n.ID] = idealXFor(g, n, neighborsOf(n.ID))
	}

	// The upward pass dampens how far a node is allowed to jump toward its
	// ideal X in one step, based on how its in/out degree compare; the
	// downward pass uses the raw mean unconditionally.
	if !downward {
		dampIdealX(g, idealX)
	}

	for _, row := range g.RowIDs() {
		nodes := slices.Clone(g.NodesInRow(row))
		slices.SortFunc(nodes, func(a, b *dag.Node) int { return a.X - b.X })
		updateRowPriorityOrder(nodes, priority, idealX)
	}
}

func priorityFor(g *dag.DAG, n *dag.Node, downward bool) int {
	if n.IsDummy() {
		return dummyPriority
	}
	if downward {
		return g.OutDegree(n.ID)
	}
	return g.InDegree(n.ID)
}

func idealXFor(g *dag.DAG, n *dag.Node, neighborIDs []string) int {
	if len(neighborIDs) == 0 {
		return n.X
	}
	sum := 0
	for _, id := range neighborIDs {
		if nb, ok := g.Node(id); ok {
			sum += nb.X
		}
	}
	return sum / len(neighborIDs)
}

// dampIdealX tempers the raw mean-of-parents ideal X computed for the
// upward pass: a node reached by fewer references than it makes (more
// children than parents) moves all the way to its ideal X; a node with
// balanced in/out degree only moves halfway there; a node reached by more
// references than it makes keeps its current position outright. Dummy
// nodes are exempt and always use the raw computed value - they exist
// solely to carry a straight line through a row and have no degree
// imbalance of their own to weigh.
func dampIdealX(g *dag.DAG, idealX map[string]int) {
	for _, n := range g.Nodes() {
		if n.IsDummy() {
			continue
		}
		out, in := g.OutDegree(n.ID), g.InDegree(n.ID)
		switch {
		case out < in:
			idealX[n.ID] = n.X
		case out == in:
			idealX[n.ID] = (n.X + idealX[n.ID]) / 2
		}
	}
}

// updateRowPriorityOrder repositions every node in row toward its ideal X,
// processing nodes in descending priority order (ties broken by ascending
// current X), displacing lower-priority neighbors as needed.
func updateRowPriorityOrder(row []*dag.Node, priority, idealX map[string]int) {
	assignOrder := slices.Clone(row)
	slices.SortStableFunc(assignOrder, func(a, b *dag.Node) int {
		if priority[a.ID] != priority[b.ID] {
			return priority[b.ID] - priority[a.ID]
		}
		return a.X - b.X
	})

	posOf := make(map[string]int, len(row))
	for i, n := range row {
		posOf[n.ID] = i
	}

	assigned := make(map[string]bool, len(row))
	for _, node := range assignOrder {
		ideal := idealX[node.ID]
		sign := -1
		if node.X < ideal {
			sign = 1
		}
		stack := []*dag.Node{node}
		cascadeShift(row, posOf[node.ID], ideal, sign, &stack, assigned)
		assigned[node.ID] = true
	}
}

// cascadeShift walks from index in direction sign, gathering neighbors
// that stand between the node at the bottom of stack and ideal, until it
// finds room to lay the whole chain out without overlap: a row boundary,
// a neighbor that already clears ideal in the direction of travel, or a
// neighbor locked by an earlier, higher-priority assignment this pass.
func cascadeShift(row []*dag.Node, index, ideal, sign int, stack *[]*dag.Node, assigned map[string]bool) {
	next := index + sign
	if next < 0 || next >= len(row) {
		assignSequence(*stack, ideal, -sign)
		return
	}

	neighbor := row[next]
	if (sign > 0 && neighbor.X >= ideal) || (sign < 0 && neighbor.X <= ideal) {
		assignSequence(*stack, ideal, -sign)
		return
	}
	if assigned[neighbor.ID] {
		assignSequence(*stack, neighbor.X-sign, -sign)
		return
	}

	*stack = append(*stack, neighbor)
	cascadeShift(row, next, ideal+sign, sign, stack, assigned)
}

// assignSequence pops stack from its far end (the neighbor gathered
// farthest from the originally-moved node) and lays its members out at
// consecutive integers starting at x, stepping by step each time - placing
// the farthest neighbor first and the originally-moved node last.
func assignSequence(stack []*dag.Node, x, step int) {
	for i := len(stack) - 1; i >= 0; i-- {
		stack[i].X = x
		x += step
	}
}
