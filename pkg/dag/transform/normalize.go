package transform

import (
	"github.com/emgraph/emgraph/pkg/dag"
	serr "github.com/emgraph/emgraph/pkg/errors"
)

// NormalizeOptions configures which stages [NormalizeWithOptions] runs.
type NormalizeOptions struct {
	// SkipTransitiveReduction leaves redundant edges (A→C when A→B→C also
	// exists) in place instead of removing them.
	SkipTransitiveReduction bool

	// Optimal switches crossing reduction from the fast barycenter
	// heuristic to the bounded exhaustive per-row search (see
	// [ReduceCrossingsOptimal]).
	Optimal bool

	// MaxFanout bounds the row size [ReduceCrossingsOptimal] will search
	// exhaustively; rows larger than this fall back to the heuristic.
	// Only consulted when Optimal is true. Defaults to 8 if <= 0.
	MaxFanout int

	// MaxPermutations bounds how many orderings [ReduceCrossingsOptimal]
	// tries per row before giving up and keeping its best so far. Only
	// consulted when Optimal is true. Defaults to 40320 (8!) if <= 0.
	MaxPermutations int

	// CrossingIterations controls how many upward/downward sweeps
	// [ReduceCrossings] runs. Defaults to 50 if <= 0. Ignored when Optimal
	// is true.
	CrossingIterations int

	// CoordinateIterations controls how many refinement passes
	// [AssignCoordinates] runs. Defaults to 2 if <= 0.
	CoordinateIterations int
}

// TransformResult reports what a call to [Normalize] or
// [NormalizeWithOptions] did to a graph.
type TransformResult struct {
	SelfReferencesRemoved  int // Edges from a node to itself removed
	TransitiveEdgesRemoved int // Redundant edges removed
	DummiesInserted        int // Synthetic nodes added to subdivide long edges
	DummiesRemoved         int // Synthetic nodes removed once their chains collapsed
	IsolatedNodesPlaced    int // Edgeless nodes given a row and X position
	MaxRow                 int // Highest row index in the finished layout
}

// Normalize prepares a DAG for layout by applying the full transformation
// pipeline with default options. See [NormalizeWithOptions] for the stage
// sequence and for how to tune or skip individual stages.
func Normalize(g *dag.DAG) (*TransformResult, error) {
	return NormalizeWithOptions(g, NormalizeOptions{})
}

// NormalizeWithOptions prepares a DAG for layout by applying, in order:
//
//  1. [RemoveSelfReferences]: drop edges from a node to itself.
//  2. A cycle check (see [dag.DAG.HasCycle]): any remaining cycle is
//     rejected rather than repaired.
//  3. [TransitiveReduction]: drop redundant edges (unless
//     opts.SkipTransitiveReduction).
//  4. [AssignLayers]: assign every node a row.
//  5. [InsertDummies]: subdivide edges spanning more than one row.
//  6. [ReduceCrossings] or [ReduceCrossingsOptimal], depending on
//     opts.Optimal: reorder each row to reduce edge crossings.
//  7. [RemoveDummies] then [CompactRows]: collapse dummy chains back into
//     direct edges and close the resulting gaps.
//  8. [AssignCoordinates]: refine X positions toward neighbors.
//  9. [PlaceIsolatedNodes]: give edgeless nodes a row and X position.
//
// This order is load-bearing: cycles must be rejected before transitive
// reduction (which assumes acyclicity), layers must exist before edges can
// be subdivided, and dummies must exist before crossing reduction can
// route long edges around other nodes.
//
// # Return Value
//
// NormalizeWithOptions returns a [TransformResult] with metrics about the
// transformation, useful for logging and diagnosing unusually tangled
// input.
//
// # Errors
//
// Returns an [*errors.Error] with code [errors.ErrCodeInvalidInput] if g
// contains a cycle that self-reference removal didn't clear.
//
// # Nil Handling
//
// NormalizeWithOptions panics if g is nil. An empty DAG returns zero
// metrics and a nil error.
//
// # Performance
//
// Complexity is dominated by transitive reduction, O(V+E) amortized with
// an O(E·F) redundant-edge scan (F = average fan-out), and by crossing
// reduction, O(iterations·E) for the heuristic or up to O(iterations·F!)
// per wide row when opts.Optimal is set.
func NormalizeWithOptions(g *dag.DAG, opts NormalizeOptions) (*TransformResult, error) {
	result := &TransformResult{}

	result.SelfReferencesRemoved = RemoveSelfReferences(g)
	if err := g.HasCycle(); err != nil {
		return nil, serr.Wrap(serr.ErrCodeInvalidInput, err, "graph must be acyclic after self-reference removal")
	}

	if !opts.SkipTransitiveReduction {
		edgesBefore := g.EdgeCount()
		TransitiveReduction(g)
		result.TransitiveEdgesRemoved = edgesBefore - g.EdgeCount()
	}

	AssignLayers(g)

	nodesBefore := g.NodeCount()
	InsertDummies(g, NewDummyCounter(g))
	result.DummiesInserted = g.NodeCount() - nodesBefore

	if opts.Optimal {
		ReduceCrossingsOptimal(g, opts.MaxFanout, opts.MaxPermutations)
	} else {
		ReduceCrossings(g, opts.CrossingIterations)
	}

	nodesBefore = g.NodeCount()
	RemoveDummies(g)
	result.DummiesRemoved = nodesBefore - g.NodeCount()
	CompactRows(g)

	AssignCoordinates(g, opts.CoordinateIterations)

	result.IsolatedNodesPlaced = len(g.Isolated())
	PlaceIsolatedNodes(g)

	result.MaxRow = g.MaxRow()

	return result, nil
}
