package layout

import (
	"context"

	"github.com/emgraph/emgraph/pkg/dag"
	"github.com/emgraph/emgraph/pkg/dag/transform"
)

// layeredBackend runs the full Sugiyama-style normalization pipeline:
// self-reference removal, transitive reduction, level assignment, dummy
// insertion/removal, crossing reduction, coordinate refinement, and
// isolated-node placement.
type layeredBackend struct{}

func init() {
	Register("layered", layeredBackend{})
}

func (layeredBackend) Layout(ctx context.Context, g *dag.DAG, opts Options) error {
	_, err := transform.NormalizeWithOptions(g, transform.NormalizeOptions{
		Optimal:              opts.Optimal,
		MaxFanout:            opts.MaxFanout,
		MaxPermutations:      opts.MaxPermutations,
		CrossingIterations:   opts.ReduceTimes,
		CoordinateIterations: opts.CoordIters,
	})
	return err
}
