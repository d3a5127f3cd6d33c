// Package layout is the orchestrator: it turns ingested articles into a
// graph, dispatches to a registered layout [Backend], and assembles the
// result into the output table downstream sinks consume. It is the direct
// analogue of the teacher's pkg/pipeline, reworked around this system's
// layered-layout semantics rather than tower packing.
package layout

import (
	"context"

	"github.com/emgraph/emgraph/pkg/dag"
	serr "github.com/emgraph/emgraph/pkg/errors"
	"github.com/emgraph/emgraph/pkg/source"
)

// Options controls layout computation. The zero value selects the
// "layered" backend with the package defaults.
type Options struct {
	// Seed permutes ingest key order before building the graph, so that
	// layout is reproducible across runs of the same input up to
	// tie-breaking (spec's ingest order control).
	Seed int64
	// Categories restricts a [Runner] scan to this subset, and participates
	// in its cache key so different selections don't collide. Unused by
	// [Run] itself, which operates on already-scanned articles.
	Categories []string
	// Backend names the registered [Backend] to dispatch to. Empty
	// defaults to "layered".
	Backend string
	// ReduceTimes is the number of barycenter crossing-reduction sweeps.
	// Zero uses the layered backend's default (50).
	ReduceTimes int
	// CoordIters is the number of coordinate-refinement passes. Zero uses
	// the layered backend's default (2).
	CoordIters int
	// MaxFanout bounds the row width [transform.ReduceCrossingsOptimal]
	// will search exhaustively when Optimal is set.
	MaxFanout int
	// MaxPermutations bounds the permutation search per row when Optimal
	// is set. Zero uses the transform package's default.
	MaxPermutations int
	// Optimal requests permutation-search crossing reduction instead of
	// barycenter sweeps alone.
	Optimal bool
}

// NodeOutput is one node's placement in the assembled output table,
// matching spec.md's {href, x, y, is_dummy} shape exactly.
type NodeOutput struct {
	Href    string `json:"href"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	IsDummy bool   `json:"is_dummy"`
}

// Edge is a rendered reference between two nodes in the output table.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Output is the assembled result of a layout run: every node's placement
// plus the edge list, the shape every [pkg/sink] consumes.
type Output struct {
	Nodes map[string]NodeOutput `json:"nodes"`
	Edges []Edge                `json:"edges"`
}

// Backend computes Row/X coordinates for every node of g in place. g's
// rows need not be assigned on entry - backends are responsible for their
// own level assignment where their algorithm calls for it.
type Backend interface {
	Layout(ctx context.Context, g *dag.DAG, opts Options) error
}

var backends = map[string]Backend{}

// Register adds a named backend to the registry. Intended to be called
// from package init functions in backend implementations.
func Register(name string, b Backend) {
	backends[name] = b
}

// Run scans articles into a graph (via [source.Build]) and computes its
// layout, dispatching to the backend named by opts.Backend ("layered" if
// empty). Returns [serr.ErrCodeUnknownLayout] if the name is not registered.
func Run(ctx context.Context, articles map[string]source.Article, opts Options) (Output, error) {
	name := opts.Backend
	if name == "" {
		name = "layered"
	}
	backend, ok := backends[name]
	if !ok {
		return Output{}, serr.New(serr.ErrCodeUnknownLayout, "unknown layout backend %q", name)
	}

	g := source.Build(articles, opts.Seed)
	if err := backend.Layout(ctx, g, opts); err != nil {
		return Output{}, err
	}
	return assemble(g), nil
}

func assemble(g *dag.DAG) Output {
	nodes := make(map[string]NodeOutput, g.NodeCount())
	for _, n := range g.Nodes() {
		nodes[n.ID] = NodeOutput{Href: n.Href, X: n.X, Y: n.Row, IsDummy: n.IsDummy()}
	}

	var edges []Edge
	for _, n := range g.Nodes() {
		for _, to := range g.Children(n.ID) {
			edges = append(edges, Edge{From: n.ID, To: to})
		}
	}

	return Output{Nodes: nodes, Edges: edges}
}
