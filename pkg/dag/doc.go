// Package dag provides a directed acyclic graph optimized for row-based
// layered layouts of dependency graphs.
//
// # Overview
//
// emgraph's layered engine renders a graph of named articles (nodes) and
// their cross-references (edges) as a set of horizontal rows, one per level.
// An edge From → To means "From references To"; To is a dependency of From.
// After level assignment, a node's row is always strictly greater than the
// row of anything it references — a leaf that references nothing sits at
// row 0, and references accumulate height as you walk back toward whatever
// cites them.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]. Edges may connect any two existing nodes at ingest time;
// [DAG.Validate] enforces the row-consecutive invariant once levels have
// been assigned (From.Row == To.Row+1).
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "core"})
//	g.AddNode(dag.Node{ID: "lib"})
//	g.AddEdge(dag.Edge{From: "lib", To: "core"}) // lib references core
//
// Query the graph structure with [DAG.Children] (outgoing references),
// [DAG.Parents] (incoming references), [DAG.NodesInRow], and related methods.
//
// # Node Kinds
//
// [NodeKindRegular] nodes come from ingest. [NodeKindDummy] nodes are
// synthetic, inserted by the dummy-insertion stage to break edges that span
// more than one row into a chain of rank-1 edges; they are removed again
// once crossing reduction has run, before coordinate refinement starts
// (see [transform]).
//
// # Edge Crossings
//
// [CountCrossings] and [CountLayerCrossings] count edge crossings between
// adjacent rows using a Fenwick tree (binary indexed tree) for O(E log V)
// performance, used by tests and by the optional PQ-tree-backed ordering
// mode to score candidate row orderings.
//
// # Metadata
//
// Both nodes and the graph itself support arbitrary metadata via [Metadata]
// maps, never interpreted by this package or [transform] — callers use it to
// carry rendering hints (URLs, descriptions, stars) through the pipeline.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. The layout pipeline is
// single-threaded and synchronous by design (see [transform]); callers must
// synchronize access if they share a graph across goroutines.
//
// [transform]: github.com/emgraph/emgraph/pkg/dag/transform
// [perm]: github.com/emgraph/emgraph/pkg/dag/perm
package dag
