// Package transform provides graph transformations that prepare a DAG for
// layered layout.
//
// # Overview
//
// Real-world reference graphs rarely arrive in a form suitable for direct
// layered rendering. This package provides a normalization pipeline that
// transforms an arbitrary graph into a canonical form where:
//
//   - Self-references and cycles have been rejected or removed
//   - Redundant transitive edges are removed
//   - Every node sits in a row above everything it references
//   - Edges spanning several rows are subdivided into single-row hops while
//     crossings are reduced, then collapsed back into direct edges
//   - Rows are ordered to minimize edge crossings
//   - Every node, including edgeless ones, has a row and an X position
//
// [Normalize] applies the complete pipeline in the correct order.
//
// # Self-Reference and Cycle Handling
//
// [RemoveSelfReferences] drops edges from a node to itself, a common
// artifact of real ingest data. Any cycle surviving that pass is rejected
// outright via [dag.DAG.HasCycle] rather than repaired - this package never
// silently discards a reference to make a cyclic graph layout-able.
//
// # Transitive Reduction
//
// [TransitiveReduction] removes redundant edges that can be inferred
// through other paths. If A references B and B references C, a direct A→C
// edge adds nothing: A already reaches C through B.
//
// # Layer Assignment
//
// [AssignLayers] assigns each node a row equal to the length of the
// longest chain of references starting at it, so that nodes referencing
// nothing sit at row 0 and every node sits exactly one row above the
// highest node it directly references.
//
// # Dummy Insertion
//
// [InsertDummies] breaks edges spanning more than one row into chains of
// single-row hops through synthetic dummy nodes, so downstream crossing
// reduction only ever has to reason about adjacent rows:
//
//	Before: app (row 3) → core (row 0)
//	After:  app → dummy1 → dummy2 → core
//
// [RemoveDummies] and [CompactRows] reverse this once crossing reduction
// has run, collapsing each chain back into a single edge and closing the
// horizontal gaps left behind.
//
// # Crossing Reduction
//
// [ReduceCrossings] reorders each row using the barycenter heuristic:
// repeated upward and downward sweeps, each sorting a row by the mean
// position of its already-placed neighbors. [ReduceCrossingsOptimal] is
// the slower alternative, searching each row's permutation space
// exhaustively (bounded by a fanout and permutation-count cap) rather than
// settling for the heuristic's local optimum.
//
// # Coordinate Refinement
//
// [AssignCoordinates] nudges every node's X position toward the mean X of
// its neighbors, alternating upward and downward passes and pushing
// neighbors along a row when there's no room to move without displacing
// them - this is what turns a merely crossing-free layout into one with
// straight, readable edges.
//
// # Isolated Nodes
//
// [PlaceIsolatedNodes] gives a row and X position to nodes with no edges
// at all, which every earlier stage leaves untouched since they have
// nothing to be ordered relative to.
//
// # Usage
//
// For most use cases, call [Normalize] which applies all stages with
// default tuning:
//
//	result, err := transform.Normalize(g) // Modifies g in place
//
// For fine-grained control, use [NormalizeWithOptions] or apply stages
// individually in the order documented on [NormalizeWithOptions].
package transform
