package transform

import "github.com/emgraph/emgraph/pkg/dag"

// AssignLayers assigns nodes to horizontal rows (levels) based on the
// longest reference chain rooted at each node.
//
// AssignLayers uses a longest-path algorithm via topological sort (Kahn's
// algorithm, run over the reverse adjacency) to compute row assignments.
// Each node is placed at one plus the maximum row of any node it
// references, ensuring that:
//   - Sinks (no outgoing edges - they reference nothing) are at row 0
//   - Every node sits at least one row above everything it references,
//     and exactly one row above the highest of those
//   - Each node is pushed as high as necessary to avoid a target conflict
//
// Existing row assignments in the DAG are overwritten.
//
// # Algorithm
//
// AssignLayers performs a topological traversal starting from the leaves
// of the reference graph:
//  1. Initialize all sinks (out-degree 0) at row 0 and add to queue
//  2. Process queue: for each node, assign its referencers to
//     max(current_row + 1)
//  3. Decrement out-degree counters; add newly zero-degree nodes to queue
//  4. Repeat until queue is empty
//
// # Cycles
//
// AssignLayers assumes the graph is acyclic; callers are expected to have
// rejected cyclic input during ingest (see [dag.DAG.HasCycle]) after
// self-reference removal. If a cycle somehow reaches this stage, nodes in
// it never reach zero out-degree and are never queued; a cycle node that
// no processed reference has raised keeps the Row it had before the call.
//
// # Nil Handling
//
// AssignLayers panics if g is nil. If g is empty (zero nodes), the function
// returns immediately.
//
// # Performance
//
// Time complexity is O(V + E), where V is nodes and E is edges. Space
// complexity is O(V) for the queue and row/degree maps.
func AssignLayers(g *dag.DAG) {
	nodes := g.Nodes()
	outDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.OutDegree(n.ID)
		outDegree[n.ID] = degree
		if degree == 0 {
			rows[n.ID] = 0
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, parent := range g.Parents(curr) {
			if row := rows[curr] + 1; row > rows[parent] {
				rows[parent] = row
			}
			outDegree[parent]--
			if outDegree[parent] == 0 {
				queue = append(queue, parent)
			}
		}
	}

	g.SetRows(rows)
}
