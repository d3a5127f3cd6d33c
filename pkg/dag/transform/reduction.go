package transform

import "github.com/emgraph/emgraph/pkg/dag"

// TransitiveReduction removes redundant edges that can be inferred through
// other paths. If A references B and B references C, then a direct A→C
// edge is redundant - A already reaches C through B - and is removed.
//
// # Algorithm
//
// For every node, TransitiveReduction computes the set of all nodes
// reachable from it (its "ancestors" in reference terms: everything it
// depends on, directly or indirectly), memoizing each node's set so it is
// computed only once no matter how many times it is requested. A direct
// edge node→target is then removed if target is also reachable from some
// other direct target of node - i.e. there is already a longer path to it.
//
// # Cycles
//
// TransitiveReduction assumes the graph is acyclic; callers are expected to
// have rejected cyclic input during ingest (see [dag.DAG.HasCycle]). As a
// defense against a cycle slipping through, the memoized recursion tracks
// nodes currently being computed and treats a re-entrant call as having no
// further ancestors, rather than recursing forever.
//
// # Nil Handling
//
// TransitiveReduction panics if g is nil. If g is empty (zero nodes), the
// function returns immediately.
//
// # Performance
//
// Each node's ancestor set is computed once and memoized, giving O(V+E)
// amortized set construction; the redundant-edge scan is O(E·F) where F is
// the average fan-out, since every pair of siblings under a node is checked.
func TransitiveReduction(g *dag.DAG) {
	ancestors := make(map[string]map[string]struct{}, g.NodeCount())
	inProgress := make(map[string]bool, g.NodeCount())

	var ancestorsOf func(id string) map[string]struct{}
	ancestorsOf = func(id string) map[string]struct{} {
		if set, ok := ancestors[id]; ok {
			return set
		}
		if inProgress[id] {
			return map[string]struct{}{}
		}
		inProgress[id] = true

		set := make(map[string]struct{})
		for _, child := range g.Children(id) {
			set[child] = struct{}{}
			for a := range ancestorsOf(child) {
				set[a] = struct{}{}
			}
		}

		inProgress[id] = false
		ancestors[id] = set
		return set
	}

	var toRemove []dag.Edge
	for _, n := range g.Nodes() {
		children := g.Children(n.ID)
		for _, target := range children {
			if reachableViaSibling(children, target, ancestorsOf) {
				toRemove = append(toRemove, dag.Edge{From: n.ID, To: target})
			}
		}
	}
	for _, e := range toRemove {
		g.RemoveEdge(e.From, e.To)
	}
}

func reachableViaSibling(children []string, target string, ancestorsOf func(string) map[string]struct{}) bool {
	for _, sibling := range children {
		if sibling == target {
			continue
		}
		if _, ok := ancestorsOf(sibling)[target]; ok {
			return true
		}
	}
	return false
}
