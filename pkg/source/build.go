package source

import (
	"math/rand"
	"sort"

	"github.com/emgraph/emgraph/pkg/dag"
)

// Build turns a scanned article map into a [dag.DAG]: one node per article,
// one edge per dependency reference. References to names absent from
// articles are dropped rather than rejected, matching the original
// environment scanner's "references to nonexistent nodes are omitted"
// behavior - an article's declared environment is allowed to mention
// articles outside the scanned set.
//
// Node insertion order is seeded rather than map-iteration order (which Go
// randomizes per run) so that layouts are reproducible across runs of the
// same input: names are sorted, then shuffled with a seeded PRNG, mirroring
// the original's shuffle_dict(random.seed(0)).
func Build(articles map[string]Article, seed int64) *dag.DAG {
	names := make([]string, 0, len(articles))
	for name := range articles {
		names = append(names, name)
	}
	sort.Strings(names)
	rand.New(rand.NewSource(seed)).Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	g := dag.New(nil)
	for _, name := range names {
		g.AddNode(dag.Node{ID: name, Row: -1, X: -1, Href: articles[name].URL})
	}
	for _, name := range names {
		for _, dep := range articles[name].DependencyArticles {
			if _, ok := articles[dep]; !ok {
				continue
			}
			g.AddEdge(dag.Edge{From: name, To: dep})
		}
	}
	return g
}
