// Package pkg provides the core libraries for laying out article
// dependency graphs.
//
// # Overview
//
// emgraph scans a directory of articles (each naming the other articles it
// references), builds their dependency graph, and computes a layered layout
// for visualization - one row per dependency depth, increasing upward from
// articles that reference nothing. The pkg directory is organized into four
// areas:
//
//  1. Ingest ([source], [source/local])
//  2. Graph Data Structures ([dag], [dag/transform], [dag/perm])
//  3. Layout ([layout], [layout/backend])
//  4. Output ([sink], [httpapi])
//
// # Architecture
//
// The typical data flow:
//
//	Directory of article files
//	         ↓
//	    [source/local] package (scan references into [source.Article])
//	         ↓
//	    [source] package (build a *dag.DAG, seeded shuffle)
//	         ↓
//	    [layout] package (dispatch to a registered [layout.Backend])
//	         ↓
//	    [sink] package (JSON / SVG output)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/emgraph/emgraph/pkg/layout"
//	    "github.com/emgraph/emgraph/pkg/source/local"
//	    _ "github.com/emgraph/emgraph/pkg/layout/backend" // register graphviz, force
//	)
//
//	scanner := &local.DirScanner{Dir: "/path/to/articles"}
//	runner := layout.NewRunner(cache.NewNullCache(), nil, nil)
//	out, _ := runner.Run(context.Background(), scanner.Dir, scanner, layout.Options{})
//
// # Main Packages
//
// ## Ingest
//
// [source] - The [source.Scanner] interface and [source.Build], which
// assembles scanned articles into a *dag.DAG with a seeded key shuffle.
//
// [source/local] - A filesystem [source.Scanner]: one article per file, a
// references section per category, and an optional TOML sidecar for URL and
// category overrides.
//
// ## Graph Data Structures
//
// [dag] - Directed acyclic graph optimized for row-based layered layouts.
// Row 0 holds nodes that reference nothing; rows increase toward
// referencers.
//
// [dag/transform] - Transitive reduction, row assignment, dummy-node
// subdivision for multi-row edges, and crossing-reduction ordering
// (barycentric or permutation-search).
//
// [dag/perm] - Permutation generation backing the small-row exhaustive
// ordering search.
//
// ## Layout
//
// [layout] - The orchestrator: builds the graph, dispatches to a registered
// [layout.Backend], and assembles {href, x, y, is_dummy} per node.
//
//   - [layout]: "layered" backend (barycenter sweeps + coordinate refinement)
//   - [layout/backend]: "graphviz" (dot-delegated) and "force" (Fruchterman-Reingold)
//
// ## Output
//
// [sink] - Renders a finished [layout.Output] to JSON or a minimal SVG.
//
// [httpapi] - An HTTP server exposing a category-selection form and the
// JSON/SVG sinks over a chi router.
//
// ## Ambient
//
// [cache] - Layout-result caching (file, Redis, Mongo-backed artifact
// store) keyed on scan directory, categories, seed, and backend.
//
// [config] - TOML + flag-driven [layout.Options] construction.
//
// [errors] - The structured [errors.Code] taxonomy shared by every layer.
//
// [observability] - Pipeline/cache/HTTP hooks for external instrumentation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/dag/...                # Specific package
//
// [source]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/source
// [source/local]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/source/local
// [dag]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/dag/transform
// [dag/perm]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/dag/perm
// [layout]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/layout
// [layout/backend]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/layout/backend
// [sink]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/sink
// [httpapi]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/httpapi
// [cache]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/cache
// [config]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/emgraph/emgraph/pkg/observability
package pkg
