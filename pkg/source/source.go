// Package source defines the ingest boundary: turning some external
// representation of named articles and their cross-references into the
// map shape the layout core consumes.
package source

import "context"

// Article is one named node as discovered by a [Scanner]: the set of other
// article names it references, and an opaque link used to annotate the
// resulting graph node.
type Article struct {
	DependencyArticles []string
	URL                string
}

// Scanner discovers a set of named articles and their cross-references.
// Implementations decide what "discovery" means - a directory walk, an API
// call, a database query - and return the result as a plain map so callers
// can build a graph without depending on the scanner's internals.
type Scanner interface {
	Scan(ctx context.Context) (map[string]Article, error)
}
