package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys with an optional
// expiration. Implementations back the layout-result cache (keyed on a
// hash of the ingest input, [Keyer], and layout options) so repeat
// requests for the same graph skip re-running the layered layout pipeline.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys for the pipeline's three cacheable stages:
// the raw ingest scan, the normalized layout, and a rendered sink
// artifact. Separating these lets a cache hit at the layout stage be
// reused across multiple sink formats.
type Keyer interface {
	// HTTPKey scopes a raw HTTP response cache entry (used by sinks that
	// fetch remote assets) under a namespace.
	HTTPKey(namespace, key string) string
	// GraphKey identifies the graph produced by scanning scanDir with the
	// given options.
	GraphKey(scanDir string, opts GraphKeyOpts) string
	// LayoutKey identifies the normalized layout computed for a graph
	// (identified by graphHash, typically GraphKey's output) with the
	// given layout options.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered sink output for a layout
	// (identified by layoutHash) in the given format.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// GraphKeyOpts distinguishes graphs scanned from the same directory with
// different scan parameters.
type GraphKeyOpts struct {
	Categories []string
	Seed       int64
}

// LayoutKeyOpts distinguishes layouts of the same graph computed by
// different backends or seeds. It carries no other layout tunables.
type LayoutKeyOpts struct {
	Backend string
	Seed    int64
}

// ArtifactKeyOpts distinguishes rendered outputs of the same layout in
// different sink formats.
type ArtifactKeyOpts struct {
	Format string
}

// defaultKeyer builds keys by hashing the relevant components together,
// grounded on the teacher's hash-based keyer.
type defaultKeyer struct{}

// NewDefaultKeyer returns the standard unscoped [Keyer].
func NewDefaultKeyer() Keyer {
	return defaultKeyer{}
}

func (defaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

func (defaultKeyer) GraphKey(scanDir string, opts GraphKeyOpts) string {
	return hashKey("graph:"+scanDir, opts.Categories, opts.Seed)
}

func (defaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout:"+graphHash, opts.Backend, opts.Seed)
}

func (defaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+layoutHash, opts.Format)
}
