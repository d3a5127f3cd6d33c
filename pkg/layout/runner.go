package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/emgraph/emgraph/pkg/cache"
	"github.com/emgraph/emgraph/pkg/observability"
	"github.com/emgraph/emgraph/pkg/source"
	"github.com/emgraph/emgraph/pkg/source/local"
)

// Runner encapsulates scan-then-layout execution with caching. Both the
// CLI and the HTTP API use this so neither duplicates cache-key wiring.
//
// A Runner never holds a *dag.DAG across calls - every call to [Runner.Run]
// builds a fresh graph, computes its layout, and returns only the output
// table. This keeps the rule from spec.md's concurrency model ("one
// process owns the mutable graph for the duration of layout") trivially
// true: no two goroutines can ever share the same *dag.DAG, because none
// survives past a single Run call.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer. A nil cache
// disables caching (backed by [cache.NewNullCache]); a nil keyer uses
// [cache.NewDefaultKeyer]; a nil logger uses the package default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Run scans scanDir with scanner, then computes and returns its layout,
// caching both the scanned graph and the finished layout so repeat
// requests for the same directory and options skip straight to the cache.
func (r *Runner) Run(ctx context.Context, scanDir string, scanner source.Scanner, opts Options) (Output, error) {
	graphKey := r.Keyer.GraphKey(scanDir, cache.GraphKeyOpts{Categories: opts.Categories, Seed: opts.Seed})

	articles, hit, err := r.articles(ctx, graphKey, scanner)
	if err != nil {
		return Output{}, fmt.Errorf("scan: %w", err)
	}
	r.Logger.Info("scanned articles", "dir", scanDir, "count", len(articles), "cache_hit", hit)

	tunedGraphKey := fmt.Sprintf("%s:%d:%d:%d:%d:%t", graphKey,
		opts.ReduceTimes, opts.CoordIters, opts.MaxFanout, opts.MaxPermutations, opts.Optimal)
	layoutKey := r.Keyer.LayoutKey(tunedGraphKey, cache.LayoutKeyOpts{Backend: opts.Backend, Seed: opts.Seed})
	if data, hit, err := r.Cache.Get(ctx, layoutKey); err == nil && hit {
		var out Output
		if err := json.Unmarshal(data, &out); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			r.Logger.Info("layout cache hit", "key", layoutKey)
			return out, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	backendName := opts.Backend
	if backendName == "" {
		backendName = "layered"
	}
	observability.Pipeline().OnLayoutStart(ctx, backendName, len(articles))
	start := time.Now()
	out, err := Run(ctx, articles, opts)
	observability.Pipeline().OnLayoutComplete(ctx, backendName, time.Since(start), err)
	if err != nil {
		return Output{}, err
	}

	if data, err := json.Marshal(out); err == nil {
		_ = r.Cache.Set(ctx, layoutKey, data, 0)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}
	r.Logger.Info("computed layout", "nodes", len(out.Nodes), "edges", len(out.Edges))
	return out, nil
}

func (r *Runner) articles(ctx context.Context, graphKey string, scanner source.Scanner) (map[string]source.Article, bool, error) {
	if data, hit, err := r.Cache.Get(ctx, graphKey); err == nil && hit {
		var articles map[string]source.Article
		if err := json.Unmarshal(data, &articles); err == nil {
			observability.Cache().OnCacheHit(ctx, "graph")
			return articles, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "graph")

	observability.Pipeline().OnScanStart(ctx, graphKey)
	start := time.Now()
	articles, err := scanner.Scan(ctx)
	observability.Pipeline().OnScanComplete(ctx, graphKey, len(articles), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	if data, err := json.Marshal(articles); err == nil {
		_ = r.Cache.Set(ctx, graphKey, data, 0)
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}
	return articles, false, nil
}

// DirRunner is a convenience constructor that scans a local directory with
// [local.DirScanner] using its default conventions.
func DirRunner(r *Runner, dir string) func(ctx context.Context, opts Options) (Output, error) {
	return func(ctx context.Context, opts Options) (Output, error) {
		return r.Run(ctx, dir, &local.DirScanner{Dir: dir}, opts)
	}
}
