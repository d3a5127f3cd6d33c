package layout

import (
	"context"
	"testing"

	"github.com/emgraph/emgraph/pkg/cache"
	"github.com/emgraph/emgraph/pkg/source"
)

type fakeScanner struct {
	calls    int
	articles map[string]source.Article
}

func (f *fakeScanner) Scan(ctx context.Context) (map[string]source.Article, error) {
	f.calls++
	return f.articles, nil
}

func TestRunner_CachesScanAndLayout(t *testing.T) {
	dir := t.TempDir()

	scanner := &fakeScanner{articles: map[string]source.Article{
		"app": {DependencyArticles: []string{"lib"}},
		"lib": {},
	}}

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)

	out1, err := r.Run(context.Background(), dir, scanner, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	out2, err := r.Run(context.Background(), dir, scanner, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if scanner.calls != 1 {
		t.Errorf("scanner.calls = %d, want 1 (second run should hit cache)", scanner.calls)
	}
	if len(out1.Nodes) != len(out2.Nodes) {
		t.Errorf("cached output differs: %v vs %v", out1, out2)
	}
}
