package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	serr "github.com/emgraph/emgraph/pkg/errors"
)

func writeArticle(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func TestDirScanner_ExtractsReferencesByCategory(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "tower.art", "theorems: TARSKI, XBOOLE_0;\nrequirements: SUBSET;\nbegin\n")
	writeArticle(t, dir, "tarski.art", "begin\n")
	writeArticle(t, dir, "xboole_0.art", "begin\n")
	writeArticle(t, dir, "subset.art", "begin\n")

	s := &DirScanner{Dir: dir}
	articles, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	tower, ok := articles["TOWER"]
	if !ok {
		t.Fatalf("articles missing TOWER, got %v", articles)
	}
	want := map[string]bool{"TARSKI": true, "XBOOLE_0": true, "SUBSET": true}
	if len(tower.DependencyArticles) != len(want) {
		t.Fatalf("TOWER.DependencyArticles = %v, want %v", tower.DependencyArticles, want)
	}
	for _, d := range tower.DependencyArticles {
		if !want[d] {
			t.Errorf("unexpected dependency %q", d)
		}
	}
}

func TestDirScanner_UnknownCategoryInSidecarIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "tower.art", "begin\n")
	writeArticle(t, dir, "emgraph.toml", "[nodes.TOWER]\ncategories = [\"bogus\"]\n")

	s := &DirScanner{Dir: dir}
	_, err := s.Scan(context.Background())
	if !serr.Is(err, serr.ErrCodeUnknownCategory) {
		t.Fatalf("Scan() error = %v, want ErrCodeUnknownCategory", err)
	}
}

func TestDirScanner_SidecarOverridesURL(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "tower.art", "begin\n")
	writeArticle(t, dir, "emgraph.toml", "[nodes.TOWER]\nurl = \"https://example.org/tower\"\n")

	s := &DirScanner{Dir: dir}
	articles, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if articles["TOWER"].URL != "https://example.org/tower" {
		t.Errorf("TOWER.URL = %q, want sidecar override", articles["TOWER"].URL)
	}
}

func TestDirScanner_IgnoresNonMatchingExtensions(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "tower.art", "begin\n")
	writeArticle(t, dir, "README.md", "not an article")

	s := &DirScanner{Dir: dir}
	articles, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("articles = %v, want exactly TOWER", articles)
	}
}
