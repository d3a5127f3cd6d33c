// Package local implements a filesystem-backed [source.Scanner]: a directory
// of article files, each naming the other articles it references.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	serr "github.com/emgraph/emgraph/pkg/errors"
	"github.com/emgraph/emgraph/pkg/source"
)

// Categories are the reference-section labels the default extraction
// regexp recognizes, grounded on the original environment block's
// vocabulary.
var Categories = []string{
	"vocabularies", "constructors", "notations", "registrations",
	"theorems", "schemes", "definitions", "requirements", "expansions",
	"equalities",
}

// defaultReference matches a category label introducing a reference list,
// e.g. "theorems: FOO, BAR;" terminated by a semicolon.
var defaultReference = regexp.MustCompile(`(?s)(\w+)\s*:\s*([^;]*);`)

// sidecar is the per-node TOML metadata format ("emgraph.toml" by
// convention): article name to URL and category selection.
type sidecar struct {
	Nodes map[string]nodeMeta `toml:"nodes"`
}

type nodeMeta struct {
	URL        string   `toml:"url"`
	Categories []string `toml:"categories"`
}

// DirScanner walks a directory of article files, one file per node, and
// extracts that node's dependency list from a references section.
//
// Article names are derived from the file's base name, uppercased with the
// extension stripped, matching the original environment's naming
// convention (tarski.art -> TARSKI).
type DirScanner struct {
	// Dir is the directory to walk. Required.
	Dir string
	// Ext is the file extension to match, including the leading dot.
	// Defaults to ".art".
	Ext string
	// Reference extracts category -> reference-list pairs from a file's
	// contents. Defaults to a regexp matching "category: NAME, NAME;".
	Reference func(contents string) map[string][]string
	// Categories restricts extraction to this set; empty means all of
	// [Categories] are accepted. A category outside both this set and
	// [Categories] is reported as [serr.ErrCodeUnknownCategory].
	Categories []string
	// SidecarName is the TOML metadata file read from Dir for per-node
	// URLs and category overrides. Defaults to "emgraph.toml".
	SidecarName string
}

// Scan implements [source.Scanner].
func (d *DirScanner) Scan(ctx context.Context) (map[string]source.Article, error) {
	if d.Dir == "" {
		return nil, serr.New(serr.ErrCodeInvalidInput, "DirScanner.Dir must not be empty")
	}
	ext := d.Ext
	if ext == "" {
		ext = ".art"
	}
	sidecarName := d.SidecarName
	if sidecarName == "" {
		sidecarName = "emgraph.toml"
	}
	allowed := d.Categories
	if len(allowed) == 0 {
		allowed = Categories
	}
	allowedSet := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		allowedSet[c] = true
	}
	extract := d.Reference
	if extract == nil {
		extract = extractDefault
	}

	var meta sidecar
	sidecarPath := filepath.Join(d.Dir, sidecarName)
	if data, err := os.ReadFile(sidecarPath); err == nil {
		if _, err := toml.Decode(string(data), &meta); err != nil {
			return nil, serr.Wrap(serr.ErrCodeInvalidInput, err, "parsing %s", sidecarPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, serr.Wrap(serr.ErrCodeInvalidInput, err, "reading %s", sidecarPath)
	}

	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, serr.Wrap(serr.ErrCodeInvalidInput, err, "reading directory %s", d.Dir)
	}

	articles := make(map[string]source.Article)
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}

		name := articleName(entry.Name())
		nm := meta.Nodes[name]

		nodeCategories := nm.Categories
		if len(nodeCategories) == 0 {
			nodeCategories = allowed
		}
		for _, c := range nodeCategories {
			if !containsCategory(Categories, c) {
				return nil, serr.New(serr.ErrCodeUnknownCategory, "article %s: unknown category %q", name, c)
			}
		}

		path := filepath.Join(d.Dir, entry.Name())
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, serr.Wrap(serr.ErrCodeInvalidInput, err, "reading article %s", path)
		}

		byCategory := extract(string(contents))
		seen := make(map[string]bool)
		var deps []string
		for _, category := range nodeCategories {
			if !allowedSet[category] {
				continue
			}
			for _, ref := range byCategory[category] {
				ref = strings.ToUpper(strings.TrimSpace(ref))
				if ref == "" || ref == name || seen[ref] {
					continue
				}
				seen[ref] = true
				deps = append(deps, ref)
			}
		}
		sort.Strings(deps)

		url := nm.URL
		if url == "" {
			url = defaultURL(entry.Name())
		}
		articles[name] = source.Article{DependencyArticles: deps, URL: url}
	}

	return articles, nil
}

func containsCategory(set []string, c string) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

// extractDefault extracts category -> reference-list pairs using
// [defaultReference], discarding unrecognized category labels silently
// (category validation happens against the node's configured category
// list, not against every label a file happens to contain).
func extractDefault(contents string) map[string][]string {
	out := make(map[string][]string)
	for _, m := range defaultReference.FindAllStringSubmatch(contents, -1) {
		category := strings.ToLower(strings.TrimSpace(m[1]))
		fields := strings.FieldsFunc(m[2], func(r rune) bool {
			return r == ',' || r == '\n' || r == '\t' || r == ' '
		})
		out[category] = append(out[category], fields...)
	}
	return out
}

func articleName(filename string) string {
	base := filename[:len(filename)-len(filepath.Ext(filename))]
	return strings.ToUpper(base)
}

func defaultURL(filename string) string {
	return fmt.Sprintf("file://%s", filename)
}
