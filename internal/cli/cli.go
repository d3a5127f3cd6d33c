// Package cli implements the emgraph command-line interface: scanning a
// directory of articles, computing their layout, rendering the result, and
// serving it over HTTP.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/emgraph/emgraph/pkg/buildinfo"
	"github.com/emgraph/emgraph/pkg/cache"
	"github.com/emgraph/emgraph/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "emgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "emgraph",
		Short:        "emgraph lays out article dependency graphs as layered towers",
		Long:         `emgraph scans a directory of articles, builds their dependency graph, and computes a layered layout for visualization.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheBackend selects the [cache.Cache] implementation newRunner builds.
type cacheBackend struct {
	noCache   bool
	redisAddr string
}

// newRunner creates a layout runner for CLI use, backed by the cache
// selected by opts (file cache by default).
func (c *CLI) newRunner(opts cacheBackend) (*layout.Runner, error) {
	ca, err := newCache(opts)
	if err != nil {
		return nil, err
	}
	return layout.NewRunner(ca, nil, c.Logger), nil
}

func newCache(opts cacheBackend) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisAddr != "":
		return cache.NewRedisCache(opts.redisAddr)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using the XDG standard (~/.cache/emgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
