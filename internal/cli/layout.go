package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emgraph/emgraph/pkg/config"
	"github.com/emgraph/emgraph/pkg/source/local"
)

// layoutCommand creates the layout command for computing a dependency graph's layout.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		configPath    string
		categoriesStr string
		output        string
		noCache       bool
		redisAddr     string
		cfg           config.Config
	)

	cmd := &cobra.Command{
		Use:   "layout [dir]",
		Short: "Scan a directory of articles and compute its layered layout",
		Long: `Scan a directory of articles and compute its layered layout.

The layout command reads every article file under dir, builds the
dependency graph from their reference lists, and computes node positions
using the registered backend (layered, graphviz, or force). Results are
cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = mergeConfig(fileCfg, cfg)
			if categoriesStr != "" {
				cfg.Categories = strings.Split(categoriesStr, ",")
			}
			cfg.SetDefaults()
			return c.runLayout(cmd.Context(), args[0], cfg, output, cacheBackend{noCache: noCache, redisAddr: redisAddr})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "use a Redis cache at addr instead of the file cache")
	cmd.Flags().StringVar(&categoriesStr, "categories", "", "comma-separated category subset (default: all)")
	cmd.Flags().StringVar(&cfg.Backend, "backend", "", "layout backend: layered (default), graphviz, force")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "seed permuting ingest order")
	cmd.Flags().IntVar(&cfg.ReduceTimes, "reduce-times", 0, "barycenter crossing-reduction sweeps")
	cmd.Flags().IntVar(&cfg.CoordIters, "coord-iters", 0, "coordinate-refinement passes")
	cmd.Flags().BoolVar(&cfg.Optimal, "optimal", false, "use permutation-search crossing reduction")

	return cmd
}

// mergeConfig layers flag-set fields of flags on top of the fields loaded
// from file, the teacher's "flags override file" rule.
func mergeConfig(file, flags config.Config) config.Config {
	merged := file
	if flags.Backend != "" {
		merged.Backend = flags.Backend
	}
	if flags.Seed != 0 {
		merged.Seed = flags.Seed
	}
	if flags.ReduceTimes != 0 {
		merged.ReduceTimes = flags.ReduceTimes
	}
	if flags.CoordIters != 0 {
		merged.CoordIters = flags.CoordIters
	}
	if flags.Optimal {
		merged.Optimal = true
	}
	return merged
}

func (c *CLI) runLayout(ctx context.Context, dir string, cfg config.Config, output string, cacheOpts cacheBackend) error {
	runner, err := c.newRunner(cacheOpts)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	categories := cfg.Categories
	if len(categories) == 0 {
		categories = local.Categories
	}
	scanner := &local.DirScanner{Dir: dir, Categories: categories}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", cfg.Backend))
	spinner.Start()

	out, err := runner.Run(ctx, dir, scanner, cfg.LayoutOptions())
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	w, err := openOutput(output)
	if err != nil {
		return fmt.Errorf("open output %s: %w", output, err)
	}
	defer w.Close()
	if _, err := w.Write(data); err != nil {
		return err
	}

	printSuccess("Layout complete")
	if output != "" {
		printFile(output)
	}
	printStats(len(out.Nodes), len(out.Edges), false)
	printNewline()
	printNextStep("Render", "emgraph render "+dir)

	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
