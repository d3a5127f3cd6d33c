package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emgraph/emgraph/pkg/config"
	"github.com/emgraph/emgraph/pkg/layout"
	"github.com/emgraph/emgraph/pkg/sink"
	"github.com/emgraph/emgraph/pkg/source/local"
)

var validFormats = map[string]bool{"svg": true, "json": true}

// renderCommand creates the render command, which scans, lays out, and
// renders a directory's dependency graph to one or more sink formats.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath    string
		categoriesStr string
		formatsStr    string
		output        string
		noCache       bool
		redisAddr     string
		cfg           config.Config
	)

	cmd := &cobra.Command{
		Use:   "render [dir]",
		Short: "Render a directory's dependency graph to SVG or JSON",
		Args:  cobra.ExactArgs(1),
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

			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], cfg, formats, output, cacheBackend{noCache: noCache, redisAddr: redisAddr})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: derived from dir)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "use a Redis cache at addr instead of the file cache")
	cmd.Flags().StringVar(&categoriesStr, "categories", "", "comma-separated category subset (default: all)")
	cmd.Flags().StringVar(&cfg.Backend, "backend", "", "layout backend: layered (default), graphviz, force")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "seed permuting ingest order")

	return cmd
}

func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg' or 'json')", f)
		}
	}
	return nil
}

func (c *CLI) runRender(ctx context.Context, dir string, cfg config.Config, formats []string, output string, cacheOpts cacheBackend) error {
	runner, err := c.newRunner(cacheOpts)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	categories := cfg.Categories
	if len(categories) == 0 {
		categories = local.Categories
	}
	scanner := &local.DirScanner{Dir: dir, Categories: categories}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()
	out, err := runner.Run(ctx, dir, scanner, cfg.LayoutOptions())
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	base := output
	if base == "" {
		base = filepath.Base(strings.TrimRight(dir, "/"))
	}

	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := c.writeRendered(out, format, path); err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		printFile(path)
	}

	printSuccess("Render complete")
	printStats(len(out.Nodes), len(out.Edges), false)
	return nil
}

func (c *CLI) writeRendered(out layout.Output, format, path string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = sink.RenderJSON(out)
	case "svg":
		data, err = sink.RenderSVG(out, sink.SVGOptions{})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	w, err := openOutput(path)
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(data)
	return err
}
