package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/emgraph/emgraph/pkg/httpapi"
)

// serveCommand creates the serve command, which runs the HTTP API exposing
// the category-selection form and JSON/SVG graph endpoints for a directory.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noCache   bool
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve a directory's dependency graph over HTTP",
		Long: `Serve a directory's dependency graph over HTTP.

Exposes a category-selection form at "/", a JSON graph at "/api/graph",
and an SVG rendering at "/api/graph.svg".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cacheBackend{noCache: noCache, redisAddr: redisAddr})
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			server := httpapi.NewServer(runner, args[0], c.Logger)

			printInfo("Serving %s", args[0])
			printDetail("Listening on http://%s", addr)
			return http.ListenAndServe(addr, server.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "use a Redis cache at addr instead of the file cache, for sharing cache across instances")

	return cmd
}
