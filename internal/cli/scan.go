package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emgraph/emgraph/pkg/source/local"
)

// scanCommand creates the scan command, which ingests a directory of
// articles and prints (or writes) the resulting {name: Article} map without
// computing a layout.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		categoriesStr string
		output        string
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a directory of articles and print their dependency references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var categories []string
			if categoriesStr != "" {
				categories = strings.Split(categoriesStr, ",")
			} else {
				categories = local.Categories
			}
			return c.runScan(cmd.Context(), args[0], categories, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&categoriesStr, "categories", "", "comma-separated category subset (default: all)")

	return cmd
}

func (c *CLI) runScan(ctx context.Context, dir string, categories []string, output string) error {
	scanner := &local.DirScanner{Dir: dir, Categories: categories}
	articles, err := scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return err
	}

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := w.Write(data); err != nil {
		return err
	}

	printSuccess("Scanned %d articles", len(articles))
	if output != "" {
		printFile(output)
	}
	return nil
}
