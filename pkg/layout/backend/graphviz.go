// Package backend holds alternative [layout.Backend] implementations beyond
// the default layered one: a Graphviz-delegated layout and a force-directed
// one, both registered via side-effecting imports.
package backend

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/emgraph/emgraph/pkg/dag"
	"github.com/emgraph/emgraph/pkg/layout"
)

// Graphviz delegates level assignment and within-row ordering to dot's own
// layered layout engine, then reads the resulting node coordinates back into
// row/X positions instead of running the transform package's pipeline.
type Graphviz struct{}

func init() {
	layout.Register("graphviz", Graphviz{})
}

// Layout renders g as DOT, runs it through dot, and buckets the resulting
// node y-coordinates into rows (dot's own rank assignment) and x-coordinates
// into within-row ordinal positions.
func (Graphviz) Layout(ctx context.Context, g *dag.DAG, opts layout.Options) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(toDOT(g)))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.Format("plain"), &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	positions, err := parsePlain(buf.Bytes())
	if err != nil {
		return fmt.Errorf("parse plain layout: %w", err)
	}

	assignRowsAndX(g, positions)
	return nil
}

func toDOT(g *dag.DAG) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", n.ID)
	}
	for _, n := range g.Nodes() {
		for _, to := range g.Children(n.ID) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID, to)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

type point struct{ x, y float64 }

// parsePlain reads Graphviz's "plain" text output format:
//
//	graph scale width height
//	node name x y width height label style shape color fillcolor
//	edge ...
//	stop
//
// See the Graphviz output-formats documentation for the full grammar; only
// the node line's x/y fields are needed here.
func parsePlain(data []byte) (map[string]point, error) {
	positions := make(map[string]point)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] != "node" {
			continue
		}
		name := unquote(fields[1])
		x, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("node %s: bad x %q: %w", name, fields[2], err)
		}
		y, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("node %s: bad y %q: %w", name, fields[3], err)
		}
		positions[name] = point{x: x, y: y}
	}
	return positions, scanner.Err()
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

// assignRowsAndX buckets nodes by distinct y-coordinate into rows (dot's
// rank assignment, ascending y == ascending row since dot draws the
// referencer side of an edge above the referenced side under rankdir=TB)
// and orders nodes within a row by their x-coordinate.
func assignRowsAndX(g *dag.DAG, positions map[string]point) {
	ys := make([]float64, 0, len(positions))
	seen := make(map[float64]bool)
	for _, p := range positions {
		if !seen[p.y] {
			seen[p.y] = true
			ys = append(ys, p.y)
		}
	}
	sort.Float64s(ys)
	rowOf := make(map[float64]int, len(ys))
	for i, y := range ys {
		rowOf[y] = i
	}

	rows := make(map[int][]*dag.Node)
	for _, n := range g.Nodes() {
		p, ok := positions[n.ID]
		if !ok {
			continue
		}
		row := rowOf[p.y]
		rows[row] = append(rows[row], n)
	}

	for row, nodes := range rows {
		sort.Slice(nodes, func(i, j int) bool {
			return positions[nodes[i].ID].x < positions[nodes[j].ID].x
		})
		for x, n := range nodes {
			n.Row = row
			n.X = x
		}
	}
}
