// Package sink renders a finished [layout.Output] into an external format:
// JSON for API/browser consumers, SVG for a standalone image. Grounded on
// the teacher's pkg/render/tower/sink, trimmed to this domain's flatter
// output shape (no blocks, merging, or Nebraska panels).
package sink

import (
	"encoding/json"

	"github.com/emgraph/emgraph/pkg/layout"
)

type jsonOutput struct {
	Nodes map[string]jsonNode `json:"nodes"`
	Edges []jsonEdge          `json:"edges"`
}

type jsonNode struct {
	Href    string `json:"href,omitempty"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	IsDummy bool   `json:"is_dummy,omitempty"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RenderJSON exports a layout as a pretty-printed JSON document: the
// primary interchange format between the CLI/HTTP layer and any external
// renderer, and the shape cached by [pkg/layout.Runner] for re-rendering
// without recomputing the layout.
func RenderJSON(out layout.Output) ([]byte, error) {
	nodes := make(map[string]jsonNode, len(out.Nodes))
	for id, n := range out.Nodes {
		nodes[id] = jsonNode{Href: n.Href, X: n.X, Y: n.Y, IsDummy: n.IsDummy}
	}

	edges := make([]jsonEdge, len(out.Edges))
	for i, e := range out.Edges {
		edges[i] = jsonEdge{From: e.From, To: e.To}
	}

	return json.MarshalIndent(jsonOutput{Nodes: nodes, Edges: edges}, "", "  ")
}
