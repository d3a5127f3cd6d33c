package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/emgraph/emgraph/pkg/layout"
)

// SVGOptions configures [RenderSVG]'s pixel layout. The zero value is
// replaced with sensible defaults.
type SVGOptions struct {
	// UnitWidth/UnitHeight are the pixel size of one (x, row) grid cell.
	UnitWidth  float64
	UnitHeight float64
	// Margin pads the drawing on every side.
	Margin float64
}

func (o SVGOptions) withDefaults() SVGOptions {
	if o.UnitWidth == 0 {
		o.UnitWidth = 160
	}
	if o.UnitHeight == 0 {
		o.UnitHeight = 70
	}
	if o.Margin == 0 {
		o.Margin = 20
	}
	return o
}

const (
	boxWidthFrac  = 0.8
	boxHeightFrac = 0.6
	dummyRadius   = 4
)

// RenderSVG draws a minimal node-link diagram: one rectangle per node at
// (x*UnitWidth, y*UnitHeight), offset so row 0 (references nothing) sits at
// the bottom of the image, with a line per edge. Dummy nodes (subdividers
// inserted by the layered backend) are rendered as small dashed circles
// instead of labeled boxes, matching the teacher's nodelink renderer's
// treatment of subdividers.
func RenderSVG(out layout.Output, opts SVGOptions) ([]byte, error) {
	opts = opts.withDefaults()

	maxRow, maxX := bounds(out)
	width := opts.Margin*2 + float64(maxX+1)*opts.UnitWidth
	height := opts.Margin*2 + float64(maxRow+1)*opts.UnitHeight

	center := func(n layout.NodeOutput) (float64, float64) {
		cx := opts.Margin + (float64(n.X)+0.5)*opts.UnitWidth
		cy := height - opts.Margin - (float64(n.Y)+0.5)*opts.UnitHeight
		return cx, cy
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString("  <rect width=\"100%\" height=\"100%\" fill=\"white\"/>\n")

	for _, e := range out.Edges {
		from, ok1 := out.Nodes[e.From]
		to, ok2 := out.Nodes[e.To]
		if !ok1 || !ok2 {
			continue
		}
		x1, y1 := center(from)
		x2, y2 := center(to)
		fmt.Fprintf(&buf, "  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#888\" stroke-width=\"1.5\"/>\n",
			x1, y1, x2, y2)
	}

	for id, n := range out.Nodes {
		cx, cy := center(n)
		if n.IsDummy {
			fmt.Fprintf(&buf, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%d\" fill=\"#ddd\" stroke=\"#999\" stroke-dasharray=\"2,2\"/>\n",
				cx, cy, dummyRadius)
			continue
		}
		renderBox(&buf, id, n, cx, cy, opts)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderBox(buf *bytes.Buffer, id string, n layout.NodeOutput, cx, cy float64, opts SVGOptions) {
	w := opts.UnitWidth * boxWidthFrac
	h := opts.UnitHeight * boxHeightFrac
	x := cx - w/2
	y := cy - h/2

	if n.Href != "" {
		fmt.Fprintf(buf, "  <a href=%q>\n", n.Href)
	}
	fmt.Fprintf(buf, "    <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"4\" fill=\"white\" stroke=\"#333\" stroke-width=\"1.5\"/>\n",
		x, y, w, h)
	fmt.Fprintf(buf, "    <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" dominant-baseline=\"middle\" font-family=\"sans-serif\" font-size=\"13\">%s</text>\n",
		cx, cy, html.EscapeString(id))
	if n.Href != "" {
		buf.WriteString("  </a>\n")
	}
}

func bounds(out layout.Output) (maxRow, maxX int) {
	for _, n := range out.Nodes {
		if n.Y > maxRow {
			maxRow = n.Y
		}
		if n.X > maxX {
			maxX = n.X
		}
	}
	return maxRow, maxX
}
