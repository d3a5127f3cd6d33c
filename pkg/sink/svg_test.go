package sink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emgraph/emgraph/pkg/layout"
)

func TestRenderSVG_DrawsBoxesAndLines(t *testing.T) {
	out := layout.Output{
		Nodes: map[string]layout.NodeOutput{
			"app": {Href: "http://app", X: 0, Y: 1},
			"lib": {Href: "http://lib", X: 0, Y: 0},
		},
		Edges: []layout.Edge{{From: "app", To: "lib"}},
	}

	svg, err := RenderSVG(out, SVGOptions{})
	require.NoError(t, err)

	s := string(svg)
	require.True(t, strings.HasPrefix(s, "<svg"))
	require.GreaterOrEqual(t, strings.Count(s, "<rect"), 2)
	require.Contains(t, s, "<line")
	require.Contains(t, s, `href="http://app"`)
}

func TestRenderSVG_DummyNodeRendersAsCircle(t *testing.T) {
	out := layout.Output{
		Nodes: map[string]layout.NodeOutput{
			"dummy1": {X: 0, Y: 0, IsDummy: true},
		},
	}
	svg, err := RenderSVG(out, SVGOptions{})
	require.NoError(t, err)
	require.Contains(t, string(svg), "<circle")
}
