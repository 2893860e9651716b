package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nox-robotics/topograph/coord"
	"github.com/nox-robotics/topograph/geom"
	"github.com/nox-robotics/topograph/topo"
)

func TestImageToPlanarPreservesIDs(t *testing.T) {
	g := topo.NewGraph()
	a := g.AddNode(topo.Endpoint, geom.Vector2{X: 0, Y: 0})
	b := g.AddNode(topo.Endpoint, geom.Vector2{X: 9, Y: 0})
	_, err := g.AddEdge(a, b, []geom.Vector2{{X: 0, Y: 0}, {X: 9, Y: 0}})
	require.NoError(t, err)

	out := coord.ImageToPlanar(g, 1.0, 10)

	assert.True(t, out.HasNode(a))
	assert.True(t, out.HasNode(b))
	assert.Equal(t, g.NodeCount(), out.NodeCount())
	assert.Equal(t, g.EdgeCount(), out.EdgeCount())
}

func TestImageToPlanarFlipsYAxis(t *testing.T) {
	g := topo.NewGraph()
	top := g.AddNode(topo.Endpoint, geom.Vector2{X: 0, Y: 0})

	out := coord.ImageToPlanar(g, 2.0, 10)

	n, err := out.Node(top)
	require.NoError(t, err)
	assert.InDelta(t, 2.0*0.5, n.Pos.X, 1e-9)
	assert.InDelta(t, 2.0*(10-0.5), n.Pos.Y, 1e-9)
}
