package topo_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nox-robotics/topograph/geom"
	"github.com/nox-robotics/topograph/topo"
)

func TestEncodeDecodeJSONRoundTrip(t *testing.T) {
	g := topo.NewGraph()
	a := g.AddNode(topo.Endpoint, geom.Vector2{X: 0, Y: 0})
	b := g.AddNode(topo.Intersection, geom.Vector2{X: 3, Y: 4})
	_, err := g.AddEdge(a, b, []geom.Vector2{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.EncodeJSON(&buf))

	out, err := topo.DecodeJSON(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.NodeCount(), out.NodeCount())
	assert.Equal(t, g.EdgeCount(), out.EdgeCount())

	n, err := out.Node(a)
	require.NoError(t, err)
	assert.Equal(t, topo.Endpoint, n.Type)
	assert.True(t, n.Pos.Equal(geom.Vector2{X: 0, Y: 0}))
}
