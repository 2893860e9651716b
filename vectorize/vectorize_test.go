package vectorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nox-robotics/topograph/geom"
	"github.com/nox-robotics/topograph/simplify"
	"github.com/nox-robotics/topograph/topo"
	"github.com/nox-robotics/topograph/vectorize"
)

func TestVectorizePreservesNodeCountAndTypes(t *testing.T) {
	raw := topo.NewGraph()
	a := raw.AddNode(topo.Endpoint, geom.Vector2{X: 0, Y: 0})
	b := raw.AddNode(topo.Endpoint, geom.Vector2{X: 4, Y: 0})
	wp := []geom.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0.1}, {X: 2, Y: 0}, {X: 3, Y: -0.1}, {X: 4, Y: 0}}
	_, err := raw.AddEdge(a, b, wp)
	require.NoError(t, err)

	out, groups := vectorize.Vectorize(raw)

	require.Len(t, groups, 1)
	assert.GreaterOrEqual(t, out.NodeCount(), 2)

	group := groups[0]
	startNode, err := out.Node(group[0])
	require.NoError(t, err)
	endNode, err := out.Node(group[len(group)-1])
	require.NoError(t, err)
	assert.Equal(t, topo.Endpoint, startNode.Type)
	assert.Equal(t, topo.Endpoint, endNode.Type)

	for _, id := range group[1 : len(group)-1] {
		n, err := out.Node(id)
		require.NoError(t, err)
		assert.Equal(t, topo.Waypoint, n.Type)
	}
}

// Invariant #9: sum of consecutive segment lengths within a node group
// equals the simplified polyline's length (the vectorizer neither
// shortens nor lengthens the path, it only re-expresses it as nodes).
func TestVectorizeLengthPreservation(t *testing.T) {
	raw := topo.NewGraph()
	a := raw.AddNode(topo.Endpoint, geom.Vector2{X: 0, Y: 0})
	b := raw.AddNode(topo.Endpoint, geom.Vector2{X: 4, Y: 0})
	wp := []geom.Vector2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 3, Y: -2}, {X: 4, Y: 0}}
	_, err := raw.AddEdge(a, b, wp)
	require.NoError(t, err)

	simplifiedLen := geom.PolylineLength(simplify.Simplify(wp, 1.0))

	out, groups := vectorize.Vectorize(raw)
	group := groups[0]

	groupLen := 0.0
	for i := 1; i < len(group); i++ {
		n1, err := out.Node(group[i-1])
		require.NoError(t, err)
		n2, err := out.Node(group[i])
		require.NoError(t, err)
		groupLen += n2.Pos.Sub(n1.Pos).Length()
	}

	assert.InDelta(t, simplifiedLen, groupLen, 1e-6)
}

func TestVectorizeChainsEdgesWithEmptyWaypoints(t *testing.T) {
	raw := topo.NewGraph()
	a := raw.AddNode(topo.Endpoint, geom.Vector2{X: 0, Y: 0})
	b := raw.AddNode(topo.Endpoint, geom.Vector2{X: 4, Y: 0})
	wp := []geom.Vector2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 3, Y: -2}, {X: 4, Y: 0}}
	_, err := raw.AddEdge(a, b, wp)
	require.NoError(t, err)

	out, _ := vectorize.Vectorize(raw)
	for _, id := range out.Edges() {
		e, err := out.Edge(id)
		require.NoError(t, err)
		assert.Empty(t, e.Waypoints)
	}
}
