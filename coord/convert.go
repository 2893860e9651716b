package coord

import (
	"github.com/nox-robotics/topograph/geom"
	"github.com/nox-robotics/topograph/topo"
)

// ImageToPlanar rebuilds g with every node position and edge waypoint
// converted from pixel coordinates to planar coordinates: a pixel's
// center is cellSize*(0.5+px.X) in the planar X axis, and
// cellSize*(mapHeightCells-0.5-px.Y) in the planar Y axis, which flips
// the pixel grid's top-left origin to a bottom-left origin.
//
// Node and edge IDs are preserved exactly, so a caller holding IDs from
// g may use them unchanged against the returned graph.
func ImageToPlanar(g *topo.Graph, cellSize float64, mapHeightCells int) *topo.Graph {
	toPlanar := func(px geom.Vector2) geom.Vector2 {
		return geom.Vector2{
			X: cellSize * (0.5 + px.X),
			Y: cellSize * (float64(mapHeightCells) - 0.5 - px.Y),
		}
	}

	nodeIDs := g.Nodes()
	parts := make([]topo.NodePart, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		parts = append(parts, topo.NodePart{ID: id, Type: n.Type, Pos: toPlanar(n.Pos)})
	}

	edgeIDs := g.Edges()
	edgeParts := make([]topo.EdgePart, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		e, err := g.Edge(id)
		if err != nil {
			continue
		}
		converted := make([]geom.Vector2, len(e.Waypoints))
		for i, wp := range e.Waypoints {
			converted[i] = toPlanar(wp)
		}
		edgeParts = append(edgeParts, topo.EdgePart{
			ID: id, N1: e.N1, N2: e.N2,
			Forward: e.Forward, Backward: e.Backward,
			Waypoints: converted,
		})
	}

	out, err := topo.NewFromParts(parts, edgeParts, topo.WithCyclicEdges(), topo.WithDuplicateEdges())
	if err != nil {
		panic("coord: rebuilding a previously-valid graph failed: " + err.Error())
	}

	return out
}
