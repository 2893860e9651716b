package vectorize

import (
	"github.com/nox-robotics/topograph/simplify"
	"github.com/nox-robotics/topograph/topo"
)

// pixelEpsilon is the RDP tolerance vectorization simplifies every edge
// at, one pixel, per spec.md §4.5.
const pixelEpsilon = 1.0

// Vectorize copies raw's nodes and edges into a new graph, simplifying
// every edge's waypoint polyline at one-pixel tolerance and promoting
// the simplified interior points to new Waypoint nodes. It returns the
// output graph plus, per original edge (in the same ID-sorted order as
// raw.Edges()), the ordered group of output node IDs the edge expanded
// into.
//
// Iteration over raw's nodes and edges is ID-sorted, so the output is
// reproducible for a given input.
func Vectorize(raw *topo.Graph) (*topo.Graph, [][]topo.NodeID) {
	out := topo.NewGraph(topo.WithCyclicEdges(), topo.WithDuplicateEdges())

	oldToNew := make(map[topo.NodeID]topo.NodeID, raw.NodeCount())
	for _, oldID := range raw.Nodes() {
		n, err := raw.Node(oldID)
		if err != nil {
			continue
		}
		newID := out.AddNode(n.Type, n.Pos)
		oldToNew[oldID] = newID
	}

	groups := make([][]topo.NodeID, 0, raw.EdgeCount())
	for _, edgeID := range raw.Edges() {
		e, err := raw.Edge(edgeID)
		if err != nil {
			continue
		}

		n1New := oldToNew[e.N1]
		n2New := oldToNew[e.N2]

		simplified := simplify.Simplify(e.Waypoints, pixelEpsilon)

		nodes := make([]topo.NodeID, 0, len(simplified))
		nodes = append(nodes, n1New)
		if len(simplified) >= 3 {
			for i := 1; i < len(simplified)-1; i++ {
				wp := out.AddNode(topo.Waypoint, simplified[i])
				nodes = append(nodes, wp)
			}
		}
		nodes = append(nodes, n2New)

		for i := 1; i < len(nodes); i++ {
			if _, err := out.AddEdge(nodes[i-1], nodes[i], nil); err != nil {
				panic("vectorize: chained edge construction rejected: " + err.Error())
			}
		}

		groups = append(groups, nodes)
	}

	return out, groups
}
