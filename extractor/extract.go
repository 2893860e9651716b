package extractor

import (
	"github.com/nox-robotics/topograph/skeleton"
	"github.com/nox-robotics/topograph/topo"
)

// Extract produces a fresh topology graph from sk. It owns no long-lived
// state: the BFS queue and exploration map are scratch local to this call.
//
// The working graph allows self-loop edges (a closed loop seeded from a
// single Waypoint collapses to lower_root == upper_root) and duplicate
// edges (two skeleton strands may connect the same pair of feature nodes).
func Extract(sk *skeleton.Skeleton) *topo.Graph {
	g := topo.NewGraph(topo.WithCyclicEdges(), topo.WithDuplicateEdges())

	q := &queue{}
	scoreAndSeed(sk, g, q)

	em := newExplorationMap(sk.H, sk.W)
	traceEdges(sk, g, q, em)

	reclassifyIslands(g)

	return g
}

// reclassifyIslands demotes every Endpoint node of degree 0 to Island: an
// isolated skeleton pixel with no neighbor ever reaches the BFS expansion
// step, so it never gains an incident edge.
func reclassifyIslands(g *topo.Graph) {
	for _, id := range g.Nodes() {
		n, err := g.Node(id)
		if err != nil || n.Type != topo.Endpoint {
			continue
		}
		if d, _ := g.Degree(id); d == 0 {
			_ = g.SetNodeType(id, topo.Island)
		}
	}
}
