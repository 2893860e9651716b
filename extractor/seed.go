package extractor

import (
	"github.com/nox-robotics/topograph/geom"
	"github.com/nox-robotics/topograph/skeleton"
	"github.com/nox-robotics/topograph/topo"
)

// featureScore counts the connected foreground arcs touching (r, c):
// the number of foreground neighbors minus the number of contiguous
// foreground pairs around the ring.
func featureScore(sk *skeleton.Skeleton, r, c int) int {
	var neighborFg [8]bool
	adjacent := 0
	for k := 0; k < 8; k++ {
		o := offsets[k]
		if sk.At(r+o[1], c+o[0]) {
			neighborFg[k] = true
			adjacent++
		}
	}

	contiguous := 0
	for k := 0; k < 8; k++ {
		if neighborFg[k] && neighborFg[(k+1)%8] {
			contiguous++
		}
	}

	return adjacent - contiguous
}

// scoreAndSeed scans every interior skeleton pixel in row-major order
// (row outer, column inner), classifying feature pixels as Endpoint or
// Intersection nodes and enqueuing a BFS seed for each. Scan order
// determines seed-insertion order, which in turn determines the
// deterministic FIFO tie-break of the dual-origin trace.
func scoreAndSeed(sk *skeleton.Skeleton, g *topo.Graph, q *queue) {
	for r := 1; r < sk.H-1; r++ {
		for c := 1; c < sk.W-1; c++ {
			if !sk.At(r, c) {
				continue
			}

			score := featureScore(sk, r, c)
			var nodeType topo.NodeType
			switch {
			case score <= 1:
				nodeType = topo.Endpoint
			case score >= 3:
				nodeType = topo.Intersection
			default:
				continue
			}

			id := g.AddNode(nodeType, geom.Vector2{X: float64(c), Y: float64(r)})
			q.pushBack(seed{r: r, c: c, prevR: r, prevC: c, root: id})
		}
	}
}
