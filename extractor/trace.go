package extractor

import (
	"github.com/nox-robotics/topograph/geom"
	"github.com/nox-robotics/topograph/skeleton"
	"github.com/nox-robotics/topograph/topo"
)

// traceEdges drains q, running the dual-origin BFS over sk: cells claimed
// by one frontier are marked Visited; a frontier reaching an already
// Visited cell triggers a collision merge into an edge. After the queue
// empties, any still-Unvisited foreground cell belongs to a closed loop
// with no feature pixel; it seeds a Waypoint node and the queue is
// drained again, repeating until no foreground cell is left Unvisited.
func traceEdges(sk *skeleton.Skeleton, g *topo.Graph, q *queue, em *explorationMap) {
	drain(sk, g, q, em)

	for {
		r, c, ok := firstUnvisitedForeground(sk, em)
		if !ok {
			return
		}

		id := g.AddNode(topo.Waypoint, geom.Vector2{X: float64(c), Y: float64(r)})
		q.pushBack(seed{r: r, c: c, prevR: r, prevC: c, root: id})
		drain(sk, g, q, em)
	}
}

func firstUnvisitedForeground(sk *skeleton.Skeleton, em *explorationMap) (r, c int, ok bool) {
	for r := 0; r < sk.H; r++ {
		for c := 0; c < sk.W; c++ {
			if sk.At(r, c) && em.get(r, c).state == unvisited {
				return r, c, true
			}
		}
	}

	return 0, 0, false
}

func drain(sk *skeleton.Skeleton, g *topo.Graph, q *queue, em *explorationMap) {
	for !q.empty() {
		s := q.popFront()
		rec := em.get(s.r, s.c)

		switch rec.state {
		case merged:
			continue
		case visited:
			mergeAndAddEdge(g, em, s.prevR, s.prevC, s.r, s.c)
			continue
		}

		rec.state = visited
		rec.root = s.root
		rec.prevR = s.prevR
		rec.prevC = s.prevC

		expand(sk, em, q, s)
	}
}

// expand enqueues every still-reachable skeleton neighbor of s, applying
// the cardinal-suppresses-diagonal rule before enqueue: a foreground
// cardinal neighbor suppresses the two diagonal neighbors adjacent to it
// in ring order, since the cardinal already captures that connectivity
// and tracing the diagonal too would double-count the same gap.
func expand(sk *skeleton.Skeleton, em *explorationMap, q *queue, s seed) {
	var visitMask [8]bool
	for k := 0; k < 8; k++ {
		o := offsets[k]
		visitMask[k] = sk.At(s.r+o[1], s.c+o[0])
	}

	for k := 0; k < 8; k++ {
		o := offsets[k]
		if o[0] != 0 && o[1] != 0 {
			continue // cardinals suppress diagonals; skip diagonal slots here
		}
		if visitMask[k] {
			visitMask[(k+7)%8] = false
			visitMask[(k+1)%8] = false
		}
	}

	for k := 0; k < 8; k++ {
		if !visitMask[k] {
			continue
		}
		o := offsets[k]
		nr, nc := s.r+o[1], s.c+o[0]
		if nr == s.prevR && nc == s.prevC {
			continue
		}
		if em.get(nr, nc).state != unvisited {
			continue
		}

		q.pushBack(seed{r: nr, c: nc, prevR: s.r, prevC: s.c, root: s.root})
	}
}

// mergeAndAddEdge is invoked when a frontier stepping from
// (thisPrevR, thisPrevC) onto (otherR, otherC) finds that cell already
// Visited by another frontier. It walks both frontiers back to
// their seeds, concatenates the two half-paths into one pixel-accurate
// polyline, and adds an edge between the two seed nodes in canonical
// (lower, upper) ID order.
func mergeAndAddEdge(g *topo.Graph, em *explorationMap, thisPrevR, thisPrevC, otherR, otherC int) {
	thisRoot, thisPath := walkToSeed(em, thisPrevR, thisPrevC)
	otherRoot, otherPath := walkToSeed(em, otherR, otherC)

	waypoints := make([]geom.Vector2, 0, len(thisPath)+len(otherPath))
	var lower, upper topo.NodeID

	if thisRoot < otherRoot {
		lower, upper = thisRoot, otherRoot
		waypoints = append(waypoints, thisPath...)
		for i := len(otherPath) - 1; i >= 0; i-- {
			waypoints = append(waypoints, otherPath[i])
		}
	} else {
		lower, upper = otherRoot, thisRoot
		waypoints = append(waypoints, otherPath...)
		for i := len(thisPath) - 1; i >= 0; i-- {
			waypoints = append(waypoints, thisPath[i])
		}
	}

	if _, err := g.AddEdge(lower, upper, waypoints); err != nil {
		panic("extractor: working graph rejected a merge edge: " + err.Error())
	}
}

// walkToSeed walks backward from (r, c) following prevR/prevC pointers,
// marking every traversed cell Merged, until it reaches a cell that is
// its own predecessor (the seed). It returns the seed's root node and the
// path ordered seed-first.
func walkToSeed(em *explorationMap, r, c int) (topo.NodeID, []geom.Vector2) {
	var path []geom.Vector2
	root := em.get(r, c).root

	for {
		path = append([]geom.Vector2{{X: float64(c), Y: float64(r)}}, path...)
		rec := em.get(r, c)
		rec.state = merged

		pr, pc := rec.prevR, rec.prevC
		if pr == r && pc == c {
			break
		}
		r, c = pr, pc
	}

	return root, path
}
