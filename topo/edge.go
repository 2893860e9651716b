// File: edge.go
// Role: Edge lifecycle & queries: AddEdge/AddDirectedEdge/RemoveEdge/HasEdge,
//       plus neighbor and incident-edge queries (NeighborIDs, IncidentEdgeIDs).
//
// Determinism:
//   - Edges(), NeighborIDs(), IncidentEdgeIDs() all return IDs sorted ascending.
//
// Concurrency:
//   - Edge catalog and adjacency state both protected by muEdgeAdj; node
//     existence checks take a short muNode read lock first.
//
// AI-HINT (file):
//   - AddDirectedEdge is the single mutation path; AddEdge is a thin
//     bidirectional convenience wrapper over it.
package topo

import (
	"sort"

	"github.com/nox-robotics/topograph/geom"
)

// AddEdge adds an undirected, bidirectionally-traversable edge between n1
// and n2 carrying waypoints, returning its ID. Length is computed from
// waypoints. Equivalent to AddDirectedEdge(n1, n2, true, true, waypoints).
func (g *Graph) AddEdge(n1, n2 NodeID, waypoints []geom.Vector2) (EdgeID, error) {
	return g.AddDirectedEdge(n1, n2, true, true, waypoints)
}

// AddDirectedEdge adds an edge between n1 and n2 with independently
// configurable forward (n1->n2) and backward (n2->n1) traversability.
//
// Implementation:
//   - Stage 1: Reject a self-loop if the graph forbids them (ErrLoopNotAllowed).
//   - Stage 2: Verify both endpoints exist (ErrNoSuchNode), under a brief
//     muNode read lock.
//   - Stage 3: Under muEdgeAdj, reject a parallel edge if the graph forbids
//     them (ErrMultiEdgeNotAllowed), then allocate the ID, compute Length
//     from waypoints, and register the edge in both endpoints' adjacency.
//
// Inputs:
//   - forward, backward: independently gate n1->n2 and n2->n1 traversal;
//     the topology extractor always passes (true, true).
//
// Errors:
//   - ErrNoSuchNode: either endpoint is absent.
//   - ErrLoopNotAllowed: n1 == n2 and the graph was not constructed with
//     WithCyclicEdges().
//   - ErrMultiEdgeNotAllowed: an edge already connects n1 and n2 and the
//     graph was not constructed with WithDuplicateEdges().
//
// Complexity:
//   - Time O(1) amortized, plus O(len(waypoints)) to compute Length.
func (g *Graph) AddDirectedEdge(n1, n2 NodeID, forward, backward bool, waypoints []geom.Vector2) (EdgeID, error) {
	// AI-HINT: duplicate/self-loop checks happen before ID allocation, so a
	// rejected AddDirectedEdge never burns an edge ID.
	if n1 == n2 && !g.AllowsCyclicEdges() {
		return 0, ErrLoopNotAllowed
	}

	g.muNode.RLock()
	_, ok1 := g.nodes[n1]
	_, ok2 := g.nodes[n2]
	g.muNode.RUnlock()
	if !ok1 || !ok2 {
		return 0, ErrNoSuchNode
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowDuplicate {
		if edges, ok := g.adj[n1].neighbors[n2]; ok && len(edges) > 0 {
			return 0, ErrMultiEdgeNotAllowed
		}
	}

	g.nextEdgeID++
	id := EdgeID(g.nextEdgeID)
	e := &Edge{
		ID:        id,
		N1:        n1,
		N2:        n2,
		Forward:   forward,
		Backward:  backward,
		Waypoints: waypoints,
		Length:    geom.PolylineLength(waypoints),
	}
	g.edges[id] = e

	g.adj[n1].add(n2, id)
	if n2 != n1 {
		g.adj[n2].add(n1, id)
	}

	return id, nil
}

// HasEdge reports whether id exists in the graph.
func (g *Graph) HasEdge(id EdgeID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// Edge returns the edge record for id, or ErrNoSuchEdge if it does not exist.
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, ErrNoSuchEdge
	}

	return e, nil
}

// Edges returns all edge IDs in ascending order, the deterministic
// enumeration surface the vectorizer and coordinate converter rely on.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// RemoveEdge deletes only the edge, updating both endpoints' adjacency.
//
// Errors:
//   - ErrNoSuchEdge: if id is absent.
//
// Complexity:
//   - Time O(1).
func (g *Graph) RemoveEdge(id EdgeID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrNoSuchEdge
	}
	delete(g.edges, id)

	if a := g.adj[e.N1]; a != nil {
		a.remove(id)
	}
	if e.N2 != e.N1 {
		if a := g.adj[e.N2]; a != nil {
			a.remove(id)
		}
	}

	return nil
}

// NeighborIDs returns the unique node IDs adjacent to id, in ascending order.
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) {
		return nil, ErrNoSuchNode
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	a := g.adj[id]
	ids := make([]NodeID, 0, len(a.neighbors))
	for n := range a.neighbors {
		ids = append(ids, n)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// IncidentEdgeIDs returns the IDs of all edges touching id, in ascending order.
func (g *Graph) IncidentEdgeIDs(id NodeID) ([]EdgeID, error) {
	if !g.HasNode(id) {
		return nil, ErrNoSuchNode
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	a := g.adj[id]
	ids := make([]EdgeID, 0, len(a.byEdge))
	for eid := range a.byEdge {
		ids = append(ids, eid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
