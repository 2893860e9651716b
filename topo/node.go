// File: node.go
// Role: Node lifecycle & queries (AddNode, Node, Nodes, Degree, RemoveNode).
//
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//
// AI-Hints (file):
//   - Nodes() is a stable enumeration surface; the vectorizer and coordinate
//     converter rely on it for reproducible output ordering.
package topo

import (
	"sort"

	"github.com/nox-robotics/topograph/geom"
)

// AddNode inserts a new node of the given type and position, returning its
// freshly allocated ID.
//
// Implementation:
//   - Stage 1: Allocate the next ID under muNode and register the node.
//   - Stage 2: Bootstrap an empty adjacency bucket under muEdgeAdj so edge
//     methods can rely on g.adj[id] always existing for a live node.
//
// Behavior highlights:
//   - IDs are assigned in increasing order starting at 1 and never reused,
//     even after RemoveNode.
//
// Returns:
//   - NodeID: the freshly allocated ID.
//
// Determinism:
//   - Deterministic given call order; does not depend on map iteration.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// AI-Hints:
//   - Lock order is muNode -> muEdgeAdj, matching RemoveNode and AddDirectedEdge.
func (g *Graph) AddNode(t NodeType, pos geom.Vector2) NodeID {
	// AI-HINT: ID allocation and adjacency bootstrap are two separate
	// critical sections; a node briefly exists with no adjacency bucket is
	// never observable since both happen before AddNode returns.
	g.muNode.Lock()
	g.nextNodeID++
	id := NodeID(g.nextNodeID)
	g.nodes[id] = &Node{ID: id, Type: t, Pos: pos}
	g.muNode.Unlock()

	g.muEdgeAdj.Lock()
	g.adj[id] = newAdjacency()
	g.muEdgeAdj.Unlock()

	return id
}

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id NodeID) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node record for id, or ErrNoSuchNode if it does not exist.
// The returned pointer refers to a live record; treat it as read-only.
func (g *Graph) Node(id NodeID) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNoSuchNode
	}

	return n, nil
}

// SetNodeType reassigns a node's classification in place, used by the
// extractor when an Endpoint seed turns out to have zero incident edges and
// must be reclassified as an Island (spec's "edge coverage" invariant).
func (g *Graph) SetNodeType(id NodeID, t NodeType) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNoSuchNode
	}
	n.Type = t

	return nil
}

// Nodes returns all node IDs in ascending order, a stable enumeration
// surface relied on by the vectorizer and coordinate converter for
// reproducible output.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of edges incident to id (a self-loop counts twice).
//
// AI-Hints:
//   - Counts edges, not neighbors; a double edge to the same neighbor counts 2.
func (g *Graph) Degree(id NodeID) (int, error) {
	if !g.HasNode(id) {
		return 0, ErrNoSuchNode
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	a, ok := g.adj[id]
	if !ok {
		return 0, nil
	}
	d := 0
	for n, edges := range a.neighbors {
		d += len(edges)
		if n == id {
			d += len(edges) // a self-loop touches id at both ends
		}
	}

	return d, nil
}

// RemoveNode deletes the node and every edge incident to it, updating the
// adjacency of each opposite endpoint.
//
// Implementation:
//   - Stage 1: Hold both locks for the duration so no reader observes a
//     node removed from the catalog while its edges still exist.
//   - Stage 2: Walk the node's adjacency, deleting each incident edge from
//     the edge catalog and cleaning the opposite endpoint's adjacency.
//   - Stage 3: Drop the node's own adjacency bucket and catalog entry.
//
// Behavior highlights:
//   - Edges whose opposite endpoint has already been removed (which cannot
//     happen through this API alone, but is tolerated for callers that
//     built a Graph via NewFromParts with inconsistent input) are skipped
//     rather than treated as a fatal inconsistency.
//
// Errors:
//   - ErrNoSuchNode: if id is absent.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) RemoveNode(id NodeID) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return ErrNoSuchNode
	}

	a := g.adj[id]
	if a != nil {
		for eid, neighbor := range a.byEdge {
			delete(g.edges, eid)
			if neighbor == id {
				continue // self-loop: already removing this node's own adjacency below
			}
			if other := g.adj[neighbor]; other != nil {
				other.remove(eid)
			}
		}
	}

	delete(g.adj, id)
	delete(g.nodes, id)

	return nil
}
