// File: construct.go
// Role: Bulk construction of a Graph from explicit ID-tagged parts
//       (NewFromParts), the inverse of json.go's EncodeJSON.
//
// AI-Hints (file):
//   - NewFromParts validates all IDs before mutating g, so a rejected call
//     never leaves a partially built graph behind.
package topo

import "github.com/nox-robotics/topograph/geom"

// NodePart is a single node for bulk construction via NewFromParts.
type NodePart struct {
	ID   NodeID
	Type NodeType
	Pos  geom.Vector2
}

// EdgePart is a single edge for bulk construction via NewFromParts.
type EdgePart struct {
	ID        EdgeID
	N1, N2    NodeID
	Forward   bool
	Backward  bool
	Waypoints []geom.Vector2
}

// NewFromParts builds a Graph from explicit ID-tagged nodes and edges.
//
// Implementation:
//   - Stage 1: Scan nodes for duplicate IDs (ErrDuplicateNodeID), tracking
//     the maximum ID seen.
//   - Stage 2: Scan edges for duplicate IDs (ErrDuplicateEdgeID), tracking
//     the maximum ID seen.
//   - Stage 3: Construct an empty Graph and insert every node, then every
//     edge, validating each edge's endpoints exist (ErrNoSuchNode).
//   - Stage 4: Seed nextNodeID/nextEdgeID past the maximum supplied ID.
//
// Behavior highlights:
//   - Duplicate-ID detection happens before any mutation, so construction
//     either fully succeeds or produces no graph at all.
//   - Subsequently-added nodes/edges (via AddNode/AddEdge) never collide
//     with the bulk-loaded IDs.
//
// Errors:
//   - ErrDuplicateNodeID, ErrDuplicateEdgeID: a bulk ID repeats.
//   - ErrNoSuchNode: an edge references an ID absent from nodes.
//
// Complexity:
//   - Time O(len(nodes)+len(edges)), Space O(len(nodes)+len(edges)).
func NewFromParts(nodes []NodePart, edges []EdgePart, opts ...GraphOption) (*Graph, error) {
	seen := make(map[NodeID]struct{}, len(nodes))
	var maxNodeID NodeID
	for _, n := range nodes {
		if _, dup := seen[n.ID]; dup {
			return nil, ErrDuplicateNodeID
		}
		seen[n.ID] = struct{}{}
		if n.ID > maxNodeID {
			maxNodeID = n.ID
		}
	}

	seenEdge := make(map[EdgeID]struct{}, len(edges))
	var maxEdgeID EdgeID
	for _, e := range edges {
		if _, dup := seenEdge[e.ID]; dup {
			return nil, ErrDuplicateEdgeID
		}
		seenEdge[e.ID] = struct{}{}
		if e.ID > maxEdgeID {
			maxEdgeID = e.ID
		}
	}

	g := NewGraph(opts...)
	for _, n := range nodes {
		g.nodes[n.ID] = &Node{ID: n.ID, Type: n.Type, Pos: n.Pos}
		g.adj[n.ID] = newAdjacency()
	}
	for _, e := range edges {
		if _, ok := g.nodes[e.N1]; !ok {
			return nil, ErrNoSuchNode
		}
		if _, ok := g.nodes[e.N2]; !ok {
			return nil, ErrNoSuchNode
		}
		g.edges[e.ID] = &Edge{
			ID: e.ID, N1: e.N1, N2: e.N2,
			Forward: e.Forward, Backward: e.Backward,
			Waypoints: e.Waypoints,
			Length:    geom.PolylineLength(e.Waypoints),
		}
		g.adj[e.N1].add(e.N2, e.ID)
		if e.N2 != e.N1 {
			g.adj[e.N2].add(e.N1, e.ID)
		}
	}
	g.nextNodeID = uint64(maxNodeID)
	g.nextEdgeID = uint64(maxEdgeID)

	return g, nil
}
