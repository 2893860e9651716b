// File: types.go
// Role: Core types (NodeID, EdgeID, NodeType, Node, Edge, adjacency, Graph,
//       GraphOption) and the NewGraph constructor.
//
// Determinism:
//   - NodeType.String() and the node/edge ID spaces are total and stable;
//     no iteration-order dependence lives in this file.
//
// Concurrency:
//   - Graph carries two independent locks: muNode guards the node catalog,
//     muEdgeAdj guards the edge catalog and all adjacency state. Acquired in
//     that order (muNode before muEdgeAdj) everywhere in the package to
//     avoid inversion.
//
// AI-HINT (file):
//   - adjacency is package-private; callers only ever see NodeID/EdgeID
//     slices from Nodes()/Edges()/NeighborIDs(), never the map itself.
package topo

import (
	"sync"

	"github.com/nox-robotics/topograph/geom"
)

// NodeID uniquely identifies a Node within its Graph.
type NodeID uint64

// EdgeID uniquely identifies an Edge within its Graph.
type EdgeID uint64

// NodeType classifies a Node by its role in the skeleton it was extracted from.
type NodeType int

const (
	// Endpoint is an isolated pixel or the tip of a line (feature score <= 1).
	Endpoint NodeType = iota
	// Intersection is a junction pixel (feature score >= 3).
	Intersection
	// Waypoint is an intermediate node inserted along a simplified edge, or
	// the synthetic seed of a closed loop with no feature pixel.
	Waypoint
	// Island is an Endpoint with no incident edges (an isolated skeleton pixel).
	Island
)

// String renders the node type for logs and test failure messages.
func (t NodeType) String() string {
	switch t {
	case Endpoint:
		return "Endpoint"
	case Intersection:
		return "Intersection"
	case Waypoint:
		return "Waypoint"
	case Island:
		return "Island"
	default:
		return "Unknown"
	}
}

// Node is a point in the topology graph: an endpoint, junction, waypoint,
// or island, positioned in pixel (or, after conversion, planar) coordinates.
type Node struct {
	ID  NodeID
	Type NodeType
	Pos geom.Vector2
}

// Edge connects two nodes with a polyline of waypoints. Forward and
// Backward independently gate whether the edge may be traversed from
// N1->N2 and N2->N1 respectively; the topology extractor always produces
// edges with both true.
type Edge struct {
	ID       EdgeID
	N1, N2   NodeID
	Forward  bool
	Backward bool
	Waypoints []geom.Vector2
	Length   float64
}

// adjacency is the per-node dual index: a multimap from neighbor node to
// the set of edges connecting to it, plus the reverse edge->neighbor map
// used for O(1) adjacency cleanup when an edge is removed by ID.
type adjacency struct {
	neighbors map[NodeID]map[EdgeID]struct{}
	byEdge    map[EdgeID]NodeID
}

func newAdjacency() *adjacency {
	return &adjacency{
		neighbors: make(map[NodeID]map[EdgeID]struct{}),
		byEdge:    make(map[EdgeID]NodeID),
	}
}

func (a *adjacency) add(neighbor NodeID, eid EdgeID) {
	if a.neighbors[neighbor] == nil {
		a.neighbors[neighbor] = make(map[EdgeID]struct{})
	}
	a.neighbors[neighbor][eid] = struct{}{}
	a.byEdge[eid] = neighbor
}

func (a *adjacency) remove(eid EdgeID) {
	neighbor, ok := a.byEdge[eid]
	if !ok {
		return
	}
	delete(a.byEdge, eid)
	delete(a.neighbors[neighbor], eid)
	if len(a.neighbors[neighbor]) == 0 {
		delete(a.neighbors, neighbor)
	}
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithCyclicEdges permits self-loop edges (AddEdge(v, v, ...)).
func WithCyclicEdges() GraphOption {
	return func(g *Graph) { g.allowCyclic = true }
}

// WithDuplicateEdges permits more than one edge between the same pair of nodes.
func WithDuplicateEdges() GraphOption {
	return func(g *Graph) { g.allowDuplicate = true }
}

// Graph is the topology graph container: ID-indexed nodes and edges with
// dual-index adjacency bookkeeping.
//
// muNode guards the node catalog; muEdgeAdj guards the edge catalog and all
// adjacency state. The two are acquired in that order to avoid inversion.
type Graph struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	allowCyclic    bool
	allowDuplicate bool

	nextNodeID uint64
	nextEdgeID uint64

	nodes map[NodeID]*Node
	edges map[EdgeID]*Edge
	adj   map[NodeID]*adjacency
}

// NewGraph returns an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[NodeID]*Node),
		edges: make(map[EdgeID]*Edge),
		adj:   make(map[NodeID]*adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AllowsCyclicEdges reports whether this Graph was constructed with WithCyclicEdges().
func (g *Graph) AllowsCyclicEdges() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.allowCyclic
}

// AllowsDuplicateEdges reports whether this Graph was constructed with WithDuplicateEdges().
func (g *Graph) AllowsDuplicateEdges() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.allowDuplicate
}

// GraphStats is a read-only O(1) snapshot of a Graph's size and configuration.
type GraphStats struct {
	NodeCount      int
	EdgeCount      int
	AllowsCyclic   bool
	AllowsDuplicate bool
}

// Stats produces a snapshot of the graph's current size and configuration.
func (g *Graph) Stats() GraphStats {
	g.muNode.RLock()
	stats := GraphStats{
		NodeCount:       len(g.nodes),
		AllowsCyclic:    g.allowCyclic,
		AllowsDuplicate: g.allowDuplicate,
	}
	g.muNode.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return stats
}
