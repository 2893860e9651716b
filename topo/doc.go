// Package topo provides the topology graph: an ID-indexed, labeled
// multigraph whose nodes carry a position and feature classification and
// whose edges carry a polyline of waypoints and a traversal direction.
//
// The Graph G = (V,E) is built incrementally by the extraction pipeline
// (AddNode, AddEdge/AddDirectedEdge) or in bulk from a prior snapshot
// (NewFromParts, DecodeJSON), and supports:
//
//   - Four node classifications (Endpoint, Intersection, Waypoint, Island),
//     assigned by the extractor from a skeleton's local feature score.
//   - Independently directed traversal per edge (Forward/Backward), though
//     the extractor itself only ever produces bidirectional edges.
//   - Optional self-loops (WithCyclicEdges) and parallel edges
//     (WithDuplicateEdges) — both off by default; the extractor's and
//     vectorizer's working graphs enable both (a closed loop becomes a
//     self-loop edge).
//   - A dual adjacency index (neighbor->edges, edge->neighbor) giving O(1)
//     adjacency cleanup when an edge is removed by ID.
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrent reads.
//
// Why use topo.Graph?
//
//   - Single container type for the whole extraction pipeline's intermediate
//     and final representation — the extractor builds the raw Graph and the
//     vectorizer builds a new, simplified Graph from it.
//   - Deterministic iteration — Nodes(), Edges(), NeighborIDs(),
//     IncidentEdgeIDs() all return ID-sorted results, so two runs over the
//     same skeleton produce byte-identical JSON via EncodeJSON.
//   - Round-trips losslessly through JSON (EncodeJSON/DecodeJSON) via the
//     NodePart/EdgePart vocabulary NewFromParts also accepts, so a graph can
//     be written to disk and rebuilt exactly.
//
// Configuration (GraphOption):
//
//	– WithCyclicEdges()
//	    Permits self-loop edges (node1 == node2); otherwise AddEdge(v,v,...)
//	    returns ErrLoopNotAllowed.
//	– WithDuplicateEdges()
//	    Permits more than one edge between the same pair of nodes; otherwise
//	    a second AddEdge between the same two nodes returns ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(t NodeType, pos geom.Vector2) NodeID        // O(1) amortized
//	HasNode(id NodeID) bool                              // O(1)
//	Node(id NodeID) (*Node, error)                        // O(1)
//	SetNodeType(id NodeID, t NodeType) error              // O(1)
//	RemoveNode(id NodeID) error                           // O(deg(id))
//
//	// Edge lifecycle
//	AddEdge(n1, n2 NodeID, wp []geom.Vector2) (EdgeID, error)           // O(1) amortized + O(len(wp))
//	AddDirectedEdge(n1, n2 NodeID, fwd, bwd bool, wp []geom.Vector2) (EdgeID, error) // O(1) amortized + O(len(wp))
//	HasEdge(id EdgeID) bool                               // O(1)
//	Edge(id EdgeID) (*Edge, error)                        // O(1)
//	RemoveEdge(id EdgeID) error                           // O(1)
//
//	// Query
//	Nodes() []NodeID                                      // O(V log V)
//	Edges() []EdgeID                                      // O(E log E)
//	NeighborIDs(id NodeID) ([]NodeID, error)               // O(d log d)
//	IncidentEdgeIDs(id NodeID) ([]EdgeID, error)           // O(d log d)
//	Degree(id NodeID) (int, error)                        // O(d)
//
//	// Counts & stats
//	NodeCount() int                                       // O(1)
//	EdgeCount() int                                       // O(1)
//	Stats() GraphStats                                    // O(1)
//
//	// Bulk construction & serialization
//	NewFromParts(nodes []NodePart, edges []EdgePart, opts ...GraphOption) (*Graph, error) // O(V+E)
//	EncodeJSON(w io.Writer) error                         // O(V log V + E log E)
//	DecodeJSON(r io.Reader) (*Graph, error)                // O(V+E)
//
// Node struct fields:
//
//	ID   NodeID        // monotonically increasing, never reused
//	Type NodeType       // Endpoint, Intersection, Waypoint, or Island
//	Pos  geom.Vector2   // pixel (or, after conversion, planar) position
//
// Edge struct fields:
//
//	ID             EdgeID
//	N1, N2         NodeID
//	Forward        bool           // true if N1->N2 is traversable
//	Backward       bool           // true if N2->N1 is traversable
//	Waypoints      []geom.Vector2 // the edge's polyline (dense pixel trace from the extractor; empty on vectorized edges)
//	Length         float64        // cumulative polyline length
//
// Errors:
//
//	ErrNoSuchNode          – operation referenced a non-existent node
//	ErrNoSuchEdge          – operation referenced a non-existent edge
//	ErrDuplicateNodeID     – NewFromParts given two nodes with the same ID
//	ErrDuplicateEdgeID     – NewFromParts given two edges with the same ID
//	ErrLoopNotAllowed      – self-loop attempted without WithCyclicEdges()
//	ErrMultiEdgeNotAllowed – parallel edge attempted without WithDuplicateEdges()
//
// A Graph is safe for concurrent read access once construction has
// finished; the extraction pipeline itself is single-threaded and never
// mutates a Graph from more than one goroutine.
package topo
