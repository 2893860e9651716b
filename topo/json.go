// File: json.go
// Role: JSON round-tripping of a Graph (EncodeJSON/DecodeJSON) via the same
//       NodePart/EdgePart vocabulary construct.go's NewFromParts consumes.
//
// Determinism:
//   - EncodeJSON always walks Nodes()/Edges(), so two graphs built from the
//     same sequence of operations serialize byte-identically.
//
// AI-HINT (file):
//   - DecodeJSON is just NewFromParts fed a decoded jsonSnapshot; it inherits
//     that function's duplicate-ID and missing-endpoint validation for free.
package topo

import (
	"encoding/json"
	"io"
)

// jsonSnapshot is the on-disk representation of a Graph: its nodes and
// edges in ID-sorted order plus the construction options needed to
// reproduce it via NewFromParts.
type jsonSnapshot struct {
	Nodes           []NodePart `json:"nodes"`
	Edges           []EdgePart `json:"edges"`
	AllowsCyclic    bool       `json:"allows_cyclic"`
	AllowsDuplicate bool       `json:"allows_duplicate"`
}

// EncodeJSON writes g to w as JSON: an ID-sorted node list, an ID-sorted
// edge list, and the graph's construction options.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V+E).
func (g *Graph) EncodeJSON(w io.Writer) error {
	nodeIDs := g.Nodes()
	nodes := make([]NodePart, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		nodes = append(nodes, NodePart{ID: n.ID, Type: n.Type, Pos: n.Pos})
	}

	edgeIDs := g.Edges()
	edges := make([]EdgePart, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		e, err := g.Edge(id)
		if err != nil {
			continue
		}
		edges = append(edges, EdgePart{
			ID: e.ID, N1: e.N1, N2: e.N2,
			Forward: e.Forward, Backward: e.Backward,
			Waypoints: e.Waypoints,
		})
	}

	snap := jsonSnapshot{
		Nodes:           nodes,
		Edges:           edges,
		AllowsCyclic:    g.AllowsCyclicEdges(),
		AllowsDuplicate: g.AllowsDuplicateEdges(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(snap)
}

// DecodeJSON reads a Graph previously written by EncodeJSON from r.
//
// Errors:
//   - Any JSON decode error from r.
//   - ErrDuplicateNodeID, ErrDuplicateEdgeID, ErrNoSuchNode: see NewFromParts.
func DecodeJSON(r io.Reader) (*Graph, error) {
	var snap jsonSnapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}

	var opts []GraphOption
	if snap.AllowsCyclic {
		opts = append(opts, WithCyclicEdges())
	}
	if snap.AllowsDuplicate {
		opts = append(opts, WithDuplicateEdges())
	}

	return NewFromParts(snap.Nodes, snap.Edges, opts...)
}
