// File: errors.go
// Role: Sentinel errors shared across node.go, edge.go, and construct.go.
package topo

import "errors"

// Sentinel errors for topo graph operations.
var (
	// ErrNoSuchNode indicates an operation referenced a non-existent node.
	ErrNoSuchNode = errors.New("topo: no such node")

	// ErrNoSuchEdge indicates an operation referenced a non-existent edge.
	ErrNoSuchEdge = errors.New("topo: no such edge")

	// ErrDuplicateNodeID indicates NewFromParts was given two nodes with the same ID.
	ErrDuplicateNodeID = errors.New("topo: duplicate node id")

	// ErrDuplicateEdgeID indicates NewFromParts was given two edges with the same ID.
	ErrDuplicateEdgeID = errors.New("topo: duplicate edge id")

	// ErrLoopNotAllowed indicates a self-loop was attempted without WithCyclicEdges().
	ErrLoopNotAllowed = errors.New("topo: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted without WithDuplicateEdges().
	ErrMultiEdgeNotAllowed = errors.New("topo: duplicate edge not allowed")
)
