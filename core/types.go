// Package core declares the Graph and Neighbor types, sentinel errors,
// and the New constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates a non-positive vertex count passed to New.
	ErrInvalidVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// DefaultWeight is the weight an edge carries when the caller has no
// meaningful cost to attach (the traditional "unweighted" edge).
const DefaultWeight = 1

// Neighbor is a read-only view of one adjacency entry: the vertex on the
// far end of an edge and the weight that edge carries. It is produced on
// demand by Graph.Neighbors and owned by the caller.
type Neighbor struct {
	// Vertex is the adjacent vertex index.
	Vertex int

	// Weight is the weight of the connecting edge.
	Weight int
}

// Graph is an undirected, weighted graph over the fixed vertex set
// [0, VertexCount), stored as one adjacency list per vertex.
//
// The zero value is not usable; construct with New.
type Graph struct {
	// adj[u] holds u's adjacency entries, most recently inserted first.
	adj [][]Neighbor
}

// New creates a Graph with the given number of vertices and no edges.
// Returns ErrInvalidVertexCount if vertexCount <= 0.
// Complexity: O(V).
func New(vertexCount int) (*Graph, error) {
	if vertexCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, vertexCount)
	}

	return &Graph{adj: make([][]Neighbor, vertexCount)}, nil
}

// checkVertex validates a single index against [0, VertexCount).
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(g.adj))
	}

	return nil
}
