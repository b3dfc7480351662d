package bfs

import (
	"errors"
	"fmt"

	"github.com/GeekShuker/GraphAssignment/core"
	"github.com/GeekShuker/GraphAssignment/queue"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start vertex is not in [0, V).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")
)

// BFS runs breadth-first search on g from start and returns the BFS tree
// as a new graph with the same vertex count. The tree holds exactly the
// edges along which each vertex was first discovered, with their original
// weights; unreachable vertices stay edgeless.
//
// Steps:
//  1. Validate: g non-nil, start ∈ [0, V).
//  2. Allocate visited slice, result tree, and a queue of capacity V.
//  3. Mark start visited and enqueue it.
//  4. While the queue is non-empty: dequeue u; for each neighbor (v, w)
//     in adjacency order, if v is unvisited — mark it, add tree edge
//     (u, v, w), enqueue v.
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g *core.Graph, start int) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	tree, err := core.New(n)
	if err != nil {
		return nil, err
	}
	q, err := queue.New(n)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	visited[start] = true
	if err = q.Enqueue(start); err != nil {
		return nil, err
	}

	for !q.IsEmpty() {
		u, err := q.Dequeue()
		if err != nil {
			return nil, err
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if visited[nb.Vertex] {
				continue
			}
			// First discovery: nb gets its single parent edge here.
			visited[nb.Vertex] = true
			if err = tree.AddEdge(u, nb.Vertex, nb.Weight); err != nil {
				return nil, err
			}
			if err = q.Enqueue(nb.Vertex); err != nil {
				return nil, err
			}
		}
	}

	return tree, nil
}
