// Package core: Graph method implementations.
//
// Adjacency is stored as one []Neighbor per vertex with head insertion:
// AddEdge prepends, so iteration order is most-recently-inserted first,
// and RemoveEdge drops the first match it meets scanning from the head.
package core

import (
	"fmt"
	"strings"
)

// AddEdge inserts an undirected edge between src and dest with the given
// weight. The entry (dest, weight) is placed at the head of src's list and
// (src, weight) at the head of dest's list. No existence check is made, so
// parallel edges accumulate.
// Returns ErrVertexOutOfRange if src or dest is outside [0, VertexCount).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dest, weight int) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dest); err != nil {
		return err
	}

	// Head insertion on both sides; both entries carry the same weight.
	g.adj[src] = prepend(g.adj[src], Neighbor{Vertex: dest, Weight: weight})
	g.adj[dest] = prepend(g.adj[dest], Neighbor{Vertex: src, Weight: weight})

	return nil
}

// RemoveEdge deletes the undirected edge between src and dest, best-effort
// per direction: on each side, the first matching entry scanning from the
// head is removed; a side with no match is silently left unchanged.
// Returns ErrVertexOutOfRange if src or dest is outside [0, VertexCount).
// Complexity: O(deg(src) + deg(dest)).
func (g *Graph) RemoveEdge(src, dest int) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dest); err != nil {
		return err
	}

	g.adj[src] = removeFirst(g.adj[src], dest)
	g.adj[dest] = removeFirst(g.adj[dest], src)

	return nil
}

// Neighbors returns a snapshot of vertex's adjacency entries in
// head-to-tail order (most recently inserted first). The returned slice
// is owned by the caller; mutating it does not affect the graph.
// Returns ErrVertexOutOfRange if vertex is outside [0, VertexCount).
// Complexity: O(deg(vertex)).
func (g *Graph) Neighbors(vertex int) ([]Neighbor, error) {
	if err := g.checkVertex(vertex); err != nil {
		return nil, err
	}

	snapshot := make([]Neighbor, len(g.adj[vertex]))
	copy(snapshot, g.adj[vertex])

	return snapshot, nil
}

// VertexCount reports the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// String renders the adjacency structure, one line per vertex in index
// order, neighbors in adjacency order:
//
//	Vertex 0: -> (2, weight: 1) -> (1, weight: 4)
//
// The format is stable: the demo driver prints it verbatim.
func (g *Graph) String() string {
	var b strings.Builder
	for v, list := range g.adj {
		fmt.Fprintf(&b, "Vertex %d:", v)
		for _, n := range list {
			fmt.Fprintf(&b, " -> (%d, weight: %d)", n.Vertex, n.Weight)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// prepend puts n at the head of list, shifting the rest right.
func prepend(list []Neighbor, n Neighbor) []Neighbor {
	list = append(list, Neighbor{})
	copy(list[1:], list)
	list[0] = n

	return list
}

// removeFirst drops the first entry whose Vertex equals target; when no
// entry matches, list is returned unchanged.
func removeFirst(list []Neighbor, target int) []Neighbor {
	for i, n := range list {
		if n.Vertex == target {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
