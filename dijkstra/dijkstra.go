package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/GeekShuker/GraphAssignment/core"
	"github.com/GeekShuker/GraphAssignment/pqueue"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartOutOfRange is returned when the start vertex is not in [0, V).
	ErrStartOutOfRange = errors.New("dijkstra: start vertex out of range")

	// ErrNegativeWeight is returned when any edge carries a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// unset marks a vertex with no predecessor yet.
const unset = -1

// Dijkstra computes the shortest-path tree of g from start and returns it
// as a new graph with the same vertex count. Each reachable non-start
// vertex v is connected to its predecessor prev[v] by an edge weighing
// dist[v]−dist[prev[v]] — the weight of the edge that last relaxed v.
// Unreachable vertices stay edgeless.
//
// Steps:
//  1. Validate: g non-nil, start ∈ [0, V), no negative weight anywhere.
//  2. dist[·] = +∞ except dist[start] = 0; prev[·] = none.
//  3. Heap seeded with (start, 0); capacity covers every possible lazy
//     push (one per strict distance improvement, ≤ adjacency entries).
//  4. Loop: extract min u; for each neighbor (v, w), if dist[u]+w <
//     dist[v], relax — update dist/prev and push (v, dist[v]). Stale heap
//     entries fail the relaxation test on extraction and burn off idle.
//  5. Assemble the tree from prev[] and the distance deltas.
//
// Complexity: O((V+E) log E) time, O(V+E) space.
func Dijkstra(g *core.Graph, start int) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	// Fail fast on negative weights while sizing the heap: every strict
	// improvement of some dist[v] pushes once, and improvements are
	// bounded by the number of adjacency entries.
	entries := 0
	for u := 0; u < n; u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		entries += len(neighbors)
		for _, nb := range neighbors {
			if nb.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d—%d weight=%d",
					ErrNegativeWeight, u, nb.Vertex, nb.Weight)
			}
		}
	}

	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = unset
	}
	dist[start] = 0

	pq, err := pqueue.New(entries + 1)
	if err != nil {
		return nil, err
	}
	if err = pq.Insert(start, 0); err != nil {
		return nil, err
	}

	for !pq.IsEmpty() {
		u, err := pq.ExtractMin()
		if err != nil {
			return nil, err
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if dist[u]+nb.Weight < dist[nb.Vertex] {
				dist[nb.Vertex] = dist[u] + nb.Weight
				prev[nb.Vertex] = u
				if err = pq.Insert(nb.Vertex, dist[nb.Vertex]); err != nil {
					return nil, err
				}
			}
		}
	}

	tree, err := core.New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if prev[v] == unset {
			continue
		}
		// dist delta along the tree edge == original edge weight.
		if err = tree.AddEdge(prev[v], v, dist[v]-dist[prev[v]]); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
