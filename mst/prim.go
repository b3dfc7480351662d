package mst

import (
	"errors"
	"math"

	"github.com/GeekShuker/GraphAssignment/core"
	"github.com/GeekShuker/GraphAssignment/pqueue"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("mst: graph is nil")

// unset marks a vertex with no connecting parent yet.
const unset = -1

// Prim computes a minimum spanning tree of g, always rooted at vertex 0,
// and returns it as a new graph with the same vertex count. On a
// disconnected input, vertices outside 0's component never acquire a
// parent and stay edgeless — the result is a spanning forest of one
// populated tree.
//
// Steps:
//  1. Validate g non-nil.
//  2. key[·] = +∞ except key[0] = 0; parent[·] = none; inMST[·] = false.
//  3. Heap seeded with (0, 0); capacity covers all lazy pushes (one per
//     strict key improvement, ≤ adjacency entries).
//  4. Loop: extract min u, mark it in the tree; for each neighbor (v, w)
//     outside the tree with w < key[v], record the cheaper connection and
//     push (v, w).
//  5. For v in [1, V): if parent[v] is set, add edge (parent[v], v, key[v]).
//
// Complexity: O(E log E) time, O(V + E) space.
func Prim(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()

	// Count adjacency entries to bound the lazy heap.
	entries := 0
	for u := 0; u < n; u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		entries += len(neighbors)
	}

	key := make([]int, n)
	parent := make([]int, n)
	inMST := make([]bool, n)
	for i := range key {
		key[i] = math.MaxInt
		parent[i] = unset
	}
	key[0] = 0

	pq, err := pqueue.New(entries + 1)
	if err != nil {
		return nil, err
	}
	if err = pq.Insert(0, 0); err != nil {
		return nil, err
	}

	for !pq.IsEmpty() {
		u, err := pq.ExtractMin()
		if err != nil {
			return nil, err
		}
		inMST[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if !inMST[nb.Vertex] && nb.Weight < key[nb.Vertex] {
				key[nb.Vertex] = nb.Weight
				parent[nb.Vertex] = u
				if err = pq.Insert(nb.Vertex, nb.Weight); err != nil {
					return nil, err
				}
			}
		}
	}

	tree, err := core.New(n)
	if err != nil {
		return nil, err
	}
	for v := 1; v < n; v++ {
		if parent[v] == unset {
			continue
		}
		if err = tree.AddEdge(parent[v], v, key[v]); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
