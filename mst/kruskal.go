package mst

import (
	"sort"

	"github.com/GeekShuker/GraphAssignment/core"
	"github.com/GeekShuker/GraphAssignment/unionfind"
)

// weightedEdge is one undirected edge lifted out of the adjacency lists.
type weightedEdge struct {
	weight, u, v int
}

// Kruskal computes a minimum spanning tree of g and returns it as a new
// graph with the same vertex count. On a disconnected input the result is
// a minimum spanning forest: V minus the number of components edges, one
// tree per component.
//
// Steps:
//  1. Validate g non-nil.
//  2. Collect each undirected edge exactly once by keeping only adjacency
//     entries with u < v; the edge list is sized to the actual edge
//     count, so dense graphs carry no arbitrary ceiling.
//  3. Stable-sort by ascending weight — equal weights keep scan order.
//  4. For each edge in sorted order: if its endpoints sit in different
//     unionfind sets, admit the edge and unite them.
//
// Complexity: O(E log E) time, O(V + E) space.
func Kruskal(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()

	// Each undirected edge appears twice across the adjacency lists;
	// u < v picks exactly one of the two mirrored entries.
	// Self-loops (u == v) are excluded by the same comparison.
	var edges []weightedEdge
	for u := 0; u < n; u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if u < nb.Vertex {
				edges = append(edges, weightedEdge{weight: nb.Weight, u: u, v: nb.Vertex})
			}
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})

	uf, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}
	tree, err := core.New(n)
	if err != nil {
		return nil, err
	}

	for _, e := range edges {
		rootU, err := uf.Find(e.u)
		if err != nil {
			return nil, err
		}
		rootV, err := uf.Find(e.v)
		if err != nil {
			return nil, err
		}
		if rootU == rootV {
			continue // would close a cycle
		}
		if err = tree.AddEdge(e.u, e.v, e.weight); err != nil {
			return nil, err
		}
		if err = uf.Unite(e.u, e.v); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
