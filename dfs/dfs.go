package dfs

import (
	"errors"
	"fmt"

	"github.com/GeekShuker/GraphAssignment/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange is returned when the start vertex is not in [0, V).
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// DFS runs a recursive depth-first search on g from start and returns the
// DFS tree as a new graph with the same vertex count. Tree edges carry
// their original weights; vertices outside start's component stay
// edgeless.
//
// Complexity: O(V + E) time, O(V) space.
func DFS(g *core.Graph, start int) (*core.Graph, error) {
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

	visited := make([]bool, n)
	if err = visit(g, start, visited, tree); err != nil {
		return nil, err
	}

	return tree, nil
}

// visit marks u, then walks u's neighbors in adjacency order, descending
// into each unvisited one after recording its tree edge.
func visit(g *core.Graph, u int, visited []bool, tree *core.Graph) error {
	visited[u] = true

	neighbors, err := g.Neighbors(u)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if visited[nb.Vertex] {
			continue
		}
		if err = tree.AddEdge(u, nb.Vertex, nb.Weight); err != nil {
			return err
		}
		if err = visit(g, nb.Vertex, visited, tree); err != nil {
			return err
		}
	}

	return nil
}
