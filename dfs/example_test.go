package dfs_test

import (
	"fmt"

	"github.com/GeekShuker/GraphAssignment/core"
	"github.com/GeekShuker/GraphAssignment/dfs"
)

// ExampleDFS dives depth-first through a small cycle and prints the tree.
func ExampleDFS() {
	g, _ := core.New(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 3)
	g.AddEdge(3, 0, 4)

	// 0's newest edge is 3—0, so the walk dives 0→3→2→1 and the
	// cycle-closing edge 0—1 is the only one left out of the tree.
	tree, _ := dfs.DFS(g, 0)
	fmt.Print(tree)
	// Output:
	// Vertex 0: -> (3, weight: 4)
	// Vertex 1: -> (2, weight: 2)
	// Vertex 2: -> (1, weight: 2) -> (3, weight: 3)
	// Vertex 3: -> (2, weight: 3) -> (0, weight: 4)
}
