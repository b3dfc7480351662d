package dijkstra_test

import (
	"fmt"

	"github.com/GeekShuker/GraphAssignment/core"
	"github.com/GeekShuker/GraphAssignment/dijkstra"
)

// ExampleDijkstra computes the shortest-path tree of a square graph.
func ExampleDijkstra() {
	g, _ := core.New(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 3)
	g.AddEdge(3, 0, 4)

	// Distances from 0 are 0,1,3,4 — vertex 3 keeps its direct edge
	// (weight 4) because the long way around costs 1+2+3 = 6.
	tree, _ := dijkstra.Dijkstra(g, 0)
	fmt.Print(tree)
	// Output:
	// Vertex 0: -> (3, weight: 4) -> (1, weight: 1)
	// Vertex 1: -> (2, weight: 2) -> (0, weight: 1)
	// Vertex 2: -> (1, weight: 2)
	// Vertex 3: -> (0, weight: 4)
}
