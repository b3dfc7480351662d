package dfs_test

import (
	"errors"
	"fmt"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/GeekShuker/GraphAssignment/core"
	"github.com/GeekShuker/GraphAssignment/dfs"
)

// buildGraph wires the given (u, v, w) triples into a fresh graph.
func buildGraph(t *testing.T, vertices int, edges [][3]int) *core.Graph {
	t.Helper()
	g, err := core.New(vertices)
	if err != nil {
		t.Fatalf("core.New(%d): %v", vertices, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], e[2]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	return g
}

// edgeSet collects each undirected edge of g once, as "u-v:w" with u < v.
func edgeSet(t *testing.T, g *core.Graph) mapset.Set[string] {
	t.Helper()
	set := mapset.NewSet[string]()
	for u := 0; u < g.VertexCount(); u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			t.Fatalf("Neighbors(%d): %v", u, err)
		}
		for _, n := range nbrs {
			if u < n.Vertex {
				set.Add(fmt.Sprintf("%d-%d:%d", u, n.Vertex, n.Weight))
			}
		}
	}

	return set
}

// reachable returns the vertex set reachable from start in g.
func reachable(t *testing.T, g *core.Graph, start int) mapset.Set[int] {
	t.Helper()
	seen := mapset.NewSet(start)
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbrs, err := g.Neighbors(u)
		if err != nil {
			t.Fatalf("Neighbors(%d): %v", u, err)
		}
		for _, n := range nbrs {
			if seen.Add(n.Vertex) {
				stack = append(stack, n.Vertex)
			}
		}
	}

	return seen
}

// TestDFS_Errors verifies invalid inputs are rejected.
func TestDFS_Errors(t *testing.T) {
	if _, err := dfs.DFS(nil, 0); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := buildGraph(t, 2, nil)
	for _, start := range []int{-1, 2} {
		if _, err := dfs.DFS(g, start); !errors.Is(err, dfs.ErrStartOutOfRange) {
			t.Errorf("start %d: want ErrStartOutOfRange, got %v", start, err)
		}
	}
}

// TestDFS_SpanningTree verifies the result spans start's component with
// |R|-1 edges drawn from the input at original weights.
func TestDFS_SpanningTree(t *testing.T) {
	g := buildGraph(t, 5, [][3]int{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 2}, {1, 3, 5}, {2, 3, 8}, {3, 4, 3},
	})

	tree, err := dfs.DFS(g, 0)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if tree.VertexCount() != g.VertexCount() {
		t.Fatalf("VertexCount = %d; want %d", tree.VertexCount(), g.VertexCount())
	}

	if diff := edgeSet(t, tree).Difference(edgeSet(t, g)); diff.Cardinality() != 0 {
		t.Errorf("tree invented edges: %v", diff.ToSlice())
	}

	r := reachable(t, g, 0)
	if got, want := edgeSet(t, tree).Cardinality(), r.Cardinality()-1; got != want {
		t.Errorf("tree has %d edges; want %d", got, want)
	}
	if !reachable(t, tree, 0).Equal(r) {
		t.Errorf("tree does not span the reachable set")
	}
}

// TestDFS_DepthFirstOrder pins the deterministic tree on a graph where
// depth-first and breadth-first disagree.
func TestDFS_DepthFirstOrder(t *testing.T) {
	// Path plus chord. 0's adjacency: 2 (newest) then 1.
	// DFS dives 0→2→3→... while BFS would fan out.
	g := buildGraph(t, 4, [][3]int{
		{0, 1, 10}, {0, 2, 20}, {2, 3, 30}, {1, 3, 40},
	})

	tree, err := dfs.DFS(g, 0)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	// From 0: first neighbor is 2 → edge 0-2, recurse.
	// At 2: first unvisited neighbor is 3 → edge 2-3, recurse.
	// At 3: first unvisited neighbor is 1 → edge 1-3 (as 3→1), recurse.
	want := mapset.NewSet("0-2:20", "2-3:30", "1-3:40")
	if got := edgeSet(t, tree); !got.Equal(want) {
		t.Errorf("tree edges = %v; want %v", got.ToSlice(), want.ToSlice())
	}
}

// TestDFS_Disconnected verifies only start's component is populated.
func TestDFS_Disconnected(t *testing.T) {
	g := buildGraph(t, 6, [][3]int{{0, 1, 1}, {1, 2, 1}, {4, 5, 7}})

	tree, err := dfs.DFS(g, 0)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	for _, v := range []int{3, 4, 5} {
		nbrs, _ := tree.Neighbors(v)
		if len(nbrs) != 0 {
			t.Errorf("vertex %d outside start's component has edges %v", v, nbrs)
		}
	}
}

// TestDFS_LongChain exercises recursion depth on a 2000-vertex path.
func TestDFS_LongChain(t *testing.T) {
	const n = 2000
	g, err := core.New(n)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i, 1)
	}

	tree, err := dfs.DFS(g, 0)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if got, want := edgeSet(t, tree).Cardinality(), n-1; got != want {
		t.Errorf("chain tree has %d edges; want %d", got, want)
	}
}
