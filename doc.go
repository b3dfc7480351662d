// Package graphassignment is a compact library of classic graph algorithms
// over an undirected, weighted, fixed-size adjacency-list graph, together
// with the three support structures the algorithms are built on.
//
// What's inside?
//
//	A small, deliberately self-contained toolkit:
//		• Core primitive: core.Graph — fixed vertex count, adjacency lists,
//		  O(1) edge insertion, multi-edge friendly
//		• Traversals: BFS, DFS — each returns its spanning tree as a fresh Graph
//		• Shortest paths: Dijkstra — shortest-path tree via a lazy min-heap
//		• Minimum spanning trees: Prim, Kruskal — tree on connected input,
//		  forest on disconnected input
//		• Support structures, built from scratch: queue (circular FIFO),
//		  pqueue (binary min-heap), unionfind (path compression + rank)
//
// Why from-scratch containers?
//
//   - Explicit capacity – every container is sized at construction and
//     reports ErrFull instead of silently growing
//   - Explicit failures – every misuse (bad index, empty pop) is a sentinel
//     error the caller can test with errors.Is
//   - Pure Go – no cgo, no hidden machinery
//
// Everything is organized under flat subpackages:
//
//	core/       — the Graph container and its Neighbor view
//	queue/      — fixed-capacity circular-buffer FIFO of ints
//	pqueue/     — fixed-capacity binary min-heap of (value, priority) pairs
//	unionfind/  — disjoint sets with path compression and union by rank
//	bfs/, dfs/  — breadth- and depth-first spanning trees
//	dijkstra/   — single-source shortest-path tree
//	mst/        — Prim and Kruskal minimum spanning tree/forest
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square on four vertices; every algorithm in this module consumes a
//	graph like this and hands back a new one holding the selected edges.
//
// See cmd/graphdemo for a runnable tour of all five algorithms.
package graphassignment
