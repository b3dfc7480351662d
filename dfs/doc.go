// Package dfs provides depth-first search over a core.Graph, returning
// the DFS tree as a fresh graph of the same vertex count.
//
// The traversal is the classic recursive visit: mark the current vertex,
// then for each neighbor in adjacency order, if it is unvisited, record
// the tree edge and recurse. Only the start vertex's component is
// explored — on a disconnected graph every other component stays edgeless
// in the result (a full-forest driver would reseed per component; this
// one deliberately does not).
//
// Recursion depth is bounded by the longest simple path from the start,
// which is at most V; for the graph sizes this module targets that is
// well within Go's stack.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V) for the visited slice and recursion stack.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if g is nil.
//	– ErrStartOutOfRange if start ∉ [0, V).
package dfs
