// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on a weighted core.Graph, returning the shortest-path tree as
// a fresh graph of the same vertex count.
//
// The implementation uses the lazy-decrease-key pattern over the
// fixed-capacity pqueue heap: when a vertex's tentative distance improves,
// it is pushed again with the new priority; the stale, larger-distance
// entry stays in the heap and is harmless when later extracted, because
// the relaxation test no longer holds for it. The heap is sized so the
// worst-case number of pending entries (one push per strict distance
// improvement, bounded by the adjacency entry count) always fits.
//
// Each tree edge (prev[v], v) carries dist[v]−dist[prev[v]], which
// reconstructs the original weight of the relaxing edge.
//
// Negative weights are rejected up front with ErrNegativeWeight — an
// O(V+E) pre-scan that turns the silent undefined behavior of a naive
// rendition into a fail-fast error.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with the lazy heap — each of the ≤E pushes
//     and extractions costs O(log E).
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//	– ErrGraphNil        if g is nil.
//	– ErrStartOutOfRange if start ∉ [0, V).
//	– ErrNegativeWeight  if any edge carries a negative weight.
package dijkstra
