// Package bfs provides breadth-first search over a core.Graph, returning
// the BFS tree as a fresh graph of the same vertex count.
//
// BFS explores vertices in increasing edge-count distance from the start
// vertex. Each reachable non-start vertex receives exactly one parent
// edge, added the moment it is first discovered, so the result is layered
// by distance from the start. Vertices unreachable from the start keep
// zero neighbors in the result.
//
// The traversal's working storage is a visited slice of size V and a
// queue.Queue of capacity V — each vertex is enqueued at most once, so
// the fixed capacity can never overflow.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
//
// Errors (sentinel):
//
//	– ErrGraphNil          if g is nil.
//	– ErrStartOutOfRange   if start ∉ [0, V).
package bfs
