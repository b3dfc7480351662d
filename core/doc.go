// Package core provides the central Graph type: an undirected, weighted
// graph over a fixed set of integer vertices, stored as adjacency lists.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Vertices are plain indices in [0, V); V is fixed at construction
//     and never changes. There is no vertex payload.
//   - Edges are undirected and weighted: AddEdge(u, v, w) records the
//     entry (v, w) under u and (u, w) under v, both at the head of their
//     adjacency list, in O(1).
//   - Parallel edges between the same pair are permitted — insertion does
//     no existence check, so repeated AddEdge calls stack up.
//   - RemoveEdge is best-effort per direction: it deletes the first
//     (most recently inserted) matching entry on each side and silently
//     leaves a side unchanged when no match exists.
//   - Neighbors returns a snapshot slice in head-to-tail adjacency order
//     (most recently inserted first); the caller owns the slice.
//
// Every algorithm in this module both consumes a *core.Graph and returns
// its result (spanning tree, shortest-path tree, MST) as a fresh
// *core.Graph of the same vertex count, never aliasing the input.
//
// Concurrency:
//
//	A Graph carries no internal locking. Concurrent readers are safe;
//	a writer (AddEdge/RemoveEdge) must be serialized by the caller with
//	respect to both readers and other writers.
//
// Errors (sentinel):
//
//	– ErrInvalidVertexCount if New is given a non-positive vertex count.
//	– ErrVertexOutOfRange   if an operation references an index ∉ [0, V).
package core
