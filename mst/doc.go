// Package mst provides two algorithms for computing the minimum spanning
// tree of an undirected, weighted core.Graph: Prim's and Kruskal's. Both
// return the result as a fresh graph of the same vertex count.
//
// Algorithms:
//
//   - Prim(g): grows the tree outward from vertex 0, tracking for every
//     outside vertex the cheapest edge connecting it to the tree via the
//     pqueue min-heap (lazy decrease-key: improvements are re-inserted,
//     stale entries are skipped by the inMST check).
//
//   - Kruskal(g): collects every undirected edge once, sorts by ascending
//     weight, and admits each edge whose endpoints are in different
//     unionfind sets.
//
// Connectivity is NOT verified. On a disconnected graph both algorithms
// quietly produce a minimum spanning forest — one tree per component
// reachable under their selection rule (for Prim, only vertex 0's
// component gains edges) — rather than failing. Callers who require a
// single spanning tree should check the result's edge count against V−1.
//
// On a connected graph both produce V−1 edges and the same minimal total
// weight, though tied weights may yield different edge sets.
//
// Complexity:
//
//   - Prim:    O(E log E) time, O(V + E) space (lazy heap).
//   - Kruskal: O(E log E) time for the sort, O(V + E) space.
//
// Errors (sentinel):
//
//	– ErrGraphNil if g is nil.
package mst
