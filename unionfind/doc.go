// Package unionfind implements a disjoint-set (union-find) structure with
// path compression and union by rank over the fixed universe [0, size).
//
// Find flattens every node it visits onto the root, so repeated queries
// approach O(1) amortized (inverse-Ackermann, for the pedantic). Unite
// attaches the shallower tree under the deeper one; on tied rank the first
// argument's root wins and its rank grows by one.
//
// Invariants:
//
//   - The parent mapping is always a forest — Find terminates.
//   - A root's rank only increases when two equal-rank trees merge.
//
// Errors (sentinel):
//
//	– ErrInvalidSize     if New is given a non-positive size.
//	– ErrIndexOutOfRange if Find/Unite references an element ∉ [0, size).
package unionfind
