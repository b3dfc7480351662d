// Package pqueue implements a fixed-capacity binary min-heap of
// (value, priority) pairs.
//
// Ordering is by priority alone: ExtractMin always yields a value whose
// priority is minimal among the elements present. Ties carry no stability
// guarantee — equal-priority elements come out in unspecified relative
// order.
//
// There is deliberately no decrease-key operation. Consumers that need to
// lower a value's priority (dijkstra, mst.Prim) simply Insert the value
// again with the new priority and skip the stale entry when it eventually
// surfaces — the classic lazy-decrease-key pattern.
//
// Complexity: Insert and ExtractMin are O(log n); IsEmpty and Len are O(1).
//
// Errors (sentinel):
//
//	– ErrInvalidCapacity if New is given a non-positive capacity.
//	– ErrFull            if Insert is attempted at capacity.
//	– ErrEmpty           if ExtractMin is attempted with no elements.
package pqueue
