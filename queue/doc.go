// Package queue implements a fixed-capacity FIFO queue of ints backed by
// a circular buffer.
//
// The queue is sized once at construction and never grows: Enqueue on a
// full queue fails with ErrFull rather than reallocating, which keeps the
// breadth-first traversal in bfs honest about its O(V) working storage.
//
// Complexity: Enqueue, Dequeue, IsEmpty and Len are all O(1).
//
// Errors (sentinel):
//
//	– ErrInvalidCapacity if New is given a non-positive capacity.
//	– ErrFull            if Enqueue is attempted at capacity.
//	– ErrEmpty           if Dequeue is attempted with no elements.
package queue
