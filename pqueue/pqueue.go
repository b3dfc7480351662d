package pqueue

import (
	"errors"
	"fmt"
)

// Sentinel errors for priority-queue operations.
var (
	// ErrInvalidCapacity indicates a non-positive capacity passed to New.
	ErrInvalidCapacity = errors.New("pqueue: capacity must be positive")

	// ErrFull indicates an Insert on a heap already holding capacity elements.
	ErrFull = errors.New("pqueue: priority queue is full")

	// ErrEmpty indicates an ExtractMin on a heap with no elements.
	ErrEmpty = errors.New("pqueue: priority queue is empty")
)

// element is one heap slot: an opaque value ordered by its priority.
type element struct {
	value    int
	priority int
}

// PriorityQueue is a fixed-capacity binary min-heap laid out in the usual
// array form: children of slot i live at 2i+1 and 2i+2.
type PriorityQueue struct {
	heap []element
	size int
}

// New creates an empty PriorityQueue able to hold up to capacity elements.
// Returns ErrInvalidCapacity if capacity <= 0.
func New(capacity int) (*PriorityQueue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &PriorityQueue{heap: make([]element, capacity)}, nil
}

// Insert adds value with the given priority (lower = sooner extracted).
// Returns ErrFull when the heap already holds capacity elements.
// Complexity: O(log n).
func (pq *PriorityQueue) Insert(value, priority int) error {
	if pq.size == len(pq.heap) {
		return ErrFull
	}

	pq.heap[pq.size] = element{value: value, priority: priority}
	pq.siftUp(pq.size)
	pq.size++

	return nil
}

// ExtractMin removes and returns the value with the smallest priority.
// Returns ErrEmpty when the heap holds no elements.
// Complexity: O(log n).
func (pq *PriorityQueue) ExtractMin() (int, error) {
	if pq.size == 0 {
		return 0, ErrEmpty
	}

	min := pq.heap[0].value
	pq.size--
	pq.heap[0] = pq.heap[pq.size]
	pq.siftDown(0)

	return min, nil
}

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (pq *PriorityQueue) IsEmpty() bool {
	return pq.size == 0
}

// Len reports the number of elements currently held. Complexity: O(1).
func (pq *PriorityQueue) Len() int {
	return pq.size
}

// siftUp restores the heap invariant after an append at slot i: while i's
// priority is strictly smaller than its parent's, swap with the parent.
func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 && pq.heap[i].priority < pq.heap[(i-1)/2].priority {
		pq.heap[i], pq.heap[(i-1)/2] = pq.heap[(i-1)/2], pq.heap[i]
		i = (i - 1) / 2
	}
}

// siftDown restores the heap invariant after a root replacement: swap with
// the strictly smaller child until neither child is smaller.
func (pq *PriorityQueue) siftDown(i int) {
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < pq.size && pq.heap[left].priority < pq.heap[smallest].priority {
			smallest = left
		}
		if right < pq.size && pq.heap[right].priority < pq.heap[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		pq.heap[i], pq.heap[smallest] = pq.heap[smallest], pq.heap[i]
		i = smallest
	}
}
