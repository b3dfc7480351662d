package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrInvalidCapacity indicates a non-positive capacity passed to New.
	ErrInvalidCapacity = errors.New("queue: capacity must be positive")

	// ErrFull indicates an Enqueue on a queue already holding capacity elements.
	ErrFull = errors.New("queue: queue is full")

	// ErrEmpty indicates a Dequeue on a queue with no elements.
	ErrEmpty = errors.New("queue: queue is empty")
)

// Queue is a fixed-capacity FIFO of ints over a circular buffer.
//
// front indexes the oldest element; count tracks occupancy. The rear slot
// is derived as (front+count)%cap, so no separate rear index is stored.
type Queue struct {
	data  []int
	front int
	count int
}

// New creates an empty Queue able to hold up to capacity elements.
// Returns ErrInvalidCapacity if capacity <= 0.
func New(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Queue{data: make([]int, capacity)}, nil
}

// Enqueue appends v at the rear of the queue.
// Returns ErrFull when the queue already holds capacity elements.
// Complexity: O(1).
func (q *Queue) Enqueue(v int) error {
	if q.count == len(q.data) {
		return ErrFull
	}

	q.data[(q.front+q.count)%len(q.data)] = v
	q.count++

	return nil
}

// Dequeue removes and returns the oldest element (strict FIFO order).
// Returns ErrEmpty when the queue holds no elements.
// Complexity: O(1).
func (q *Queue) Dequeue() (int, error) {
	if q.count == 0 {
		return 0, ErrEmpty
	}

	v := q.data[q.front]
	q.front = (q.front + 1) % len(q.data)
	q.count--

	return v, nil
}

// IsEmpty reports whether the queue holds no elements. Complexity: O(1).
func (q *Queue) IsEmpty() bool {
	return q.count == 0
}

// Len reports the number of elements currently held. Complexity: O(1).
func (q *Queue) Len() int {
	return q.count
}
