package queue_test

import (
	"fmt"

	"github.com/GeekShuker/GraphAssignment/queue"
)

// ExampleQueue demonstrates strict FIFO order and the full-queue error.
func ExampleQueue() {
	q, _ := queue.New(3)

	q.Enqueue(7)
	q.Enqueue(8)
	q.Enqueue(9)

	// A fourth element does not fit.
	fmt.Println(q.Enqueue(10))

	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// queue: queue is full
	// 7
	// 8
	// 9
}
