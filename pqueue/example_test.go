package pqueue_test

import (
	"fmt"

	"github.com/GeekShuker/GraphAssignment/pqueue"
)

// ExamplePriorityQueue demonstrates minimum-first extraction.
func ExamplePriorityQueue() {
	pq, _ := pqueue.New(4)

	pq.Insert(300, 3)
	pq.Insert(100, 1)
	pq.Insert(200, 2)

	for !pq.IsEmpty() {
		v, _ := pq.ExtractMin()
		fmt.Println(v)
	}
	// Output:
	// 100
	// 200
	// 300
}
