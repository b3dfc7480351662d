package unionfind_test

import (
	"fmt"

	"github.com/GeekShuker/GraphAssignment/unionfind"
)

// ExampleUnionFind demonstrates merging sets and querying representatives.
func ExampleUnionFind() {
	uf, _ := unionfind.New(5)

	uf.Unite(0, 1)
	uf.Unite(3, 4)

	a, _ := uf.Find(1)
	b, _ := uf.Find(4)
	c, _ := uf.Find(2)

	fmt.Println(a == b) // {0,1} and {3,4} are still separate
	fmt.Println(c)      // 2 is untouched

	uf.Unite(1, 4)
	a, _ = uf.Find(0)
	b, _ = uf.Find(3)
	fmt.Println(a == b)
	// Output:
	// false
	// 2
	// true
}
