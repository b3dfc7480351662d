package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates a non-positive universe size passed to New.
	ErrInvalidSize = errors.New("unionfind: size must be positive")

	// ErrIndexOutOfRange indicates an element index outside [0, size).
	ErrIndexOutOfRange = errors.New("unionfind: element index out of range")
)

// UnionFind tracks a partition of [0, size) into disjoint sets.
type UnionFind struct {
	// parent[i] is i's parent in the forest; a root is its own parent.
	parent []int
	// rank[i] bounds the height of the subtree rooted at i.
	rank []int
}

// New creates a UnionFind where every element of [0, size) is its own
// singleton set with rank 0.
// Returns ErrInvalidSize if size <= 0.
// Complexity: O(size).
func New(size int) (*UnionFind, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	uf := &UnionFind{
		parent: make([]int, size),
		rank:   make([]int, size),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf, nil
}

// Find returns the representative (root) of the set containing a,
// compressing the path so every visited node points directly at the root.
// Returns ErrIndexOutOfRange if a is outside [0, size).
// Complexity: amortized near-O(1).
func (uf *UnionFind) Find(a int) (int, error) {
	if err := uf.check(a); err != nil {
		return 0, err
	}

	return uf.findRoot(a), nil
}

// Unite merges the sets containing a and b. A no-op when they already
// share a root. Otherwise the lower-rank root attaches under the higher;
// on tied rank a's root becomes the parent and its rank increments.
// Returns ErrIndexOutOfRange if a or b is outside [0, size).
func (uf *UnionFind) Unite(a, b int) error {
	if err := uf.check(a); err != nil {
		return err
	}
	if err := uf.check(b); err != nil {
		return err
	}

	rootA := uf.findRoot(a)
	rootB := uf.findRoot(b)
	if rootA == rootB {
		return nil
	}

	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}

	return nil
}

// findRoot follows parent links to the root, compressing as it returns.
// Indices are validated by the exported callers.
func (uf *UnionFind) findRoot(a int) int {
	if uf.parent[a] != a {
		uf.parent[a] = uf.findRoot(uf.parent[a])
	}

	return uf.parent[a]
}

// check validates an element index against [0, size).
func (uf *UnionFind) check(a int) error {
	if a < 0 || a >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, a, len(uf.parent))
	}

	return nil
}
