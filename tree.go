package btree

import (
	"cmp"
	"fmt"
)

// Tree is a B-tree holding a set of distinct keys of type K.
//
// The zero value is not usable; create trees with New or MustNew.
// A Tree must not be used from more than one goroutine at a time.
type Tree[K cmp.Ordered] struct {
	cfg    Config
	root   *node[K]
	height int // 0 means empty tree
	count  int
	free   *freeList[K]
	stats  Stats
}

// Stats counts structural events since a tree has been created.
type Stats struct {
	Splits       int // child splits, including those of a growing root
	Merges       int // sibling merges
	RotationsCW  int // keys borrowed from a left sibling
	RotationsCCW int // keys borrowed from a right sibling
	Grows        int // root growth events
	Shrinks      int // root shrink events
	Allocated    int // nodes handed out, fresh or recycled
	Released     int // nodes released by merges, shrinks and teardown
}

// Live returns the number of nodes currently owned by the tree.
func (s Stats) Live() int {
	return s.Allocated - s.Released
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered](cfg Config) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		T().Errorf("btree: %s", err.Error())
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K]{
		cfg:  cfg,
		free: newFreeList[K](cfg.FreeListSize),
	}, nil
}

// MustNew is like New, but panics on an invalid configuration.
func MustNew[K cmp.Ordered](cfg Config) *Tree[K] {
	t, err := New[K](cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config {
	return t.cfg
}

// Order returns the order M of the tree.
func (t *Tree[K]) Order() int {
	return t.cfg.Order
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Stats returns the structural event counters of the tree.
func (t *Tree[K]) Stats() Stats {
	return t.stats
}

// Find reports whether key is present in the tree.
func (t *Tree[K]) Find(key K) bool {
	if t.IsEmpty() {
		return false
	}
	return t.root.find(key)
}

// Clear removes all keys from the tree.
//
// Nodes are released in post-order using an explicit stack, so teardown does
// not recurse regardless of tree height.
func (t *Tree[K]) Clear() {
	if t.IsEmpty() {
		return
	}
	type frame struct {
		n    *node[K]
		next int // next child to visit
	}
	released := 0
	stack := make([]frame, 1, t.height)
	stack[0] = frame{n: t.root}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.n.leaf && top.next <= top.n.n {
			child := top.n.children[top.next]
			top.next++
			stack = append(stack, frame{n: child})
			continue
		}
		stack = stack[:len(stack)-1]
		t.release(top.n)
		released++
	}
	T().Debugf("btree: cleared tree of height %d, released %d nodes", t.height, released)
	t.root = nil
	t.height = 0
	t.count = 0
}

// String returns a short description of the tree.
func (t *Tree[K]) String() string {
	if t == nil {
		return "btree(nil)"
	}
	return fmt.Sprintf("btree(M=%d, len=%d, height=%d)", t.cfg.Order, t.count, t.height)
}
