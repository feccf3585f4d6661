package btree

import "cmp"

// freeList keeps released nodes of a single tree for reuse. Leaves and
// internal nodes are pooled separately, as only internal nodes carry a
// child buffer.
type freeList[K cmp.Ordered] struct {
	leaves []*node[K]
	inner  []*node[K]
}

func newFreeList[K cmp.Ordered](size int) *freeList[K] {
	return &freeList[K]{
		leaves: make([]*node[K], 0, size),
		inner:  make([]*node[K], 0, size),
	}
}

// get pops a pooled node of the requested kind, or returns nil.
func (f *freeList[K]) get(leaf bool) *node[K] {
	list := &f.inner
	if leaf {
		list = &f.leaves
	}
	index := len(*list) - 1
	if index < 0 {
		return nil
	}
	n := (*list)[index]
	(*list)[index] = nil
	*list = (*list)[:index]
	return n
}

// put pools n if there is room left. It reports whether n has been kept.
func (f *freeList[K]) put(n *node[K]) bool {
	list := &f.inner
	if n.leaf {
		list = &f.leaves
	}
	if len(*list) < cap(*list) {
		*list = append(*list, n)
		return true
	}
	return false
}

func (f *freeList[K]) len() int {
	return len(f.leaves) + len(f.inner)
}

// newNode hands out a cleared node, preferring pooled ones.
func (t *Tree[K]) newNode(leaf bool) *node[K] {
	n := t.free.get(leaf)
	if n == nil {
		n = &node[K]{leaf: leaf, keys: make([]K, t.cfg.maxKeys())}
		if !leaf {
			n.children = make([]*node[K], t.cfg.maxChildren())
		}
	}
	n.released = false
	t.stats.Allocated++
	return n
}

// release clears n and returns it to the free list. A node must be released
// exactly once.
func (t *Tree[K]) release(n *node[K]) {
	assert(n != nil, "release called with nil node")
	assert(!n.released, "node released twice")
	clear(n.keys)
	clear(n.children)
	n.n = 0
	n.released = true
	t.stats.Released++
	t.free.put(n)
}
