package btree

// ForEach walks the keys in ascending order.
//
// Iteration stops early if fn returns false. The tree must not be modified
// during the walk.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K]) forEachNode(n *node[K], fn func(key K) bool) bool {
	for i := 0; i < n.n; i++ {
		if !n.leaf && !t.forEachNode(n.children[i], fn) {
			return false
		}
		if !fn(n.keys[i]) {
			return false
		}
	}
	if !n.leaf {
		return t.forEachNode(n.children[n.n], fn)
	}
	return true
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk visits the nodes depth-first in pre-order: a node comes before its
// children, children come left to right. fn receives the depth of the node
// (0 for the root), whether it is a leaf, and its keys in ascending order.
// The keys slice is only valid during the call and must not be modified.
//
// Walking stops early if fn returns false.
func (t *Tree[K]) Walk(fn func(depth int, leaf bool, keys []K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.each(func(n *node[K], depth int) bool {
		return fn(depth, n.leaf, n.keys[:n.n:n.n])
	})
}

// each is the pre-order node traversal shared by Walk and the renderers.
// It uses an explicit stack.
func (t *Tree[K]) each(fn func(n *node[K], depth int) bool) {
	type frame struct {
		n     *node[K]
		depth int
	}
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.n, top.depth) {
			return
		}
		if top.n.leaf {
			continue
		}
		for i := top.n.n; i >= 0; i-- { // push right to left, pop left to right
			stack = append(stack, frame{n: top.n.children[i], depth: top.depth + 1})
		}
	}
}
