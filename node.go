package btree

import "cmp"

// node is a B-tree node. Key and child buffers are allocated once, sized for
// the tree's order; the fill count n tells how much of them is in use.
type node[K cmp.Ordered] struct {
	leaf bool
	// n is the fill count; valid keys are keys[:n], valid children are
	// children[:n+1]. Slots beyond are kept zeroed.
	n int
	// keys has len == 2M−1.
	keys []K
	// children has len == 2M for internal nodes and is nil for leaves.
	children []*node[K]
	// released is set while the node sits on the free list or has been dropped.
	released bool
}

// findKey returns the index of the first key >= v, or n if there is none.
func (n *node[K]) findKey(v K) int {
	i := 0
	for i < n.n && cmp.Less(n.keys[i], v) {
		i++
	}
	return i
}

func (n *node[K]) hasKeyAt(pos int, v K) bool {
	return pos < n.n && cmp.Compare(n.keys[pos], v) == 0
}

// find descends from n towards v, one node per level.
func (n *node[K]) find(v K) bool {
	cur := n
	for {
		pos := cur.findKey(v)
		if cur.hasKeyAt(pos, v) {
			return true
		}
		if cur.leaf {
			return false
		}
		cur = cur.children[pos]
	}
}

// max returns the largest key of the subtree rooted at n, following the
// rightmost spine.
func (n *node[K]) max() K {
	cur := n
	for !cur.leaf {
		cur = cur.children[cur.n]
	}
	assert(cur.n > 0, "max called on empty subtree")
	return cur.keys[cur.n-1]
}

func (n *node[K]) insertKeyAt(pos int, v K) {
	assert(n.n < len(n.keys), "insertKeyAt exceeds node capacity")
	assert(pos >= 0 && pos <= n.n, "insertKeyAt index out of range")
	copy(n.keys[pos+1:n.n+1], n.keys[pos:n.n])
	n.keys[pos] = v
	n.n++
}

func (n *node[K]) removeKeyAt(pos int) {
	assert(pos >= 0 && pos < n.n, "removeKeyAt index out of range")
	copy(n.keys[pos:n.n-1], n.keys[pos+1:n.n])
	n.n--
	var zero K
	n.keys[n.n] = zero
}
