package btree

import "cmp"

// Insert adds key to the tree. Inserting a key which is already present is a
// no-op. Insert reports whether key has been added.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		t.root = t.newNode(true)
		t.root.insertKeyAt(0, key)
		t.height = 1
		t.count = 1
		return true
	}
	if t.root.n == t.cfg.maxKeys() {
		t.growRoot()
	}
	if !t.insert(t.root, key) {
		return false
	}
	t.count++
	return true
}

// growRoot wraps a full root into a new internal root and splits it. This is
// the only place where the tree gains height.
func (t *Tree[K]) growRoot() {
	root := t.newNode(false)
	root.children[0] = t.root
	t.root = root
	t.splitChild(root, 0)
	t.height++
	t.stats.Grows++
	T().Debugf("btree: root grows, height is now %d", t.height)
}

// insert places key in the subtree rooted at n, which must not be full.
// Full children are split before the descent enters them.
func (t *Tree[K]) insert(n *node[K], key K) bool {
	pos := n.findKey(key)
	if n.leaf {
		if n.hasKeyAt(pos, key) {
			return false
		}
		n.insertKeyAt(pos, key)
		return true
	}
	if n.children[pos].n == t.cfg.maxKeys() {
		t.splitChild(n, pos)
		if cmp.Less(n.keys[pos], key) {
			pos++
		}
	}
	if n.hasKeyAt(pos, key) { // equal to a separator, possibly the promoted median
		return false
	}
	return t.insert(n.children[pos], key)
}

// splitChild splits the full child at slot id of parent. The left half keeps
// the first M−1 keys, a new right sibling receives the last M−1 keys, and the
// median moves up into parent at position id.
func (t *Tree[K]) splitChild(parent *node[K], id int) {
	m := t.cfg.Order
	l := parent.children[id]
	assert(l.n == t.cfg.maxKeys(), "splitChild called for non-full child")
	assert(parent.n < t.cfg.maxKeys(), "splitChild called for full parent")
	r := t.newNode(l.leaf)
	copy(r.keys[:m-1], l.keys[m:l.n])
	r.n = m - 1
	if !l.leaf {
		copy(r.children[:m], l.children[m:l.n+1])
		clear(l.children[m : l.n+1])
	}
	median := l.keys[m-1]
	clear(l.keys[m-1 : l.n])
	l.n = m - 1

	copy(parent.keys[id+1:parent.n+1], parent.keys[id:parent.n])
	copy(parent.children[id+2:parent.n+2], parent.children[id+1:parent.n+1])
	parent.keys[id] = median
	parent.children[id+1] = r
	parent.n++
	t.stats.Splits++
}
