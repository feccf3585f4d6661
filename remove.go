package btree

// Remove deletes key from the tree. Removing an absent key, or removing from
// an empty tree, is a no-op. Remove reports whether key has been deleted.
func (t *Tree[K]) Remove(key K) bool {
	if t.root == nil {
		return false
	}
	removed := t.remove(t.root, key)
	if removed {
		t.count--
	}
	if t.root.n == 0 {
		t.shrinkRoot()
	}
	return removed
}

// shrinkRoot drops an empty root. An internal root is replaced by its only
// child, a leaf root leaves the tree empty. This is the only place where the
// tree loses height.
func (t *Tree[K]) shrinkRoot() {
	old := t.root
	if old.leaf {
		t.root = nil
	} else {
		t.root = old.children[0]
	}
	t.release(old)
	t.height--
	t.stats.Shrinks++
	T().Debugf("btree: root shrinks, height is now %d", t.height)
}

// remove deletes key from the subtree rooted at n and repairs underflow of
// the child it descended into.
func (t *Tree[K]) remove(n *node[K], key K) bool {
	pos := n.findKey(key)
	if n.hasKeyAt(pos, key) {
		if n.leaf {
			n.removeKeyAt(pos)
		} else {
			t.removeInner(n, pos)
		}
		return true
	}
	if n.leaf {
		return false
	}
	removed := t.remove(n.children[pos], key)
	t.balance(n, pos)
	return removed
}

// removeInner replaces the separator at pos with its in-order predecessor,
// the maximum of the left subtree, and removes that from the subtree.
func (t *Tree[K]) removeInner(n *node[K], pos int) {
	left := n.children[pos]
	n.keys[pos] = left.max()
	t.removeMax(left)
	t.balance(n, pos)
}

// removeMax deletes the largest key of the subtree rooted at n.
func (t *Tree[K]) removeMax(n *node[K]) {
	if n.leaf {
		n.removeKeyAt(n.n - 1)
		return
	}
	t.removeMax(n.children[n.n])
	t.balance(n, n.n)
}
