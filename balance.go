package btree

// balance repairs the child at slot id of n after a removal below it.
//
// An underflowing child first tries to borrow from its left sibling, then from
// its right sibling. Failing both, it is merged with the left sibling if there
// is one, else with the right sibling.
func (t *Tree[K]) balance(n *node[K], id int) {
	minKeys := t.cfg.minKeys()
	if n.children[id].n >= minKeys {
		return
	}
	switch {
	case id > 0 && n.children[id-1].n > minKeys:
		t.rotateCW(n, id-1)
	case id < n.n && n.children[id+1].n > minKeys:
		t.rotateCCW(n, id)
	case id > 0:
		t.mergeChildren(n, id-1)
	default:
		t.mergeChildren(n, id)
	}
}

// rotateCW moves the separator at id down into the right child c[id+1] and
// replaces it with the last key of the left child c[id]. The left child's
// last subtree becomes the right child's first subtree.
func (t *Tree[K]) rotateCW(n *node[K], id int) {
	l, r := n.children[id], n.children[id+1]
	assert(l.n > 0 && r.n < len(r.keys), "rotateCW with invalid sibling fill")
	copy(r.keys[1:r.n+1], r.keys[:r.n])
	r.keys[0] = n.keys[id]
	n.keys[id] = l.keys[l.n-1]
	if !r.leaf {
		copy(r.children[1:r.n+2], r.children[:r.n+1])
		r.children[0] = l.children[l.n]
		l.children[l.n] = nil
	}
	var zero K
	l.keys[l.n-1] = zero
	l.n--
	r.n++
	t.stats.RotationsCW++
}

// rotateCCW moves the separator at id down into the left child c[id] and
// replaces it with the first key of the right child c[id+1]. The right
// child's first subtree becomes the left child's last subtree.
func (t *Tree[K]) rotateCCW(n *node[K], id int) {
	l, r := n.children[id], n.children[id+1]
	assert(r.n > 0 && l.n < len(l.keys), "rotateCCW with invalid sibling fill")
	l.keys[l.n] = n.keys[id]
	n.keys[id] = r.keys[0]
	if !l.leaf {
		l.children[l.n+1] = r.children[0]
		copy(r.children[:r.n], r.children[1:r.n+1])
		r.children[r.n] = nil
	}
	copy(r.keys[:r.n-1], r.keys[1:r.n])
	var zero K
	r.keys[r.n-1] = zero
	l.n++
	r.n--
	t.stats.RotationsCCW++
}

// mergeChildren merges c[id+1] and the separator at id into c[id]. The
// absorbed right child is released and the parent loses one key.
func (t *Tree[K]) mergeChildren(n *node[K], id int) {
	l, r := n.children[id], n.children[id+1]
	assert(l.n+r.n+1 <= len(l.keys), "mergeChildren exceeds node capacity")
	l.keys[l.n] = n.keys[id]
	copy(l.keys[l.n+1:], r.keys[:r.n])
	if !l.leaf {
		copy(l.children[l.n+1:], r.children[:r.n+1])
	}
	l.n += r.n + 1

	copy(n.keys[id:n.n-1], n.keys[id+1:n.n])
	copy(n.children[id+1:n.n], n.children[id+2:n.n+1])
	var zero K
	n.keys[n.n-1] = zero
	n.children[n.n] = nil
	n.n--
	t.release(r)
	t.stats.Merges++
}
