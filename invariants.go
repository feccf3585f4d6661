package btree

import (
	"cmp"
	"fmt"
)

// Check validates the structural tree invariants:
//
//   - keys within a node are strictly ascending,
//   - every non-root node holds between M−1 and 2M−1 keys, a root holds at
//     least one key,
//   - an internal node with k keys has exactly k+1 children,
//   - all leaves are at the same depth,
//   - keys of child c[i] lie strictly between the separators k[i-1] and k[i].
//
// Check also verifies the bookkeeping of key count, height and node buffers.
// It is meant for tests and debugging.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and len=0", ErrCorrupted)
		}
		return nil
	}
	if t.root.n == 0 {
		return fmt.Errorf("%w: root of non-empty tree has no keys", ErrCorrupted)
	}
	keys, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorrupted, height, t.height)
	}
	if keys != t.count {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrCorrupted, keys, t.count)
	}
	return nil
}

// checkNode validates the subtree at n, whose keys must lie strictly between
// lo and hi (nil meaning unbounded).
func (t *Tree[K]) checkNode(n *node[K], isRoot bool, lo, hi *K) (keys int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrCorrupted)
	}
	if n.released {
		return 0, 0, fmt.Errorf("%w: released node still linked", ErrCorrupted)
	}
	if err := t.checkBuffers(n); err != nil {
		return 0, 0, err
	}
	if !isRoot && (n.n < t.cfg.minKeys() || n.n > t.cfg.maxKeys()) {
		return 0, 0, fmt.Errorf("%w: node fill %d outside [%d,%d]",
			ErrCorrupted, n.n, t.cfg.minKeys(), t.cfg.maxKeys())
	}
	for i := 0; i < n.n; i++ {
		if i > 0 && !cmp.Less(n.keys[i-1], n.keys[i]) {
			return 0, 0, fmt.Errorf("%w: keys not ascending at index %d (%v, %v)",
				ErrCorrupted, i, n.keys[i-1], n.keys[i])
		}
		if lo != nil && !cmp.Less(*lo, n.keys[i]) {
			return 0, 0, fmt.Errorf("%w: key %v not greater than separator %v", ErrCorrupted, n.keys[i], *lo)
		}
		if hi != nil && !cmp.Less(n.keys[i], *hi) {
			return 0, 0, fmt.Errorf("%w: key %v not less than separator %v", ErrCorrupted, n.keys[i], *hi)
		}
	}
	if n.leaf {
		return n.n, 1, nil
	}
	total := n.n
	var childHeight int
	for i := 0; i <= n.n; i++ {
		child := n.children[i]
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrCorrupted, i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < n.n {
			chi = &n.keys[i]
		}
		cKeys, cHeight, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at different depths", ErrCorrupted)
		}
	}
	return total, childHeight + 1, nil
}

// checkBuffers verifies that the node buffers are sized for the tree order
// and that slots beyond the fill count are cleared.
func (t *Tree[K]) checkBuffers(n *node[K]) error {
	if len(n.keys) != t.cfg.maxKeys() {
		return fmt.Errorf("%w: key buffer has length %d, expected %d", ErrCorrupted, len(n.keys), t.cfg.maxKeys())
	}
	if n.n < 0 || n.n > len(n.keys) {
		return fmt.Errorf("%w: fill count %d out of range", ErrCorrupted, n.n)
	}
	var zero K
	for i := n.n; i < len(n.keys); i++ {
		if n.keys[i] != zero {
			return fmt.Errorf("%w: stale key %v beyond fill count at index %d", ErrCorrupted, n.keys[i], i)
		}
	}
	if n.leaf {
		if n.children != nil {
			return fmt.Errorf("%w: leaf carries a child buffer", ErrCorrupted)
		}
		return nil
	}
	if len(n.children) != t.cfg.maxChildren() {
		return fmt.Errorf("%w: child buffer has length %d, expected %d",
			ErrCorrupted, len(n.children), t.cfg.maxChildren())
	}
	for i := n.n + 1; i < len(n.children); i++ {
		if n.children[i] != nil {
			return fmt.Errorf("%w: stale child beyond fill count at index %d", ErrCorrupted, i)
		}
	}
	return nil
}
