package wavl

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - every real node has rank differences (1,1), (1,2), (2,1) or (2,2),
//   - every real node's size is 1 + size(left) + size(right),
//   - keys are strictly ordered in-order,
//   - parent links mirror child links and only the root has no parent,
//   - the external leaf is untouched,
//   - every arena slot is either reachable from the root or on the free list.
//
// Violations are reported as errors wrapping ErrCorrupt.
func (t *Tree) Check() error {
	if t == nil || t.nodes == nil {
		return nil
	}
	if e := t.nodes[ext]; e.rank != extRank || e.size != 0 || e.left != ext || e.right != ext || e.parent != none {
		return fmt.Errorf("%w: external leaf has been modified: %+v", ErrCorrupt, e)
	}
	reachable := 0
	if t.root != ext {
		if t.nodes[t.root].parent != none {
			return fmt.Errorf("%w: root %d has a parent", ErrCorrupt, t.nodes[t.root].key)
		}
		var err error
		var prev *int
		reachable, err = t.checkNode(t.root, &prev)
		if err != nil {
			return err
		}
	}
	free := 0
	for r := t.free; r != ext; r = t.nodes[r].left {
		if free++; free > len(t.nodes) {
			return fmt.Errorf("%w: free list contains a cycle", ErrCorrupt)
		}
	}
	if reachable+free+1 != len(t.nodes) {
		return fmt.Errorf("%w: %d reachable and %d free nodes, but %d slots",
			ErrCorrupt, reachable, free, len(t.nodes)-1)
	}
	return nil
}

// checkNode validates the subtree at r recursively and returns its size.
// prev tracks the most recent key in in-order.
func (t *Tree) checkNode(r ref, prev **int) (int, error) {
	if r == ext {
		return 0, nil
	}
	if r < 0 || int(r) >= len(t.nodes) {
		return 0, fmt.Errorf("%w: link %d outside of arena", ErrCorrupt, r)
	}
	n := &t.nodes[r]
	if !t.isReal(r) {
		return 0, fmt.Errorf("%w: freed slot %d linked into tree", ErrCorrupt, r)
	}
	for _, c := range [2]ref{n.left, n.right} {
		if c != ext && t.nodes[c].parent != r {
			return 0, fmt.Errorf("%w: child %d of %d has wrong parent link", ErrCorrupt, t.nodes[c].key, n.key)
		}
	}
	if d := t.diff(r); !d.valid() {
		return 0, fmt.Errorf("%w: node %d has rank differences (%d,%d)", ErrCorrupt, n.key, d.l, d.r)
	}
	lsz, err := t.checkNode(n.left, prev)
	if err != nil {
		return 0, err
	}
	if *prev != nil && **prev >= n.key {
		return 0, fmt.Errorf("%w: key %d follows key %d in-order", ErrCorrupt, n.key, **prev)
	}
	key := n.key
	*prev = &key
	rsz, err := t.checkNode(n.right, prev)
	if err != nil {
		return 0, err
	}
	if n.size != 1+lsz+rsz {
		return 0, fmt.Errorf("%w: node %d has size %d, expected %d", ErrCorrupt, n.key, n.size, 1+lsz+rsz)
	}
	return n.size, nil
}
