package wavl

// Insert adds key with an associated value to the tree. It returns the number
// of rebalancing operations performed, i.e. promotions and rotations, where a
// double rotation counts as 2.
//
// If key is already present, the tree is left unchanged and Insert returns -1
// and ErrDuplicateKey.
func (t *Tree) Insert(key int, value string) (int, error) {
	t.setup(0)
	if t.root == ext {
		t.root = t.alloc(key, value)
		t.verify("insert", key)
		return 0, nil
	}
	p, found := t.locate(key)
	if found {
		tracer().Infof("wavl: insert of duplicate key %d rejected", key)
		return -1, ErrDuplicateKey
	}
	x := t.alloc(key, value)
	t.nodes[x].parent = p
	if key < t.nodes[p].key {
		t.nodes[p].left = x
	} else {
		t.nodes[p].right = x
	}
	t.updateSizes(p)
	ops := 0
	if t.nodes[p].rank == 0 { // p has been a leaf and is now a (0,1) or (1,0) node
		ops = t.rebalanceInsert(x)
	}
	t.verify("insert", key)
	return ops, nil
}

// rebalanceInsert resolves a rank difference of 0 between x and its parent.
// It promotes up the tree while the parent is a (0,1) or (1,0) node and
// finishes with at most one single or double rotation.
func (t *Tree) rebalanceInsert(x ref) int {
	ops := 0
	for x != t.root {
		p := t.nodes[x].parent
		if d := t.diff(p); d != (rankDiff{0, 1}) && d != (rankDiff{1, 0}) {
			break
		}
		t.promote(p)
		ops++
		x = p
	}
	if x == t.root {
		return ops
	}
	p := t.nodes[x].parent
	dp, dx := t.diff(p), t.diff(x)
	if dp.valid() {
		return ops
	}
	switch {
	case dp == rankDiff{0, 2} && dx == rankDiff{1, 2}:
		t.rotateRight(p)
		ops++
	case dp == rankDiff{2, 0} && dx == rankDiff{2, 1}:
		t.rotateLeft(p)
		ops++
	case dp == rankDiff{0, 2} && dx == rankDiff{2, 1}:
		t.rotateLeftRight(p)
		ops += 2
	case dp == rankDiff{2, 0} && dx == rankDiff{1, 2}:
		t.rotateRightLeft(p)
		ops += 2
	default:
		assert(false, "rebalanceInsert: unexpected rank differences")
	}
	return ops
}
