package wavl

// Delete removes key and its value from the tree. It returns the number of
// rebalancing operations performed, i.e. demotions, promotions and rotations
// as counted by the deletion cascade.
//
// If key is not present, the tree is left unchanged and Delete returns -1 and
// ErrKeyNotFound.
func (t *Tree) Delete(key int) (int, error) {
	if t.IsEmpty() {
		return -1, ErrKeyNotFound
	}
	z, found := t.locate(key)
	if !found {
		tracer().Infof("wavl: delete of missing key %d rejected", key)
		return -1, ErrKeyNotFound
	}
	if z == t.root && (t.nodes[z].left == ext || t.nodes[z].right == ext) {
		t.deleteRoot(z)
		t.verify("delete", key)
		return 0, nil
	}
	if t.nodes[z].left != ext && t.nodes[z].right != ext {
		z = t.swapWithSuccessor(z)
	}
	// z is now a leaf or unary node, and not the root
	p := t.nodes[z].parent
	child := t.nodes[z].left
	if child == ext {
		child = t.nodes[z].right
	}
	t.relink(p, z, child)
	t.release(z)
	t.updateSizes(p)
	ops := t.rebalanceDelete(p)
	t.verify("delete", key)
	return ops, nil
}

// deleteRoot removes a root with at most one real child. A unary root is
// replaced by its child, which has to be a leaf of rank 0; no rebalancing
// is necessary.
func (t *Tree) deleteRoot(z ref) {
	child := t.nodes[z].left
	if child == ext {
		child = t.nodes[z].right
	}
	t.release(z)
	if child == ext {
		t.Clear()
		return
	}
	t.relink(none, z, child)
	t.resize(child)
}

// swapWithSuccessor exchanges key and value of z with those of its in-order
// successor, the leftmost node of its right subtree, and returns the
// successor. z must have two real children.
func (t *Tree) swapWithSuccessor(z ref) ref {
	s := t.leftmost(t.nodes[z].right)
	zn, sn := &t.nodes[z], &t.nodes[s]
	zn.key, sn.key = sn.key, zn.key
	zn.value, sn.value = sn.value, zn.value
	return s
}

// rebalanceDelete walks up from n, the parent of a physically removed node,
// and demotes or rotates until all rank differences are valid again.
func (t *Tree) rebalanceDelete(n ref) int {
	ops := 0
	for {
		d := t.diff(n)
		switch {
		case d == rankDiff{2, 2} && t.isLeaf(n):
			t.demote(n)
			ops++
		case d.valid():
			return ops
		case d == rankDiff{3, 2} || d == rankDiff{2, 3}:
			t.demote(n)
			ops++
		case d == rankDiff{3, 1}:
			y := t.nodes[n].right
			switch dy := t.diff(y); {
			case dy == rankDiff{2, 2}:
				t.demote(n)
				t.demote(y)
				ops += 2
			case dy == rankDiff{2, 1} || dy == rankDiff{1, 1}:
				t.promote(t.rotateLeft(n))
				if t.diff(n) == (rankDiff{2, 2}) && t.isLeaf(n) {
					t.demote(n)
				}
				return ops + 1
			case dy == rankDiff{1, 2}:
				t.demote(n)
				t.promote(t.rotateRightLeft(n))
				return ops + 2
			default:
				assert(false, "rebalanceDelete: unexpected rank differences at right child")
			}
		case d == rankDiff{1, 3}:
			y := t.nodes[n].left
			switch dy := t.diff(y); {
			case dy == rankDiff{2, 2}:
				t.demote(n)
				t.demote(y)
				ops += 2
			case dy == rankDiff{1, 2} || dy == rankDiff{1, 1}:
				t.promote(t.rotateRight(n))
				if t.diff(n) == (rankDiff{2, 2}) && t.isLeaf(n) {
					t.demote(n)
				}
				return ops + 1
			case dy == rankDiff{2, 1}:
				t.demote(n)
				t.promote(t.rotateLeftRight(n))
				return ops + 2
			default:
				assert(false, "rebalanceDelete: unexpected rank differences at left child")
			}
		default:
			assert(false, "rebalanceDelete: unexpected rank differences")
		}
		if n == t.root {
			return ops
		}
		n = t.nodes[n].parent
	}
}
