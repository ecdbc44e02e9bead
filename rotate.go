package wavl

// rotateLeft performs a left rotation at y and returns the new subtree root,
// i.e. the former right child x of y:
//
//	   y                x
//	  / \              / \
//	 a   x     ->     y   c
//	    / \          / \
//	   b   c        a   b
//
// y is demoted. The sizes of x and y are recomputed; the size of the subtree
// as a whole does not change, so ancestors need no update.
func (t *Tree) rotateLeft(y ref) ref {
	x := t.nodes[y].right
	assert(x != ext, "rotateLeft: right child is external")
	b, g := t.nodes[x].left, t.nodes[y].parent
	t.nodes[y].right = b
	if b != ext {
		t.nodes[b].parent = y
	}
	t.nodes[x].left = y
	t.nodes[y].parent = x
	t.relink(g, y, x)
	t.nodes[y].rank--
	t.resize(y)
	t.resize(x)
	tracer().Debugf("wavl: rotate left at %d, new subtree root %d", t.nodes[y].key, t.nodes[x].key)
	return x
}

// rotateRight is the mirror image of rotateLeft and returns the former left
// child of y.
func (t *Tree) rotateRight(y ref) ref {
	x := t.nodes[y].left
	assert(x != ext, "rotateRight: left child is external")
	b, g := t.nodes[x].right, t.nodes[y].parent
	t.nodes[y].left = b
	if b != ext {
		t.nodes[b].parent = y
	}
	t.nodes[x].right = y
	t.nodes[y].parent = x
	t.relink(g, y, x)
	t.nodes[y].rank--
	t.resize(y)
	t.resize(x)
	tracer().Debugf("wavl: rotate right at %d, new subtree root %d", t.nodes[y].key, t.nodes[x].key)
	return x
}

// rotateLeftRight rotates the left child of n to the left, then n to the right.
// The resulting subtree root, formerly the left-right grandchild of n, is
// promoted once.
func (t *Tree) rotateLeftRight(n ref) ref {
	t.rotateLeft(t.nodes[n].left)
	r := t.rotateRight(n)
	t.nodes[r].rank++
	return r
}

// rotateRightLeft rotates the right child of n to the right, then n to the left.
// The resulting subtree root is promoted once.
func (t *Tree) rotateRightLeft(n ref) ref {
	t.rotateRight(t.nodes[n].right)
	r := t.rotateLeft(n)
	t.nodes[r].rank++
	return r
}
