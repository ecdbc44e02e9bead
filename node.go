package wavl

// ref addresses a node slot in the arena of a tree.
type ref int32

const (
	// ext is the slot of the external leaf. Every missing child of a real node
	// links to it. It has rank -1 and size 0 and is never written to after the
	// arena has been set up.
	ext ref = 0
	// none is the parent link of the root.
	none ref = -1
)

const (
	extRank   = -1 // rank of external leaves
	emptyRank = -2 // rank reported for the root of an empty tree
)

// A node in the tree.
//
// size counts the real nodes of the subtree rooted at the node, including the
// node itself. Slots on the free list link to the next free slot via left.
type node struct {
	key                 int
	value               string
	rank                int
	size                int
	left, right, parent ref
}

// rankDiff is the pair (rank(n)-rank(left), rank(n)-rank(right)) of a node.
type rankDiff struct {
	l, r int
}

// valid reports whether the pair is one of (1,1), (1,2), (2,1), (2,2).
func (d rankDiff) valid() bool {
	return (d.l == 1 || d.l == 2) && (d.r == 1 || d.r == 2)
}

// setup prepares the arena, if not done yet. A zero value Tree has no arena.
func (t *Tree) setup(capacity int) {
	if t.nodes != nil {
		return
	}
	t.nodes = make([]node, 1, capacity+1)
	t.nodes[ext] = node{rank: extRank, left: ext, right: ext, parent: none}
	t.root, t.free = ext, ext
}

// alloc creates a new real node of rank 0 with two external children.
func (t *Tree) alloc(key int, value string) ref {
	n := node{key: key, value: value, size: 1, left: ext, right: ext, parent: none}
	if t.free != ext {
		r := t.free
		t.free = t.nodes[r].left
		t.nodes[r] = n
		return r
	}
	t.nodes = append(t.nodes, n)
	return ref(len(t.nodes) - 1)
}

// release puts the slot of a node unlinked from the tree onto the free list.
func (t *Tree) release(r ref) {
	assert(r != ext && r != none, "release called for non-real node")
	t.nodes[r] = node{rank: extRank, left: t.free, right: ext, parent: none}
	t.free = r
}

func (t *Tree) isReal(r ref) bool {
	return r != none && t.nodes[r].rank > extRank
}

func (t *Tree) isLeaf(r ref) bool {
	return t.nodes[r].left == ext && t.nodes[r].right == ext
}

func (t *Tree) diff(r ref) rankDiff {
	n := &t.nodes[r]
	return rankDiff{n.rank - t.nodes[n.left].rank, n.rank - t.nodes[n.right].rank}
}

// promote increases the rank of a node by 1.
func (t *Tree) promote(r ref) {
	assert(r != ext, "promote called for external leaf")
	t.nodes[r].rank++
	tracer().Debugf("wavl: promote %d to rank %d", t.nodes[r].key, t.nodes[r].rank)
}

// demote decreases the rank of a node by 1.
func (t *Tree) demote(r ref) {
	assert(r != ext, "demote called for external leaf")
	t.nodes[r].rank--
	tracer().Debugf("wavl: demote %d to rank %d", t.nodes[r].key, t.nodes[r].rank)
}

// resize recomputes the size of a single node from its children.
func (t *Tree) resize(r ref) {
	n := &t.nodes[r]
	n.size = 1 + t.nodes[n.left].size + t.nodes[n.right].size
}

// updateSizes recomputes sizes from r up to the root.
func (t *Tree) updateSizes(r ref) {
	for ; r != none; r = t.nodes[r].parent {
		t.resize(r)
	}
}

// relink replaces child old of parent p by c. If p is none, c becomes the root.
// The parent link of c is set unless c is the external leaf.
func (t *Tree) relink(p, old, c ref) {
	if p == none {
		t.root = c
	} else if t.nodes[p].left == old {
		t.nodes[p].left = c
	} else {
		assert(t.nodes[p].right == old, "relink: old node is not a child of parent")
		t.nodes[p].right = c
	}
	if c != ext {
		t.nodes[c].parent = p
	}
}

// locate descends from the root towards key. It returns the node holding key
// and true, or the node below which key would have to be inserted and false.
// The tree must not be empty.
func (t *Tree) locate(key int) (ref, bool) {
	r := t.root
	for {
		n := &t.nodes[r]
		next := n.right
		if key == n.key {
			return r, true
		} else if key < n.key {
			next = n.left
		}
		if next == ext {
			return r, false
		}
		r = next
	}
}
