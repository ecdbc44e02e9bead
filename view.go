package wavl

// Node is a read-only view onto a node of a tree, for clients which want to
// inspect the tree's structure, e.g. for debugging or visualization.
//
// A Node is either a real node holding an entry, an external leaf standing in
// for a missing child, or the empty-tree marker returned by Root for an empty
// tree. Views are invalidated by any mutation of the tree.
type Node struct {
	tree *Tree
	r    ref
}

// Root returns a view onto the root of the tree. For an empty tree this is the
// empty-tree marker, which has rank -2.
func (t *Tree) Root() Node {
	if t.IsEmpty() {
		return Node{tree: t, r: none}
	}
	return Node{tree: t, r: t.root}
}

// IsReal reports whether the node holds an entry.
func (n Node) IsReal() bool {
	return n.r != ext && n.r != none
}

// Key returns the key of the node, or -1 if the node is not real.
func (n Node) Key() int {
	if !n.IsReal() {
		return -1
	}
	return n.tree.nodes[n.r].key
}

// Value returns the value of the node. It is absent if the node is not real.
func (n Node) Value() (string, bool) {
	if !n.IsReal() {
		return "", false
	}
	return n.tree.nodes[n.r].value, true
}

// Rank returns the rank of the node: -1 for external leaves, -2 for the
// empty-tree marker.
func (n Node) Rank() int {
	switch n.r {
	case none:
		return emptyRank
	case ext:
		return extRank
	}
	return n.tree.nodes[n.r].rank
}

// SubtreeSize returns the number of real nodes in the subtree rooted at n.
func (n Node) SubtreeSize() int {
	if !n.IsReal() {
		return 0
	}
	return n.tree.nodes[n.r].size
}

// Left returns the left child. Children of external leaves and of the
// empty-tree marker are external leaves.
func (n Node) Left() Node {
	if !n.IsReal() {
		return Node{tree: n.tree, r: ext}
	}
	return Node{tree: n.tree, r: n.tree.nodes[n.r].left}
}

// Right returns the right child.
func (n Node) Right() Node {
	if !n.IsReal() {
		return Node{tree: n.tree, r: ext}
	}
	return Node{tree: n.tree, r: n.tree.nodes[n.r].right}
}

// Parent returns the parent of a real node. The root has no parent, and
// neither have external leaves, as they are shared.
func (n Node) Parent() (Node, bool) {
	if !n.IsReal() || n.tree.nodes[n.r].parent == none {
		return Node{}, false
	}
	return Node{tree: n.tree, r: n.tree.nodes[n.r].parent}, true
}
