package wavl

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is a WAVL tree mapping unique int keys to string values.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like an empty tree.
//
// Nodes are kept in a slice owned by the tree and link to each other by index.
// Performance characteristics:
//
//	Operation     |   Time
//	--------------+---------------------------------
//	Search        |   O(log n)
//	Min, Max      |   O(log n)
//	Select        |   O(log n)
//	IndexOf       |   O(log n)
//	Size          |   O(1)
//	Keys, Values  |   O(n)
//	Insert        |   O(log n), amortized O(1) rebalancing
//	Delete        |   O(log n), amortized O(1) rebalancing
//
// Trees are not synchronized.
type Tree struct {
	nodes    []node // nodes[ext] is the external leaf
	root     ref    // ext for an empty tree
	free     ref    // head of free slot list, ext if empty
	paranoid bool
}

// New creates an empty tree with validated configuration.
func New(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree{paranoid: cfg.Paranoid}
	t.setup(cfg.Capacity)
	return t, nil
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == ext
}

// Size returns the number of entries in the tree.
func (t *Tree) Size() int {
	if t.IsEmpty() {
		return 0
	}
	return t.nodes[t.root].size
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, where 0 means empty. Recursive.
func (t *Tree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree) height(r ref) int {
	if r == ext {
		return 0
	}
	return 1 + max(t.height(t.nodes[r].left), t.height(t.nodes[r].right))
}

// Clear removes all entries. Storage already allocated is kept for re-use.
func (t *Tree) Clear() {
	if t.nodes == nil {
		return
	}
	clear(t.nodes[1:]) // drop references to values
	t.nodes = t.nodes[:1]
	t.root, t.free = ext, ext
}

// verify checks all invariants in paranoid mode.
func (t *Tree) verify(op string, key int) {
	if !t.paranoid {
		return
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("wavl: %s(%d) left tree corrupt: %v", op, key, err)
		panic(err)
	}
}
