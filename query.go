package wavl

import "iter"

// Search returns the value stored for key, if present.
func (t *Tree) Search(key int) (string, bool) {
	if t.IsEmpty() {
		return "", false
	}
	if r, found := t.locate(key); found {
		return t.nodes[r].value, true
	}
	return "", false
}

// Contains reports whether key is present in the tree.
func (t *Tree) Contains(key int) bool {
	_, found := t.Search(key)
	return found
}

// Min returns the value of the smallest key of the tree.
func (t *Tree) Min() (string, bool) {
	if t.IsEmpty() {
		return "", false
	}
	return t.nodes[t.leftmost(t.root)].value, true
}

// Max returns the value of the largest key of the tree.
func (t *Tree) Max() (string, bool) {
	if t.IsEmpty() {
		return "", false
	}
	r := t.root
	for t.nodes[r].right != ext {
		r = t.nodes[r].right
	}
	return t.nodes[r].value, true
}

func (t *Tree) leftmost(r ref) ref {
	for t.nodes[r].left != ext {
		r = t.nodes[r].left
	}
	return r
}

// Keys returns all keys in ascending order. For an empty tree the result is an
// empty slice.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.Size())
	t.inOrder(func(n *node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Values returns all values, sorted by their keys in ascending order. For an
// empty tree the result is an empty slice.
func (t *Tree) Values() []string {
	values := make([]string, 0, t.Size())
	t.inOrder(func(n *node) bool {
		values = append(values, n.value)
		return true
	})
	return values
}

// All returns an iterator over all entries in ascending key order.
// The tree must not be modified during iteration.
func (t *Tree) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		t.inOrder(func(n *node) bool {
			return yield(n.key, n.value)
		})
	}
}

// inOrder visits all real nodes in ascending key order, using an explicit stack.
// Iteration stops early if f returns false.
func (t *Tree) inOrder(f func(*node) bool) {
	if t.IsEmpty() {
		return
	}
	st := make([]ref, 0, t.nodes[t.root].rank+2)
	for r := t.root; r != ext; r = t.nodes[r].left {
		st = append(st, r)
	}
	for len(st) > 0 {
		r := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&t.nodes[r]) {
			return
		}
		for r = t.nodes[r].right; r != ext; r = t.nodes[r].left {
			st = append(st, r)
		}
	}
}

// Select returns the value of the i-th smallest key, where 1 ≤ i ≤ Size().
// It uses the subtree sizes to descend directly to the entry.
func (t *Tree) Select(i int) (string, error) {
	if i < 1 || i > t.Size() {
		return "", ErrIndexOutOfBounds
	}
	r := t.root
	for {
		n := &t.nodes[r]
		lsz := t.nodes[n.left].size
		if i <= lsz {
			r = n.left
		} else if i == lsz+1 {
			return n.value, nil
		} else {
			i -= lsz + 1
			r = n.right
		}
		assert(r != ext, "Select: descent ran into external leaf")
	}
}

// IndexOf returns the position of key in ascending key order, starting at 1.
// It is the inverse of Select.
func (t *Tree) IndexOf(key int) (int, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	pos := 0
	for r := t.root; r != ext; {
		n := &t.nodes[r]
		if key < n.key {
			r = n.left
		} else if key == n.key {
			return pos + t.nodes[n.left].size + 1, true
		} else {
			pos += t.nodes[n.left].size + 1
			r = n.right
		}
	}
	return 0, false
}
