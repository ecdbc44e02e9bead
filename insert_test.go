package wavl

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type step struct {
	key int
	ops int
}

func runSteps(t *testing.T, tree *Tree, insert bool, steps []step) {
	t.Helper()
	for _, s := range steps {
		var ops int
		var err error
		if insert {
			ops, err = tree.Insert(s.key, val(s.key))
		} else {
			ops, err = tree.Delete(s.key)
		}
		if err != nil {
			t.Fatalf("operation on %d failed: %v", s.key, err)
		}
		if ops != s.ops {
			t.Errorf("operation on %d: expected %d rebalancing ops, got %d\n%s", s.key, s.ops, ops, tree)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("tree invalid after operation on %d: %v\n%s", s.key, err, tree)
		}
	}
}

func TestInsertPromoteRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()
	//
	tree := &Tree{}
	runSteps(t, tree, true, []step{{10, 0}, {5, 1}, {15, 0}})
	if r := tree.Root(); r.Rank() != 1 || r.SubtreeSize() != 3 {
		t.Errorf("expected root of rank 1 and size 3, got rank %d, size %d", r.Rank(), r.SubtreeSize())
	}
}

func TestInsertSingleRotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()
	//
	tree := &Tree{}
	runSteps(t, tree, true, []step{{10, 0}, {20, 1}, {30, 2}}) // promote, rotate left
	if r := tree.Root(); r.Key() != 20 || r.Rank() != 1 {
		t.Errorf("expected 20 of rank 1 at the root, got %d of rank %d", r.Key(), r.Rank())
	}
	tree = &Tree{}
	runSteps(t, tree, true, []step{{30, 0}, {20, 1}, {10, 2}}) // promote, rotate right
	if r := tree.Root(); r.Key() != 20 || r.Left().Key() != 10 || r.Right().Key() != 30 {
		t.Errorf("unexpected shape after right rotation:\n%s", tree)
	}
}

func TestInsertDoubleRotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()
	//
	tree := &Tree{}
	runSteps(t, tree, true, []step{{10, 0}, {30, 1}, {20, 3}}) // promote, rotate right-left
	if r := tree.Root(); r.Key() != 20 || r.Rank() != 1 {
		t.Errorf("expected 20 of rank 1 at the root, got %d of rank %d", r.Key(), r.Rank())
	}
	if l, r := tree.Root().Left(), tree.Root().Right(); l.Rank() != 0 || r.Rank() != 0 {
		t.Errorf("expected leaves of rank 0, got %d and %d", l.Rank(), r.Rank())
	}
	tree = &Tree{}
	runSteps(t, tree, true, []step{{30, 0}, {10, 1}, {20, 3}}) // promote, rotate left-right
	if r := tree.Root(); r.Key() != 20 || r.Left().Key() != 10 || r.Right().Key() != 30 {
		t.Errorf("unexpected shape after double rotation:\n%s", tree)
	}
}

func TestInsertPromoteCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()
	//
	tree := &Tree{}
	runSteps(t, tree, true, []step{
		{5, 0}, {3, 1}, {8, 0},
		{1, 2}, // promote 3, promote 5
		{4, 0},
		{7, 1}, // promote 8
		{9, 0},
	})
	if r := tree.Root(); r.Key() != 5 || r.Rank() != 2 || r.SubtreeSize() != 7 {
		t.Errorf("expected 5 of rank 2 and size 7 at the root, got %d, %d, %d",
			r.Key(), r.Rank(), r.SubtreeSize())
	}
}

func TestInsertUnderUnaryRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()
	//
	tree := &Tree{}
	runSteps(t, tree, true, []step{{2, 0}, {1, 1}, {3, 0}})
	if tree.Root().Rank() != 1 {
		t.Errorf("root must keep rank 1 when completed by a second child, is %d", tree.Root().Rank())
	}
}
