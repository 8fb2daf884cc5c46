package soccertrack

import "testing"

func TestUnionFind_FindIsIdempotentAfterUnion(t *testing.T) {
	uf := NewUnionFind(10)
	uf.Union(1, 2, false)
	uf.Union(2, 3, false)
	uf.Union(7, 8, false)

	for x := 0; x < 10; x++ {
		r := uf.Find(x)
		if uf.Find(r) != r {
			t.Errorf("Find(%d)=%d is not a fixed point", x, r)
		}
	}
}

func TestUnionFind_SizeTracksSetMembership(t *testing.T) {
	uf := NewUnionFind(6)
	uf.Union(0, 1, false)
	uf.Union(1, 2, false)

	if got := uf.Size(0); got != 3 {
		t.Errorf("expected size 3, got %d", got)
	}
	if got := uf.Size(3); got != 1 {
		t.Errorf("expected singleton size 1, got %d", got)
	}
}

func TestUnionFind_SizePriorityKeepsLargerRoot(t *testing.T) {
	uf := NewUnionFind(5)
	uf.Union(0, 1, false)
	uf.Union(0, 2, false) // {0,1,2}, root 0

	root := uf.Union(0, 3, true) // {0,1,2} size 3 vs {3} size 1
	if root != uf.Find(0) {
		t.Errorf("expected the larger set's root to survive")
	}
	if uf.Size(3) != 4 {
		t.Errorf("expected merged size 4, got %d", uf.Size(3))
	}
}

func TestUnionFind_SumAccumulatesAcrossUnion(t *testing.T) {
	uf := NewUnionFind(4)
	uf.Add(0, 10)
	uf.Add(1, 20)
	uf.Union(0, 1, false)

	if got := uf.Sum(0); got != 30 {
		t.Errorf("expected sum 30, got %v", got)
	}
	if got := uf.Sum(1); got != 30 {
		t.Errorf("expected sum 30 from either member, got %v", got)
	}
}

func TestUnionFind_UnionIsIdempotentOnSameSet(t *testing.T) {
	uf := NewUnionFind(3)
	uf.Union(0, 1, false)
	before := uf.Size(0)
	uf.Union(0, 1, false)
	if uf.Size(0) != before {
		t.Errorf("re-union of the same set should not change size")
	}
}

func TestUnionFind_LesserRootWinsWithoutSizePriority(t *testing.T) {
	uf := NewUnionFind(5)
	root := uf.Union(4, 1, false)
	if root != 1 {
		t.Errorf("expected lesser root 1 to survive, got %d", root)
	}
}
