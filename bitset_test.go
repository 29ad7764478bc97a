package strata

import "testing"

func TestBitsetOfAndHas(t *testing.T) {
	b := bitsetOf(1, 5, 200)
	if !b.has(1) || !b.has(5) || !b.has(200) {
		t.Fatalf("expected bits 1,5,200 set")
	}
	if b.has(2) {
		t.Fatalf("bit 2 should not be set")
	}
}

func TestBitsetSetUnset(t *testing.T) {
	var b bitset
	b.set(64)
	if !b.has(64) {
		t.Fatalf("expected bit 64 set (second word)")
	}
	b.unset(64)
	if b.has(64) {
		t.Fatalf("expected bit 64 cleared")
	}
}

func TestBitsetContains(t *testing.T) {
	super := bitsetOf(1, 2, 3)
	sub := bitsetOf(1, 3)
	if !super.contains(sub) {
		t.Fatalf("expected superset relationship")
	}
	if sub.contains(super) {
		t.Fatalf("sub should not contain super")
	}
}

func TestBitsetIntersects(t *testing.T) {
	a := bitsetOf(1, 2)
	b := bitsetOf(2, 3)
	c := bitsetOf(4, 5)
	if !a.intersects(b) {
		t.Fatalf("expected a and b to intersect on bit 2")
	}
	if a.intersects(c) {
		t.Fatalf("a and c share no bits")
	}
}

func TestBitsetOrIsUnion(t *testing.T) {
	a := bitsetOf(1, 2)
	b := bitsetOf(2, 3)
	u := a.or(b)
	for _, id := range []ComponentID{1, 2, 3} {
		if !u.has(id) {
			t.Fatalf("union missing bit %d", id)
		}
	}
}

func TestBitsetIsEmptyAndCount(t *testing.T) {
	var b bitset
	if !b.isEmpty() {
		t.Fatalf("zero bitset should be empty")
	}
	b = bitsetOf(0, 10, 255)
	if b.isEmpty() {
		t.Fatalf("expected non-empty")
	}
	if b.count() != 3 {
		t.Fatalf("count = %d, want 3", b.count())
	}
}

func TestBitsetIDsIsSortedAscending(t *testing.T) {
	b := bitsetOf(200, 1, 64, 5)
	ids := b.ids()
	want := []ComponentID{1, 5, 64, 200}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}
