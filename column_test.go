package strata

import (
	"reflect"
	"testing"
	"unsafe"
)

func TestColumnPushGrowAndRead(t *testing.T) {
	c := newColumn(reflect.TypeOf(int64(0)))
	c.grow(4)
	if c.capacity() != 4 {
		t.Fatalf("capacity = %d, want 4", c.capacity())
	}
	v := int64(42)
	c.set(0, unsafe.Pointer(&v))
	got := *(*int64)(c.at(0))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestColumnGrowPreservesExistingData(t *testing.T) {
	c := newColumn(reflect.TypeOf(int32(0)))
	c.grow(2)
	v := int32(7)
	c.set(1, unsafe.Pointer(&v))
	c.grow(8)
	if got := *(*int32)(c.at(1)); got != 7 {
		t.Fatalf("got %d, want 7 after grow", got)
	}
}

func TestColumnSwap(t *testing.T) {
	c := newColumn(reflect.TypeOf(int64(0)))
	c.grow(2)
	a, b := int64(1), int64(2)
	c.set(0, unsafe.Pointer(&a))
	c.set(1, unsafe.Pointer(&b))
	c.swap(0, 1)
	if got := *(*int64)(c.at(0)); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if got := *(*int64)(c.at(1)); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestColumnSwapRemoveClearsLastSlot(t *testing.T) {
	c := newColumn(reflect.TypeOf(int64(0)))
	c.grow(3)
	a, b, last := int64(10), int64(20), int64(30)
	c.set(0, unsafe.Pointer(&a))
	c.set(1, unsafe.Pointer(&b))
	c.set(2, unsafe.Pointer(&last))

	c.swapRemove(0, 3)
	if got := *(*int64)(c.at(0)); got != 30 {
		t.Fatalf("got %d, want 30 moved into removed slot", got)
	}
	if got := *(*int64)(c.at(2)); got != 0 {
		t.Fatalf("vacated tail slot = %d, want zeroed", got)
	}
}

func TestColumnZeroSizedTypeHasUnboundedCapacity(t *testing.T) {
	type empty struct{}
	c := newColumn(reflect.TypeOf(empty{}))
	c.grow(1 << 20)
	if c.capacity() == 0 {
		t.Fatalf("zero-sized column should report unbounded capacity")
	}
	// set/at/swap/clear must all be no-ops that never panic.
	c.set(5, c.at(5))
	c.swap(1, 2)
	c.clear(3)
}
