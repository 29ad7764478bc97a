package strata

import (
	"fmt"
	"reflect"
	"unsafe"
)

// column is a growable, type-erased contiguous buffer holding one
// component type's values. It has no notion of its own logical length -
// that is the table's job (spec §4.1: "the column has no self-knowledge
// of [length]") - only of capacity.
//
// Grounded on world.go's componentData [][]byte: the teacher keeps one
// raw byte slice per component directly on the archetype and manipulates
// it inline everywhere it's needed. Here that byte slice and the
// operations the teacher scatters across world.go/api.go (copy-on-grow,
// swap-remove, zeroing) are pulled into their own type, matching spec
// §4.1's requirement that the column itself own drop/swap/debug.
type column struct {
	typ      reflect.Type
	itemSize uintptr
	data     []byte // len == capacity*itemSize; zero-sized types keep data nil forever.
}

func newColumn(typ reflect.Type) *column {
	return &column{typ: typ, itemSize: typ.Size()}
}

func (c *column) capacity() int {
	if c.itemSize == 0 {
		return int(^uint(0) >> 1) // zero-sized types have unbounded capacity (spec §3).
	}
	return len(c.data) / int(c.itemSize)
}

// grow ensures the column can hold at least toCap elements, copying
// existing bytes into a freshly allocated buffer.
func (c *column) grow(toCap int) {
	if c.itemSize == 0 || toCap <= c.capacity() {
		return
	}
	next := make([]byte, toCap*int(c.itemSize))
	copy(next, c.data)
	c.data = next
}

// at returns a pointer to the element at index i. Valid only while the
// backing buffer is not concurrently grown.
func (c *column) at(i int) unsafe.Pointer {
	if c.itemSize == 0 {
		return unsafe.Pointer(c) // any non-nil, stable pointer; no bytes are ever read through it.
	}
	return unsafe.Pointer(&c.data[uintptr(i)*c.itemSize])
}

// set copies one element's bytes from src into slot i.
func (c *column) set(i int, src unsafe.Pointer) {
	if c.itemSize == 0 {
		return
	}
	dst := c.at(i)
	copy(unsafe.Slice((*byte)(dst), c.itemSize), unsafe.Slice((*byte)(src), c.itemSize))
}

// swap exchanges the elements at i and j in place.
func (c *column) swap(i, j int) {
	if i == j || c.itemSize == 0 {
		return
	}
	size := c.itemSize
	a := unsafe.Slice((*byte)(c.at(i)), size)
	b := unsafe.Slice((*byte)(c.at(j)), size)
	for k := uintptr(0); k < size; k++ {
		a[k], b[k] = b[k], a[k]
	}
}

// swapRemove overwrites index i with the element currently at index
// len-1, the column's half of the table's swap-remove row operation
// (spec §4.2). The caller (table) is responsible for knowing len.
func (c *column) swapRemove(i, length int) {
	last := length - 1
	if i != last {
		c.set(i, c.at(last))
	}
	c.clear(last)
}

// clear zeroes slot i so a freed slot doesn't keep a pointer-containing
// component's referents alive (spec §4.1's "drop discipline").
func (c *column) clear(i int) {
	if c.itemSize == 0 {
		return
	}
	b := unsafe.Slice((*byte)(c.at(i)), c.itemSize)
	for k := range b {
		b[k] = 0
	}
}

// debugString renders the element at index i using its natural Go
// formatting, for diagnostics only.
func (c *column) debugString(i int) string {
	v := reflect.NewAt(c.typ, c.at(i)).Elem()
	return fmt.Sprintf("%+v", v.Interface())
}
