// Package bitpack implements the fixed-width packed integer vector and the
// adaptive palette container built on top of it (spec §3, §4.9, §4.10).
package bitpack

import "github.com/pkg/errors"

// ErrInvalidPackedData is returned by TryFromRawParts when the supplied
// words cannot hold exactly len elements at elm_size bits each.
var ErrInvalidPackedData = errors.New("bitpack: raw words inconsistent with elm_size and len")

// BitVec packs n items of k bits (k in [1,64]) low-to-high into []uint64
// words; no element straddles a word boundary (spec §3/§4.9).
type BitVec struct {
	data    []uint64
	elmSize int
	length  int
}

func elemsPerWord(elmSize int) int { return 64 / elmSize }

// New returns an empty vector of the given element bit width.
func New(elmSize int) *BitVec {
	return &BitVec{elmSize: elmSize}
}

// WithCapacity returns an empty vector pre-sized to hold cap elements
// without reallocating.
func WithCapacity(elmSize, cap int) *BitVec {
	epw := elemsPerWord(elmSize)
	words := (cap + epw - 1) / epw
	return &BitVec{elmSize: elmSize, data: make([]uint64, 0, words)}
}

// Zeros returns a vector of length elements, all zero.
func Zeros(elmSize, length int) *BitVec {
	epw := elemsPerWord(elmSize)
	words := (length + epw - 1) / epw
	return &BitVec{elmSize: elmSize, data: make([]uint64, words), length: length}
}

// TryFromRawParts wraps caller-supplied words as a vector of length
// elements, validating that data's capacity can hold exactly length
// elements: len(data)*(64/elm_size) must fall in [length, length+64/elm_size)
// (spec §4.9).
func TryFromRawParts(data []uint64, elmSize, length int) (*BitVec, error) {
	if elmSize < 1 || elmSize > 64 {
		return nil, errors.WithStack(ErrInvalidPackedData)
	}
	epw := elemsPerWord(elmSize)
	cap := len(data) * epw
	if cap < length || cap >= length+epw {
		return nil, errors.WithStack(ErrInvalidPackedData)
	}
	return &BitVec{data: data, elmSize: elmSize, length: length}, nil
}

// Len reports the number of elements.
func (b *BitVec) Len() int { return b.length }

// ElmSize reports the configured per-element bit width.
func (b *BitVec) ElmSize() int { return b.elmSize }

// RawWords exposes the backing words, e.g. for heightmap's i64 reinterpret
// (spec §4.11's heightmaps_tag).
func (b *BitVec) RawWords() []uint64 { return b.data }

func (b *BitVec) mask() uint64 {
	if b.elmSize >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(b.elmSize)) - 1
}

// Get returns element i and true, or (0, false) if i is out of range.
func (b *BitVec) Get(i int) (uint64, bool) {
	if i < 0 || i >= b.length {
		return 0, false
	}
	epw := elemsPerWord(b.elmSize)
	word := i / epw
	shift := uint(i%epw) * uint(b.elmSize)
	return (b.data[word] >> shift) & b.mask(), true
}

// Set stores v at i, masked to elm_size bits, and returns the previous
// value and true; returns (0, false) if i is out of range.
func (b *BitVec) Set(i int, v uint64) (uint64, bool) {
	if i < 0 || i >= b.length {
		return 0, false
	}
	epw := elemsPerWord(b.elmSize)
	word := i / epw
	shift := uint(i%epw) * uint(b.elmSize)
	m := b.mask()
	prev := (b.data[word] >> shift) & m
	b.data[word] = (b.data[word] &^ (m << shift)) | ((v & m) << shift)
	return prev, true
}

// Push appends v (masked to elm_size bits), growing backing storage if
// needed.
func (b *BitVec) Push(v uint64) {
	epw := elemsPerWord(b.elmSize)
	idx := b.length
	word := idx / epw
	if word >= len(b.data) {
		b.data = append(b.data, 0)
	}
	b.length++
	b.Set(idx, v)
}

// Pop removes and returns the last element, or (0, false) if empty.
func (b *BitVec) Pop() (uint64, bool) {
	if b.length == 0 {
		return 0, false
	}
	v, _ := b.Get(b.length - 1)
	b.Set(b.length-1, 0)
	b.length--
	return v, true
}
