package voxel

import "github.com/strataforge/strata/bitpack"

// Predicate is a pure function of a block state, used to derive a
// heightmap. The spec names two: motion-blocking and world-surface (spec
// §4.12).
type Predicate func(BlockState) bool

// isMotionBlocking and isWorldSurface both reduce to "not air" here: the
// real game's per-block-state collision/solidity attributes are the
// opaque, generated tables spec §1 puts out of scope, so both predicates
// degenerate to the one bit of shape this package actually tracks.
func isMotionBlocking(b BlockState) bool { return !b.IsAir() }
func isWorldSurface(b BlockState) bool   { return !b.IsAir() }

func heightmapBits(height int) int {
	bits := 1
	for (1 << uint(bits)) < height+1 {
		bits++
	}
	return bits
}

func columnIndex(x, z int) int { return x | (z << 4) }

// Heightmap stores, per (x,z) column, the topmost y satisfying a predicate
// plus one, or 0 if none do (spec §3/§4.12).
type Heightmap struct {
	vec *bitpack.BitVec
}

func newHeightmap(height int) *Heightmap {
	return &Heightmap{vec: bitpack.Zeros(heightmapBits(height), 256)}
}

func (h *Heightmap) at(x, z int) int {
	v, _ := h.vec.Get(columnIndex(x, z))
	return int(v)
}

// sync fully recomputes every column from the chunk's current block states
// (spec §4.12's "full recompute").
func (h *Heightmap) sync(c *Chunk, pred Predicate) {
	for x := 0; x < SectionSize; x++ {
		for z := 0; z < SectionSize; z++ {
			val := uint64(0)
			for y := c.height - 1; y >= 0; y-- {
				if pred(c.GetBlock(x, y, z)) {
					val = uint64(y + 1)
					break
				}
			}
			h.vec.Set(columnIndex(x, z), val)
		}
	}
}

// update incrementally adjusts the column at (x,z) after block (x,y,z) was
// set to newState (spec §4.12). The downward rescan, when needed, starts
// strictly below y - per the spec's documented resolution of the
// candidate-source behavior around this boundary.
func (h *Heightmap) update(c *Chunk, x, y, z int, newState BlockState, pred Predicate) {
	idx := columnIndex(x, z)
	cur := h.at(x, z)

	if y+1 > cur && pred(newState) {
		h.vec.Set(idx, uint64(y+1))
		return
	}
	if y+1 == cur && !pred(newState) {
		val := uint64(0)
		for yy := y - 1; yy >= 0; yy-- {
			if pred(c.GetBlock(x, yy, z)) {
				val = uint64(yy + 1)
				break
			}
		}
		h.vec.Set(idx, val)
	}
}
