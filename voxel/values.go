// Package voxel implements the 16-wide chunk/section data model built on
// bitpack's palette container, and a pluggable chunk store/generator (spec
// §3, §4.11, §4.12, §4.13 supplemented).
package voxel

// BlockState and Biome are opaque u32-backed enumerations: the spec treats
// their generated attribute tables as out of scope (spec §1), so this
// package only needs equality and an "is air" test to drive palette storage
// and the heightmap predicates.
type BlockState uint32

// Air is the zero value and the only state the heightmap predicates treat
// specially.
const Air BlockState = 0

// IsAir reports whether b is the default, empty state.
func (b BlockState) IsAir() bool { return b == Air }

// Biome is likewise an opaque enumeration.
type Biome uint32

const (
	// SectionSize is a section's edge length in blocks.
	SectionSize = 16
	// SectionBlocks is the number of block cells per section (16^3).
	SectionBlocks = SectionSize * SectionSize * SectionSize
	// BiomeSectionSize is a biome cell's edge length in blocks (4x4x4 biome
	// cells per 16x16x16 section).
	BiomeSectionSize = 4
	// BiomeSectionBlocks is the number of biome cells per section (4^3).
	BiomeSectionBlocks = 64

	// DefaultChunkHeight is the common world height (spec §6).
	DefaultChunkHeight = 384

	// blockStateBits and biomeBits are the saturating Direct-mode bit
	// widths for the two palettes. The real game's block-state/biome
	// tables are opaque per spec §1; these widths are sized generously for
	// a uint32 enumeration without tracking an external table.
	blockStateBits = 16
	biomeBits      = 8
)
