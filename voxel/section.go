package voxel

import "github.com/strataforge/strata/bitpack"

// Section is a 16x16x16 block sub-volume of a chunk: a block-state palette
// and a 4x4x4 biome palette, plus an occupancy counter (spec §3/§4.11).
type Section struct {
	blocks   *bitpack.Palette
	biomes   *bitpack.Palette
	occupied uint16
}

func newSection() *Section {
	return &Section{
		blocks: bitpack.New(bitpack.Options{ReprBits: blockStateBits, IndirectLo: 4, IndirectHi: 8}, SectionBlocks),
		biomes: bitpack.New(bitpack.Options{ReprBits: biomeBits, IndirectLo: 1, IndirectHi: 3}, BiomeSectionBlocks),
	}
}

// blockIndex computes a block cell index within a section (spec §3:
// "index = x | (z<<4) | (y<<8)").
func blockIndex(x, y, z int) int { return x | (z << 4) | (y << 8) }

// biomeIndex computes a biome cell index within a section (spec §3:
// "index = (x>>2) | ((z>>2)<<2) | ((y>>2)<<4)").
func biomeIndex(x, y, z int) int { return (x >> 2) | ((z >> 2) << 2) | ((y >> 2) << 4) }

func (s *Section) GetBlock(x, y, z int) BlockState {
	return BlockState(s.blocks.Get(blockIndex(x, y, z)))
}

// SetBlock stores v and returns the previous state, adjusting occupied
// whenever the cell crosses the air/non-air boundary (spec §4.11).
func (s *Section) SetBlock(x, y, z int, v BlockState) BlockState {
	idx := blockIndex(x, y, z)
	prev := BlockState(s.blocks.Get(idx))
	s.blocks.Set(idx, uint64(v))
	switch {
	case prev.IsAir() && !v.IsAir():
		s.occupied++
	case !prev.IsAir() && v.IsAir():
		s.occupied--
	}
	return prev
}

func (s *Section) GetBiome(x, y, z int) Biome {
	return Biome(s.biomes.Get(biomeIndex(x, y, z)))
}

func (s *Section) SetBiome(x, y, z int, v Biome) {
	s.biomes.Set(biomeIndex(x, y, z), uint64(v))
}

// FillBlocks sets every block cell to v in one collapse-to-Single step.
func (s *Section) FillBlocks(v BlockState) {
	s.blocks.Fill(uint64(v))
	if v.IsAir() {
		s.occupied = 0
	} else {
		s.occupied = SectionBlocks
	}
}

// FillBiomes sets every biome cell to v.
func (s *Section) FillBiomes(v Biome) { s.biomes.Fill(uint64(v)) }

// Occupied reports the number of non-air block cells.
func (s *Section) Occupied() uint16 { return s.occupied }

// IsEmpty reports whether every block cell is air.
func (s *Section) IsEmpty() bool { return s.occupied == 0 }
