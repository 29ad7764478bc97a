package voxel

// ChunkPos identifies a chunk by its horizontal grid coordinates.
type ChunkPos struct {
	X, Z int32
}

// Generator produces a fully-populated chunk for a given position.
type Generator interface {
	Generate(pos ChunkPos, height int) *Chunk
}

// FlatGenerator fills every column identically with a stack of layers from
// the bottom up, then calls SyncHeightmaps once (spec §4.13, grounded on
// the original FlatGenerator/FlatGeneratorBuilder pair).
type FlatGenerator struct {
	layers []BlockState
	biome  Biome
}

// NewFlatGenerator starts an empty layer stack; chain Layer calls to build
// it up from the bottom, then Generate.
func NewFlatGenerator(biome Biome) *FlatGenerator {
	return &FlatGenerator{biome: biome}
}

// Layer appends count copies of b on top of the current stack and returns
// the receiver for chaining.
func (g *FlatGenerator) Layer(b BlockState, count int) *FlatGenerator {
	for i := 0; i < count; i++ {
		g.layers = append(g.layers, b)
	}
	return g
}

// Generate builds a chunk of the requested height, filling y=0 with
// layers[0] upward, truncating the layer stack to the chunk's height.
func (g *FlatGenerator) Generate(pos ChunkPos, height int) *Chunk {
	c := NewChunk(height)
	n := len(g.layers)
	if n > height {
		n = height
	}
	for y := 0; y < n; y++ {
		for x := 0; x < SectionSize; x++ {
			for z := 0; z < SectionSize; z++ {
				c.SetBlock(x, y, z, g.layers[y])
			}
		}
	}
	for x := 0; x < SectionSize; x++ {
		for z := 0; z < SectionSize; z++ {
			for y := 0; y < height; y++ {
				c.SetBiome(x, y, z, g.biome)
			}
		}
	}
	c.SyncHeightmaps()
	return c
}
