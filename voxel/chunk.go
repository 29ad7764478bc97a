package voxel

// Chunk is a vertical stack of height/16 sections, full world height,
// 16x16 in the horizontal axes (spec §3/§4.11).
type Chunk struct {
	sections       []*Section
	height         int
	motionBlocking *Heightmap
	worldSurface   *Heightmap
}

// NewChunk allocates an empty (all-air) chunk of the given height, which
// must be a multiple of SectionSize.
func NewChunk(height int) *Chunk {
	n := height / SectionSize
	sections := make([]*Section, n)
	for i := range sections {
		sections[i] = newSection()
	}
	return &Chunk{
		sections:       sections,
		height:         height,
		motionBlocking: newHeightmap(height),
		worldSurface:   newHeightmap(height),
	}
}

// Height reports the chunk's vertical extent in blocks.
func (c *Chunk) Height() int { return c.height }

func (c *Chunk) GetBlock(x, y, z int) BlockState {
	return c.sections[y/SectionSize].GetBlock(x, y%SectionSize, z)
}

// SetBlock forwards to the owning section and incrementally maintains both
// heightmaps (spec §4.11: "a chunk forwards get/set to sections[y/16]").
func (c *Chunk) SetBlock(x, y, z int, v BlockState) BlockState {
	prev := c.sections[y/SectionSize].SetBlock(x, y%SectionSize, z, v)
	c.motionBlocking.update(c, x, y, z, v, isMotionBlocking)
	c.worldSurface.update(c, x, y, z, v, isWorldSurface)
	return prev
}

func (c *Chunk) GetBiome(x, y, z int) Biome {
	return c.sections[y/SectionSize].GetBiome(x, y%SectionSize, z)
}

func (c *Chunk) SetBiome(x, y, z int, v Biome) {
	c.sections[y/SectionSize].SetBiome(x, y%SectionSize, z, v)
}

// Section returns the section at vertical index i (0 is the lowest).
func (c *Chunk) Section(i int) *Section { return c.sections[i] }

// SyncHeightmaps fully recomputes both heightmaps from current block
// states (spec §4.12's sync).
func (c *Chunk) SyncHeightmaps() {
	c.motionBlocking.sync(c, isMotionBlocking)
	c.worldSurface.sync(c, isWorldSurface)
}

// MotionBlockingHeightAt returns the motion-blocking heightmap's value at
// (x,z).
func (c *Chunk) MotionBlockingHeightAt(x, z int) int { return c.motionBlocking.at(x, z) }

// WorldSurfaceHeightAt returns the world-surface heightmap's value at
// (x,z).
func (c *Chunk) WorldSurfaceHeightAt(x, z int) int { return c.worldSurface.at(x, z) }

// HeightmapsTag projects both heightmaps into a pair of i64 arrays,
// reinterpreting the packed u64 words (spec §4.11's heightmaps_tag -
// the wire shape NBT-style chunk serialization expects, out of scope here
// per spec §1, but the projection itself is in scope).
func (c *Chunk) HeightmapsTag() ([]int64, []int64) {
	return reinterpretAsI64(c.motionBlocking.vec.RawWords()), reinterpretAsI64(c.worldSurface.vec.RawWords())
}

func reinterpretAsI64(words []uint64) []int64 {
	out := make([]int64, len(words))
	for i, w := range words {
		out[i] = int64(w)
	}
	return out
}
