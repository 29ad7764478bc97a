package voxel

import "testing"

const stone = BlockState(1)

func TestChunkGetSetForwardsToSection(t *testing.T) {
	c := NewChunk(32)
	if got := c.GetBlock(1, 5, 2); got != Air {
		t.Fatalf("expected air, got %v", got)
	}
	prev := c.SetBlock(1, 5, 2, stone)
	if prev != Air {
		t.Fatalf("expected previous state air, got %v", prev)
	}
	if got := c.GetBlock(1, 5, 2); got != stone {
		t.Fatalf("got %v, want stone", got)
	}
	if got := c.GetBlock(1, 21, 2); got != Air {
		t.Fatalf("section 1 should be untouched, got %v", got)
	}
}

func TestChunkHeightmapsAfterFlatFill(t *testing.T) {
	c := NewChunk(16)
	for x := 0; x < SectionSize; x++ {
		for z := 0; z < SectionSize; z++ {
			for y := 0; y < 4; y++ {
				c.SetBlock(x, y, z, stone)
			}
		}
	}
	c.SyncHeightmaps()
	for x := 0; x < SectionSize; x++ {
		for z := 0; z < SectionSize; z++ {
			if h := c.MotionBlockingHeightAt(x, z); h != 4 {
				t.Fatalf("motion-blocking height at (%d,%d) = %d, want 4", x, z, h)
			}
			if h := c.WorldSurfaceHeightAt(x, z); h != 4 {
				t.Fatalf("world-surface height at (%d,%d) = %d, want 4", x, z, h)
			}
		}
	}
}

func TestChunkHeightmapIncrementalUpdateOnRemoval(t *testing.T) {
	c := NewChunk(16)
	for x := 0; x < SectionSize; x++ {
		for z := 0; z < SectionSize; z++ {
			for y := 0; y < 4; y++ {
				c.SetBlock(x, y, z, stone)
			}
		}
	}
	c.SyncHeightmaps()

	c.SetBlock(3, 3, 5, Air)

	if h := c.MotionBlockingHeightAt(3, 5); h != 3 {
		t.Fatalf("column (3,5) motion-blocking height = %d, want 3", h)
	}
	if h := c.WorldSurfaceHeightAt(3, 5); h != 3 {
		t.Fatalf("column (3,5) world-surface height = %d, want 3", h)
	}

	if h := c.MotionBlockingHeightAt(4, 5); h != 4 {
		t.Fatalf("unrelated column (4,5) height changed to %d, want 4", h)
	}
	if h := c.MotionBlockingHeightAt(3, 6); h != 4 {
		t.Fatalf("unrelated column (3,6) height changed to %d, want 4", h)
	}
}

func TestChunkHeightmapsTagLengthMatchesColumns(t *testing.T) {
	c := NewChunk(16)
	mb, ws := c.HeightmapsTag()
	wantWords := len(c.motionBlocking.vec.RawWords())
	if len(mb) != wantWords || len(ws) != wantWords {
		t.Fatalf("got %d/%d words, want %d", len(mb), len(ws), wantWords)
	}
}
