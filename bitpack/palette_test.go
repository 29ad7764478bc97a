package bitpack

import "testing"

func TestPaletteGetSetRoundTrip(t *testing.T) {
	p := New(Options{ReprBits: 10, IndirectLo: 2, IndirectHi: 4}, 64)
	for i := 0; i < 64; i++ {
		p.Set(i, uint64(i%5))
	}
	for i := 0; i < 64; i++ {
		want := uint64(i % 5)
		if got := p.Get(i); got != want {
			t.Errorf("index %d: got %d, want %d", i, got, want)
		}
	}
}

func TestPaletteFillIsIdempotentAndCollapsesToSingle(t *testing.T) {
	p := New(Options{ReprBits: 10, IndirectLo: 2, IndirectHi: 4}, 16)
	for i := 0; i < 16; i++ {
		p.Set(i, uint64(i))
	}
	p.Fill(7)
	if p.CurrentMode() != ModeSingle {
		t.Fatalf("fill should collapse to Single, got %s", p.CurrentMode())
	}
	for i := 0; i < 16; i++ {
		if got := p.Get(i); got != 7 {
			t.Errorf("index %d: got %d after fill, want 7", i, got)
		}
	}
	p.Fill(7)
	if p.CurrentMode() != ModeSingle || p.Get(0) != 7 {
		t.Errorf("second fill with same value must leave an identical container")
	}
}

func TestPaletteModeTransitions(t *testing.T) {
	p := New(Options{ReprBits: 10, IndirectLo: 2, IndirectHi: 4}, 4096)

	p.Set(5, 123)
	if p.CurrentMode() != ModeArray || p.Bits() != 2 {
		t.Fatalf("after first distinct value: mode=%s bits=%d, want array-indirect bits=2", p.CurrentMode(), p.Bits())
	}

	for i, v := range []uint64{201, 202, 203, 204, 205, 206, 207} {
		p.Set(10+i, v)
	}
	if p.CurrentMode() == ModeDirect || p.Bits() > 4 {
		t.Fatalf("after 8 distinct values: mode=%s bits=%d, want still indirect with bits<=4", p.CurrentMode(), p.Bits())
	}

	for i, v := range []uint64{301, 302, 303, 304, 305, 306, 307, 308, 309} {
		p.Set(50+i, v)
	}
	if p.CurrentMode() != ModeDirect || p.Bits() != 10 {
		t.Fatalf("after 17th distinct value: mode=%s bits=%d, want direct bits=10", p.CurrentMode(), p.Bits())
	}
}

func TestPaletteNeverDemotesFromDirect(t *testing.T) {
	// indirect_range=(1,1) forces any second promotion straight past the
	// indirect band to Direct (repr_bits=3).
	p := New(Options{ReprBits: 3, IndirectLo: 1, IndirectHi: 1}, 8)
	p.Set(0, 10)
	p.Set(1, 20)
	if p.CurrentMode() != ModeDirect {
		t.Fatalf("expected direct mode after second distinct value, got %s", p.CurrentMode())
	}
	p.Set(0, 0)
	p.Set(1, 0)
	if p.CurrentMode() != ModeDirect {
		t.Errorf("collapsing distinct values back down must not demote out of direct mode")
	}
}

func TestPaletteHashIndirectAboveThreshold(t *testing.T) {
	// repr_bits=12, indirect_range=(5,8): bits'=5 falls in (HashThreshold,8],
	// so the container must pick hash-indirect rather than array-indirect.
	p := New(Options{ReprBits: 12, IndirectLo: 5, IndirectHi: 8}, 64)
	p.Set(0, 999)
	if p.CurrentMode() != ModeHash || p.Bits() != 5 {
		t.Fatalf("mode=%s bits=%d, want hash-indirect bits=5", p.CurrentMode(), p.Bits())
	}
	if got := p.Get(0); got != 999 {
		t.Errorf("got %d, want 999", got)
	}
}
