package bitpack

// HashThreshold is the bit-width above which an indirect palette switches
// from a linear-scan mapping to a hash-backed one (spec §3: "used when
// bits > HASH_THRESHOLD (HASH_THRESHOLD = 4)").
const HashThreshold = 4

// Mode names a palette's current storage variant (spec §3/§4.10).
type Mode int

const (
	ModeSingle Mode = iota
	ModeArray
	ModeHash
	ModeDirect
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeArray:
		return "array-indirect"
	case ModeHash:
		return "hash-indirect"
	case ModeDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// Options parameterizes a Palette's promotion policy (spec §6's Palette
// options): repr_bits is the saturating Direct-mode bit width;
// indirect_range is the band within which indirect encodings are used.
type Options struct {
	ReprBits   uint8
	IndirectLo uint8
	IndirectHi uint8
}

// Palette is a length-preserving, adaptively-encoded sequence over a
// possibly-sparse value domain (spec §3/§4.10): Single while every cell
// holds one constant, Array/Hash-indirect once a handful of distinct
// values appear, Direct once the distinct values no longer fit in an
// indirect width of IndirectHi bits.
//
// Grounded on the teacher's componentData/column byte-buffer model
// (column.go) for the general shape of a length-tracked-externally typed
// buffer, generalized into the spec's four-variant promotion state
// machine - a data structure the teacher's flat ECS storage has no
// equivalent of.
type Palette struct {
	opts   Options
	length int

	mode Mode
	bits uint8

	single uint64

	mapping []uint64          // reverse index -> value, for Array and Hash modes
	index   map[uint64]uint64 // value -> index, Hash mode only

	values *BitVec // Array/Hash: indices into mapping. Direct: raw values.
}

// New returns a length-element palette, every cell initialized to zero, in
// Single mode.
func New(opts Options, length int) *Palette {
	return &Palette{opts: opts, length: length, mode: ModeSingle}
}

// Len reports the number of cells.
func (p *Palette) Len() int { return p.length }

// CurrentMode reports the palette's active storage variant.
func (p *Palette) CurrentMode() Mode { return p.mode }

// Bits reports the current bit-width hint.
func (p *Palette) Bits() uint8 { return p.bits }

// Get returns the decoded domain value at i.
func (p *Palette) Get(i int) uint64 {
	switch p.mode {
	case ModeSingle:
		return p.single
	case ModeArray, ModeHash:
		idx, _ := p.values.Get(i)
		return p.mapping[idx]
	case ModeDirect:
		v, _ := p.values.Get(i)
		return v
	default:
		panic("bitpack: palette in unknown mode")
	}
}

// Set stores new at i, promoting the storage variant if new cannot be
// represented in the current one (spec §4.10).
func (p *Palette) Set(i int, new uint64) {
	switch p.mode {
	case ModeSingle:
		if new == p.single {
			return
		}
		p.promote(new, i)
	case ModeArray:
		if idx, found := p.findArray(new); found {
			p.values.Set(i, idx)
			return
		}
		if len(p.mapping) < (1 << p.bits) {
			p.mapping = append(p.mapping, new)
			p.values.Set(i, uint64(len(p.mapping)-1))
			return
		}
		p.promote(new, i)
	case ModeHash:
		if idx, found := p.index[new]; found {
			p.values.Set(i, idx)
			return
		}
		if len(p.mapping) < (1 << p.bits) {
			idx := uint64(len(p.mapping))
			p.mapping = append(p.mapping, new)
			p.index[new] = idx
			p.values.Set(i, idx)
			return
		}
		p.promote(new, i)
	case ModeDirect:
		p.values.Set(i, new)
	default:
		panic("bitpack: palette in unknown mode")
	}
}

func (p *Palette) findArray(v uint64) (uint64, bool) {
	for idx, mv := range p.mapping {
		if mv == v {
			return uint64(idx), true
		}
	}
	return 0, false
}

// Fill collapses the container to Single(v) regardless of prior state
// (spec §4.10's "fill(v) collapses to Single regardless of prior state").
// Idempotent: two Fills with the same value leave an identical container.
func (p *Palette) Fill(v uint64) {
	p.mode = ModeSingle
	p.bits = 0
	p.single = v
	p.mapping = nil
	p.index = nil
	p.values = nil
}

// promote computes the next bit-width and storage variant per the spec's
// promotion policy, rewrites every existing cell into the new encoding,
// then stores newValue at setIndex (spec §4.10): "bits' = clamp(bits + 1,
// indirect_range.lo, repr_bits); values above indirect_range.hi snap to
// repr_bits."
func (p *Palette) promote(newValue uint64, setIndex int) {
	raw := int(p.bits) + 1
	lo, hi, repr := int(p.opts.IndirectLo), int(p.opts.IndirectHi), int(p.opts.ReprBits)
	if raw < lo {
		raw = lo
	}
	if raw > repr {
		raw = repr
	}
	if raw > hi {
		raw = repr
	}
	newBits := uint8(raw)

	var newMode Mode
	switch {
	case int(newBits) == repr:
		newMode = ModeDirect
	case int(newBits) > HashThreshold && int(newBits) <= hi:
		newMode = ModeHash
	default:
		newMode = ModeArray
	}

	old := make([]uint64, p.length)
	for i := 0; i < p.length; i++ {
		old[i] = p.Get(i)
	}

	nv := Zeros(int(newBits), p.length)
	var mapping []uint64
	var index map[uint64]uint64

	switch newMode {
	case ModeDirect:
		for i, v := range old {
			nv.Set(i, v)
		}
	case ModeHash:
		index = make(map[uint64]uint64)
		for i, v := range old {
			idx, ok := index[v]
			if !ok {
				idx = uint64(len(mapping))
				mapping = append(mapping, v)
				index[v] = idx
			}
			nv.Set(i, idx)
		}
	case ModeArray:
		for i, v := range old {
			idx := -1
			for j, mv := range mapping {
				if mv == v {
					idx = j
					break
				}
			}
			if idx < 0 {
				idx = len(mapping)
				mapping = append(mapping, v)
			}
			nv.Set(i, uint64(idx))
		}
	}

	p.values, p.mapping, p.index = nv, mapping, index
	p.bits, p.mode = newBits, newMode
	p.Set(setIndex, newValue)
}
