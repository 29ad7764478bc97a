package strata

// ArchetypeID identifies an archetype within a single Registry. IDs are
// assigned in creation order starting at 0 and are never reused (spec
// §4.4: "An archetype id is never re-used.").
type ArchetypeID uint32

// Entity is a 96-bit handle into a Registry: the archetype it currently
// lives in, its stable slot within that archetype, and a generation used
// to detect a handle that outlived the slot it named (spec §3).
//
// The zero value is the sentinel Entity{} - never produced by Push, since
// generations are minted starting at 1.
type Entity struct {
	archetypeID ArchetypeID
	slot        uint32
	generation  uint64
}

// ArchetypeID reports which archetype this handle targets.
func (e Entity) ArchetypeID() ArchetypeID { return e.archetypeID }

// IsZero reports whether e is the never-produced sentinel value.
func (e Entity) IsZero() bool { return e == Entity{} }
