package strata

import "unsafe"

// Archetype is a table plus entity identity: a slab mapping external
// entity slot to current row, an entity vector parallel to the table's
// rows, and a generation counter bumped on every successful push (spec
// §3/§4.3).
//
// Grounded on world.go's push/remove/swap-remove-with-index-fixup
// (removeEntityFromArchetype, CreateEntity), but restructured around the
// spec's slab-based external slot rather than the teacher's scheme of
// using the global entity ID itself as a direct index into World.metas -
// the spec asks the archetype to own its own slot table so it is
// self-contained (spec §4.3, §8: "swapping-removing other entities never
// invalidates a surviving entity's handle").
type Archetype struct {
	id         ArchetypeID
	key        bitset
	t          *table
	entities   []Entity
	lookup     slab
	generation uint64
}

func newArchetype(id ArchetypeID, ids []ComponentID) *Archetype {
	return &Archetype{
		id:  id,
		key: bitsetOf(ids...),
		t:   newTable(ids),
		// Generations start at 1 so archetype 0's first push never
		// produces Entity{}, the zero-value sentinel (spec §3).
		generation: 1,
	}
}

// ID returns this archetype's assigned, never-reused id.
func (a *Archetype) ID() ArchetypeID { return a.id }

// Len returns the number of live entities (and rows) in this archetype.
func (a *Archetype) Len() int { return a.t.len }

// Key reports the sorted component-id set this archetype stores.
func (a *Archetype) Key() []ComponentID { return a.key.ids() }

// push appends a new entity with the given component values, which must
// be supplied as pointers in the table's own column order (spec §4.3).
func (a *Archetype) push(values []unsafe.Pointer) Entity {
	row := a.t.len
	a.t.push(values)
	slotIdx := a.lookup.insert(row)
	gen := a.generation
	a.generation++
	e := Entity{archetypeID: a.id, slot: slotIdx, generation: gen}
	a.entities = append(a.entities, e)
	return e
}

// remove deletes entity e, reports whether it was found and removed
// (spec §4.3).
func (a *Archetype) remove(e Entity) bool {
	row, ok := a.lookup.get(e.slot)
	if !ok {
		return false
	}
	if a.entities[row].generation != e.generation {
		return false
	}
	last := a.t.len - 1
	if row != last {
		moved := a.entities[last]
		a.lookup.set(moved.slot, row)
		a.entities[row] = moved
	}
	a.entities = a.entities[:last]
	a.t.swapRemove(row)
	a.lookup.release(e.slot)
	return true
}

// contains reports whether e still names a live row in this archetype.
func (a *Archetype) contains(e Entity) bool {
	row, ok := a.lookup.get(e.slot)
	if !ok {
		return false
	}
	return a.entities[row].generation == e.generation
}

// rowOf resolves e to its current row, validating slot and generation.
func (a *Archetype) rowOf(e Entity) (int, bool) {
	row, ok := a.lookup.get(e.slot)
	if !ok || a.entities[row].generation != e.generation {
		return 0, false
	}
	return row, true
}

// project resolves a pattern of component ids to their columns, in the
// caller's requested order (spec §4.2's "Projection ordering").
func (a *Archetype) project(ids []ComponentID) ([]*column, bool) {
	return a.t.project(ids)
}

// partitions splits this archetype's row space into half-open chunks,
// spec §4.2/§4.6.
func (a *Archetype) partitions(size int) []rowRange {
	return a.t.partitions(size)
}

// entityAt returns the entity currently occupying row.
func (a *Archetype) entityAt(row int) Entity {
	return a.entities[row]
}
