package strata

import (
	"reflect"
	"sort"
	"unsafe"
)

// SerialSystem is one system's serial iteration contract (spec §4.6): a
// local borrow pattern iterated per row, a global borrow pattern for
// random access through the accessor, the message types it may send, and
// the per-row callback.
//
// Grounded on the teacher's query iteration (query.go's Query/ForEach
// style), generalized to the spec's declared-permission model: the
// teacher's queries have no read/write distinction or global-access
// concept, both added here per SPEC_FULL.md.
type SerialSystem[L boundPattern[L], G pattern] struct {
	Global    G
	SendTypes []reflect.Type
	Iter      func(e Entity, locals L, acc *Accessor, msgs *Messages)
}

// Run executes sys serially over every archetype matching its local
// pattern, in archetype-then-ascending-row order (spec §4.6/§5).
func Run[L boundPattern[L], G pattern](reg *Registry, sys SerialSystem[L, G]) {
	var zeroLocal L
	assertNoDuplicateIDs(zeroLocal.ids())
	for _, t := range sys.SendTypes {
		if !reg.messages.isRegistered(t) {
			panicUnregisteredMessage()
		}
	}

	perm := AccessSet{
		localRead:   zeroLocal.readSet(),
		localWrite:  zeroLocal.writeSet(),
		globalRead:  sys.Global.readSet(),
		globalWrite: sys.Global.writeSet(),
	}
	acc := newAccessor(reg, perm)
	ids := zeroLocal.ids()

	for _, arch := range reg.matchingArchetypes(zeroLocal.valueSet()) {
		cols, ok := arch.project(ids)
		if !ok {
			continue
		}
		n := arch.Len()
		ptrs := make([]unsafe.Pointer, len(cols))
		for row := 0; row < n; row++ {
			for i, c := range cols {
				ptrs[i] = c.at(row)
			}
			locals := zeroLocal.bindRow(ptrs)
			e := arch.entityAt(row)
			acc.setPosition(arch.ID(), row)
			sys.Iter(e, locals, acc, reg.messages)
		}
	}
	acc.clearPosition()
}

// assertNoDuplicateIDs panics if ids contains the same component twice - a
// local pattern that borrows one component type more than once (spec
// §4.6 step 1: "assert no duplicate in Local's write set").
func assertNoDuplicateIDs(ids []ComponentID) {
	sorted := append([]ComponentID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if hasDuplicateSorted(sorted) {
		panicDuplicateLocalWrite()
	}
}
