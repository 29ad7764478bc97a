package strata

import "testing"

type accTestPosition struct{ X int }
type accTestVelocity struct{ X int }

func TestGetEnforcesGlobalReadSubset(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	e := Push1(reg, accTestPosition{X: 1})

	acc := newAccessor(reg, AccessSet{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: Position not in global read/write set")
		}
	}()
	Get[accTestPosition](acc, e)
}

func TestGetSucceedsWhenDeclaredGlobalRead(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	e := Push1(reg, accTestPosition{X: 5})
	id := ComponentIDFor[accTestPosition]()

	acc := newAccessor(reg, AccessSet{globalRead: bitsetOf(id)})
	p, ok := Get[accTestPosition](acc, e)
	if !ok || p.X != 5 {
		t.Fatalf("got (%v,%v), want (X=5,true)", p, ok)
	}
}

func TestGetMutRequiresGlobalWrite(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	e := Push1(reg, accTestPosition{X: 1})
	id := ComponentIDFor[accTestPosition]()

	acc := newAccessor(reg, AccessSet{globalRead: bitsetOf(id)})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: global_read alone does not authorize get_mut")
		}
	}()
	GetMut[accTestPosition](acc, e)
}

func TestGetSelfAliasingAgainstLocalWritePanics(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	e := Push1(reg, accTestPosition{X: 1})
	id := ComponentIDFor[accTestPosition]()

	acc := newAccessor(reg, AccessSet{localWrite: bitsetOf(id), globalRead: bitsetOf(id), globalWrite: bitsetOf(id)})
	arch := reg.archetypeByID(e.ArchetypeID())
	row, _ := arch.rowOf(e)
	acc.setPosition(e.ArchetypeID(), row)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: get on the currently-visited row aliases its own local write")
		}
	}()
	Get[accTestPosition](acc, e)
}

func TestGetOtherRowDoesNotTriggerSelfAliasing(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	e1 := Push1(reg, accTestPosition{X: 1})
	e2 := Push1(reg, accTestPosition{X: 2})
	id := ComponentIDFor[accTestPosition]()

	acc := newAccessor(reg, AccessSet{localWrite: bitsetOf(id), globalRead: bitsetOf(id), globalWrite: bitsetOf(id)})
	arch := reg.archetypeByID(e1.ArchetypeID())
	row, _ := arch.rowOf(e1)
	acc.setPosition(e1.ArchetypeID(), row)

	p, ok := Get[accTestPosition](acc, e2)
	if !ok || p.X != 2 {
		t.Fatalf("got (%v,%v), want (X=2,true): reading a different row should not alias", p, ok)
	}
}
