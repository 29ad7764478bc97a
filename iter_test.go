package strata

import "testing"

type iterPosition struct{ X, Y int }
type iterVelocity struct{ DX, DY int }

func TestRunAppliesIterToEveryMatchingRow(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})

	Push2(reg, iterPosition{X: 0, Y: 0}, iterVelocity{DX: 1, DY: 2})
	Push2(reg, iterPosition{X: 10, Y: 10}, iterVelocity{DX: -1, DY: -2})
	Push1(reg, iterPosition{X: 99, Y: 99}) // no velocity: must not be visited

	visited := 0
	sys := SerialSystem[Pattern2[Write[iterPosition], Read[iterVelocity]], Pattern1[Read[iterPosition]]]{
		Iter: func(e Entity, locals Pattern2[Write[iterPosition], Read[iterVelocity]], acc *Accessor, msgs *Messages) {
			visited++
			pos := locals.A.Value()
			vel := locals.B.Value()
			pos.X += vel.DX
			pos.Y += vel.DY
		},
	}
	Run(reg, sys)

	if visited != 2 {
		t.Fatalf("visited = %d, want 2 (entities missing Velocity are excluded)", visited)
	}
}

func TestRunMutatesThroughLocalWritePattern(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	e := Push2(reg, iterPosition{X: 1, Y: 1}, iterVelocity{DX: 5, DY: 5})

	sys := SerialSystem[Pattern2[Write[iterPosition], Read[iterVelocity]], Pattern1[Read[iterPosition]]]{
		Iter: func(e Entity, locals Pattern2[Write[iterPosition], Read[iterVelocity]], acc *Accessor, msgs *Messages) {
			locals.A.Value().X += locals.B.Value().DX
		},
	}
	Run(reg, sys)

	acc := newAccessor(reg, AccessSet{globalRead: bitsetOf(ComponentIDFor[iterPosition]())})
	p, ok := Get[iterPosition](acc, e)
	if !ok || p.X != 6 {
		t.Fatalf("got (%v,%v), want X=6", p, ok)
	}
}

func TestRunPanicsOnDuplicateLocalComponent(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	Push1(reg, iterPosition{})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: local pattern borrows the same component twice")
		}
	}()
	sys := SerialSystem[Pattern2[Write[iterPosition], Read[iterPosition]], Pattern1[Read[iterPosition]]]{
		Iter: func(e Entity, locals Pattern2[Write[iterPosition], Read[iterPosition]], acc *Accessor, msgs *Messages) {},
	}
	Run(reg, sys)
}
