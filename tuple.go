package strata

import "unsafe"

// componentRef is satisfied by Read[T] and Write[T]. Its methods never
// depend on instance state - only on the type parameter T - so a zero value
// of a componentRef-satisfying type is a sufficient "type witness" to
// recover its component id, its read/write mode, and to bind it to a live
// pointer. Generated Pattern types (tuple_generated.go) exploit this to
// implement the spec's ComponentBorrowTuple contract (§6) without needing
// per-arity hand-written bind logic.
type componentRef interface {
	componentID() ComponentID
	writeMode() bool
	bind(ptr unsafe.Pointer) componentRef
}

// Read is a shared borrow of component T, one element of a system's Local
// or Global pattern (spec §4.5/§6).
type Read[T any] struct {
	ptr *T
}

func (Read[T]) componentID() ComponentID          { return ComponentIDFor[T]() }
func (Read[T]) writeMode() bool                    { return false }
func (Read[T]) bind(ptr unsafe.Pointer) componentRef {
	return Read[T]{ptr: (*T)(ptr)}
}

// Value returns the borrowed component.
func (r Read[T]) Value() *T { return r.ptr }

// Write is an exclusive borrow of component T.
type Write[T any] struct {
	ptr *T
}

func (Write[T]) componentID() ComponentID          { return ComponentIDFor[T]() }
func (Write[T]) writeMode() bool                    { return true }
func (Write[T]) bind(ptr unsafe.Pointer) componentRef {
	return Write[T]{ptr: (*T)(ptr)}
}

// Value returns the borrowed component.
func (w Write[T]) Value() *T { return w.ptr }

// bindRef binds a zero-value componentRef type witness Z to a live pointer,
// returning it re-asserted as Z. Z is always Read[T] or Write[T] for some T,
// so the assertion never fails.
func bindRef[Z componentRef](ptr unsafe.Pointer) Z {
	var z Z
	return z.bind(ptr).(Z)
}

// idOf returns the component id named by the zero value of Z.
func idOf[Z componentRef]() ComponentID {
	var z Z
	return z.componentID()
}

// isWriteOf reports whether Z is a Write[T] borrow.
func isWriteOf[Z componentRef]() bool {
	var z Z
	return z.writeMode()
}
