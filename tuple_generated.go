package strata

// Code in this file follows one repeated shape per tuple arity, the
// generated-tuple-family design note (spec §9: "a macro or equivalent
// generates implementations for tuple arities"). This module caps arity at
// 8 rather than the spec's illustrative 10: no system in the corpus this
// was grounded on needs more than six components at once, and a narrower
// cap keeps the generated surface smaller (SPEC_FULL.md §9).

import "unsafe"

// --- ComponentTuple family: ordered value tuples used at entity creation ---

type Tuple1[T1 any] struct{ V1 T1 }

func (t *Tuple1[T1]) ids() []ComponentID { return []ComponentID{ComponentIDFor[T1]()} }
func (t *Tuple1[T1]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{unsafe.Pointer(&t.V1)}
}

// Push1 creates a new entity carrying a single component.
func Push1[T1 any](r *Registry, v1 T1) Entity {
	t := Tuple1[T1]{V1: v1}
	return r.Push(t.ids(), t.ptrs())
}

type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func (t *Tuple2[T1, T2]) ids() []ComponentID {
	return []ComponentID{ComponentIDFor[T1](), ComponentIDFor[T2]()}
}
func (t *Tuple2[T1, T2]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{unsafe.Pointer(&t.V1), unsafe.Pointer(&t.V2)}
}

// Push2 creates a new entity carrying two components.
func Push2[T1, T2 any](r *Registry, v1 T1, v2 T2) Entity {
	t := Tuple2[T1, T2]{V1: v1, V2: v2}
	return r.Push(t.ids(), t.ptrs())
}

type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

func (t *Tuple3[T1, T2, T3]) ids() []ComponentID {
	return []ComponentID{ComponentIDFor[T1](), ComponentIDFor[T2](), ComponentIDFor[T3]()}
}
func (t *Tuple3[T1, T2, T3]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{unsafe.Pointer(&t.V1), unsafe.Pointer(&t.V2), unsafe.Pointer(&t.V3)}
}

// Push3 creates a new entity carrying three components.
func Push3[T1, T2, T3 any](r *Registry, v1 T1, v2 T2, v3 T3) Entity {
	t := Tuple3[T1, T2, T3]{V1: v1, V2: v2, V3: v3}
	return r.Push(t.ids(), t.ptrs())
}

type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

func (t *Tuple4[T1, T2, T3, T4]) ids() []ComponentID {
	return []ComponentID{ComponentIDFor[T1](), ComponentIDFor[T2](), ComponentIDFor[T3](), ComponentIDFor[T4]()}
}
func (t *Tuple4[T1, T2, T3, T4]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{unsafe.Pointer(&t.V1), unsafe.Pointer(&t.V2), unsafe.Pointer(&t.V3), unsafe.Pointer(&t.V4)}
}

// Push4 creates a new entity carrying four components.
func Push4[T1, T2, T3, T4 any](r *Registry, v1 T1, v2 T2, v3 T3, v4 T4) Entity {
	t := Tuple4[T1, T2, T3, T4]{V1: v1, V2: v2, V3: v3, V4: v4}
	return r.Push(t.ids(), t.ptrs())
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

func (t *Tuple5[T1, T2, T3, T4, T5]) ids() []ComponentID {
	return []ComponentID{
		ComponentIDFor[T1](), ComponentIDFor[T2](), ComponentIDFor[T3](), ComponentIDFor[T4](), ComponentIDFor[T5](),
	}
}
func (t *Tuple5[T1, T2, T3, T4, T5]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{
		unsafe.Pointer(&t.V1), unsafe.Pointer(&t.V2), unsafe.Pointer(&t.V3), unsafe.Pointer(&t.V4), unsafe.Pointer(&t.V5),
	}
}

// Push5 creates a new entity carrying five components.
func Push5[T1, T2, T3, T4, T5 any](r *Registry, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Entity {
	t := Tuple5[T1, T2, T3, T4, T5]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
	return r.Push(t.ids(), t.ptrs())
}

type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) ids() []ComponentID {
	return []ComponentID{
		ComponentIDFor[T1](), ComponentIDFor[T2](), ComponentIDFor[T3](),
		ComponentIDFor[T4](), ComponentIDFor[T5](), ComponentIDFor[T6](),
	}
}
func (t *Tuple6[T1, T2, T3, T4, T5, T6]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{
		unsafe.Pointer(&t.V1), unsafe.Pointer(&t.V2), unsafe.Pointer(&t.V3),
		unsafe.Pointer(&t.V4), unsafe.Pointer(&t.V5), unsafe.Pointer(&t.V6),
	}
}

// Push6 creates a new entity carrying six components.
func Push6[T1, T2, T3, T4, T5, T6 any](r *Registry, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Entity {
	t := Tuple6[T1, T2, T3, T4, T5, T6]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
	return r.Push(t.ids(), t.ptrs())
}

type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) ids() []ComponentID {
	return []ComponentID{
		ComponentIDFor[T1](), ComponentIDFor[T2](), ComponentIDFor[T3](), ComponentIDFor[T4](),
		ComponentIDFor[T5](), ComponentIDFor[T6](), ComponentIDFor[T7](),
	}
}
func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{
		unsafe.Pointer(&t.V1), unsafe.Pointer(&t.V2), unsafe.Pointer(&t.V3), unsafe.Pointer(&t.V4),
		unsafe.Pointer(&t.V5), unsafe.Pointer(&t.V6), unsafe.Pointer(&t.V7),
	}
}

// Push7 creates a new entity carrying seven components.
func Push7[T1, T2, T3, T4, T5, T6, T7 any](r *Registry, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Entity {
	t := Tuple7[T1, T2, T3, T4, T5, T6, T7]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
	return r.Push(t.ids(), t.ptrs())
}

type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) ids() []ComponentID {
	return []ComponentID{
		ComponentIDFor[T1](), ComponentIDFor[T2](), ComponentIDFor[T3](), ComponentIDFor[T4](),
		ComponentIDFor[T5](), ComponentIDFor[T6](), ComponentIDFor[T7](), ComponentIDFor[T8](),
	}
}
func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) ptrs() []unsafe.Pointer {
	return []unsafe.Pointer{
		unsafe.Pointer(&t.V1), unsafe.Pointer(&t.V2), unsafe.Pointer(&t.V3), unsafe.Pointer(&t.V4),
		unsafe.Pointer(&t.V5), unsafe.Pointer(&t.V6), unsafe.Pointer(&t.V7), unsafe.Pointer(&t.V8),
	}
}

// Push8 creates a new entity carrying eight components.
func Push8[T1, T2, T3, T4, T5, T6, T7, T8 any](
	r *Registry, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8,
) Entity {
	t := Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8}
	return r.Push(t.ids(), t.ptrs())
}

// --- ComponentBorrowTuple family: ordered Read[T]/Write[T] patterns used
// as a system's Local and Global declarations (spec §4.5/§6). Before
// binding, a PatternN[...] value is a zero-sized type descriptor; bindRow
// projects a row's column pointers into a populated copy whose A/B/...
// fields are live Read[T]/Write[T] borrows for that row. ---

// pattern is the arity-independent surface the executors (iter.go, par.go,
// pipeline.go) drive: which ids to project, and the read/write/value sets
// used for aliasing checks.
type pattern interface {
	ids() []ComponentID
	valueSet() bitset
	readSet() bitset
	writeSet() bitset
}

type Pattern1[A componentRef] struct{ A A }

func (Pattern1[A]) ids() []ComponentID { return []ComponentID{idOf[A]()} }
func (Pattern1[A]) valueSet() bitset   { return bitsetOf(idOf[A]()) }
func (Pattern1[A]) readSet() (s bitset) {
	if !isWriteOf[A]() {
		s.set(idOf[A]())
	}
	return
}
func (Pattern1[A]) writeSet() (s bitset) {
	if isWriteOf[A]() {
		s.set(idOf[A]())
	}
	return
}
func (Pattern1[A]) bindRow(ptrs []unsafe.Pointer) Pattern1[A] {
	return Pattern1[A]{A: bindRef[A](ptrs[0])}
}

type Pattern2[A, B componentRef] struct {
	A A
	B B
}

func (Pattern2[A, B]) ids() []ComponentID { return []ComponentID{idOf[A](), idOf[B]()} }
func (Pattern2[A, B]) valueSet() bitset   { return bitsetOf(idOf[A](), idOf[B]()) }
func (Pattern2[A, B]) readSet() (s bitset) {
	if !isWriteOf[A]() {
		s.set(idOf[A]())
	}
	if !isWriteOf[B]() {
		s.set(idOf[B]())
	}
	return
}
func (Pattern2[A, B]) writeSet() (s bitset) {
	if isWriteOf[A]() {
		s.set(idOf[A]())
	}
	if isWriteOf[B]() {
		s.set(idOf[B]())
	}
	return
}
func (Pattern2[A, B]) bindRow(ptrs []unsafe.Pointer) Pattern2[A, B] {
	return Pattern2[A, B]{A: bindRef[A](ptrs[0]), B: bindRef[B](ptrs[1])}
}

type Pattern3[A, B, C componentRef] struct {
	A A
	B B
	C C
}

func (Pattern3[A, B, C]) ids() []ComponentID {
	return []ComponentID{idOf[A](), idOf[B](), idOf[C]()}
}
func (Pattern3[A, B, C]) valueSet() bitset { return bitsetOf(idOf[A](), idOf[B](), idOf[C]()) }
func (p Pattern3[A, B, C]) modes() map[ComponentID]bool {
	return map[ComponentID]bool{idOf[A](): isWriteOf[A](), idOf[B](): isWriteOf[B](), idOf[C](): isWriteOf[C]()}
}
func (p Pattern3[A, B, C]) readSet() (s bitset) {
	for id, w := range p.modes() {
		if !w {
			s.set(id)
		}
	}
	return
}
func (p Pattern3[A, B, C]) writeSet() (s bitset) {
	for id, w := range p.modes() {
		if w {
			s.set(id)
		}
	}
	return
}
func (Pattern3[A, B, C]) bindRow(ptrs []unsafe.Pointer) Pattern3[A, B, C] {
	return Pattern3[A, B, C]{A: bindRef[A](ptrs[0]), B: bindRef[B](ptrs[1]), C: bindRef[C](ptrs[2])}
}

type Pattern4[A, B, C, D componentRef] struct {
	A A
	B B
	C C
	D D
}

func (Pattern4[A, B, C, D]) ids() []ComponentID {
	return []ComponentID{idOf[A](), idOf[B](), idOf[C](), idOf[D]()}
}
func (Pattern4[A, B, C, D]) valueSet() bitset {
	return bitsetOf(idOf[A](), idOf[B](), idOf[C](), idOf[D]())
}
func (p Pattern4[A, B, C, D]) modes() map[ComponentID]bool {
	return map[ComponentID]bool{
		idOf[A](): isWriteOf[A](), idOf[B](): isWriteOf[B](),
		idOf[C](): isWriteOf[C](), idOf[D](): isWriteOf[D](),
	}
}
func (p Pattern4[A, B, C, D]) readSet() (s bitset) {
	for id, w := range p.modes() {
		if !w {
			s.set(id)
		}
	}
	return
}
func (p Pattern4[A, B, C, D]) writeSet() (s bitset) {
	for id, w := range p.modes() {
		if w {
			s.set(id)
		}
	}
	return
}
func (Pattern4[A, B, C, D]) bindRow(ptrs []unsafe.Pointer) Pattern4[A, B, C, D] {
	return Pattern4[A, B, C, D]{
		A: bindRef[A](ptrs[0]), B: bindRef[B](ptrs[1]), C: bindRef[C](ptrs[2]), D: bindRef[D](ptrs[3]),
	}
}

type Pattern5[A, B, C, D, E componentRef] struct {
	A A
	B B
	C C
	D D
	E E
}

func (Pattern5[A, B, C, D, E]) ids() []ComponentID {
	return []ComponentID{idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E]()}
}
func (Pattern5[A, B, C, D, E]) valueSet() bitset {
	return bitsetOf(idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E]())
}
func (p Pattern5[A, B, C, D, E]) modes() map[ComponentID]bool {
	return map[ComponentID]bool{
		idOf[A](): isWriteOf[A](), idOf[B](): isWriteOf[B](), idOf[C](): isWriteOf[C](),
		idOf[D](): isWriteOf[D](), idOf[E](): isWriteOf[E](),
	}
}
func (p Pattern5[A, B, C, D, E]) readSet() (s bitset) {
	for id, w := range p.modes() {
		if !w {
			s.set(id)
		}
	}
	return
}
func (p Pattern5[A, B, C, D, E]) writeSet() (s bitset) {
	for id, w := range p.modes() {
		if w {
			s.set(id)
		}
	}
	return
}
func (Pattern5[A, B, C, D, E]) bindRow(ptrs []unsafe.Pointer) Pattern5[A, B, C, D, E] {
	return Pattern5[A, B, C, D, E]{
		A: bindRef[A](ptrs[0]), B: bindRef[B](ptrs[1]), C: bindRef[C](ptrs[2]),
		D: bindRef[D](ptrs[3]), E: bindRef[E](ptrs[4]),
	}
}

type Pattern6[A, B, C, D, E, F componentRef] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

func (Pattern6[A, B, C, D, E, F]) ids() []ComponentID {
	return []ComponentID{idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E](), idOf[F]()}
}
func (Pattern6[A, B, C, D, E, F]) valueSet() bitset {
	return bitsetOf(idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E](), idOf[F]())
}
func (p Pattern6[A, B, C, D, E, F]) modes() map[ComponentID]bool {
	return map[ComponentID]bool{
		idOf[A](): isWriteOf[A](), idOf[B](): isWriteOf[B](), idOf[C](): isWriteOf[C](),
		idOf[D](): isWriteOf[D](), idOf[E](): isWriteOf[E](), idOf[F](): isWriteOf[F](),
	}
}
func (p Pattern6[A, B, C, D, E, F]) readSet() (s bitset) {
	for id, w := range p.modes() {
		if !w {
			s.set(id)
		}
	}
	return
}
func (p Pattern6[A, B, C, D, E, F]) writeSet() (s bitset) {
	for id, w := range p.modes() {
		if w {
			s.set(id)
		}
	}
	return
}
func (Pattern6[A, B, C, D, E, F]) bindRow(ptrs []unsafe.Pointer) Pattern6[A, B, C, D, E, F] {
	return Pattern6[A, B, C, D, E, F]{
		A: bindRef[A](ptrs[0]), B: bindRef[B](ptrs[1]), C: bindRef[C](ptrs[2]),
		D: bindRef[D](ptrs[3]), E: bindRef[E](ptrs[4]), F: bindRef[F](ptrs[5]),
	}
}

type Pattern7[A, B, C, D, E, F, G componentRef] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

func (Pattern7[A, B, C, D, E, F, G]) ids() []ComponentID {
	return []ComponentID{idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E](), idOf[F](), idOf[G]()}
}
func (Pattern7[A, B, C, D, E, F, G]) valueSet() bitset {
	return bitsetOf(idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E](), idOf[F](), idOf[G]())
}
func (p Pattern7[A, B, C, D, E, F, G]) modes() map[ComponentID]bool {
	return map[ComponentID]bool{
		idOf[A](): isWriteOf[A](), idOf[B](): isWriteOf[B](), idOf[C](): isWriteOf[C](),
		idOf[D](): isWriteOf[D](), idOf[E](): isWriteOf[E](), idOf[F](): isWriteOf[F](),
		idOf[G](): isWriteOf[G](),
	}
}
func (p Pattern7[A, B, C, D, E, F, G]) readSet() (s bitset) {
	for id, w := range p.modes() {
		if !w {
			s.set(id)
		}
	}
	return
}
func (p Pattern7[A, B, C, D, E, F, G]) writeSet() (s bitset) {
	for id, w := range p.modes() {
		if w {
			s.set(id)
		}
	}
	return
}
func (Pattern7[A, B, C, D, E, F, G]) bindRow(ptrs []unsafe.Pointer) Pattern7[A, B, C, D, E, F, G] {
	return Pattern7[A, B, C, D, E, F, G]{
		A: bindRef[A](ptrs[0]), B: bindRef[B](ptrs[1]), C: bindRef[C](ptrs[2]), D: bindRef[D](ptrs[3]),
		E: bindRef[E](ptrs[4]), F: bindRef[F](ptrs[5]), G: bindRef[G](ptrs[6]),
	}
}

type Pattern8[A, B, C, D, E, F, G, H componentRef] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

func (Pattern8[A, B, C, D, E, F, G, H]) ids() []ComponentID {
	return []ComponentID{
		idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E](), idOf[F](), idOf[G](), idOf[H](),
	}
}
func (Pattern8[A, B, C, D, E, F, G, H]) valueSet() bitset {
	return bitsetOf(idOf[A](), idOf[B](), idOf[C](), idOf[D](), idOf[E](), idOf[F](), idOf[G](), idOf[H]())
}
func (p Pattern8[A, B, C, D, E, F, G, H]) modes() map[ComponentID]bool {
	return map[ComponentID]bool{
		idOf[A](): isWriteOf[A](), idOf[B](): isWriteOf[B](), idOf[C](): isWriteOf[C](), idOf[D](): isWriteOf[D](),
		idOf[E](): isWriteOf[E](), idOf[F](): isWriteOf[F](), idOf[G](): isWriteOf[G](), idOf[H](): isWriteOf[H](),
	}
}
func (p Pattern8[A, B, C, D, E, F, G, H]) readSet() (s bitset) {
	for id, w := range p.modes() {
		if !w {
			s.set(id)
		}
	}
	return
}
func (p Pattern8[A, B, C, D, E, F, G, H]) writeSet() (s bitset) {
	for id, w := range p.modes() {
		if w {
			s.set(id)
		}
	}
	return
}
func (Pattern8[A, B, C, D, E, F, G, H]) bindRow(ptrs []unsafe.Pointer) Pattern8[A, B, C, D, E, F, G, H] {
	return Pattern8[A, B, C, D, E, F, G, H]{
		A: bindRef[A](ptrs[0]), B: bindRef[B](ptrs[1]), C: bindRef[C](ptrs[2]), D: bindRef[D](ptrs[3]),
		E: bindRef[E](ptrs[4]), F: bindRef[F](ptrs[5]), G: bindRef[G](ptrs[6]), H: bindRef[H](ptrs[7]),
	}
}
