package strata

import (
	"testing"
	"unsafe"
)

type tableTestA struct{ V int64 }
type tableTestB struct{ V int32 }

func TestTablePushAndProject(t *testing.T) {
	resetGlobalComponentRegistry()
	idA := RegisterComponent[tableTestA]()
	idB := RegisterComponent[tableTestB]()
	tbl := newTable([]ComponentID{idA, idB})

	a := tableTestA{V: 1}
	b := tableTestB{V: 2}
	row := tbl.push([]unsafe.Pointer{unsafe.Pointer(&a), unsafe.Pointer(&b)})
	if row != 0 {
		t.Fatalf("first push should land at row 0, got %d", row)
	}

	cols, ok := tbl.project([]ComponentID{idB, idA})
	if !ok {
		t.Fatalf("project should succeed for present ids")
	}
	gotB := *(*tableTestB)(cols[0].at(row))
	gotA := *(*tableTestA)(cols[1].at(row))
	if gotB.V != 2 || gotA.V != 1 {
		t.Fatalf("got b=%v a=%v, want b.V=2 a.V=1", gotB, gotA)
	}
}

func TestTableProjectFailsOnAbsentComponent(t *testing.T) {
	resetGlobalComponentRegistry()
	idA := RegisterComponent[tableTestA]()
	idB := RegisterComponent[tableTestB]()
	tbl := newTable([]ComponentID{idA})

	if _, ok := tbl.project([]ComponentID{idA, idB}); ok {
		t.Fatalf("expected project to fail: idB absent from this table")
	}
}

func TestTableSwapRemoveMovesLastRow(t *testing.T) {
	resetGlobalComponentRegistry()
	idA := RegisterComponent[tableTestA]()
	tbl := newTable([]ComponentID{idA})

	for i := int64(0); i < 3; i++ {
		v := tableTestA{V: i}
		tbl.push([]unsafe.Pointer{unsafe.Pointer(&v)})
	}

	moved := tbl.swapRemove(0)
	if moved != 2 {
		t.Fatalf("moved = %d, want 2 (the last row before removal)", moved)
	}
	col, _ := tbl.column(idA)
	got := *(*tableTestA)(col.at(0))
	if got.V != 2 {
		t.Fatalf("row 0 = %v, want V=2 (moved from the old last row)", got)
	}
	if tbl.len != 2 {
		t.Fatalf("len = %d, want 2", tbl.len)
	}
}

func TestTablePartitionsHalfOpenIntervals(t *testing.T) {
	resetGlobalComponentRegistry()
	idA := RegisterComponent[tableTestA]()
	tbl := newTable([]ComponentID{idA})
	for i := 0; i < 10; i++ {
		v := tableTestA{V: int64(i)}
		tbl.push([]unsafe.Pointer{unsafe.Pointer(&v)})
	}

	parts := tbl.partitions(4)
	want := []rowRange{{0, 4}, {4, 8}, {8, 10}}
	if len(parts) != len(want) {
		t.Fatalf("got %v, want %v", parts, want)
	}
	for i, p := range want {
		if parts[i] != p {
			t.Fatalf("got %v, want %v", parts, want)
		}
	}
}

func TestTablePartitionsEmptyTableYieldsNone(t *testing.T) {
	resetGlobalComponentRegistry()
	idA := RegisterComponent[tableTestA]()
	tbl := newTable([]ComponentID{idA})
	if parts := tbl.partitions(4); parts != nil {
		t.Fatalf("expected nil partitions for an empty table, got %v", parts)
	}
}
