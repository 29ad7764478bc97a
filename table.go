package strata

import "unsafe"

// table is an ordered collection of columns keyed by component id, with no
// notion of entity identity of its own (that is the archetype's job, spec
// §3). Columns are stored in ascending ComponentID order; table.project
// reorders a caller's requested id order on demand (spec §4.2's
// "Projection ordering").
//
// Grounded on world.go's Archetype.componentData/componentIDs/slots triple,
// split out into its own type per spec §3/§4.2: the spec treats "table"
// (row storage) and "archetype" (entity identity on top of a table) as
// distinct components, where the teacher fuses both into one struct.
type table struct {
	ids  []ComponentID
	cols []*column
	slot [MaxComponentTypes]int8 // slot[id] is the index into cols, -1 if absent.
	len  int
	cap  int
}

func newTable(ids []ComponentID) *table {
	t := &table{
		ids:  append([]ComponentID(nil), ids...),
		cols: make([]*column, len(ids)),
	}
	for i := range t.slot {
		t.slot[i] = -1
	}
	for i, id := range ids {
		t.cols[i] = newColumn(globalComponents.info(id).typ)
		t.slot[id] = int8(i)
	}
	return t
}

// columnIndex returns the storage index of id's column, or false if this
// table does not carry that component.
func (t *table) columnIndex(id ComponentID) (int, bool) {
	s := t.slot[id]
	if s < 0 {
		return -1, false
	}
	return int(s), true
}

func (t *table) column(id ComponentID) (*column, bool) {
	i, ok := t.columnIndex(id)
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// grow doubles capacity (starting at 8 when the table has none), the
// amortized rule spec §4.2 requires of push.
func (t *table) grow() {
	newCap := t.cap * 2
	if newCap == 0 {
		newCap = 8
	}
	t.growExact(newCap)
}

func (t *table) growExact(toCap int) {
	for _, c := range t.cols {
		c.grow(toCap)
	}
	t.cap = toCap
}

// push appends one row. values[i] must point to an instance of the
// component at t.ids[i] - the caller (archetype) is responsible for
// supplying pointers in the table's own column order, since spec §4.2
// says push never reorders the caller's column set, only project does.
func (t *table) push(values []unsafe.Pointer) int {
	if t.len == t.cap {
		t.grow()
	}
	row := t.len
	for i, v := range values {
		t.cols[i].set(row, v)
	}
	t.len++
	return row
}

// swapRemove removes row, swapping the last row into its place. Returns
// the row that was moved into `row`'s place, or row itself if row was
// already last (no move occurred).
func (t *table) swapRemove(row int) (movedFrom int) {
	last := t.len - 1
	for _, c := range t.cols {
		c.swapRemove(row, t.len)
	}
	t.len--
	return last
}

// project returns, for each requested component id in the caller's order,
// the column holding it. Reports false if any requested id is absent from
// this table (spec §4.2: "Fails if any pattern type is absent.").
func (t *table) project(ids []ComponentID) ([]*column, bool) {
	out := make([]*column, len(ids))
	for i, id := range ids {
		c, ok := t.column(id)
		if !ok {
			return nil, false
		}
		out[i] = c
	}
	return out, true
}

// rowRange is a half-open row interval [Start, End) produced by
// partitions, spec §4.2.
type rowRange struct {
	Start, End int
}

// partitions splits [0,len) into half-open chunks of at most size rows
// each, spec §4.2: "partitions are half-open intervals
// [i*size, min((i+1)*size, len))."
func (t *table) partitions(size int) []rowRange {
	if size <= 0 || t.len == 0 {
		if t.len == 0 {
			return nil
		}
		size = t.len
	}
	n := (t.len + size - 1) / size
	out := make([]rowRange, 0, n)
	for start := 0; start < t.len; start += size {
		end := start + size
		if end > t.len {
			end = t.len
		}
		out = append(out, rowRange{Start: start, End: end})
	}
	return out
}
