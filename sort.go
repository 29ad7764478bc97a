package strata

import "unsafe"

// insertionCosort sorts ids ascending, permuting ptrs in lockstep so
// ptrs[i] keeps naming the same component it did before the sort. Tuple
// arities are small (spec caps generated tuples at 8 elements, SPEC_FULL
// §9), so an O(n^2) insertion sort is both simpler and faster than a
// general-purpose sort here.
//
// Ported from original_source/crates/ecs/src/sort.rs's
// insertion_cosort/insertion_sort_noalias, which the spec's own registry
// and tuple code build on for keying archetypes by a sorted, deduplicated
// type-id set (spec §3, §4.4).
func insertionCosort(ids []ComponentID, ptrs []unsafe.Pointer) {
	n := len(ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if ids[i] > ids[j] {
				ids[i], ids[j] = ids[j], ids[i]
				ptrs[i], ptrs[j] = ptrs[j], ptrs[i]
			}
		}
	}
}

// hasDuplicateSorted reports whether a non-decreasing slice contains two
// equal adjacent elements - the registry's duplicate-component-type check
// (spec §4.4: "reject if duplicates are present").
func hasDuplicateSorted(ids []ComponentID) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return true
		}
	}
	return false
}

// compareIDs lexicographically compares two sorted id slices, the
// archetype_lookup ordering key (spec §4.4).
func compareIDs(a, b []ComponentID) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
