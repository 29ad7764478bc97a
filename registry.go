package strata

import (
	"fmt"
	"sort"
	"unsafe"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// archetypeKeyEntry is one row of the registry's sorted archetype lookup
// (spec §4.4: archetypes are looked up by their sorted component-id set via
// binary search, not a hash map, since sets are small and comparisons are
// cheap).
type archetypeKeyEntry struct {
	key []ComponentID
	id  ArchetypeID
}

// patternCacheKey identifies a (pattern, registry generation) pair. bitset
// is a plain comparable array, so it doubles as its own cache-key
// fingerprint. generation is folded in so a cached "no matching archetypes"
// answer is invalidated the moment a new archetype might satisfy it (spec
// §4.4's pattern-discovery memoization note).
type patternCacheKey struct {
	pattern    bitset
	generation uint64
}

// Registry owns every archetype and table in a world and the message bus
// systems communicate through (spec §3/§4.4). Component ids are not
// per-registry: they come from the process-wide component registration in
// component.go.
//
// Grounded on the teacher's World (world.go): archetypes slice, per-pattern
// archetype discovery, and the idea of caching a query's matched archetype
// list. The teacher rebuilds that cache by iterating its archetype slice
// unconditionally on every structural change; this registry instead keys a
// bounded LRU by a fingerprint of the requested pattern plus a generation
// counter, per SPEC_FULL.md's domain-stack wiring of golang-lru.
type Registry struct {
	opts         Options
	archetypes   []*Archetype
	lookup       []archetypeKeyEntry
	messages     *Messages
	patternCache *lru.Cache[patternCacheKey, []*Archetype]
	generation   uint64
}

// NewRegistry constructs an empty registry ready to accept entities.
func NewRegistry(opts Options) *Registry {
	opts = opts.withDefaults()
	cache, err := lru.New[patternCacheKey, []*Archetype](256)
	if err != nil {
		// Only non-nil for a non-positive size, which 256 never is.
		panic(err)
	}
	return &Registry{
		opts:         opts,
		messages:     newMessages(),
		patternCache: cache,
	}
}

// Messages returns the registry's message bus (spec §4.8).
func (r *Registry) Messages() *Messages { return r.messages }

// findOrCreateArchetype returns the archetype storing exactly the sorted,
// deduplicated id set sortedIDs, creating one (in sorted lookup position)
// on first use.
func (r *Registry) findOrCreateArchetype(sortedIDs []ComponentID) *Archetype {
	i := sort.Search(len(r.lookup), func(i int) bool {
		return compareIDs(r.lookup[i].key, sortedIDs) >= 0
	})
	if i < len(r.lookup) && compareIDs(r.lookup[i].key, sortedIDs) == 0 {
		return r.archetypes[r.lookup[i].id]
	}

	id := ArchetypeID(len(r.archetypes))
	keyCopy := append([]ComponentID(nil), sortedIDs...)
	arch := newArchetype(id, keyCopy)
	arch.t.growExact(r.opts.InitialArchetypeCapacity)
	r.archetypes = append(r.archetypes, arch)

	entry := archetypeKeyEntry{key: keyCopy, id: id}
	r.lookup = append(r.lookup, archetypeKeyEntry{})
	copy(r.lookup[i+1:], r.lookup[i:len(r.lookup)-1])
	r.lookup[i] = entry

	r.generation++
	r.opts.Logger.Debug("archetype created",
		zap.Uint32("archetype_id", uint32(id)),
		zap.Any("components", keyCopy),
	)
	return arch
}

// Push creates a new entity with the given component ids and values. ids
// and values must correspond index-for-index; Push sorts both together and
// panics if ids contains a duplicate component type (spec §4.4: "reject if
// duplicates are present (programmer error, not a runtime condition)").
func (r *Registry) Push(ids []ComponentID, values []unsafe.Pointer) Entity {
	if len(ids) != len(values) {
		panic(fmt.Sprintf("strata: Push got %d ids but %d values", len(ids), len(values)))
	}
	sortedIDs := append([]ComponentID(nil), ids...)
	sortedValues := append([]unsafe.Pointer(nil), values...)
	insertionCosort(sortedIDs, sortedValues)
	if hasDuplicateSorted(sortedIDs) {
		for i := 1; i < len(sortedIDs); i++ {
			if sortedIDs[i] == sortedIDs[i-1] {
				panicDuplicateComponent(sortedIDs[i])
			}
		}
	}

	arch := r.findOrCreateArchetype(sortedIDs)
	return arch.push(sortedValues)
}

// Remove deletes e from whichever archetype it lives in. Reports whether e
// named a live entity.
func (r *Registry) Remove(e Entity) bool {
	if int(e.archetypeID) >= len(r.archetypes) {
		return false
	}
	return r.archetypes[e.archetypeID].remove(e)
}

// Contains reports whether e still names a live entity.
func (r *Registry) Contains(e Entity) bool {
	if int(e.archetypeID) >= len(r.archetypes) {
		return false
	}
	return r.archetypes[e.archetypeID].contains(e)
}

// matchingArchetypes returns every archetype whose key is a superset of
// required, the core of pattern discovery (spec §4.4: "a pattern matches
// any archetype whose component set is a superset").
func (r *Registry) matchingArchetypes(required bitset) []*Archetype {
	key := patternCacheKey{pattern: required, generation: r.generation}
	if cached, ok := r.patternCache.Get(key); ok {
		return cached
	}
	var out []*Archetype
	for _, a := range r.archetypes {
		if a.key.contains(required) {
			out = append(out, a)
		}
	}
	r.patternCache.Add(key, out)
	return out
}

// componentPtrs resolves e's row for every id in ids, in the caller's
// requested order, validating the handle once (spec §4.5's pattern-based
// get<P>/get_mut<P>).
func (r *Registry) componentPtrs(e Entity, ids []ComponentID) ([]unsafe.Pointer, bool) {
	if int(e.archetypeID) >= len(r.archetypes) {
		return nil, false
	}
	arch := r.archetypes[e.archetypeID]
	row, ok := arch.rowOf(e)
	if !ok {
		return nil, false
	}
	cols, ok := arch.project(ids)
	if !ok {
		return nil, false
	}
	ptrs := make([]unsafe.Pointer, len(cols))
	for i, c := range cols {
		ptrs[i] = c.at(row)
	}
	return ptrs, true
}

// archetypeCount reports how many archetypes currently exist.
func (r *Registry) archetypeCount() int { return len(r.archetypes) }

// archetypeByID returns the archetype with the given id.
func (r *Registry) archetypeByID(id ArchetypeID) *Archetype { return r.archetypes[id] }
