// Package strata implements an archetype-based entity-component system:
// entities are grouped by the exact set of component types they carry,
// components are stored in tightly packed per-type columns, and systems
// iterate those columns in bulk, serially or across a bounded worker pool,
// under a static read/write permission model that catches aliasing bugs
// before any row is touched.
//
// The package is organized the way the spec draws its own boundaries:
// this package holds the registry, archetype storage, and the system
// executors (C1-C8); bit-packed and palette containers live in
// strata/bitpack (C9-C10); the voxel chunk model built on top of them
// lives in strata/voxel (C11, C12, C14); namespaced identifiers live in
// strata/ident (C13).
package strata
