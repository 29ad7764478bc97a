package strata

import "go.uber.org/zap"

// Options configures a Registry. The zero value is ready to use: a no-op
// logger and the default parallel chunk size and worker cap.
//
// Grounded on the teacher's WorldOptions (world.go); Logger and MaxWorkers
// are new fields carrying the ambient logging/concurrency stack described
// in SPEC_FULL.md §1.1.
type Options struct {
	// InitialArchetypeCapacity seeds new archetypes' table capacity.
	InitialArchetypeCapacity int

	// DefaultChunkSize is the partition size used by RunParallel/Pipeline
	// when the caller doesn't request a specific size (spec §4.6: "default
	// 4096").
	DefaultChunkSize int

	// MaxWorkers bounds the parallel executors' worker pool. Zero means
	// "use runtime.GOMAXPROCS(0)".
	MaxWorkers int

	// Logger receives sparse diagnostic events: archetype creation at
	// Debug. Worker panics are not recovered and are not logged. Defaults
	// to a no-op logger.
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.InitialArchetypeCapacity <= 0 {
		o.InitialArchetypeCapacity = 64
	}
	if o.DefaultChunkSize <= 0 {
		o.DefaultChunkSize = 4096
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
