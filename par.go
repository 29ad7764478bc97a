package strata

import (
	"context"
	"reflect"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// ParallelSystem is one system's parallel iteration contract (spec §4.6).
// Each chunk-local worker receives its own Accessor and a worker identity
// it can pass to SendTL for staged sends.
type ParallelSystem[L boundPattern[L], G pattern] struct {
	Global    G
	SendTypes []reflect.Type
	// ChunkSize overrides the registry's default partition size (spec §4.6:
	// "default 4096") when positive.
	ChunkSize int
	Iter      func(e Entity, locals L, acc *Accessor, msgs *Messages, workerID int)
}

// RunParallel partitions every archetype matching sys's local pattern into
// fixed-size chunks and runs them on a bounded worker pool (spec §4.6/§5),
// via golang.org/x/sync/errgroup's SetLimit rather than a hand-rolled pool.
//
// Grounded on the teacher's batch_operations.go (chunked bulk operations
// over a table), generalized from its fixed sequential chunking to actual
// concurrent dispatch plus the spec's aliasing precondition and message
// sync barrier.
//
// A panic inside a worker is not recovered: as an unrecovered panic in a
// goroutine it ends the process, matching the spec's "no partial result,
// no recovery" semantics. Because of this, any message a
// panicking worker had staged is simply never reached by the Sync call
// below (spec §9 open question).
func RunParallel[L boundPattern[L], G pattern](ctx context.Context, reg *Registry, sys ParallelSystem[L, G]) error {
	var zeroLocal L
	assertNoDuplicateIDs(zeroLocal.ids())
	for _, t := range sys.SendTypes {
		if !reg.messages.isRegistered(t) {
			panicUnregisteredMessage()
		}
	}

	globalRead := sys.Global.readSet()
	localWrite := zeroLocal.writeSet()
	if globalRead.intersects(localWrite) {
		panicParallelAliasing()
	}

	perm := AccessSet{
		localRead:   zeroLocal.readSet(),
		localWrite:  localWrite,
		globalRead:  globalRead,
		globalWrite: sys.Global.writeSet(),
	}

	chunkSize := sys.ChunkSize
	if chunkSize <= 0 {
		chunkSize = reg.opts.DefaultChunkSize
	}
	ids := zeroLocal.ids()

	g, gctx := errgroup.WithContext(ctx)
	limit := reg.opts.MaxWorkers
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	var workerSeq int32

	for _, arch := range reg.matchingArchetypes(zeroLocal.valueSet()) {
		cols, ok := arch.project(ids)
		if !ok {
			continue
		}
		for _, rr := range arch.partitions(chunkSize) {
			arch, cols, rr := arch, cols, rr
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				workerID := int(atomic.AddInt32(&workerSeq, 1))
				acc := newAccessor(reg, perm)
				ptrs := make([]unsafe.Pointer, len(cols))
				for row := rr.Start; row < rr.End; row++ {
					for i, c := range cols {
						ptrs[i] = c.at(row)
					}
					locals := zeroLocal.bindRow(ptrs)
					e := arch.entityAt(row)
					acc.setPosition(arch.ID(), row)
					sys.Iter(e, locals, acc, reg.messages, workerID)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	reg.messages.Sync()
	return nil
}

// SendTL stages v on T's channel under workerID, visible after the next
// Sync (spec §4.8's send_tl).
func SendTL[T any](m *Messages, workerID int, v T) {
	newSenderTL[T](m, workerID).Send(v)
}
