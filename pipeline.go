package strata

import (
	"context"
	"reflect"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// PipelineSystem is one stage of a fused multi-system run (spec §4.7): the
// same shape as ParallelSystem, but driven by RunPipeline rather than
// RunParallel so its partitions interleave with its pipeline siblings
// instead of running alone.
type PipelineSystem[L boundPattern[L], G pattern] struct {
	Global    G
	SendTypes []reflect.Type
	ChunkSize int
	Iter      func(e Entity, locals L, acc *Accessor, msgs *Messages, workerID int)
}

// pipelineStage is the type-erased surface RunPipeline needs from a
// PipelineSystem[L, G] instantiation: its access sets for cross-system
// aliasing validation, and a way to run one archetype partition.
type pipelineStage interface {
	localWriteSet() bitset
	globalReadSet() bitset
	sendTypesOf() []reflect.Type
	matchingArchetypes(reg *Registry) []*Archetype
	chunkSize(reg *Registry) int
	runPartition(reg *Registry, arch *Archetype, rr rowRange, workerID int)
}

type pipelineStageImpl[L boundPattern[L], G pattern] struct {
	sys PipelineSystem[L, G]
}

// Stage adapts a PipelineSystem[L, G] into the type-erased form RunPipeline
// accepts.
func Stage[L boundPattern[L], G pattern](sys PipelineSystem[L, G]) pipelineStage {
	return &pipelineStageImpl[L, G]{sys: sys}
}

func (p *pipelineStageImpl[L, G]) localWriteSet() bitset {
	var z L
	return z.writeSet()
}
func (p *pipelineStageImpl[L, G]) globalReadSet() bitset  { return p.sys.Global.readSet() }
func (p *pipelineStageImpl[L, G]) sendTypesOf() []reflect.Type { return p.sys.SendTypes }

func (p *pipelineStageImpl[L, G]) matchingArchetypes(reg *Registry) []*Archetype {
	var z L
	return reg.matchingArchetypes(z.valueSet())
}

func (p *pipelineStageImpl[L, G]) chunkSize(reg *Registry) int {
	if p.sys.ChunkSize > 0 {
		return p.sys.ChunkSize
	}
	return reg.opts.DefaultChunkSize
}

func (p *pipelineStageImpl[L, G]) runPartition(reg *Registry, arch *Archetype, rr rowRange, workerID int) {
	var zeroLocal L
	ids := zeroLocal.ids()
	cols, ok := arch.project(ids)
	if !ok {
		return
	}
	perm := AccessSet{
		localRead:   zeroLocal.readSet(),
		localWrite:  zeroLocal.writeSet(),
		globalRead:  p.sys.Global.readSet(),
		globalWrite: p.sys.Global.writeSet(),
	}
	acc := newAccessor(reg, perm)
	ptrs := make([]unsafe.Pointer, len(cols))
	for row := rr.Start; row < rr.End; row++ {
		for i, c := range cols {
			ptrs[i] = c.at(row)
		}
		locals := zeroLocal.bindRow(ptrs)
		e := arch.entityAt(row)
		acc.setPosition(arch.ID(), row)
		p.sys.Iter(e, locals, acc, reg.messages, workerID)
	}
}

// RunPipeline fuses N systems: for each archetype matching any stage's
// local pattern, the archetype is partitioned once per matching stage and
// every stage's partitions run concurrently (spec §4.7).
//
// Grounded on the teacher's batch_operations.go chunking, fused with the
// aliasing-across-systems validation the spec adds on top of RunParallel's
// single-system check.
func RunPipeline(ctx context.Context, reg *Registry, stages ...pipelineStage) error {
	for i := range stages {
		for j := range stages {
			if i == j {
				continue
			}
			if stages[i].localWriteSet().intersects(stages[j].localWriteSet()) {
				panicPipelineAliasing()
			}
			if stages[i].localWriteSet().intersects(stages[j].globalReadSet()) {
				panicPipelineAliasing()
			}
		}
		for _, t := range stages[i].sendTypesOf() {
			if !reg.messages.isRegistered(t) {
				panicUnregisteredMessage()
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	limit := reg.opts.MaxWorkers
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	var workerSeq int32

	for _, stage := range stages {
		stage := stage
		for _, arch := range stage.matchingArchetypes(reg) {
			arch := arch
			for _, rr := range arch.partitions(stage.chunkSize(reg)) {
				rr := rr
				g.Go(func() error {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					workerID := int(atomic.AddInt32(&workerSeq, 1))
					stage.runPartition(reg, arch, rr, workerID)
					return nil
				})
			}
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	reg.messages.Sync()
	return nil
}
