// Profiling:
// go build ./cmd/profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof
package main

import (
	"context"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/strataforge/strata"
)

type comp1 struct{ V, W int64 }
type comp2 struct{ V, W int64 }
type comp3 struct{ V, W int64 }
type comp4 struct{ V, W int64 }
type comp5 struct{ V, W int64 }
type comp6 struct{ V, W int64 }

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	type locals = strata.Pattern6[
		strata.Write[comp1], strata.Read[comp2], strata.Read[comp3],
		strata.Read[comp4], strata.Read[comp5], strata.Read[comp6],
	]

	sys := strata.ParallelSystem[locals, strata.Pattern1[strata.Read[comp1]]]{
		ChunkSize: 4096,
		Iter: func(e strata.Entity, l locals, acc *strata.Accessor, msgs *strata.Messages, workerID int) {
			c1 := l.A.Value()
			c2 := l.B.Value()
			c1.V += c2.V
			c1.W += c2.W
		},
	}

	for range rounds {
		reg := strata.NewRegistry(strata.Options{})
		for i := 0; i < numEntities; i++ {
			strata.Push6(reg, comp1{}, comp2{V: 1, W: 1}, comp3{}, comp4{}, comp5{}, comp6{})
		}
		for range iters {
			_ = strata.RunParallel(context.Background(), reg, sys)
		}
	}
}
