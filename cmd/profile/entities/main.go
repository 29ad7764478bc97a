// Profiling:
// go build ./cmd/profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof
package main

import (
	"github.com/pkg/profile"
	"github.com/strataforge/strata"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		reg := strata.NewRegistry(strata.Options{})

		sys := strata.SerialSystem[
			strata.Pattern2[strata.Write[comp1], strata.Read[comp2]],
			strata.Pattern1[strata.Read[comp1]],
		]{
			Iter: func(
				e strata.Entity,
				locals strata.Pattern2[strata.Write[comp1], strata.Read[comp2]],
				acc *strata.Accessor,
				msgs *strata.Messages,
			) {
				c1 := locals.A.Value()
				c2 := locals.B.Value()
				c1.V += c2.V
				c1.W += c2.W
			},
		}

		for range iters {
			handles := make([]strata.Entity, 0, numEntities)
			for i := 0; i < numEntities; i++ {
				handles = append(handles, strata.Push2(reg, comp1{}, comp2{V: 1, W: 1}))
			}
			strata.Run(reg, sys)
			for _, h := range handles {
				reg.Remove(h)
			}
		}
	}
}
