package world

import (
	"context"
	"sync"

	"github.com/san-kum/kinetic/internal/engine"
)

// Ensemble runs independent copies of a scene in parallel. Worlds carry
// mutable body state, so each run builds its own from the factory; the
// seed passed in is unique per run.
type Ensemble struct {
	build     func(seed int64) *World
	numRuns   int
	seedStart int64
}

func NewEnsemble(build func(seed int64) *World, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*engine.Result, error) {
	results := make([]*engine.Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			w := e.build(e.seedStart + int64(idx))
			results[idx], errs[idx] = w.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
