package arrange

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seatgrid/grid"
)

// SolveParallel races opts.Workers fully independent Solve invocations,
// each on its own derived random stream, and returns the first valid
// layout. Workers share no mutable state, so the race changes nothing
// about single-run semantics — it only spends cores to cut wall time on
// hard instances.
//
// Contracts:
//   - Preconditions match Solve and are checked once, before any worker
//     starts.
//   - ctx cancellation is observed between runs, not inside one: a worker
//     finishes its current bounded run and then stops. The error is the
//     ctx error wrapped.
//   - The first success cancels the remaining workers; if every worker
//     fails, the error is ErrSearchExhausted.
//   - Stats aggregates attempts and runs across all workers; Duration is
//     wall time, not CPU time.
//
// Complexity: Solve's bounds per worker; memory O(Workers × (R×C + K)).
func SolveParallel(ctx context.Context, rows, cols int, counts grid.Counts, opts Options) (*grid.Layout, Stats, error) {
	start := time.Now()
	opts = opts.validate()

	var stats Stats
	if err := grid.ValidateRequest(rows, cols, counts); err != nil {
		stats.Duration = time.Since(start)
		return nil, stats, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	var (
		attempts atomic.Int64
		runs     atomic.Int64
		winner   atomic.Pointer[grid.Layout]
	)

	base := rngFromSeed(opts.Seed)
	streams := make([]int64, workers)
	for i := range streams {
		streams[i] = deriveSeed(base.Int63(), uint64(i))
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		rng := rngFromSeed(streams[w])
		g.Go(func() error {
			for run := 0; run < opts.MaxRetries; run++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				layout, n, ok := runSearch(rows, cols, counts, opts.AttemptLimit, deriveRNG(rng, uint64(run)))
				attempts.Add(int64(n))
				runs.Add(1)
				if ok {
					if winner.CompareAndSwap(nil, layout) {
						// First winner stops the rest via group context.
						return errFirstSuccess
					}
					return nil
				}
			}
			return nil
		})
	}

	err := g.Wait()
	stats.Attempts = int(attempts.Load())
	stats.Runs = int(runs.Load())
	stats.Duration = time.Since(start)

	if layout := winner.Load(); layout != nil {
		return layout, stats, nil
	}
	if err != nil && !errors.Is(err, errFirstSuccess) {
		return nil, stats, fmt.Errorf("arrange: parallel solve: %w", err)
	}
	return nil, stats, ErrSearchExhausted
}

// errFirstSuccess aborts the errgroup once a worker has published its
// layout. It never escapes SolveParallel.
var errFirstSuccess = errors.New("arrange: first success")
