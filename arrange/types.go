package arrange

import (
	"errors"
	"time"
)

// ErrSearchExhausted is returned when every retry consumed its attempt
// budget without producing a valid layout. It is a bounded-search failure,
// not an infeasibility proof; see the exact package for the latter.
var ErrSearchExhausted = errors.New("arrange: search exhausted without a valid layout")

// Default search knobs. The defaults are generous enough that feasible
// classroom-sized instances practically always succeed on the first run.
const (
	// DefaultAttemptLimit bounds cell-placement attempts within one run.
	DefaultAttemptLimit = 25000
	// DefaultMaxRetries is the number of independent runs per Solve call.
	DefaultMaxRetries = 5
	// shuffleProbability is the per-cell chance of replacing the greedy
	// candidate order with a full random shuffle.
	shuffleProbability = 0.30
)

// Options tunes one Solve invocation. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// AttemptLimit bounds the total number of cell visits within a single
	// run. Must be positive.
	AttemptLimit int

	// MaxRetries is the number of independent runs, each starting from a
	// fresh empty layout and a fresh random stream. Must be positive.
	MaxRetries int

	// Seed selects the random stream. Zero draws time entropy so repeated
	// calls explore fresh trajectories; any other value makes the search
	// fully reproducible.
	Seed int64

	// Workers is the number of racing invocations in SolveParallel.
	// Zero or negative means runtime.GOMAXPROCS(0), capped at MaxWorkers.
	// Solve ignores it.
	Workers int
}

// MaxWorkers caps SolveParallel fan-out; racing more independent searches
// than cores buys nothing for a CPU-bound workload.
const MaxWorkers = 16

// DefaultOptions returns the recommended search configuration:
// 25000 attempts per run, 5 runs, time-seeded randomness.
func DefaultOptions() Options {
	return Options{
		AttemptLimit: DefaultAttemptLimit,
		MaxRetries:   DefaultMaxRetries,
		Seed:         0,
	}
}

// validate normalizes non-positive knobs back to their defaults so a
// partially filled Options cannot disable the termination bound.
func (o Options) validate() Options {
	if o.AttemptLimit < 1 {
		o.AttemptLimit = DefaultAttemptLimit
	}
	if o.MaxRetries < 1 {
		o.MaxRetries = DefaultMaxRetries
	}
	return o
}

// Stats reports the work performed by one Solve or SolveParallel call.
// It accompanies failures as well as successes.
type Stats struct {
	// Attempts is the total number of cell visits across all runs.
	Attempts int

	// Runs is the number of independent searches started.
	Runs int

	// Duration is the wall time of the whole invocation.
	Duration time.Duration
}
