package arrange

import (
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/seatgrid/grid"
)

// Solve fills a rows×cols layout with the requested categories so that no
// two edge-sharing cells hold the same category. It performs up to
// opts.MaxRetries independent randomized backtracking runs, each bounded by
// opts.AttemptLimit cell visits, and returns the first valid layout.
//
// Contracts:
//   - Preconditions are checked before any search work: positive dimensions
//     (grid.ErrBadDimensions), non-negative counts (grid.ErrNegativeCount),
//     and an exact total (grid.ErrCountMismatch) — the latter with
//     Stats.Attempts == 0 by contract.
//   - On success the layout realizes counts exactly and satisfies the
//     adjacency invariant; ownership passes to the caller.
//   - ErrSearchExhausted reports only that no layout was found within the
//     budget, never that none exists.
//
// Complexity: worst case O(AttemptLimit × MaxRetries) cell visits, each
// with O(K log K) candidate ordering. Memory: O(R×C + K).
func Solve(rows, cols int, counts grid.Counts, opts Options) (*grid.Layout, Stats, error) {
	start := time.Now()
	opts = opts.validate()

	var stats Stats
	if err := grid.ValidateRequest(rows, cols, counts); err != nil {
		stats.Duration = time.Since(start)
		return nil, stats, err
	}

	base := rngFromSeed(opts.Seed)
	for run := 0; run < opts.MaxRetries; run++ {
		// Each run starts from scratch: fresh layout, fresh remaining
		// counts, fresh derived stream. Partial state from a failed run is
		// never resumed.
		layout, attempts, ok := runSearch(rows, cols, counts, opts.AttemptLimit, deriveRNG(base, uint64(run)))
		stats.Attempts += attempts
		stats.Runs++
		if ok {
			stats.Duration = time.Since(start)
			return layout, stats, nil
		}
	}

	stats.Duration = time.Since(start)
	return nil, stats, ErrSearchExhausted
}

// search carries the mutable state of one backtracking run: the in-place
// layout, the remaining-count map, and the attempt counter against its
// limit. Placement and un-placement are paired symmetrically around each
// recursive call.
type search struct {
	layout    *grid.Layout
	left      grid.Counts
	cats      []grid.Category
	rng       *rand.Rand
	limit     int
	attempts  int
	exhausted bool
}

// runSearch executes one independent run. The returned attempt count is
// consumed budget regardless of outcome.
func runSearch(rows, cols int, counts grid.Counts, limit int, rng *rand.Rand) (*grid.Layout, int, bool) {
	layout, err := grid.NewLayout(rows, cols)
	if err != nil {
		// Dimensions were validated by Solve; reaching here is a bug.
		return nil, 0, false
	}

	s := &search{
		layout: layout,
		left:   counts.Clone(),
		cats:   counts.Categories(),
		rng:    rng,
		limit:  limit,
	}

	// Shuffle a token pool holding one entry per requested cell. The pool
	// is discarded immediately: cells are always visited row-major. The
	// shuffle only advances this run's random stream so that retries and
	// regenerate requests walk different branches.
	s.shuffleTokenPool(counts)

	if !s.place(0) {
		return nil, s.attempts, false
	}
	return layout, s.attempts, true
}

// shuffleTokenPool builds and Fisher–Yates-shuffles the per-cell token
// pool. Only the stream advancement matters; see runSearch.
func (s *search) shuffleTokenPool(counts grid.Counts) {
	pool := make([]grid.Category, 0, counts.Total())
	for _, cat := range s.cats {
		for i := 0; i < counts[cat]; i++ {
			pool = append(pool, cat)
		}
	}
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
}

// place assigns cells from row-major index idx onward. It returns true
// when the remaining grid was completed, false on a dead end or once the
// attempt budget is exhausted (s.exhausted short-circuits the unwind).
func (s *search) place(idx int) bool {
	s.attempts++
	if s.attempts > s.limit {
		s.exhausted = true
		return false
	}
	if idx == s.layout.Len() {
		return true
	}

	r, c := s.layout.Coordinate(idx)
	for _, cat := range s.candidates() {
		if !s.legal(r, c, cat) {
			continue
		}
		s.layout.Set(r, c, cat)
		s.left[cat]--
		if s.place(idx + 1) {
			return true
		}
		s.left[cat]++
		s.layout.Set(r, c, grid.Unassigned)
		if s.exhausted {
			return false
		}
	}
	return false
}

// candidates returns the categories with remaining demand, ordered by
// descending remaining count — a greedy heuristic that defers scarce
// categories and so reduces late dead-ends. With probability 0.30 the
// order is replaced by a full random shuffle to diversify search paths
// across retries. A fresh slice is allocated per call; recursion below a
// placement must not disturb the order still being iterated above it.
func (s *search) candidates() []grid.Category {
	out := make([]grid.Category, 0, len(s.cats))
	for _, cat := range s.cats {
		if s.left[cat] > 0 {
			out = append(out, cat)
		}
	}
	// Stable on the sorted base list, so equal remaining counts keep a
	// deterministic relative order under a fixed seed.
	sort.SliceStable(out, func(i, j int) bool { return s.left[out[i]] > s.left[out[j]] })
	if s.rng.Float64() < shuffleProbability {
		s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

// legal reports whether cat may occupy (r,c): no in-bounds orthogonal
// neighbor already holds it. Unassigned neighbors never conflict.
func (s *search) legal(r, c int, cat grid.Category) bool {
	for _, d := range s.layout.NeighborOffsets() {
		nr, nc := r+d[0], c+d[1]
		if !s.layout.InBounds(nr, nc) {
			continue
		}
		if s.layout.At(nr, nc) == cat {
			return false
		}
	}
	return true
}
