// Package arrange fills a rectangular grid with categories so that no two
// edge-sharing cells hold the same category, given only per-category cell
// counts. It is the randomized engine of the repository: a bounded
// depth-first backtracking search with independent restarts.
//
// What:
//
//   - Solve runs up to MaxRetries independent randomized searches, each
//     bounded by AttemptLimit placement attempts, and returns the first
//     layout that satisfies the adjacency invariant with exact counts.
//   - SolveParallel races several fully independent solver invocations on
//     derived random streams and returns the first winner.
//   - Stats reports attempts, runs, and wall time alongside every outcome.
//
// Why:
//
//   - Exam seating: students of one branch must never sit side by side.
//   - The problem is grid-graph coloring with exact per-color cardinalities;
//     general instances are hard, so the engine trades completeness for a
//     strict attempt budget. A failure means "no arrangement found within
//     the budget", never "no arrangement exists" — the exact package is the
//     oracle for the latter.
//
// Algorithm (one run):
//
//  1. Shuffle a token pool holding one token per requested cell. The pool is
//     not a placement order — cells are always visited row-major — it
//     advances the run's random stream so retries explore different
//     branches.
//  2. Walk cells row-major. At each cell, candidates are the categories with
//     remaining demand, ordered by descending remaining count; with
//     probability 0.30 the order is replaced by a full random shuffle.
//  3. A candidate is legal when no in-bounds orthogonal neighbor already
//     holds it. Place, recurse, and unplace symmetrically on failure.
//  4. Every cell visit consumes one attempt; exceeding AttemptLimit aborts
//     the run. A failed run discards all partial state before the next one.
//
// Determinism:
//
//   - Options.Seed == 0 draws time entropy, so repeated calls explore fresh
//     trajectories (the "regenerate" behavior callers expect).
//   - A fixed non-zero Seed makes Solve fully reproducible; SolveParallel is
//     reproducible per worker stream. Randomness is a diversity aid, not a
//     correctness dependency.
//
// Complexity:
//
//   - Worst case O(AttemptLimit × MaxRetries) cell visits with O(K log K)
//     candidate ordering per visit; memory O(R×C + K).
//
// Errors:
//
//   - grid.ErrBadDimensions, grid.ErrNegativeCount, grid.ErrCountMismatch:
//     rejected before any search work.
//   - ErrSearchExhausted: every retry consumed its budget without success.
package arrange
