// Package exact decides seat-arrangement feasibility with a SAT solver.
// It is the completeness oracle of the repository: where the arrange
// package may only say "no layout found within the budget", this package
// answers "here is a layout" or "no layout exists", with a proof.
//
// What:
//
//   - Arrange encodes an instance as a boolean formula — one variable per
//     (cell, category) pair, exactly-one-category clauses per cell,
//     difference clauses per grid edge, and a sorting-network cardinality
//     bound per category — and hands it to the gini solver.
//   - On SAT the model is decoded into a grid.Layout and revalidated.
//   - On UNSAT the failed assumptions are mapped back to the constraints
//     they encode and returned as a NotSatisfiable error, so the caller can
//     see which requirements collided.
//   - Feasible is the boolean convenience wrapper.
//
// Why:
//
//   - The randomized engine deliberately trades completeness for a strict
//     attempt budget (its failures are not proofs). When a caller needs to
//     distinguish "could not find" from "cannot exist" — before blaming the
//     budget — this backend settles the question exactly.
//
// Cancellation:
//
//   - Arrange polls the solver and honors ctx; a run cut short returns
//     ErrCanceled, never a partial layout.
//
// Complexity:
//
//   - The encoding is O(R×C×K) variables and O(R×C×K²) clauses; solving is
//     NP-complete in general, but seating-sized instances decide in
//     milliseconds.
//
// Errors:
//
//   - grid.ErrBadDimensions, grid.ErrNegativeCount, grid.ErrCountMismatch:
//     shared precondition gate, identical to the arrange package.
//   - NotSatisfiable: a real infeasibility proof listing applied constraints.
//   - ErrCanceled: the context ended before the solver finished.
package exact
