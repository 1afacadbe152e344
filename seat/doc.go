// Package seat turns a solved category layout into uniquely identified
// seats. It is the deterministic half of the repository: no randomness, no
// dependence on how the layout was produced.
//
// What:
//
//   - Assign walks a solved grid.Layout once in row-major order and gives
//     every cell an identifier "<CATEGORY>-NNN", where NNN is a 1-based
//     per-category counter zero-padded to three digits.
//   - The result is a Grid of {Category, ID} seats owned by the caller.
//
// Why:
//
//   - Rendering and export need stable, human-readable seat labels; two
//     assignments over the same layout must agree cell for cell so that a
//     regenerated view never silently relabels anyone.
//
// Determinism:
//
//   - The traversal order is fixed (top-to-bottom, left-to-right) and the
//     counters depend only on final cell categories, so identical layouts
//     always yield identical seat grids.
//
// Complexity:
//
//   - O(R×C) time, O(R×C) memory, single pass.
//
// Errors:
//
//   - ErrInvalidGrid for a nil layout or any unassigned cell. The solver
//     never hands such a layout over, so an occurrence is a programming
//     contract violation, not a user-facing condition.
package seat
