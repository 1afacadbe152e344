// Package grid holds the shared grid model for seat arrangement: categories,
// per-category count requests, and the rectangular category layout that the
// solvers fill and the label assignor consumes.
//
// What:
//
//   - Category names a group whose members must never occupy two cells that
//     share a grid edge. Unassigned is the zero Category of an unfilled cell.
//   - Counts maps Category → requested number of cells (the count request).
//   - Layout is a rows×cols grid of categories stored row-major, with index
//     math, orthogonal-neighbor enumeration, and full-grid validation.
//   - ValidateRequest is the shared precondition gate used by every solver
//     backend: positive dimensions, non-negative counts, and an exact match
//     between the count total and the cell count.
//
// Why:
//
//   - Exam halls: students of the same branch must not sit side by side.
//   - Any adjacency-diversity placement: shelf planning, plot rotation,
//     lab benches — the model is plain grid-graph coloring with exact
//     per-color cardinalities.
//
// Adjacency is strictly orthogonal (up/down/left/right); diagonal cells are
// never considered adjacent.
//
// Complexity:
//
//   - Index/Coordinate/InBounds/At/Set: O(1).
//   - Validate: O(R×C) over the four-neighbor sets.
//   - ValidateRequest: O(K) in the number of categories.
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below one.
//   - ErrNegativeCount: a category requests a negative number of cells.
//   - ErrCountMismatch: count total differs from rows×cols.
//   - ErrUnassignedCell: Validate found an unfilled cell.
//   - ErrAdjacentCategory: Validate found equal categories on a shared edge.
package grid
