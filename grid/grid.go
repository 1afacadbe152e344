package grid

import (
	"fmt"
)

// neighborOffsets lists the four orthogonal directions: up, down, left,
// right. Diagonal cells do not share an edge and are never adjacent.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Layout is a rows×cols grid of categories stored row-major. A solver
// creates it empty, fills it cell by cell (unfilling on backtrack), and
// relinquishes it on success; from then on it is immutable by convention.
type Layout struct {
	rows, cols int
	cells      []Category
}

// NewLayout constructs an empty Layout with every cell Unassigned.
// Returns ErrBadDimensions unless both dimensions are positive.
// Complexity: O(R×C) for the backing slice.
func NewLayout(rows, cols int) (*Layout, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	return &Layout{
		rows:  rows,
		cols:  cols,
		cells: make([]Category, rows*cols),
	}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (l *Layout) Rows() int { return l.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (l *Layout) Cols() int { return l.cols }

// Len returns the total cell count rows×cols.
// Complexity: O(1).
func (l *Layout) Len() int { return len(l.cells) }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (l *Layout) InBounds(r, c int) bool {
	return r >= 0 && r < l.rows && c >= 0 && c < l.cols
}

// Index maps (r,c) to a row-major index: r*cols + c.
// Complexity: O(1).
func (l *Layout) Index(r, c int) int {
	return r*l.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (l *Layout) Coordinate(idx int) (r, c int) {
	return idx / l.cols, idx % l.cols
}

// At returns the category at (r,c). The cell must be in bounds.
// Complexity: O(1).
func (l *Layout) At(r, c int) Category {
	return l.cells[l.Index(r, c)]
}

// Set writes the category at (r,c). The cell must be in bounds. Intended
// for solvers during search and for tests building layouts by hand; a
// returned layout is not to be mutated.
// Complexity: O(1).
func (l *Layout) Set(r, c int, cat Category) {
	l.cells[l.Index(r, c)] = cat
}

// NeighborOffsets returns the four orthogonal direction offsets. Should be
// used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (l *Layout) NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// CountOf returns how many cells currently hold cat.
// Complexity: O(R×C).
func (l *Layout) CountOf(cat Category) int {
	n := 0
	for _, c := range l.cells {
		if c == cat {
			n++
		}
	}
	return n
}

// Tally returns the realized per-category cell counts. Unassigned cells are
// not tallied.
// Complexity: O(R×C).
func (l *Layout) Tally() Counts {
	out := make(Counts)
	for _, c := range l.cells {
		if c == Unassigned {
			continue
		}
		out[c]++
	}
	return out
}

// Clone returns an independent deep copy of the layout.
// Complexity: O(R×C).
func (l *Layout) Clone() *Layout {
	cells := make([]Category, len(l.cells))
	copy(cells, l.cells)
	return &Layout{rows: l.rows, cols: l.cols, cells: cells}
}

// Validate checks the full-grid invariant of a solved layout: every cell
// assigned, and no two edge-sharing cells holding the same category.
// Reported errors wrap ErrUnassignedCell or ErrAdjacentCategory with the
// offending coordinates.
// Complexity: O(R×C) over the four-neighbor sets.
func (l *Layout) Validate() error {
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			cat := l.At(r, c)
			if cat == Unassigned {
				return fmt.Errorf("%w at (%d,%d)", ErrUnassignedCell, r, c)
			}
			for _, d := range neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !l.InBounds(nr, nc) {
					continue
				}
				if l.At(nr, nc) == cat {
					return fmt.Errorf("%w: %q at (%d,%d) and (%d,%d)", ErrAdjacentCategory, cat, r, c, nr, nc)
				}
			}
		}
	}
	return nil
}
