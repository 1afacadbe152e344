package seat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seatgrid/grid"
)

// ErrInvalidGrid is returned for a nil layout or a layout with unassigned
// cells. It signals a broken caller contract, not a solvable condition.
var ErrInvalidGrid = errors.New("seat: layout is nil or not fully assigned")

// idWidth is the zero-padding width of the per-category counter. Counters
// past 999 widen naturally; uniqueness and ordering are unaffected.
const idWidth = 3

// Seat is one labeled cell: its category and the unique identifier
// "<CATEGORY>-NNN" encoding the 1-based per-category counter.
type Seat struct {
	Category grid.Category `json:"category"`
	ID       string        `json:"id"`
}

// Grid is the final rows×cols matrix of seats handed to the caller.
// It is never mutated after Assign returns it.
type Grid struct {
	rows, cols int
	seats      []Seat
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the seat at (r,c). The cell must be in bounds.
func (g *Grid) At(r, c int) Seat {
	return g.seats[r*g.cols+c]
}

// Seats returns the seats row by row, outer slice per row. The rows alias
// fresh backing storage, so callers may reorder them freely.
// Complexity: O(R×C).
func (g *Grid) Seats() [][]Seat {
	out := make([][]Seat, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]Seat, g.cols)
		copy(row, g.seats[r*g.cols:(r+1)*g.cols])
		out[r] = row
	}
	return out
}

// Assign labels every cell of a solved layout with a sequential
// per-category identifier, visiting cells top-to-bottom, left-to-right.
// Two invocations over the same layout produce identical grids.
//
// Contracts:
//   - l must be non-nil with every cell assigned; otherwise ErrInvalidGrid.
//   - Within the result all identifiers are pairwise distinct and each
//     category's counters form a contiguous 1-based sequence.
//
// Complexity: O(R×C) time and memory.
func Assign(l *grid.Layout) (*Grid, error) {
	if l == nil {
		return nil, ErrInvalidGrid
	}

	out := &Grid{
		rows:  l.Rows(),
		cols:  l.Cols(),
		seats: make([]Seat, l.Len()),
	}
	counters := make(map[grid.Category]int)
	for r := 0; r < l.Rows(); r++ {
		for c := 0; c < l.Cols(); c++ {
			cat := l.At(r, c)
			if cat == grid.Unassigned {
				return nil, fmt.Errorf("%w: cell (%d,%d)", ErrInvalidGrid, r, c)
			}
			counters[cat]++
			out.seats[l.Index(r, c)] = Seat{
				Category: cat,
				ID:       fmt.Sprintf("%s-%0*d", cat, idWidth, counters[cat]),
			}
		}
	}
	return out, nil
}
