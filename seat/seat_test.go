package seat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatgrid/arrange"
	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/seat"
)

// mustLayout builds a layout by hand from row-major category rows.
func mustLayout(t *testing.T, rows [][]grid.Category) *grid.Layout {
	t.Helper()
	l, err := grid.NewLayout(len(rows), len(rows[0]))
	require.NoError(t, err)
	for r, row := range rows {
		for c, cat := range row {
			l.Set(r, c, cat)
		}
	}
	return l
}

// TestAssign_TraversalOrder pins the exact identifier-to-cell mapping for
// a hand-built 2×2 layout: counters advance top-to-bottom, left-to-right.
func TestAssign_TraversalOrder(t *testing.T) {
	l := mustLayout(t, [][]grid.Category{
		{"A", "B"},
		{"B", "A"},
	})

	sg, err := seat.Assign(l)
	require.NoError(t, err)
	require.Equal(t, seat.Seat{Category: "A", ID: "A-001"}, sg.At(0, 0))
	require.Equal(t, seat.Seat{Category: "B", ID: "B-001"}, sg.At(0, 1))
	require.Equal(t, seat.Seat{Category: "B", ID: "B-002"}, sg.At(1, 0))
	require.Equal(t, seat.Seat{Category: "A", ID: "A-002"}, sg.At(1, 1))
}

// TestAssign_Deterministic runs the assignor twice over the same layout
// and requires identical grids.
func TestAssign_Deterministic(t *testing.T) {
	l := mustLayout(t, [][]grid.Category{
		{"CSE", "ECE", "CSE"},
		{"ECE", "CSE", "ECE"},
	})

	first, err := seat.Assign(l)
	require.NoError(t, err)
	second, err := seat.Assign(l)
	require.NoError(t, err)
	require.Equal(t, first.Seats(), second.Seats())
}

// TestAssign_UniqueAndContiguous checks the identifier invariants over a
// solver-produced layout: pairwise distinct IDs, and per category a
// contiguous 1-based counter sequence with no gaps.
func TestAssign_UniqueAndContiguous(t *testing.T) {
	counts := grid.Counts{"A": 12, "B": 12, "C": 12}
	l, _, err := arrange.Solve(6, 6, counts, arrange.Options{AttemptLimit: 5000, MaxRetries: 5, Seed: 21})
	require.NoError(t, err)

	sg, err := seat.Assign(l)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	last := make(map[grid.Category]int)
	for r := 0; r < sg.Rows(); r++ {
		for c := 0; c < sg.Cols(); c++ {
			s := sg.At(r, c)
			_, dup := seen[s.ID]
			require.False(t, dup, "duplicate id %s", s.ID)
			seen[s.ID] = struct{}{}

			want := last[s.Category] + 1
			require.Equal(t, fmt.Sprintf("%s-%03d", s.Category, want), s.ID)
			last[s.Category] = want
		}
	}
	for cat, n := range last {
		require.Equal(t, counts[cat], n, "category %s", cat)
	}
}

// TestAssign_NilLayout treats a nil layout as a contract violation.
func TestAssign_NilLayout(t *testing.T) {
	sg, err := seat.Assign(nil)
	require.ErrorIs(t, err, seat.ErrInvalidGrid)
	require.Nil(t, sg)
}

// TestAssign_UnassignedCell rejects a partially filled layout.
func TestAssign_UnassignedCell(t *testing.T) {
	l, err := grid.NewLayout(2, 2)
	require.NoError(t, err)
	l.Set(0, 0, "A")

	sg, err := seat.Assign(l)
	require.ErrorIs(t, err, seat.ErrInvalidGrid)
	require.Nil(t, sg)
}

// TestAssign_SeatsCopies makes sure Seats hands out fresh rows rather than
// aliases into the grid's backing storage.
func TestAssign_SeatsCopies(t *testing.T) {
	l := mustLayout(t, [][]grid.Category{{"A", "B"}})
	sg, err := seat.Assign(l)
	require.NoError(t, err)

	rows := sg.Seats()
	rows[0][0] = seat.Seat{Category: "X", ID: "X-001"}
	require.Equal(t, seat.Seat{Category: "A", ID: "A-001"}, sg.At(0, 0))
}
