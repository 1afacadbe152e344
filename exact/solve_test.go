package exact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatgrid/exact"
	"github.com/katalvlaran/seatgrid/grid"
)

// requireSolved asserts the adjacency invariant and exact count fidelity
// for a SAT-produced layout.
func requireSolved(t *testing.T, layout *grid.Layout, counts grid.Counts) {
	t.Helper()
	require.NotNil(t, layout)
	require.NoError(t, layout.Validate())
	tally := layout.Tally()
	for cat, n := range counts {
		if n == 0 {
			require.NotContains(t, tally, cat)
			continue
		}
		require.Equal(t, n, tally[cat], "category %s", cat)
	}
}

// TestArrange_CountMismatch shares the precondition gate with arrange.
func TestArrange_CountMismatch(t *testing.T) {
	layout, err := exact.Arrange(context.Background(), 2, 2, grid.Counts{"A": 3, "B": 2})
	require.ErrorIs(t, err, grid.ErrCountMismatch)
	require.Nil(t, layout)
}

// TestArrange_BadDimensions rejects before any encoding work.
func TestArrange_BadDimensions(t *testing.T) {
	_, err := exact.Arrange(context.Background(), 0, 4, grid.Counts{})
	require.ErrorIs(t, err, grid.ErrBadDimensions)
}

// TestArrange_Alternating solves the 1×4 {A:2,B:2} instance; the only
// valid layouts alternate the two categories.
func TestArrange_Alternating(t *testing.T) {
	counts := grid.Counts{"A": 2, "B": 2}
	layout, err := exact.Arrange(context.Background(), 1, 4, counts)
	require.NoError(t, err)
	requireSolved(t, layout, counts)
}

// TestArrange_ProvesInfeasible is the case the randomized engine cannot
// settle: 2×2 {A:3,B:1} sums correctly but three A cells must share an
// edge somewhere. The SAT backend returns a NotSatisfiable proof.
func TestArrange_ProvesInfeasible(t *testing.T) {
	layout, err := exact.Arrange(context.Background(), 2, 2, grid.Counts{"A": 3, "B": 1})
	require.Nil(t, layout)

	var ns exact.NotSatisfiable
	require.ErrorAs(t, err, &ns)
	require.Contains(t, err.Error(), "not satisfiable")
}

// TestArrange_SingleCategorySingleCell is feasible only because a lone
// cell has no neighbors.
func TestArrange_SingleCategorySingleCell(t *testing.T) {
	counts := grid.Counts{"A": 1}
	layout, err := exact.Arrange(context.Background(), 1, 1, counts)
	require.NoError(t, err)
	requireSolved(t, layout, counts)
}

// TestArrange_SingleCategoryInfeasible proves what arrange can only
// suspect: one category cannot fill any grid with an edge.
func TestArrange_SingleCategoryInfeasible(t *testing.T) {
	var ns exact.NotSatisfiable
	_, err := exact.Arrange(context.Background(), 1, 2, grid.Counts{"A": 2})
	require.ErrorAs(t, err, &ns)
}

// TestArrange_ZeroCountExcluded keeps zero-count categories out of the
// encoding entirely.
func TestArrange_ZeroCountExcluded(t *testing.T) {
	counts := grid.Counts{"A": 2, "B": 2, "GHOST": 0}
	layout, err := exact.Arrange(context.Background(), 2, 2, counts)
	require.NoError(t, err)
	requireSolved(t, layout, counts)
	require.Zero(t, layout.CountOf("GHOST"))
}

// TestArrange_Checkerboard solves a larger exact-cardinality instance.
func TestArrange_Checkerboard(t *testing.T) {
	counts := grid.Counts{"A": 13, "B": 12}
	layout, err := exact.Arrange(context.Background(), 5, 5, counts)
	require.NoError(t, err)
	requireSolved(t, layout, counts)
}

// TestFeasible distinguishes the three verdict shapes: feasible,
// infeasible-with-proof, and precondition violation.
func TestFeasible(t *testing.T) {
	ok, err := exact.Feasible(context.Background(), 1, 4, grid.Counts{"A": 2, "B": 2})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = exact.Feasible(context.Background(), 2, 2, grid.Counts{"A": 3, "B": 1})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = exact.Feasible(context.Background(), 2, 2, grid.Counts{"A": 1})
	require.ErrorIs(t, err, grid.ErrCountMismatch)
}

// TestArrange_Canceled returns ErrCanceled for a context that ends before
// the solver can report, and never a partial layout.
func TestArrange_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	layout, err := exact.Arrange(ctx, 8, 8, grid.Counts{"A": 22, "B": 21, "C": 21})
	if err == nil {
		// The solver may win the race against an already-canceled
		// context; a full valid layout is the only acceptable outcome
		// in that case.
		require.NoError(t, layout.Validate())
		return
	}
	require.ErrorIs(t, err, exact.ErrCanceled)
	require.Nil(t, layout)
}
