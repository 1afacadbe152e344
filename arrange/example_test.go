package arrange_test

import (
	"fmt"

	"github.com/katalvlaran/seatgrid/arrange"
	"github.com/katalvlaran/seatgrid/grid"
)

// ExampleSolve arranges two branches on a single exam row. The concrete
// alternating order depends on the seed, so the example asserts the
// properties every solution shares: a valid adjacency invariant and exact
// per-category counts.
func ExampleSolve() {
	counts := grid.Counts{"CSE": 2, "ECE": 2}
	layout, stats, err := arrange.Solve(1, 4, counts, arrange.Options{
		AttemptLimit: 1000,
		MaxRetries:   3,
		Seed:         42,
	})
	if err != nil {
		fmt.Println("failed:", err)
		return
	}

	fmt.Println("valid:", layout.Validate() == nil)
	fmt.Println("CSE cells:", layout.CountOf("CSE"))
	fmt.Println("ECE cells:", layout.CountOf("ECE"))
	fmt.Println("runs:", stats.Runs)

	// Output:
	// valid: true
	// CSE cells: 2
	// ECE cells: 2
	// runs: 1
}

// ExampleSolve_countMismatch shows the cheap precondition rejection: the
// request totals five seats for a four-cell grid, so no search happens.
func ExampleSolve_countMismatch() {
	_, stats, err := arrange.Solve(2, 2, grid.Counts{"A": 3, "B": 2}, arrange.DefaultOptions())
	fmt.Println("error:", err)
	fmt.Println("attempts:", stats.Attempts)

	// Output:
	// error: grid: count total must equal rows*cols
	// attempts: 0
}
