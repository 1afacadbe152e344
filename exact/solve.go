package exact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"

	"github.com/katalvlaran/seatgrid/grid"
)

// gini verdicts.
const (
	satisfiable   = 1
	unsatisfiable = -1
)

// pollInterval is how often the solver goroutine is probed for a verdict
// while also watching the context.
const pollInterval = 50 * time.Millisecond

// Arrange decides the instance exactly. It returns a valid layout, a
// NotSatisfiable proof that none exists, or ErrCanceled if ctx ends before
// the solver finishes. Preconditions match the arrange package: the shared
// grid.ValidateRequest gate runs before any encoding work.
//
// Complexity: encoding O(R×C×K²); solving NP-complete in general.
func Arrange(ctx context.Context, rows, cols int, counts grid.Counts) (*grid.Layout, error) {
	if err := grid.ValidateRequest(rows, cols, counts); err != nil {
		return nil, err
	}

	f := compile(rows, cols, counts)
	g := gini.New()
	f.c.ToCnf(g)
	for m := range f.anchors {
		g.Assume(m)
	}

	switch waitForVerdict(ctx, g.GoSolve()) {
	case satisfiable:
		layout, err := f.decode(g)
		if err != nil {
			return nil, err
		}
		if err := layout.Validate(); err != nil {
			// The encoding and the grid invariant disagree; a bug,
			// never a user condition.
			return nil, fmt.Errorf("exact: model decode: %w", err)
		}
		return layout, nil
	case unsatisfiable:
		return nil, NotSatisfiable(f.conflicts(g))
	}

	return nil, ErrCanceled
}

// Feasible reports whether any valid layout exists for the instance.
// The error is non-nil only for precondition violations or cancellation;
// infeasibility is the (false, nil) answer, not an error.
func Feasible(ctx context.Context, rows, cols int, counts grid.Counts) (bool, error) {
	_, err := Arrange(ctx, rows, cols, counts)
	if err == nil {
		return true, nil
	}
	var ns NotSatisfiable
	if errors.As(err, &ns) {
		return false, nil
	}
	return false, err
}

// waitForVerdict drives an asynchronous gini solve, polling for a result
// while watching the context. A context cut-off stops the solver and
// yields whatever verdict it had reached, usually the unknown zero.
func waitForVerdict(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(pollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}
