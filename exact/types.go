package exact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/seatgrid/grid"
)

// ErrCanceled is returned when the context ends before the solver reaches
// a verdict. No partial layout is ever returned alongside it.
var ErrCanceled = errors.New("exact: cancelled before a verdict could be reached")

// Constraint describes one requirement applied to the formula, in terms a
// human can read back from an infeasibility report.
type Constraint interface {
	fmt.Stringer
}

// NotSatisfiable is an infeasibility proof: a set of applied constraints
// sufficient to make any layout impossible. Unlike arrange's exhaustion
// error, it is definitive.
type NotSatisfiable []Constraint

func (e NotSatisfiable) Error() string {
	const msg = "exact: constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", msg, strings.Join(s, ", "))
}

// oneCategoryPerCell requires cell (Row,Col) to hold exactly one of the
// requested categories.
type oneCategoryPerCell struct {
	Row, Col int
}

func (c oneCategoryPerCell) String() string {
	return fmt.Sprintf("cell (%d,%d) holds exactly one category", c.Row, c.Col)
}

// differentCategories requires the edge-sharing cells (RowA,ColA) and
// (RowB,ColB) to hold different categories.
type differentCategories struct {
	RowA, ColA int
	RowB, ColB int
}

func (c differentCategories) String() string {
	return fmt.Sprintf("adjacent cells (%d,%d) and (%d,%d) hold different categories", c.RowA, c.ColA, c.RowB, c.ColB)
}

// atMost bounds a category's cell count from above.
type atMost struct {
	Category grid.Category
	N        int
}

func (c atMost) String() string {
	return fmt.Sprintf("at most %d cells hold %s", c.N, c.Category)
}

// atLeast bounds a category's cell count from below.
type atLeast struct {
	Category grid.Category
	N        int
}

func (c atLeast) String() string {
	return fmt.Sprintf("at least %d cells hold %s", c.N, c.Category)
}
