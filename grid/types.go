// Package grid defines core types and sentinel errors for the seat
// arrangement model shared by the arrange, exact, and seat packages.
package grid

import (
	"errors"
	"sort"
)

// Sentinel errors for grid construction and request validation.
var (
	// ErrBadDimensions indicates rows or cols below one.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")
	// ErrNegativeCount indicates a category with a negative requested count.
	ErrNegativeCount = errors.New("grid: category count must be non-negative")
	// ErrCountMismatch indicates the count total differs from rows×cols.
	ErrCountMismatch = errors.New("grid: count total must equal rows*cols")
	// ErrUnassignedCell indicates a layout cell still holds Unassigned.
	ErrUnassignedCell = errors.New("grid: unassigned cell")
	// ErrAdjacentCategory indicates two edge-sharing cells hold the same category.
	ErrAdjacentCategory = errors.New("grid: equal categories on adjacent cells")
)

// Category names a group whose members must not occupy edge-sharing cells.
// The empty string is reserved for Unassigned.
type Category string

// Unassigned is the value of a layout cell before a solver fills it.
// It never appears in a solved layout.
const Unassigned Category = ""

// Counts is a count request: how many cells each category must receive.
// Categories with a zero count are legal and are simply never placed.
type Counts map[Category]int

// Total returns the sum of all requested counts.
// Complexity: O(K).
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Categories returns all category names in ascending lexical order.
// Map iteration order is unspecified in Go; every deterministic traversal
// of a request goes through this slice.
// Complexity: O(K log K).
func (c Counts) Categories() []Category {
	out := make([]Category, 0, len(c))
	for cat := range c {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of the request.
// Complexity: O(K).
func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	for cat, n := range c {
		out[cat] = n
	}
	return out
}

// Validate reports ErrNegativeCount if any category requests a negative
// number of cells.
// Complexity: O(K).
func (c Counts) Validate() error {
	for _, n := range c {
		if n < 0 {
			return ErrNegativeCount
		}
	}
	return nil
}

// ValidateRequest is the shared precondition gate for every solver backend:
// positive dimensions, non-negative counts, and an exact match between the
// count total and rows×cols. It performs no search work; a mismatch is
// rejected before any placement attempt.
// Complexity: O(K).
func ValidateRequest(rows, cols int, counts Counts) error {
	if rows < 1 || cols < 1 {
		return ErrBadDimensions
	}
	if err := counts.Validate(); err != nil {
		return err
	}
	if counts.Total() != rows*cols {
		return ErrCountMismatch
	}
	return nil
}
