package exact

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/seatgrid/grid"
)

// formula holds the compiled boolean encoding of one instance and the
// translation tables between circuit literals and the domain: one literal
// per (cell, category) pair, and one activation literal per applied
// constraint so that failed assumptions map back to readable requirements.
type formula struct {
	rows, cols int
	cats       []grid.Category
	lits       [][]z.Lit
	c          *logic.C
	anchors    map[z.Lit]Constraint
}

// compile builds the circuit for a validated request. Zero-count
// categories receive no literals; they can never occupy a cell.
//
// Encoding, per the package doc:
//   - exactly-one: per cell, an or over its literals plus pairwise
//     exclusions, collected under one activation literal;
//   - difference: per grid edge (right and down neighbors only, so each
//     edge is encoded once) and per category, both endpoints must not share
//     the literal;
//   - cardinality: per category, a sorting network over its cell literals
//     with Leq(count) and Geq(count) assumptions.
func compile(rows, cols int, counts grid.Counts) *formula {
	cats := make([]grid.Category, 0, len(counts))
	for _, cat := range counts.Categories() {
		if counts[cat] > 0 {
			cats = append(cats, cat)
		}
	}

	cells := rows * cols
	f := &formula{
		rows:    rows,
		cols:    cols,
		cats:    cats,
		lits:    make([][]z.Lit, cells),
		c:       logic.NewCCap(cells * len(cats)),
		anchors: make(map[z.Lit]Constraint),
	}

	for idx := 0; idx < cells; idx++ {
		f.lits[idx] = make([]z.Lit, len(cats))
		for k := range cats {
			f.lits[idx][k] = f.c.Lit()
		}
	}

	var buf []z.Lit
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			buf = buf[:0]
			buf = append(buf, f.c.Ors(f.lits[idx]...))
			for i := 0; i < len(cats); i++ {
				for j := i + 1; j < len(cats); j++ {
					buf = append(buf, f.c.Ors(f.lits[idx][i].Not(), f.lits[idx][j].Not()))
				}
			}
			f.anchors[f.c.Ands(buf...)] = oneCategoryPerCell{Row: r, Col: c}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if c+1 < cols {
				f.anchorEdge(idx, idx+1, r, c, r, c+1)
			}
			if r+1 < rows {
				f.anchorEdge(idx, idx+cols, r, c, r+1, c)
			}
		}
	}

	for k, cat := range cats {
		ms := make([]z.Lit, cells)
		for idx := 0; idx < cells; idx++ {
			ms[idx] = f.lits[idx][k]
		}
		cs := f.c.CardSort(ms)
		f.anchors[cs.Leq(counts[cat])] = atMost{Category: cat, N: counts[cat]}
		f.anchors[cs.Geq(counts[cat])] = atLeast{Category: cat, N: counts[cat]}
	}

	return f
}

// anchorEdge adds the per-category difference clauses for one grid edge
// under a single activation literal.
func (f *formula) anchorEdge(u, w, ra, ca, rb, cb int) {
	buf := make([]z.Lit, len(f.cats))
	for k := range f.cats {
		buf[k] = f.c.Ors(f.lits[u][k].Not(), f.lits[w][k].Not())
	}
	f.anchors[f.c.Ands(buf...)] = differentCategories{RowA: ra, ColA: ca, RowB: rb, ColB: cb}
}

// decode reads the model back into a layout. Under the exactly-one
// constraints a single literal per cell is true; the caller revalidates
// the decoded layout against the grid invariant.
func (f *formula) decode(g *gini.Gini) (*grid.Layout, error) {
	layout, err := grid.NewLayout(f.rows, f.cols)
	if err != nil {
		return nil, err
	}
	for idx := range f.lits {
		r, c := idx/f.cols, idx%f.cols
		for k, m := range f.lits[idx] {
			if g.Value(m) {
				layout.Set(r, c, f.cats[k])
				break
			}
		}
	}
	return layout, nil
}

// conflicts maps the solver's failed assumptions back to the constraints
// they activate. NotSatisfiable is a set; report order is unspecified.
func (f *formula) conflicts(g *gini.Gini) []Constraint {
	whys := g.Why(nil)
	out := make([]Constraint, 0, len(whys))
	for _, why := range whys {
		if c, ok := f.anchors[why]; ok {
			out = append(out, c)
		}
	}
	return out
}
