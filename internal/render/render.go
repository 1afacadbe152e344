// Package render writes a seat.Grid for humans and spreadsheets: an
// aligned text table and CSV. JSON responses live in the server package.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/seatgrid/seat"
)

// Text writes an aligned table of seat identifiers, one grid row per
// line. Column width follows the widest identifier so mixed-length
// category names stay readable.
func Text(w io.Writer, sg *seat.Grid) error {
	width := 0
	for r := 0; r < sg.Rows(); r++ {
		for c := 0; c < sg.Cols(); c++ {
			if n := len(sg.At(r, c).ID); n > width {
				width = n
			}
		}
	}

	var b strings.Builder
	for r := 0; r < sg.Rows(); r++ {
		b.Reset()
		for c := 0; c < sg.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%-*s", width, sg.At(r, c).ID)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// CSV writes one record per grid row, cells as seat identifiers.
func CSV(w io.Writer, sg *seat.Grid) error {
	cw := csv.NewWriter(w)
	record := make([]string, sg.Cols())
	for r := 0; r < sg.Rows(); r++ {
		for c := 0; c < sg.Cols(); c++ {
			record[c] = sg.At(r, c).ID
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
