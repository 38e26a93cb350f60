// Package render turns step records and field segments into the output
// formats: aligned table, LaTeX longtable, CSV, CSV segments, and TikZ.
// Renderers are stateless and write to an io.Writer; they never compute.
package render

import (
	"strconv"

	"github.com/san-kum/slopefield/internal/euler"
)

// cell formats a value as fixed-point at the run precision, padded with a
// space on both sides. The padding is part of the table and CSV output
// contract.
func cell(v float64, precision int) string {
	return " " + strconv.FormatFloat(v, 'f', precision, 64) + " "
}

// fixed formats a value as bare fixed-point at the run precision.
func fixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

type row struct {
	x, y, yp, dy string
}

func makeRows(steps []euler.Step, precision int) []row {
	rows := make([]row, len(steps))
	for i, s := range steps {
		rows[i] = row{
			x:  cell(s.X, precision),
			y:  cell(s.Y, precision),
			yp: cell(s.YP, precision),
			dy: cell(s.DY, precision),
		}
	}
	return rows
}
