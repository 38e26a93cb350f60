package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/slopefield/internal/euler"
)

// Table writes the step records as a right-aligned table with columns
// n, x, y, y', Δy. Column widths grow to the widest cell.
func Table(w io.Writer, steps []euler.Step, precision int) error {
	rows := makeRows(steps, precision)

	nc, xc, yc, ypc, dyc := "n ", "x ", "y ", "y' ", "Δy "
	xw, yw, ypw, dyw := len(xc), len(yc), len(ypc), len(dyc)
	for _, r := range rows {
		xw = max(xw, len(r.x))
		yw = max(yw, len(r.y))
		ypw = max(ypw, len(r.yp))
		dyw = max(dyw, len(r.dy))
	}
	nw := max(len(nc), len(strconv.Itoa(len(rows))))

	if _, err := fmt.Fprintf(w, "%*s|%*s|%*s|%*s|%*s\n", nw, nc, xw, xc, yw, yc, ypw, ypc, dyw, dyc); err != nil {
		return err
	}
	for n, r := range rows {
		if _, err := fmt.Fprintf(w, "%*d|%*s|%*s|%*s|%*s\n", nw, n, xw, r.x, yw, r.y, ypw, r.yp, dyw, r.dy); err != nil {
			return err
		}
	}
	return nil
}
