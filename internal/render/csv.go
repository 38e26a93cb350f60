package render

import (
	"encoding/csv"
	"io"

	"github.com/san-kum/slopefield/internal/euler"
)

// CSV writes the step records with header x,y,y',Δy. Cells keep the same
// space padding as the table so both renderings show identical text.
func CSV(w io.Writer, steps []euler.Step, precision int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "y'", "Δy"}); err != nil {
		return err
	}
	for _, r := range makeRows(steps, precision) {
		if err := cw.Write([]string{r.x, r.y, r.yp, r.dy}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVSegments writes one line segment per consecutive record pair with
// header x0,y0,x1,y1, for plotting the approximation as a polyline.
func CSVSegments(w io.Writer, steps []euler.Step, precision int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x0", "y0", "x1", "y1"}); err != nil {
		return err
	}
	for i := 0; i+1 < len(steps); i++ {
		rec := []string{
			fixed(steps[i].X, precision),
			fixed(steps[i].Y, precision),
			fixed(steps[i+1].X, precision),
			fixed(steps[i+1].Y, precision),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
