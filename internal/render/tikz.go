package render

import (
	"fmt"
	"io"

	"github.com/san-kum/slopefield/internal/field"
)

// TikZ writes a direction field as a tikzpicture block: two axis arrows,
// one thin blue line per field segment, and a red plot path for the
// overlay curve when points are given. Coordinates are fixed-point at the
// run precision.
func TikZ(w io.Writer, p field.Projection, d field.Domain, segs []field.Segment, curve []field.Point, precision int) error {
	if _, err := io.WriteString(w,
		"\\begin{center}\n"+
			"\\resizebox{\\linewidth}{!}{%\n"+
			"\\begin{tikzpicture}[scale=0.12]\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w,
		"  \\draw[->] (%s,%s) -- (%s,%s) node[right] {$t$};\n"+
			"  \\draw[->] (%s,%s) -- (%s,%s) node[above] {$y$};\n",
		fixed(d.XMin, precision), fixed(d.YMin, precision),
		fixed(d.XMax, precision), fixed(d.YMin, precision),
		fixed(d.XMin, precision), fixed(d.YMin, precision),
		fixed(d.XMin, precision), fixed(p.Top(), precision)); err != nil {
		return err
	}

	for _, s := range segs {
		if _, err := fmt.Fprintf(w, "  \\draw[blue!70] (%s,%s) -- (%s,%s);\n",
			fixed(s.X0, precision), fixed(s.Y0, precision),
			fixed(s.X1, precision), fixed(s.Y1, precision)); err != nil {
			return err
		}
	}

	if len(curve) > 0 {
		if _, err := io.WriteString(w, "  \\draw[red, thick] plot coordinates {"); err != nil {
			return err
		}
		for _, pt := range curve {
			if _, err := fmt.Fprintf(w, " (%s,%s)", fixed(pt.X, precision), fixed(pt.Y, precision)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, " };\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\\end{tikzpicture}%\n}\n\\end{center}\n")
	return err
}
