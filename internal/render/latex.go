package render

import (
	"fmt"
	"io"

	"github.com/san-kum/slopefield/internal/euler"
)

// LaTeX writes the step records as a standalone document holding one
// longtable, so multi-page tables paginate.
func LaTeX(w io.Writer, steps []euler.Step, precision int) error {
	rows := makeRows(steps, precision)

	if _, err := io.WriteString(w,
		"\\documentclass{article}\n"+
			"\\usepackage[margin=1in]{geometry}\n"+
			"\\usepackage{longtable}\n"+
			"\\begin{document}\n"+
			"\\begin{center}\n"+
			"  \\begin{longtable}{|c|c|c|c|c|}\n"+
			"    \\hline\n"+
			"    n & x & y & y' & $\\Delta$y \\\\\n"+
			"    \\hline\n"); err != nil {
		return err
	}
	for n, r := range rows {
		if _, err := fmt.Fprintf(w, "    %d & %s & %s & %s & %s \\\\\n    \\hline\n",
			n, r.x, r.y, r.yp, r.dy); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "  \\end{longtable}\n\\end{center}\n\\end{document}\n")
	return err
}
