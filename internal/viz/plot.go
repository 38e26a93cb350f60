// Package viz renders step sequences in the terminal: a static ascii
// graph and a live stepping view.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/slopefield/internal/euler"
)

const (
	plotWidth  = 80
	plotHeight = 15
)

// Plot renders the y series of a run as an ascii graph.
func Plot(steps []euler.Step, caption string) string {
	if len(steps) == 0 {
		return ""
	}
	data := make([]float64, len(steps))
	for i, s := range steps {
		data[i] = s.Y
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
