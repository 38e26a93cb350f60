package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/slopefield/internal/euler"
)

// coolingSteps integrates y' = 0.3*(300-y) far enough for two records.
func coolingSteps(t *testing.T, xEnd float64) []euler.Step {
	t.Helper()
	f := func(x, y float64) (float64, error) { return 0.3 * (300 - y), nil }
	steps, err := euler.Run(f, 0.1, 0, 350, xEnd, 6)
	require.NoError(t, err)
	return steps
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, coolingSteps(t, 0.1), 6))

	want := strings.Join([]string{
		"n |        x |          y |         y' |        Δy ",
		" 0| 0.000000 | 350.000000 | -15.000000 | -1.500000 ",
		" 1| 0.100000 | 348.500000 | -14.550000 | -1.455000 ",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestTable_WidthsGrowWithValues(t *testing.T) {
	var buf bytes.Buffer
	steps := []euler.Step{
		{X: 0, Y: 1000000.5, YP: 0.1, DY: 0.01},
		{X: 0.5, Y: 2, YP: 0.1, DY: 0.05},
	}
	require.NoError(t, Table(&buf, steps, 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// Every row splits into the same five aligned columns.
	widths := make([]int, 5)
	for i, col := range strings.Split(lines[0], "|") {
		widths[i] = len([]rune(col))
	}
	for _, line := range lines[1:] {
		cols := strings.Split(line, "|")
		require.Len(t, cols, 5)
		for i, col := range cols {
			assert.Equal(t, widths[i], len([]rune(col)), "column %d in %q", i, line)
		}
	}
}

func TestLaTeX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LaTeX(&buf, coolingSteps(t, 0.1), 6))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "\\documentclass{article}\n"))
	assert.Contains(t, out, "\\usepackage{longtable}")
	assert.Contains(t, out, "\\begin{longtable}{|c|c|c|c|c|}")
	assert.Contains(t, out, "n & x & y & y' & $\\Delta$y \\\\")
	assert.Contains(t, out, "0 &  0.000000  &  350.000000  &  -15.000000  &  -1.500000  \\\\")
	assert.Contains(t, out, "1 &  0.100000  &  348.500000  &  -14.550000  &  -1.455000  \\\\")
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, coolingSteps(t, 0.1), 6))

	want := "x,y,y',Δy\n" +
		" 0.000000 , 350.000000 , -15.000000 , -1.500000 \n" +
		" 0.100000 , 348.500000 , -14.550000 , -1.455000 \n"
	require.Equal(t, want, buf.String())
}

func TestCSVSegments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVSegments(&buf, coolingSteps(t, 0.2), 6))

	want := "x0,y0,x1,y1\n" +
		"0.000000,350.000000,0.100000,348.500000\n" +
		"0.100000,348.500000,0.200000,347.045000\n"
	require.Equal(t, want, buf.String())
}

func TestCSVSegments_SingleRecordHasNoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVSegments(&buf, []euler.Step{{X: 1, Y: 2}}, 2))
	require.Equal(t, "x0,y0,x1,y1\n", buf.String())
}
