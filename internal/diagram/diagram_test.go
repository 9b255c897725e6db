package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPlan(t *testing.T) *layout.Plan {
	t.Helper()
	p := frame.DefaultParams()
	g, err := frame.Derive(p, frame.DefaultOptions())
	require.NoError(t, err)
	pl, err := layout.GeneratePlan(p, g, frame.DefaultOptions(), layout.DefaultOptions())
	require.NoError(t, err)
	return pl
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("COST", []string{"Total: 29 667.12 €", "Per tonne: 2915.00 €/t"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
	assert.True(t, strings.HasPrefix(lines[0], "  ╔"))
	assert.Contains(t, lines[1], "COST")
	assert.Contains(t, lines[4], "2915.00 €/t")
}

func TestDrawLegend(t *testing.T) {
	legend := DrawLegend(&defaultPlan(t).View)
	assert.Contains(t, legend, "bracing-line")
	assert.Contains(t, legend, "red")
	assert.Contains(t, legend, "  48\n")
	assert.NotContains(t, legend, "column-line", "classes absent from the view are skipped")
}

func TestDrawASCIIView(t *testing.T) {
	pl := defaultPlan(t)
	out := DrawASCIIView(&pl.View, 60, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 20+3)
	for _, l := range lines[:21] {
		assert.Equal(t, 60+4, utf8.RuneCountInString(l), l)
	}
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "-")
	assert.Contains(t, lines[22], "-5.50 .. 35.00")

	assert.Empty(t, DrawASCIIView(&layout.View{}, 60, 20))
	assert.Empty(t, DrawASCIIView(&pl.View, 1, 20))
}

func TestDrawBars(t *testing.T) {
	out := DrawBars([]Bar{{"columns", 2}, {"rafters", 4}, {"bracing", 0}}, 10, "t")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 5, strings.Count(lines[0], "█"))
	assert.Equal(t, 10, strings.Count(lines[1], "█"))
	assert.Equal(t, 0, strings.Count(lines[2], "█"))
	assert.Contains(t, lines[1], "4.00 t")

	assert.Empty(t, DrawBars(nil, 10, "t"))
}

func TestDrawSeries(t *testing.T) {
	assert.Empty(t, DrawSeries(nil, 5, "empty"))

	out := DrawSeries([]float64{9.05, 9.20, 9.49, 10.0, 10.85}, 6, "rafter length (m) by pitch")
	assert.Contains(t, out, "rafter length (m) by pitch")
	assert.Contains(t, out, "10.85")
	assert.Contains(t, out, "┤")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 6)
}

func TestExportView(t *testing.T) {
	pl := defaultPlan(t)
	dir := t.TempDir()

	for _, name := range []string{"plan.png", "sub/plan.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportView(&pl.View, "Plan", path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	require.NoError(t, ExportView(&pl.View, "Plan", filepath.Join(dir, "plan")))
	_, err := os.Stat(filepath.Join(dir, "plan.png"))
	assert.NoError(t, err)

	assert.Error(t, ExportView(&layout.View{Name: "empty"}, "Empty", filepath.Join(dir, "empty.png")))
}
