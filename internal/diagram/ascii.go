package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/guptarohit/asciigraph"
)

// glyphs used by DrawASCIIView, one per segment class
var glyphs = map[layout.Class]rune{
	layout.GridLine:    '·',
	layout.RidgeLine:   '=',
	layout.PurlinLine:  '-',
	layout.GirtLine:    '~',
	layout.ColumnLine:  '|',
	layout.RafterLine:  '/',
	layout.GussetLine:  '+',
	layout.BracingLine: 'x',
}

// drawing colors: bracing red, frames blue, purlins green
var colorNames = map[layout.Class]string{
	layout.GridLine:    "blue",
	layout.RidgeLine:   "red",
	layout.PurlinLine:  "green",
	layout.GirtLine:    "blue",
	layout.ColumnLine:  "blue",
	layout.RafterLine:  "blue",
	layout.GussetLine:  "blue",
	layout.BracingLine: "red",
}

// DrawASCIIView rasterizes a view onto a character grid of the given size.
// Later segments overwrite earlier ones where they cross.
func DrawASCIIView(v *layout.View, cols, rows int) string {
	if cols < 2 || rows < 2 || len(v.Segments) == 0 {
		return ""
	}
	b := v.Bounds()
	if b.Width == 0 || b.Height == 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	sx := float64(cols-1) / b.Width
	sy := float64(rows-1) / b.Height
	cell := func(x, y float64) (int, int) {
		c := int(math.Round((x - b.MinX) * sx))
		r := rows - 1 - int(math.Round((y-b.MinY)*sy))
		return c, r
	}

	for _, s := range v.Segments {
		g := glyphs[s.Class]
		c0, r0 := cell(s.Start.X, s.Start.Y)
		c1, r1 := cell(s.End.X, s.End.Y)
		steps := max(abs(c1-c0), abs(r1-r0))
		for i := 0; i <= steps; i++ {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}
			c := c0 + int(math.Round(t*float64(c1-c0)))
			r := r0 + int(math.Round(t*float64(r1-r0)))
			grid[r][c] = g
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  x %.2f .. %.2f m, y %.2f .. %.2f m\n", b.MinX, b.MaxX, b.MinY, b.MaxY))
	return sb.String()
}

// DrawLegend lists the classes present in a view with their glyph, color
// and segment count.
func DrawLegend(v *layout.View) string {
	var sb strings.Builder
	sb.WriteString("  Legend:\n")
	for _, c := range layout.Classes() {
		n := v.Count(c)
		if n == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %c  %-13s %-6s %4d\n", glyphs[c], c, colorNames[c], n))
	}
	return sb.String()
}

// Bar is one row of DrawBars
type Bar struct {
	Label string
	Value float64
}

// DrawBars draws horizontal bars scaled to the largest value
func DrawBars(bars []Bar, width int, unit string) string {
	var sb strings.Builder

	var top float64
	labelWidth := 0
	for _, b := range bars {
		top = math.Max(top, b.Value)
		labelWidth = max(labelWidth, utf8.RuneCountInString(b.Label))
	}
	if top <= 0 {
		return ""
	}
	scale := float64(width) / top

	for _, b := range bars {
		n := int(math.Round(b.Value * scale))
		if n < 0 {
			n = 0
		}
		sb.WriteString(fmt.Sprintf("  %-*s │%s %.2f %s\n", labelWidth, b.Label, strings.Repeat("█", n), b.Value, unit))
	}
	return sb.String()
}

// DrawSeries plots values as a line chart, one column per value
func DrawSeries(values []float64, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
