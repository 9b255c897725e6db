package diagram

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/ansel1/merry"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	red   = color.RGBA{R: 220, G: 20, B: 20, A: 255}
	blue  = color.RGBA{R: 20, G: 60, B: 200, A: 255}
	green = color.RGBA{R: 20, G: 140, B: 40, A: 255}
)

func lineStyle(c layout.Class) draw.LineStyle {
	s := draw.LineStyle{Width: vg.Points(1), Color: blue}
	switch c {
	case layout.BracingLine, layout.RidgeLine:
		s.Color = red
	case layout.PurlinLine:
		s.Color = green
		s.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	case layout.GridLine:
		s.Width = vg.Points(0.75)
		s.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	case layout.ColumnLine, layout.RafterLine:
		s.Width = vg.Points(1.5)
	}
	return s
}

// ExportView draws every segment of a view, styled by class, and saves it.
// The format follows the file extension: .png, .svg or .pdf; anything else
// gets .png appended.
func ExportView(v *layout.View, title, filename string) error {
	if len(v.Segments) == 0 {
		return merry.Errorf("view %q has no segments", v.Name)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Legend.Top = true

	legend := make(map[layout.Class]bool)
	for _, s := range v.Segments {
		l, err := plotter.NewLine(plotter.XYs{
			{X: s.Start.X, Y: s.Start.Y},
			{X: s.End.X, Y: s.End.Y},
		})
		if err != nil {
			return merry.Prependf(err, "segment %v", s)
		}
		l.LineStyle = lineStyle(s.Class)
		p.Add(l)
		if !legend[s.Class] {
			legend[s.Class] = true
			p.Legend.Add(string(s.Class), l)
		}
	}

	// canvas follows the aspect ratio of the view
	b := v.Bounds()
	margin := 0.05 * max(b.Width, b.Height)
	p.X.Min, p.X.Max = b.MinX-margin, b.MaxX+margin
	p.Y.Min, p.Y.Max = b.MinY-margin, b.MaxY+margin

	width := 10 * vg.Inch
	height := width * vg.Length((b.Height+2*margin)/(b.Width+2*margin))
	height = max(min(height, 10*vg.Inch), 3*vg.Inch)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return merry.Wrap(err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return merry.Prependf(err, "save %s", filename)
	}
	return nil
}
