package layout

import (
	"math"

	"github.com/alexiusacademia/framecalc/internal/vecmath"
)

// View is an ordered set of segments. Order is insertion order and only
// groups segments by construction step.
type View struct {
	Name     string    `json:"name" msgpack:"name"`
	Segments []Segment `json:"segments" msgpack:"segments"`
}

// Bounds is the axis-aligned bounding box of a view
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Width      float64
	Height     float64
}

func (v *View) add(class Class, start, end vecmath.Vec) Segment {
	s := NewSegment(class, start, end)
	v.Segments = append(v.Segments, s)
	return s
}

// addMapped appends every segment mapped through each transform in turn
func (v *View) addMapped(segs []Segment, transforms ...vecmath.Transform) {
	for _, t := range transforms {
		for _, s := range segs {
			v.Segments = append(v.Segments, s.Map(t))
		}
	}
}

// Count returns the number of segments of the given class
func (v *View) Count(class Class) int {
	n := 0
	for _, s := range v.Segments {
		if s.Class == class {
			n++
		}
	}
	return n
}

// Filter returns the segments of the given class in insertion order
func (v *View) Filter(class Class) []Segment {
	var out []Segment
	for _, s := range v.Segments {
		if s.Class == class {
			out = append(out, s)
		}
	}
	return out
}

// TotalLength sums the carried lengths of one class
func (v *View) TotalLength(class Class) float64 {
	var total float64
	for _, s := range v.Filter(class) {
		total += s.Length
	}
	return total
}

// Bounds computes the bounding box over all segment end points
func (v *View) Bounds() Bounds {
	var b Bounds
	if len(v.Segments) == 0 {
		return b
	}

	first := v.Segments[0].Start
	b.MinX, b.MaxX = first.X, first.X
	b.MinY, b.MaxY = first.Y, first.Y

	for _, s := range v.Segments {
		for _, p := range [2]vecmath.Vec{s.Start, s.End} {
			b.MinX = math.Min(b.MinX, p.X)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}

	b.Width = b.MaxX - b.MinX
	b.Height = b.MaxY - b.MinY
	return b
}
