package layout

import "github.com/alexiusacademia/framecalc/internal/vecmath"

// Class tags a segment for display styling
type Class string

const (
	RidgeLine   Class = "ridge-line"
	GridLine    Class = "grid-line"
	PurlinLine  Class = "purlin-line"
	GirtLine    Class = "girt-line"
	ColumnLine  Class = "column-line"
	RafterLine  Class = "rafter-line"
	GussetLine  Class = "gusset-line"
	BracingLine Class = "bracing-line"
)

// Classes lists every segment class in legend order
func Classes() []Class {
	return []Class{
		GridLine, RidgeLine, PurlinLine, GirtLine,
		ColumnLine, RafterLine, GussetLine, BracingLine,
	}
}

// Segment is a classified line between two points. Length is set once when
// the segment is built and travels with every copy made from it.
type Segment struct {
	Start  vecmath.Vec `json:"start" msgpack:"start"`
	End    vecmath.Vec `json:"end" msgpack:"end"`
	Class  Class       `json:"class" msgpack:"class"`
	Length float64     `json:"length" msgpack:"length"`
}

// NewSegment builds a segment and measures it
func NewSegment(class Class, start, end vecmath.Vec) Segment {
	return Segment{
		Start:  start,
		End:    end,
		Class:  class,
		Length: vecmath.Distance(start, end),
	}
}

// Map applies t to both end points. The length is carried over unchanged,
// which is exact for translations and mirrors.
func (s Segment) Map(t vecmath.Transform) Segment {
	s.Start = t(s.Start)
	s.End = t(s.End)
	return s
}
