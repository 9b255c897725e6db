package layout

import (
	"math"

	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/vecmath"
	"github.com/ansel1/merry"
)

// Sections carries the depths of the chosen column and rafter profiles in
// meters, as read from the catalog.
type Sections struct {
	ColumnDepth float64 `json:"column_depth" msgpack:"column_depth"`
	RafterDepth float64 `json:"rafter_depth" msgpack:"rafter_depth"`
}

// Elevation is the front view of one representative frame. The left half is
// built once and mirrored about x = Width/2.
type Elevation struct {
	View

	Apex         vecmath.Vec `json:"apex" msgpack:"apex"`
	Intersection vecmath.Vec `json:"intersection" msgpack:"intersection"` // inner column face on the rafter underside
	GussetCorner vecmath.Vec `json:"gusset_corner" msgpack:"gusset_corner"`
	TickSpacing  float64     `json:"tick_spacing" msgpack:"tick_spacing"` // between purlin ticks along the rafter
}

// GenerateElevation builds the front view: columns, rafters with their far
// face, haunch gussets, girt ticks and purlin ticks on both roof slopes.
func GenerateElevation(p frame.Params, g *frame.Geometry, s Sections, opts Options) (*Elevation, error) {
	if !(s.ColumnDepth > 0) || !(s.RafterDepth > 0) {
		return nil, frame.ErrInvalidParameter.Here().Appendf("section depths must be positive, got column %g, rafter %g",
			s.ColumnDepth, s.RafterDepth)
	}

	var (
		w  = p.Width
		h  = p.EaveHeight
		cw = s.ColumnDepth
		rw = s.RafterDepth
	)

	el := &Elevation{View: View{Name: "elevation"}}
	v := &el.View
	mirror := vecmath.MirrorX(w / 2)
	both := []vecmath.Transform{vecmath.Identity(), mirror}

	v.add(GridLine, vecmath.V(0, 0), vecmath.V(w, 0))

	// columns: outer and inner face, then the inner face up to the rafter
	v.addMapped([]Segment{
		NewSegment(ColumnLine, vecmath.V(0, 0), vecmath.V(0, h)),
		NewSegment(ColumnLine, vecmath.V(cw, 0), vecmath.V(cw, h)),
	}, both...)
	rise := cw * math.Tan(g.PitchRad)
	v.addMapped([]Segment{NewSegment(ColumnLine, vecmath.V(cw, h), vecmath.V(cw, h+rise))}, both...)

	// rafter top face from the eave to the apex
	eave := vecmath.V(0, h)
	dir := vecmath.Rotate(vecmath.V(1, 0), p.Pitch)
	el.Apex = eave.Add(dir.Scale(g.RafterLength))
	v.addMapped([]Segment{NewSegment(RafterLine, eave, el.Apex)}, both...)

	// rafter depth measured square to the slope
	normal := vecmath.Rotate(dir, 90).Scale(rw)
	plumb := vecmath.V(el.Apex.X, el.Apex.Y-normal.Y)
	v.add(RidgeLine, el.Apex, plumb)

	el.Intersection = vecmath.V(cw, h+rise-normal.Y)
	corner, err := vecmath.PointAtDistance(el.Intersection, el.Apex.Sub(normal), opts.GussetDistance)
	if err != nil {
		return nil, merry.Prepend(err, "gusset corner")
	}
	el.GussetCorner = corner
	plate, err := vecmath.Offset(corner, vecmath.Rotate(plumb.Sub(el.Intersection), 90), rw)
	if err != nil {
		return nil, merry.Prepend(err, "gusset plate")
	}
	v.addMapped([]Segment{NewSegment(RafterLine, corner, plumb)}, both...)

	// haunch: plate edge, sloped gusset edge and its foot across the column
	foot := el.Intersection.Y - (p.HaunchHeight - normal.Y)
	v.addMapped([]Segment{
		NewSegment(GussetLine, corner, plate),
		NewSegment(GussetLine, vecmath.V(cw, foot), corner),
		NewSegment(GussetLine, vecmath.V(0, foot), vecmath.V(cw, foot)),
	}, both...)

	// girts, one tick per interval end
	var girts []Segment
	for i := 0; i <= g.GirtCount; i++ {
		y := opts.GirtTickStart + float64(i)*g.GirtSpacing
		girts = append(girts, NewSegment(GirtLine, vecmath.V(0, y), vecmath.V(-opts.GirtTickLength, y)))
	}
	v.addMapped(girts, both...)

	// purlins: eave and ridge purlin inset from the rafter ends, the
	// remaining ones evenly between them
	first := eave.Add(dir.Scale(opts.PurlinTickInset))
	last := el.Apex.Sub(dir.Scale(opts.PurlinTickInset))
	el.TickSpacing = vecmath.Distance(first, last) / float64(g.PurlinsPerSide+1)
	tick := vecmath.Rotate(dir, 90).Scale(opts.PurlinTickLength)

	ticks := []Segment{
		NewSegment(PurlinLine, first, first.Add(tick)),
		NewSegment(PurlinLine, last, last.Add(tick)),
	}
	for i := 1; i <= g.PurlinsPerSide; i++ {
		at := first.Add(dir.Scale(float64(i) * el.TickSpacing))
		ticks = append(ticks, NewSegment(PurlinLine, at, at.Add(tick)))
	}
	v.addMapped(ticks, both...)

	return el, nil
}
