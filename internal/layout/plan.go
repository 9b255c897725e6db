package layout

import (
	"math"

	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/vecmath"
	"github.com/ansel1/merry"
)

// Plan is the top view of the building. X runs along the building length,
// Y across the span with the ridge at Width/2.
type Plan struct {
	View

	// PurlinBaySpacing is the distance between adjacent purlin lines
	PurlinBaySpacing float64 `json:"purlin_bay_spacing" msgpack:"purlin_bay_spacing"`

	// DiagonalLength is the far-end eave diagonal, shared by every copy
	DiagonalLength float64 `json:"diagonal_length" msgpack:"diagonal_length"`

	BracingCount int `json:"bracing_count" msgpack:"bracing_count"`

	// LastFrameX is where the far-end bracing is anchored
	LastFrameX float64 `json:"last_frame_x" msgpack:"last_frame_x"`
}

// GeneratePlan builds the plan view: frame grid lines, the building edges
// and ridge, purlin lines and the X bracing of both end bays.
func GeneratePlan(p frame.Params, g *frame.Geometry, rules frame.Options, opts Options) (*Plan, error) {
	if p.Portals < frame.MinPortals {
		return nil, frame.ErrInvalidParameter.Here().Appendf("portal count %d is less than %d", p.Portals, frame.MinPortals)
	}
	if p.Portals > frame.MaxPortals {
		return nil, frame.ErrInvalidParameter.Here().Appendf("portal count %d is more than %d", p.Portals, frame.MaxPortals)
	}
	d, err := g.PurlinBaySpacing()
	if err != nil {
		return nil, merry.Prepend(err, "plan layout")
	}

	var (
		k      = g.PurlinsPerSide
		w      = p.Width
		mid    = w / 2
		bottom = rules.PurlinEdgeMargin
		end    = p.EndBaySpacing
		inner  = p.InternalBaySpacing

		firstX = -end
		lastX  = end + float64(p.Portals-1)*inner + end
	)

	plan := &Plan{
		View:             View{Name: "plan"},
		PurlinBaySpacing: d,
		LastFrameX:       inner*float64(p.Portals-3) + 2*end,
	}
	v := &plan.View
	across := vecmath.MirrorY(mid)

	// frames
	v.add(GridLine, vecmath.V(firstX, 0), vecmath.V(firstX, w))
	for i := 0; i < p.Portals; i++ {
		x := end + float64(i)*inner
		v.add(GridLine, vecmath.V(x, 0), vecmath.V(x, w))
	}
	v.add(GridLine, vecmath.V(lastX, 0), vecmath.V(lastX, w))

	// long edges and ridge
	v.add(GridLine, vecmath.V(firstX, 0), vecmath.V(lastX, 0))
	v.add(GridLine, vecmath.V(firstX, w), vecmath.V(lastX, w))
	v.add(RidgeLine, vecmath.V(firstX, mid), vecmath.V(lastX, mid))

	// purlins, each one paired with its mirror across the ridge
	for i := 0; i < k; i++ {
		y := bottom + d*float64(i+1)
		v.addMapped([]Segment{NewSegment(PurlinLine, vecmath.V(firstX, y), vecmath.V(lastX, y))},
			vecmath.Identity(), across)
	}
	for _, y := range []float64{bottom, mid - rules.RidgeMargin} {
		v.addMapped([]Segment{NewSegment(PurlinLine, vecmath.V(firstX, y), vecmath.V(lastX, y))},
			vecmath.Identity(), across)
	}

	ends := []struct{ from, to float64 }{
		{0, end},
		{plan.LastFrameX + opts.BracingOverhang, plan.LastFrameX - end},
	}

	// eave bays: a base X on the first purlin bay, repeated k-1 times towards
	// the ridge, then mirrored to the other roof side
	for _, e := range ends {
		base := crossed(e.from, e.to, bottom, bottom+d)
		for j := 0; j < k; j++ {
			step := vecmath.Translate(vecmath.V(0, d*float64(j)))
			v.addMapped(base, step, step.Then(across))
		}
	}
	plan.DiagonalLength = math.Hypot(ends[1].from-ends[1].to, d)

	// ridge bays, between the last purlin line and the ridge purlin
	ridgeLow := bottom + d*float64(k)
	ridgeHigh := mid - rules.RidgeMargin
	v.addMapped(crossed(ends[0].from, ends[0].to, ridgeHigh, ridgeLow), vecmath.Identity(), across)
	if k > 1 {
		v.addMapped(crossed(ends[1].from, ends[1].to, ridgeHigh, ridgeLow), vecmath.Identity(), across)
	}

	plan.BracingCount = v.Count(BracingLine)
	return plan, nil
}

// crossed returns the two diagonals of the box between x0..x1 and y0..y1
func crossed(x0, x1, y0, y1 float64) []Segment {
	return []Segment{
		NewSegment(BracingLine, vecmath.V(x0, y0), vecmath.V(x1, y1)),
		NewSegment(BracingLine, vecmath.V(x0, y1), vecmath.V(x1, y0)),
	}
}
