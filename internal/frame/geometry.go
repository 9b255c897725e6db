package frame

import (
	"math"

	"github.com/hashicorp/go-multierror"
)

// Options holds the fixed layout rules used when deriving frame geometry.
// Nominal spacings are targets; the derived spacings differ from them.
type Options struct {
	PurlinSpacing    float64 `json:"purlin_spacing" yaml:"purlin_spacing"`         // nominal purlin spacing along the rafter
	PurlinEdgeMargin float64 `json:"purlin_edge_margin" yaml:"purlin_edge_margin"` // first purlin offset from eave and long edges
	RidgeMargin      float64 `json:"ridge_margin" yaml:"ridge_margin"`             // ridge purlins at mid-width ± this
	RidgeClearance   float64 `json:"ridge_clearance" yaml:"ridge_clearance"`       // strip below the ridge purlin kept free of the purlin grid
	GirtSpacing      float64 `json:"girt_spacing" yaml:"girt_spacing"`             // nominal wall girt spacing
	GirtMargin       float64 `json:"girt_margin" yaml:"girt_margin"`               // eave height not covered by girts
}

// DefaultOptions returns the standard layout rules
func DefaultOptions() Options {
	return Options{
		PurlinSpacing:    2.0,
		PurlinEdgeMargin: 0.2,
		RidgeMargin:      0.2,
		RidgeClearance:   1.2,
		GirtSpacing:      2.2,
		GirtMargin:       0.4,
	}
}

// Validate reports every non-positive spacing or negative margin
func (o Options) Validate() error {
	var errs *multierror.Error
	if !(o.PurlinSpacing > 0) {
		errs = multierror.Append(errs, ErrInvalidParameter.Here().Appendf("purlin spacing must be positive, got %g", o.PurlinSpacing))
	}
	if !(o.GirtSpacing > 0) {
		errs = multierror.Append(errs, ErrInvalidParameter.Here().Appendf("girt spacing must be positive, got %g", o.GirtSpacing))
	}
	margins := []struct {
		name  string
		value float64
	}{
		{"purlin edge margin", o.PurlinEdgeMargin},
		{"ridge margin", o.RidgeMargin},
		{"ridge clearance", o.RidgeClearance},
		{"girt margin", o.GirtMargin},
	}
	for _, m := range margins {
		if m.value < 0 {
			errs = multierror.Append(errs, ErrInvalidParameter.Here().Appendf("%s must not be negative, got %g", m.name, m.value))
		}
	}
	return errs.ErrorOrNil()
}

// Geometry holds the scalar quantities derived from Params
type Geometry struct {
	PitchRad     float64 `json:"pitch_rad" msgpack:"pitch_rad"`
	RafterLength float64 `json:"rafter_length" msgpack:"rafter_length"` // rounded to 2 decimals

	PurlinSpacing  float64 `json:"purlin_spacing" msgpack:"purlin_spacing"`     // nominal
	PurlinCount    int     `json:"purlin_count" msgpack:"purlin_count"`         // both roof sides, always even
	PurlinsPerSide int     `json:"purlins_per_side" msgpack:"purlins_per_side"` // correas por lado

	// PurlinZone is the run across each half of the plan, between the eave
	// purlin and the ridge clearance, shared by the intermediate purlins.
	PurlinZone float64 `json:"purlin_zone" msgpack:"purlin_zone"`

	GirtCount   int     `json:"girt_count" msgpack:"girt_count"`
	GirtSpacing float64 `json:"girt_spacing" msgpack:"girt_spacing"` // normalised, GirtCount*GirtSpacing == EaveHeight-GirtMargin
}

// Derive computes the frame geometry. A purlin count of zero is not an
// error here; it surfaces as ErrDivisionByZero from PurlinBaySpacing.
func Derive(p Params, opts Options) (*Geometry, error) {
	if !(p.Pitch > 0 && p.Pitch < 90) {
		return nil, ErrInvalidParameter.Here().Appendf("roof pitch must be strictly between 0 and 90 degrees, got %g", p.Pitch)
	}
	if !(p.Width > 0) {
		return nil, ErrInvalidParameter.Here().Appendf("width must be positive, got %g", p.Width)
	}
	if !(opts.PurlinSpacing > 0) || !(opts.GirtSpacing > 0) {
		return nil, ErrInvalidParameter.Here().Appendf("nominal spacings must be positive, got purlin %g, girt %g",
			opts.PurlinSpacing, opts.GirtSpacing)
	}

	g := &Geometry{
		PitchRad:      p.Pitch * math.Pi / 180,
		PurlinSpacing: opts.PurlinSpacing,
	}

	// Downstream counts use the rounded length, not the raw one.
	g.RafterLength = Round2((p.Width / 2) / math.Cos(g.PitchRad))

	g.PurlinCount = 2 * int(math.Ceil((g.RafterLength-opts.PurlinEdgeMargin)/opts.PurlinSpacing))
	if g.PurlinCount < 0 {
		g.PurlinCount = 0
	}
	g.PurlinsPerSide = g.PurlinCount / 2
	g.PurlinZone = (p.Width-2*opts.PurlinEdgeMargin)/2 - opts.RidgeMargin - opts.RidgeClearance

	girtRun := p.EaveHeight - opts.GirtMargin
	if !(girtRun > 0) {
		return nil, ErrInvalidParameter.Here().Appendf("eave height %g leaves no room for girts above the %g margin",
			p.EaveHeight, opts.GirtMargin)
	}
	// half-to-even, as the calculator always did
	g.GirtCount = int(math.RoundToEven(girtRun / opts.GirtSpacing))
	if g.GirtCount < 1 {
		g.GirtCount = 1
	}
	g.GirtSpacing = girtRun / float64(g.GirtCount)

	return g, nil
}

// PurlinBaySpacing is the distance between adjacent purlin lines in plan,
// i.e. the purlin zone divided by the purlins per side.
func (g *Geometry) PurlinBaySpacing() (float64, error) {
	if g.PurlinsPerSide == 0 {
		return 0, ErrDivisionByZero.Here().Appendf("no purlins per side for rafter length %.2f", g.RafterLength)
	}
	if !(g.PurlinZone > 0) {
		return 0, ErrInvalidParameter.Here().Appendf("building too narrow for a purlin grid, purlin zone %g", g.PurlinZone)
	}
	return g.PurlinZone / float64(g.PurlinsPerSide), nil
}

// Round2 rounds to 2 decimal places
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
