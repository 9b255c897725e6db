// Package portal runs the whole calculation for one building: geometry,
// both views and the quantity estimate.
package portal

import (
	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/config"
	"github.com/alexiusacademia/framecalc/internal/estimate"
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/ansel1/merry"
	"github.com/google/uuid"
	"github.com/powerman/structlog"
)

type Request struct {
	Building frame.Params    `json:"building" msgpack:"building"`
	Sections config.Sections `json:"sections" msgpack:"sections"`
}

type Result struct {
	ID      uuid.UUID `json:"id" msgpack:"id"`
	Request Request   `json:"request" msgpack:"request"`

	Column catalog.SectionProfile `json:"column" msgpack:"column"`
	Rafter catalog.SectionProfile `json:"rafter" msgpack:"rafter"`

	Geometry  *frame.Geometry    `json:"geometry" msgpack:"geometry"`
	Plan      *layout.Plan       `json:"plan" msgpack:"plan"`
	Elevation *layout.Elevation  `json:"elevation" msgpack:"elevation"`
	Estimate  *estimate.Estimate `json:"estimate" msgpack:"estimate"`
}

// Designer holds the fixed rules and the catalog. It keeps no state between
// runs and may be shared.
type Designer struct {
	catalog catalog.Lookup
	rules   frame.Options
	drawing layout.Options
	rates   estimate.Rates
	log     *structlog.Logger
}

func New(cat catalog.Lookup, cfg config.Config) *Designer {
	return &Designer{
		catalog: cat,
		rules:   cfg.Frame,
		drawing: cfg.Layout,
		rates:   cfg.Costs,
		log:     structlog.New(structlog.KeyUnit, "portal"),
	}
}

// Rates returns the cost model in use
func (d *Designer) Rates() estimate.Rates {
	return d.rates
}

// Run computes everything for one request. The first failure aborts the run
// and nothing partial is returned.
func (d *Designer) Run(req Request) (*Result, error) {
	if err := req.Building.Validate(); err != nil {
		return nil, err
	}
	if err := req.Sections.Validate(); err != nil {
		return nil, err
	}

	column, err := d.catalog.Lookup(req.Sections.Column.Family, req.Sections.Column.Designation)
	if err != nil {
		return nil, err
	}
	rafter, err := d.catalog.Lookup(req.Sections.Rafter.Family, req.Sections.Rafter.Designation)
	if err != nil {
		return nil, err
	}

	geo, err := frame.Derive(req.Building, d.rules)
	if err != nil {
		return nil, err
	}
	plan, err := layout.GeneratePlan(req.Building, geo, d.rules, d.drawing)
	if err != nil {
		return nil, err
	}
	elevation, err := layout.GenerateElevation(req.Building, geo, layout.Sections{
		ColumnDepth: column.HeightMeters(),
		RafterDepth: rafter.HeightMeters(),
	}, d.drawing)
	if err != nil {
		return nil, err
	}

	est, err := estimate.Compute(estimate.Input{
		Params:             req.Building,
		Geometry:           geo,
		ColumnMassPerMeter: column.MassPerMeterKg,
		RafterMassPerMeter: rafter.MassPerMeterKg,
		PurlinBaySpacing:   plan.PurlinBaySpacing,
		DiagonalLength:     plan.DiagonalLength,
		PlanBracingCount:   plan.BracingCount,
	}, d.rates)
	if err != nil {
		return nil, err
	}

	r := &Result{
		ID:        uuid.New(),
		Request:   req,
		Column:    column,
		Rafter:    rafter,
		Geometry:  geo,
		Plan:      plan,
		Elevation: elevation,
		Estimate:  est,
	}

	log := d.log.New("run", r.ID)
	log.Debug("derived",
		"rafter_length", geo.RafterLength,
		"purlins_per_side", geo.PurlinsPerSide,
		"girts", geo.GirtCount,
		"plan_segments", len(plan.Segments),
		"elevation_segments", len(elevation.Segments))
	if !est.BracingConsistent {
		log.Warn("bracing count differs between plan and estimate",
			"plan", est.PlanBracingCount,
			"estimate", est.BracingCount)
	}
	return r, nil
}

// SweepPoint is one run of a pitch sweep
type SweepPoint struct {
	Pitch  float64 `json:"pitch" msgpack:"pitch"`
	Result *Result `json:"result" msgpack:"result"`
}

// SweepPitch runs req once per pitch from..to in step increments, with
// every other input unchanged. Any failing pitch aborts the sweep.
func (d *Designer) SweepPitch(req Request, from, to, step float64) ([]SweepPoint, error) {
	if !(step > 0) {
		return nil, frame.ErrInvalidParameter.Here().Appendf("sweep step must be positive, got %g", step)
	}
	if from > to {
		return nil, frame.ErrInvalidParameter.Here().Appendf("sweep range %g..%g is reversed", from, to)
	}

	var points []SweepPoint
	for i := 0; ; i++ {
		pitch := from + float64(i)*step
		if pitch > to+1e-9 {
			break
		}
		r := req
		r.Building.Pitch = pitch
		res, err := d.Run(r)
		if err != nil {
			return nil, merry.Prependf(err, "pitch %g", pitch)
		}
		points = append(points, SweepPoint{Pitch: pitch, Result: res})
	}
	d.log.Debug("sweep", "from", from, "to", to, "runs", len(points))
	return points, nil
}
