package estimate

import (
	"math"

	"github.com/alexiusacademia/framecalc/internal/frame"
)

// Input collects what the estimator needs from the geometry, the plan and
// the selected sections.
type Input struct {
	Params   frame.Params
	Geometry *frame.Geometry

	ColumnMassPerMeter float64 // kg/m
	RafterMassPerMeter float64 // kg/m

	PurlinBaySpacing float64 // from the plan
	DiagonalLength   float64 // from the plan, one bracing piece
	PlanBracingCount int     // diagonals the plan actually drew
}

// Costs is the cost breakdown in the currency of the rates
type Costs struct {
	Material      float64 `json:"material" msgpack:"material"`
	Fabrication   float64 `json:"fabrication" msgpack:"fabrication"`
	Erection      float64 `json:"erection" msgpack:"erection"`
	Engineering   float64 `json:"engineering" msgpack:"engineering"`
	CompanyMargin float64 `json:"company_margin" msgpack:"company_margin"`
	Total         float64 `json:"total" msgpack:"total"`
	PerTonne      float64 `json:"per_tonne" msgpack:"per_tonne"`
}

// Estimate holds weights in tonnes and lengths in meters
type Estimate struct {
	ColumnWeight  float64 `json:"column_weight" msgpack:"column_weight"`
	RafterWeight  float64 `json:"rafter_weight" msgpack:"rafter_weight"`
	BracingWeight float64 `json:"bracing_weight" msgpack:"bracing_weight"`

	// Subtotal leaves purlins out
	Subtotal float64 `json:"subtotal" msgpack:"subtotal"`

	// PurlinRunLength is reported only, purlins carry no weight or cost
	PurlinRunLength float64 `json:"purlin_run_length" msgpack:"purlin_run_length"`

	BracingCount  int     `json:"bracing_count" msgpack:"bracing_count"`
	BracingLength float64 `json:"bracing_length" msgpack:"bracing_length"`

	// PlanBracingCount is the number of diagonals in the plan. It is not
	// used for cost; BracingConsistent tells whether it agrees.
	PlanBracingCount  int  `json:"plan_bracing_count" msgpack:"plan_bracing_count"`
	BracingConsistent bool `json:"bracing_consistent" msgpack:"bracing_consistent"`

	Costs    Costs  `json:"costs" msgpack:"costs"`
	Currency string `json:"currency" msgpack:"currency"`
}

// Compute runs the quantity and cost model. Nothing is rounded here; use
// Rounded for display values.
func Compute(in Input, r Rates) (*Estimate, error) {
	if in.Geometry == nil {
		return nil, frame.ErrInvalidParameter.Here().Append("no frame geometry")
	}
	if !(in.ColumnMassPerMeter > 0) || !(in.RafterMassPerMeter > 0) {
		return nil, frame.ErrInvalidParameter.Here().Appendf("section masses must be positive, got column %g, rafter %g",
			in.ColumnMassPerMeter, in.RafterMassPerMeter)
	}
	if !(in.PurlinBaySpacing > 0) {
		return nil, frame.ErrDivisionByZero.Here().Appendf("purlin bay spacing %g", in.PurlinBaySpacing)
	}

	p, g := in.Params, in.Geometry
	frames := float64(p.Portals) * 2

	e := &Estimate{
		ColumnWeight:     frames * p.EaveHeight * in.ColumnMassPerMeter * r.ColumnWaste / 1000,
		RafterWeight:     frames * g.RafterLength * in.RafterMassPerMeter * r.RafterWaste / 1000,
		PurlinRunLength:  float64(g.PurlinsPerSide+2) * 2 * p.Width,
		BracingCount:     int(math.Floor(g.RafterLength/in.PurlinBaySpacing)) * r.BracingPerBay,
		PlanBracingCount: in.PlanBracingCount,
		Currency:         r.Currency,
	}
	e.BracingConsistent = e.BracingCount == e.PlanBracingCount
	e.BracingLength = float64(e.BracingCount) * in.DiagonalLength
	e.BracingWeight = e.BracingLength * r.BracingMassPerMeter / 1000
	e.Subtotal = e.ColumnWeight + e.RafterWeight + e.BracingWeight

	if !(e.Subtotal > 0) {
		return nil, frame.ErrDivisionByZero.Here().Append("structure weighs nothing, no cost per tonne")
	}

	c := &e.Costs
	c.Material = r.Material * e.Subtotal
	c.Fabrication = r.Fabrication * e.Subtotal
	c.Erection = r.Erection * e.Subtotal
	c.Engineering = r.Engineering * e.Subtotal
	c.CompanyMargin = r.CompanyMargin * (c.Material + c.Fabrication + c.Erection + c.Engineering)
	c.Total = c.Material + c.Fabrication + c.Erection + c.Engineering + c.CompanyMargin
	c.PerTonne = c.Total / e.Subtotal

	return e, nil
}

// Rounded returns a copy with every mass, length and money value rounded to
// 2 decimals.
func (e Estimate) Rounded() Estimate {
	round := frame.Round2
	e.ColumnWeight = round(e.ColumnWeight)
	e.RafterWeight = round(e.RafterWeight)
	e.BracingWeight = round(e.BracingWeight)
	e.Subtotal = round(e.Subtotal)
	e.PurlinRunLength = round(e.PurlinRunLength)
	e.BracingLength = round(e.BracingLength)

	c := &e.Costs
	c.Material = round(c.Material)
	c.Fabrication = round(c.Fabrication)
	c.Erection = round(c.Erection)
	c.Engineering = round(c.Engineering)
	c.CompanyMargin = round(c.CompanyMargin)
	c.Total = round(c.Total)
	c.PerTonne = round(c.PerTonne)
	return e
}
