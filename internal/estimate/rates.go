package estimate

import (
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/hashicorp/go-multierror"
)

// Rates is the cost model. Unit rates are per tonne of structure.
type Rates struct {
	ColumnWaste float64 `json:"column_waste" yaml:"column_waste"` // connections and offcuts on columns
	RafterWaste float64 `json:"rafter_waste" yaml:"rafter_waste"` // cut rafters waste more

	BracingMassPerMeter float64 `json:"bracing_mass_per_meter" yaml:"bracing_mass_per_meter"` // RD24 rod, kg/m
	BracingPerBay       int     `json:"bracing_per_bay" yaml:"bracing_per_bay"`

	Material      float64 `json:"material" yaml:"material"`
	Fabrication   float64 `json:"fabrication" yaml:"fabrication"`
	Erection      float64 `json:"erection" yaml:"erection"`
	Engineering   float64 `json:"engineering" yaml:"engineering"`
	CompanyMargin float64 `json:"company_margin" yaml:"company_margin"` // fraction of the four costs above

	Currency string `json:"currency" yaml:"currency"`
}

// DefaultRates returns the prices the calculator was calibrated with
func DefaultRates() Rates {
	return Rates{
		ColumnWaste:         1.12,
		RafterWaste:         1.25,
		BracingMassPerMeter: 3.55,
		BracingPerBay:       8,
		Material:            1200,
		Fabrication:         900,
		Erection:            400,
		Engineering:         150,
		CompanyMargin:       0.10,
		Currency:            "EUR",
	}
}

func (r Rates) Validate() error {
	var errs *multierror.Error
	fail := func(format string, args ...interface{}) {
		errs = multierror.Append(errs, frame.ErrInvalidParameter.Here().Appendf(format, args...))
	}

	if r.ColumnWaste < 1 || r.RafterWaste < 1 {
		fail("waste factors must be at least 1, got column %g, rafter %g", r.ColumnWaste, r.RafterWaste)
	}
	if !(r.BracingMassPerMeter > 0) {
		fail("bracing mass must be positive, got %g", r.BracingMassPerMeter)
	}
	if r.BracingPerBay < 1 {
		fail("bracing pieces per bay must be at least 1, got %d", r.BracingPerBay)
	}
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"material rate", r.Material},
		{"fabrication rate", r.Fabrication},
		{"erection rate", r.Erection},
		{"engineering rate", r.Engineering},
		{"company margin", r.CompanyMargin},
	} {
		if c.value < 0 {
			fail("%s must not be negative, got %g", c.name, c.value)
		}
	}
	return errs.ErrorOrNil()
}
