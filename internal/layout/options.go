package layout

import (
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/hashicorp/go-multierror"
)

// Options holds the drawing constants of both views, in meters
type Options struct {
	// BracingOverhang extends the far-end plan diagonals past the last frame
	BracingOverhang float64 `json:"bracing_overhang" yaml:"bracing_overhang"`

	// GussetDistance places the gusset corner along the rafter underside,
	// measured from the column/rafter intersection
	GussetDistance float64 `json:"gusset_distance" yaml:"gusset_distance"`

	GirtTickStart  float64 `json:"girt_tick_start" yaml:"girt_tick_start"` // height of the lowest girt tick
	GirtTickLength float64 `json:"girt_tick_length" yaml:"girt_tick_length"`

	PurlinTickInset  float64 `json:"purlin_tick_inset" yaml:"purlin_tick_inset"` // from eave and apex along the rafter
	PurlinTickLength float64 `json:"purlin_tick_length" yaml:"purlin_tick_length"`
}

// DefaultOptions returns the standard drawing constants
func DefaultOptions() Options {
	return Options{
		BracingOverhang:  0.5,
		GussetDistance:   2.3,
		GirtTickStart:    0.25,
		GirtTickLength:   0.16,
		PurlinTickInset:  0.2,
		PurlinTickLength: 0.18,
	}
}

func (o Options) Validate() error {
	var errs *multierror.Error
	checks := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"bracing overhang", o.BracingOverhang, false},
		{"gusset distance", o.GussetDistance, true},
		{"girt tick start", o.GirtTickStart, false},
		{"girt tick length", o.GirtTickLength, true},
		{"purlin tick inset", o.PurlinTickInset, false},
		{"purlin tick length", o.PurlinTickLength, true},
	}
	for _, c := range checks {
		switch {
		case c.positive && !(c.value > 0):
			errs = multierror.Append(errs, frame.ErrInvalidParameter.Here().Appendf("%s must be positive, got %g", c.name, c.value))
		case !c.positive && c.value < 0:
			errs = multierror.Append(errs, frame.ErrInvalidParameter.Here().Appendf("%s must not be negative, got %g", c.name, c.value))
		}
	}
	return errs.ErrorOrNil()
}
