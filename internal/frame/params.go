package frame

import (
	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidParameter marks a violated BuildingParameters invariant
	ErrInvalidParameter = merry.New("invalid building parameter")

	// ErrDivisionByZero marks a derived count of zero used as a divisor
	ErrDivisionByZero = merry.New("division by zero")
)

const (
	// MinPortals is the smallest frame count that still leaves two internal bays
	MinPortals = 4

	// MaxPortals bounds the building length; the plan grows with every frame
	MaxPortals = 50
)

// Params holds the inputs of a symmetric gable-roofed portal-frame building.
// The building runs along X in plan; the frame spans Width across Y.
// All lengths are in meters, the pitch in degrees.
type Params struct {
	Portals            int     `json:"portals" yaml:"portals" msgpack:"portals"`
	EndBaySpacing      float64 `json:"end_bay_spacing" yaml:"end_bay_spacing" msgpack:"end_bay_spacing"`
	InternalBaySpacing float64 `json:"internal_bay_spacing" yaml:"internal_bay_spacing" msgpack:"internal_bay_spacing"`
	Width              float64 `json:"width" yaml:"width" msgpack:"width"`
	EaveHeight         float64 `json:"eave_height" yaml:"eave_height" msgpack:"eave_height"`
	Pitch              float64 `json:"pitch" yaml:"pitch" msgpack:"pitch"`

	// Haunch (cartela) dimensions. HaunchHeight is measured below the
	// rafter/column intersection.
	HaunchLength float64 `json:"haunch_length" yaml:"haunch_length" msgpack:"haunch_length"`
	HaunchHeight float64 `json:"haunch_height" yaml:"haunch_height" msgpack:"haunch_height"`
}

// DefaultParams returns the building the calculator opens with
func DefaultParams() Params {
	return Params{
		Portals:            5,
		EndBaySpacing:      5.5,
		InternalBaySpacing: 6.0,
		Width:              18.0,
		EaveHeight:         4.0,
		Pitch:              12,
		HaunchLength:       2.0,
		HaunchHeight:       0.7,
	}
}

// Validate checks the invariants of the inputs and reports all violations
func (p Params) Validate() error {
	var errs *multierror.Error
	fail := func(format string, args ...interface{}) {
		errs = multierror.Append(errs, ErrInvalidParameter.Here().Appendf(format, args...))
	}

	if p.Portals < MinPortals {
		fail("portal count %d is less than %d", p.Portals, MinPortals)
	}
	if p.Portals > MaxPortals {
		fail("portal count %d is more than %d", p.Portals, MaxPortals)
	}
	positive := []struct {
		name  string
		value float64
	}{
		{"end bay spacing", p.EndBaySpacing},
		{"internal bay spacing", p.InternalBaySpacing},
		{"width", p.Width},
		{"eave height", p.EaveHeight},
		{"haunch length", p.HaunchLength},
		{"haunch height", p.HaunchHeight},
	}
	for _, f := range positive {
		if !(f.value > 0) {
			fail("%s must be positive, got %g", f.name, f.value)
		}
	}
	if !(p.Pitch > 0 && p.Pitch < 90) {
		fail("roof pitch must be strictly between 0 and 90 degrees, got %g", p.Pitch)
	}
	return errs.ErrorOrNil()
}

