package estimate

import (
	"math"
	"testing"

	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(t *testing.T, columnMass, rafterMass float64) Input {
	t.Helper()
	p := frame.DefaultParams()
	g, err := frame.Derive(p, frame.DefaultOptions())
	require.NoError(t, err)
	d, err := g.PurlinBaySpacing()
	require.NoError(t, err)
	return Input{
		Params:             p,
		Geometry:           g,
		ColumnMassPerMeter: columnMass,
		RafterMassPerMeter: rafterMass,
		PurlinBaySpacing:   d,
		DiagonalLength:     math.Hypot(6.0, d),
		PlanBracingCount:   48,
	}
}

func TestColumnWeight(t *testing.T) {
	e, err := Compute(input(t, 30, 30), DefaultRates())
	require.NoError(t, err)
	// 5 * 2 * 4.0 * 30.0 * 1.12 / 1000
	assert.InDelta(t, 1.344, e.ColumnWeight, 1e-12)
	// 5 * 2 * 9.20 * 30.0 * 1.25 / 1000
	assert.InDelta(t, 3.45, e.RafterWeight, 1e-12)
}

func TestDefaultBuilding(t *testing.T) {
	in := input(t, 57.1, 57.1)
	e, err := Compute(in, DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, 252.0, e.PurlinRunLength) // (5+2)*2*18
	// floor(9.20 / 1.48) * 8
	assert.Equal(t, 48, e.BracingCount)
	assert.Equal(t, 48, e.PlanBracingCount)
	assert.True(t, e.BracingConsistent)
	assert.InDelta(t, 48*in.DiagonalLength, e.BracingLength, 1e-9)
	assert.InDelta(t, e.BracingLength*3.55/1000, e.BracingWeight, 1e-12)
	assert.InDelta(t, e.ColumnWeight+e.RafterWeight+e.BracingWeight, e.Subtotal, 1e-12)
	assert.Equal(t, "EUR", e.Currency)
}

func TestCosts(t *testing.T) {
	e, err := Compute(input(t, 57.1, 57.1), DefaultRates())
	require.NoError(t, err)
	c := e.Costs

	assert.InDelta(t, 1200*e.Subtotal, c.Material, 1e-9)
	assert.InDelta(t, 900*e.Subtotal, c.Fabrication, 1e-9)
	assert.InDelta(t, 400*e.Subtotal, c.Erection, 1e-9)
	assert.InDelta(t, 150*e.Subtotal, c.Engineering, 1e-9)
	assert.InDelta(t, 265*e.Subtotal, c.CompanyMargin, 1e-9)
	assert.InDelta(t, c.Material+c.Fabrication+c.Erection+c.Engineering+c.CompanyMargin, c.Total, 1e-9)
	// 2650 per tonne plus 10 %
	assert.InDelta(t, 2915, c.PerTonne, 1e-9)
}

func TestCostsRoundOnlyForDisplay(t *testing.T) {
	e, err := Compute(input(t, 57.1, 57.1), DefaultRates())
	require.NoError(t, err)

	// priced from the exact subtotal, margin kept to the cent
	exact := e.ColumnWeight + e.RafterWeight + e.BracingWeight
	assert.Equal(t, exact, e.Subtotal)
	assert.InDelta(t, 0.10*2650*exact, e.Costs.CompanyMargin, 1e-9)
	assert.InDelta(t, 2915*exact, e.Costs.Total, 1e-9)

	r := e.Rounded()
	assert.InDelta(t, 2915*exact, r.Costs.Total, 0.005)
	assert.InDelta(t, 0.10*2650*exact, r.Costs.CompanyMargin, 0.005)
	assert.Equal(t, 2915.0, r.Costs.PerTonne)
}

func TestInconsistentBracingIsFlagged(t *testing.T) {
	in := input(t, 57.1, 57.1)
	in.PlanBracingCount = 40
	e, err := Compute(in, DefaultRates())
	require.NoError(t, err)
	assert.False(t, e.BracingConsistent)
	assert.Equal(t, 48, e.BracingCount, "the formula count prices the bracing")
}

func TestRounded(t *testing.T) {
	e, err := Compute(input(t, 57.1, 57.1), DefaultRates())
	require.NoError(t, err)
	r := e.Rounded()

	for _, v := range []float64{
		r.ColumnWeight, r.RafterWeight, r.BracingWeight, r.Subtotal, r.BracingLength,
		r.Costs.Material, r.Costs.Total, r.Costs.PerTonne,
	} {
		assert.Equal(t, v, math.Round(v*100)/100)
	}
	assert.InDelta(t, e.Subtotal, r.Subtotal, 0.005)
	assert.Equal(t, e.BracingCount, r.BracingCount)
	// the receiver is left untouched
	assert.NotEqual(t, e.Costs.Total, r.Costs.Total)
}

func TestComputeErrors(t *testing.T) {
	in := input(t, 57.1, 57.1)
	in.PurlinBaySpacing = 0
	_, err := Compute(in, DefaultRates())
	assert.True(t, merry.Is(err, frame.ErrDivisionByZero))

	in = input(t, 0, 57.1)
	_, err = Compute(in, DefaultRates())
	assert.True(t, merry.Is(err, frame.ErrInvalidParameter))

	in = input(t, 57.1, 57.1)
	in.Geometry = nil
	_, err = Compute(in, DefaultRates())
	assert.True(t, merry.Is(err, frame.ErrInvalidParameter))
}

func TestComputeIsDeterministic(t *testing.T) {
	a, err := Compute(input(t, 57.1, 57.1), DefaultRates())
	require.NoError(t, err)
	b, err := Compute(input(t, 57.1, 57.1), DefaultRates())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRatesValidate(t *testing.T) {
	assert.NoError(t, DefaultRates().Validate())

	r := DefaultRates()
	r.ColumnWaste = 0.9
	r.BracingPerBay = 0
	r.Material = -1
	assert.Error(t, r.Validate())
}
