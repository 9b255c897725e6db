package vecmath

import (
	"math"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func assertVec(t *testing.T, want, got Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name    string
		v       Vec
		degrees float64
		want    Vec
	}{
		{"quarter turn", V(1, 0), 90, V(0, 1)},
		{"negative quarter turn", V(1, 0), -90, V(0, -1)},
		{"half turn", V(2, 3), 180, V(-2, -3)},
		{"minus half turn", V(2, 3), -180, V(-2, -3)},
		{"roof pitch", V(1, 0), 12, V(math.Cos(12*math.Pi/180), math.Sin(12*math.Pi/180))},
		{"zero", V(4, -5), 0, V(4, -5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, Rotate(tt.v, tt.degrees))
		})
	}
}

func TestRotateRoundTrip(t *testing.T) {
	vs := []Vec{V(1, 0), V(-3.5, 2.25), V(9.2, 1.913), V(0, 0)}
	for _, v := range vs {
		assertVec(t, v, Rotate(Rotate(v, 90), -90))
		assertVec(t, v, Rotate(v, 360))
		for deg := -180.0; deg <= 180; deg += 15 {
			back := Rotate(Rotate(v, deg), -deg)
			assertVec(t, v, back)
			assert.InDelta(t, v.Norm(), Rotate(v, deg).Norm(), tol)
		}
	}
}

func TestUnit(t *testing.T) {
	u, err := Unit(V(3, 4))
	require.NoError(t, err)
	assertVec(t, V(0.6, 0.8), u)

	_, err = Unit(V(0, 0))
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrDegenerateVector))
}

func TestPointAtDistance(t *testing.T) {
	p1, p2 := V(0.3, 4.6), V(8.9, 6.4)

	at0, err := PointAtDistance(p1, p2, 0)
	require.NoError(t, err)
	assertVec(t, p1, at0)

	atEnd, err := PointAtDistance(p1, p2, Distance(p1, p2))
	require.NoError(t, err)
	assertVec(t, p2, atEnd)

	// no clamping: twice the length lands as far beyond p2 as p2 is from p1
	beyond, err := PointAtDistance(p1, p2, 2*Distance(p1, p2))
	require.NoError(t, err)
	assertVec(t, p2.Add(p2.Sub(p1)), beyond)

	_, err = PointAtDistance(p1, p1, 1)
	assert.True(t, merry.Is(err, ErrDegenerateVector))
}

func TestOffset(t *testing.T) {
	p, err := Offset(V(1, 1), V(0, 10), 0.36)
	require.NoError(t, err)
	assertVec(t, V(1, 1.36), p)

	_, err = Offset(V(1, 1), Vec{}, 1)
	assert.True(t, merry.Is(err, ErrDegenerateVector))
}

func TestTransforms(t *testing.T) {
	p := V(2, 3)
	assertVec(t, V(16, 3), MirrorX(9)(p))
	assertVec(t, V(2, 15), MirrorY(9)(p))
	assertVec(t, V(2.5, 1), Translate(V(0.5, -2))(p))
	assertVec(t, p, MirrorX(9).Then(MirrorX(9))(p))
	assertVec(t, p, Identity()(p))

	// mirroring a +90° rotation equals the -90° rotation of the mirrored vector
	d := V(0.97, 0.21)
	m := MirrorX(0)
	assertVec(t, m(Rotate(d, 90)), Rotate(m(d), -90))
}
