package vecmath

import (
	"math"

	"github.com/ansel1/merry"
)

// ErrDegenerateVector is returned when a zero-length vector has to be
// normalised, e.g. a direction taken between two identical points.
var ErrDegenerateVector = merry.New("degenerate vector")

// Vec is a 2D point or direction in drawing units (m)
type Vec struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// V is shorthand for Vec{X: x, Y: y}
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Norm is the Euclidean length of v
func (v Vec) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance between two points
func Distance(a, b Vec) float64 {
	return b.Sub(a).Norm()
}

// Radians converts an angle in degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Rotate rotates v counter-clockwise by the given angle in degrees using
// the standard rotation matrix
//
//	| cos θ  -sin θ |
//	| sin θ   cos θ |
func Rotate(v Vec, degrees float64) Vec {
	sin, cos := math.Sincos(Radians(degrees))
	return Vec{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Unit returns v scaled to length 1
func Unit(v Vec) (Vec, error) {
	n := v.Norm()
	if n == 0 {
		return Vec{}, ErrDegenerateVector.Here()
	}
	return v.Scale(1 / n), nil
}

// PointAtDistance returns the point reached by moving distance from p1
// towards p2. The result is not clamped to the segment: a distance larger
// than |p2-p1| extrapolates past p2, a negative one goes backwards.
func PointAtDistance(p1, p2 Vec, distance float64) (Vec, error) {
	u, err := Unit(p2.Sub(p1))
	if err != nil {
		return Vec{}, merry.Prependf(err, "point at distance %g from %v towards %v", distance, p1, p2)
	}
	return p1.Add(u.Scale(distance)), nil
}

// Offset returns p + unit(direction) * length
func Offset(p, direction Vec, length float64) (Vec, error) {
	u, err := Unit(direction)
	if err != nil {
		return Vec{}, merry.Prependf(err, "offset of %v", p)
	}
	return p.Add(u.Scale(length)), nil
}
