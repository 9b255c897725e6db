package vecmath

// Transform maps a point to a point. Mirrored and repeated geometry is built
// once in a canonical position and then mapped with a Transform.
type Transform func(Vec) Vec

// Identity leaves points unchanged
func Identity() Transform {
	return func(p Vec) Vec { return p }
}

// Translate shifts points by d
func Translate(d Vec) Transform {
	return func(p Vec) Vec { return p.Add(d) }
}

// MirrorX reflects points across the vertical line x = axis
func MirrorX(axis float64) Transform {
	return func(p Vec) Vec { return Vec{X: 2*axis - p.X, Y: p.Y} }
}

// MirrorY reflects points across the horizontal line y = axis
func MirrorY(axis float64) Transform {
	return func(p Vec) Vec { return Vec{X: p.X, Y: 2*axis - p.Y} }
}

// Then returns the transform applying t first and next second
func (t Transform) Then(next Transform) Transform {
	return func(p Vec) Vec { return next(t(p)) }
}
