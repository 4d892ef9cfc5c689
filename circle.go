package boundary

import (
	"math"
	"math/cmplx"
)

// Circle is the circle center + radius·e^(2πit), traversed anticlockwise at
// uniform angular speed. The unit circle, Circle{Radius: 1}, is the canonical
// target domain of the conformal maps this package supplies boundary data
// for.
type Circle struct {
	Center complex128
	Radius float64
}

var _ Curve = Circle{}

// ParamLength implements [Curve].
func (c Circle) ParamLength() float64 {
	return 1
}

// Point implements [Curve].
func (c Circle) Point(t float64) complex128 {
	t = Normalize(t, 1)
	sin, cos := math.Sincos(2 * math.Pi * t)
	return c.Center + complex(c.Radius, 0)*complex(cos, sin)
}

// Tangent implements [Curve].
func (c Circle) Tangent(t float64) complex128 {
	t = Normalize(t, 1)
	sin, cos := math.Sincos(2 * math.Pi * t)
	return complex(c.Radius, 0) * complex(-sin, cos) * complex(2*math.Pi, 0)
}

// Translate returns a copy of the circle with its center shifted by dz.
func (c Circle) Translate(dz complex128) Circle {
	return Circle{Center: c.Center + dz, Radius: c.Radius}
}

// Scale returns the circle multiplied by f. The phase of f shifts where the
// parameter origin lands, which a circle cannot express, so the result is the
// equivalent [Ellipse] with equal semi-axes and rotation arg(f).
func (c Circle) Scale(f complex128) Ellipse {
	r := c.Radius * cmplx.Abs(f)
	return newEllipse(r, r, cmplx.Phase(f), c.Center*f)
}
