package boundary

import (
	"errors"
	"math"
)

// machEps is the double-precision machine epsilon, 2⁻⁵².
const machEps = 2.220446049250313e-16

// ErrInvalidArgument is wrapped by all constructor failures: out-of-range
// eccentricity, surplus arguments, malformed corner indices.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUndefined is wrapped by operations that require state the curve was not
// constructed with, such as [Ellipse.ThetaExact] on an ellipse without a
// defined eccentricity.
var ErrUndefined = errors.New("undefined operation")

// Curve describes a parameterized simple closed curve in the complex plane.
//
// Point and Tangent must be periodic with period ParamLength and total over
// all real t: implementations wrap t with [Normalize] before evaluating.
type Curve interface {
	// Point evaluates the curve position at parameter t.
	Point(t float64) complex128
	// Tangent evaluates the derivative of the position with respect to t.
	Tangent(t float64) complex128
	// ParamLength returns the length of the parameter domain [0, L).
	ParamLength() float64
}

// Normalize maps any real t into [0, length) by modulo reduction.
func Normalize(t, length float64) float64 {
	t = math.Mod(t, length)
	if t < 0 {
		t += length
	}
	if t >= length {
		// A tiny negative t can round back up to length when shifted.
		t = 0
	}
	return t
}

// Points evaluates c at every parameter in ts.
//
// Elements are independent of one another, so callers holding very large
// parameter vectors are free to shard the work themselves.
func Points(c Curve, ts []float64) []complex128 {
	out := make([]complex128, len(ts))
	for i, t := range ts {
		out[i] = c.Point(t)
	}
	return out
}

// Tangents evaluates the tangent of c at every parameter in ts.
func Tangents(c Curve, ts []float64) []complex128 {
	out := make([]complex128, len(ts))
	for i, t := range ts {
		out[i] = c.Tangent(t)
	}
	return out
}

// Translate returns a curve whose points are those of c shifted by dz. The
// tangent is unchanged.
func Translate(c Curve, dz complex128) Curve {
	return transformed(c, 1, dz)
}

// Scale returns a curve whose points and tangents are those of c multiplied
// by f. A non-real f rotates the curve about the origin as well.
func Scale(c Curve, f complex128) Curve {
	return transformed(c, f, 0)
}

func transformed(c Curve, mul, add complex128) Curve {
	// Stacked transforms compose into a single wrapper.
	if ac, ok := c.(affineCurve); ok {
		return affineCurve{ac.inner, mul * ac.mul, mul*ac.add + add}
	}
	return affineCurve{c, mul, add}
}

// affineCurve evaluates mul·inner(t) + add.
type affineCurve struct {
	inner Curve
	mul   complex128
	add   complex128
}

func (ac affineCurve) Point(t float64) complex128 {
	return ac.mul*ac.inner.Point(t) + ac.add
}

func (ac affineCurve) Tangent(t float64) complex128 {
	return ac.mul * ac.inner.Tangent(t)
}

func (ac affineCurve) ParamLength() float64 {
	return ac.inner.ParamLength()
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
