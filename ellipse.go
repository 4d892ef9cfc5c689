package boundary

import (
	"fmt"
	"math"
	"math/cmplx"

	"go.uber.org/zap"
)

// axisSumTolerance bounds |a+b−2| for the eccentricity parameter to be
// back-derived as a−1. It is ten times the spacing of floats around 2.
const axisSumTolerance = 10 * 2 * machEps

// maxAccurateEccentricity is the largest eccentricity for which the
// [Ellipse.ThetaExact] series is guaranteed full precision.
const maxAccurateEccentricity = 0.95

const (
	thetaBatchSize  = 20
	thetaMaxBatches = 60
)

// Ellipse is the closed-form ellipse curve
//
//	center + e^(i·rotation)·(a·cos 2πt + i·b·sin 2πt)
//
// with semi-axes a and b. When a+b is numerically 2, the ellipse belongs to
// the one-parameter family a = 1+e, b = 1−e and carries the eccentricity-like
// shape parameter e needed by [Ellipse.ThetaExact].
type Ellipse struct {
	a        float64
	b        float64
	rotation float64
	center   complex128
	ecc      option[float64]
}

var _ Curve = Ellipse{}

// NewEllipse returns the ellipse with the given semi-axes, optionally rotated
// by an angle in radians. Supplying more than one rotation angle is an error.
func NewEllipse(a, b float64, rotation ...float64) (Ellipse, error) {
	if len(rotation) > 1 {
		return Ellipse{}, fmt.Errorf("%w: expected at most one rotation angle, got %d", ErrInvalidArgument, len(rotation))
	}
	var r float64
	if len(rotation) == 1 {
		r = rotation[0]
	}
	return newEllipse(a, b, r, 0), nil
}

// NewEllipseFromEccentricity returns the ellipse with semi-axes a = 1+e and
// b = 1−e. The eccentricity parameter e must lie in [0, 1).
func NewEllipseFromEccentricity(e float64) (Ellipse, error) {
	if !(e >= 0 && e < 1) {
		return Ellipse{}, fmt.Errorf("%w: eccentricity %v outside [0, 1)", ErrInvalidArgument, e)
	}
	return newEllipse(1+e, 1-e, 0, 0), nil
}

func newEllipse(a, b, rotation float64, center complex128) Ellipse {
	// The curve is symmetric in the signs of the semi-axes, so negative
	// values are folded away here.
	el := Ellipse{a: math.Abs(a), b: math.Abs(b), rotation: rotation, center: center}
	if e := el.a - 1; math.Abs(el.a+el.b-2) <= axisSumTolerance && e >= 0 && e < 1 {
		el.ecc.set(e)
	}
	return el
}

// SemiAxes returns the semi-axes a and b.
func (e Ellipse) SemiAxes() (float64, float64) {
	return e.a, e.b
}

// Rotation returns the rotation angle in radians.
func (e Ellipse) Rotation() float64 {
	return e.rotation
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() complex128 {
	return e.center
}

// Eccentricity returns the derived shape parameter e and whether it is
// defined. It is defined only when the semi-axes satisfy a+b = 2, in which
// case a = 1+e and b = 1−e.
func (e Ellipse) Eccentricity() (float64, bool) {
	return e.ecc.value, e.ecc.isSet
}

// ParamLength implements [Curve].
func (e Ellipse) ParamLength() float64 {
	return 1
}

// Point implements [Curve].
func (e Ellipse) Point(t float64) complex128 {
	t = Normalize(t, 1)
	sin, cos := math.Sincos(2 * math.Pi * t)
	z := complex(e.a*cos, e.b*sin)
	if e.rotation != 0 {
		z *= cmplx.Rect(1, e.rotation)
	}
	return e.center + z
}

// Tangent implements [Curve].
func (e Ellipse) Tangent(t float64) complex128 {
	t = Normalize(t, 1)
	sin, cos := math.Sincos(2 * math.Pi * t)
	z := complex(-e.a*sin, e.b*cos) * complex(2*math.Pi, 0)
	if e.rotation != 0 {
		z *= cmplx.Rect(1, e.rotation)
	}
	return z
}

// Translate returns a copy of the ellipse with its center shifted by dz.
func (e Ellipse) Translate(dz complex128) Ellipse {
	return newEllipse(e.a, e.b, e.rotation, e.center+dz)
}

// Scale returns the ellipse multiplied by f. The magnitude of f scales the
// semi-axes and its phase is absorbed into the rotation, so the result's
// Point agrees with Scale(e, f) at every parameter.
func (e Ellipse) Scale(f complex128) Ellipse {
	r := cmplx.Abs(f)
	return newEllipse(e.a*r, e.b*r, e.rotation+cmplx.Phase(f), e.center*f)
}

// ThetaExact computes the boundary correspondence angle of the conformal map
// from this ellipse to the unit circle at each parameter in ts, via the
// trigonometric series
//
//	θ(t) = 2πt + 2·Σₘ (−1)ᵐ · eᵐ/((1+e²ᵐ)·m) · sin(2m·2πt).
//
// Terms are summed in batches of 20 for up to 60 batches, stopping early once
// the series-term envelope is below machine epsilon relative to the
// accumulated angle at every parameter.
//
// The ellipse must carry an eccentricity parameter (see [Ellipse.Eccentricity]),
// otherwise an error wrapping [ErrUndefined] is returned. For eccentricities
// above 0.95 accuracy degrades; a warning is logged (see [SetLogger]) and the
// computation proceeds.
func (e Ellipse) ThetaExact(ts []float64) ([]float64, error) {
	if !e.ecc.isSet {
		return nil, fmt.Errorf("%w: must define curve with eccentricity parameter", ErrUndefined)
	}
	ecc := e.ecc.unwrap()
	if ecc > maxAccurateEccentricity {
		logger.Warn("theta series loses accuracy for eccentricity above 0.95",
			zap.Float64("eccentricity", ecc))
	}

	theta := make([]float64, len(ts))
	for i, t := range ts {
		theta[i] = 2 * math.Pi * t
	}

	pm := 1.0 // eccᵐ
	for batch := 0; batch < thetaMaxBatches; batch++ {
		var env float64
		for k := 0; k < thetaBatchSize; k++ {
			m := batch*thetaBatchSize + k + 1
			pm *= ecc
			f := pm / ((1 + pm*pm) * float64(m))
			env = f
			if m%2 == 1 {
				f = -f
			}
			for i, t := range ts {
				theta[i] += 2 * f * math.Sin(2*float64(m)*2*math.Pi*t)
			}
		}
		// Later batches refine earlier partial sums, so the batch loop is
		// sequential; the same schedule applies uniformly across all ts.
		converged := true
		for i := range theta {
			if env > machEps*math.Abs(theta[i]) {
				converged = false
				break
			}
		}
		if converged {
			break
		}
	}
	return theta, nil
}
