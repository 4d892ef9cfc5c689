package boundary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var squareKnots = []complex128{0, 1, 1 + 1i, 1i}

func TestCornerSplineValidation(t *testing.T) {
	_, err := NewCornerSpline(squareKnots, []int{2, 1, 3})
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorContains(t, err, "strictly increasing")

	_, err = NewCornerSpline(squareKnots, []int{4})
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorContains(t, err, "valid set of indices")

	_, err = NewCornerSpline(squareKnots, []int{-1, 2})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewCornerSpline(squareKnots, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCornerSplineClosingKnotDropped(t *testing.T) {
	closed := append(append([]complex128{}, squareKnots...), 0)
	cs, err := NewCornerSpline(closed, []int{0, 1, 2, 3})
	require.NoError(t, err)
	diff(t, squareKnots, cs.Knots(), approxComplex(0))
}

func TestCornerSplineSquareParameterization(t *testing.T) {
	cs, err := NewCornerSpline(squareKnots, []int{0, 1, 2, 3})
	require.NoError(t, err)
	diff(t, []float64{0, 0.25, 0.5, 0.75}, cs.ArcParams(), approxFloat(1e-15))
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, cs.Breakpoints(), approxFloat(1e-15))

	// The spline interpolates its knots.
	for i, tt := range cs.ArcParams() {
		diff(t, squareKnots[i], cs.Point(tt), approxComplex(1e-12))
	}
}

func TestCornerSplineSquareCornerAngles(t *testing.T) {
	cs, err := NewCornerSpline(squareKnots, []int{0, 1, 2, 3})
	require.NoError(t, err)
	diff(t, []float64{0.5, 0.5, 0.5, 0.5}, cs.CornerAngles(), approxFloat(1e-14))
}

func TestCornerSplineSquareCornerTangents(t *testing.T) {
	cs, err := NewCornerSpline(squareKnots, []int{0, 1, 2, 3})
	require.NoError(t, err)

	// At a right-angle corner the reported tangent is the mean of the two
	// adjacent edge directions, i.e. the 45° bisector.
	want := []complex128{
		(5 - 5i) / 2,  // corner at 0: edges toward 1 and from 1i
		(5 + 5i) / 2,  // corner at 1
		(-5 + 5i) / 2, // corner at 1+1i
		(-5 - 5i) / 2, // corner at 1i
	}
	for i, b := range cs.Breakpoints()[:4] {
		diff(t, want[i], cs.Tangent(b), approxComplex(1e-13))
	}
	// t = 1 wraps onto the first corner.
	diff(t, want[0], cs.Tangent(1), approxComplex(1e-13))
}

func TestCornerSplineRotationInvariance(t *testing.T) {
	cs1, err := NewCornerSpline(squareKnots, []int{0, 1, 2, 3})
	require.NoError(t, err)
	rotated := []complex128{1, 1 + 1i, 1i, 0}
	cs2, err := NewCornerSpline(rotated, []int{0, 1, 2, 3})
	require.NoError(t, err)

	// Same geometry, parameter origin relabeled by one quarter.
	for _, tt := range []float64{0, 0.1, 0.33, 0.5, 0.71, 0.9} {
		diff(t, cs1.Point(tt+0.25), cs2.Point(tt), approxComplex(1e-12))
	}
}

func TestCornerSplineFirstCornerNormalization(t *testing.T) {
	cs, err := NewCornerSpline(squareKnots, []int{1, 2, 3})
	require.NoError(t, err)
	diff(t, []int{0, 1, 2}, cs.Corners())
	diff(t, []complex128{1, 1 + 1i, 1i, 0}, cs.Knots(), approxComplex(0))

	// Geometrically identical to building from the pre-rotated inputs.
	pre, err := NewCornerSpline([]complex128{1, 1 + 1i, 1i, 0}, []int{0, 1, 2})
	require.NoError(t, err)
	for _, tt := range []float64{0, 0.2, 0.5, 0.8} {
		diff(t, pre.Point(tt), cs.Point(tt), approxComplex(1e-14))
	}
}

// octagonKnots traces the unit square with edge midpoints as smooth knots.
var octagonKnots = []complex128{0, 0.5, 1, 1 + 0.5i, 1 + 1i, 0.5 + 1i, 1i, 0.5i}

func TestCornerSplineTangentContinuity(t *testing.T) {
	cs, err := NewCornerSpline(octagonKnots, []int{0, 2, 4, 6})
	require.NoError(t, err)

	const h = 1e-7
	// At interior (non-corner) knots the fit is C¹ and C².
	for _, knot := range []int{1, 3, 5, 7} {
		tt := cs.ArcParams()[knot]
		left := cs.Tangent(tt - h)
		right := cs.Tangent(tt + h)
		diff(t, left, right, approxComplex(1e-4))

		d2l := cs.SecondDerivative(tt - h)
		d2r := cs.SecondDerivative(tt + h)
		diff(t, d2l, d2r, approxComplex(1e-3))
	}
}

func TestCornerSplineTangentMatchesFiniteDifference(t *testing.T) {
	cs, err := NewCornerSpline(octagonKnots, []int{0, 2, 4, 6})
	require.NoError(t, err)
	const h = 1e-6
	for _, tt := range []float64{0.1, 0.3, 0.6, 0.85} {
		fd := (cs.Point(tt+h) - cs.Point(tt-h)) / complex(2*h, 0)
		diff(t, fd, cs.Tangent(tt), approxComplex(1e-5))
	}
}

func TestCornerSplineTransforms(t *testing.T) {
	cs, err := NewCornerSpline(squareKnots, []int{0, 1, 2, 3})
	require.NoError(t, err)

	tr := cs.Translate(2 - 1i)
	sc := cs.Scale(3i)
	for _, tt := range []float64{0, 0.15, 0.4, 0.65, 0.9} {
		diff(t, cs.Point(tt)+(2-1i), tr.Point(tt), approxComplex(1e-12))
		diff(t, 3i*cs.Point(tt), sc.Point(tt), approxComplex(1e-12))
		diff(t, 3i*cs.Tangent(tt), sc.Tangent(tt), approxComplex(1e-10))
	}
}
