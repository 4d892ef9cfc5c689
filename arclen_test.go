package boundary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArclenCircle(t *testing.T) {
	diff(t, 2*math.Pi, Arclen(Circle{Radius: 1}, 1e-10), approxFloat(1e-10))
	diff(t, 6*math.Pi, Arclen(Circle{Center: 4i, Radius: 3}, 1e-10), approxFloat(1e-9))
}

func TestArclenEllipse(t *testing.T) {
	el, err := NewEllipse(2, 1)
	require.NoError(t, err)
	// Circumference of the 2-by-1 ellipse.
	diff(t, 9.688448220547675, Arclen(el, 1e-10), approxFloat(1e-8))
}

func TestArclenScaledCurve(t *testing.T) {
	c := Circle{Radius: 1}
	diff(t, 4*math.Pi, Arclen(Scale(c, 2), 1e-10), approxFloat(1e-9))
	diff(t, 2*math.Pi, Arclen(Translate(c, 5-2i), 1e-10), approxFloat(1e-9))
}

func TestArclenCornerSpline(t *testing.T) {
	cs, err := NewCornerSpline(squareKnots, []int{0, 1, 2, 3})
	require.NoError(t, err)
	// The spline bulges beyond the knot polygon, so its length exceeds the
	// square's perimeter.
	length := Arclen(cs, 1e-8)
	if length <= 4 || length >= 8 {
		t.Errorf("got spline boundary length %v, expected a value in (4, 8)", length)
	}
}

func TestSolveForArclen(t *testing.T) {
	c := Circle{Radius: 1}
	diff(t, 0.5, SolveForArclen(c, math.Pi, 1e-9), approxFloat(1e-6))
	diff(t, 0.25, SolveForArclen(c, math.Pi/2, 1e-9), approxFloat(1e-6))
	diff(t, 0.0, SolveForArclen(c, -1, 1e-9), approxFloat(0))
	diff(t, 1.0, SolveForArclen(c, 100, 1e-9), approxFloat(0))
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2 }
	root := SolveITP(f, 0, 2, 1e-12, 1, 0.1, f(0), f(2))
	diff(t, math.Cbrt(2), root, approxFloat(1e-9))
}
