package boundary

import (
	"math"
	"math/cmplx"
)

// Arclen returns the length of one full period of c, accurate to the given
// accuracy (subject to roundoff for ridiculously low values).
//
// The tangent magnitude is integrated by Legendre-Gauss quadrature, with
// adaptive interval halving until the 8- and 16-point estimates agree.
func Arclen(c Curve, accuracy float64) float64 {
	return arclenRange(c, 0, c.ParamLength(), accuracy)
}

func arclenRange(c Curve, t0, t1, accuracy float64) float64 {
	return arclenRec(c, t0, t1, accuracy, 0)
}

func arclenRec(c Curve, t0, t1, accuracy float64, depth int) float64 {
	est8 := arclenQuadrature(c, t0, t1, gaussLegendreCoeffs8[:])
	est16 := arclenQuadrature(c, t0, t1, gaussLegendreCoeffs16[:])
	if math.Abs(est16-est8) <= accuracy || depth >= 16 {
		return est16
	}
	tm := 0.5 * (t0 + t1)
	return arclenRec(c, t0, tm, 0.5*accuracy, depth+1) +
		arclenRec(c, tm, t1, 0.5*accuracy, depth+1)
}

func arclenQuadrature(c Curve, t0, t1 float64, coeffs [][2]float64) float64 {
	h := 0.5 * (t1 - t0)
	mid := 0.5 * (t0 + t1)
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		sum += wi * cmplx.Abs(c.Tangent(mid+h*xi))
	}
	return sum * h
}

// SolveForArclen solves for the parameter at which the arc length measured
// from t = 0 reaches arclen. Inputs at or beyond the full boundary length
// clamp to the ends of the parameter domain.
//
// This uses the ITP method as provided by [SolveITP], which is as robust as
// bisection but typically converges faster.
func SolveForArclen(c Curve, arclen float64, accuracy float64) float64 {
	if arclen <= 0 {
		return 0
	}
	total := Arclen(c, accuracy)
	length := c.ParamLength()
	if arclen >= total {
		return length
	}
	f := func(t float64) float64 {
		return arclenRange(c, 0, t, accuracy) - arclen
	}
	epsilon := accuracy / total * length
	return SolveITP(f, 0, length, epsilon, 1, 0.2/length, -arclen, total-arclen)
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16 = [...][2]float64{
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, -0.2816035507792589},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, -0.4580167776572274},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, -0.6178762444026438},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, -0.7554044083550030},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, -0.8656312023878318},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, -0.9445750230732326},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, -0.9894009349916499},
	{0.0271524594117541, 0.9894009349916499},
}
