package boundary

import (
	"fmt"
	"slices"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// piecewisePoly is a real piecewise polynomial. On [breaks[i], breaks[i+1])
// the value is coeffs[i], highest degree first, evaluated by Horner's rule in
// s − breaks[i]. Arguments outside the break range are clamped to the
// outermost pieces.
type piecewisePoly struct {
	breaks []float64
	coeffs [][]float64
}

// pieceIndex returns i such that breaks[i] ≤ s < breaks[i+1].
func (p piecewisePoly) pieceIndex(s float64) int {
	i := sort.SearchFloat64s(p.breaks, s)
	if i == len(p.breaks) || p.breaks[i] != s {
		i--
	}
	if i < 0 {
		i = 0
	}
	if i > len(p.coeffs)-1 {
		i = len(p.coeffs) - 1
	}
	return i
}

func (p piecewisePoly) eval(s float64) float64 {
	i := p.pieceIndex(s)
	ds := s - p.breaks[i]
	c := p.coeffs[i]
	v := c[0]
	for _, ck := range c[1:] {
		v = v*ds + ck
	}
	return v
}

// deriv differentiates each piece's coefficients in place of re-fitting, so a
// cubic piecewise polynomial yields a quadratic one, then a linear one.
func (p piecewisePoly) deriv() piecewisePoly {
	coeffs := make([][]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		deg := len(c) - 1
		d := make([]float64, deg)
		for j := 0; j < deg; j++ {
			d[j] = c[j] * float64(deg-j)
		}
		coeffs[i] = d
	}
	return piecewisePoly{breaks: p.breaks, coeffs: coeffs}
}

// combinePoly returns a·p + b·q + c for piecewise polynomials sharing breaks
// and degrees.
func combinePoly(a float64, p piecewisePoly, b float64, q piecewisePoly, c float64) piecewisePoly {
	coeffs := make([][]float64, len(p.coeffs))
	for i := range coeffs {
		pc, qc := p.coeffs[i], q.coeffs[i]
		cc := make([]float64, len(pc))
		for j := range cc {
			cc[j] = a*pc[j] + b*qc[j]
		}
		cc[len(cc)-1] += c
		coeffs[i] = cc
	}
	return piecewisePoly{breaks: p.breaks, coeffs: coeffs}
}

// fitClampedCubic interpolates (xs[i], ys[i]) with a cubic spline whose first
// derivative is pinned to d0 at xs[0] and dn at xs[len(xs)−1]. The xs must be
// strictly increasing and len(xs) ≥ 2.
//
// The spline is found in moment form: the knot second derivatives Mᵢ solve a
// tridiagonal system whose first and last rows encode the clamped end
// conditions.
func fitClampedCubic(xs, ys []float64, d0, dn float64) (piecewisePoly, error) {
	n := len(xs) - 1
	h := make([]float64, n)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		if h[i] <= 0 {
			return piecewisePoly{}, fmt.Errorf("%w: spline abscissae must be strictly increasing", ErrInvalidArgument)
		}
	}

	dl := make([]float64, n)
	d := make([]float64, n+1)
	du := make([]float64, n)
	rhs := make([]float64, n+1)
	d[0] = 2 * h[0]
	du[0] = h[0]
	rhs[0] = 6 * ((ys[1]-ys[0])/h[0] - d0)
	for i := 1; i < n; i++ {
		dl[i-1] = h[i-1]
		d[i] = 2 * (h[i-1] + h[i])
		du[i] = h[i]
		rhs[i] = 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}
	dl[n-1] = h[n-1]
	d[n] = 2 * h[n-1]
	rhs[n] = 6 * (dn - (ys[n]-ys[n-1])/h[n-1])

	var m mat.VecDense
	a := mat.NewTridiag(n+1, dl, d, du)
	if err := a.SolveVecTo(&m, false, mat.NewVecDense(n+1, rhs)); err != nil {
		return piecewisePoly{}, fmt.Errorf("solving spline moment system: %w", err)
	}

	coeffs := make([][]float64, n)
	for i := 0; i < n; i++ {
		mi, mi1 := m.AtVec(i), m.AtVec(i+1)
		coeffs[i] = []float64{
			(mi1 - mi) / (6 * h[i]),
			mi / 2,
			(ys[i+1]-ys[i])/h[i] - h[i]*(2*mi+mi1)/6,
			ys[i],
		}
	}
	return piecewisePoly{breaks: slices.Clone(xs), coeffs: coeffs}, nil
}
