package boundary

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// cornerTangentScale is the fixed magnitude given to the one-sided tangent
// vectors at corners. The value is an empirically chosen shape parameter:
// changing it changes the shape of every corner spline.
const cornerTangentScale = 5.0

// cornerSnapTolerance decides when a parameter counts as sitting exactly on a
// corner breakpoint.
const cornerSnapTolerance = 10 * machEps

// CornerSpline is a closed piecewise-cubic interpolant through a sequence of
// knots, with tangent discontinuities permitted at a designated subset of the
// knots (the corners). All derived state is computed at construction; values
// are immutable afterwards.
//
// The parameter is normalized chordal arc length: each knot sits at a
// parameter proportional to the cumulative straight-line distance along the
// knot polygon, with the full circuit mapped to [0, 1). Construction rotates
// the knot labeling so that the first corner is the parameter origin, which
// makes curves built from cyclic rotations of the same input geometrically
// identical.
type CornerSpline struct {
	knots        []complex128
	corners      []int
	arcParams    []float64
	cornerAngles []float64
	outTangents  []complex128
	inTangents   []complex128
	segments     []splineSegment
	breaks       []float64
}

// splineSegment holds the cubic fit between two consecutive corners, with the
// real and imaginary parts interpolated independently. The derivative forms
// come from differentiating the fitted coefficients, not from re-fitting.
type splineSegment struct {
	re, im     piecewisePoly
	dre, dim   piecewisePoly
	d2re, d2im piecewisePoly
}

var _ Curve = (*CornerSpline)(nil)

// NewCornerSpline builds a closed corner spline through knots. The corners
// are indices into knots, strictly increasing, marking the points where the
// tangent may be discontinuous. If the first and last knot coincide, the
// closing knot is dropped; closure is implicit.
func NewCornerSpline(knots []complex128, corners []int) (*CornerSpline, error) {
	if len(knots) >= 2 && knots[0] == knots[len(knots)-1] {
		knots = knots[:len(knots)-1]
	}
	for i := 1; i < len(corners); i++ {
		if corners[i] <= corners[i-1] {
			return nil, fmt.Errorf("%w: corners array must be strictly increasing", ErrInvalidArgument)
		}
	}
	if len(corners) == 0 {
		return nil, fmt.Errorf("%w: corners array must be a valid set of indices for knots", ErrInvalidArgument)
	}
	for _, c := range corners {
		if c < 0 || c >= len(knots) {
			return nil, fmt.Errorf("%w: corners array must be a valid set of indices for knots", ErrInvalidArgument)
		}
	}
	if len(knots) < 3 {
		return nil, fmt.Errorf("%w: a closed curve needs at least 3 distinct knots, got %d", ErrInvalidArgument, len(knots))
	}

	cs := &CornerSpline{}
	cs.remapToFirstCorner(knots, corners)
	cs.parameterize()
	cs.deriveCornerGeometry()
	if err := cs.fitSegments(); err != nil {
		return nil, err
	}
	return cs, nil
}

// remapToFirstCorner relabels knots and corners so that corners[0] becomes
// knot 0. An explicit index-remapping pass, rather than in-place rotation,
// keeps the relabeling auditable.
func (cs *CornerSpline) remapToFirstCorner(knots []complex128, corners []int) {
	n := len(knots)
	shift := corners[0]
	cs.knots = make([]complex128, n)
	for i := range cs.knots {
		cs.knots[i] = knots[(i+shift)%n]
	}
	cs.corners = make([]int, len(corners))
	for i, c := range corners {
		cs.corners[i] = c - shift
	}
}

// parameterize assigns each knot its normalized cumulative chordal distance.
func (cs *CornerSpline) parameterize() {
	n := len(cs.knots)
	chords := make([]float64, n)
	for i := range chords {
		chords[i] = cmplx.Abs(cs.knots[(i+1)%n] - cs.knots[i])
	}
	cum := floats.CumSum(make([]float64, n), chords)
	floats.Scale(1/cum[n-1], cum)

	cs.arcParams = make([]float64, n)
	copy(cs.arcParams[1:], cum[:n-1])

	cs.breaks = make([]float64, len(cs.corners)+1)
	for i, c := range cs.corners {
		cs.breaks[i] = cs.arcParams[c]
	}
	cs.breaks[len(cs.corners)] = 1
}

// deriveCornerGeometry computes, for every corner, the interior angle of the
// knot polygon and the pair of fixed-magnitude one-sided tangent vectors.
func (cs *CornerSpline) deriveCornerGeometry() {
	n := len(cs.knots)
	cs.cornerAngles = make([]float64, len(cs.corners))
	cs.outTangents = make([]complex128, len(cs.corners))
	cs.inTangents = make([]complex128, len(cs.corners))
	for i, c := range cs.corners {
		z := cs.knots[c]
		prev := cs.knots[(c-1+n)%n]
		next := cs.knots[(c+1)%n]

		// Interior angle as a fraction of π, in [0, 2).
		alpha := math.Mod(cmplx.Phase((prev-z)/(next-z))/math.Pi, 2)
		if alpha < 0 {
			alpha += 2
		}
		cs.cornerAngles[i] = alpha

		cs.outTangents[i] = unit(next-z) * cornerTangentScale
		cs.inTangents[i] = unit(z-prev) * cornerTangentScale
	}
}

// fitSegments fits one clamped cubic spline per corner-to-corner run of
// knots, pinning the boundary derivatives to the corner tangents. The last
// segment wraps around to the first corner at parameter 1.
func (cs *CornerSpline) fitSegments() error {
	n := len(cs.knots)
	cs.segments = make([]splineSegment, len(cs.corners))
	for i := range cs.corners {
		lo := cs.corners[i]
		hi := n // wraps to knot 0 at parameter 1
		if i+1 < len(cs.corners) {
			hi = cs.corners[i+1]
		}

		xs := make([]float64, 0, hi-lo+1)
		re := make([]float64, 0, hi-lo+1)
		im := make([]float64, 0, hi-lo+1)
		for j := lo; j <= hi; j++ {
			x := 1.0
			if j < n {
				x = cs.arcParams[j]
			}
			z := cs.knots[j%n]
			xs = append(xs, x)
			re = append(re, real(z))
			im = append(im, imag(z))
		}

		out := cs.outTangents[i]
		in := cs.inTangents[(i+1)%len(cs.corners)]
		reP, err := fitClampedCubic(xs, re, real(out), real(in))
		if err != nil {
			return err
		}
		imP, err := fitClampedCubic(xs, im, imag(out), imag(in))
		if err != nil {
			return err
		}
		seg := splineSegment{re: reP, im: imP}
		seg.dre, seg.dim = reP.deriv(), imP.deriv()
		seg.d2re, seg.d2im = seg.dre.deriv(), seg.dim.deriv()
		cs.segments[i] = seg
	}
	return nil
}

func unit(z complex128) complex128 {
	return z / complex(cmplx.Abs(z), 0)
}

// Knots returns the knots in construction order after the first-corner
// relabeling, without the implicit closing knot.
func (cs *CornerSpline) Knots() []complex128 {
	return slices.Clone(cs.knots)
}

// Corners returns the corner indices after the first-corner relabeling;
// Corners()[0] is always 0.
func (cs *CornerSpline) Corners() []int {
	return slices.Clone(cs.corners)
}

// ArcParams returns the normalized chordal arc-length parameter of each knot.
func (cs *CornerSpline) ArcParams() []float64 {
	return slices.Clone(cs.arcParams)
}

// CornerAngles returns the interior angle at each corner, as a fraction of π
// in [0, 2), with the two adjacent knots treated as polygon vertices.
func (cs *CornerSpline) CornerAngles() []float64 {
	return slices.Clone(cs.cornerAngles)
}

// Breakpoints returns the parameter values of the corners followed by a
// trailing 1. Segment k of the spline covers [Breakpoints()[k], Breakpoints()[k+1]).
func (cs *CornerSpline) Breakpoints() []float64 {
	return slices.Clone(cs.breaks)
}

// ParamLength implements [Curve].
func (cs *CornerSpline) ParamLength() float64 {
	return 1
}

// segmentIndex returns k such that breaks[k] ≤ t < breaks[k+1].
func (cs *CornerSpline) segmentIndex(t float64) int {
	k := sort.SearchFloat64s(cs.breaks, t)
	if k == len(cs.breaks) || cs.breaks[k] != t {
		k--
	}
	if k < 0 {
		k = 0
	}
	if k > len(cs.segments)-1 {
		k = len(cs.segments) - 1
	}
	return k
}

// cornerIndexAt reports which corner, if any, the parameter t sits on.
func (cs *CornerSpline) cornerIndexAt(t float64) (int, bool) {
	for i, b := range cs.breaks[:len(cs.breaks)-1] {
		if math.Abs(t-b) <= cornerSnapTolerance {
			return i, true
		}
	}
	if math.Abs(t-1) <= cornerSnapTolerance {
		// Just below the wrap point, which is the first corner again.
		return 0, true
	}
	return 0, false
}

// Point implements [Curve].
func (cs *CornerSpline) Point(t float64) complex128 {
	t = Normalize(t, 1)
	seg := cs.segments[cs.segmentIndex(t)]
	return complex(seg.re.eval(t), seg.im.eval(t))
}

// Tangent implements [Curve].
//
// Exactly at a corner the tangent is two-valued; by convention this returns
// the arithmetic mean of the outgoing and incoming corner tangents, so that
// consumers expecting a single tangent per parameter see no artifacts.
func (cs *CornerSpline) Tangent(t float64) complex128 {
	t = Normalize(t, 1)
	if i, ok := cs.cornerIndexAt(t); ok {
		return (cs.outTangents[i] + cs.inTangents[i]) / 2
	}
	seg := cs.segments[cs.segmentIndex(t)]
	return complex(seg.dre.eval(t), seg.dim.eval(t))
}

// SecondDerivative evaluates the second derivative of the position with
// respect to t, from the differentiated segment polynomials. It is one-sided
// at corners and at interior knots of a segment it is continuous by
// construction of the cubic fit.
func (cs *CornerSpline) SecondDerivative(t float64) complex128 {
	t = Normalize(t, 1)
	seg := cs.segments[cs.segmentIndex(t)]
	return complex(seg.d2re.eval(t), seg.d2im.eval(t))
}

// Translate returns a copy of the spline shifted by dz.
func (cs *CornerSpline) Translate(dz complex128) *CornerSpline {
	return cs.transform(1, dz)
}

// Scale returns the spline multiplied by f.
func (cs *CornerSpline) Scale(f complex128) *CornerSpline {
	return cs.transform(f, 0)
}

// transform maps every evaluated value z to mul·z + add. The fitted segment
// polynomials are recombined directly rather than re-fit, so the result is
// the exact pointwise transform of the original: re-fitting would re-derive
// corner tangents at the fixed magnitude and subtly change the shape.
func (cs *CornerSpline) transform(mul, add complex128) *CornerSpline {
	out := &CornerSpline{
		knots:        make([]complex128, len(cs.knots)),
		corners:      cs.corners,
		arcParams:    cs.arcParams,
		cornerAngles: cs.cornerAngles,
		outTangents:  make([]complex128, len(cs.outTangents)),
		inTangents:   make([]complex128, len(cs.inTangents)),
		segments:     make([]splineSegment, len(cs.segments)),
		breaks:       cs.breaks,
	}
	for i, z := range cs.knots {
		out.knots[i] = mul*z + add
	}
	for i := range cs.outTangents {
		out.outTangents[i] = mul * cs.outTangents[i]
		out.inTangents[i] = mul * cs.inTangents[i]
	}
	mr, mi := real(mul), imag(mul)
	for i, s := range cs.segments {
		seg := splineSegment{
			re: combinePoly(mr, s.re, -mi, s.im, real(add)),
			im: combinePoly(mi, s.re, mr, s.im, imag(add)),
		}
		seg.dre, seg.dim = seg.re.deriv(), seg.im.deriv()
		seg.d2re, seg.d2im = seg.dre.deriv(), seg.dim.deriv()
		out.segments[i] = seg
	}
	return out
}
