// Package boundary models parameterized simple closed curves in the complex
// plane. A curve maps a scalar parameter t, periodic with the curve's
// parameter length (1 for every curve in this package), to a position and a
// tangent vector, both represented as complex numbers.
//
// The package is a geometry kernel meant to supply boundary data to
// conformal-mapping computations. Region and grid construction, plotting, and
// the conformal map itself are outside its scope; they consume curves
// exclusively through the [Curve] contract.
//
// # Curves
//
// Three concrete curve types are provided:
//
//   - [Circle], a circle traversed at uniform angular speed
//   - [Ellipse], the closed-form ellipse, optionally rotated, including the
//     boundary-correspondence angle series [Ellipse.ThetaExact] used in
//     conformal-mapping accuracy checks
//   - [CornerSpline], a closed piecewise-cubic interpolant through arbitrary
//     knots with designated corners (tangent discontinuities)
//
// Curves are immutable once constructed; everything derived (arc-length
// parameters, corner tangents, segment polynomials) is computed at
// construction time. [Translate] and [Scale] derive new curves from existing
// ones, and the concrete types additionally provide typed transform methods.
//
// # Parameterization
//
// All parameter domains are [0, 1) and evaluation is total: any real t is
// first wrapped by [Normalize]. The [CornerSpline] parameter is chordal arc
// length, assigned to knots by normalized cumulative straight-line distance
// between consecutive knots.
//
// [Arclen] measures true boundary length by Gauss-Legendre quadrature of the
// tangent magnitude, and [SolveForArclen] inverts it.
package boundary
