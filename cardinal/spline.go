package cardinal

import (
	"fmt"
	"math"

	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/pathanim/points"
)

// At returns the point of a cardinal spline segment for local parameter
// u ∈ [0,1]. The segment runs from z1 (u=0) to z2 (u=1); z0 and z3 are the
// outer neighbours which determine the tangents at z1 and z2.
//
// The spline is evaluated in Hermite form, independently for x and y:
//
//	b1 = 2u³ - 3u² + 1
//	b2 = -2u³ + 3u²
//	b3 = (u³ - 2u² + u) ⋅ tension
//	b4 = (u³ - u²) ⋅ tension
//
//	z(u) = z1⋅b1 + (z2-z0)⋅b3 + z2⋅b2 + (z3-z1)⋅b4
//
// At returns z1 for u=0 and z2 for u=1 exactly. Coincident knots are legal.
func At(z0, z1, z2, z3 pathanim.Pair, tension, u float64) pathanim.Pair {
	u2 := u * u
	u3 := u2 * u
	b1 := 2*u3 - 3*u2 + 1
	b2 := -2*u3 + 3*u2
	b3 := (u3 - 2*u2 + u) * tension
	b4 := (u3 - u2) * tension
	x := z1.X()*b1 + (z2.X()-z0.X())*b3 + z2.X()*b2 + (z3.X()-z1.X())*b4
	y := z1.Y()*b1 + (z2.Y()-z0.Y())*b3 + z2.Y()*b2 + (z3.Y()-z1.Y())*b4
	return pathanim.P(x, y)
}

// Tangent returns the derivative dz/du of a cardinal spline segment at local
// parameter u. At u=0 it equals tension⋅(z2-z0), at u=1 tension⋅(z3-z1).
func Tangent(z0, z1, z2, z3 pathanim.Pair, tension, u float64) pathanim.Pair {
	u2 := u * u
	d1 := 6*u2 - 6*u
	d2 := -6*u2 + 6*u
	d3 := (3*u2 - 4*u + 1) * tension
	d4 := (3*u2 - 2*u) * tension
	x := z1.X()*d1 + (z2.X()-z0.X())*d3 + z2.X()*d2 + (z3.X()-z1.X())*d4
	y := z1.Y()*d1 + (z2.Y()-z0.Y())*d3 + z2.Y()*d2 + (z3.Y()-z1.Y())*d4
	return pathanim.P(x, y)
}

// Locate maps a normalized time t to a segment of a path with n ≥ 2 knots.
// Every segment covers 1/(n-1) of t. Locate returns the index i of the
// segment's first knot and the local parameter u within the segment.
// t is clamped to [0,1]; t=1 maps to (n-2, 1), i.e. onto the last knot.
func Locate(n int, t float64) (int, float64) {
	if n < 2 {
		return 0, 0
	}
	last := n - 2
	if math.IsNaN(t) || t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return last, 1
	}
	x := t * float64(n-1) // t divided by segment step 1/(n-1)
	i := int(math.Floor(x))
	if i > last {
		return last, 1
	}
	u := x - float64(i)
	return i, u
}

// Knots returns the four knots needed to evaluate segment i of seq:
// z.[i-1], z.i, z.[i+1] and z.[i+2]. Indices outside the sequence are
// clamped, i.e. at the ends of the path the end knot stands in for its
// missing neighbour.
func Knots(seq *points.Sequence, i int) (z0, z1, z2, z3 pathanim.Pair) {
	last := seq.N() - 1
	z0 = seq.Z(clampi(i-1, 0, last))
	z1 = seq.Z(clampi(i, 0, last))
	z2 = seq.Z(clampi(i+1, 0, last))
	z3 = seq.Z(clampi(i+2, 0, last))
	return
}

// PathAt returns the point of the cardinal spline through seq for a
// normalized time t ∈ [0,1]. t=0 yields the first control point, t=1 the
// last one.
func PathAt(seq *points.Sequence, tension float64, t float64) (pathanim.Pair, error) {
	if err := Validate(seq); err != nil {
		return pathanim.Origin, err
	}
	i, u := Locate(seq.N(), t)
	z0, z1, z2, z3 := Knots(seq, i)
	return At(z0, z1, z2, z3, tension, u), nil
}

// Validate checks if a control point sequence is fit for spline
// interpolation: it must not be nil and must contain at least 2 points.
func Validate(seq *points.Sequence) error {
	if seq == nil {
		return ErrNilPath
	}
	if seq.N() < 2 {
		return fmt.Errorf("%w: need at least 2, got %d", ErrTooFewPoints, seq.N())
	}
	return nil
}

// ValidateFinite additionally checks every control point for NaN or
// infinite coordinates.
func ValidateFinite(seq *points.Sequence) error {
	if err := Validate(seq); err != nil {
		return err
	}
	for i, z := range seq.Values() {
		if !z.IsFinite() {
			return fmt.Errorf("%w at control point %d", ErrInvalidPoint, i)
		}
	}
	return nil
}
