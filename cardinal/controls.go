package cardinal

import (
	"math/cmplx"

	"github.com/npillmayer/pathanim"
)

// SetPreControl sets the incoming control point of knot i.
func (ctrls *Controls) SetPreControl(i int, c pathanim.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, pathanim.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

// SetPostControl sets the outgoing control point of knot i.
func (ctrls *Controls) SetPostControl(i int, c pathanim.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, pathanim.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

// PreControl returns the incoming control point of knot i, or NaN if
// it is unknown.
func (ctrls *Controls) PreControl(i int) pathanim.Pair {
	return getC(ctrls.prec, i, pathanim.Pair(cmplx.NaN()))
}

// PostControl returns the outgoing control point of knot i, or NaN if
// it is unknown.
func (ctrls *Controls) PostControl(i int) pathanim.Pair {
	return getC(ctrls.postc, i, pathanim.Pair(cmplx.NaN()))
}

// Bezier returns the four points of the cubic Bézier curve equivalent to
// segment i, given the knots of this segment.
func (ctrls *Controls) Bezier(i int, z1, z2 pathanim.Pair) [4]pathanim.Pair {
	return [4]pathanim.Pair{z1, ctrls.PostControl(i), ctrls.PreControl(i + 1), z2}
}
