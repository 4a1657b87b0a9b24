package cardinal

import (
	"errors"

	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// CatmullRomTension is the tension which turns a cardinal spline into a
// Catmull-Rom spline.
const CatmullRomTension float64 = 0.5

var (
	// ErrNilPath indicates a nil control point sequence.
	ErrNilPath = errors.New("control point sequence must not be nil")
	// ErrTooFewPoints indicates a sequence with less than 2 control points.
	ErrTooFewPoints = errors.New("path has too few control points")
	// ErrInvalidPoint indicates a control point coordinate contains NaN/Inf.
	ErrInvalidPoint = errors.New("path has invalid control point coordinate")
)

// Controls collects calculated Bézier control points. For the segment
// between knots z.i and z.[i+1], PostControl(i) and PreControl(i+1) are the
// inner control points of the equivalent cubic Bézier curve.
type Controls struct {
	prec  []pathanim.Pair // control point i-, to be calculated
	postc []pathanim.Pair // control point i+, to be calculated
}
