package cardinal

import (
	"github.com/npillmayer/pathanim/points"
	"github.com/npillmayer/pathanim/polygon"
)

// FindControls converts the cardinal spline through seq into a chain of
// cubic Bézier segments. Clients may provide a container for the control
// points; if controls == nil, FindControls will allocate one.
//
// For the segment z.i .. z.[i+1] the Bézier control points are
//
//	z.i + tension⋅(z.[i+1] - z.[i-1])/3   and   z.[i+1] - tension⋅(z.[i+2] - z.i)/3
//
// with the same clamping at the path ends as for evaluation.
func FindControls(seq *points.Sequence, tension float64, controls *Controls) (*Controls, error) {
	if err := ValidateFinite(seq); err != nil {
		return nil, err
	}
	if controls == nil {
		controls = &Controls{}
	}
	for i := 0; i < seq.N()-1; i++ {
		z0, z1, z2, z3 := Knots(seq, i)
		controls.SetPostControl(i, z1+(z2-z0).Scaled(tension/3))
		controls.SetPreControl(i+1, z2-(z3-z1).Scaled(tension/3))
	}
	tracer().Debugf("cardinal controls: %s", AsString(seq, controls))
	return controls, nil
}

// MustFindControls is a helper which panics on validation errors.
func MustFindControls(seq *points.Sequence, tension float64, controls *Controls) *Controls {
	c, err := FindControls(seq, tension, controls)
	if err != nil {
		panic(err)
	}
	return c
}

// Flatten samples the cardinal spline through seq into an open polygon.
// Every segment is subdivided into steps pieces (at least 1). The resulting
// polygon contains all control points as knots.
func Flatten(seq *points.Sequence, tension float64, steps int) (*polygon.Polygon, error) {
	if err := ValidateFinite(seq); err != nil {
		return nil, err
	}
	if steps < 1 {
		steps = 1
	}
	pg := polygon.NullPolygon()
	for i := 0; i < seq.N()-1; i++ {
		z0, z1, z2, z3 := Knots(seq, i)
		for s := 0; s < steps; s++ {
			u := float64(s) / float64(steps)
			pg.Knot(At(z0, z1, z2, z3, tension, u))
		}
	}
	pg.Knot(seq.Z(seq.N() - 1))
	return pg.End(), nil
}
