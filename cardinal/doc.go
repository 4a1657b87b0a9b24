// Package cardinal implements cardinal spline interpolation for open paths
// through a sequence of control points.
/*

A cardinal spline is a piecewise cubic Hermite curve. The curve passes through
every control point (knot); the tangent at a knot is derived from the
knot's neighbours and scaled by a tension parameter. A tension of 0.5
yields the well-known Catmull-Rom spline, where the tangent at z.i equals
(z.[i+1] - z.[i-1]) / 2. Smaller tensions flatten the curve towards the
polygon of control points, larger ones make it swing wider.

Primary sources of information are:

   Cubic Hermite spline -- Cardinal spline
   http://en.wikipedia.org/wiki/Cubic_Hermite_spline#Cardinal_spline

   Overhauser (Catmull-Rom) Splines for Camera Animation -- Radu Gruian
   http://www.codeproject.com/Articles/30838/Overhauser-Catmull-Rom-Splines-for-Camera-Animatio

Usage

Evaluating a single segment needs the two knots delimiting it plus their
outer neighbours:

   pt := cardinal.At(z0, z1, z2, z3, 0.5, 0.25)

Clients animating along a whole sequence of control points usually map a
normalized time t ∈ [0,1] onto the path:

   pt, err := cardinal.PathAt(seq, tension, t)

Every segment covers the same amount of t, regardless of its length. At the
open ends of a path the missing outer neighbour is replaced by the end knot
itself.

For rendering, a path may be converted to cubic Bézier segments:

   controls, err := cardinal.FindControls(seq, 0.5)
   fmt.Println(cardinal.AsString(seq, controls))

which prints something like

  (0,0) .. controls (0.0000,8.3333) and (-8.3333,41.6667)
   .. (0,50) .. controls (8.3333,58.3333) and (41.6667,58.3333)
   .. (50,50) .. controls (58.3333,41.6667) and (50.0000,8.3333)
   .. (50,0)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cardinal

import (
	"fmt"

	"github.com/npillmayer/pathanim/points"
)

// AsString returns
// a path -- optionally including spline control points -- as a (debugging)
// string. The string contains newlines if control point information is present.
// Otherwise it will include the knot coordinates in one line.
//
// The format is not fully equivalent to MetaPost's, but close.
func AsString(seq *points.Sequence, contr *Controls) string {
	var s string
	for i := 0; i < seq.N(); i++ {
		pt := seq.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && i < seq.N()-1 {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return s
}
