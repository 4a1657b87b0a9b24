/*
Package polygon deals with polygons and open polylines. They are used to
approximate spline paths, e.g. for computing the area a moving object may
sweep, and for simple hit testing.

Geometry is delegated to github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a sequence of knots connected by straight lines. It may be
// open (a polyline) or closed (a cycle).
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{contour: polyclip.Contour{}}
}

// FromPairs creates an open polygon from a list of points.
func FromPairs(pts []pathanim.Pair) *Polygon {
	pg := &Polygon{contour: make(polyclip.Contour, 0, len(pts))}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// Box creates a closed rectangle from two opposite corners.
func Box(p1, p2 pathanim.Pair) *Polygon {
	x1, y1 := p1.F()
	x2, y2 := p2.F()
	return NullPolygon().Knot(pathanim.P(x1, y1)).Knot(pathanim.P(x2, y1)).
		Knot(pathanim.P(x2, y2)).Knot(pathanim.P(x1, y2)).Cycle()
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p pathanim.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End terminates an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns knot i (mod N).
func (pg *Polygon) Pt(i int) pathanim.Pair {
	n := pg.N()
	i = ((i % n) + n) % n
	return pathanim.P(pg.contour[i].X, pg.contour[i].Y)
}

// BoundingBox returns the lower left and upper right corners of the smallest
// axis-aligned rectangle enclosing all knots.
func (pg *Polygon) BoundingBox() (pathanim.Pair, pathanim.Pair) {
	if pg.N() == 0 {
		return pathanim.Origin, pathanim.Origin
	}
	bb := pg.contour.BoundingBox()
	return pathanim.P(bb.Min.X, bb.Min.Y), pathanim.P(bb.Max.X, bb.Max.Y)
}

// Contains is a predicate: does point p lie inside the polygon? Open
// polygons do not contain any point.
func (pg *Polygon) Contains(p pathanim.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Length returns the sum of the lengths of all edges.
// For cycles, the closing edge is included.
func (pg *Polygon) Length() float64 {
	var l float64
	for i := 1; i < pg.N(); i++ {
		l += (pg.Pt(i) - pg.Pt(i-1)).Length()
	}
	if pg.cycle && pg.N() > 2 {
		l += (pg.Pt(0) - pg.Pt(pg.N()-1)).Length()
	}
	return l
}

// AsString returns a polygon in MetaPost-like notation, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "%s", pg.Pt(i))
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
