package action

import (
	"fmt"
	"math"

	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/pathanim/cardinal"
	"github.com/npillmayer/pathanim/points"
)

// CardinalSpline moves a node along a cardinal spline through a sequence of
// control points. Time maps linearly onto the spline parameter: every
// segment between two consecutive control points takes the same share of
// the duration.
//
// Create CardinalSpline actions with NewCardinalSplineTo (absolute control
// points), NewCardinalSplineBy (control points relative to the node's
// position at start) or the Catmull-Rom variants with a tension of 0.5.
//
// The control point sequence is shared, not copied. CardinalSpline never
// modifies it; clients must not modify it while the action is running.
type CardinalSpline struct {
	Interval
	points    *points.Sequence
	tension   float64
	placement placement
	target    Node
	prevPos   pathanim.Pair // position last written to target
	accDiff   pathanim.Pair // displacement of target by others
	startPos  pathanim.Pair // position of target at start
}

// NewCardinalSplineTo creates an action moving a node along a cardinal
// spline through the given control points, in absolute coordinates.
func NewCardinalSplineTo(duration float64, pts *points.Sequence, tension float64) (*CardinalSpline, error) {
	return newCardinalSpline(duration, pts, tension, absolute{})
}

// NewCardinalSplineBy creates an action moving a node along a cardinal
// spline relative to the node's position at start. The node's start
// position corresponds to the first control point.
func NewCardinalSplineBy(duration float64, pts *points.Sequence, tension float64) (*CardinalSpline, error) {
	return newCardinalSpline(duration, pts, tension, relative{})
}

// NewCatmullRomTo creates an absolute action along a Catmull-Rom spline,
// i.e. a cardinal spline with tension 0.5.
func NewCatmullRomTo(duration float64, pts *points.Sequence) (*CardinalSpline, error) {
	return NewCardinalSplineTo(duration, pts, cardinal.CatmullRomTension)
}

// NewCatmullRomBy creates a relative action along a Catmull-Rom spline,
// i.e. a cardinal spline with tension 0.5.
func NewCatmullRomBy(duration float64, pts *points.Sequence) (*CardinalSpline, error) {
	return NewCardinalSplineBy(duration, pts, cardinal.CatmullRomTension)
}

// MustCardinalSpline is a helper which panics if an action could not be
// created, e.g.
//
//	a := MustCardinalSpline(NewCatmullRomTo(2.0, pts))
func MustCardinalSpline(cs *CardinalSpline, err error) *CardinalSpline {
	if err != nil {
		panic(err)
	}
	return cs
}

func newCardinalSpline(duration float64, pts *points.Sequence, tension float64, pl placement) (*CardinalSpline, error) {
	iv, err := newInterval(duration)
	if err != nil {
		tracer().Errorf("cannot create %s spline action: %v", pl, err)
		return nil, err
	}
	if err := cardinal.ValidateFinite(pts); err != nil {
		tracer().Errorf("cannot create %s spline action: %v", pl, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if math.IsNaN(tension) || math.IsInf(tension, 0) {
		tracer().Errorf("cannot create %s spline action: tension is %g", pl, tension)
		return nil, fmt.Errorf("%w: tension must be finite, is %g", ErrInvalidArgument, tension)
	}
	return &CardinalSpline{
		Interval:  iv,
		points:    pts,
		tension:   tension,
		placement: pl,
	}, nil
}

// Points returns the control points of the action's path.
func (cs *CardinalSpline) Points() *points.Sequence {
	return cs.points
}

// Tension returns the spline tension.
func (cs *CardinalSpline) Tension() float64 {
	return cs.tension
}

// IsRelative is a predicate: does this action move its target relative to
// the target's start position?
func (cs *CardinalSpline) IsRelative() bool {
	_, ok := cs.placement.(relative)
	return ok
}

// Target returns the node the action has been started on, or nil.
func (cs *CardinalSpline) Target() Node {
	return cs.target
}

// AccumulatedDiff returns the sum of all displacements of the target which
// have been caused by others since the action started.
func (cs *CardinalSpline) AccumulatedDiff() pathanim.Pair {
	return cs.accDiff
}

// StartPosition returns the target's position at the time the action has
// been started.
func (cs *CardinalSpline) StartPosition() pathanim.Pair {
	return cs.startPos
}

// Start binds the action to a target node and resets its state.
func (cs *CardinalSpline) Start(target Node) {
	cs.restart()
	cs.target = target
	cs.accDiff = pathanim.Origin
	if target == nil {
		tracer().Errorf("%s spline action started without target", cs.placement)
		return
	}
	cs.prevPos = target.Position()
	cs.startPos = cs.prevPos
	tracer().Debugf("%s spline action started at %s, %d control points, tension %g",
		cs.placement, cs.startPos, cs.points.N(), cs.tension)
}

// Update moves the target to the point of the path at normalized time
// t ∈ [0,1]. Values outside this interval are clamped. If the control
// point sequence has been emptied below 2 points, the update is skipped.
func (cs *CardinalSpline) Update(t float64) {
	if cs.target == nil {
		tracer().Errorf("%v: spline update at t=%g ignored", ErrNotStarted, t)
		return
	}
	if cs.points.N() < 2 {
		tracer().Errorf("%s spline has %d control points, update at t=%g ignored",
			cs.placement, cs.points.N(), t)
		return
	}
	i, u := cardinal.Locate(cs.points.N(), t)
	z0, z1, z2, z3 := cardinal.Knots(cs.points, i)
	pos := cardinal.At(z0, z1, z2, z3, cs.tension, u)
	cs.placement.update(cs, pos)
}

// Step advances the action's time by dt and updates the target.
func (cs *CardinalSpline) Step(dt float64) {
	cs.Update(cs.advance(dt))
}

// Reverse creates a new action of the same kind, duration and tension,
// tracing the path backwards. For relative actions, running the reversed
// action right after the original one moves the target back to where the
// original started. The receiver is not changed.
func (cs *CardinalSpline) Reverse() Action {
	return cs.ReverseSpline()
}

// ReverseSpline is like Reverse, but returns the concrete type.
func (cs *CardinalSpline) ReverseSpline() *CardinalSpline {
	rev := cs.placement.reversed(cs.points)
	tracer().Debugf("reversed %s spline: %s", cs.placement, rev)
	return &CardinalSpline{
		Interval:  Interval{duration: cs.duration, firstTick: true},
		points:    rev,
		tension:   cs.tension,
		placement: cs.placement,
	}
}

// Clone returns a new, unstarted action with the same parameters. The
// control point sequence is shared with the receiver.
func (cs *CardinalSpline) Clone() *CardinalSpline {
	return &CardinalSpline{
		Interval:  Interval{duration: cs.duration, firstTick: true},
		points:    cs.points,
		tension:   cs.tension,
		placement: cs.placement,
	}
}

func (cs *CardinalSpline) String() string {
	return fmt.Sprintf("cardinal spline %s (%gs, tension %g): %s", cs.placement, cs.duration,
		cs.tension, cs.points)
}

// --- Placement strategies --------------------------------------------------

// placement decides how a point of the spline is applied to the target.
type placement interface {
	update(cs *CardinalSpline, pos pathanim.Pair)
	reversed(pts *points.Sequence) *points.Sequence
	String() string
}

// absolute places the target onto the spline point.
type absolute struct{}

func (absolute) update(cs *CardinalSpline, pos pathanim.Pair) {
	cs.target.SetPosition(pos)
	cs.prevPos = pos
}

func (absolute) reversed(pts *points.Sequence) *points.Sequence {
	return pts.Reversed()
}

func (absolute) String() string {
	return "to"
}

// relative moves the target by the displacement of the spline point from
// the first control point, starting at the target's start position. Moves
// of the target by others in between two updates are accumulated and kept.
type relative struct{}

func (relative) update(cs *CardinalSpline, pos pathanim.Pair) {
	cs.accDiff += cs.target.Position() - cs.prevPos
	p := cs.startPos + (pos - cs.points.Z(0)) + cs.accDiff
	cs.target.SetPosition(p)
	cs.prevPos = p
}

// reversed returns the control points in reverse order, translated to
// start at the origin. The reversed path has the opposite displacement.
func (relative) reversed(pts *points.Sequence) *points.Sequence {
	last := pts.Z(pts.N() - 1)
	return pts.Reversed().Transformed(pathanim.Translation(-last))
}

func (relative) String() string {
	return "by"
}
