package action

import (
	"fmt"

	"github.com/npillmayer/pathanim"
)

// MoveBy moves a node along a straight line by a displacement vector.
// Like relative spline actions it is stackable: moves of the target by
// others are kept.
type MoveBy struct {
	Interval
	delta    pathanim.Pair
	target   Node
	startPos pathanim.Pair
	prevPos  pathanim.Pair
}

// NewMoveBy creates an action moving a node by delta.
func NewMoveBy(duration float64, delta pathanim.Pair) (*MoveBy, error) {
	iv, err := newInterval(duration)
	if err != nil {
		return nil, err
	}
	if !delta.IsFinite() {
		return nil, fmt.Errorf("%w: displacement must be finite, is %s", ErrInvalidArgument, delta)
	}
	return &MoveBy{Interval: iv, delta: delta}, nil
}

// Delta returns the displacement vector.
func (mv *MoveBy) Delta() pathanim.Pair {
	return mv.delta
}

// Target returns the node the action has been started on, or nil.
func (mv *MoveBy) Target() Node {
	return mv.target
}

// Start binds the action to a target node.
func (mv *MoveBy) Start(target Node) {
	mv.restart()
	mv.target = target
	if target == nil {
		tracer().Errorf("move action started without target")
		return
	}
	mv.startPos = target.Position()
	mv.prevPos = mv.startPos
}

// Update places the target at fraction t of the displacement.
func (mv *MoveBy) Update(t float64) {
	if mv.target == nil {
		tracer().Errorf("%v: move update at t=%g ignored", ErrNotStarted, t)
		return
	}
	mv.startPos += mv.target.Position() - mv.prevPos
	p := mv.startPos + mv.delta.Scaled(t)
	mv.target.SetPosition(p)
	mv.prevPos = p
}

// Step advances the action's time by dt and updates the target.
func (mv *MoveBy) Step(dt float64) {
	mv.Update(mv.advance(dt))
}

// Reverse returns an action moving by the opposite displacement.
func (mv *MoveBy) Reverse() Action {
	return &MoveBy{Interval: Interval{duration: mv.duration, firstTick: true}, delta: -mv.delta}
}
