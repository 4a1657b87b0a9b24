/*
Package action moves nodes along paths over time.

Actions are driven by a scheduler, usually a frame loop. The scheduler calls
Start once, then Step with the time elapsed since the previous frame, until
the action reports IsDone. Step maps elapsed time linearly onto a normalized
time t ∈ [0,1] and calls Update(t). Clients with a clock of their own may call
Update directly.

The central action type is CardinalSpline, which moves a node along a
cardinal spline through a sequence of control points, either to absolute
positions ("To") or relative to the node's position at start ("By").
Relative actions are stackable: if anything else moves the node between two
updates, the action continues from the node's actual position instead of
overwriting the change.

Actions are not safe for concurrent use. All calls into an action and its
target are expected to happen on the frame loop.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package action

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'actions'
func tracer() tracing.Trace {
	return tracing.Select("actions")
}

var (
	// ErrInvalidArgument indicates an action could not be created from the
	// arguments given.
	ErrInvalidArgument = errors.New("invalid action argument")
	// ErrNotStarted indicates an action has been driven before it was started.
	ErrNotStarted = errors.New("action has not been started")
)

// Node is a positionable target of an action, typically a node of a
// scene graph.
type Node interface {
	Position() pathanim.Pair
	SetPosition(pathanim.Pair)
}

// Action is an operation on a node which takes time.
type Action interface {
	Start(target Node) // bind to target and reset state
	Update(t float64)  // apply the action at normalized time t ∈ [0,1]
	Step(dt float64)   // advance by dt units of time and update
	IsDone() bool      // has the action's duration elapsed?
	Duration() float64 // duration in units of time
	Reverse() Action   // an action undoing this one
	Target() Node      // the node this action has been started on, or nil
}

// Run drives an action on target until it is done, advancing by dt per
// tick. It returns the number of ticks.
func Run(a Action, target Node, dt float64) (int, error) {
	if a == nil || target == nil {
		return 0, fmt.Errorf("%w: cannot run nil action or target", ErrInvalidArgument)
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, fmt.Errorf("%w: time step must be positive, is %g", ErrInvalidArgument, dt)
	}
	a.Start(target)
	ticks := 0
	for !a.IsDone() {
		a.Step(dt)
		ticks++
	}
	return ticks, nil
}
