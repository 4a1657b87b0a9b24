package action

import (
	"fmt"
	"reflect"
)

// Spawn runs actions simultaneously on the same target. The duration of a
// spawn is the longest duration of its actions; shorter actions complete
// early and then stay at their end state.
type Spawn struct {
	Interval
	actions []Action
	target  Node
}

// NewSpawn creates a spawn from one or more actions. Actions must not be
// nil, including nil pointers wrapped in an Action.
func NewSpawn(actions ...Action) (*Spawn, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: spawn needs at least one action", ErrInvalidArgument)
	}
	d := 0.0
	for i, a := range actions {
		if isNil(a) {
			return nil, fmt.Errorf("%w: spawn action #%d is nil", ErrInvalidArgument, i)
		}
		d = max(d, a.Duration())
	}
	iv, err := newInterval(d)
	if err != nil {
		return nil, err
	}
	return &Spawn{Interval: iv, actions: actions}, nil
}

// MustSpawn is a helper which panics if a spawn could not be created.
func MustSpawn(sp *Spawn, err error) *Spawn {
	if err != nil {
		panic(err)
	}
	return sp
}

func isNil(a Action) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Target returns the node the spawn has been started on, or nil.
func (sp *Spawn) Target() Node {
	return sp.target
}

// Start starts all actions on target, in order.
func (sp *Spawn) Start(target Node) {
	sp.restart()
	sp.target = target
	for _, a := range sp.actions {
		a.Start(target)
	}
}

// Update updates all actions, in order. Each action gets a normalized time
// relative to its own duration.
func (sp *Spawn) Update(t float64) {
	for _, a := range sp.actions {
		a.Update(sp.childTime(a, t))
	}
}

func (sp *Spawn) childTime(a Action, t float64) float64 {
	d := a.Duration()
	if d <= 0 || sp.duration <= 0 {
		return 1
	}
	return min(1, t*sp.duration/d)
}

// Step advances time by dt and updates all actions.
func (sp *Spawn) Step(dt float64) {
	sp.Update(sp.advance(dt))
}

// Reverse returns a spawn of the reversed actions. It panics if one of the
// actions reverses to nil.
func (sp *Spawn) Reverse() Action {
	rev := make([]Action, len(sp.actions))
	for i, a := range sp.actions {
		rev[i] = a.Reverse()
	}
	return MustSpawn(NewSpawn(rev...))
}
