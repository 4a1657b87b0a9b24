package action

import (
	"fmt"
	"math"
)

// Interval keeps track of the time of an action with a duration.
// Actions embed an Interval and map its normalized time onto their Update.
type Interval struct {
	duration  float64
	elapsed   float64
	firstTick bool
}

func newInterval(duration float64) (Interval, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return Interval{}, fmt.Errorf("%w: duration must be finite and not negative, is %g",
			ErrInvalidArgument, duration)
	}
	return Interval{duration: duration, firstTick: true}, nil
}

// Duration returns the duration of the action.
func (iv *Interval) Duration() float64 {
	return iv.duration
}

// Elapsed returns the time elapsed since the first tick.
func (iv *Interval) Elapsed() float64 {
	return iv.elapsed
}

// IsDone is a predicate: has the duration elapsed? An action with duration 0
// is done after its first tick.
func (iv *Interval) IsDone() bool {
	return !iv.firstTick && iv.elapsed >= iv.duration
}

func (iv *Interval) restart() {
	iv.elapsed = 0
	iv.firstTick = true
}

// advance moves time forward by dt and returns the normalized time.
// The first tick after a restart always maps to t=0, regardless of dt,
// unless the duration is 0.
func (iv *Interval) advance(dt float64) float64 {
	if iv.firstTick {
		iv.firstTick = false
		iv.elapsed = 0
	} else {
		iv.elapsed += dt
	}
	if iv.duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, iv.elapsed/iv.duration))
}
