// Package points provides ordered, mutable sequences of control points.
//
// A Sequence exclusively owns its points. Points are pairs, i.e. values, so
// reading a point from a sequence or producing a reversed copy never aliases
// storage with the original sequence.
//
// Sequences are not safe for concurrent mutation. Actions reading a sequence
// treat it as read-only once they have been started.
package points

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// ErrIndexOutOfRange is returned by accessors called with an invalid index.
// The sequence is left unchanged.
var ErrIndexOutOfRange = errors.New("control point index out of range")

// Sequence is an ordered list of control points.
// The zero value is an empty sequence, ready to use.
type Sequence struct {
	pts []pathanim.Pair
}

// New creates an empty sequence. The capacity hint reserves storage for
// that many points and has no other effect.
func New(capacity int) *Sequence {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence{pts: make([]pathanim.Pair, 0, capacity)}
}

// Of creates a sequence holding copies of pts, in order.
func Of(pts ...pathanim.Pair) *Sequence {
	seq := New(len(pts))
	seq.pts = append(seq.pts, pts...)
	return seq
}

// N returns the number of control points.
func (seq *Sequence) N() int {
	if seq == nil {
		return 0
	}
	return len(seq.pts)
}

// Append adds a control point at the end of the sequence.
func (seq *Sequence) Append(p pathanim.Pair) *Sequence {
	seq.pts = append(seq.pts, p)
	return seq
}

// Insert inserts a control point at position i, shifting the points from i
// onwards one position to the right. Inserting at i = N() appends.
func (seq *Sequence) Insert(p pathanim.Pair, i int) error {
	if i < 0 || i > seq.N() {
		return outOfRange("insert", i, seq.N())
	}
	seq.pts = append(seq.pts, pathanim.Origin)
	copy(seq.pts[i+1:], seq.pts[i:])
	seq.pts[i] = p
	return nil
}

// Replace overwrites the control point at position i.
func (seq *Sequence) Replace(p pathanim.Pair, i int) error {
	if i < 0 || i >= seq.N() {
		return outOfRange("replace", i, seq.N())
	}
	seq.pts[i] = p
	return nil
}

// At returns the control point at position i.
func (seq *Sequence) At(i int) (pathanim.Pair, error) {
	if i < 0 || i >= seq.N() {
		return pathanim.Origin, outOfRange("get", i, seq.N())
	}
	return seq.pts[i], nil
}

// Z returns the control point at position i, with i clamped to the valid
// range. This mirrors the treatment of missing neighbours at the ends of an
// open spline. Z panics for an empty sequence.
func (seq *Sequence) Z(i int) pathanim.Pair {
	if seq.N() == 0 {
		panic("cannot access control point of empty sequence")
	}
	if i < 0 {
		i = 0
	} else if i >= seq.N() {
		i = seq.N() - 1
	}
	return seq.pts[i]
}

// Remove deletes the control point at position i.
func (seq *Sequence) Remove(i int) error {
	if i < 0 || i >= seq.N() {
		return outOfRange("remove", i, seq.N())
	}
	seq.pts = append(seq.pts[:i], seq.pts[i+1:]...)
	return nil
}

// Reversed returns a new sequence with the points of seq in reverse order.
// seq itself is unchanged.
func (seq *Sequence) Reversed() *Sequence {
	n := seq.N()
	rev := New(n)
	for i := n - 1; i >= 0; i-- {
		rev.pts = append(rev.pts, seq.pts[i])
	}
	return rev
}

// Reverse reverses the order of the points of seq in place.
func (seq *Sequence) Reverse() {
	for i, j := 0, seq.N()-1; i < j; i, j = i+1, j-1 {
		seq.pts[i], seq.pts[j] = seq.pts[j], seq.pts[i]
	}
}

// Clone returns an independent copy of seq.
func (seq *Sequence) Clone() *Sequence {
	return Of(seq.Values()...)
}

// Values returns a copy of the control points.
func (seq *Sequence) Values() []pathanim.Pair {
	if seq.N() == 0 {
		return []pathanim.Pair{}
	}
	v := make([]pathanim.Pair, len(seq.pts))
	copy(v, seq.pts)
	return v
}

// Transformed returns a new sequence with every point transformed by m.
func (seq *Sequence) Transformed(m pathanim.AT) *Sequence {
	t := New(seq.N())
	for _, p := range seq.Values() {
		t.pts = append(t.pts, m.Transform(p))
	}
	return t
}

// Equal is a predicate: do both sequences hold the same points (within
// pathanim.Epsilon) in the same order?
func (seq *Sequence) Equal(other *Sequence) bool {
	if seq.N() != other.N() {
		return false
	}
	for i := 0; i < seq.N(); i++ {
		if !seq.pts[i].Equal(other.pts[i]) {
			return false
		}
	}
	return true
}

// String returns the sequence as a MetaPost-like skeleton path, e.g.
//
//	(0,0) .. (0,50) .. (50,50)
func (seq *Sequence) String() string {
	var b strings.Builder
	for i, p := range seq.Values() {
		if i > 0 {
			b.WriteString(" .. ")
		}
		b.WriteString(p.String())
	}
	return b.String()
}

func outOfRange(op string, i, n int) error {
	tracer().Debugf("control point %s at index %d rejected, sequence has %d points", op, i, n)
	return fmt.Errorf("%w: %s at index %d, sequence has %d points", ErrIndexOutOfRange, op, i, n)
}
