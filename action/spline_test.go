package action

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/pathanim/cardinal"
	"github.com/npillmayer/pathanim/points"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

type sprite struct {
	pos pathanim.Pair
}

func (s *sprite) Position() pathanim.Pair { return s.pos }
func (s *sprite) SetPosition(p pathanim.Pair) { s.pos = p }

func square() *points.Sequence {
	return points.Of(pathanim.P(0, 0), pathanim.P(0, 50), pathanim.P(50, 50), pathanim.P(50, 0))
}

func zigzag() *points.Sequence {
	return points.Of(pathanim.P(5, 5), pathanim.P(15, 30), pathanim.P(25, -10),
		pathanim.P(40, 20), pathanim.P(42, 22))
}

func assertPair(t *testing.T, want, got pathanim.Pair, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta, msgAndArgs...)
	assert.InDelta(t, want.Y(), got.Y(), delta, msgAndArgs...)
}

func ticks(n int) []float64 {
	ts := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		ts[k] = float64(k) / float64(n)
	}
	return ts
}

func TestCreateRejectsInvalidArguments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewCardinalSplineTo(1, nil, 0.5)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.True(t, errors.Is(err, cardinal.ErrNilPath))
	_, err = NewCardinalSplineBy(1, points.New(4), 0.5)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.True(t, errors.Is(err, cardinal.ErrTooFewPoints))
	_, err = NewCatmullRomTo(1, points.Of(pathanim.P(1, 1)))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewCatmullRomBy(-0.5, square())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewCardinalSplineTo(1, square(), math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewCardinalSplineTo(math.Inf(1), square(), 0.5)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewCatmullRomTo(1, points.Of(pathanim.P(0, 0), pathanim.P(math.NaN(), 1)))
	assert.True(t, errors.Is(err, cardinal.ErrInvalidPoint))
	assert.Panics(t, func() { MustCardinalSpline(NewCatmullRomTo(1, nil)) })
}

func TestCatmullRomHasFixedTension(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	to := MustCardinalSpline(NewCatmullRomTo(2, square()))
	by := MustCardinalSpline(NewCatmullRomBy(2, square()))
	assert.Equal(t, 0.5, to.Tension())
	assert.Equal(t, 0.5, by.Tension())
	assert.False(t, to.IsRelative())
	assert.True(t, by.IsRelative())
	assert.Equal(t, 2.0, to.Duration())
	assert.Nil(t, to.Target())
}

func TestSplineToSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	node := &sprite{pos: pathanim.P(100, 100)}
	a := MustCardinalSpline(NewCardinalSplineTo(1, square(), 0.5))
	a.Start(node)
	assert.Equal(t, Node(node), a.Target())
	a.Update(0)
	assert.Equal(t, pathanim.P(0, 0), node.pos)
	a.Update(1.0 / 3.0)
	assertPair(t, pathanim.P(0, 50), node.pos)
	a.Update(2.0 / 3.0)
	assertPair(t, pathanim.P(50, 50), node.pos)
	a.Update(1)
	assert.Equal(t, pathanim.P(50, 0), node.pos)
	assert.True(t, a.AccumulatedDiff().IsOrigin(), "absolute actions do not accumulate")
}

func TestSplineToEndpointsForAnyTension(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, pts := range []*points.Sequence{square(), zigzag(), points.Of(pathanim.P(1, 2), pathanim.P(1, 2))} {
		for _, tension := range []float64{-1, 0, 0.25, 0.5, 1, 4} {
			node := &sprite{}
			a := MustCardinalSpline(NewCardinalSplineTo(3, pts, tension))
			a.Start(node)
			a.Update(0)
			assert.Equal(t, pts.Z(0), node.pos)
			a.Update(0.37)
			a.Update(1)
			assert.Equal(t, pts.Z(pts.N()-1), node.pos)
		}
	}
}

func TestSplineToMatchesPathAt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	node := &sprite{}
	a := MustCardinalSpline(NewCardinalSplineTo(1, zigzag(), 0.3))
	a.Start(node)
	for _, tt := range ticks(40) {
		a.Update(tt)
		want, err := cardinal.PathAt(zigzag(), 0.3, tt)
		require.NoError(t, err)
		assertPair(t, want, node.pos, "t=%g", tt)
	}
}

func TestSplineByWithoutDrift(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	start := pathanim.P(-7, 12)
	node := &sprite{pos: start}
	pts := zigzag()
	a := MustCardinalSpline(NewCatmullRomBy(1, pts))
	a.Start(node)
	assert.Equal(t, start, a.StartPosition())
	for _, tt := range ticks(25) {
		a.Update(tt)
		assert.True(t, a.AccumulatedDiff().IsOrigin(), "accumulated diff at t=%g is %s", tt, a.AccumulatedDiff())
		want, _ := cardinal.PathAt(pts, 0.5, tt)
		assertPair(t, start+want-pts.Z(0), node.pos, "t=%g", tt)
	}
	assertPair(t, start+pts.Z(pts.N()-1)-pts.Z(0), node.pos)
}

func TestSplineByFirstUpdateDoesNotJump(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	node := &sprite{pos: pathanim.P(3, 4)}
	a := MustCardinalSpline(NewCardinalSplineBy(1, zigzag(), 0.7))
	a.Start(node)
	a.Update(0)
	assert.Equal(t, pathanim.P(3, 4), node.pos)
}

func TestSplineByKeepsExternalDisplacement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ts := ticks(20)
	run := func(inject func(k int, n *sprite)) []pathanim.Pair {
		node := &sprite{pos: pathanim.P(1, 1)}
		a := MustCardinalSpline(NewCatmullRomBy(1, zigzag()))
		a.Start(node)
		trail := make([]pathanim.Pair, len(ts))
		for k, tt := range ts {
			a.Update(tt)
			trail[k] = node.pos
			inject(k, node)
		}
		return trail
	}
	undisturbed := run(func(int, *sprite) {})
	push := pathanim.P(4, -9)
	disturbed := run(func(k int, n *sprite) {
		if k == 6 {
			n.pos += push
		}
	})
	for k := range ts {
		if k <= 6 {
			assertPair(t, undisturbed[k], disturbed[k], "tick %d before push", k)
		} else {
			assertPair(t, undisturbed[k]+push, disturbed[k], "tick %d after push", k)
		}
	}
	// shape of the remaining path is unchanged
	for k := 8; k < len(ts); k++ {
		assertPair(t, undisturbed[k]-undisturbed[k-1], disturbed[k]-disturbed[k-1], "step %d", k)
	}
}

func TestSplineByAccumulatesSeveralPushes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	start := pathanim.P(0, 0)
	node := &sprite{pos: start}
	pts := square()
	a := MustCardinalSpline(NewCardinalSplineBy(1, pts, 0.5))
	a.Start(node)
	a.Update(0)
	node.pos += pathanim.P(1, 0)
	a.Update(0.5)
	node.pos += pathanim.P(0, 2)
	a.Update(1)
	assertPair(t, pathanim.P(1, 2), a.AccumulatedDiff())
	assertPair(t, start+pathanim.P(50, 0)+pathanim.P(1, 2), node.pos)
}

func TestSplineToReverse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := zigzag()
	a := MustCardinalSpline(NewCardinalSplineTo(2, pts, 0.4))
	r := a.ReverseSpline()
	assert.True(t, pts.Equal(zigzag()), "reverse must not modify the original points")
	assert.Equal(t, 2.0, r.Duration())
	assert.Equal(t, 0.4, r.Tension())
	assert.False(t, r.IsRelative())
	fwd, bwd := &sprite{}, &sprite{}
	a.Start(fwd)
	r.Start(bwd)
	for _, tt := range ticks(30) {
		a.Update(tt)
		r.Update(1 - tt)
		assertPair(t, fwd.pos, bwd.pos, "t=%g", tt)
	}
	_, isSpline := a.Reverse().(*CardinalSpline)
	assert.True(t, isSpline)
}

func TestSplineByReverseReturnsToStart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	start := pathanim.P(10, 10)
	node := &sprite{pos: start}
	a := MustCardinalSpline(NewCatmullRomBy(1, zigzag()))
	r := a.ReverseSpline()
	assert.True(t, r.IsRelative())
	assert.True(t, r.Points().Z(0).IsOrigin(), "reversed relative path starts at origin")
	_, err := Run(a, node, 0.1)
	require.NoError(t, err)
	end := node.pos
	assertPair(t, start+pathanim.P(37, 17), end)
	// the reversed action traces the original path backwards
	orig := MustCardinalSpline(NewCatmullRomBy(1, zigzag()))
	probe := &sprite{pos: start}
	orig.Start(probe)
	r.Start(node)
	for _, tt := range ticks(16) {
		r.Update(tt)
		orig.Update(1 - tt)
		assertPair(t, probe.pos, node.pos, "t=%g", tt)
	}
	assertPair(t, start, node.pos)
}

func TestSplineByDoubleReverse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := MustCardinalSpline(NewCardinalSplineBy(1, zigzag(), 0.5))
	rr := a.ReverseSpline().ReverseSpline()
	n1, n2 := &sprite{pos: pathanim.P(2, 2)}, &sprite{pos: pathanim.P(2, 2)}
	a.Start(n1)
	rr.Start(n2)
	for _, tt := range ticks(10) {
		a.Update(tt)
		rr.Update(tt)
		assertPair(t, n1.pos, n2.pos, "t=%g", tt)
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := MustCardinalSpline(NewCardinalSplineBy(1.5, square(), 0.2))
	node := &sprite{pos: pathanim.P(1, 1)}
	a.Start(node)
	a.Update(0.5)
	c := a.Clone()
	assert.Same(t, a.Points(), c.Points())
	assert.Nil(t, c.Target())
	assert.Equal(t, 1.5, c.Duration())
	assert.Equal(t, 0.2, c.Tension())
	assert.True(t, c.IsRelative())
	assert.False(t, c.IsDone())
	assert.Contains(t, c.String(), "cardinal spline by")
}

func TestUpdateBeforeStartIsIgnored(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := MustCardinalSpline(NewCatmullRomTo(1, square()))
	assert.NotPanics(t, func() { a.Update(0.5) })
	a.Start(nil)
	assert.NotPanics(t, func() { a.Step(0.1) })
}

func TestUpdateOnEmptiedPointsIsSkipped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := square()
	node := &sprite{pos: pathanim.P(7, 7)}
	a := MustCardinalSpline(NewCatmullRomBy(1, pts))
	a.Start(node)
	a.Update(0.25)
	pos := node.pos
	for pts.N() > 0 {
		require.NoError(t, pts.Remove(0))
	}
	assert.NotPanics(t, func() { a.Update(0.5) })
	assert.Equal(t, pos, node.pos)
}

func TestRunSteps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	node := &sprite{}
	a := MustCardinalSpline(NewCatmullRomTo(1, square()))
	n, err := Run(a, node, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.True(t, a.IsDone())
	assert.Equal(t, pathanim.P(50, 0), node.pos)
	assert.InDelta(t, 1.0, a.Elapsed(), delta)
	// restarting resets the interval
	a.Start(node)
	assert.False(t, a.IsDone())
	a.Step(0.5)
	assert.Equal(t, pathanim.P(0, 0), node.pos, "first tick maps to t=0")
	_, err = Run(a, node, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Run(nil, node, 0.1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestZeroDuration(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	node := &sprite{}
	a := MustCardinalSpline(NewCatmullRomTo(0, square()))
	n, err := Run(a, node, 1.0/60)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, pathanim.P(50, 0), node.pos)
}
