// Package engine drives the mechanism through its precomputed time grid,
// one frame per tick, maintaining the bounded trail. It is headless: the
// tcell surface consumes Frame values but the loop itself never touches the
// terminal, so full runs can be exercised in tests.
package engine

import (
	"github.com/lixenwraith/yoke-trace/mechanism"
	"github.com/lixenwraith/yoke-trace/trail"
)

// Frame is the geometry of one animation frame: the two crank pins, the
// slider projections on the rails, the traced intersection point, and a
// snapshot of the trail up to and including this frame.
type Frame struct {
	Index int
	T     float64

	PinX    mechanism.Point // pin of the crank driving the horizontal slider
	PinY    mechanism.Point // pin of the crank driving the vertical slider
	SliderX mechanism.Point // horizontal slider block at (x, 0)
	SliderY mechanism.Point // vertical slider block at (0, y)
	Trace   mechanism.Point // slider intersection, the traced point

	Trail []mechanism.Point
}

// Loop advances the mechanism through a fixed frame grid. The underlying
// curve is quasi-periodic and never retraces, but the rendered loop replays
// the same finite sample set once the grid is exhausted ("non-repeating"
// describes the curve, not the playback).
type Loop struct {
	params mechanism.Params
	grid   []float64
	ring   *trail.Ring
	next   int
	loop   bool
}

// NewLoop builds a loop over grid with the given trail capacity. When
// loopPlayback is false the loop halts after the last frame instead of
// wrapping to frame 0.
func NewLoop(params mechanism.Params, grid []float64, trailCap int, loopPlayback bool) *Loop {
	return &Loop{
		params: params,
		grid:   grid,
		ring:   trail.NewRing(trailCap),
		loop:   loopPlayback,
	}
}

// Frames returns the total number of frames in the grid
func (l *Loop) Frames() int {
	return len(l.grid)
}

// Trail exposes the trail ring for inspection
func (l *Loop) Trail() *trail.Ring {
	return l.ring
}

// Advance computes the next frame, pushes its trace point onto the trail,
// and steps the frame index. wrapped reports that this call replayed frame 0
// after exhausting the grid; ok is false only when the grid is exhausted and
// loop playback is off (or the grid is empty), in which case the frame is
// zero-valued and no state changes.
func (l *Loop) Advance() (f Frame, wrapped bool, ok bool) {
	if len(l.grid) == 0 {
		return Frame{}, false, false
	}
	if l.next == len(l.grid) {
		if !l.loop {
			return Frame{}, false, false
		}
		l.next = 0
		wrapped = true
	}

	i := l.next
	t := l.grid[i]
	trace := l.params.TracePoint(t)

	f = Frame{
		Index:   i,
		T:       t,
		PinX:    l.params.CrankPinX(t),
		PinY:    l.params.CrankPinY(t),
		Trace:   trace,
		SliderX: mechanism.Point{X: trace.X},
		SliderY: mechanism.Point{Y: trace.Y},
	}
	l.ring.Push(f.Trace)
	f.Trail = l.ring.Points()

	l.next = i + 1
	return f, wrapped, true
}

// Reset rewinds playback to frame 0 and clears the trail
func (l *Loop) Reset() {
	l.next = 0
	l.ring.Reset()
}
