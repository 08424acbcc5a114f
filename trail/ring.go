package trail

import "github.com/lixenwraith/yoke-trace/mechanism"

// Ring is a fixed-capacity circular buffer of trace points. Push overwrites
// the oldest entry once full, so the buffer never exceeds its capacity and
// never pays for front deletion. Single writer (the frame loop), single
// reader (the renderer), invoked strictly alternately.
type Ring struct {
	data []mechanism.Point
	pos  int
	full bool
}

// NewRing creates a ring holding at most capacity points. Capacity 0 is
// valid: every Push is a no-op and the ring stays empty.
func NewRing(capacity int) *Ring {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring{data: make([]mechanism.Point, capacity)}
}

// Push appends a point, silently evicting the oldest when full. Always
// succeeds.
func (r *Ring) Push(p mechanism.Point) {
	if len(r.data) == 0 {
		return
	}
	r.data[r.pos] = p
	r.pos++
	if r.pos == len(r.data) {
		r.pos = 0
		r.full = true
	}
}

// Len returns the number of stored points
func (r *Ring) Len() int {
	if r.full {
		return len(r.data)
	}
	return r.pos
}

// Cap returns the ring capacity
func (r *Ring) Cap() int {
	return len(r.data)
}

// Points returns the stored points in chronological order, most recent
// last. The returned slice is freshly allocated; the caller may keep it
// across frames.
func (r *Ring) Points() []mechanism.Point {
	out := make([]mechanism.Point, r.Len())
	if r.full {
		n := copy(out, r.data[r.pos:])
		copy(out[n:], r.data[:r.pos])
	} else {
		copy(out, r.data[:r.pos])
	}
	return out
}

// Reset empties the ring without reallocating
func (r *Ring) Reset() {
	r.pos = 0
	r.full = false
}
