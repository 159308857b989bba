package gesture

import (
	"math"
	"time"
)

// DefaultThreshold is the drag distance, in pointer units, a horizontal
// pan must cover before it is claimed.
const DefaultThreshold = 25.0

// velocityWindow bounds how old the last movement may be at release for
// its velocity to still count; a pointer held still has no fling. Samples
// older than this relative to the newest one are also left out of the
// velocity average.
const velocityWindow = 100 * time.Millisecond

// velocitySamples is how many recent positions the velocity is averaged over
const velocitySamples = 3

// Point is a pointer position in pointer units
type Point struct {
	X float64
	Y float64
}

// State is the accumulated gesture since the pointer went down. DX and DY
// are cumulative displacements; VX and VY are in pointer units per
// millisecond.
type State struct {
	DX float64
	DY float64
	VX float64
	VY float64
}

// Handler receives the lifecycle of a claimed horizontal drag
type Handler interface {
	GestureStart(s State)
	GestureMove(s State)
	GestureRelease(s State)
	GestureTerminate(s State)
}

type phase int

const (
	phaseIdle phase = iota
	phasePending
	phaseClaimed
)

// ShouldClaim reports whether a pan is predominantly horizontal and has
// travelled at least threshold.
func ShouldClaim(dx, dy, threshold float64) bool {
	return math.Abs(dx) > math.Abs(dy) && math.Abs(dx) >= threshold
}

// Recognizer turns raw pointer down/move/up events into horizontal drag
// events. Gestures it does not claim are left to whoever else is
// listening to the pointer.
type Recognizer struct {
	threshold float64
	handler   Handler

	phase   phase
	origin  Point
	last    Point
	lastAt  time.Time
	state   State
	samples []sample
}

type sample struct {
	p  Point
	at time.Time
}

// NewRecognizer creates a recognizer that reports claimed drags to h
func NewRecognizer(threshold float64, h Handler) *Recognizer {
	if threshold < 0 {
		threshold = 0
	}
	return &Recognizer{threshold: threshold, handler: h}
}

// Threshold returns the claim distance
func (r *Recognizer) Threshold() float64 {
	return r.threshold
}

// Active reports whether a drag has been claimed and not yet ended
func (r *Recognizer) Active() bool {
	return r.phase == phaseClaimed
}

// Down starts tracking a pointer. A press during a claimed drag ends
// that drag first.
func (r *Recognizer) Down(p Point, at time.Time) {
	if r.phase == phaseClaimed {
		r.Cancel()
	}
	r.phase = phasePending
	r.origin = p
	r.last = p
	r.lastAt = at
	r.state = State{}
	r.samples = append(r.samples[:0], sample{p, at})
}

// Move updates the gesture. It returns true when the move belongs to a
// claimed drag.
func (r *Recognizer) Move(p Point, at time.Time) bool {
	if r.phase == phaseIdle {
		return false
	}
	r.track(p, at)

	if r.phase == phasePending {
		if !ShouldClaim(r.state.DX, r.state.DY, r.threshold) {
			return false
		}
		r.phase = phaseClaimed
		r.handler.GestureStart(r.state)
	}
	r.handler.GestureMove(r.state)
	return true
}

// Up ends the gesture. A claimed drag is released with its final
// displacement and velocity; an unclaimed press is dropped.
func (r *Recognizer) Up(p Point, at time.Time) bool {
	if r.phase != phaseClaimed {
		r.phase = phaseIdle
		return false
	}
	if at.Sub(r.lastAt) > velocityWindow {
		r.state.VX, r.state.VY = 0, 0
	}
	if p != r.last {
		r.track(p, at)
	}
	s := r.state
	r.phase = phaseIdle
	r.handler.GestureRelease(s)
	return true
}

// Cancel terminates a claimed drag without a pointer release, as when
// the terminal loses focus.
func (r *Recognizer) Cancel() bool {
	if r.phase != phaseClaimed {
		r.phase = phaseIdle
		return false
	}
	s := r.state
	r.phase = phaseIdle
	r.handler.GestureTerminate(s)
	return true
}

func (r *Recognizer) track(p Point, at time.Time) {
	r.samples = append(r.samples, sample{p, at})
	if len(r.samples) > velocitySamples {
		r.samples = r.samples[len(r.samples)-velocitySamples:]
	}
	r.state.VX, r.state.VY = r.velocity()
	r.state.DX = p.X - r.origin.X
	r.state.DY = p.Y - r.origin.Y
	r.last = p
	r.lastAt = at
}

// velocity averages over the recent samples inside velocityWindow. With
// only one sample that recent it falls back to the last pair.
func (r *Recognizer) velocity() (vx, vy float64) {
	n := len(r.samples)
	if n < 2 {
		return r.state.VX, r.state.VY
	}
	newest := r.samples[n-1]
	oldest := r.samples[n-2]
	for i := n - 3; i >= 0; i-- {
		if newest.at.Sub(r.samples[i].at) > velocityWindow {
			break
		}
		oldest = r.samples[i]
	}
	dt := newest.at.Sub(oldest.at)
	if dt <= 0 {
		return r.state.VX, r.state.VY
	}
	ms := float64(dt) / float64(time.Millisecond)
	return (newest.p.X - oldest.p.X) / ms, (newest.p.Y - oldest.p.Y) / ms
}
