package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate springs are stepped at when none is given
const DefaultFPS = 60

const (
	restDisplacement = 0.001
	restSpeed        = 0.001
)

// Value is a continuously animated scalar. It can be set directly or
// sprung toward a target; Tick advances a running spring by one frame.
type Value struct {
	pos    float64
	vel    float64
	target float64

	animating bool
	fps       int
	cfg       SpringConfig
	spring    harmonica.Spring
	hasSpring bool
}

// NewValue creates a resting value stepped at fps frames per second
func NewValue(initial float64, fps int) *Value {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Value{pos: initial, target: initial, fps: fps}
}

// Value returns the current position
func (v *Value) Value() float64 {
	return v.pos
}

// Velocity returns the current speed in units per second
func (v *Value) Velocity() float64 {
	return v.vel
}

// Target returns where the value is heading, or its position at rest
func (v *Value) Target() float64 {
	return v.target
}

// Settled reports whether no spring is running
func (v *Value) Settled() bool {
	return !v.animating
}

// FPS returns the frame rate Tick assumes
func (v *Value) FPS() int {
	return v.fps
}

// Set moves the value immediately and stops any running spring
func (v *Value) Set(x float64) {
	v.pos = x
	v.vel = 0
	v.target = x
	v.animating = false
}

// SpringTo starts, or retargets, a spring toward target. Position and
// velocity carry over so a new target never causes a jump.
func (v *Value) SpringTo(target float64, cfg SpringConfig) {
	if !v.hasSpring || cfg != v.cfg {
		v.cfg = cfg
		v.spring = cfg.harmonica(v.fps)
		v.hasSpring = true
	}
	v.target = target
	v.animating = true
	if v.atRest() {
		v.finish()
	}
}

// Tick advances a running spring by one frame. It returns true while
// the value is still moving.
func (v *Value) Tick() bool {
	if !v.animating {
		return false
	}
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	if v.atRest() {
		v.finish()
		return false
	}
	return true
}

// Interpolate derives a value linearly mapped from in onto out
func (v *Value) Interpolate(in, out Range) *Interpolation {
	return &Interpolation{src: v, in: in, out: out}
}

func (v *Value) atRest() bool {
	return math.Abs(v.pos-v.target) < restDisplacement && math.Abs(v.vel) < restSpeed
}

func (v *Value) finish() {
	v.pos = v.target
	v.vel = 0
	v.animating = false
}
