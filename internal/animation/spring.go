package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Default spring parameters, in the friction/tension terms pager
// configuration is written in.
const (
	DefaultFriction = 7.0
	DefaultTension  = 40.0
)

// SpringConfig describes a settle animation by friction and tension.
type SpringConfig struct {
	Friction float64
	Tension  float64
}

// DefaultSpringConfig returns the spring used when nothing is configured
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Friction: DefaultFriction, Tension: DefaultTension}
}

// stiffness and damping follow the Origami conversion from
// tension/friction to a unit-mass spring.
func (c SpringConfig) stiffness() float64 {
	k := (c.Tension-30)*3.62 + 194
	if k < 1 {
		return 1
	}
	return k
}

func (c SpringConfig) damping() float64 {
	d := (c.Friction-8)*3 + 25
	if d < 0 {
		return 0
	}
	return d
}

// AngularFrequency is the undamped angular frequency of the spring.
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.stiffness())
}

// DampingRatio is zeta; below one the spring overshoots before resting.
func (c SpringConfig) DampingRatio() float64 {
	return c.damping() / (2 * math.Sqrt(c.stiffness()))
}

func (c SpringConfig) harmonica(fps int) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), c.AngularFrequency(), c.DampingRatio())
}
