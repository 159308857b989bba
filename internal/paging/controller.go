package paging

import (
	"log"

	"swiper/internal/animation"
	"swiper/internal/gesture"
)

// Commit thresholds for a released drag. A drag past half a page commits
// on its own; a shorter one commits if flung at least this fast
// (pointer units per millisecond).
const (
	commitOffset   = 0.5
	commitVelocity = 0.5
)

// State is the interaction state of a Controller
type State int

const (
	Idle State = iota
	Dragging
	Settling
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "idle"
	}
}

// Scalar is the animated scroll position a Controller drives. It is
// expressed in pages: an integer at rest, fractional while moving.
type Scalar interface {
	Value() float64
	Set(value float64)
	SpringTo(target float64, cfg animation.SpringConfig)
	Settled() bool
	Interpolate(in, out animation.Range) *animation.Interpolation
}

// PageChangeListener is told about every committed index change
type PageChangeListener interface {
	PageChanged(index int)
}

// PageChangeFunc adapts a function to a PageChangeListener
type PageChangeFunc func(index int)

// PageChanged implements PageChangeListener
func (f PageChangeFunc) PageChanged(index int) {
	if f != nil {
		f(index)
	}
}

// Options configures a Controller
type Options struct {
	InitialIndex  int
	TotalPages    int
	ViewportWidth float64
	Spring        animation.SpringConfig
	Gate          Gate
	OnPageChange  PageChangeListener
}

// Controller owns the authoritative page index and keeps the scroll
// position consistent with it across drags, settles and external index
// changes. It is not safe for concurrent use; every method is expected to
// run on the UI event loop.
type Controller struct {
	index  int
	total  int
	width  float64
	state  State
	scroll Scalar

	spring   animation.SpringConfig
	gate     Gate
	listener PageChangeListener
}

// NewController creates a controller resting on the clamped initial index
func NewController(scroll Scalar, opts Options) *Controller {
	c := &Controller{
		total:    max(opts.TotalPages, 1),
		scroll:   scroll,
		spring:   opts.Spring,
		gate:     opts.Gate,
		listener: opts.OnPageChange,
	}
	if c.spring == (animation.SpringConfig{}) {
		c.spring = animation.DefaultSpringConfig()
	}
	if c.gate == nil {
		c.gate = AllowAll
	}
	if c.listener == nil {
		c.listener = PageChangeFunc(nil)
	}
	c.SetViewportWidth(opts.ViewportWidth)
	c.index = Clamp(opts.InitialIndex, c.total)
	c.scroll.Set(float64(c.index))
	return c
}

// Index returns the authoritative page index
func (c *Controller) Index() int { return c.index }

// TotalPages returns the number of pages
func (c *Controller) TotalPages() int { return c.total }

// ViewportWidth returns the last known width, zero if none yet
func (c *Controller) ViewportWidth() float64 { return c.width }

// State returns the current interaction state
func (c *Controller) State() State { return c.state }

// ScrollPosition returns the live page coordinate
func (c *Controller) ScrollPosition() float64 { return c.scroll.Value() }

// Translation returns the horizontal offset of the page strip, in the
// same units as the viewport width.
func (c *Controller) Translation() float64 {
	return c.scroll.Interpolate(animation.Range{0, 1}, animation.Range{0, -c.width}).Value()
}

// SetViewportWidth records a measured width. Non-positive widths are
// ignored. The scroll position is not rescaled.
func (c *Controller) SetViewportWidth(w float64) {
	if w > 0 {
		c.width = w
	}
}

// SetTotalPages updates the page count after the collection changed and
// pulls the index back into range if it fell outside.
func (c *Controller) SetTotalPages(n int) {
	c.total = max(n, 1)
	if c.index > c.total-1 {
		c.SetExternalIndex(c.index)
	}
}

// GoToPage clamps target, commits it, springs toward it and then tells
// the listener.
func (c *Controller) GoToPage(target int) int {
	target = Clamp(target, c.total)
	c.index = target
	c.state = Settling
	c.scroll.SpringTo(float64(target), c.spring)
	c.listener.PageChanged(target)
	return target
}

// SetExternalIndex adopts an index chosen by the owner of the pager. It is
// not gated and does not notify the listener; the caller already knows.
func (c *Controller) SetExternalIndex(index int) int {
	c.index = Clamp(index, c.total)
	c.state = Settling
	c.scroll.SpringTo(float64(c.index), c.spring)
	return c.index
}

// Sync returns a settling controller to Idle once the scroll position has
// come to rest.
func (c *Controller) Sync() State {
	if c.state == Settling && c.scroll.Settled() {
		c.state = Idle
	}
	return c.state
}

// GestureStart implements gesture.Handler
func (c *Controller) GestureStart(gesture.State) {
	c.state = Dragging
}

// GestureMove tracks the pointer directly with no animation
func (c *Controller) GestureMove(s gesture.State) {
	if c.state != Dragging {
		c.state = Dragging
	}
	c.scroll.Set(float64(c.index) - c.relativeOffset(s.DX))
}

// GestureRelease decides where a drag lands and commits it
func (c *Controller) GestureRelease(s gesture.State) {
	c.release(s)
}

// GestureTerminate is treated like a release
func (c *Controller) GestureTerminate(s gesture.State) {
	c.release(s)
}

func (c *Controller) release(s gesture.State) int {
	candidate := c.Clamp(c.index + c.direction(c.relativeOffset(s.DX), s.VX))
	target := c.index

	// The gate is only asked about moves that survive clamping
	if candidate != c.index {
		if v := c.gate.ShouldContinue(candidate); v.Allows() {
			target = candidate
		} else {
			log.Printf("paging: swipe to page %d vetoed", candidate)
		}
	}
	return c.GoToPage(target)
}

// Clamp bounds index into this controller's page range
func (c *Controller) Clamp(index int) int {
	return Clamp(index, c.total)
}

// direction returns +1 to advance, -1 to go back or 0 to snap back
func (c *Controller) direction(rel, vx float64) int {
	switch {
	case rel < -commitOffset || (rel < 0 && vx <= -commitVelocity):
		return 1
	case rel > commitOffset || (rel > 0 && vx >= commitVelocity):
		return -1
	default:
		return 0
	}
}

func (c *Controller) relativeOffset(dx float64) float64 {
	if c.width <= 0 {
		return 0
	}
	return dx / c.width
}
