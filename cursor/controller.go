package cursor

import (
	"sync/atomic"

	"github.com/lixenwraith/gazekit/vmath"
)

// Kind discriminates input sources
type Kind uint8

const (
	KindGaze    Kind = iota // Head-tracked forward ray
	KindMouse               // Pointer projected into the scene
	KindGamepad             // Hand controller ray
)

// String returns the name of the kind for diagnostics
func (k Kind) String() string {
	switch k {
	case KindGaze:
		return "gaze"
	case KindMouse:
		return "mouse"
	case KindGamepad:
		return "gamepad"
	default:
		return "unknown"
	}
}

// Controller is one input source producing a pick ray
//
// Two sides touch a controller:
//   - Device goroutines call Submit (thread-safe via SampleQueue)
//   - The frame loop calls Drain, then reads Ray/Active until the next Drain
//
// Ray and button state are frame-loop exclusive; only Enabled is shared
type Controller struct {
	name    string
	kind    Kind
	samples *SampleQueue
	enabled atomic.Bool

	// Frame-loop exclusive state, rebuilt by Drain
	origin vmath.Vec3
	dir    vmath.Vec3
	active bool
}

// NewController creates an enabled controller with a default forward ray
func NewController(name string, kind Kind) *Controller {
	c := &Controller{
		name:    name,
		kind:    kind,
		samples: NewSampleQueue(),
		dir:     vmath.Vec3{Z: -1}, // Scene convention: forward is -Z
	}
	c.enabled.Store(true)
	return c
}

func (c *Controller) Name() string {
	return c.name
}

func (c *Controller) Kind() Kind {
	return c.kind
}

// Submit queues a raw device reading; safe from any goroutine
func (c *Controller) Submit(s Sample) {
	c.samples.Push(s)
}

// Drain applies all pending samples in arrival order and reports
// whether any were consumed. Later samples win; a press-and-release
// inside one frame resolves to the released state
// Frame loop only
func (c *Controller) Drain() bool {
	pending := c.samples.Consume()
	if len(pending) == 0 {
		return false
	}
	for _, s := range pending {
		c.origin = s.Origin
		c.dir = s.Dir
		c.active = s.Active
	}
	return true
}

// Ray returns the controller's current pick ray
// Frame loop only; valid between Drain calls
func (c *Controller) Ray() vmath.Ray {
	return vmath.NewRay(c.origin, c.dir)
}

// Active reports the pressed/triggered state from the last drained sample
// Frame loop only
func (c *Controller) Active() bool {
	return c.active
}

// Enabled reports whether the controller participates in picking
func (c *Controller) Enabled() bool {
	return c.enabled.Load()
}

// SetEnabled toggles participation; safe from any goroutine
func (c *Controller) SetEnabled(v bool) {
	c.enabled.Store(v)
}
