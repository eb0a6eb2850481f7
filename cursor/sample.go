package cursor

import (
	"github.com/lixenwraith/gazekit/vmath"
)

// Sample is one raw input reading from a device source
// Device goroutines produce samples; the frame loop consumes them
type Sample struct {
	Origin vmath.Vec3 // Ray origin in scene coordinates
	Dir    vmath.Vec3 // Ray direction, normalized by the producer
	Active bool       // Pressed/triggered state of the source
}
