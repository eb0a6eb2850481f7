package parameter

import "time"

// Controller sample queue
const (
	// SampleQueueSize is the fixed capacity of the per-controller sample ring buffer
	// Power of two for mask-based indexing
	SampleQueueSize = 256

	// SampleBufferMask is the bitmask for fast modulo operations (256 - 1)
	SampleBufferMask = 255
)

// Pick loop
const (
	// DefaultPickRange is the maximum ray distance considered a hit, in scene units
	DefaultPickRange = 100.0

	// FrameInterval is the dispatch loop period when the manager runs its own loop
	// ~60Hz, matching the render tick the sensor path shadows
	FrameInterval = 16 * time.Millisecond
)
