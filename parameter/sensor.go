package parameter

// Sensor event recycling
const (
	// MaxRecycledEvents bounds the sensor event free list
	// Recycle calls beyond this occupancy drop the instance for GC
	// Matches MotionEvent-style recyclers; tunable via config
	MaxRecycledEvents = 10
)
