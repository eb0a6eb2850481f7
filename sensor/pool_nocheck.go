//go:build !poolcheck

package sensor

// Release builds skip misuse detection to keep Recycle O(1)
func (p *Pool) assertNotPooled(e *Event) {}
