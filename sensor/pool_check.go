//go:build poolcheck

package sensor

// assertNotPooled panics if e already sits in the free list (double recycle)
// O(capacity) walk, debug builds only. Caller holds p.mu
func (p *Pool) assertNotPooled(e *Event) {
	for cur := p.top; cur != nil; cur = cur.next {
		if cur == e {
			panic("sensor: event recycled twice without an intervening acquire")
		}
	}
}
