package sensor

import (
	"sync"

	"github.com/lixenwraith/gazekit/parameter"
)

// Pool is a bounded free-list allocator for Events
//
// The input path runs every frame; recycling keeps it allocation-free in
// steady state. Reuse is LIFO so the hottest instance comes back first
//
// Thread-Safety:
//   - Acquire/Recycle: one mutex around the list-pointer and counter updates
//   - No blocking work ever runs under the lock
//
// Caller contract:
//   - Never recycle an instance twice per acquisition
//   - Never touch an instance after recycling it
//
// Violations are undefined on the release path; build with -tags poolcheck
// to panic on double-recycle during development
type Pool struct {
	mu       sync.Mutex
	top      *Event // Most recently recycled instance
	occupied int    // Free-list length, avoids traversal for the bound check
	capacity int
}

// NewPool creates a pool retaining at most capacity recycled events
// capacity <= 0 selects parameter.MaxRecycledEvents
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = parameter.MaxRecycledEvents
	}
	return &Pool{capacity: capacity}
}

// Acquire returns an event for exclusive use, reusing the most recently
// recycled instance when one is cached and constructing otherwise
// Never blocks, never fails. The free-list link is cleared before return
func (p *Pool) Acquire() *Event {
	p.mu.Lock()
	e := p.top
	if e == nil {
		p.mu.Unlock()
		return &Event{}
	}
	p.top = e.next
	p.occupied--
	p.mu.Unlock()

	// Clear the link outside the lock; the instance is exclusively ours
	e.next = nil
	return e
}

// Recycle returns an event to the free list, or drops it for GC when the
// pool is at capacity. The caller must not use the event afterward
func (p *Pool) Recycle(e *Event) {
	p.mu.Lock()
	p.assertNotPooled(e)
	if p.occupied < p.capacity {
		p.occupied++
		e.next = p.top
		p.top = e
	}
	p.mu.Unlock()
}

// Cached returns the current free-list occupancy
func (p *Pool) Cached() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.occupied
}

// Capacity returns the retention bound
func (p *Pool) Capacity() int {
	return p.capacity
}
