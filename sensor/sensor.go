package sensor

import (
	"sync"

	"github.com/lixenwraith/gazekit/cursor"
	"github.com/lixenwraith/gazekit/scene"
	"github.com/lixenwraith/gazekit/vmath"
)

// Hit is one ray/node intersection handed to a sensor for the current frame
type Hit struct {
	Node  *scene.Node
	Point vmath.Vec3
}

// interaction keys the per-frame "over" bookkeeping
// A node can be hovered by several controllers independently
type interaction struct {
	node       *scene.Node
	controller *cursor.Controller
}

// Sensor turns per-frame hit sets into listener callbacks
//
// Delivery semantics:
//   - While a controller's ray intersects an observed node, an event with
//     IsOver() == true is delivered every processed frame
//   - When the ray leaves the node, exactly one event with IsOver() == false
//     is delivered, terminating the interaction
//
// Events are drawn from the injected Pool, delivered synchronously to each
// listener in registration order, and recycled before ProcessFrame returns
type Sensor struct {
	mu        sync.RWMutex
	pool      *Pool
	listeners []Listener
	objects   map[*scene.Node]struct{}
	over      map[interaction]struct{}
}

// New creates a sensor drawing events from pool
// A nil pool gets a private default-capacity pool
func New(pool *Pool) *Sensor {
	if pool == nil {
		pool = NewPool(0)
	}
	return &Sensor{
		pool:    pool,
		objects: make(map[*scene.Node]struct{}),
		over:    make(map[interaction]struct{}),
	}
}

// AddListener registers a listener
// Listeners are invoked in registration order and cannot be removed;
// a sensor's listener set is fixed for its lifetime once wired
func (s *Sensor) AddListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Attach makes the sensor observe a node
func (s *Sensor) Attach(n *scene.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[n] = struct{}{}
}

// Detach stops observing a node and forgets any in-progress interactions
// with it. No exit event is delivered; the node is gone from the sensor's
// point of view
func (s *Sensor) Detach(n *scene.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, n)
	for key := range s.over {
		if key.node == n {
			delete(s.over, key)
		}
	}
}

// Observes reports whether the sensor watches the node
func (s *Sensor) Observes(n *scene.Node) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[n]
	return ok
}

// ProcessFrame delivers events for one controller's hit set
//
// hits may contain nodes the sensor does not observe; they are skipped.
// An empty or nil hits slice still runs exit processing, so the dispatcher
// must call this every frame for every controller, hit or not
//
// Called from the frame loop; one ProcessFrame runs at a time per sensor
func (s *Sensor) ProcessFrame(ctrl *cursor.Controller, hits []Hit) {
	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()

	seen := make(map[interaction]struct{}, len(hits))

	for _, h := range hits {
		if !s.Observes(h.Node) {
			continue
		}
		key := interaction{node: h.Node, controller: ctrl}
		seen[key] = struct{}{}

		s.mu.Lock()
		s.over[key] = struct{}{}
		s.mu.Unlock()

		s.deliver(listeners, h.Node, ctrl, h.Point, true)
	}

	// Exit events for interactions this controller no longer sustains
	s.mu.Lock()
	var exited []*scene.Node
	for key := range s.over {
		if key.controller != ctrl {
			continue
		}
		if _, ok := seen[key]; !ok {
			delete(s.over, key)
			exited = append(exited, key.node)
		}
	}
	s.mu.Unlock()

	for _, n := range exited {
		s.deliver(listeners, n, ctrl, vmath.Vec3{}, false)
	}
}

// deliver acquires, populates, dispatches and recycles one event
// Listeners run synchronously in order; the event storage is reused the
// moment the last callback returns
func (s *Sensor) deliver(listeners []Listener, n *scene.Node, ctrl *cursor.Controller, point vmath.Vec3, over bool) {
	e := s.pool.Acquire()
	e.setObject(n)
	e.setCursorController(ctrl)
	e.setHitPoint(point.X, point.Y, point.Z)
	e.setOver(over)
	e.setActive(ctrl.Active())

	for _, l := range listeners {
		l.OnSensorEvent(e)
	}

	s.pool.Recycle(e)
}
