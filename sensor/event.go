// Package sensor implements input-ray-to-object interaction event delivery
// with allocation-free event recycling.
//
// Event Lifecycle:
//  1. The dispatch path acquires an Event from a Pool
//  2. Producer-side setters populate it (same package only)
//  3. Each registered Listener receives it synchronously, one at a time
//  4. The dispatcher recycles it once the last callback returns
//
// Consumers must treat events as borrowed: every field is valid only for
// the duration of the callback. Copy what outlives the call.
package sensor

import (
	"github.com/lixenwraith/gazekit/cursor"
	"github.com/lixenwraith/gazekit/scene"
	"github.com/lixenwraith/gazekit/vmath"
)

// Event describes one interaction between a controller's input ray and a
// scene node: active/over flags, the hit point, and the references that
// identify the interaction. Node and controller references are borrowed;
// the event never owns their lifetime
type Event struct {
	active     bool
	over       bool
	object     *scene.Node
	controller *cursor.Controller
	hitPoint   vmath.Vec3

	// Free-list link; non-nil only while the event sits in a Pool
	next *Event
}

// Producer-side setters, called by the dispatch path before delivery.
// Unexported: populating an event is not part of the consumer contract.

func (e *Event) setActive(v bool) {
	e.active = v
}

func (e *Event) setOver(v bool) {
	e.over = v
}

func (e *Event) setObject(n *scene.Node) {
	e.object = n
}

func (e *Event) setCursorController(c *cursor.Controller) {
	e.controller = c
}

func (e *Event) setHitPoint(x, y, z float64) {
	e.hitPoint.X = x
	e.hitPoint.Y = y
	e.hitPoint.Z = z
}

// IsActive reports whether the originating input was in a pressed/triggered
// state, e.g. a controller button held while the ray is on the object
func (e *Event) IsActive() bool {
	return e.active
}

// IsOver reports whether the input ray still intersects the object.
// While true, repeated events may be delivered every frame; the transition
// to false delivers exactly one terminating event for the interaction
func (e *Event) IsOver() bool {
	return e.over
}

// Object returns the scene node this event refers to
func (e *Event) Object() *scene.Node {
	return e.object
}

// CursorController returns the controller that generated this event
func (e *Event) CursorController() *cursor.Controller {
	return e.controller
}

// HitX returns the X component of the ray/object intersection point
// Valid only for the duration of the listener callback
func (e *Event) HitX() float64 {
	return e.hitPoint.X
}

// HitY returns the Y component of the intersection point
// Valid only for the duration of the listener callback
func (e *Event) HitY() float64 {
	return e.hitPoint.Y
}

// HitZ returns the Z component of the intersection point
// Valid only for the duration of the listener callback
func (e *Event) HitZ() float64 {
	return e.hitPoint.Z
}

// CopyHitPoint returns the intersection point by value, safe to retain
// past the callback. Replaces the old allocating array accessor; the name
// makes the copy explicit
func (e *Event) CopyHitPoint() vmath.Vec3 {
	return e.hitPoint
}
