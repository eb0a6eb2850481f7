package sensor

import (
	"testing"

	"github.com/lixenwraith/gazekit/cursor"
	"github.com/lixenwraith/gazekit/scene"
	"github.com/lixenwraith/gazekit/vmath"
)

func TestActiveOverRoundTrip(t *testing.T) {
	e := &Event{}

	e.setActive(true)
	if !e.IsActive() {
		t.Error("Expected IsActive true after setActive(true)")
	}
	e.setActive(false)
	if e.IsActive() {
		t.Error("Expected IsActive false after setActive(false)")
	}

	e.setOver(true)
	if !e.IsOver() {
		t.Error("Expected IsOver true after setOver(true)")
	}
	e.setOver(false)
	if e.IsOver() {
		t.Error("Expected IsOver false after setOver(false)")
	}
}

func TestHitPointRoundTrip(t *testing.T) {
	e := &Event{}
	e.setHitPoint(1.0, 2.0, 3.0)

	if e.HitX() != 1.0 || e.HitY() != 2.0 || e.HitZ() != 3.0 {
		t.Errorf("Expected hit point (1, 2, 3), got (%v, %v, %v)", e.HitX(), e.HitY(), e.HitZ())
	}
}

func TestReferenceAccessors(t *testing.T) {
	e := &Event{}
	n := scene.NewNode("target", vmath.Vec3{}, scene.SphereBounds{Radius: 1})
	c := cursor.NewController("gaze", cursor.KindGaze)

	e.setObject(n)
	e.setCursorController(c)

	if e.Object() != n {
		t.Error("Expected Object to return the set node")
	}
	if e.CursorController() != c {
		t.Error("Expected CursorController to return the set controller")
	}
}

func TestCopyHitPointSurvivesReuse(t *testing.T) {
	e := &Event{}
	e.setHitPoint(1.5, -2.5, 3.5)

	copied := e.CopyHitPoint()

	// Overwrite in place, as the pool does on reuse
	e.setHitPoint(9, 9, 9)

	want := vmath.Vec3{X: 1.5, Y: -2.5, Z: 3.5}
	if copied != want {
		t.Errorf("Expected copy %v to survive reuse, got %v", want, copied)
	}
}

func TestFieldsOverwrittenOnReuse(t *testing.T) {
	p := NewPool(10)
	n1 := scene.NewNode("first", vmath.Vec3{}, nil)
	n2 := scene.NewNode("second", vmath.Vec3{}, nil)
	c := cursor.NewController("gaze", cursor.KindGaze)

	e := p.Acquire()
	e.setObject(n1)
	e.setCursorController(c)
	e.setHitPoint(1, 1, 1)
	e.setActive(true)
	e.setOver(true)
	p.Recycle(e)

	// The dispatch path overwrites every field before delivery; a recycled
	// instance repopulated for a different interaction carries no residue
	reused := p.Acquire()
	if reused != e {
		t.Fatal("Expected pool to reuse the recycled instance")
	}
	reused.setObject(n2)
	reused.setCursorController(c)
	reused.setHitPoint(4, 5, 6)
	reused.setActive(false)
	reused.setOver(false)

	if reused.Object() != n2 || reused.IsActive() || reused.IsOver() {
		t.Error("Expected repopulated event to reflect only the new interaction")
	}
	if reused.HitX() != 4 || reused.HitY() != 5 || reused.HitZ() != 6 {
		t.Error("Expected repopulated hit point")
	}
}
