package scene

import (
	"testing"

	"github.com/lixenwraith/gazekit/vmath"
)

func TestAddRemove(t *testing.T) {
	s := New()
	n := NewNode("a", vmath.Vec3{}, SphereBounds{Radius: 1})

	s.Add(n)
	s.Add(n) // Duplicate add is a no-op
	if s.Len() != 1 {
		t.Errorf("Expected 1 node, got %d", s.Len())
	}

	s.Remove(n)
	if s.Len() != 0 {
		t.Errorf("Expected empty scene, got %d", s.Len())
	}

	s.Remove(n) // Removing absent node is a no-op
}

func TestNodesSnapshot(t *testing.T) {
	s := New()
	a := NewNode("a", vmath.Vec3{}, nil)
	b := NewNode("b", vmath.Vec3{}, nil)
	s.Add(a)
	s.Add(b)

	snap := s.Nodes()
	s.Remove(a)

	if len(snap) != 2 {
		t.Errorf("Expected snapshot unaffected by later removal, got %d", len(snap))
	}
}

func TestPickable(t *testing.T) {
	with := NewNode("with", vmath.Vec3{}, SphereBounds{Radius: 1})
	without := NewNode("without", vmath.Vec3{}, nil)

	if !with.Pickable() {
		t.Error("Expected node with bounds to be pickable")
	}
	if without.Pickable() {
		t.Error("Expected node without bounds to be non-pickable")
	}
}

func TestSphereBoundsFollowPosition(t *testing.T) {
	n := NewNode("moving", vmath.Vec3{Z: -5}, SphereBounds{Radius: 1})
	r := vmath.NewRay(vmath.Vec3{}, vmath.Vec3{Z: -1})

	if _, ok := n.Bounds().IntersectRay(r, n.Position()); !ok {
		t.Fatal("Expected hit at initial position")
	}

	n.SetPosition(vmath.Vec3{X: 10, Z: -5})
	if _, ok := n.Bounds().IntersectRay(r, n.Position()); ok {
		t.Error("Expected miss after moving the node aside")
	}
}

func TestBoxBounds(t *testing.T) {
	b := BoxBounds{HalfExtent: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	r := vmath.NewRay(vmath.Vec3{}, vmath.Vec3{Z: -1})

	t1, ok := b.IntersectRay(r, vmath.Vec3{Z: -5})
	if !ok {
		t.Fatal("Expected hit on box ahead")
	}
	if t1 != 4 {
		t.Errorf("Expected entry at t=4, got %v", t1)
	}
}
