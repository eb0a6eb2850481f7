package scene

import (
	"github.com/lixenwraith/gazekit/vmath"
)

// Bounds is a pickable volume attached to a node
// Implementations are local to the node; the node's position is passed at query time
type Bounds interface {
	// IntersectRay returns the nearest non-negative hit distance along the ray
	// at is the owning node's position in scene coordinates
	IntersectRay(r vmath.Ray, at vmath.Vec3) (float64, bool)
}

// SphereBounds is a sphere centered on the node position
type SphereBounds struct {
	Radius float64
}

func (b SphereBounds) IntersectRay(r vmath.Ray, at vmath.Vec3) (float64, bool) {
	return vmath.RaySphere(r, at, b.Radius)
}

// BoxBounds is an axis-aligned box centered on the node position
type BoxBounds struct {
	HalfExtent vmath.Vec3
}

func (b BoxBounds) IntersectRay(r vmath.Ray, at vmath.Vec3) (float64, bool) {
	min := vmath.V3Sub(at, b.HalfExtent)
	max := vmath.V3Add(at, b.HalfExtent)
	return vmath.RayBox(r, min, max)
}

// Node is a pickable scene entity
// The sensor subsystem stores node references inside events but never owns them;
// the scene owns node lifetime
//
// Position and bounds are written only by the owner (main loop or scene setup)
// and read by the pick loop; concurrent writers need external coordination
type Node struct {
	name     string
	position vmath.Vec3
	bounds   Bounds
}

// NewNode creates a node with the given bounds
// bounds may be nil for a non-pickable node
func NewNode(name string, position vmath.Vec3, bounds Bounds) *Node {
	return &Node{
		name:     name,
		position: position,
		bounds:   bounds,
	}
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Position() vmath.Vec3 {
	return n.position
}

func (n *Node) SetPosition(p vmath.Vec3) {
	n.position = p
}

func (n *Node) Bounds() Bounds {
	return n.bounds
}

func (n *Node) SetBounds(b Bounds) {
	n.bounds = b
}

// Pickable reports whether the node can appear in pick results
func (n *Node) Pickable() bool {
	return n.bounds != nil
}
