// Package picker casts controller rays against the scene and drives
// sensor event dispatch once per frame.
package picker

import (
	"sort"

	"github.com/lixenwraith/gazekit/parameter"
	"github.com/lixenwraith/gazekit/scene"
	"github.com/lixenwraith/gazekit/vmath"
)

// Hit is one ray/node intersection, ordered by distance from the ray origin
type Hit struct {
	Node     *scene.Node
	Point    vmath.Vec3
	Distance float64
}

// Picker performs ray casts against a scene
type Picker struct {
	scene    *scene.Scene
	maxRange float64
}

// NewPicker creates a picker over the given scene
// maxRange <= 0 selects parameter.DefaultPickRange
func NewPicker(sc *scene.Scene, maxRange float64) *Picker {
	if maxRange <= 0 {
		maxRange = parameter.DefaultPickRange
	}
	return &Picker{scene: sc, maxRange: maxRange}
}

// Pick returns all nodes intersected by the ray within range,
// nearest first. Non-pickable nodes are skipped
func (p *Picker) Pick(r vmath.Ray) []Hit {
	var hits []Hit
	for _, n := range p.scene.Nodes() {
		if !n.Pickable() {
			continue
		}
		t, ok := n.Bounds().IntersectRay(r, n.Position())
		if !ok || t > p.maxRange {
			continue
		}
		hits = append(hits, Hit{
			Node:     n,
			Point:    r.Point(t),
			Distance: t,
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// MaxRange returns the pick distance bound in scene units
func (p *Picker) MaxRange() float64 {
	return p.maxRange
}
