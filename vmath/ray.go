package vmath

import (
	"math"
)

// Ray is a half-line cast from an input controller into the scene
// Dir is expected to be normalized; NewRay enforces this
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay builds a ray with a normalized direction
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: V3Normalize(dir)}
}

// Point returns the position at parameter t along the ray
func (r Ray) Point(t float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Dir, t))
}

// RaySphere intersects a ray with a sphere
// Returns (t, true) for the nearest non-negative intersection distance
// A ray starting inside the sphere hits the exit surface
func RaySphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := V3Sub(r.Origin, center)
	// Dir is unit length, so a = 1
	b := 2.0 * V3Dot(oc, r.Dir)
	c := V3MagSq(oc) - radius*radius

	disc := b*b - 4*c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t := (-b - sq) / 2
	if t < 0 {
		t = (-b + sq) / 2
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RayBox intersects a ray with an axis-aligned box via the slab method
// min/max are the box corners in scene coordinates
// Returns (t, true) for the nearest non-negative entry distance
func RayBox(r Ray, min, max Vec3) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origins := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dirs := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	mins := [3]float64{min.X, min.Y, min.Z}
	maxs := [3]float64{max.X, max.Y, max.Z}

	for i := 0; i < 3; i++ {
		if dirs[i] == 0 {
			// Parallel to slab, must be within it
			if origins[i] < mins[i] || origins[i] > maxs[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dirs[i]
		t1 := (mins[i] - origins[i]) * inv
		t2 := (maxs[i] - origins[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Origin inside the box
		return tMax, true
	}
	return tMin, true
}
