// Package geom provides the ray and segment intersection tests used by the terrain
// generator and by gaze-based plane selection.
//
// Degenerate configurations (parallel rays, parallel segments, zero-length directions)
// are reported as misses, never as errors.
package geom

import (
	gomath "math"

	"github.com/Faultbox/holo-terrain/pkg/math"
)

// Epsilon is the tolerance used for every parallel and near-zero test in this package.
const Epsilon = 1e-6

// Ray represents a ray in 3D space with origin and direction.
// Direction does not need to be normalized; distances are in units of its length.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners, ordering each axis.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Hit is the result of a distance-returning intersection test.
// The zero value is a miss.
type Hit struct {
	T  float32 // parametric distance along the ray, valid only when OK
	OK bool
}

// Miss is the Hit returned when nothing was intersected.
var Miss = Hit{}

func nearZero(f float32) bool {
	return f > -Epsilon && f < Epsilon
}

func component(v math.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// narrow intersects the running slab interval [tmin, tmax] with [t1, t2] (in any order).
// Returns false once the interval is empty.
func narrow(tmin, tmax *float32, t1, t2 float32) bool {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return *tmin <= *tmax
}

var maxFloat32 = float32(gomath.MaxFloat32)
