package geom

import "github.com/Faultbox/holo-terrain/pkg/math"

// RayAABBIntersect tests the ray (origin, dir) against box using the slab method from
// Ericson's Real-Time Collision Detection.
//
// The parallel-slab test looks at the origin component rather than the direction
// component, matching the plane-selection code this was ported alongside. A ray whose
// origin sits on a world axis plane is therefore treated as parallel to that slab.
// Use RayAABBIntersectStrict for the textbook behaviour.
func RayAABBIntersect(origin, dir math.Vec3, box AABB) bool {
	return slabs(origin, dir, box, origin)
}

// RayAABBIntersectStrict is RayAABBIntersect with the parallel test applied to the ray
// direction.
func RayAABBIntersectStrict(origin, dir math.Vec3, box AABB) bool {
	return slabs(origin, dir, box, dir)
}

// slabs runs the three slab tests. parallel supplies the component compared against
// Epsilon to decide whether the ray is parallel to a slab.
func slabs(origin, dir math.Vec3, box AABB, parallel math.Vec3) bool {
	tmin := float32(0)
	tmax := maxFloat32

	for axis := 0; axis < 3; axis++ {
		p := component(origin, axis)
		lo := component(box.Min, axis)
		hi := component(box.Max, axis)

		if nearZero(component(parallel, axis)) {
			// No hit if the origin is outside a slab the ray cannot cross.
			if p < lo || p > hi {
				return false
			}
			continue
		}

		ood := 1 / component(dir, axis)
		if !narrow(&tmin, &tmax, (lo-p)*ood, (hi-p)*ood) {
			return false
		}
	}
	return true
}

// RayOBBIntersect tests the ray (origin, dir) against an oriented box described by a
// local AABB and its world transform. The transform's basis vectors are taken as the
// box axes and must be unit length.
func RayOBBIntersect(origin, dir math.Vec3, local AABB, world math.Mat4) bool {
	tmin := float32(0)
	tmax := maxFloat32

	delta := world.Translation().Sub(origin)

	for axis := 0; axis < 3; axis++ {
		a := world.Axis(axis)
		e := a.Dot(delta)
		f := dir.Dot(a)

		// Parallel to this pair of faces.
		if nearZero(f) {
			return false
		}

		t1 := (e + component(local.Min, axis)) / f
		t2 := (e + component(local.Max, axis)) / f
		if !narrow(&tmin, &tmax, t1, t2) {
			return false
		}
	}
	return true
}

// IntersectAABB is the method form of RayAABBIntersectStrict.
func (r Ray) IntersectAABB(box AABB) bool {
	return RayAABBIntersectStrict(r.Origin, r.Direction, box)
}

// IntersectOBB is the method form of RayOBBIntersect.
func (r Ray) IntersectOBB(local AABB, world math.Mat4) bool {
	return RayOBBIntersect(r.Origin, r.Direction, local, world)
}
