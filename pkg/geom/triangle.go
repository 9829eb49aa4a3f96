package geom

import "github.com/Faultbox/holo-terrain/pkg/math"

// RayTriangleIntersect tests the ray (origin, dir) against triangle (v0, v1, v2) using the
// Möller–Trumbore algorithm. The hit distance is strictly ahead of the origin.
func RayTriangleIntersect(origin, dir, v0, v1, v2 math.Vec3) Hit {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	h := dir.Cross(e2)
	det := e1.Dot(h)

	// Ray lies in, or parallel to, the triangle's plane.
	if nearZero(det) {
		return Miss
	}
	invDet := 1 / det

	s := origin.Sub(v0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return Miss
	}

	q := s.Cross(e1)
	v := invDet * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return Miss
	}

	t := invDet * e2.Dot(q)
	if t <= Epsilon {
		// On the line but behind the origin.
		return Miss
	}
	return Hit{T: t, OK: true}
}

// IntersectTriangle is the method form of RayTriangleIntersect.
func (r Ray) IntersectTriangle(v0, v1, v2 math.Vec3) Hit {
	return RayTriangleIntersect(r.Origin, r.Direction, v0, v1, v2)
}
