package picking

import (
	"slices"

	"github.com/Faultbox/holo-terrain/pkg/geom"
	"github.com/Faultbox/holo-terrain/pkg/math"
)

// Selection is the plane hit by a gaze ray.
type Selection struct {
	Index    int // position in the slice passed to Pick
	Plane    BoundedPlane
	Distance float32 // along the ray, in units of its direction length
	Point    math.Vec3
}

// Pick returns the nearest plane hit by ray. When kinds are given, planes of other
// kinds are ignored.
func Pick(ray geom.Ray, planes []BoundedPlane, kinds ...Kind) (Selection, bool) {
	best := Selection{Index: -1}

	for i, p := range planes {
		if len(kinds) > 0 && !slices.Contains(kinds, p.Kind) {
			continue
		}

		hit := Intersect(ray, p)
		if !hit.OK {
			continue
		}
		if best.Index < 0 || hit.T < best.Distance {
			best = Selection{Index: i, Plane: p, Distance: hit.T, Point: ray.At(hit.T)}
		}
	}

	return best, best.Index >= 0
}

// Intersect tests ray against a single plane: a box test in plane space rejects
// misses cheaply, then the quad's two triangles give the distance.
func Intersect(ray geom.Ray, p BoundedPlane) geom.Hit {
	if !p.toLocal(ray).IntersectAABB(p.LocalBounds()) {
		return geom.Miss
	}

	q := p.Quad()
	if hit := ray.IntersectTriangle(q[0], q[1], q[2]); hit.OK {
		return hit
	}
	return ray.IntersectTriangle(q[0], q[2], q[3])
}
