package geom

import "github.com/Faultbox/holo-terrain/pkg/math"

// Intersection is the result of intersecting the lines through two segments.
type Intersection struct {
	Point math.Vec2
	UA    float32 // fraction along p1->p2
	UB    float32 // fraction along p3->p4
}

// Bounded reports whether the crossing lies strictly inside both segments.
func (i Intersection) Bounded() bool {
	return i.UA > 0 && i.UA < 1 && i.UB > 0 && i.UB < 1
}

// Forward reports whether the crossing lies ahead of p1 on the ray p1->p2, wherever it
// falls on the second line.
func (i Intersection) Forward() bool {
	return i.UA > 0
}

// SegmentIntersect intersects the line through p1, p2 with the line through p3, p4.
// ok is false when the lines are parallel (|denom| < Epsilon). Callers choose whether
// the crossing counts by checking Bounded or Forward.
func SegmentIntersect(p1, p2, p3, p4 math.Vec2) (Intersection, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if nearZero(denom) {
		return Intersection{}, false
	}

	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom

	return Intersection{
		Point: p1.Lerp(p2, ua),
		UA:    ua,
		UB:    ub,
	}, true
}
