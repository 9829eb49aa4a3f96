package terrain

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/holo-terrain/pkg/geom"
	"github.com/Faultbox/holo-terrain/pkg/math"
)

// Rand is the random source the generator draws from. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Float32() float32
}

// maxRotation is the largest deviation of a child segment from its parent's perpendicular.
const maxRotation = gomath.Pi / 4

// Generator applies fault-formation passes to a heightmap.
type Generator struct {
	hm  *Heightmap
	rng Rand
}

// NewGenerator returns a generator mutating hm with randomness from rng.
func NewGenerator(hm *Heightmap, rng Rand) *Generator {
	return &Generator{hm: hm, rng: rng}
}

func (g *Generator) uniform(lo, hi float32) float32 {
	return lo + g.rng.Float32()*(hi-lo)
}

// border returns the edges of the map polygon in clipping order: bottom, right, top, left.
func (g *Generator) border() [4][2]math.Vec2 {
	maxX := float32(g.hm.Width - 1)
	maxY := float32(g.hm.Height - 1)
	c0 := math.Vec2{X: 0, Y: 0}
	c1 := math.Vec2{X: maxX, Y: 0}
	c2 := math.Vec2{X: maxX, Y: maxY}
	c3 := math.Vec2{X: 0, Y: maxY}
	return [4][2]math.Vec2{{c0, c1}, {c1, c2}, {c2, c3}, {c3, c0}}
}

// reach is long enough for a segment from any point on the map to leave it.
func (g *Generator) reach() float32 {
	return float32(g.hm.Width + g.hm.Height)
}

// BuildPartitionTree builds a fresh random partition tree with the given depth.
func (g *Generator) BuildPartitionTree(depth int) (*Tree, error) {
	t, err := NewTree(depth)
	if err != nil {
		return nil, err
	}
	g.build(t, t.Root(), depth)
	return t, nil
}

func (g *Generator) build(t *Tree, i, depth int) {
	if i == t.Root() {
		g.placeRoot(t)
	} else {
		g.placeChild(t, i)
	}

	if depth > 1 {
		g.build(t, t.Left(i), depth-1)
		g.build(t, t.Right(i), depth-1)
	}
}

func (g *Generator) placeRoot(t *Tree) {
	maxX := float32(g.hm.Width - 1)
	maxY := float32(g.hm.Height - 1)
	t.Nodes[0] = Node{
		Start: math.Vec2{X: g.uniform(0, maxX), Y: g.uniform(0, maxY)},
		End:   math.Vec2{X: g.uniform(0, maxX), Y: g.uniform(0, maxY)},
	}
}

// placeChild starts node i on the middle half of its parent's segment and runs it off
// towards its side of the parent, stopping at the map border or the first ancestor
// segment in the way.
func (g *Generator) placeChild(t *Tree, i int) {
	p, _ := t.Parent(i)
	parent := t.Nodes[p]

	start := parent.Start.Lerp(parent.End, g.uniform(0.25, 0.75))

	d := parent.Direction()
	var perp math.Vec2
	switch {
	case d.Length() < geom.Epsilon:
		// Degenerate parent, no side to pick.
		perp = math.Vec2{X: 1}.Rotate(g.uniform(0, 2*gomath.Pi))
	case t.IsLeft(i):
		perp = d.PerpLeft().Normalize()
	default:
		perp = d.PerpRight().Normalize()
	}
	dir := perp.Rotate(g.uniform(-maxRotation, maxRotation))

	end := start.Add(dir.Scale(g.reach()))

	for k, edge := range g.border() {
		hit, ok := geom.SegmentIntersect(start, end, edge[0], edge[1])
		if !ok {
			continue
		}
		if (k == 0 && hit.Forward()) || (k > 0 && hit.Bounded()) {
			end = hit.Point
		}
	}

	a, ok := t.Parent(p)
	for ok {
		anc := t.Nodes[a]
		if hit, crosses := geom.SegmentIntersect(start, end, anc.Start, anc.End); crosses && hit.Bounded() {
			end = hit.Point
		}
		a, ok = t.Parent(a)
	}

	t.Nodes[i] = Node{Start: start, End: end}
}

// IterateFaultFormation builds a partition tree of the given depth and raises or lowers
// every interior sample by the faults it falls beside. Each level contributes half the
// amplitude of the level above; the total is attenuated towards the map edge and the
// result clamped at zero.
func (g *Generator) IterateFaultFormation(depth int, amplitude float32) error {
	if isNaN(amplitude) || gomath.IsInf(float64(amplitude), 0) {
		return fmt.Errorf("terrain: amplitude %v is not finite", amplitude)
	}
	t, err := g.BuildPartitionTree(depth)
	if err != nil {
		return err
	}

	hm := g.hm
	for y := 1; y < hm.Height-1; y++ {
		for x := 1; x < hm.Width-1; x++ {
			h := classify(t, float32(x), float32(y), amplitude)
			idx := y*hm.Width + x
			hm.Data[idx] = max(hm.Data[idx]+h*hm.CenterFalloff(x, y), 0)
		}
	}
	return nil
}

// classify walks t from the root towards the leaf containing (x, y), adding the level's
// amplitude on the right of each segment and subtracting it on the left.
func classify(t *Tree, x, y, amplitude float32) float32 {
	var h float32
	i := t.Root()
	a := amplitude
	for level := 0; level < t.Depth; level++ {
		n := t.Nodes[i]
		d := n.Direction()
		side := (x-n.Start.X)*d.Y - d.X*(y-n.Start.Y)
		if side > 0 {
			h += a
			i = t.Right(i)
		} else {
			h -= a
			i = t.Left(i)
		}
		a /= 2
	}
	return h
}

func isNaN(f float32) bool {
	return f != f
}
