package picking

import (
	gomath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/holo-terrain/pkg/geom"
	"github.com/Faultbox/holo-terrain/pkg/math"
)

const tolerance = 1e-4

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < tolerance
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// floorAt returns a 2x2 m horizontal plane facing up at height y.
func floorAt(y float32, kind Kind) BoundedPlane {
	return BoundedPlane{
		Center:      math.Vec3{Y: y},
		Orientation: math.QuatFromAxisAngle(math.Vec3{X: 1}, -gomath.Pi/2),
		Extents:     math.Vec3{X: 1, Y: 1},
		Kind:        kind,
	}
}

func TestNormal(t *testing.T) {
	if n := floorAt(0, KindFloor).Normal(); !nearVec(n, math.Vec3{Y: 1}) {
		t.Errorf("floor normal = %v, want +Y", n)
	}
	wall := BoundedPlane{Orientation: math.QuatIdentity(), Extents: math.Vec3{X: 1, Y: 1}, Kind: KindWall}
	if n := wall.Normal(); !nearVec(n, math.Vec3{Z: 1}) {
		t.Errorf("wall normal = %v, want +Z", n)
	}
}

func TestQuad(t *testing.T) {
	p := BoundedPlane{
		Center:      math.Vec3{X: 1, Y: 2, Z: 3},
		Orientation: math.QuatIdentity(),
		Extents:     math.Vec3{X: 1, Y: 2},
	}
	want := [4]math.Vec3{
		{X: 0, Y: 0, Z: 3},
		{X: 2, Y: 0, Z: 3},
		{X: 2, Y: 4, Z: 3},
		{X: 0, Y: 4, Z: 3},
	}
	got := p.Quad()
	for i := range want {
		if !nearVec(got[i], want[i]) {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Rotated quads keep their corners on the plane.
	floor := floorAt(0.5, KindFloor)
	for i, c := range floor.Quad() {
		if !near(c.Y, 0.5) {
			t.Errorf("floor corner %d = %v, want y=0.5", i, c)
		}
	}
}

func TestLocalBounds(t *testing.T) {
	p := BoundedPlane{Extents: math.Vec3{X: 2, Y: 1, Z: 0.1}}
	b := p.LocalBounds()
	if b.Min != (math.Vec3{X: -2, Y: -1, Z: -0.1}) || b.Max != (math.Vec3{X: 2, Y: 1, Z: 0.1}) {
		t.Errorf("LocalBounds = %+v", b)
	}
}

func TestIntersect(t *testing.T) {
	wall := BoundedPlane{
		Center:      math.Vec3{Y: 1, Z: -2},
		Orientation: math.QuatIdentity(),
		Extents:     math.Vec3{X: 1, Y: 1},
		Kind:        KindWall,
	}
	turned := wall
	turned.Center = math.Vec3{X: 3}
	turned.Orientation = math.QuatFromAxisAngle(math.Vec3{Y: 1}, gomath.Pi/4)

	tests := []struct {
		name  string
		ray   geom.Ray
		plane BoundedPlane
		hit   bool
		dist  float32
	}{
		{
			name:  "straight down onto floor",
			ray:   geom.Ray{Origin: math.Vec3{X: 0.2, Y: 2, Z: 0.3}, Direction: math.Vec3{Y: -1}},
			plane: floorAt(0, KindFloor),
			hit:   true,
			dist:  2,
		},
		{
			name:  "outside floor extents",
			ray:   geom.Ray{Origin: math.Vec3{X: 1.5, Y: 2}, Direction: math.Vec3{Y: -1}},
			plane: floorAt(0, KindFloor),
		},
		{
			name:  "floor behind the ray",
			ray:   geom.Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{Y: 1}},
			plane: floorAt(0, KindFloor),
		},
		{
			name:  "gaze at wall",
			ray:   geom.Ray{Origin: math.Vec3{Y: 1}, Direction: math.Vec3{Z: -1}},
			plane: wall,
			hit:   true,
			dist:  2,
		},
		{
			name:  "ray parallel to wall",
			ray:   geom.Ray{Origin: math.Vec3{Y: 1}, Direction: math.Vec3{X: 1}},
			plane: wall,
		},
		{
			name:  "turned wall hit through its centre",
			ray:   geom.Ray{Origin: math.Vec3{Z: 0}, Direction: math.Vec3{X: 1}},
			plane: turned,
			hit:   true,
			dist:  3,
		},
		{
			name:  "turned wall missed beside its edge",
			ray:   geom.Ray{Origin: math.Vec3{Z: 1}, Direction: math.Vec3{X: 1}},
			plane: turned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.ray, tt.plane)
			if got.OK != tt.hit {
				t.Fatalf("hit = %v, want %v", got.OK, tt.hit)
			}
			if tt.hit && !near(got.T, tt.dist) {
				t.Errorf("distance = %v, want %v", got.T, tt.dist)
			}
		})
	}
}

func TestPickNearest(t *testing.T) {
	planes := []BoundedPlane{
		floorAt(0, KindFloor),
		floorAt(1, KindPlatform),
	}
	ray := geom.Ray{Origin: math.Vec3{X: 0.1, Y: 3, Z: -0.1}, Direction: math.Vec3{Y: -1}}

	sel, ok := Pick(ray, planes)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.Index != 1 || sel.Plane.Kind != KindPlatform {
		t.Errorf("selected %d (%s), want the platform", sel.Index, sel.Plane.Kind)
	}
	if !near(sel.Distance, 2) {
		t.Errorf("distance = %v, want 2", sel.Distance)
	}
	if !nearVec(sel.Point, math.Vec3{X: 0.1, Y: 1, Z: -0.1}) {
		t.Errorf("point = %v", sel.Point)
	}
}

func TestPickFiltersKinds(t *testing.T) {
	planes := []BoundedPlane{
		floorAt(0, KindFloor),
		floorAt(1, KindPlatform),
	}
	ray := geom.Ray{Origin: math.Vec3{Y: 3}, Direction: math.Vec3{Y: -1}}

	sel, ok := Pick(ray, planes, KindFloor)
	if !ok {
		t.Fatal("expected the floor")
	}
	if sel.Index != 0 || !near(sel.Distance, 3) {
		t.Errorf("selected %d at %v, want floor at 3", sel.Index, sel.Distance)
	}

	if _, ok := Pick(ray, planes, KindWall, KindCeiling); ok {
		t.Error("no wall or ceiling should be selected")
	}
}

func TestPickNothing(t *testing.T) {
	sel, ok := Pick(geom.Ray{Direction: math.Vec3{Y: -1}}, nil)
	if ok {
		t.Error("expected no selection from an empty list")
	}
	if sel.Index != -1 {
		t.Errorf("Index = %d, want -1", sel.Index)
	}
}

func TestLoadPlanes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planes.yaml")
	content := `
planes:
  - kind: floor
    center: {x: 0, y: 0, z: 0}
    orientation: {x: -0.70710677, y: 0, z: 0, w: 0.70710677}
    extents: {x: 2, y: 3}
  - center: {x: 0, y: 1, z: -2}
    extents: {x: 1, y: 1}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write planes: %v", err)
	}

	planes, err := LoadPlanes(path)
	if err != nil {
		t.Fatalf("LoadPlanes: %v", err)
	}
	if len(planes) != 2 {
		t.Fatalf("got %d planes, want 2", len(planes))
	}

	if planes[0].Kind != KindFloor {
		t.Errorf("kind = %q, want floor", planes[0].Kind)
	}
	if planes[0].Extents.X != 2 || planes[0].Extents.Y != 3 {
		t.Errorf("extents = %v", planes[0].Extents)
	}
	if n := planes[0].Normal(); !nearVec(n, math.Vec3{Y: 1}) {
		t.Errorf("floor normal = %v, want +Y", n)
	}

	if planes[1].Kind != KindUnknown {
		t.Errorf("missing kind = %q, want unknown", planes[1].Kind)
	}
	if planes[1].Orientation != math.QuatIdentity() {
		t.Errorf("missing orientation = %v, want identity", planes[1].Orientation)
	}
}

func TestLoadPlanesInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad kind", "planes:\n  - kind: table\n    extents: {x: 1, y: 1}\n", "kind"},
		{"zero extents", "planes:\n  - kind: wall\n    extents: {x: 0, y: 1}\n", "extents"},
		{"bad yaml", "planes: [\n", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "planes.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write planes: %v", err)
			}
			_, err := LoadPlanes(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := LoadPlanes(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
