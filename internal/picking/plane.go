// Package picking selects detected surface planes with a gaze ray.
package picking

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/holo-terrain/internal/logger"
	"github.com/Faultbox/holo-terrain/pkg/geom"
	"github.com/Faultbox/holo-terrain/pkg/math"
)

// Kind classifies a detected plane.
type Kind string

// Plane kinds reported by surface detection.
const (
	KindFloor    Kind = "floor"
	KindCeiling  Kind = "ceiling"
	KindWall     Kind = "wall"
	KindPlatform Kind = "platform"
	KindUnknown  Kind = "unknown"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFloor, KindCeiling, KindWall, KindPlatform, KindUnknown:
		return true
	}
	return false
}

// BoundedPlane is a finite rectangle in world space. In plane space the rectangle spans
// ±Extents.X along X and ±Extents.Y along Y; Z is the normal and Extents.Z an optional
// half thickness.
type BoundedPlane struct {
	Center      math.Vec3 `yaml:"center"`
	Orientation math.Quat `yaml:"orientation"`
	Extents     math.Vec3 `yaml:"extents"`
	Kind        Kind      `yaml:"kind"`
}

// Normal returns the plane's world-space normal.
func (p BoundedPlane) Normal() math.Vec3 {
	return p.Orientation.Rotate(math.Vec3{Z: 1})
}

// Quad returns the four world-space corners, counter-clockwise seen from the normal side.
func (p BoundedPlane) Quad() [4]math.Vec3 {
	ex, ey := p.Extents.X, p.Extents.Y
	local := [4]math.Vec3{
		{X: -ex, Y: -ey},
		{X: ex, Y: -ey},
		{X: ex, Y: ey},
		{X: -ex, Y: ey},
	}
	var quad [4]math.Vec3
	for i, c := range local {
		quad[i] = p.Center.Add(p.Orientation.Rotate(c))
	}
	return quad
}

// LocalBounds returns the plane's box in plane space.
func (p BoundedPlane) LocalBounds() geom.AABB {
	e := p.Extents.Abs()
	return geom.AABB{Min: e.Scale(-1), Max: e}
}

// toLocal expresses a world-space ray in plane space.
func (p BoundedPlane) toLocal(r geom.Ray) geom.Ray {
	inv := p.Orientation.Normalize().Conjugate()
	return geom.Ray{
		Origin:    inv.Rotate(r.Origin.Sub(p.Center)),
		Direction: inv.Rotate(r.Direction),
	}
}

// Validate rejects planes that cannot be picked.
func (p BoundedPlane) Validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("unknown plane kind %q", p.Kind)
	}
	if p.Extents.X <= 0 || p.Extents.Y <= 0 || p.Extents.Z < 0 {
		return fmt.Errorf("plane extents must be positive, got (%g, %g, %g)", p.Extents.X, p.Extents.Y, p.Extents.Z)
	}
	return nil
}

// planeFile is the YAML layout read by LoadPlanes.
type planeFile struct {
	Planes []BoundedPlane `yaml:"planes"`
}

// LoadPlanes reads a YAML plane list. A plane without a kind is KindUnknown and a
// missing orientation is the identity.
func LoadPlanes(path string) ([]BoundedPlane, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file planeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i := range file.Planes {
		p := &file.Planes[i]
		if p.Kind == "" {
			p.Kind = KindUnknown
		}
		p.Orientation = p.Orientation.Normalize()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
	}

	logger.Debug("loaded planes", zap.String("path", path), zap.Int("count", len(file.Planes)))
	return file.Planes, nil
}
