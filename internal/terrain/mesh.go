package terrain

import "github.com/Faultbox/holo-terrain/pkg/math"

// BuildMesh builds a grid mesh with one vertex per heightmap sample, laid out in metres
// on the XZ plane with heights along Y scaled by heightScale. Each grid cell becomes two
// triangles.
func BuildMesh(hm *Heightmap, heightScale float32) *Mesh {
	w, h := hm.Width, hm.Height
	cell := 1 / (100 * float32(hm.Resolution))

	vertices := make([]Vertex, 0, w*h)
	indices := make([]uint32, 0, (w-1)*(h-1)*6)

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for y := range h {
		for x := range w {
			pos := [3]float32{
				float32(x) * cell,
				hm.At(x, y) * heightScale,
				float32(y) * cell,
			}
			updateBounds(&bounds, pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   sampleNormal(hm, x, y, heightScale, cell),
				TexCoord: [2]float32{float32(x) / float32(w), float32(y) / float32(h)},
			})
		}
	}

	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			i := uint32(y*w + x)
			row := uint32(w)
			indices = append(indices,
				i, i+row+1, i+row,
				i, i+1, i+row+1,
			)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// sampleNormal estimates the surface normal at (x, y) from central differences,
// falling back to one-sided differences on the border.
func sampleNormal(hm *Heightmap, x, y int, heightScale, cell float32) [3]float32 {
	x0, x1 := max(x-1, 0), min(x+1, hm.Width-1)
	y0, y1 := max(y-1, 0), min(y+1, hm.Height-1)

	dx := (hm.At(x1, y) - hm.At(x0, y)) * heightScale / (float32(x1-x0) * cell)
	dz := (hm.At(x, y1) - hm.At(x, y0)) * heightScale / (float32(y1-y0) * cell)

	return math.Vec3{X: -dx, Y: 1, Z: -dz}.Normalize().Array()
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
