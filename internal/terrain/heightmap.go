// Package terrain generates fault-formation heightmaps and the grid mesh they displace.
package terrain

import (
	"fmt"
	gomath "math"
)

// Heightmap is a dense grid of non-negative heights stored row-major.
// Sample (x, y) lives at Data[y*Width+x].
type Heightmap struct {
	Width      int // samples along x, widthCm*Resolution + 1
	Height     int // samples along y, heightCm*Resolution + 1
	Resolution int // samples per centimetre
	Data       []float32
}

// NewHeightmap allocates a zeroed heightmap covering widthCm x heightCm at the given
// number of samples per centimetre.
func NewHeightmap(widthCm, heightCm, resolution int) (*Heightmap, error) {
	if widthCm <= 0 || heightCm <= 0 || resolution <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cm at %d/cm", ErrInvalidDimensions, widthCm, heightCm, resolution)
	}
	w := widthCm*resolution + 1
	h := heightCm*resolution + 1
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("%w: %dx%d samples has no interior", ErrInvalidDimensions, w, h)
	}

	return &Heightmap{
		Width:      w,
		Height:     h,
		Resolution: resolution,
		Data:       make([]float32, w*h),
	}, nil
}

// Index returns the offset of sample (x, y) in Data.
// Panics if the sample lies outside the grid.
func (hm *Heightmap) Index(x, y int) int {
	if x < 0 || y < 0 || x >= hm.Width || y >= hm.Height {
		panic(fmt.Sprintf("terrain: sample (%d, %d) outside %dx%d heightmap", x, y, hm.Width, hm.Height))
	}
	return y*hm.Width + x
}

// At returns the height at (x, y).
func (hm *Heightmap) At(x, y int) float32 {
	return hm.Data[hm.Index(x, y)]
}

// Set stores the height at (x, y).
func (hm *Heightmap) Set(x, y int, v float32) {
	hm.Data[hm.Index(x, y)] = v
}

// Reset zero-fills the grid in place.
func (hm *Heightmap) Reset() {
	clear(hm.Data)
}

// Snapshot copies the grid into dst, growing it if needed, and returns it.
// Renderers upload from the copy so they never observe a half-applied update.
func (hm *Heightmap) Snapshot(dst []float32) []float32 {
	if cap(dst) < len(hm.Data) {
		dst = make([]float32, len(hm.Data))
	}
	dst = dst[:len(hm.Data)]
	copy(dst, hm.Data)
	return dst
}

// MinMax returns the smallest and largest heights.
func (hm *Heightmap) MinMax() (lo, hi float32) {
	lo = float32(gomath.MaxFloat32)
	hi = -lo
	for _, v := range hm.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// CenterFalloff returns the edge attenuation factor for sample (x, y): 1 around the
// centre, falling bilinearly to 0 at the corners.
func (hm *Heightmap) CenterFalloff(x, y int) float32 {
	halfW := float32(hm.Width) / 2
	halfH := float32(hm.Height) / 2
	dx := 1 - absf(halfW-float32(x))/halfW
	dy := 1 - absf(halfH-float32(y))/halfH
	return min(4*dx*dy, 1)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
