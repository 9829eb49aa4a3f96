package export

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/tiff"

	"github.com/Faultbox/holo-terrain/internal/terrain"
)

// Image converts hm to 16-bit grayscale, scaling heights so the highest sample is
// white. A map with no positive height is all black.
func Image(hm *terrain.Heightmap) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, hm.Width, hm.Height))

	_, hi := hm.MinMax()
	if hi <= 0 {
		return img
	}

	scale := float32(0xffff) / hi
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			v := hm.At(x, y) * scale
			switch {
			case v <= 0:
				v = 0
			case v >= 0xffff:
				v = 0xffff
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(v + 0.5)})
		}
	}
	return img
}

// WriteTIFF encodes hm as a deflate-compressed 16-bit grayscale TIFF.
func WriteTIFF(w io.Writer, hm *terrain.Heightmap) error {
	return tiff.Encode(w, Image(hm), &tiff.Options{Compression: tiff.Deflate})
}
