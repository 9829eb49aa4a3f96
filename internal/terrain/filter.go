package terrain

import "fmt"

// FIRFilter erodes sharp fault edges with a first-order low-pass filter swept across the
// interior of hm in four directions: each row left to right and back, then each column
// top to bottom and back. Every sample becomes factor*prev + (1-factor)*sample, where
// prev is the already filtered neighbour behind the sweep, seeded from the edge sample.
func FIRFilter(hm *Heightmap, factor float32) error {
	if isNaN(factor) || factor < 0 || factor > 1 {
		return fmt.Errorf("%w: %v (want 0..1)", ErrInvalidFilter, factor)
	}

	w, h := hm.Width, hm.Height
	keep := 1 - factor
	data := hm.Data

	for y := 1; y < h-1; y++ {
		row := y * w

		prev := data[row]
		for x := 1; x < w-1; x++ {
			prev = factor*prev + keep*data[row+x]
			data[row+x] = prev
		}

		prev = data[row+w-1]
		for x := w - 2; x > 0; x-- {
			prev = factor*prev + keep*data[row+x]
			data[row+x] = prev
		}
	}

	for x := 1; x < w-1; x++ {
		prev := data[x]
		for y := 1; y < h-1; y++ {
			i := y*w + x
			prev = factor*prev + keep*data[i]
			data[i] = prev
		}

		prev = data[(h-1)*w+x]
		for y := h - 2; y > 0; y-- {
			i := y*w + x
			prev = factor*prev + keep*data[i]
			data[i] = prev
		}
	}
	return nil
}
