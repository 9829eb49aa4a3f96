package terrain

import (
	"errors"
	"testing"
)

func TestNewHeightmap(t *testing.T) {
	hm, err := NewHeightmap(30, 20, 2)
	if err != nil {
		t.Fatalf("NewHeightmap: %v", err)
	}
	if hm.Width != 61 || hm.Height != 41 {
		t.Errorf("size = %dx%d, want 61x41", hm.Width, hm.Height)
	}
	if len(hm.Data) != 61*41 {
		t.Errorf("len(Data) = %d, want %d", len(hm.Data), 61*41)
	}
	for i, v := range hm.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewHeightmapInvalid(t *testing.T) {
	tests := []struct {
		name                string
		width, height, res int
	}{
		{"zero width", 0, 10, 1},
		{"negative height", 10, -1, 1},
		{"zero resolution", 10, 10, 0},
		{"no interior", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHeightmap(tt.width, tt.height, tt.res)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("err = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestHeightmapIndexOutOfRange(t *testing.T) {
	hm, _ := NewHeightmap(2, 2, 1)
	defer func() {
		if recover() == nil {
			t.Error("At outside the grid should panic")
		}
	}()
	hm.At(hm.Width, 0)
}

func TestHeightmapSetAt(t *testing.T) {
	hm, _ := NewHeightmap(4, 3, 1)
	hm.Set(2, 1, 7)
	if got := hm.At(2, 1); got != 7 {
		t.Errorf("At(2, 1) = %v, want 7", got)
	}
	if got := hm.Data[1*hm.Width+2]; got != 7 {
		t.Errorf("row-major storage: Data = %v, want 7", got)
	}
}

func TestHeightmapReset(t *testing.T) {
	hm, _ := NewHeightmap(4, 4, 1)
	backing := &hm.Data[0]
	for i := range hm.Data {
		hm.Data[i] = float32(i)
	}

	hm.Reset()

	if &hm.Data[0] != backing {
		t.Error("Reset should not reallocate")
	}
	for i, v := range hm.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %v after Reset", i, v)
		}
	}
}

func TestHeightmapSnapshot(t *testing.T) {
	hm, _ := NewHeightmap(3, 3, 1)
	hm.Set(1, 1, 2)

	snap := hm.Snapshot(nil)
	hm.Set(1, 1, 5)
	if snap[hm.Index(1, 1)] != 2 {
		t.Error("snapshot should not alias the heightmap")
	}

	buf := make([]float32, 0, 64)
	reused := hm.Snapshot(buf)
	if &reused[0] != &buf[:1][0] {
		t.Error("snapshot should reuse a large enough buffer")
	}
	if len(reused) != len(hm.Data) || reused[hm.Index(1, 1)] != 5 {
		t.Errorf("snapshot content mismatch: len %d", len(reused))
	}
}

func TestHeightmapMinMax(t *testing.T) {
	hm, _ := NewHeightmap(3, 3, 1)
	hm.Set(1, 2, 4)
	hm.Set(2, 1, 1.5)
	lo, hi := hm.MinMax()
	if lo != 0 || hi != 4 {
		t.Errorf("MinMax = %v, %v, want 0, 4", lo, hi)
	}
}

func TestCenterFalloff(t *testing.T) {
	hm, _ := NewHeightmap(30, 20, 2) // 61x41

	if got := hm.CenterFalloff(hm.Width/2, hm.Height/2); got != 1 {
		t.Errorf("falloff at centre = %v, want 1", got)
	}
	if got := hm.CenterFalloff(0, 0); got != 0 {
		t.Errorf("falloff at origin corner = %v, want 0", got)
	}

	corners := [][2]int{{hm.Width - 1, 0}, {0, hm.Height - 1}, {hm.Width - 1, hm.Height - 1}}
	for _, c := range corners {
		if got := hm.CenterFalloff(c[0], c[1]); got < 0 || got > 0.01 {
			t.Errorf("falloff at corner %v = %v, want ~0", c, got)
		}
	}

	// Monotone along the diagonal from a corner towards the centre.
	prev := float32(-1)
	for i := 0; i <= hm.Height/2; i++ {
		got := hm.CenterFalloff(i, i)
		if got < prev {
			t.Fatalf("falloff decreased towards centre at %d: %v < %v", i, got, prev)
		}
		prev = got
	}
}
