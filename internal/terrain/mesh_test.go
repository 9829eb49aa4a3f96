package terrain

import "testing"

func TestBuildMeshFlat(t *testing.T) {
	hm, _ := NewHeightmap(5, 3, 2) // 11x7
	m := BuildMesh(hm, 1)

	if len(m.Vertices) != 11*7 {
		t.Errorf("vertices = %d, want %d", len(m.Vertices), 11*7)
	}
	if len(m.Indices) != 10*6*6 {
		t.Errorf("indices = %d, want %d", len(m.Indices), 10*6*6)
	}
	for _, v := range m.Vertices {
		if v.Normal != [3]float32{0, 1, 0} {
			t.Fatalf("flat normal = %v, want up", v.Normal)
		}
	}

	// 5 cm across at 2 samples per cm: x spans 0..0.05 m.
	if m.Bounds.Min != [3]float32{0, 0, 0} {
		t.Errorf("bounds min = %v", m.Bounds.Min)
	}
	if d := m.Bounds.Max[0] - 0.05; d > 1e-6 || d < -1e-6 {
		t.Errorf("bounds max x = %v, want 0.05", m.Bounds.Max[0])
	}
	if d := m.Bounds.Max[2] - 0.03; d > 1e-6 || d < -1e-6 {
		t.Errorf("bounds max z = %v, want 0.03", m.Bounds.Max[2])
	}
}

func TestBuildMeshIndicesUseRowStride(t *testing.T) {
	hm, _ := NewHeightmap(6, 2, 1) // 7x3, deliberately not square
	m := BuildMesh(hm, 1)

	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}

	// First cell: (0,0), (1,1), (0,1) then (0,0), (1,0), (1,1).
	want := []uint32{0, 8, 7, 0, 1, 8}
	for i, w := range want {
		if m.Indices[i] != w {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], w)
		}
	}
}

func TestBuildMeshHeights(t *testing.T) {
	hm, _ := NewHeightmap(4, 4, 1)
	hm.Set(2, 2, 3)
	m := BuildMesh(hm, 0.5)

	v := m.Vertices[2*hm.Width+2]
	if v.Position[1] != 1.5 {
		t.Errorf("peak height = %v, want 1.5", v.Position[1])
	}
	if m.Bounds.Max[1] != 1.5 {
		t.Errorf("bounds max y = %v, want 1.5", m.Bounds.Max[1])
	}

	// The slope left of the peak rises towards +x, so its normal leans to -x.
	left := m.Vertices[2*hm.Width+1]
	if left.Normal[0] >= 0 {
		t.Errorf("normal left of peak = %v, want negative x", left.Normal)
	}
	if got := m.Vertices[2*hm.Width+4].TexCoord; got != [2]float32{4.0 / 5, 2.0 / 5} {
		t.Errorf("uv = %v", got)
	}
}
