package scene

import (
	"math"
	"testing"
)

func approx(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestProjectionCorners(t *testing.T) {
	sizes := [][2]int{{800, 600}, {1280, 720}, {1, 1}, {333, 77}}
	for _, sz := range sizes {
		p := NewProjection(sz[0], sz[1])
		m := p.Matrix()

		tests := []struct {
			name         string
			x, y         float32
			wantX, wantY float32
		}{
			{"top-left", 0, 0, -1, 1},
			{"bottom-right", float32(sz[0]), float32(sz[1]), 1, -1},
			{"center", float32(sz[0]) / 2, float32(sz[1]) / 2, 0, 0},
			{"top-right", float32(sz[0]), 0, 1, 1},
		}
		for _, tt := range tests {
			gx, gy := m.TransformPoint(tt.x, tt.y)
			if !approx(gx, tt.wantX) || !approx(gy, tt.wantY) {
				t.Errorf("%v %s: (%v,%v) -> (%v,%v), want (%v,%v)", sz, tt.name, tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
			}
		}
	}
}

func TestProjectionResizeRecomputes(t *testing.T) {
	p := NewProjection(100, 100)
	before := p.Matrix()
	p.SetViewportPixels(200, 50)
	after := p.Matrix()
	if before == after {
		t.Fatal("matrix unchanged after resize")
	}
	x, y := after.TransformPoint(200, 50)
	if !approx(x, 1) || !approx(y, -1) {
		t.Errorf("bottom-right after resize = (%v,%v)", x, y)
	}
}

func TestProjectionToPixelsRoundTrip(t *testing.T) {
	p := NewProjection(640, 480)
	m := p.Matrix()
	for _, pt := range [][2]float32{{0, 0}, {640, 480}, {12.5, 400}} {
		nx, ny := m.TransformPoint(pt[0], pt[1])
		px, py := p.ToPixels(nx, ny)
		if !approx(px, pt[0]) || !approx(py, pt[1]) {
			t.Errorf("round trip %v -> (%v,%v)", pt, px, py)
		}
	}
}

func TestProjectionDegenerate(t *testing.T) {
	p := NewProjection(0, 0)
	if p.Matrix() != Identity() {
		t.Errorf("zero-size projection should be identity")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Ortho(0, 10, 10, 0, -1, 1)
	if Mul(Identity(), m) != m || Mul(m, Identity()) != m {
		t.Error("identity is not neutral")
	}
}

func TestMulTranslateScale(t *testing.T) {
	// scale then translate: unit point (1,1) -> (2*1+5, 3*1+7)
	m := Mul(Translate(5, 7, 0), Scale(2, 3, 1))
	x, y := m.TransformPoint(1, 1)
	if !approx(x, 7) || !approx(y, 10) {
		t.Errorf("got (%v,%v), want (7,10)", x, y)
	}
}
