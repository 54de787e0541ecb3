package bptc

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOptimizeRGB_CollinearPoints(t *testing.T) {
	pts := []mgl32.Vec3{
		{0, 0, 0},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{2.0 / 3, 2.0 / 3, 2.0 / 3},
		{1, 1, 1},
	}
	x, y := optimizeRGB(pts, 4)
	if !x.ApproxEqualThreshold(mgl32.Vec3{0, 0, 0}, 1e-3) || !y.ApproxEqualThreshold(mgl32.Vec3{1, 1, 1}, 1e-3) {
		t.Fatalf("got %v %v want (0,0,0) (1,1,1)", x, y)
	}
}

func TestOptimizeRGB_AntiDiagonal(t *testing.T) {
	// Red decreases while green increases: the fitted line must follow that direction.
	pts := []mgl32.Vec3{{1, 0, 0.5}, {0.5, 0.5, 0.5}, {0, 1, 0.5}}
	x, y := optimizeRGB(pts, 3)
	if (x[0]-y[0])*(x[1]-y[1]) >= 0 {
		t.Fatalf("endpoints %v %v do not follow the anti-diagonal", x, y)
	}
}

func TestOptimizeRGBA_DegenerateInput(t *testing.T) {
	p := mgl32.Vec4{0.25, 0.5, 0.75, 1}
	pts := []mgl32.Vec4{p, p, p}
	x, y := optimizeRGBA(pts, 4)
	if x != p || y != p {
		t.Fatalf("got %v %v want both %v", x, y, p)
	}
}

func TestOptimizeRGBA_AlphaOnlyRamp(t *testing.T) {
	pts := make([]mgl32.Vec4, 0, 16)
	for i := 0; i < 16; i++ {
		pts = append(pts, mgl32.Vec4{0.2, 0.2, 0.2, float32(i) / 15})
	}
	x, y := optimizeRGBA(pts, 4)
	lo, hi := min(x[3], y[3]), max(x[3], y[3])
	if lo > 0.2 || hi < 0.8 {
		t.Fatalf("alpha endpoints %v %v do not span the ramp", x[3], y[3])
	}
}

func TestSelectBestShapes(t *testing.T) {
	rough := []float32{5, 1, 4, 1, 0.5, 9}
	order := []int{0, 1, 2, 3, 4, 5}
	selectBestShapes(rough, order, 3)
	if order[0] != 4 || order[1] != 3 || order[2] != 1 {
		t.Fatalf("got order %v want prefix [4 3 1]", order)
	}
}
