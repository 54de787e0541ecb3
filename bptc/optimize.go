package bptc

import "github.com/go-gl/mathgl/mgl32"

// Least-squares endpoint fitting shared by the BC6H and BC7 encoders. Both variants start from
// the bounding box of the points, pick the diagonal that best matches the data, then run a few
// Newton iterations on the sum of squared errors against an evenly stepped palette.

const (
	minNormalFloat32 = 0x1p-126
	flatAxisLimit    = 1.0 / 4096.0
	newtonEpsilon    = (0.25 / 64.0) * (0.25 / 64.0)
	newtonIterations = 8
)

var (
	stepsC3 = []float32{2.0 / 2.0, 1.0 / 2.0, 0.0 / 2.0}
	stepsD3 = []float32{0.0 / 2.0, 1.0 / 2.0, 2.0 / 2.0}
	stepsC4 = []float32{3.0 / 3.0, 2.0 / 3.0, 1.0 / 3.0, 0.0 / 3.0}
	stepsD4 = []float32{0.0 / 3.0, 1.0 / 3.0, 2.0 / 3.0, 3.0 / 3.0}
)

func stepWeights(steps int) (c, d []float32) {
	if steps == 3 {
		return stepsC3, stepsD3
	}
	return stepsC4, stepsD4
}

func stepIndex(dot, fSteps float32, steps int) int {
	switch {
	case dot <= 0:
		return 0
	case dot >= fSteps:
		return steps - 1
	default:
		return int(dot + 0.5)
	}
}

// optimizeRGB fits two endpoints to pts for a palette of steps (3 or 4) entries.
func optimizeRGB(pts []mgl32.Vec3, steps int) (x, y mgl32.Vec3) {
	pc, pd := stepWeights(steps)

	x, y = pts[0], pts[0]
	for _, p := range pts[1:] {
		for ch := 0; ch < 3; ch++ {
			if p[ch] < x[ch] {
				x[ch] = p[ch]
			}
			if p[ch] > y[ch] {
				y[ch] = p[ch]
			}
		}
	}

	ab := y.Sub(x)
	fAB := ab.Dot(ab)
	if fAB < minNormalFloat32 {
		return x, y
	}

	dir := ab.Mul(1 / fAB)
	mid := x.Add(y).Mul(0.5)
	var fDir [4]float32
	for _, p := range pts {
		r := (p[0] - mid[0]) * dir[0]
		g := (p[1] - mid[1]) * dir[1]
		b := (p[2] - mid[2]) * dir[2]

		f := r + g + b
		fDir[0] += f * f
		f = r + g - b
		fDir[1] += f * f
		f = r - g + b
		fDir[2] += f * f
		f = r - g - b
		fDir[3] += f * f
	}

	best := 0
	for i := 1; i < len(fDir); i++ {
		if fDir[i] > fDir[best] {
			best = i
		}
	}
	if best&2 != 0 {
		x[1], y[1] = y[1], x[1]
	}
	if best&1 != 0 {
		x[2], y[2] = y[2], x[2]
	}

	if fAB < flatAxisLimit {
		return x, y
	}

	fSteps := float32(steps - 1)
	for iter := 0; iter < newtonIterations; iter++ {
		var palette [4]mgl32.Vec3
		for s := 0; s < steps; s++ {
			palette[s] = x.Mul(pc[s]).Add(y.Mul(pd[s]))
		}

		dir = y.Sub(x)
		l := dir.Dot(dir)
		if l < flatAxisLimit {
			break
		}
		dir = dir.Mul(fSteps / l)

		var d2X, d2Y float32
		var dX, dY mgl32.Vec3
		for _, p := range pts {
			s := stepIndex(p.Sub(x).Dot(dir), fSteps, steps)
			diff := palette[s].Sub(p)
			fc := pc[s] * (1.0 / 8.0)
			fd := pd[s] * (1.0 / 8.0)

			d2X += fc * pc[s]
			dX = dX.Add(diff.Mul(fc))
			d2Y += fd * pd[s]
			dY = dY.Add(diff.Mul(fd))
		}

		if d2X > 0 {
			x = x.Add(dX.Mul(-1 / d2X))
		}
		if d2Y > 0 {
			y = y.Add(dY.Mul(-1 / d2Y))
		}

		if dX[0]*dX[0] < newtonEpsilon && dX[1]*dX[1] < newtonEpsilon && dX[2]*dX[2] < newtonEpsilon &&
			dY[0]*dY[0] < newtonEpsilon && dY[1]*dY[1] < newtonEpsilon && dY[2]*dY[2] < newtonEpsilon {
			break
		}
	}
	return x, y
}

// optimizeRGBA is optimizeRGB with alpha as a fourth correlated channel.
func optimizeRGBA(pts []mgl32.Vec4, steps int) (x, y mgl32.Vec4) {
	pc, pd := stepWeights(steps)

	x, y = pts[0], pts[0]
	for _, p := range pts[1:] {
		for ch := 0; ch < 4; ch++ {
			if p[ch] < x[ch] {
				x[ch] = p[ch]
			}
			if p[ch] > y[ch] {
				y[ch] = p[ch]
			}
		}
	}

	ab := y.Sub(x)
	fAB := ab.Dot(ab)
	if fAB < minNormalFloat32 {
		return x, y
	}

	dir := ab.Mul(1 / fAB)
	mid := x.Add(y).Mul(0.5)
	var fDir [8]float32
	for _, p := range pts {
		r := (p[0] - mid[0]) * dir[0]
		g := (p[1] - mid[1]) * dir[1]
		b := (p[2] - mid[2]) * dir[2]
		a := (p[3] - mid[3]) * dir[3]

		// Bit 2 flips green, bit 1 blue, bit 0 alpha.
		for i := range fDir {
			f := r
			if i&4 != 0 {
				f -= g
			} else {
				f += g
			}
			if i&2 != 0 {
				f -= b
			} else {
				f += b
			}
			if i&1 != 0 {
				f -= a
			} else {
				f += a
			}
			fDir[i] += f * f
		}
	}

	best := 0
	for i := 1; i < len(fDir); i++ {
		if fDir[i] > fDir[best] {
			best = i
		}
	}
	if best&4 != 0 {
		x[1], y[1] = y[1], x[1]
	}
	if best&2 != 0 {
		x[2], y[2] = y[2], x[2]
	}
	if best&1 != 0 {
		x[3], y[3] = y[3], x[3]
	}

	if fAB < flatAxisLimit {
		return x, y
	}

	fSteps := float32(steps - 1)
	for iter := 0; iter < newtonIterations; iter++ {
		var palette [4]mgl32.Vec4
		for s := 0; s < steps; s++ {
			palette[s] = x.Mul(pc[s]).Add(y.Mul(pd[s]))
		}

		dir = y.Sub(x)
		l := dir.Dot(dir)
		if l < flatAxisLimit {
			break
		}
		dir = dir.Mul(fSteps / l)

		var d2X, d2Y float32
		var dX, dY mgl32.Vec4
		for _, p := range pts {
			s := stepIndex(p.Sub(x).Dot(dir), fSteps, steps)
			diff := palette[s].Sub(p)
			fc := pc[s] * (1.0 / 8.0)
			fd := pd[s] * (1.0 / 8.0)

			d2X += fc * pc[s]
			dX = dX.Add(diff.Mul(fc))
			d2Y += fd * pd[s]
			dY = dY.Add(diff.Mul(fd))
		}

		if d2X > 0 {
			x = x.Add(dX.Mul(-1 / d2X))
		}
		if d2Y > 0 {
			y = y.Add(dY.Mul(-1 / d2Y))
		}

		if dX.Dot(dX) < newtonEpsilon && dY.Dot(dY) < newtonEpsilon {
			break
		}
	}
	return x, y
}

// selectBestShapes moves the items lowest rough errors, and their shapes in order, to the front.
func selectBestShapes(rough []float32, order []int, items int) {
	for i := 0; i < items; i++ {
		for j := i + 1; j < len(rough); j++ {
			if rough[i] > rough[j] {
				rough[i], rough[j] = rough[j], rough[i]
				order[i], order[j] = order[j], order[i]
			}
		}
	}
}
