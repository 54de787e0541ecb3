package bptc

import "github.com/go-gl/mathgl/mgl32"

// LDRColor is an 8-bit-per-channel RGBA texel.
type LDRColor struct {
	R, G, B, A uint8
}

// HDRColor is a float RGBA texel.
type HDRColor struct {
	R, G, B, A float32
}

func (c LDRColor) get(ch int) uint8 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	panic("bptc: channel index out of range")
}

func (c *LDRColor) set(ch int, v uint8) {
	switch ch {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	default:
		panic("bptc: channel index out of range")
	}
}

// HDR returns c scaled to [0,1].
func (c LDRColor) HDR() HDRColor {
	const k = 1.0 / 255.0
	return HDRColor{float32(c.R) * k, float32(c.G) * k, float32(c.B) * k, float32(c.A) * k}
}

// LDR converts c to 8 bits per channel, clamping to [0,1] and rounding with a small bias.
func (c HDRColor) LDR() LDRColor {
	return LDRColor{unitToByte(c.R), unitToByte(c.G), unitToByte(c.B), unitToByte(c.A)}
}

func unitToByte(f float32) uint8 {
	v := f*255 + 0.01
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (c HDRColor) vec3() mgl32.Vec3 { return mgl32.Vec3{c.R, c.G, c.B} }

func (c LDRColor) unitVec4() mgl32.Vec4 {
	h := c.HDR()
	return mgl32.Vec4{h.R, h.G, h.B, h.A}
}

// ldrFromScaled truncates a vector already scaled to [0,255] with a +0.01 bias.
func ldrFromScaled(v mgl32.Vec4) LDRColor {
	return LDRColor{uint8(v[0] + 0.01), uint8(v[1] + 0.01), uint8(v[2] + 0.01), uint8(v[3] + 0.01)}
}

func clampVec4(v mgl32.Vec4, lo, hi float32) mgl32.Vec4 {
	for i := range v {
		v[i] = min(hi, max(lo, v[i]))
	}
	return v
}

func clampVec3(v mgl32.Vec3, lo, hi float32) mgl32.Vec3 {
	for i := range v {
		v[i] = min(hi, max(lo, v[i]))
	}
	return v
}

// Interpolation weights, in 1/64 units, for 2-, 3- and 4-bit indices.
var (
	weights2 = [4]int{0, 21, 43, 64}
	weights3 = [8]int{0, 9, 18, 27, 37, 46, 55, 64}
	weights4 = [16]int{0, 4, 9, 13, 17, 21, 26, 30, 34, 38, 43, 47, 51, 55, 60, 64}
)

const (
	weightMax   = 64
	weightShift = 6
	weightRound = 32
)

func weightTable(prec int) []int {
	switch prec {
	case 2:
		return weights2[:]
	case 3:
		return weights3[:]
	case 4:
		return weights4[:]
	}
	panic("bptc: unsupported index precision")
}

func lerpByte(a, b uint8, w int) uint8 {
	return uint8((int(a)*(weightMax-w) + int(b)*w + weightRound) >> weightShift)
}

func (out *LDRColor) interpolateRGB(c0, c1 LDRColor, wc, wcPrec int) {
	w := weightTable(wcPrec)[wc]
	out.R = lerpByte(c0.R, c1.R, w)
	out.G = lerpByte(c0.G, c1.G, w)
	out.B = lerpByte(c0.B, c1.B, w)
}

func (out *LDRColor) interpolateA(c0, c1 LDRColor, wa, waPrec int) {
	out.A = lerpByte(c0.A, c1.A, weightTable(waPrec)[wa])
}

// interpolateLDR blends two endpoints with separate color and alpha weights.
func interpolateLDR(c0, c1 LDRColor, wc, wa, wcPrec, waPrec int) LDRColor {
	var out LDRColor
	out.interpolateRGB(c0, c1, wc, wcPrec)
	out.interpolateA(c0, c1, wa, waPrec)
	return out
}

// ldrDistRGBA is the squared RGBA distance between two texels.
func ldrDistRGBA(a, b LDRColor) float32 {
	dr := float32(a.R) - float32(b.R)
	dg := float32(a.G) - float32(b.G)
	db := float32(a.B) - float32(b.B)
	da := float32(a.A) - float32(b.A)
	return dr*dr + dg*dg + db*db + da*da
}

func ldrDistRGB(a, b LDRColor) float32 {
	dr := float32(a.R) - float32(b.R)
	dg := float32(a.G) - float32(b.G)
	db := float32(a.B) - float32(b.B)
	return dr*dr + dg*dg + db*db
}
