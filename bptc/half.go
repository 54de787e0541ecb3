package bptc

import "github.com/x448/float16"

const (
	f16SignMask = 0x8000
	f16EMMask   = 0x7fff
	f16Max      = 0x7bff // largest finite half
)

// halfFromFloat32 converts with round-to-nearest-even. NaN maps to +0.
func halfFromFloat32(f float32) uint16 {
	if f != f {
		return 0
	}
	return float16.Fromfloat32(f).Bits()
}

func halfToFloat32(h uint16) float32 {
	return float16.Frombits(h).Float32()
}

// intColor is the signed working form of a BC6H texel: half-float bit patterns
// reinterpreted as integers, with the sign folded in for signed formats.
type intColor [3]int

func (c intColor) add(o intColor) intColor { return intColor{c[0] + o[0], c[1] + o[1], c[2] + o[2]} }
func (c intColor) sub(o intColor) intColor { return intColor{c[0] - o[0], c[1] - o[1], c[2] - o[2]} }
func (c intColor) and(o intColor) intColor { return intColor{c[0] & o[0], c[1] & o[1], c[2] & o[2]} }

func (c intColor) clamp(lo, hi int) intColor {
	for i := range c {
		c[i] = min(hi, max(lo, c[i]))
	}
	return c
}

func (c intColor) signExtend(prec rgbPrec) intColor {
	for i := range c {
		c[i] = signExtend(c[i], int(prec[i]))
	}
	return c
}

func signExtend(x, bits int) int {
	if bits <= 0 {
		return x
	}
	if x&(1<<(bits-1)) != 0 {
		return x | ^(1<<bits - 1)
	}
	return x
}

func intColorFromHDR(v [3]float32, signed bool) intColor {
	var c intColor
	for i := range c {
		c[i] = halfToInt(halfFromFloat32(v[i]), signed)
	}
	return c
}

func halfToInt(h uint16, signed bool) int {
	if signed {
		m := min(int(h&f16EMMask), f16Max)
		if h&f16SignMask != 0 {
			return -m
		}
		return m
	}
	if h&f16SignMask != 0 {
		return 0
	}
	return min(int(h), f16Max)
}

func intToHalf(v int, signed bool) uint16 {
	if signed && v < 0 {
		return uint16(f16SignMask | -v)
	}
	return uint16(v)
}

// intDist is the squared RGB distance between two working colors.
func intDist(a, b intColor) float32 {
	dr := float32(a[0]) - float32(b[0])
	dg := float32(a[1]) - float32(b[1])
	db := float32(a[2]) - float32(b[2])
	return dr*dr + dg*dg + db*db
}
