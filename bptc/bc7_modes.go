package bptc

// rgbaPrec is a per-channel bit width; a zero alpha width means alpha is implied opaque.
type rgbaPrec [4]uint8

type bc7ModeInfo struct {
	partitions    int // subsets minus one
	partitionBits int
	pBits         int
	rotationBits  int
	indexModeBits int
	indexPrec     int
	indexPrec2    int // zero when color and alpha share one index set
	prec          rgbaPrec
	precWithP     rgbaPrec
}

var bc7Modes = [8]bc7ModeInfo{
	{2, 4, 6, 0, 0, 3, 0, rgbaPrec{4, 4, 4, 0}, rgbaPrec{5, 5, 5, 0}}, // 3 subsets, unique P-bits
	{1, 6, 2, 0, 0, 3, 0, rgbaPrec{6, 6, 6, 0}, rgbaPrec{7, 7, 7, 0}}, // 2 subsets, shared P-bits
	{2, 6, 0, 0, 0, 2, 0, rgbaPrec{5, 5, 5, 0}, rgbaPrec{5, 5, 5, 0}},
	{1, 6, 4, 0, 0, 2, 0, rgbaPrec{7, 7, 7, 0}, rgbaPrec{8, 8, 8, 0}},
	{0, 0, 0, 2, 1, 2, 3, rgbaPrec{5, 5, 5, 6}, rgbaPrec{5, 5, 5, 6}}, // separate alpha, index selector
	{0, 0, 0, 2, 0, 2, 2, rgbaPrec{7, 7, 7, 8}, rgbaPrec{7, 7, 7, 8}}, // separate alpha
	{0, 0, 2, 0, 0, 4, 0, rgbaPrec{7, 7, 7, 7}, rgbaPrec{8, 8, 8, 8}},
	{1, 6, 4, 0, 0, 2, 0, rgbaPrec{5, 5, 5, 5}, rgbaPrec{6, 6, 6, 6}},
}

func (m *bc7ModeInfo) numEndPoints() int { return (m.partitions + 1) * 2 }

// indexPrecs returns the color and alpha index widths after applying the index selector.
func (m *bc7ModeInfo) indexPrecs(indexMode int) (color, alpha int) {
	if indexMode != 0 {
		return m.indexPrec2, m.indexPrec
	}
	return m.indexPrec, m.indexPrec2
}

// ldrEndPair holds endpoints A and B of one subset.
type ldrEndPair [2]LDRColor

// bc7Quantize rounds an 8-bit value to prec bits.
func bc7Quantize(comp, prec uint8) uint8 {
	if prec >= 8 {
		return comp
	}
	rnd := min(255, int(comp)+1<<(7-prec))
	return uint8(rnd >> (8 - prec))
}

// bc7Unquantize expands a prec-bit value to 8 bits by replicating its high bits.
func bc7Unquantize(comp, prec uint8) uint8 {
	c := comp << (8 - prec)
	return c | c>>prec
}

func quantizeLDR(c LDRColor, prec rgbaPrec) LDRColor {
	q := LDRColor{
		R: bc7Quantize(c.R, prec[0]),
		G: bc7Quantize(c.G, prec[1]),
		B: bc7Quantize(c.B, prec[2]),
		A: 255,
	}
	if prec[3] != 0 {
		q.A = bc7Quantize(c.A, prec[3])
	}
	return q
}

func unquantizeLDR(c LDRColor, prec rgbaPrec) LDRColor {
	u := LDRColor{
		R: bc7Unquantize(c.R, prec[0]),
		G: bc7Unquantize(c.G, prec[1]),
		B: bc7Unquantize(c.B, prec[2]),
		A: 255,
	}
	if prec[3] != 0 {
		u.A = bc7Unquantize(c.A, prec[3])
	}
	return u
}

// rotate swaps alpha with the channel selected by a BC7 rotation. It is its own inverse.
func (c *LDRColor) rotate(rotation int) {
	switch rotation {
	case 1:
		c.R, c.A = c.A, c.R
	case 2:
		c.G, c.A = c.A, c.G
	case 3:
		c.B, c.A = c.A, c.B
	}
}

// ldrPalette builds the interpolation palette of one subset. With separate alpha indices the
// color entries and the alpha entries are independent and may differ in count.
func ldrPalette(a, b LDRColor, colorPrec, alphaPrec int) (pal [16]LDRColor) {
	if alphaPrec == 0 {
		for i := 0; i < 1<<colorPrec; i++ {
			pal[i] = interpolateLDR(a, b, i, i, colorPrec, colorPrec)
		}
		return pal
	}
	for i := 0; i < 1<<colorPrec; i++ {
		pal[i].interpolateRGB(a, b, i, colorPrec)
	}
	for i := 0; i < 1<<alphaPrec; i++ {
		pal[i].interpolateA(a, b, i, alphaPrec)
	}
	return pal
}
