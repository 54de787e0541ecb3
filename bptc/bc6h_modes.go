package bptc

// rgbPrec is a per-channel bit width.
type rgbPrec [3]uint8

type bc6hModeInfo struct {
	code        uint8 // mode selector as stored in the block
	partitions  int   // subsets minus one
	transformed bool  // endpoints after the first are deltas
	indexPrec   int
	prec        [2][2]rgbPrec // [subset][endpoint]
}

// bc6hModes is ordered by mode number: 1..10 are two-subset modes, 11..14 single-subset.
var bc6hModes = [14]bc6hModeInfo{
	{0x00, 1, true, 3, [2][2]rgbPrec{{{10, 10, 10}, {5, 5, 5}}, {{5, 5, 5}, {5, 5, 5}}}},
	{0x01, 1, true, 3, [2][2]rgbPrec{{{7, 7, 7}, {6, 6, 6}}, {{6, 6, 6}, {6, 6, 6}}}},
	{0x02, 1, true, 3, [2][2]rgbPrec{{{11, 11, 11}, {5, 4, 4}}, {{5, 4, 4}, {5, 4, 4}}}},
	{0x06, 1, true, 3, [2][2]rgbPrec{{{11, 11, 11}, {4, 5, 4}}, {{4, 5, 4}, {4, 5, 4}}}},
	{0x0a, 1, true, 3, [2][2]rgbPrec{{{11, 11, 11}, {4, 4, 5}}, {{4, 4, 5}, {4, 4, 5}}}},
	{0x0e, 1, true, 3, [2][2]rgbPrec{{{9, 9, 9}, {5, 5, 5}}, {{5, 5, 5}, {5, 5, 5}}}},
	{0x12, 1, true, 3, [2][2]rgbPrec{{{8, 8, 8}, {6, 5, 5}}, {{6, 5, 5}, {6, 5, 5}}}},
	{0x16, 1, true, 3, [2][2]rgbPrec{{{8, 8, 8}, {5, 6, 5}}, {{5, 6, 5}, {5, 6, 5}}}},
	{0x1a, 1, true, 3, [2][2]rgbPrec{{{8, 8, 8}, {5, 5, 6}}, {{5, 5, 6}, {5, 5, 6}}}},
	{0x1e, 1, false, 3, [2][2]rgbPrec{{{6, 6, 6}, {6, 6, 6}}, {{6, 6, 6}, {6, 6, 6}}}},
	{0x03, 0, false, 4, [2][2]rgbPrec{{{10, 10, 10}, {10, 10, 10}}, {}}},
	{0x07, 0, true, 4, [2][2]rgbPrec{{{11, 11, 11}, {9, 9, 9}}, {}}},
	{0x0b, 0, true, 4, [2][2]rgbPrec{{{12, 12, 12}, {8, 8, 8}}, {}}},
	{0x0f, 0, true, 4, [2][2]rgbPrec{{{16, 16, 16}, {4, 4, 4}}, {}}},
}

// bc6hModeToInfo maps the 5-bit selector to an index into bc6hModes, -1 for invalid or
// reserved selectors (0x13, 0x17, 0x1b and 0x1f are reserved).
var bc6hModeToInfo = [32]int8{
	0, 1, 2, 10, -1, -1, 3, 11,
	-1, -1, 4, 12, -1, -1, 5, 13,
	-1, -1, 6, -1, -1, -1, 7, -1,
	-1, -1, 8, -1, -1, -1, 9, -1,
}

func (m *bc6hModeInfo) headerBits() int {
	if m.partitions > 0 {
		return 82
	}
	return 65
}

type bc6hField uint8

const (
	fNA bc6hField = iota // unused
	fM                   // mode
	fD                   // shape
	fRW
	fRX
	fRY
	fRZ
	fGW
	fGX
	fGY
	fGZ
	fBW
	fBX
	fBY
	fBZ
)

type bc6hFieldDesc struct {
	field bc6hField
	bit   uint8
}

// endpoint locates an endpoint field: W, X, Y, Z are subset 0 A/B then subset 1 A/B.
func (f bc6hField) endpoint() (subset, end, ch int, ok bool) {
	if f < fRW || f > fBZ {
		return 0, 0, 0, false
	}
	k := int(f - fRW)
	return (k % 4) / 2, k % 2, k / 4, true
}

// intEndPair holds endpoints A and B of one subset.
type intEndPair [2]intColor

func transformForward(e *[2]intEndPair) {
	e[0][1] = e[0][1].sub(e[0][0])
	e[1][0] = e[1][0].sub(e[0][0])
	e[1][1] = e[1][1].sub(e[0][0])
}

func transformInverse(e *[2]intEndPair, prec rgbPrec, signed bool) {
	wrap := intColor{1<<prec[0] - 1, 1<<prec[1] - 1, 1<<prec[2] - 1}
	e[0][1] = e[0][1].add(e[0][0]).and(wrap)
	e[1][0] = e[1][0].add(e[0][0]).and(wrap)
	e[1][1] = e[1][1].add(e[0][0]).and(wrap)
	if signed {
		e[0][1] = e[0][1].signExtend(prec)
		e[1][0] = e[1][0].signExtend(prec)
		e[1][1] = e[1][1].signExtend(prec)
	}
}

// bc6hQuantize scales a half-float magnitude to prec bits.
func bc6hQuantize(v, prec int, signed bool) int {
	if signed {
		neg := v < 0
		if neg {
			v = -v
		}
		q := (v << (prec - 1)) / (f16Max + 1)
		if neg {
			q = -q
		}
		return q
	}
	return (v << prec) / (f16Max + 1)
}

// bc6hUnquantize expands a prec-bit endpoint to the 16-bit interpolation range.
func bc6hUnquantize(comp int, prec uint8, signed bool) int {
	if signed {
		if prec >= 16 {
			return comp
		}
		neg := comp < 0
		if neg {
			comp = -comp
		}
		var unq int
		switch {
		case comp == 0:
			unq = 0
		case comp >= 1<<(prec-1)-1:
			unq = 0x7fff
		default:
			unq = ((comp << 15) + 0x4000) >> (prec - 1)
		}
		if neg {
			unq = -unq
		}
		return unq
	}
	switch {
	case prec >= 15:
		return comp
	case comp == 0:
		return 0
	case comp == 1<<prec-1:
		return 0xffff
	default:
		return ((comp << 16) + 0x8000) >> prec
	}
}

// bc6hFinishUnquantize scales an interpolated value back to a half-float magnitude.
func bc6hFinishUnquantize(comp int, signed bool) int {
	if signed {
		if comp < 0 {
			return -((-comp * 31) >> 5)
		}
		return (comp * 31) >> 5
	}
	return (comp * 31) >> 6
}

// bitsNeeded returns the number of bits needed to store n, with a sign bit when signed.
func bitsNeeded(n int, signed bool) int {
	switch {
	case n == 0:
		return 0
	case n > 0:
		nb := 0
		for ; n != 0; n >>= 1 {
			nb++
		}
		if signed {
			nb++
		}
		return nb
	default:
		nb := 0
		for ; n < -1; n >>= 1 {
			nb++
		}
		return nb + 1
	}
}

func bc6hInterpolate(a, b intColor, w int, signed bool) intColor {
	var out intColor
	for ch := range out {
		out[ch] = bc6hFinishUnquantize((a[ch]*(weightMax-w)+b[ch]*w+weightRound)>>weightShift, signed)
	}
	return out
}

func bc6hWeights(m *bc6hModeInfo) []int {
	return weightTable(m.indexPrec)
}
