package bptc

import "fmt"

// BC6HBlockInfo is the symbolic content of a BC6H block.
type BC6HBlockInfo struct {
	Mode        int // 1..14
	Subsets     int
	Shape       int
	Transformed bool
	IndexBits   int
	// Precision holds the stored bit widths, [subset][endpoint][channel].
	Precision [2][2][3]int
	// Endpoints are sign-extended and inverse-transformed but not unquantized.
	Endpoints [2][2][3]int
	Indices   [BlockTexels]int
}

// BC7BlockInfo is the symbolic content of a BC7 block.
type BC7BlockInfo struct {
	Mode      int // 0..7
	Subsets   int
	Shape     int
	Rotation  int
	IndexMode int
	// Endpoints are expanded to 8 bits, P-bits included.
	Endpoints    [3][2]LDRColor
	PBits        []uint8
	Indices      [BlockTexels]int
	AlphaIndices []int // modes 4 and 5 only
}

var errorMessages = map[ErrorCode]string{
	ErrReservedMode: "reserved mode",
	ErrBitOverrun:   "fields extend past bit 128",
	ErrBadIndex:     "index out of palette range",
	ErrBadHeader:    "header bit set outside any field",
}

func blockError(format string, code ErrorCode) error {
	return newError(code, fmt.Sprintf("bptc: %s: %s", format, errorMessages[code]))
}

// InspectBC6H unpacks a BC6H block without reconstructing texels. Blocks that DecodeBC6H
// would render as opaque black return an error describing why.
func InspectBC6H(b *Block, signed bool) (BC6HBlockInfo, error) {
	var info BC6HBlockInfo
	sym, code := unpackBC6H(b, signed)
	if code != Success {
		return info, blockError("bc6h", code)
	}
	m := sym.info()
	info.Mode = sym.mode + 1
	info.Subsets = m.partitions + 1
	info.Shape = sym.shape
	info.Transformed = m.transformed
	info.IndexBits = m.indexPrec
	for p := 0; p < info.Subsets; p++ {
		for end := 0; end < 2; end++ {
			for ch := 0; ch < 3; ch++ {
				info.Precision[p][end][ch] = int(m.prec[p][end][ch])
				info.Endpoints[p][end][ch] = sym.ends[p][end][ch]
			}
		}
	}
	for i, v := range sym.indices {
		info.Indices[i] = int(v)
	}
	return info, nil
}

// InspectBC7 unpacks a BC7 block without reconstructing texels.
func InspectBC7(b *Block) (BC7BlockInfo, error) {
	var info BC7BlockInfo
	sym, code := unpackBC7(b)
	if code != Success {
		return info, blockError("bc7", code)
	}
	m := sym.info()
	info.Mode = sym.mode
	info.Subsets = m.partitions + 1
	info.Shape = sym.shape
	info.Rotation = sym.rotation
	info.IndexMode = sym.indexMode
	for p := 0; p < info.Subsets; p++ {
		info.Endpoints[p] = [2]LDRColor(sym.ends[p])
	}
	if m.pBits > 0 {
		info.PBits = append([]uint8(nil), sym.pbits[:m.pBits]...)
	}
	for i, v := range sym.indices {
		info.Indices[i] = int(v)
	}
	if m.indexPrec2 > 0 {
		info.AlphaIndices = make([]int, BlockTexels)
		for i, v := range sym.indices2 {
			info.AlphaIndices[i] = int(v)
		}
	}
	return info, nil
}
