package bptc

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// bc6hSymbolic is a BC6H block unpacked from its bit layout. Endpoints are sign-extended and
// inverse-transformed but still quantized to the mode's base precision.
type bc6hSymbolic struct {
	mode    int // index into bc6hModes
	shape   int
	ends    [2]intEndPair
	indices [BlockTexels]uint8
}

func (s *bc6hSymbolic) info() *bc6hModeInfo { return &bc6hModes[s.mode] }

func isFixup(partitions, shape, texel int) bool {
	for p := 0; p <= partitions; p++ {
		if int(fixupTable[partitions][shape][p]) == texel {
			return true
		}
	}
	return false
}

func readBC6HMode(c *bitCursor) int {
	mode := int(c.readBits(2))
	if mode != 0 && mode != 1 {
		mode |= int(c.readBits(3)) << 2
	}
	return mode
}

func unpackBC6H(b *Block, signed bool) (sym bc6hSymbolic, code ErrorCode) {
	c := bitCursor{b: b}
	sel := readBC6HMode(&c)
	idx := bc6hModeToInfo[sel]
	if idx < 0 {
		return sym, ErrReservedMode
	}
	sym.mode = int(idx)
	info := sym.info()
	layout := &bc6hFieldLayout[sym.mode]

	for end := info.headerBits(); c.pos < end; {
		desc := layout[c.pos]
		if c.readBit() == 0 {
			continue
		}
		if desc.field == fD {
			sym.shape |= 1 << desc.bit
			continue
		}
		subset, which, ch, ok := desc.field.endpoint()
		if !ok {
			return sym, ErrBadHeader
		}
		sym.ends[subset][which][ch] |= 1 << desc.bit
	}

	if signed {
		sym.ends[0][0] = sym.ends[0][0].signExtend(info.prec[0][0])
	}
	if signed || info.transformed {
		for p := 0; p <= info.partitions; p++ {
			if p != 0 {
				sym.ends[p][0] = sym.ends[p][0].signExtend(info.prec[p][0])
			}
			sym.ends[p][1] = sym.ends[p][1].signExtend(info.prec[p][1])
		}
	}
	if info.transformed {
		transformInverse(&sym.ends, info.prec[0][0], signed)
	}

	limit := uint8(16)
	if info.partitions > 0 {
		limit = 8
	}
	for i := range sym.indices {
		n := info.indexPrec
		if isFixup(info.partitions, sym.shape, i) {
			n--
		}
		if !c.fits(n) {
			return sym, ErrBitOverrun
		}
		v := c.readBits(n)
		if v >= limit {
			return sym, ErrBadIndex
		}
		sym.indices[i] = v
	}
	return sym, Success
}

// unquantizedEnds expands each subset's endpoints to the 16-bit interpolation range.
func (s *bc6hSymbolic) unquantizedEnds(signed bool) [2]intEndPair {
	info := s.info()
	prec := info.prec[0][0]
	var unq [2]intEndPair
	for p := 0; p <= info.partitions; p++ {
		for e := 0; e < 2; e++ {
			for ch := 0; ch < 3; ch++ {
				unq[p][e][ch] = bc6hUnquantize(s.ends[p][e][ch], prec[ch], signed)
			}
		}
	}
	return unq
}

func (s *bc6hSymbolic) decode(signed bool, out *[BlockTexels]HDRColor) {
	info := s.info()
	unq := s.unquantizedEnds(signed)
	weights := bc6hWeights(info)
	for i := range out {
		region := partitionTable[info.partitions][s.shape][i]
		fc := bc6hInterpolate(unq[region][0], unq[region][1], weights[s.indices[i]], signed)
		out[i] = HDRColor{
			R: halfToFloat32(intToHalf(fc[0], signed)),
			G: halfToFloat32(intToHalf(fc[1], signed)),
			B: halfToFloat32(intToHalf(fc[2], signed)),
			A: 1,
		}
	}
}

func fillOpaqueBlack(out *[BlockTexels]HDRColor) {
	for i := range out {
		out[i] = HDRColor{A: 1}
	}
}

// DecodeBC6H decodes one BC6H block. Reserved modes and malformed blocks decode to opaque black.
func DecodeBC6H(b *Block, signed bool) [BlockTexels]HDRColor {
	var out [BlockTexels]HDRColor
	sym, code := unpackBC6H(b, signed)
	if code != Success {
		fillOpaqueBlack(&out)
		return out
	}
	sym.decode(signed, &out)
	return out
}

// EncodeBC6H compresses 16 texels in row-major order into one BC6H block. Alpha is ignored.
func EncodeBC6H(texels *[BlockTexels]HDRColor, signed bool) Block {
	e := bc6hEncoder{signed: signed, bestErr: math.MaxFloat32}
	for i, t := range texels {
		e.pixels[i] = t.vec3()
		e.ipixels[i] = intColorFromHDR([3]float32{t.R, t.G, t.B}, signed)
	}
	e.encode()
	return e.out
}

type bc6hEncoder struct {
	signed  bool
	mode    int
	shape   int
	pixels  [BlockTexels]mgl32.Vec3
	ipixels [BlockTexels]intColor
	unqEnds [32][2]intEndPair // rough endpoints per shape, in working integer form
	bestErr float32
	out     Block
}

func (e *bc6hEncoder) info() *bc6hModeInfo { return &bc6hModes[e.mode] }

func (e *bc6hEncoder) encode() {
	var rough [32]float32
	var order [32]int
	for e.mode = 0; e.mode < len(bc6hModes) && e.bestErr > 0; e.mode++ {
		shapes := 1
		if e.info().partitions > 0 {
			shapes = 32
		}
		items := max(1, shapes>>2)

		for e.shape = 0; e.shape < shapes; e.shape++ {
			rough[e.shape] = e.roughMSE()
			order[e.shape] = e.shape
		}
		selectBestShapes(rough[:shapes], order[:shapes], items)

		for i := 0; i < items && e.bestErr > 0; i++ {
			e.shape = order[i]
			e.refine()
		}
	}
}

// regionTexels lists the texels of subset p for the current mode and shape.
func (e *bc6hEncoder) regionTexels(p int, buf *[BlockTexels]int) []int {
	parts := e.info().partitions
	idx := buf[:0]
	for i := 0; i < BlockTexels; i++ {
		if int(partitionTable[parts][e.shape][i]) == p {
			idx = append(idx, i)
		}
	}
	return idx
}

func (e *bc6hEncoder) roughMSE() float32 {
	info := e.info()
	ends := &e.unqEnds[e.shape]
	var buf [BlockTexels]int
	var pts [BlockTexels]mgl32.Vec3

	var total float32
	for p := 0; p <= info.partitions; p++ {
		idx := e.regionTexels(p, &buf)
		switch len(idx) {
		case 1:
			ends[p] = intEndPair{e.ipixels[idx[0]], e.ipixels[idx[0]]}
			continue
		case 2:
			ends[p] = intEndPair{e.ipixels[idx[0]], e.ipixels[idx[1]]}
			continue
		}

		for n, i := range idx {
			pts[n] = e.pixels[i]
		}
		a, b := optimizeRGB(pts[:len(idx)], 4)
		lo := 0
		if e.signed {
			lo = -f16Max
		}
		ends[p][0] = intColorFromHDR(a, e.signed).clamp(lo, f16Max)
		ends[p][1] = intColorFromHDR(b, e.signed).clamp(lo, f16Max)

		total += e.mapColors(p, idx)
	}
	return total
}

// mapColors measures the rough endpoints of subset p against their texels, without quantization.
func (e *bc6hEncoder) mapColors(p int, idx []int) float32 {
	weights := bc6hWeights(e.info())
	end := e.unqEnds[e.shape][p]
	var pal [16]intColor
	for j, w := range weights {
		for ch := 0; ch < 3; ch++ {
			pal[j][ch] = (end[0][ch]*(weightMax-w) + end[1][ch]*w + weightRound) >> weightShift
		}
	}
	return bestPaletteErr(e.ipixels[:], idx, pal[:len(weights)])
}

// bestPaletteErr sums, over the listed texels, the distance to the closest palette entry. The
// palette is scanned in order and the scan stops once the error grows.
func bestPaletteErr(px []intColor, idx []int, pal []intColor) float32 {
	var total float32
	for _, i := range idx {
		best := intDist(px[i], pal[0])
		for j := 1; j < len(pal) && best > 0; j++ {
			d := intDist(px[i], pal[j])
			if d > best {
				break
			}
			best = min(best, d)
		}
		total += best
	}
	return total
}

func (e *bc6hEncoder) quantizeEnds() [2]intEndPair {
	info := e.info()
	prec := info.prec[0][0]
	var q [2]intEndPair
	for p := 0; p <= info.partitions; p++ {
		for end := 0; end < 2; end++ {
			for ch := 0; ch < 3; ch++ {
				q[p][end][ch] = bc6hQuantize(e.unqEnds[e.shape][p][end][ch], int(prec[ch]), e.signed)
			}
		}
	}
	return q
}

// paletteQuantized returns the decoder's palette for one pair of quantized endpoints.
func (e *bc6hEncoder) paletteQuantized(end intEndPair) (pal [16]intColor, n int) {
	sym := bc6hSymbolic{mode: e.mode, ends: [2]intEndPair{end}}
	unq := sym.unquantizedEnds(e.signed)[0]
	weights := bc6hWeights(e.info())
	for j, w := range weights {
		pal[j] = bc6hInterpolate(unq[0], unq[1], w, e.signed)
	}
	return pal, len(weights)
}

func (e *bc6hEncoder) mapColorsQuantized(idx []int, end intEndPair) float32 {
	pal, n := e.paletteQuantized(end)
	return bestPaletteErr(e.ipixels[:], idx, pal[:n])
}

// endPointsFit reports whether transformed endpoints are representable in the mode's field widths.
func (e *bc6hEncoder) endPointsFit(ends *[2]intEndPair) bool {
	info := e.info()
	deltaSigned := info.transformed || e.signed
	for p := 0; p <= info.partitions; p++ {
		for end := 0; end < 2; end++ {
			signed := deltaSigned
			if p == 0 && end == 0 {
				signed = e.signed
			}
			for ch := 0; ch < 3; ch++ {
				if bitsNeeded(ends[p][end][ch], signed) > int(info.prec[p][end][ch]) {
					return false
				}
			}
		}
	}
	return true
}

// perturbRange is the inclusive range of a quantized endpoint channel.
func (e *bc6hEncoder) perturbRange(prec uint8) (lo, hi int) {
	if e.signed {
		hi = 1<<(prec-1) - 1
		return -hi, hi
	}
	return 0, 1<<prec - 1
}

// perturbOne log-searches one channel of endpoint which (0 for A, 1 for B) for a lower error.
func (e *bc6hEncoder) perturbOne(idx []int, ch, which int, old intEndPair, oldErr float32) (intEndPair, float32) {
	prec := e.info().prec[0][0][ch]
	lo, hi := e.perturbRange(prec)
	best := old
	minErr := oldErr
	for step := 1 << (prec - 1); step > 0; step >>= 1 {
		improved := false
		bestStep := 0
		for _, sign := range [2]int{-1, 1} {
			tmp := best
			tmp[which][ch] += sign * step
			if tmp[which][ch] < lo || tmp[which][ch] > hi {
				continue
			}
			if err := e.mapColorsQuantized(idx, tmp); err < minErr {
				improved = true
				minErr = err
				bestStep = sign * step
			}
		}
		if improved {
			best[which][ch] += bestStep
		}
	}
	return best, minErr
}

func (e *bc6hEncoder) optimizeOne(idx []int, orgErr float32, org intEndPair) intEndPair {
	opt := org
	optErr := orgErr
	for ch := 0; ch < 3; ch++ {
		newA, errA := e.perturbOne(idx, ch, 0, opt, optErr)
		newB, errB := e.perturbOne(idx, ch, 1, opt, optErr)

		var which int
		if errA < errB {
			if errA >= optErr {
				continue
			}
			opt[0][ch] = newA[0][ch]
			optErr = errA
			which = 1
		} else {
			if errB >= optErr {
				continue
			}
			opt[1][ch] = newB[1][ch]
			optErr = errB
			which = 0
		}

		// Alternate between the endpoints until neither improves.
		for {
			cand, err := e.perturbOne(idx, ch, which, opt, optErr)
			if err >= optErr {
				break
			}
			opt[which][ch] = cand[which][ch]
			optErr = err
			which = 1 - which
		}
	}
	return opt
}

func (e *bc6hEncoder) optimizeEndPoints(orgErr [2]float32, org [2]intEndPair) [2]intEndPair {
	var opt [2]intEndPair
	var buf [BlockTexels]int
	for p := 0; p <= e.info().partitions; p++ {
		opt[p] = e.optimizeOne(e.regionTexels(p, &buf), orgErr[p], org[p])
	}
	return opt
}

// assignIndices picks the closest palette entry for every texel and returns per-subset errors.
func (e *bc6hEncoder) assignIndices(ends *[2]intEndPair, idx *[BlockTexels]int) (totErr [2]float32) {
	info := e.info()
	var pals [2][16]intColor
	var n int
	for p := 0; p <= info.partitions; p++ {
		pals[p], n = e.paletteQuantized(ends[p])
	}
	for i := range idx {
		region := partitionTable[info.partitions][e.shape][i]
		pal := &pals[region]
		best := intDist(e.ipixels[i], pal[0])
		idx[i] = 0
		for j := 1; j < n && best > 0; j++ {
			d := intDist(e.ipixels[i], pal[j])
			if d > best {
				break
			}
			if d < best {
				best = d
				idx[i] = j
			}
		}
		totErr[region] += best
	}
	return totErr
}

// swapIndices swaps a subset's endpoints when its fixup texel has the top index bit set.
func (e *bc6hEncoder) swapIndices(ends *[2]intEndPair, idx *[BlockTexels]int) {
	info := e.info()
	n := 1 << info.indexPrec
	for p := 0; p <= info.partitions; p++ {
		fix := fixupTable[info.partitions][e.shape][p]
		if idx[fix]&(n>>1) == 0 {
			continue
		}
		ends[p][0], ends[p][1] = ends[p][1], ends[p][0]
		for j := range idx {
			if int(partitionTable[info.partitions][e.shape][j]) == p {
				idx[j] = n - 1 - idx[j]
			}
		}
	}
}

func (e *bc6hEncoder) emitBlock(ends *[2]intEndPair, idx *[BlockTexels]int) {
	info := e.info()
	layout := &bc6hFieldLayout[e.mode]
	e.out = Block{}
	c := bitCursor{b: &e.out}
	for end := info.headerBits(); c.pos < end; {
		desc := layout[c.pos]
		var v int
		switch desc.field {
		case fM:
			v = int(info.code)
		case fD:
			v = e.shape
		default:
			subset, which, ch, ok := desc.field.endpoint()
			if !ok {
				panic("bptc: unassigned BC6H header bit")
			}
			v = ends[subset][which][ch]
		}
		c.writeBit(uint8(v>>desc.bit) & 1)
	}
	for i := range idx {
		n := info.indexPrec
		if isFixup(info.partitions, e.shape, i) {
			n--
		}
		c.writeBits(n, uint8(idx[i]))
	}
}

func (e *bc6hEncoder) refine() {
	info := e.info()
	var orgIdx, optIdx [BlockTexels]int

	org := e.quantizeEnds()
	orgErr := e.assignIndices(&org, &orgIdx)
	e.swapIndices(&org, &orgIdx)

	if info.transformed {
		transformForward(&org)
	}
	if !e.endPointsFit(&org) {
		return
	}
	if info.transformed {
		transformInverse(&org, info.prec[0][0], e.signed)
	}

	opt := e.optimizeEndPoints(orgErr, org)
	optErr := e.assignIndices(&opt, &optIdx)
	e.swapIndices(&opt, &optIdx)

	var orgTot, optTot float32
	for p := 0; p <= info.partitions; p++ {
		orgTot += orgErr[p]
		optTot += optErr[p]
	}

	if info.transformed {
		transformForward(&opt)
	}
	switch {
	case e.endPointsFit(&opt) && optTot < orgTot && optTot < e.bestErr:
		e.bestErr = optTot
		e.emitBlock(&opt, &optIdx)
	case orgTot < e.bestErr:
		// Fall back to the unoptimized endpoints, which are known to fit.
		if info.transformed {
			transformForward(&org)
		}
		e.bestErr = orgTot
		e.emitBlock(&org, &orgIdx)
	}
}
