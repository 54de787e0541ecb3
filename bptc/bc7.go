package bptc

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Flags selects optional BC7 encoder behavior.
type Flags uint32

const (
	// FlagUse3Subsets also searches the three-subset modes 0 and 2.
	FlagUse3Subsets Flags = 1 << iota
	// FlagQuick restricts the search to mode 6.
	FlagQuick

	flagsAll = FlagUse3Subsets | FlagQuick
)

// bc7Symbolic is a BC7 block unpacked from its bit layout, with endpoints already expanded to 8 bits.
type bc7Symbolic struct {
	mode      int
	shape     int
	rotation  int
	indexMode int
	ends      [3]ldrEndPair
	pbits     [6]uint8
	indices   [BlockTexels]uint8 // first index set as stored
	indices2  [BlockTexels]uint8 // second index set, modes 4 and 5 only
}

func (s *bc7Symbolic) info() *bc7ModeInfo { return &bc7Modes[s.mode] }

func unpackBC7(b *Block) (sym bc7Symbolic, code ErrorCode) {
	c := bitCursor{b: b}
	for sym.mode < len(bc7Modes) && c.readBit() == 0 {
		sym.mode++
	}
	if sym.mode == len(bc7Modes) {
		return sym, ErrReservedMode
	}
	info := sym.info()

	sym.shape = int(c.readBits(info.partitionBits))
	sym.rotation = int(c.readBits(info.rotationBits))
	sym.indexMode = int(c.readBits(info.indexModeBits))

	numEP := info.numEndPoints()
	var raw [6]LDRColor
	for ch := 0; ch < 4; ch++ {
		n := int(info.prec[ch])
		for i := 0; i < numEP; i++ {
			if n == 0 {
				raw[i].set(ch, 255)
				continue
			}
			if !c.fits(n) {
				return sym, ErrBitOverrun
			}
			raw[i].set(ch, c.readBits(n))
		}
	}

	for i := 0; i < info.pBits; i++ {
		if !c.fits(1) {
			return sym, ErrBitOverrun
		}
		sym.pbits[i] = c.readBit()
	}
	if info.pBits > 0 {
		for i := 0; i < numEP; i++ {
			pi := i * info.pBits / numEP
			for ch := 0; ch < 4; ch++ {
				if info.prec[ch] != info.precWithP[ch] {
					raw[i].set(ch, raw[i].get(ch)<<1|sym.pbits[pi])
				}
			}
		}
	}
	for i := 0; i < numEP; i++ {
		sym.ends[i/2][i%2] = unquantizeLDR(raw[i], info.precWithP)
	}

	for i := range sym.indices {
		n := info.indexPrec
		if isFixup(info.partitions, sym.shape, i) {
			n--
		}
		if !c.fits(n) {
			return sym, ErrBitOverrun
		}
		sym.indices[i] = c.readBits(n)
	}
	if info.indexPrec2 > 0 {
		for i := range sym.indices2 {
			n := info.indexPrec2
			if i == 0 {
				n--
			}
			if !c.fits(n) {
				return sym, ErrBitOverrun
			}
			sym.indices2[i] = c.readBits(n)
		}
	}
	return sym, Success
}

func (s *bc7Symbolic) decode(out *[BlockTexels]LDRColor) {
	info := s.info()
	for i := range out {
		end := s.ends[partitionTable[info.partitions][s.shape][i]]
		w1, w2 := int(s.indices[i]), int(s.indices2[i])
		var px LDRColor
		switch {
		case info.indexPrec2 == 0:
			px = interpolateLDR(end[0], end[1], w1, w1, info.indexPrec, info.indexPrec)
		case s.indexMode == 0:
			px = interpolateLDR(end[0], end[1], w1, w2, info.indexPrec, info.indexPrec2)
		default:
			px = interpolateLDR(end[0], end[1], w2, w1, info.indexPrec2, info.indexPrec)
		}
		px.rotate(s.rotation)
		out[i] = px
	}
}

// DecodeBC7RGBA8 decodes one BC7 block to 8-bit texels. The reserved mode 8 decodes to
// transparent black and malformed blocks to opaque black.
func DecodeBC7RGBA8(b *Block) [BlockTexels]LDRColor {
	var out [BlockTexels]LDRColor
	sym, code := unpackBC7(b)
	switch code {
	case Success:
		sym.decode(&out)
	case ErrReservedMode:
	default:
		for i := range out {
			out[i] = LDRColor{A: 255}
		}
	}
	return out
}

// DecodeBC7 decodes one BC7 block, scaling each 8-bit channel to [0,1].
func DecodeBC7(b *Block) [BlockTexels]HDRColor {
	ldr := DecodeBC7RGBA8(b)
	var out [BlockTexels]HDRColor
	for i, c := range ldr {
		out[i] = c.HDR()
	}
	return out
}

// EncodeBC7 compresses 16 texels in row-major order into one BC7 block. Channels are clamped
// to [0,1] and converted to 8 bits before encoding.
func EncodeBC7(texels *[BlockTexels]HDRColor, flags Flags) Block {
	var ldr [BlockTexels]LDRColor
	for i, t := range texels {
		ldr[i] = t.LDR()
	}
	return EncodeBC7RGBA8(&ldr, flags)
}

// EncodeBC7RGBA8 compresses 16 8-bit texels in row-major order into one BC7 block.
func EncodeBC7RGBA8(texels *[BlockTexels]LDRColor, flags Flags) Block {
	e := bc7Encoder{flags: flags, pixels: *texels, best: math.MaxFloat32}
	e.encode()
	return e.out
}

type bc7Encoder struct {
	flags  Flags
	mode   int
	pixels [BlockTexels]LDRColor   // current rotation applied
	points [BlockTexels]mgl32.Vec4 // pixels scaled to [0,1]
	ends   [64][3]ldrEndPair       // rough endpoints per shape
	best   float32
	out    Block
}

func (e *bc7Encoder) info() *bc7ModeInfo { return &bc7Modes[e.mode] }

func (e *bc7Encoder) rotate(rotation int) {
	for i := range e.pixels {
		e.pixels[i].rotate(rotation)
		e.points[i] = e.pixels[i].unitVec4()
	}
}

func (e *bc7Encoder) skipMode(hasAlpha bool) bool {
	switch {
	case e.flags&FlagUse3Subsets == 0 && (e.mode == 0 || e.mode == 2):
		return true
	case e.flags&FlagQuick != 0 && e.mode != 6:
		return true
	case !hasAlpha && e.mode == 7:
		// Opaque blocks are served by the other two-subset modes.
		return true
	}
	return false
}

func (e *bc7Encoder) encode() {
	alphaMask := uint8(0xff)
	for i := range e.pixels {
		alphaMask &= e.pixels[i].A
	}
	hasAlpha := alphaMask != 0xff
	e.rotate(0)

	var rough [64]float32
	var order [64]int
	for e.mode = 0; e.mode < len(bc7Modes) && e.best > 0; e.mode++ {
		if e.skipMode(hasAlpha) {
			continue
		}
		info := e.info()
		shapes := 1 << info.partitionBits
		items := max(1, shapes>>2)

		for r := 0; r < 1<<info.rotationBits && e.best > 0; r++ {
			e.rotate(r)
			for im := 0; im < 1<<info.indexModeBits && e.best > 0; im++ {
				for s := 0; s < shapes; s++ {
					rough[s] = e.roughMSE(s, im)
					order[s] = s
				}
				selectBestShapes(rough[:shapes], order[:shapes], items)

				for i := 0; i < items && e.best > 0; i++ {
					blk, err := e.refine(order[i], r, im)
					if err < e.best {
						e.best = err
						e.out = blk
					}
				}
			}
			e.rotate(r)
		}
	}
}

func (e *bc7Encoder) regionTexels(shape, p int, buf *[BlockTexels]int) []int {
	parts := e.info().partitions
	idx := buf[:0]
	for i := 0; i < BlockTexels; i++ {
		if int(partitionTable[parts][shape][i]) == p {
			idx = append(idx, i)
		}
	}
	return idx
}

func (e *bc7Encoder) roughMSE(shape, indexMode int) float32 {
	info := e.info()
	colorPrec, alphaPrec := info.indexPrecs(indexMode)
	ends := &e.ends[shape]
	var buf [BlockTexels]int

	for p := 0; p <= info.partitions; p++ {
		idx := e.regionTexels(shape, p, &buf)
		switch len(idx) {
		case 1:
			ends[p] = ldrEndPair{e.pixels[idx[0]], e.pixels[idx[0]]}
			continue
		case 2:
			ends[p] = ldrEndPair{e.pixels[idx[0]], e.pixels[idx[1]]}
			continue
		}

		if alphaPrec == 0 {
			var pts [BlockTexels]mgl32.Vec4
			for n, i := range idx {
				pts[n] = e.points[i]
			}
			a, b := optimizeRGBA(pts[:len(idx)], 4)
			ends[p][0] = ldrFromScaled(clampVec4(a, 0, 1).Mul(255))
			ends[p][1] = ldrFromScaled(clampVec4(b, 0, 1).Mul(255))
			continue
		}

		minA, maxA := uint8(255), uint8(0)
		var pts [BlockTexels]mgl32.Vec3
		for n, i := range idx {
			pts[n] = e.points[i].Vec3()
			minA = min(minA, e.pixels[i].A)
			maxA = max(maxA, e.pixels[i].A)
		}
		a, b := optimizeRGB(pts[:len(idx)], 4)
		ends[p][0] = ldrFromScaled(clampVec3(a, 0, 1).Mul(255).Vec4(0))
		ends[p][1] = ldrFromScaled(clampVec3(b, 0, 1).Mul(255).Vec4(0))
		ends[p][0].A = minA
		ends[p][1].A = maxA
	}

	var pals [3][16]LDRColor
	for p := 0; p <= info.partitions; p++ {
		pals[p] = ldrPalette(ends[p][0], ends[p][1], colorPrec, alphaPrec)
	}
	var total float32
	for i := range e.pixels {
		region := partitionTable[info.partitions][shape][i]
		err, _, _ := computeError(e.pixels[i], &pals[region], colorPrec, alphaPrec)
		total += err
	}
	return total
}

// computeError finds the closest palette entries for one texel. Each scan stops once the
// error starts to grow.
func computeError(px LDRColor, pal *[16]LDRColor, colorPrec, alphaPrec int) (total float32, best1, best2 int) {
	best := float32(math.MaxFloat32)
	if alphaPrec == 0 {
		for i := 0; i < 1<<colorPrec && best > 0; i++ {
			d := ldrDistRGBA(px, pal[i])
			if d > best {
				break
			}
			if d < best {
				best = d
				best1 = i
			}
		}
		return best, best1, 0
	}

	for i := 0; i < 1<<colorPrec && best > 0; i++ {
		d := ldrDistRGB(px, pal[i])
		if d > best {
			break
		}
		if d < best {
			best = d
			best1 = i
		}
	}
	total = best
	best = math.MaxFloat32
	for i := 0; i < 1<<alphaPrec && best > 0; i++ {
		da := float32(px.A) - float32(pal[i].A)
		d := da * da
		if d > best {
			break
		}
		if d < best {
			best = d
			best2 = i
		}
	}
	return total + best, best1, best2
}

func (e *bc7Encoder) paletteQuantized(indexMode int, end ldrEndPair) [16]LDRColor {
	info := e.info()
	colorPrec, alphaPrec := info.indexPrecs(indexMode)
	a := unquantizeLDR(end[0], info.precWithP)
	b := unquantizeLDR(end[1], info.precWithP)
	return ldrPalette(a, b, colorPrec, alphaPrec)
}

// mapColors returns the error of pts against quantized endpoints, or MaxFloat32 as soon as
// the running total exceeds minErr.
func (e *bc7Encoder) mapColors(pts []LDRColor, indexMode int, end ldrEndPair, minErr float32) float32 {
	colorPrec, alphaPrec := e.info().indexPrecs(indexMode)
	pal := e.paletteQuantized(indexMode, end)
	var total float32
	for _, px := range pts {
		err, _, _ := computeError(px, &pal, colorPrec, alphaPrec)
		total += err
		if total > minErr {
			return math.MaxFloat32
		}
	}
	return total
}

// perturbOne log-searches channel ch of endpoint which (0 for A, 1 for B) for a lower error.
func (e *bc7Encoder) perturbOne(pts []LDRColor, indexMode, ch, which int, old ldrEndPair, oldErr float32) (ldrEndPair, float32) {
	prec := int(e.info().precWithP[ch])
	best := old
	minErr := oldErr
	for step := 1 << (prec - 1); step > 0; step >>= 1 {
		improved := false
		bestStep := 0
		cur := int(best[which].get(ch))
		for _, sign := range [2]int{-1, 1} {
			v := cur + sign*step
			if v < 0 || v >= 1<<prec {
				continue
			}
			tmp := best
			tmp[which].set(ch, uint8(v))
			if err := e.mapColors(pts, indexMode, tmp, minErr); err < minErr {
				improved = true
				minErr = err
				bestStep = sign * step
			}
		}
		if improved {
			best[which].set(ch, uint8(cur+bestStep))
		}
	}
	return best, minErr
}

// exhaustive tries every pair within 5 steps of the current endpoints of channel ch, keeping
// their order.
func (e *bc7Encoder) exhaustive(pts []LDRColor, indexMode, ch int, optErr *float32, opt *ldrEndPair) {
	if *optErr == 0 {
		return
	}
	const delta = 5
	top := 1<<e.info().precWithP[ch] - 1
	a0, b0 := int(opt[0].get(ch)), int(opt[1].get(ch))
	alow, ahigh := max(0, a0-delta), min(top, a0+delta)
	blow, bhigh := max(0, b0-delta), min(top, b0+delta)

	tmp := *opt
	bestErr := *optErr
	amin, bmin := a0, b0
	try := func(a, b int) {
		tmp[0].set(ch, uint8(a))
		tmp[1].set(ch, uint8(b))
		if err := e.mapColors(pts, indexMode, tmp, bestErr); err < bestErr {
			amin, bmin = a, b
			bestErr = err
		}
	}
	if a0 <= b0 {
		for a := alow; a <= ahigh; a++ {
			for b := max(a, blow); b <= bhigh; b++ {
				try(a, b)
			}
		}
	} else {
		for b := blow; b <= bhigh; b++ {
			for a := max(b, alow); a <= ahigh; a++ {
				try(a, b)
			}
		}
	}

	if bestErr < *optErr {
		opt[0].set(ch, uint8(amin))
		opt[1].set(ch, uint8(bmin))
		*optErr = bestErr
	}
}

func (e *bc7Encoder) optimizeOne(pts []LDRColor, indexMode int, orgErr float32, org ldrEndPair) ldrEndPair {
	info := e.info()
	opt := org
	optErr := orgErr
	for ch := 0; ch < 4; ch++ {
		if info.precWithP[ch] == 0 {
			continue
		}
		newA, errA := e.perturbOne(pts, indexMode, ch, 0, opt, optErr)
		newB, errB := e.perturbOne(pts, indexMode, ch, 1, opt, optErr)

		var which int
		if errA < errB {
			if errA >= optErr {
				continue
			}
			opt[0].set(ch, newA[0].get(ch))
			optErr = errA
			which = 1
		} else {
			if errB >= optErr {
				continue
			}
			opt[1].set(ch, newB[1].get(ch))
			optErr = errB
			which = 0
		}

		for {
			cand, err := e.perturbOne(pts, indexMode, ch, which, opt, optErr)
			if err >= optErr {
				break
			}
			opt[which].set(ch, cand[which].get(ch))
			optErr = err
			which = 1 - which
		}
	}

	for ch := 0; ch < 4; ch++ {
		if info.precWithP[ch] != 0 {
			e.exhaustive(pts, indexMode, ch, &optErr, &opt)
		}
	}
	return opt
}

func (e *bc7Encoder) optimizeEndPoints(shape, indexMode int, orgErr [3]float32, org [3]ldrEndPair) [3]ldrEndPair {
	var opt [3]ldrEndPair
	var buf [BlockTexels]int
	var pts [BlockTexels]LDRColor
	for p := 0; p <= e.info().partitions; p++ {
		idx := e.regionTexels(shape, p, &buf)
		for n, i := range idx {
			pts[n] = e.pixels[i]
		}
		opt[p] = e.optimizeOne(pts[:len(idx)], indexMode, orgErr[p], org[p])
	}
	return opt
}

// assignIndices picks palette entries for every texel and returns per-subset errors. Endpoints
// are swapped in place so every fixup index has a clear top bit.
func (e *bc7Encoder) assignIndices(shape, indexMode int, ends *[3]ldrEndPair, idx, idx2 *[BlockTexels]int) (totErr [3]float32) {
	info := e.info()
	colorPrec, alphaPrec := info.indexPrecs(indexMode)
	var pals [3][16]LDRColor
	for p := 0; p <= info.partitions; p++ {
		pals[p] = e.paletteQuantized(indexMode, ends[p])
	}
	for i := range e.pixels {
		region := partitionTable[info.partitions][shape][i]
		var err float32
		err, idx[i], idx2[i] = computeError(e.pixels[i], &pals[region], colorPrec, alphaPrec)
		totErr[region] += err
	}

	n1 := 1 << colorPrec
	for p := 0; p <= info.partitions; p++ {
		if idx[fixupTable[info.partitions][shape][p]]&(n1>>1) != 0 {
			if alphaPrec == 0 {
				ends[p][0], ends[p][1] = ends[p][1], ends[p][0]
			} else {
				a0, a1 := ends[p][0].A, ends[p][1].A
				ends[p][0], ends[p][1] = ends[p][1], ends[p][0]
				ends[p][0].A, ends[p][1].A = a0, a1
			}
			for i := range idx {
				if int(partitionTable[info.partitions][shape][i]) == p {
					idx[i] = n1 - 1 - idx[i]
				}
			}
		}
		if alphaPrec == 0 {
			continue
		}
		n2 := 1 << alphaPrec
		if idx2[0]&(n2>>1) != 0 {
			ends[p][0].A, ends[p][1].A = ends[p][1].A, ends[p][0].A
			for i := range idx2 {
				idx2[i] = n2 - 1 - idx2[i]
			}
		}
	}
	return totErr
}

// pBitVotes collects, per P-bit, how many endpoint channels sharing it have their low bit set.
func (e *bc7Encoder) pBitVotes(ends *[3]ldrEndPair) (pbits [6]uint8) {
	info := e.info()
	numEP := info.numEndPoints()
	var votes, count [6]int
	for ch := 0; ch < 4; ch++ {
		if info.prec[ch] == info.precWithP[ch] {
			continue
		}
		ep := 0
		for p := 0; p <= info.partitions; p++ {
			for end := 0; end < 2; end++ {
				k := ep * info.pBits / numEP
				ep++
				votes[k] += int(ends[p][end].get(ch) & 1)
				count[k]++
			}
		}
	}
	for i := 0; i < info.pBits; i++ {
		if votes[i] > count[i]>>1 {
			pbits[i] = 1
		}
	}
	return pbits
}

// fixPBits replaces the low bit of every channel that carries a P-bit with the voted P-bit,
// so later error measurements see the endpoints the decoder will.
func (e *bc7Encoder) fixPBits(org [3]ldrEndPair) [3]ldrEndPair {
	info := e.info()
	if info.pBits == 0 {
		return org
	}
	pbits := e.pBitVotes(&org)
	numEP := info.numEndPoints()
	fixed := org
	for p := 0; p <= info.partitions; p++ {
		for end := 0; end < 2; end++ {
			pb := pbits[(p*2+end)*info.pBits/numEP]
			for ch := 0; ch < 4; ch++ {
				if info.prec[ch] != info.precWithP[ch] {
					fixed[p][end].set(ch, fixed[p][end].get(ch)&^1|pb)
				}
			}
		}
	}
	return fixed
}

func (e *bc7Encoder) emitBlock(shape, rotation, indexMode int, ends *[3]ldrEndPair, idx, idx2 *[BlockTexels]int) Block {
	info := e.info()
	var blk Block
	c := bitCursor{b: &blk}
	c.writeBits(e.mode, 0)
	c.writeBit(1)
	c.writeBits(info.rotationBits, uint8(rotation))
	c.writeBits(info.indexModeBits, uint8(indexMode))
	c.writeBits(info.partitionBits, uint8(shape))

	for ch := 0; ch < 4; ch++ {
		n := int(info.prec[ch])
		shift := info.precWithP[ch] - info.prec[ch]
		for p := 0; p <= info.partitions; p++ {
			c.writeBits(n, ends[p][0].get(ch)>>shift)
			c.writeBits(n, ends[p][1].get(ch)>>shift)
		}
	}
	if info.pBits > 0 {
		pbits := e.pBitVotes(ends)
		for i := 0; i < info.pBits; i++ {
			c.writeBit(pbits[i])
		}
	}

	i1, i2 := idx, idx2
	if indexMode != 0 {
		i1, i2 = idx2, idx
	}
	for i := range i1 {
		n := info.indexPrec
		if isFixup(info.partitions, shape, i) {
			n--
		}
		c.writeBits(n, uint8(i1[i]))
	}
	if info.indexPrec2 > 0 {
		for i := range i2 {
			n := info.indexPrec2
			if i == 0 {
				n--
			}
			c.writeBits(n, uint8(i2[i]))
		}
	}
	return blk
}

func (e *bc7Encoder) refine(shape, rotation, indexMode int) (Block, float32) {
	info := e.info()
	var org [3]ldrEndPair
	for p := 0; p <= info.partitions; p++ {
		org[p][0] = quantizeLDR(e.ends[shape][p][0], info.precWithP)
		org[p][1] = quantizeLDR(e.ends[shape][p][1], info.precWithP)
	}

	var orgIdx, orgIdx2, optIdx, optIdx2 [BlockTexels]int
	ends1 := e.fixPBits(org)
	orgErr := e.assignIndices(shape, indexMode, &ends1, &orgIdx, &orgIdx2)

	opt := e.optimizeEndPoints(shape, indexMode, orgErr, ends1)
	ends2 := e.fixPBits(opt)
	optErr := e.assignIndices(shape, indexMode, &ends2, &optIdx, &optIdx2)

	var orgTot, optTot float32
	for p := 0; p <= info.partitions; p++ {
		orgTot += orgErr[p]
		optTot += optErr[p]
	}
	if optTot < orgTot {
		return e.emitBlock(shape, rotation, indexMode, &ends2, &optIdx, &optIdx2), optTot
	}
	return e.emitBlock(shape, rotation, indexMode, &ends1, &orgIdx, &orgIdx2), orgTot
}
