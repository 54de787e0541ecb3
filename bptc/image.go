package bptc

// Image helpers tile a row-major pixel buffer into 4x4 blocks. Partial edge blocks replicate
// the last row and column of the image. Blocks are stored row-major with no header.

func blocksFor(width, height int) (bx, by int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return (width + 3) / 4, (height + 3) / 4, true
}

func extractBlockRGBA8(pix []byte, width, height, x0, y0 int, dst *[BlockTexels]LDRColor) {
	for by := 0; by < 4; by++ {
		y := min(y0+by, height-1)
		row := y * width * 4
		for bx := 0; bx < 4; bx++ {
			x := min(x0+bx, width-1)
			src := pix[row+x*4 : row+x*4+4]
			dst[by*4+bx] = LDRColor{src[0], src[1], src[2], src[3]}
		}
	}
}

func extractBlockRGBAF32(pix []float32, width, height, x0, y0 int, dst *[BlockTexels]HDRColor) {
	for by := 0; by < 4; by++ {
		y := min(y0+by, height-1)
		row := y * width * 4
		for bx := 0; bx < 4; bx++ {
			x := min(x0+bx, width-1)
			src := pix[row+x*4 : row+x*4+4]
			dst[by*4+bx] = HDRColor{src[0], src[1], src[2], src[3]}
		}
	}
}

// EncodeBC7Image compresses an RGBA8 image into BC7 blocks.
func EncodeBC7Image(pix []byte, width, height int, flags Flags) ([]byte, error) {
	blocksX, blocksY, ok := blocksFor(width, height)
	if !ok {
		return nil, newError(ErrBadParam, "bptc: invalid image dimensions")
	}
	if len(pix) != width*height*4 {
		return nil, newError(ErrBadParam, "bptc: invalid RGBA8 buffer length")
	}
	if flags&^flagsAll != 0 {
		return nil, newError(ErrBadFlags, "bptc: unknown BC7 flags")
	}

	out := make([]byte, 0, blocksX*blocksY*BlockBytes)
	var texels [BlockTexels]LDRColor
	for y := 0; y < blocksY; y++ {
		for x := 0; x < blocksX; x++ {
			extractBlockRGBA8(pix, width, height, x*4, y*4, &texels)
			blk := EncodeBC7RGBA8(&texels, flags)
			out = append(out, blk[:]...)
		}
	}
	return out, nil
}

// DecodeBC7Image decompresses BC7 blocks into an RGBA8 image of the given size.
func DecodeBC7Image(blocks []byte, width, height int) ([]byte, error) {
	blocksX, blocksY, ok := blocksFor(width, height)
	if !ok {
		return nil, newError(ErrBadParam, "bptc: invalid image dimensions")
	}
	if len(blocks) != blocksX*blocksY*BlockBytes {
		return nil, newError(ErrBadParam, "bptc: block data length does not match image size")
	}

	pix := make([]byte, width*height*4)
	for y := 0; y < blocksY; y++ {
		for x := 0; x < blocksX; x++ {
			blk := (*Block)(blocks[(y*blocksX+x)*BlockBytes:])
			texels := DecodeBC7RGBA8(blk)
			for ty := 0; ty < 4 && y*4+ty < height; ty++ {
				for tx := 0; tx < 4 && x*4+tx < width; tx++ {
					c := texels[ty*4+tx]
					off := ((y*4+ty)*width + x*4 + tx) * 4
					pix[off+0] = c.R
					pix[off+1] = c.G
					pix[off+2] = c.B
					pix[off+3] = c.A
				}
			}
		}
	}
	return pix, nil
}

// EncodeBC6HImage compresses an RGBA float32 image into BC6H blocks. Alpha is ignored.
func EncodeBC6HImage(pix []float32, width, height int, signed bool) ([]byte, error) {
	blocksX, blocksY, ok := blocksFor(width, height)
	if !ok {
		return nil, newError(ErrBadParam, "bptc: invalid image dimensions")
	}
	if len(pix) != width*height*4 {
		return nil, newError(ErrBadParam, "bptc: invalid RGBA float32 buffer length")
	}

	out := make([]byte, 0, blocksX*blocksY*BlockBytes)
	var texels [BlockTexels]HDRColor
	for y := 0; y < blocksY; y++ {
		for x := 0; x < blocksX; x++ {
			extractBlockRGBAF32(pix, width, height, x*4, y*4, &texels)
			blk := EncodeBC6H(&texels, signed)
			out = append(out, blk[:]...)
		}
	}
	return out, nil
}

// DecodeBC6HImage decompresses BC6H blocks into an RGBA float32 image of the given size.
func DecodeBC6HImage(blocks []byte, width, height int, signed bool) ([]float32, error) {
	blocksX, blocksY, ok := blocksFor(width, height)
	if !ok {
		return nil, newError(ErrBadParam, "bptc: invalid image dimensions")
	}
	if len(blocks) != blocksX*blocksY*BlockBytes {
		return nil, newError(ErrBadParam, "bptc: block data length does not match image size")
	}

	pix := make([]float32, width*height*4)
	for y := 0; y < blocksY; y++ {
		for x := 0; x < blocksX; x++ {
			blk := (*Block)(blocks[(y*blocksX+x)*BlockBytes:])
			texels := DecodeBC6H(blk, signed)
			for ty := 0; ty < 4 && y*4+ty < height; ty++ {
				for tx := 0; tx < 4 && x*4+tx < width; tx++ {
					c := texels[ty*4+tx]
					off := ((y*4+ty)*width + x*4 + tx) * 4
					pix[off+0] = c.R
					pix[off+1] = c.G
					pix[off+2] = c.B
					pix[off+3] = c.A
				}
			}
		}
	}
	return pix, nil
}

// DecodeBC6HInto decodes one BC6H block into dst as 16 RGBA float32 texels, row-major.
func DecodeBC6HInto(dst []float32, block []byte, signed bool) error {
	if len(block) < BlockBytes {
		return newError(ErrBadParam, "bptc: block shorter than 16 bytes")
	}
	if len(dst) < BlockTexels*4 {
		return newError(ErrBadParam, "bptc: destination shorter than 64 floats")
	}
	texels := DecodeBC6H((*Block)(block), signed)
	for i, c := range texels {
		dst[i*4+0] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
	return nil
}

// DecodeBC7Into decodes one BC7 block into dst as 16 RGBA8 texels, row-major.
func DecodeBC7Into(dst []byte, block []byte) error {
	if len(block) < BlockBytes {
		return newError(ErrBadParam, "bptc: block shorter than 16 bytes")
	}
	if len(dst) < BlockTexels*4 {
		return newError(ErrBadParam, "bptc: destination shorter than 64 bytes")
	}
	texels := DecodeBC7RGBA8((*Block)(block))
	for i, c := range texels {
		dst[i*4+0] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
	return nil
}
