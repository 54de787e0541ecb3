package bptc

// BlockBytes is the size of one compressed BC6H or BC7 block.
const BlockBytes = 16

// BlockTexels is the number of texels covered by one block (4x4).
const BlockTexels = 16

const blockBits = BlockBytes * 8

// Block is one compressed 128-bit block. Bit 0 is the least significant bit of byte 0.
type Block [BlockBytes]byte

// bitCursor reads and writes little-endian bit fields of a Block, advancing monotonically.
//
// Fields are at most 8 bits wide and may straddle a byte boundary. Callers must check fits()
// when the stream may be malformed; reading or writing past bit 128 panics.
type bitCursor struct {
	b   *Block
	pos int
}

func (c *bitCursor) fits(n int) bool { return c.pos+n <= blockBits }

func (c *bitCursor) readBit() uint8 {
	v := (c.b[c.pos>>3] >> uint(c.pos&7)) & 1
	c.pos++
	return v
}

func (c *bitCursor) readBits(n int) uint8 {
	if n == 0 {
		return 0
	}
	i := c.pos >> 3
	base := uint(c.pos & 7)
	w := uint(c.b[i])
	if i+1 < BlockBytes {
		w |= uint(c.b[i+1]) << 8
	}
	c.pos += n
	return uint8((w >> base) & (1<<uint(n) - 1))
}

func (c *bitCursor) writeBit(v uint8) {
	i := c.pos >> 3
	base := uint(c.pos & 7)
	c.b[i] = c.b[i]&^(1<<base) | (v&1)<<base
	c.pos++
}

// writeBits stores the low n bits of v using read-modify-write, leaving neighbouring bits intact.
func (c *bitCursor) writeBits(n int, v uint8) {
	if n == 0 {
		return
	}
	i := c.pos >> 3
	base := uint(c.pos & 7)
	mask := uint(1)<<uint(n) - 1
	w := uint(c.b[i])
	if i+1 < BlockBytes {
		w |= uint(c.b[i+1]) << 8
	}
	w = w&^(mask<<base) | (uint(v)&mask)<<base
	c.b[i] = byte(w)
	if i+1 < BlockBytes {
		c.b[i+1] = byte(w >> 8)
	}
	c.pos += n
}
