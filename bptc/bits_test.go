package bptc

import (
	"math/rand"
	"testing"
)

func TestBitCursor_StraddlingFieldsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		var widths []int
		var values []uint8
		total := 0
		for total < blockBits {
			n := 1 + rng.Intn(8)
			if total+n > blockBits {
				n = blockBits - total
			}
			widths = append(widths, n)
			values = append(values, uint8(rng.Intn(1<<n)))
			total += n
		}

		var b Block
		w := bitCursor{b: &b}
		for i, n := range widths {
			w.writeBits(n, values[i])
		}
		if w.pos != blockBits {
			t.Fatalf("writer ended at bit %d", w.pos)
		}

		r := bitCursor{b: &b}
		for i, n := range widths {
			if !r.fits(n) {
				t.Fatalf("field %d (%d bits) reported as overrun at bit %d", i, n, r.pos)
			}
			if got := r.readBits(n); got != values[i] {
				t.Fatalf("iter %d field %d: got %#x want %#x", iter, i, got, values[i])
			}
		}
		if r.fits(1) {
			t.Fatalf("fits(1) at bit %d", r.pos)
		}
	}
}

func TestBitCursor_WriteKeepsNeighbours(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = 0xff
	}
	c := bitCursor{b: &b, pos: 5}
	c.writeBits(6, 0)
	// Bits 5..10 cleared, everything else intact.
	if b[0] != 0x1f || b[1] != 0xf8 || b[2] != 0xff {
		t.Fatalf("got % x, want 1f f8 ff", b[:3])
	}

	c = bitCursor{b: &b, pos: 7}
	c.writeBit(1)
	if b[0] != 0x9f {
		t.Fatalf("writeBit: got %#x want 0x9f", b[0])
	}
	c = bitCursor{b: &b, pos: 7}
	if c.readBit() != 1 || c.pos != 8 {
		t.Fatalf("readBit did not return the written bit")
	}
}

func TestBitCursor_LastByte(t *testing.T) {
	var b Block
	c := bitCursor{b: &b, pos: blockBits - 3}
	c.writeBits(3, 5)
	if b[BlockBytes-1] != 0xa0 {
		t.Fatalf("got %#x want 0xa0", b[BlockBytes-1])
	}
	c = bitCursor{b: &b, pos: blockBits - 3}
	if got := c.readBits(3); got != 5 {
		t.Fatalf("got %d want 5", got)
	}
}
