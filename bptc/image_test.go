package bptc_test

import (
	"testing"

	"github.com/am-sokolov/go-bptc/bptc"
)

func TestBC7Image_SolidRoundTrip(t *testing.T) {
	const w, h = 6, 5
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0], pix[i+1], pix[i+2], pix[i+3] = 200, 100, 50, 255
	}
	blocks, err := bptc.EncodeBC7Image(pix, w, h, 0)
	if err != nil {
		t.Fatalf("EncodeBC7Image: %v", err)
	}
	if len(blocks) != 2*2*bptc.BlockBytes {
		t.Fatalf("got %d bytes of blocks want %d", len(blocks), 2*2*bptc.BlockBytes)
	}
	out, err := bptc.DecodeBC7Image(blocks, w, h)
	if err != nil {
		t.Fatalf("DecodeBC7Image: %v", err)
	}
	if string(out) != string(pix) {
		t.Fatalf("round trip mismatch")
	}
}

func TestBC7Image_EdgeTilesReplicate(t *testing.T) {
	// A 5x1 image: the second block sees only column 4, replicated.
	pix := []byte{
		0, 0, 0, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
		90, 180, 30, 255,
	}
	blocks, err := bptc.EncodeBC7Image(pix, 5, 1, 0)
	if err != nil {
		t.Fatalf("EncodeBC7Image: %v", err)
	}
	var blk bptc.Block
	copy(blk[:], blocks[bptc.BlockBytes:])
	for i, c := range bptc.DecodeBC7RGBA8(&blk) {
		if c != (bptc.LDRColor{R: 90, G: 180, B: 30, A: 255}) {
			t.Fatalf("edge texel %d: got %+v", i, c)
		}
	}
}

func TestBC6HImage_RoundTrip(t *testing.T) {
	const w, h = 7, 3
	pix := make([]float32, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0], pix[i+1], pix[i+2], pix[i+3] = 1, 0.5, 0.25, 0.3
	}
	blocks, err := bptc.EncodeBC6HImage(pix, w, h, false)
	if err != nil {
		t.Fatalf("EncodeBC6HImage: %v", err)
	}
	out, err := bptc.DecodeBC6HImage(blocks, w, h, false)
	if err != nil {
		t.Fatalf("DecodeBC6HImage: %v", err)
	}
	if len(out) != len(pix) {
		t.Fatalf("got %d floats want %d", len(out), len(pix))
	}
	for i := 0; i < len(out); i += 4 {
		for ch := 0; ch < 3; ch++ {
			if !closeTo(out[i+ch], pix[i+ch], pix[i+ch]/32) {
				t.Fatalf("pixel %d channel %d: got %v want %v", i/4, ch, out[i+ch], pix[i+ch])
			}
		}
		if out[i+3] != 1 {
			t.Fatalf("pixel %d: alpha %v want 1", i/4, out[i+3])
		}
	}
}

func TestImage_BadParams(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
		want bptc.ErrorCode
	}{
		{"bc7-zero-width", func() error { _, err := bptc.EncodeBC7Image(nil, 0, 4, 0); return err }, bptc.ErrBadParam},
		{"bc7-short-pixels", func() error { _, err := bptc.EncodeBC7Image(make([]byte, 10), 4, 4, 0); return err }, bptc.ErrBadParam},
		{"bc7-bad-flags", func() error { _, err := bptc.EncodeBC7Image(make([]byte, 64), 4, 4, 1<<9); return err }, bptc.ErrBadFlags},
		{"bc7-decode-length", func() error { _, err := bptc.DecodeBC7Image(make([]byte, 15), 4, 4); return err }, bptc.ErrBadParam},
		{"bc6h-negative-height", func() error { _, err := bptc.EncodeBC6HImage(nil, 4, -1, false); return err }, bptc.ErrBadParam},
		{"bc6h-short-pixels", func() error { _, err := bptc.EncodeBC6HImage(make([]float32, 3), 1, 1, true); return err }, bptc.ErrBadParam},
		{"bc6h-decode-length", func() error { _, err := bptc.DecodeBC6HImage(make([]byte, 32), 4, 4, false); return err }, bptc.ErrBadParam},
		{"bc6h-into-short-dst", func() error { return bptc.DecodeBC6HInto(make([]float32, 10), make([]byte, 16), false) }, bptc.ErrBadParam},
		{"bc6h-into-short-block", func() error { return bptc.DecodeBC6HInto(make([]float32, 64), make([]byte, 8), false) }, bptc.ErrBadParam},
		{"bc7-into-short-dst", func() error { return bptc.DecodeBC7Into(make([]byte, 63), make([]byte, 16)) }, bptc.ErrBadParam},
	}
	for _, c := range cases {
		if got := bptc.ErrorCodeOf(c.run()); got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestDecodeInto_MatchesBlockDecode(t *testing.T) {
	blk := bptc.Block{0xe3, 0xff, 0xff, 0xff, 0x07}
	dst := make([]float32, 64)
	if err := bptc.DecodeBC6HInto(dst, blk[:], false); err != nil {
		t.Fatalf("DecodeBC6HInto: %v", err)
	}
	for i, c := range bptc.DecodeBC6H(&blk, false) {
		if dst[i*4] != c.R || dst[i*4+1] != c.G || dst[i*4+2] != c.B || dst[i*4+3] != c.A {
			t.Fatalf("texel %d mismatch", i)
		}
	}

	b7 := bptc.EncodeBC7RGBA8(solidLDR(bptc.LDRColor{R: 1, G: 2, B: 3, A: 4}), 0)
	out := make([]byte, 64)
	if err := bptc.DecodeBC7Into(out, b7[:]); err != nil {
		t.Fatalf("DecodeBC7Into: %v", err)
	}
	for i, c := range bptc.DecodeBC7RGBA8(&b7) {
		if out[i*4] != c.R || out[i*4+1] != c.G || out[i*4+2] != c.B || out[i*4+3] != c.A {
			t.Fatalf("texel %d mismatch", i)
		}
	}
}
