package bptc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/am-sokolov/go-bptc/bptc"
)

func solidHDR(r, g, b float32) *[bptc.BlockTexels]bptc.HDRColor {
	var texels [bptc.BlockTexels]bptc.HDRColor
	for i := range texels {
		texels[i] = bptc.HDRColor{R: r, G: g, B: b, A: 1}
	}
	return &texels
}

func closeTo(got, want, tol float32) bool {
	return float32(math.Abs(float64(got-want))) <= tol
}

func TestDecodeBC6H_Mode11MaxEndpoint(t *testing.T) {
	// Selector 0x03 in bits 0..4, then RW, GW, BW all ones in bits 5..34.
	blk := bptc.Block{0xe3, 0xff, 0xff, 0xff, 0x07}

	for _, c := range bptc.DecodeBC6H(&blk, false) {
		want := bptc.HDRColor{R: 65504, G: 65504, B: 65504, A: 1}
		if c != want {
			t.Fatalf("got %+v want %+v", c, want)
		}
	}

	info, err := bptc.InspectBC6H(&blk, false)
	if err != nil {
		t.Fatalf("InspectBC6H: %v", err)
	}
	if info.Mode != 11 || info.Subsets != 1 || info.Transformed {
		t.Fatalf("unexpected info %+v", info)
	}
	if diff := cmp.Diff([3]int{1023, 1023, 1023}, info.Endpoints[0][0]); diff != "" {
		t.Fatalf("endpoint A mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBC6H_ReservedModeIsOpaqueBlack(t *testing.T) {
	for _, sel := range []byte{0x13, 0x17, 0x1b, 0x1f} {
		blk := bptc.Block{sel, 0xff, 0xff, 0xff}
		for _, signed := range []bool{false, true} {
			for i, c := range bptc.DecodeBC6H(&blk, signed) {
				if c != (bptc.HDRColor{A: 1}) {
					t.Fatalf("selector %#x texel %d: got %+v want opaque black", sel, i, c)
				}
			}
			if _, err := bptc.InspectBC6H(&blk, signed); bptc.ErrorCodeOf(err) != bptc.ErrReservedMode {
				t.Fatalf("selector %#x: got %v want %v", sel, err, bptc.ErrReservedMode)
			}
		}
	}
}

func TestEncodeBC6H_SolidColors(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b float32
		signed  bool
	}{
		{"unsigned", 1.0, 0.5, 0.25, false},
		{"unsigned-bright", 100, 2000, 0.001, false},
		{"signed", -2, 0.5, 3, true},
		{"black", 0, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			blk := bptc.EncodeBC6H(solidHDR(c.r, c.g, c.b), c.signed)
			if _, err := bptc.InspectBC6H(&blk, c.signed); err != nil {
				t.Fatalf("encoded block does not parse: %v", err)
			}
			want := [3]float32{c.r, c.g, c.b}
			for i, px := range bptc.DecodeBC6H(&blk, c.signed) {
				got := [3]float32{px.R, px.G, px.B}
				for ch := range got {
					tol := float32(math.Abs(float64(want[ch])))/32 + 1e-3
					if !closeTo(got[ch], want[ch], tol) {
						t.Fatalf("texel %d channel %d: got %v want %v", i, ch, got[ch], want[ch])
					}
				}
				if px.A != 1 {
					t.Fatalf("texel %d: alpha %v want 1", i, px.A)
				}
			}
		})
	}
}

func TestEncodeBC6H_NegativeInputClampsForUnsigned(t *testing.T) {
	blk := bptc.EncodeBC6H(solidHDR(-4, -1, -0.5), false)
	for i, px := range bptc.DecodeBC6H(&blk, false) {
		if px != (bptc.HDRColor{A: 1}) {
			t.Fatalf("texel %d: got %+v want opaque black", i, px)
		}
	}
}

func TestEncodeBC6H_Gradient(t *testing.T) {
	var texels [bptc.BlockTexels]bptc.HDRColor
	for i := range texels {
		v := 1 + float32(i)/16
		texels[i] = bptc.HDRColor{R: v, G: 2 - v/2, B: 1.5, A: 1}
	}
	blk := bptc.EncodeBC6H(&texels, false)
	got := bptc.DecodeBC6H(&blk, false)
	for i := range texels {
		w, g := texels[i], got[i]
		if !closeTo(g.R, w.R, 0.05) || !closeTo(g.G, w.G, 0.05) || !closeTo(g.B, w.B, 0.05) {
			t.Fatalf("texel %d: got %+v want %+v", i, g, w)
		}
	}
}

func TestEncodeBC6H_RandomBlocksParse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 20; iter++ {
		signed := iter%2 == 1
		var texels [bptc.BlockTexels]bptc.HDRColor
		for i := range texels {
			texels[i] = bptc.HDRColor{
				R: rng.Float32() * 8,
				G: rng.Float32() * 8,
				B: rng.Float32() * 8,
				A: 1,
			}
			if signed {
				texels[i].R -= 4
				texels[i].B -= 4
			}
		}
		blk := bptc.EncodeBC6H(&texels, signed)
		if _, err := bptc.InspectBC6H(&blk, signed); err != nil {
			t.Fatalf("iter %d: encoded block does not parse: %v", iter, err)
		}
		for i, px := range bptc.DecodeBC6H(&blk, signed) {
			if math.IsNaN(float64(px.R)) || math.IsInf(float64(px.G), 0) {
				t.Fatalf("iter %d texel %d: non-finite output %+v", iter, i, px)
			}
			if !signed && (px.R < 0 || px.G < 0 || px.B < 0) {
				t.Fatalf("iter %d texel %d: negative unsigned output %+v", iter, i, px)
			}
		}
	}
}

func TestDecodeBC6H_IsDeterministicForArbitraryBits(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 500; iter++ {
		var blk bptc.Block
		rng.Read(blk[:])
		signed := iter%2 == 0
		a := bptc.DecodeBC6H(&blk, signed)
		b := bptc.DecodeBC6H(&blk, signed)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("iter %d: decode not deterministic:\n%s", iter, diff)
		}

		// Every mode fills the block exactly, so reserved selectors are the only rejection.
		_, err := bptc.InspectBC6H(&blk, signed)
		if err == nil {
			continue
		}
		if code := bptc.ErrorCodeOf(err); code != bptc.ErrReservedMode {
			t.Fatalf("iter %d: unexpected rejection %v", iter, err)
		}
		for i, c := range a {
			if c != (bptc.HDRColor{A: 1}) {
				t.Fatalf("iter %d texel %d: rejected block decodes to %+v", iter, i, c)
			}
		}
	}
}

func TestEncodeBC6H_IsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for _, signed := range []bool{false, true} {
		for iter := 0; iter < 8; iter++ {
			var texels [bptc.BlockTexels]bptc.HDRColor
			for i := range texels {
				ch := func() float32 {
					v := rng.Float32() * 8
					if signed {
						v = v*2 - 8
					}
					return v
				}
				texels[i] = bptc.HDRColor{R: ch(), G: ch(), B: ch(), A: 1}
			}
			a := bptc.EncodeBC6H(&texels, signed)
			b := bptc.EncodeBC6H(&texels, signed)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Fatalf("signed=%v iter %d: encode not deterministic:\n%s", signed, iter, diff)
			}
		}
	}
}
