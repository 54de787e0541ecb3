package bptc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/am-sokolov/go-bptc/bptc"
)

func TestInspectBC7_Mode6(t *testing.T) {
	blk := bptc.Block{0xc0}
	for i := 1; i < len(blk); i++ {
		blk[i] = 0xff
	}
	got, err := bptc.InspectBC7(&blk)
	if err != nil {
		t.Fatalf("InspectBC7: %v", err)
	}

	white := bptc.LDRColor{R: 255, G: 255, B: 255, A: 255}
	want := bptc.BC7BlockInfo{
		Mode:    6,
		Subsets: 1,
		PBits:   []uint8{1, 1},
	}
	want.Endpoints[0] = [2]bptc.LDRColor{white, white}
	for i := range want.Indices {
		want.Indices[i] = 15
	}
	want.Indices[0] = 7

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("InspectBC7 mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectBC7_SeparateAlphaIndices(t *testing.T) {
	var texels [bptc.BlockTexels]bptc.LDRColor
	for i := range texels {
		texels[i] = bptc.LDRColor{R: uint8(i * 16), G: 30, B: 60, A: uint8(255 - i*16)}
	}
	blk := bptc.EncodeBC7RGBA8(&texels, 0)
	info, err := bptc.InspectBC7(&blk)
	if err != nil {
		t.Fatalf("InspectBC7: %v", err)
	}
	switch info.Mode {
	case 4, 5:
		if len(info.AlphaIndices) != bptc.BlockTexels {
			t.Fatalf("mode %d: got %d alpha indices", info.Mode, len(info.AlphaIndices))
		}
	default:
		if info.AlphaIndices != nil {
			t.Fatalf("mode %d: unexpected alpha indices", info.Mode)
		}
		if info.Rotation != 0 || info.IndexMode != 0 {
			t.Fatalf("mode %d: rotation %d index mode %d", info.Mode, info.Rotation, info.IndexMode)
		}
	}
}

func TestInspectBC6H_EncodedTwoSubsetBlock(t *testing.T) {
	var texels [bptc.BlockTexels]bptc.HDRColor
	for i := range texels {
		if i%4 < 2 {
			texels[i] = bptc.HDRColor{R: 4, G: 0.1, B: 0.1, A: 1}
		} else {
			texels[i] = bptc.HDRColor{R: 0.1, G: 0.1, B: 4, A: 1}
		}
	}
	blk := bptc.EncodeBC6H(&texels, false)
	info, err := bptc.InspectBC6H(&blk, false)
	if err != nil {
		t.Fatalf("InspectBC6H: %v", err)
	}
	if info.Mode < 1 || info.Mode > 14 {
		t.Fatalf("mode %d out of range", info.Mode)
	}
	wantSubsets := 2
	if info.Mode > 10 {
		wantSubsets = 1
	}
	if info.Subsets != wantSubsets {
		t.Fatalf("mode %d: got %d subsets want %d", info.Mode, info.Subsets, wantSubsets)
	}
	limit := 1 << info.IndexBits
	for i, v := range info.Indices {
		if v < 0 || v >= limit {
			t.Fatalf("index %d = %d outside [0,%d)", i, v, limit)
		}
	}
}

func TestInspect_ErrorsCarryCodes(t *testing.T) {
	var zero bptc.Block
	_, err := bptc.InspectBC7(&zero)
	if got := bptc.ErrorCodeOf(err); got != bptc.ErrReservedMode {
		t.Fatalf("InspectBC7(zero): got %v want %v", got, bptc.ErrReservedMode)
	}
	if err.Error() == "" {
		t.Fatalf("empty error message")
	}

	reserved := bptc.Block{0x1f}
	_, err = bptc.InspectBC6H(&reserved, false)
	if got := bptc.ErrorCodeOf(err); got != bptc.ErrReservedMode {
		t.Fatalf("InspectBC6H(0x1f): got %v want %v", got, bptc.ErrReservedMode)
	}
}
