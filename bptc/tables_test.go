package bptc

import "testing"

func TestPartitionTables_FixupsBelongToTheirSubset(t *testing.T) {
	for parts := 0; parts < 3; parts++ {
		for shape := 0; shape < 64; shape++ {
			tbl := &partitionTable[parts][shape]
			if tbl[0] != 0 {
				t.Fatalf("partition %d shape %d: texel 0 in subset %d, want 0", parts, shape, tbl[0])
			}
			if fixupTable[parts][shape][0] != 0 {
				t.Fatalf("partition %d shape %d: subset 0 fixup %d, want 0", parts, shape, fixupTable[parts][shape][0])
			}
			var seen [3]bool
			for _, s := range tbl {
				if int(s) > parts {
					t.Fatalf("partition %d shape %d: subset %d out of range", parts, shape, s)
				}
				seen[s] = true
			}
			for p := 0; p <= parts; p++ {
				if !seen[p] {
					t.Fatalf("partition %d shape %d: subset %d is empty", parts, shape, p)
				}
				fix := fixupTable[parts][shape][p]
				if int(tbl[fix]) != p {
					t.Fatalf("partition %d shape %d: fixup %d of subset %d lies in subset %d", parts, shape, fix, p, tbl[fix])
				}
				if !isFixup(parts, shape, int(fix)) {
					t.Fatalf("isFixup(%d, %d, %d) = false", parts, shape, fix)
				}
			}
		}
	}
}

func TestBC6HFieldLayout_CoversEveryPrecisionBit(t *testing.T) {
	for m := range bc6hModes {
		info := &bc6hModes[m]
		layout := &bc6hFieldLayout[m]
		header := info.headerBits()

		modeBits := 5
		if m < 2 {
			modeBits = 2
		}
		for i := 0; i < modeBits; i++ {
			if layout[i].field != fM || int(layout[i].bit) != i {
				t.Fatalf("mode %d bit %d: got %+v, want mode bit %d", m+1, i, layout[i], i)
			}
		}
		for i := header; i < len(layout); i++ {
			if layout[i].field != fNA {
				t.Fatalf("mode %d bit %d: field %d set past the %d-bit header", m+1, i, layout[i].field, header)
			}
		}

		var seen [2][2][3]uint32
		shapeBits := 0
		for i := modeBits; i < header; i++ {
			d := layout[i]
			if d.field == fD {
				shapeBits++
				continue
			}
			subset, end, ch, ok := d.field.endpoint()
			if !ok {
				t.Fatalf("mode %d bit %d: unexpected field %d inside the header", m+1, i, d.field)
			}
			if seen[subset][end][ch]&(1<<d.bit) != 0 {
				t.Fatalf("mode %d: endpoint bit %d/%d/%d.%d stored twice", m+1, subset, end, ch, d.bit)
			}
			seen[subset][end][ch] |= 1 << d.bit
		}

		wantShape := 0
		if info.partitions > 0 {
			wantShape = 5
		}
		if shapeBits != wantShape {
			t.Fatalf("mode %d: %d shape bits, want %d", m+1, shapeBits, wantShape)
		}
		for p := 0; p < 2; p++ {
			for end := 0; end < 2; end++ {
				for ch := 0; ch < 3; ch++ {
					want := uint32(1)<<info.prec[p][end][ch] - 1
					if p > info.partitions {
						want = 0
					}
					if seen[p][end][ch] != want {
						t.Fatalf("mode %d endpoint %d/%d channel %d: bits %#x, want %#x", m+1, p, end, ch, seen[p][end][ch], want)
					}
				}
			}
		}
	}
}

func TestBC6HModeToInfo_RoundTripsCodes(t *testing.T) {
	valid := 0
	for sel, idx := range bc6hModeToInfo {
		if idx < 0 {
			continue
		}
		valid++
		if got := int(bc6hModes[idx].code); got != sel {
			t.Fatalf("selector %#x maps to mode %d with code %#x", sel, idx+1, got)
		}
	}
	if valid != len(bc6hModes) {
		t.Fatalf("got %d valid selectors, want %d", valid, len(bc6hModes))
	}
	for _, sel := range []int{0x13, 0x17, 0x1b, 0x1f} {
		if bc6hModeToInfo[sel] >= 0 {
			t.Fatalf("reserved selector %#x maps to a mode", sel)
		}
	}
}

// Every BC6H mode fills the 128-bit block exactly, and each index width addresses precisely
// the palette the decoder checks against, so a block can neither overrun nor hold an index
// past its palette.
func TestBC6HModes_IndicesFillTheBlock(t *testing.T) {
	for m := range bc6hModes {
		info := &bc6hModes[m]
		limit := 16
		if info.partitions > 0 {
			limit = 8
		}
		if 1<<info.indexPrec != limit {
			t.Fatalf("mode %d: %d-bit indices address %d entries, want %d", m+1, info.indexPrec, 1<<info.indexPrec, limit)
		}
		shapes := 1
		if info.partitions > 0 {
			shapes = 32
		}
		for shape := 0; shape < shapes; shape++ {
			bits := info.headerBits()
			for i := 0; i < 16; i++ {
				bits += info.indexPrec
				if isFixup(info.partitions, shape, i) {
					bits--
				}
			}
			if bits != 128 {
				t.Fatalf("mode %d shape %d: %d bits, want 128", m+1, shape, bits)
			}
		}
	}
}

func TestBC7Modes_FieldsFillTheBlock(t *testing.T) {
	for m := range bc7Modes {
		info := &bc7Modes[m]
		for shape := 0; shape < 1<<info.partitionBits; shape++ {
			bits := m + 1 + info.partitionBits + info.rotationBits + info.indexModeBits + info.pBits
			for ch := 0; ch < 4; ch++ {
				bits += int(info.prec[ch]) * info.numEndPoints()
			}
			for i := 0; i < 16; i++ {
				bits += info.indexPrec
				if isFixup(info.partitions, shape, i) {
					bits--
				}
			}
			if info.indexPrec2 > 0 {
				bits += 16*info.indexPrec2 - 1
			}
			if bits != 128 {
				t.Fatalf("mode %d shape %d: %d bits, want 128", m, shape, bits)
			}
		}
	}
}
