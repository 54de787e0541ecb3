package main

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestParseSuite(t *testing.T) {
	cfg, err := parseSuite(`
checksum = "highway"

[[scenario]]
format = "bc7"
width = 8
height = 4
quick = true

[[scenario]]
name = "hdr"
format = "bc6h-signed"
width = 4
height = 4
pattern = "noise"
iters = 2
min_psnr = 20.0
`)
	if err != nil {
		t.Fatalf("parseSuite: %v", err)
	}
	want := &suiteConfig{
		Checksum: "highway",
		Scenario: []scenario{
			{Name: "scenario-1", Format: "bc7", Width: 8, Height: 4, Pattern: "gradient", Quick: true, Iters: 1},
			{Name: "hdr", Format: "bc6h-signed", Width: 4, Height: 4, Pattern: "noise", Iters: 2, MinPSNR: 20},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("suite mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSuite_Rejects(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "[[scenario]]\nformat = \"bc7\"\nwidth = 4\nheight = 4\ncolour = 1\n", "unknown keys: scenario.colour"},
		{"empty", "checksum = \"fnv\"\n", "no scenarios"},
		{"bad checksum", "checksum = \"md5\"\n[[scenario]]\nformat = \"bc7\"\nwidth = 4\nheight = 4\n", "invalid -checksum"},
		{"bad format", "[[scenario]]\nformat = \"bc5\"\nwidth = 4\nheight = 4\n", "invalid -format"},
		{"bc6h quick", "[[scenario]]\nformat = \"bc6h\"\nwidth = 4\nheight = 4\nquick = true\n", "only apply to bc7"},
		{"bad pattern", "[[scenario]]\nformat = \"bc7\"\nwidth = 4\nheight = 4\npattern = \"plaid\"\n", "invalid pattern"},
	}
	for _, tc := range cases {
		_, err := parseSuite(tc.data)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: got %q want substring %q", tc.name, err, tc.want)
		}
	}
}

func TestParseBlockHex(t *testing.T) {
	blk, err := parseBlockHex("0x40" + strings.Repeat("00", 15))
	if err != nil {
		t.Fatalf("parseBlockHex: %v", err)
	}
	if blk[0] != 0x40 || blk[15] != 0 {
		t.Fatalf("got %x", blk)
	}

	for _, s := range []string{"", "zz", "00", strings.Repeat("00", 17)} {
		_, err := parseBlockHex(s)
		if _, ok := errors.Cause(err).(usageError); !ok {
			t.Fatalf("parseBlockHex(%q): got %v want usage error", s, err)
		}
	}
}

func TestRunScenario(t *testing.T) {
	cases := []struct {
		sc      scenario
		minPSNR float64
	}{
		{scenario{Name: "solid", Format: "bc7", Width: 8, Height: 8, Pattern: "solid", Iters: 1}, 40},
		{scenario{Name: "checker", Format: "bc7", Width: 8, Height: 8, Pattern: "checker", Iters: 1, Quick: true}, 60},
		{scenario{Name: "gradient", Format: "bc7", Width: 16, Height: 8, Pattern: "gradient", Iters: 1}, 35},
		{scenario{Name: "hdr", Format: "bc6h", Width: 8, Height: 8, Pattern: "gradient", Iters: 1}, 30},
		{scenario{Name: "hdr-signed", Format: "bc6h-signed", Width: 8, Height: 4, Pattern: "solid", Iters: 1}, 30},
	}
	for _, tc := range cases {
		res, err := runScenario(tc.sc, "fnv")
		if err != nil {
			t.Fatalf("%s: %v", tc.sc.Name, err)
		}
		if got, want := len(res.blocks), (tc.sc.Width+3)/4*((tc.sc.Height+3)/4)*16; got != want {
			t.Fatalf("%s: got %d block bytes want %d", tc.sc.Name, got, want)
		}
		if res.psnr < tc.minPSNR {
			t.Fatalf("%s: psnr %.2f below %.2f", tc.sc.Name, res.psnr, tc.minPSNR)
		}
		if len(res.checksum) != 16 {
			t.Fatalf("%s: checksum %q", tc.sc.Name, res.checksum)
		}
	}
}

func TestPSNR(t *testing.T) {
	if !math.IsInf(psnr(0, 255), 1) {
		t.Fatalf("exact match should be +Inf")
	}
	if got := psnr(1, 10); math.Abs(got-20) > 1e-9 {
		t.Fatalf("got %v want 20", got)
	}
}

func TestChecksumKinds(t *testing.T) {
	cases := []struct {
		kind   string
		hexLen int
	}{
		{"fnv", 16},
		{"blake3", 64},
		{"highway", 16},
	}
	data := []byte("bptc")
	floats := []float32{1, -2.5, 65504}
	for _, tc := range cases {
		a, err := newChecksum(tc.kind)
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		b, _ := newChecksum(tc.kind)
		a.addBytes(data)
		a.addFloat32(floats)
		b.addBytes(data)
		b.addFloat32(floats)
		if got := a.String(); len(got) != tc.hexLen || got != b.String() {
			t.Fatalf("%s: got %q and %q, want equal sums of %d hex digits", tc.kind, got, b.String(), tc.hexLen)
		}
	}

	none, err := newChecksum("none")
	if err != nil || none != nil {
		t.Fatalf("none: got %v, %v", none, err)
	}
	none.addBytes(data)
	if got := none.String(); got != "none" {
		t.Fatalf("got %q want none", got)
	}
}

func TestFNV1a64(t *testing.T) {
	if got := fnv1a64(0, nil); got != 0xcbf29ce484222325 {
		t.Fatalf("empty input: got %#x want the offset basis", got)
	}
	if got := fnv1a64(0, []byte("a")); got != 0xaf63dc4c8601ec8c {
		t.Fatalf(`"a": got %#x want 0xaf63dc4c8601ec8c`, got)
	}
	// Floats hash as their little-endian bits.
	want := fnv1a64(0, []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x20, 0xc0})
	if got := fnv1a64Float32(0, []float32{1, -2.5}); got != want {
		t.Fatalf("float hash: got %#x want %#x", got, want)
	}
	// A running sum continues from its seed.
	if got := fnv1a64(fnv1a64(0, []byte("bp")), []byte("tc")); got != fnv1a64(0, []byte("bptc")) {
		t.Fatalf("chained hash: got %#x", got)
	}
}

func TestRunScenario_ImageSource(t *testing.T) {
	const w, h = 6, 5
	pix := make([]byte, w*h*4)
	fillRGBA8(pix, w, h, patterns["gradient"])
	path := filepath.Join(t.TempDir(), "src.png")
	if err := saveImage(path, pix, w, h); err != nil {
		t.Fatalf("saveImage: %v", err)
	}

	for _, format := range []string{"bc7", "bc6h"} {
		res, err := runScenario(scenario{Name: format, Format: format, Image: path, Iters: 1}, "none")
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if res.width != w || res.height != h {
			t.Fatalf("%s: got %dx%d want %dx%d", format, res.width, res.height, w, h)
		}
		if res.psnr < 30 {
			t.Fatalf("%s: psnr %.2f", format, res.psnr)
		}
	}
}
