package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/am-sokolov/go-bptc/bptc"
)

// hdrPeak is the largest magnitude written by the HDR patterns.
const hdrPeak = 4.0

// scenario describes one encode run. The same struct backs the encode flags and the
// [[scenario]] tables of a suite file.
type scenario struct {
	Name         string  `toml:"name"`
	Format       string  `toml:"format"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Pattern      string  `toml:"pattern"`
	Image        string  `toml:"image"`
	Quick        bool    `toml:"quick"`
	ThreeSubsets bool    `toml:"three_subsets"`
	Iters        int     `toml:"iters"`
	MinPSNR      float64 `toml:"min_psnr"`
}

type scenarioResult struct {
	name     string
	format   format
	width    int
	height   int
	iters    int
	dur      time.Duration
	psnr     float64
	checksum string
	blocks   []byte
}

func (r *scenarioResult) String() string {
	return fmt.Sprintf("name=%s mode=encode format=%s size=%dx%d iters=%d seconds=%.6f mpix/s=%.3f psnr=%.2f checksum=%s",
		r.name, r.format, r.width, r.height, r.iters, r.dur.Seconds(),
		mpixPerSecond(r.width*r.height, r.iters, r.dur), r.psnr, r.checksum)
}

func (sc *scenario) flags() bptc.Flags {
	var f bptc.Flags
	if sc.Quick {
		f |= bptc.FlagQuick
	}
	if sc.ThreeSubsets {
		f |= bptc.FlagUse3Subsets
	}
	return f
}

func (sc *scenario) validate() (format, error) {
	f, err := parseFormat(sc.Format)
	if err != nil {
		return 0, err
	}
	if sc.Iters <= 0 {
		return 0, usagef("iters must be > 0")
	}
	if sc.Image == "" {
		if sc.Width <= 0 || sc.Height <= 0 {
			return 0, usagef("invalid dimensions %dx%d", sc.Width, sc.Height)
		}
		if _, ok := patterns[strings.ToLower(sc.Pattern)]; !ok {
			return 0, usagef("invalid pattern %q (want gradient|noise|solid|checker)", sc.Pattern)
		}
	}
	if f != formatBC7 && (sc.Quick || sc.ThreeSubsets) {
		return 0, usagef("quick and three-subset options only apply to bc7")
	}
	return f, nil
}

// source returns the scenario's input image. Exactly one of pix8 and pixf is set, matching
// the format, and peak is the largest magnitude the source may hold.
func (sc *scenario) source(f format) (pix8 []byte, pixf []float32, width, height int, peak float64, err error) {
	if sc.Image != "" {
		pix8, width, height, err = loadImage(sc.Image)
		if err != nil {
			return nil, nil, 0, 0, 0, err
		}
		if f == formatBC7 {
			return pix8, nil, width, height, 255, nil
		}
		return nil, rgba8ToUnit(pix8), width, height, 1, nil
	}

	p := patterns[strings.ToLower(sc.Pattern)]
	width, height = sc.Width, sc.Height
	if f == formatBC7 {
		pix8 = make([]byte, width*height*4)
		fillRGBA8(pix8, width, height, p)
		return pix8, nil, width, height, 255, nil
	}
	pixf = make([]float32, width*height*4)
	fillRGBAF32(pixf, width, height, p, f.signed())
	return nil, pixf, width, height, hdrPeak, nil
}

// runScenario encodes the scenario's source sc.Iters times, then decodes the last result to
// measure its quality.
func runScenario(sc scenario, checksumKind string) (*scenarioResult, error) {
	f, err := sc.validate()
	if err != nil {
		return nil, err
	}
	sum, err := newChecksum(checksumKind)
	if err != nil {
		return nil, err
	}
	pix8, pixf, width, height, peak, err := sc.source(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", sc.Name)
	}
	res := &scenarioResult{name: sc.Name, format: f, width: width, height: height, iters: sc.Iters}

	var mse float64
	start := time.Now()
	for i := 0; i < sc.Iters; i++ {
		if f == formatBC7 {
			res.blocks, err = bptc.EncodeBC7Image(pix8, width, height, sc.flags())
		} else {
			res.blocks, err = bptc.EncodeBC6HImage(pixf, width, height, f.signed())
		}
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %s", sc.Name)
		}
		sum.addBytes(res.blocks)
	}
	res.dur = time.Since(start)

	if f == formatBC7 {
		dec, err := bptc.DecodeBC7Image(res.blocks, width, height)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %s: decode", sc.Name)
		}
		mse = mseRGBA8(pix8, dec)
	} else {
		dec, err := bptc.DecodeBC6HImage(res.blocks, width, height, f.signed())
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %s: decode", sc.Name)
		}
		mse = mseRGBF32(pixf, dec)
	}

	res.psnr = psnr(mse, peak)
	res.checksum = sum.String()
	return res, nil
}

// A pattern returns unit-range RGBA for pixel (x, y) of a w x h image.
type pattern func(x, y, w, h int) [4]float64

var patterns = map[string]pattern{
	"gradient": func(x, y, w, h int) [4]float64 {
		u := float64(x) / float64(max(w-1, 1))
		v := float64(y) / float64(max(h-1, 1))
		return [4]float64{u, v, 1 - u*v, 1 - 0.5*v}
	},
	"noise": func(x, y, w, h int) [4]float64 {
		var c [4]float64
		for i := range c {
			c[i] = float64(hash32(uint32(x), uint32(y), uint32(i))&0xff) / 255
		}
		return c
	},
	"solid": func(x, y, w, h int) [4]float64 {
		return [4]float64{0.8, 0.4, 0.2, 1}
	},
	"checker": func(x, y, w, h int) [4]float64 {
		if (x/4+y/4)&1 == 0 {
			return [4]float64{1, 1, 1, 1}
		}
		return [4]float64{0, 0, 0, 1}
	},
}

func hash32(x, y, c uint32) uint32 {
	h := x*0x9e3779b1 ^ y*0x85ebca77 ^ c*0xc2b2ae3d
	h ^= h >> 15
	h *= 0x2c1b3c6d
	h ^= h >> 12
	return h
}

func fillRGBA8(pix []byte, width, height int, p pattern) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := p(x, y, width, height)
			off := (y*width + x) * 4
			for i := range c {
				pix[off+i] = uint8(math.Round(c[i] * 255))
			}
		}
	}
}

// fillRGBAF32 scales the pattern to [0, hdrPeak], or to [-hdrPeak, hdrPeak] when signed.
func fillRGBAF32(pix []float32, width, height int, p pattern, signed bool) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := p(x, y, width, height)
			off := (y*width + x) * 4
			for i := 0; i < 3; i++ {
				v := c[i] * hdrPeak
				if signed {
					v = (2*c[i] - 1) * hdrPeak
				}
				pix[off+i] = float32(v)
			}
			pix[off+3] = 1
		}
	}
}

func mseRGBA8(a, b []byte) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum / float64(len(a))
}

// mseRGBF32 skips alpha, which BC6H does not store.
func mseRGBF32(a, b []float32) float64 {
	var sum float64
	var n int
	for i := range a {
		if i%4 == 3 {
			continue
		}
		d := float64(a[i]) - float64(b[i])
		sum += d * d
		n++
	}
	return sum / float64(n)
}
