package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/am-sokolov/go-bptc/bptc"
)

var out = newConsole(os.Stdout)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = encodeCmd(os.Args[2:])
	case "decode":
		err = decodeCmd(os.Args[2:])
	case "inspect":
		err = inspectCmd(os.Args[2:])
	case "suite":
		err = suiteCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		out.fail(err)
		if _, ok := errors.Cause(err).(usageError); ok {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  bptcbench encode -format bc7|bc6h|bc6h-signed [-w W] [-h H] [-pattern gradient|noise|solid|checker | -image file.png] [-quick] [-3subsets] [-iters N] [-out file.bin] [-checksum fnv|blake3|highway|none] [-cpuprofile file]")
	fmt.Fprintln(os.Stderr, "  bptcbench decode -format bc7|bc6h|bc6h-signed -in file.bin -w W -h H [-png out.png] [-iters N] [-checksum fnv|blake3|highway|none]")
	fmt.Fprintln(os.Stderr, "  bptcbench inspect -format bc7|bc6h|bc6h-signed -hex <32 hex digits>")
	fmt.Fprintln(os.Stderr, "  bptcbench suite -config suite.toml")
}

// usageError marks argument errors, which exit with status 2.
type usageError string

func (e usageError) Error() string { return string(e) }

func usagef(format string, args ...any) error {
	return usageError(fmt.Sprintf(format, args...))
}

type format int

const (
	formatBC7 format = iota
	formatBC6H
	formatBC6HSigned
)

func parseFormat(s string) (format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bc7":
		return formatBC7, nil
	case "bc6h", "bc6h-unsigned", "bc6h-uf16":
		return formatBC6H, nil
	case "bc6h-signed", "bc6h-sf16":
		return formatBC6HSigned, nil
	default:
		return 0, usagef("invalid -format %q (want bc7|bc6h|bc6h-signed)", s)
	}
}

func (f format) String() string {
	switch f {
	case formatBC7:
		return "bc7"
	case formatBC6H:
		return "bc6h"
	default:
		return "bc6h-signed"
	}
}

func (f format) signed() bool { return f == formatBC6HSigned }

func encodeCmd(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	var (
		sc          scenario
		outPath     string
		checksumOpt string
		cpuprofile  string
	)
	fs.StringVar(&sc.Format, "format", "bc7", "format: bc7|bc6h|bc6h-signed")
	fs.IntVar(&sc.Width, "w", 256, "width")
	fs.IntVar(&sc.Height, "h", 256, "height")
	fs.StringVar(&sc.Pattern, "pattern", "gradient", "pattern: gradient|noise|solid|checker")
	fs.StringVar(&sc.Image, "image", "", "optional source image (png|jpeg|gif|tiff|bmp); overrides -w, -h and -pattern")
	fs.BoolVar(&sc.Quick, "quick", false, "BC7: only try mode 6")
	fs.BoolVar(&sc.ThreeSubsets, "3subsets", false, "BC7: also try the three-subset modes 0 and 2")
	fs.IntVar(&sc.Iters, "iters", 4, "iterations")
	fs.StringVar(&outPath, "out", "", "optional output path for the raw blocks of the last iteration")
	fs.StringVar(&checksumOpt, "checksum", "fnv", "checksum: fnv|blake3|highway|none")
	fs.StringVar(&cpuprofile, "cpuprofile", "", "optional CPU profile output path")
	_ = fs.Parse(args)
	sc.Name = "encode"

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return errors.Wrap(err, "create cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return errors.Wrap(err, "start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	res, err := runScenario(sc, checksumOpt)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := os.WriteFile(outPath, res.blocks, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", outPath)
		}
	}
	out.result(res.String())
	return nil
}

func decodeCmd(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	var (
		formatName  string
		inPath      string
		pngPath     string
		width       int
		height      int
		iters       int
		checksumOpt string
	)
	fs.StringVar(&formatName, "format", "bc7", "format: bc7|bc6h|bc6h-signed")
	fs.StringVar(&inPath, "in", "", "input file of concatenated 16-byte blocks")
	fs.StringVar(&pngPath, "png", "", "optional path for the decoded image (HDR values are clamped to [0,1])")
	fs.IntVar(&width, "w", 0, "image width")
	fs.IntVar(&height, "h", 0, "image height")
	fs.IntVar(&iters, "iters", 50, "iterations")
	fs.StringVar(&checksumOpt, "checksum", "fnv", "checksum: fnv|blake3|highway|none")
	_ = fs.Parse(args)

	if inPath == "" {
		return usagef("missing -in")
	}
	if width <= 0 || height <= 0 {
		return usagef("invalid dimensions %dx%d", width, height)
	}
	if iters <= 0 {
		return usagef("iters must be > 0")
	}
	f, err := parseFormat(formatName)
	if err != nil {
		return err
	}
	sum, err := newChecksum(checksumOpt)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "read %s", inPath)
	}

	var pix8 []byte
	var pixf []float32
	start := time.Now()
	for i := 0; i < iters; i++ {
		if f == formatBC7 {
			pix8, err = bptc.DecodeBC7Image(data, width, height)
			if err != nil {
				return errors.Wrapf(err, "decode %s", inPath)
			}
			sum.addBytes(pix8)
			continue
		}
		pixf, err = bptc.DecodeBC6HImage(data, width, height, f.signed())
		if err != nil {
			return errors.Wrapf(err, "decode %s", inPath)
		}
		sum.addFloat32(pixf)
	}
	dur := time.Since(start)

	if pngPath != "" {
		if pix8 == nil {
			pix8 = unitToRGBA8(pixf)
		}
		if err := saveImage(pngPath, pix8, width, height); err != nil {
			return err
		}
	}

	out.result(fmt.Sprintf("mode=decode format=%s size=%dx%d iters=%d seconds=%.6f mpix/s=%.3f checksum=%s",
		f, width, height, iters, dur.Seconds(), mpixPerSecond(width*height, iters, dur), sum.String()))
	return nil
}

var spewConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
}

func inspectCmd(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var formatName, hexStr string
	fs.StringVar(&formatName, "format", "bc7", "format: bc7|bc6h|bc6h-signed")
	fs.StringVar(&hexStr, "hex", "", "block payload as 32 hex digits")
	_ = fs.Parse(args)

	f, err := parseFormat(formatName)
	if err != nil {
		return err
	}
	blk, err := parseBlockHex(hexStr)
	if err != nil {
		return err
	}

	// A malformed block still decodes to its fill color, so report and keep going.
	if f == formatBC7 {
		info, err := bptc.InspectBC7(&blk)
		if err != nil {
			out.warn(err)
		} else {
			spewConfig.Fdump(os.Stdout, info)
		}
		texels := bptc.DecodeBC7RGBA8(&blk)
		for y := 0; y < 4; y++ {
			row := make([]string, 4)
			for x := range row {
				c := texels[y*4+x]
				row[x] = fmt.Sprintf("%3d,%3d,%3d,%3d", c.R, c.G, c.B, c.A)
			}
			fmt.Println(strings.Join(row, " | "))
		}
		return nil
	}

	info, err := bptc.InspectBC6H(&blk, f.signed())
	if err != nil {
		out.warn(err)
	} else {
		spewConfig.Fdump(os.Stdout, info)
	}
	texels := bptc.DecodeBC6H(&blk, f.signed())
	for y := 0; y < 4; y++ {
		row := make([]string, 4)
		for x := range row {
			c := texels[y*4+x]
			row[x] = fmt.Sprintf("%9.4g,%9.4g,%9.4g", c.R, c.G, c.B)
		}
		fmt.Println(strings.Join(row, " | "))
	}
	return nil
}

func parseBlockHex(s string) (bptc.Block, error) {
	var blk bptc.Block
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return blk, usagef("invalid -hex %q: %v", s, err)
	}
	if len(raw) != bptc.BlockBytes {
		return blk, usagef("invalid -hex %q: want %d bytes, got %d", s, bptc.BlockBytes, len(raw))
	}
	copy(blk[:], raw)
	return blk, nil
}

func mpixPerSecond(texels, iters int, dur time.Duration) float64 {
	return float64(texels) * float64(iters) / dur.Seconds() / 1e6
}

// psnr returns the peak signal-to-noise ratio in dB, +Inf for an exact match.
func psnr(mse, peak float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(peak*peak/mse)
}
