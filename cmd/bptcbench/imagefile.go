package main

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// loadImage reads an image file as tightly packed non-premultiplied RGBA8.
func loadImage(path string) (pix []byte, width, height int, err error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "open %s", path)
	}
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return nrgba.Pix, b.Dx(), b.Dy(), nil
}

// saveImage writes RGBA8 pixels, picking the encoder from the file extension.
func saveImage(path string, pix []byte, width, height int) error {
	img := &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

func rgba8ToUnit(pix []byte) []float32 {
	out := make([]float32, len(pix))
	for i, v := range pix {
		out[i] = float32(v) / 255
	}
	return out
}

func unitToRGBA8(pix []float32) []byte {
	out := make([]byte, len(pix))
	for i, v := range pix {
		if !(v >= 0) {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out[i] = uint8(v*255 + 0.5)
	}
	return out
}
