// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imgsrc

import (
	"fmt"
	"image"
)

// FromImage adapts a standard library image.Image into an ImageSource,
// delivering rows as 8-bit-per-channel RGB triples (BPP() == 3). This is
// the bridge a caller uses to feed a decoded PNG/JPEG/etc. into the
// pipeline without writing a bespoke ImageSource.
type FromImage struct {
	Img image.Image

	rotations int // quarter turns, CW, mod 4
	flipH     bool
	flipV     bool
	crop      image.Rectangle
	appName   string
}

// NewFromImage wraps img for use as an ImageSource.
func NewFromImage(img image.Image) *FromImage {
	return &FromImage{Img: img, crop: img.Bounds(), appName: "imgsrc.FromImage"}
}

// Init implements ImageSource.
func (f *FromImage) Init() error { return nil }

// Reset implements ImageSource. FromImage is stateless across rows (each
// GetRow recomputes its source coordinates), so Reset is a no-op.
func (f *FromImage) Reset() error { return nil }

// Width implements ImageSource, honoring any Transpose/rotation applied.
func (f *FromImage) Width() int {
	if f.rotations%2 == 1 {
		return f.crop.Dy()
	}
	return f.crop.Dx()
}

// Height implements ImageSource.
func (f *FromImage) Height() int {
	if f.rotations%2 == 1 {
		return f.crop.Dx()
	}
	return f.crop.Dy()
}

// BPP implements ImageSource. FromImage always normalizes to 8-bit RGB.
func (f *FromImage) BPP() int { return 3 }

// GetRow implements ImageSource.
func (f *FromImage) GetRow(buf []byte, row int) (Status, error) {
	w := f.Width()
	need := w * 3
	if len(buf) < need {
		return StatusAbort, fmt.Errorf("imgsrc: row buffer too small: need %d, got %d", need, len(buf))
	}
	for x := 0; x < w; x++ {
		sx, sy := f.mapPixel(x, row)
		r, g, b, _ := f.Img.At(sx, sy).RGBA()
		buf[3*x] = byte(r >> 8)
		buf[3*x+1] = byte(g >> 8)
		buf[3*x+2] = byte(b >> 8)
	}
	return StatusOK, nil
}

// mapPixel resolves an (x, y) in the output's orientation back to the
// source image's coordinate space. The order is fixed, whatever order the
// operations were requested in: the net rotation is undone first, then the
// flips (in the cropped source's axes), then the crop offset is added.
func (f *FromImage) mapPixel(x, y int) (int, int) {
	ow, oh := f.Width(), f.Height()
	switch f.rotations % 4 {
	case 1: // 90 CW
		x, y = y, ow-1-x
	case 2: // 180
		x, y = ow-1-x, oh-1-y
	case 3: // 270 CW (90 CCW)
		x, y = oh-1-y, x
	}
	if f.flipH {
		x = f.crop.Dx() - 1 - x
	}
	if f.flipV {
		y = f.crop.Dy() - 1 - y
	}
	return f.crop.Min.X + x, f.crop.Min.Y + y
}

func (f *FromImage) ProgressInit()                    {}
func (f *FromImage) NoteProgress(current, total int)  {}
func (f *FromImage) ProgressConclude()                {}

// RotateCW implements ImageSource.
func (f *FromImage) RotateCW() error { f.rotations = (f.rotations + 1) % 4; return nil }

// RotateCCW implements ImageSource.
func (f *FromImage) RotateCCW() error { f.rotations = (f.rotations + 3) % 4; return nil }

// Rotate180 implements ImageSource.
func (f *FromImage) Rotate180() error { f.rotations = (f.rotations + 2) % 4; return nil }

// FlipHorizontal implements ImageSource.
func (f *FromImage) FlipHorizontal() error { f.flipH = !f.flipH; return nil }

// FlipVertical implements ImageSource.
func (f *FromImage) FlipVertical() error { f.flipV = !f.flipV; return nil }

// Crop implements ImageSource.
func (f *FromImage) Crop(left, top, right, bottom int) error {
	r := image.Rect(left, top, right, bottom).Intersect(f.Img.Bounds())
	if r.Empty() {
		return fmt.Errorf("imgsrc: crop rectangle is empty")
	}
	f.crop = r
	return nil
}

// Transpose implements ImageSource as a 90-degree rotation plus a flip of
// the source's vertical axis, so output pixel (x, y) reads source pixel
// (y, x): the conventional raster transpose.
func (f *FromImage) Transpose() error {
	if err := f.RotateCW(); err != nil {
		return err
	}
	return f.FlipVertical()
}

// AppName implements ImageSource.
func (f *FromImage) AppName() string { return f.appName }

// SetAppName overrides the reported application name.
func (f *FromImage) SetAppName(name string) { f.appName = name }
