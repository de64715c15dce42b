// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorconv

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ResampleRow horizontally resamples one bpp-byte-per-pixel row from
// srcWidth to dstWidth columns, the horizontal counterpart to ROW_LOOP's
// image_height/out_height vertical row-index ratio. A no-op when the
// widths already match.
func ResampleRow(row []byte, bpp, srcWidth, dstWidth int) []byte {
	if srcWidth == dstWidth || srcWidth <= 0 || dstWidth <= 0 {
		return row
	}
	src := image.NewNRGBA(image.Rect(0, 0, srcWidth, 1))
	for x := 0; x < srcWidth; x++ {
		px := deserializePixel(row, bpp, x)
		src.SetNRGBA(x, 0, color.NRGBA{R: byte(px[0] >> 8), G: byte(px[1] >> 8), B: byte(px[2] >> 8), A: 255})
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dstWidth, 1))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out := make([]byte, dstWidth*3)
	for x := 0; x < dstWidth; x++ {
		c := dst.NRGBAAt(x, 0)
		out[3*x], out[3*x+1], out[3*x+2] = c.R, c.G, c.B
	}
	return out
}
