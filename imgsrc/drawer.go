// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imgsrc

import (
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"

	"github.com/inkraster/raster/packbits"
	"github.com/inkraster/raster/weave"
)

// Drawer implements weave.Sink by accumulating every flushed pass into an
// in-memory page bitmap exposed as a periph.io/x/conn/v3/display.Drawer,
// the same ColorModel/Bounds/Draw contract ssd1306.Dev and inky.Dev expose
// for their own framebuffers. It lets the print pipeline's final raster be
// read back by anything that consumes a display.Drawer, without the
// pipeline ever touching real hardware.
//
// Rows arrive exactly as the feeding weave.Scheduler packed them; Drawer
// must be constructed with the same Compression that scheduler used.
type Drawer struct {
	compression weave.Compression
	img         *image.NRGBA
	nextRow     int
}

// NewDrawer creates a Drawer for a page of the given size in dots.
func NewDrawer(width, height int, compression weave.Compression) *Drawer {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return &Drawer{compression: compression, img: img}
}

// EmitPass implements weave.Sink: decodes each channel's packed line data
// and stacks the pass's rows onto the bitmap in flush order.
func (d *Drawer) EmitPass(p weave.PassData) error {
	widthBytes := (p.Width + 7) / 8
	var planes [weave.NChannels][]byte
	rows := 0
	for ch := 0; ch < weave.NChannels; ch++ {
		if p.Counts[ch] == 0 || len(p.Lines[ch]) == 0 {
			continue
		}
		decoded := p.Lines[ch]
		if d.compression == weave.PackbitsRLE {
			decoded = packbits.Decode(decoded)
		}
		planes[ch] = decoded
		if p.Counts[ch] > rows {
			rows = p.Counts[ch]
		}
	}

	bounds := d.img.Bounds()
	for r := 0; r < rows; r++ {
		if d.nextRow >= bounds.Dy() {
			break
		}
		for x := 0; x < p.Width; x++ {
			px := p.XOffset + x
			if px < bounds.Min.X || px >= bounds.Max.X {
				continue
			}
			byteIdx := r*widthBytes + x/8
			bit := byte(1) << uint(7-x%8)
			d.img.SetNRGBA(px, d.nextRow, channelRGB(planes, byteIdx, bit))
		}
		d.nextRow++
	}
	return nil
}

// channelRGB composes the four ink channels' on/off state at one pixel
// into an approximate RGB color, the same blend sink.ANSIPreviewSink uses.
func channelRGB(planes [weave.NChannels][]byte, byteIdx int, bit byte) color.NRGBA {
	on := func(ch int) bool {
		plane := planes[ch]
		return byteIdx < len(plane) && plane[byteIdx]&bit != 0
	}
	// Channel order matches dither.Cyan/Magenta/Yellow/Black (0..3).
	c, m, y, k := on(0), on(1), on(2), on(3)
	r, g, b := uint8(255), uint8(255), uint8(255)
	if c {
		g, b = g/2, b/2
	}
	if m {
		r, b = r/2, b/2
	}
	if y {
		r, g = r/2, g/2
	}
	if k {
		r, g, b = r/3, g/3, b/3
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ColorModel implements display.Drawer.
func (d *Drawer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Drawer) Bounds() image.Rectangle { return d.img.Bounds() }

// Draw implements display.Drawer, compositing src onto the accumulated
// page bitmap at sp.
func (d *Drawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.img, r, src, sp, draw.Src)
	return nil
}

// Image returns the accumulated page bitmap.
func (d *Drawer) Image() image.Image { return d.img }

// Halt implements conn.Resource. Drawer holds no live transport, so there
// is nothing to release.
func (d *Drawer) Halt() error { return nil }

var _ display.Drawer = &Drawer{}
var _ conn.Resource = &Drawer{}
