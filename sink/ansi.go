// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sink

import (
	"bytes"
	"image/color"
	"io"
	"os"

	"github.com/maruel/ansi256"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/inkraster/raster/packbits"
	"github.com/inkraster/raster/weave"
)

// ANSIPreviewSink implements weave.Sink by rendering each flushed pass as
// a row of ANSI 256-color terminal blocks, the same technique screen1d
// uses for previewing an LED strip before real hardware is available.
// It never interprets the ESC/P2 byte stream itself: it works straight
// off the weave scheduler's per-channel bitplanes, the same data an
// escp2.Emitter would otherwise pack and send to the printer.
type ANSIPreviewSink struct {
	w       io.Writer
	palette ansi256.Palette
	enabled bool
	buf     bytes.Buffer
}

// NewANSIPreviewSink creates a preview sink writing to stdout. ANSI
// escapes are skipped entirely when stdout is not a terminal (or has
// been redirected to a file), following the same isatty guard
// go-colorable's own users apply.
func NewANSIPreviewSink() *ANSIPreviewSink {
	p := ansi256.Default
	return &ANSIPreviewSink{
		w:       colorable.NewColorableStdout(),
		palette: *p,
		enabled: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// EmitPass implements weave.Sink.
func (s *ANSIPreviewSink) EmitPass(p weave.PassData) error {
	if !s.enabled {
		return nil
	}
	widthBytes := (p.Width + 7) / 8
	var planes [weave.NChannels][]byte
	for ch := 0; ch < weave.NChannels; ch++ {
		if p.Counts[ch] == 0 || len(p.Lines[ch]) == 0 {
			continue
		}
		decoded := packbits.Decode(p.Lines[ch])
		if len(decoded) >= widthBytes {
			planes[ch] = decoded[:widthBytes]
		}
	}

	s.buf.Reset()
	s.buf.WriteString("\r\033[0m")
	for x := 0; x < p.Width; x++ {
		byteIdx := x / 8
		bit := byte(1) << uint(7-x%8)
		c := cmykBlock(planes, byteIdx, bit)
		io.WriteString(&s.buf, s.palette.Block(c))
	}
	s.buf.WriteString("\033[0m\n")
	_, err := s.buf.WriteTo(s.w)
	return err
}

// cmykBlock composes the four ink channels' on/off state at one pixel
// into an approximate RGB preview color.
func cmykBlock(planes [weave.NChannels][]byte, byteIdx int, bit byte) color.NRGBA {
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
