// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package print

import (
	"github.com/inkraster/raster/colorconv"
	"github.com/inkraster/raster/colorlut"
	"github.com/inkraster/raster/dither"
	"github.com/inkraster/raster/escp2"
	"github.com/inkraster/raster/imgsrc"
	"github.com/inkraster/raster/printer"
	"github.com/inkraster/raster/sink"
	"github.com/inkraster/raster/vars"
	"github.com/inkraster/raster/weave"
)

// pointsToDots converts a points (1/72 in) measurement to device dots at
// the given dpi.
func pointsToDots(points, dpi int) int {
	return points * dpi / 72
}

// algorithmFor maps a Vars.DitherAlgorithm display string to its
// dither.Algorithm, falling back to AdaptiveHybrid (DefaultVars' choice)
// for anything unrecognized.
func algorithmFor(name string) dither.Algorithm {
	switch name {
	case "Floyd-Steinberg":
		return dither.Floyd
	case "Hybrid Floyd-Steinberg":
		return dither.HybridFloyd
	case "Ordered":
		return dither.Ordered
	case "Ordered Perturbed":
		return dither.OrderedPerturbed
	case "Adaptive Random":
		return dither.AdaptiveRandom
	default:
		return dither.AdaptiveHybrid
	}
}

// newDitherContext builds a dither.Context configured from v, with a
// single-drop-size partition on every channel — the right default absent
// a per-ink profile table (see DESIGN.md).
func newDitherContext(v *vars.Vars, width int) *dither.Context {
	c := dither.Init(width, width)
	c.SetDensity(int(v.Density * 65536))
	c.Algorithm = algorithmFor(v.DitherAlgorithm)
	c.SetTransition(0, 2*65536/3)
	c.SetBlackLevel(64, 64, 64)
	for ch := dither.Cyan; ch <= dither.Black; ch++ {
		c.SetRangesSimple(ch)
	}
	return c
}

// Print drives the full ROW_LOOP for one page of img under v, through m's
// fixed hardware facts, emitting to out (a raw ESC/P2 byte sink) and, when
// stdout is a terminal, an ANSI preview alongside it.
func Print(m Model, modelNumber int, v *vars.Vars, img imgsrc.ImageSource, out imgsrc.OutputSink) (imgsrc.Status, error) {
	local := *v
	v = &local
	if err := img.Init(); err != nil {
		return imgsrc.StatusAbort, err
	}
	defer img.ProgressConclude()
	img.ProgressInit()

	xdpi, ydpi := m.Caps.XDPI, m.Caps.YDPI
	if xdpi <= 0 {
		xdpi = 360
	}
	if ydpi <= 0 {
		ydpi = 360
	}

	left, top, right, bottom := 0, 0, 0, 0
	pageWidth, pageHeight := v.PageWidth, v.PageHeight
	if pageWidth <= 0 {
		if m.MaxWidth > 0 {
			pageWidth = m.MaxWidth
		} else {
			pageWidth = 612
		}
	}
	if pageHeight <= 0 {
		pageHeight = 792
	}

	outWidth := pointsToDots(pageWidth-left-right, xdpi)
	outHeight := pointsToDots(pageHeight-top-bottom, ydpi)
	if outWidth <= 0 {
		outWidth = pointsToDots(pageWidth, xdpi)
	}
	if outHeight <= 0 {
		outHeight = pointsToDots(pageHeight, ydpi)
	}

	imageWidth, imageHeight, bpp := img.Width(), img.Height(), img.BPP()
	if imageWidth <= 0 || imageHeight <= 0 || bpp <= 0 {
		return imgsrc.StatusAbort, nil
	}

	lut, err := colorlut.Build(v, m.LUTSteps)
	if err != nil {
		return imgsrc.StatusAbort, err
	}

	dctx := newDitherContext(v, outWidth)
	if v.DebugEnabled(vars.DebugDither) {
		dctx.SetLogger(v.Logger())
	}
	widthBytes := (outWidth + 7) / 8

	geo := m.Geometry
	geo.HeadOffset = headOffsetToGeometry(m.HeadOffset)
	geo.FirstRow = 0
	geo.LastRow = outHeight - 1

	emitter := escp2.NewEmitter(m.Caps, m.HeadOffset, out, v)
	multi := sink.MultiSink{Sinks: []weave.Sink{emitter, sink.NewANSIPreviewSink()}}
	scheduler := weave.NewScheduler(geo, weave.PackbitsRLE, multi)
	if v.DebugEnabled(vars.DebugWeave) {
		scheduler.SetLogger(v.Logger())
	}

	emitter.Init()
	emitter.RemoteSetup(m.RemoteSetup)
	emitter.Graphics(escp2.GraphicsOpts{
		XDPI:            xdpi,
		YDPI:            ydpi,
		Color:           v.OutputType == vars.Color,
		Unidirectional:  false,
		DotSize:         m.DotSize,
		ResolutionScale: m.Caps.ResolutionScale,
		PageLengthDots:  pointsToDots(pageHeight, ydpi),
		TopMargin:       pointsToDots(top, ydpi),
		BottomMargin:    pointsToDots(bottom, ydpi),
		PaperForm:       m.PaperForm,
	})

	xOffset := pointsToDots(left, xdpi)
	rawRow := make([]byte, imageWidth*bpp)
	rgbOut := make([][3]uint16, outWidth)

	status := imgsrc.StatusOK
	for y := 0; y < outHeight; y++ {
		srcRow := y * imageHeight / outHeight
		if srcRow >= imageHeight {
			srcRow = imageHeight - 1
		}
		st, rerr := img.GetRow(rawRow, srcRow)
		if st == imgsrc.StatusAbort {
			status = imgsrc.StatusAbort
			err = rerr
			break
		}

		resampled := colorconv.ResampleRow(rawRow, bpp, imageWidth, outWidth)
		mask := colorconv.ConvertRow(v, lut, nil, resampled, 3, rgbOut)

		var planes dither.Planes
		for ch := 0; ch < weave.NChannels; ch++ {
			planes[ch] = [][]byte{make([]byte, widthBytes)}
		}
		dctx.DitherCMYK(rgbOut, y, dither.ZeroMask(mask), planes, outWidth)

		var cols [weave.NChannels][]byte
		for ch := 0; ch < weave.NChannels; ch++ {
			cols[ch] = planes[ch][0]
		}
		if werr := scheduler.WriteRow(y, outWidth, ydpi, modelNumber, outWidth, xOffset, xdpi, cols); werr != nil {
			status = imgsrc.StatusAbort
			err = werr
			break
		}
		img.NoteProgress(y, outHeight)
	}

	if status != imgsrc.StatusAbort {
		if ferr := scheduler.FlushAll(); ferr != nil {
			status, err = imgsrc.StatusAbort, ferr
		}
	}

	emitter.Eject()
	emitter.Deinit()
	if status == imgsrc.StatusOK && emitter.Err() != nil {
		status, err = imgsrc.StatusAbort, emitter.Err()
	}
	return status, err
}

// printFor returns the printer.Family.Print closure for model m, capturing
// its fixed Model so every registered printer shares the one ROW_LOOP
// implementation above.
func printFor(m Model) func(p *printer.Printer, v *vars.Vars, img imgsrc.ImageSource, out imgsrc.OutputSink) (imgsrc.Status, error) {
	return func(p *printer.Printer, v *vars.Vars, img imgsrc.ImageSource, out imgsrc.OutputSink) (imgsrc.Status, error) {
		return Print(m, p.ModelNumber, v, img, out)
	}
}
