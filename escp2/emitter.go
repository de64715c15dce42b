// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package escp2

import (
	"fmt"

	"github.com/inkraster/raster/imgsrc"
	"github.com/inkraster/raster/packbits"
	"github.com/inkraster/raster/vars"
	"github.com/inkraster/raster/weave"
)

// colorChannelSelect maps a weave channel index to the legacy ESC ( r
// color-select byte: 0=black, 1=magenta, 2=cyan, 4=yellow, matching the
// ESC/P2 convention of one bit per non-black ink.
var colorChannelSelect = [weave.NChannels]byte{
	2, // cyan
	1, // magenta
	4, // yellow
	0, // black
}

// Emitter drives the ESC/P2 state machine: every public method writes to
// sink through a single point (write), so a sink failure aborts the page
// immediately and is surfaced to the caller as imgsrc.StatusAbort.
type Emitter struct {
	caps Capabilities
	sink imgsrc.OutputSink
	v    *vars.Vars

	curV       int
	anyData    bool
	firstErr   error
	headOffset HeadOffset
}

// NewEmitter creates an Emitter for the given model capabilities, writing
// to sink and logging diagnostics through v's configured logger when
// vars.DebugEscp2 is set. offset is each channel's physical nozzle-bank
// row shift relative to the reference channel (see weave.Geometry's
// HeadOffset), applied to the vertical-positioning opcode in EmitPass.
func NewEmitter(caps Capabilities, offset HeadOffset, sink imgsrc.OutputSink, v *vars.Vars) *Emitter {
	return &Emitter{caps: caps, headOffset: offset, sink: sink, v: v}
}

// Err returns the first sink write error encountered, if any.
func (e *Emitter) Err() error { return e.firstErr }

func (e *Emitter) write(b []byte) bool {
	if e.firstErr != nil {
		return false
	}
	if err := e.sink.Write(b); err != nil {
		e.firstErr = err
		return false
	}
	return true
}

func (e *Emitter) debug(msg string, args ...any) {
	if e.v != nil && e.v.DebugEnabled(vars.DebugEscp2) {
		e.v.Logger().Debug(msg, args...)
	}
}

// Init emits INIT: ESC @, preceded by the packet-mode-exit magic on
// models that need it.
func (e *Emitter) Init() bool {
	if e.caps.ExitPacketMode {
		e.write(exitPacketModeMagic)
	}
	e.debug("escp2: init")
	return e.write(opInit())
}

// RemoteSetupOpts configures which REMOTE_SETUP opcodes RemoteSetup
// emits, beyond what Capabilities already implies.
type RemoteSetupOpts struct {
	PaperPath      byte
	PaperThickness byte
	Vacuum         byte
	RollFeedMode   byte
}

// RemoteSetup emits the ESC ( R ... REMOTE1 block with per-model opcodes,
// closed by ESC 0 0 0.
func (e *Emitter) RemoteSetup(opts RemoteSetupOpts) bool {
	e.debug("escp2: remote setup")
	if !e.write(opRemoteEnter()) {
		return false
	}
	e.write(opPaperPath(opts.PaperPath))
	e.write(opPaperThickness(opts.PaperThickness))
	e.write(opVacuum(opts.Vacuum))
	if e.caps.ZeroMargin {
		e.write(opPlatenGap(0))
	}
	if e.caps.RollFeed {
		e.write(opRollFeed(opts.RollFeedMode))
	}
	return e.write(opRemoteExit())
}

// GraphicsOpts configures the GRAPHICS-state opcodes.
type GraphicsOpts struct {
	XDPI, YDPI      int
	Color           bool
	Unidirectional  bool
	DotSize         byte
	ResolutionScale int
	PageLengthDots  int
	TopMargin       int
	BottomMargin    int
	PaperForm       byte
}

// Graphics emits the GRAPHICS-state opcode block.
func (e *Emitter) Graphics(opts GraphicsOpts) bool {
	e.debug("escp2: graphics", "xdpi", opts.XDPI, "ydpi", opts.YDPI)
	ok := e.write(opGraphicsMode())
	ok = e.write(opResolution(opts.XDPI, opts.YDPI)) && ok
	ok = e.write(opColorMode(opts.Color)) && ok
	ok = e.write(opMicroweave(e.caps.Microweave)) && ok
	ok = e.write(opUnidirectional(opts.Unidirectional)) && ok
	ok = e.write(opDotSize(opts.DotSize)) && ok
	ok = e.write(opResolutionMagic(opts.ResolutionScale, opts.YDPI, opts.XDPI)) && ok
	ok = e.write(opPageLength(opts.PageLengthDots)) && ok
	ok = e.write(opMargins(opts.TopMargin, opts.BottomMargin)) && ok
	ok = e.write(opPaperForm(opts.PaperForm)) && ok
	return ok
}

// HeadOffset is each channel's physical row shift versus the reference
// channel, used to compute FLUSH_PASS's vertical positioning.
type HeadOffset [weave.NChannels]int

// EmitPass implements weave.Sink: FLUSH_PASS for one completed pass,
// emitting vertical/horizontal positioning, color select, the raster
// command, and padding for channels under caps.MinNozzles.
func (e *Emitter) EmitPass(p weave.PassData) error {
	e.debug("escp2: flush pass", "pass", p.PassIndex)
	compression := byte(1)
	bitDepth := byte(1)
	widthBytes := (p.Width + 7) / 8

	for ch := 0; ch < weave.NChannels; ch++ {
		count := p.Counts[ch]
		if count == 0 {
			continue
		}
		lines := p.Lines[ch]
		if count < e.caps.MinNozzles {
			pad := blankRLELine(widthBytes)
			for i := count; i < e.caps.MinNozzles; i++ {
				lines = append(lines, pad...)
			}
			count = e.caps.MinNozzles
		}

		targetV := p.PassIndex*e.caps.Separation + e.headOffset[ch]
		if targetV != e.curV {
			e.write(opVerticalPosition(targetV - e.curV))
			e.curV = targetV
		}
		e.write(opColorSelect(colorChannelSelect[ch]))
		e.write(opHorizontalPosition(p.XOffset))

		var raster []byte
		if e.caps.Softweave {
			raster = opRasterSoftweave(compression, bitDepth, widthBytes, count)
		} else {
			raster = opRasterMicroweave(compression, bitDepth, widthBytes, count)
		}
		e.write(raster)
		e.write(lines)
		e.write(opCR())
		e.anyData = true
	}
	if e.firstErr != nil {
		return fmt.Errorf("escp2: pass %d: %w", p.PassIndex, e.firstErr)
	}
	return nil
}

// blankRLELine returns a packbits-compressed all-zero line of widthBytes,
// used to pad a channel up to a model's minimum nozzle count.
func blankRLELine(widthBytes int) []byte {
	return packbits.Encode(make([]byte, widthBytes))
}

// Eject emits EJECT: a form feed if any data was written this page, then
// the final ESC @ and REMOTE1 teardown.
func (e *Emitter) Eject() bool {
	e.debug("escp2: eject")
	if e.anyData {
		e.write(opFormFeed())
	}
	ok := e.write(opInit())
	ok = e.write(opRemoteEnter()) && ok
	ok = e.write(opLoadSettings()) && ok
	if e.caps.JETeardown {
		ok = e.write(opJobEnd()) && ok
	}
	ok = e.write(opRemoteExit()) && ok
	return ok
}

// Deinit is a no-op placeholder for symmetry with the state-machine
// diagram; nothing further needs to be written once Eject completes.
func (e *Emitter) Deinit() {
	e.debug("escp2: deinit")
}
