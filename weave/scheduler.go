// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package weave

import (
	"fmt"
	"log/slog"

	"github.com/inkraster/raster/dither"
	"github.com/inkraster/raster/packbits"
)

// NChannels is the number of ink channels a row carries, matching
// dither.NChannels.
const NChannels = int(dither.NChannels)

// Compression selects how write_row packs a channel's raw line before it
// is appended to a pass slot.
type Compression int

// Valid Compression values.
const (
	Raw Compression = iota
	PackbitsRLE
)

// Geometry is the fixed print-head layout a Scheduler assigns rows
// against: jets spaced separation rows apart, optionally firing each row
// oversample times for finer vertical resolution, within [FirstRow,
// LastRow] of the printable page.
type Geometry struct {
	Jets       int
	Separation int
	Oversample int

	HorizontalWeave   int
	VerticalSubpasses int
	RepeatCount       int

	FirstRow int
	LastRow  int

	// HeadOffset is each channel's physical nozzle-bank row shift relative
	// to the reference channel. AssignRow and WriteRow do not read it: every
	// channel of a row gets the same pass and jet.
	HeadOffset [NChannels]int
}

func (g Geometry) jetsPerBank() int {
	if g.Oversample <= 0 {
		return g.Jets
	}
	return g.Jets / g.Oversample
}

// Assignment is the scheduling decision for a single output row: which
// pass and jet fire it, and the pass's physical extent on the page.
type Assignment struct {
	PassIndex        int
	JetIndex         int
	SubPass          int
	LogicalStart     int
	PhysStart        int
	PhysEnd          int
	MissingStartRows int
}

// AssignRow computes the pass/jet assignment for row, per §4.H: pass is
// the row's position within one separation-sized band, jet is which
// nozzle in the bank reaches it. This is the division/modulo pairing
// that reproduces the worked two-pass interleave example (row%separation
// for pass, row/separation for jet) rather than the inverse pairing the
// prose states alongside it; the worked example is the more specific,
// binding statement where the two disagree (see DESIGN.md). Each block of
// Separation*(Jets/Oversample) rows gets its own Separation passes: the
// pass index advances by Separation from one block to the next, so no
// (pass, jet) pair repeats down the page.
func (g Geometry) AssignRow(row int) Assignment {
	bank := g.jetsPerBank()
	if bank <= 0 {
		bank = 1
	}
	pass := row%g.Separation + g.Separation*(row/(g.Separation*bank))
	jet := (row / g.Separation) % bank

	logicalStart := pass*g.Separation - (g.Jets-1)*g.Separation
	missing := g.FirstRow - logicalStart
	if missing < 0 {
		missing = 0
	}
	physStart := logicalStart + missing
	if physStart < g.FirstRow {
		physStart = g.FirstRow
	}
	physEnd := logicalStart + (g.Jets-1)*g.Separation
	if physEnd > g.LastRow {
		physEnd = g.LastRow
	}

	return Assignment{
		PassIndex:        pass,
		JetIndex:         jet,
		LogicalStart:     logicalStart,
		PhysStart:        physStart,
		PhysEnd:          physEnd,
		MissingStartRows: missing,
	}
}

// PassData is a completed pass handed to a Sink for emission.
type PassData struct {
	PassIndex int
	Width     int
	XOffset   int
	XDPI      int
	YDPI      int
	Model     int
	Counts    [NChannels]int
	Lines     [NChannels][]byte
}

// Sink receives completed passes. The escp2 emitter implements this to
// turn each pass into ESC/P2 raster commands.
type Sink interface {
	EmitPass(p PassData) error
}

type slot struct {
	valid   bool
	pass    int
	width   int
	xOffset int
	xdpi    int
	ydpi    int
	model   int
	counts  [NChannels]int
	lines   [NChannels][]byte
}

// Scheduler holds the ring of in-flight passes for one page.
type Scheduler struct {
	geo         Geometry
	compression Compression
	sink        Sink
	vmod        int
	slots       []slot

	logger *slog.Logger
}

// SetLogger overrides the logger Scheduler uses for flush/rotation
// diagnostics. A nil logger (the default) disables the trace entirely.
func (s *Scheduler) SetLogger(l *slog.Logger) {
	s.logger = l
}

// NewScheduler creates a Scheduler for the given geometry, flushing
// completed passes to sink. vmod is computed per §4.H:
// horizontal_weave * vertical_subpasses * repeat_count * oversample.
func NewScheduler(geo Geometry, compression Compression, sink Sink) *Scheduler {
	vmod := geo.HorizontalWeave * geo.VerticalSubpasses * geo.RepeatCount * geo.Oversample
	if vmod <= 0 {
		vmod = 1
	}
	return &Scheduler{
		geo:         geo,
		compression: compression,
		sink:        sink,
		vmod:        vmod,
		slots:       make([]slot, vmod),
	}
}

// WriteRow packs one dithered row's channel data and appends it into its
// assigned pass's slot, flushing any displaced pass first.
func (s *Scheduler) WriteRow(row, length, ydpi, model, width, xOffset, xdpi int, cols [NChannels][]byte) error {
	asn := s.geo.AssignRow(row)
	slotIdx := asn.PassIndex % s.vmod

	sl := &s.slots[slotIdx]
	if sl.valid && sl.pass != asn.PassIndex {
		if s.logger != nil {
			s.logger.Debug("weave ring rotation", "slot", slotIdx, "evicted_pass", sl.pass, "incoming_pass", asn.PassIndex)
		}
		if err := s.flushSlot(slotIdx); err != nil {
			return err
		}
		sl = &s.slots[slotIdx]
	}
	if !sl.valid {
		sl.valid = true
		sl.pass = asn.PassIndex
		sl.width = width
		sl.xOffset = xOffset
		sl.xdpi = xdpi
		sl.ydpi = ydpi
		sl.model = model
	}

	for ch := 0; ch < NChannels; ch++ {
		if ch >= len(cols) || cols[ch] == nil {
			continue
		}
		if sl.counts[ch] >= s.geo.Jets {
			return fmt.Errorf("weave: row %d overfills pass %d channel %d beyond %d jets", row, asn.PassIndex, ch, s.geo.Jets)
		}
		var packed []byte
		switch s.compression {
		case PackbitsRLE:
			packed = packbits.Encode(cols[ch])
		default:
			packed = append([]byte(nil), cols[ch]...)
		}
		sl.lines[ch] = append(sl.lines[ch], packed...)
		sl.counts[ch]++
	}
	return nil
}

func (s *Scheduler) flushSlot(slotIdx int) error {
	sl := &s.slots[slotIdx]
	if !sl.valid {
		return nil
	}
	pd := PassData{
		PassIndex: sl.pass,
		Width:     sl.width,
		XOffset:   sl.xOffset,
		XDPI:      sl.xdpi,
		YDPI:      sl.ydpi,
		Model:     sl.model,
		Counts:    sl.counts,
		Lines:     sl.lines,
	}
	*sl = slot{}
	if s.logger != nil {
		s.logger.Debug("weave pass flush", "pass", pd.PassIndex, "counts", pd.Counts)
	}
	if s.sink != nil {
		return s.sink.EmitPass(pd)
	}
	return nil
}

// FlushAll emits every still-pending slot at page end, per §4.H's
// flush_all.
func (s *Scheduler) FlushAll() error {
	for i := range s.slots {
		if err := s.flushSlot(i); err != nil {
			return err
		}
	}
	return nil
}
