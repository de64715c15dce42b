// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dither

import (
	"log/slog"
	"math/rand"
)

// Algorithm selects the per-pixel threshold strategy.
type Algorithm int

// Valid Algorithm values.
const (
	Floyd Algorithm = iota
	HybridFloyd
	Ordered
	OrderedPerturbed
	AdaptiveHybrid
	AdaptiveRandom
)

func (a Algorithm) adaptive() bool {
	return a == AdaptiveHybrid || a == AdaptiveRandom
}

func (a Algorithm) ordered() bool {
	return a == Ordered || a == OrderedPerturbed
}

// Channel indexes the four ink channels a CMYK row carries.
type Channel int

// Valid Channel values.
const (
	Cyan Channel = iota
	Magenta
	Yellow
	Black
	NChannels
)

// DitherSegment is one contiguous sub-range of the 0..65535 input axis for
// a single ink channel, associating it with a virtual ink amount and the
// output bit pattern for the lower and upper drop size in that range.
type DitherSegment struct {
	RangeL, RangeH   int
	ValueL, ValueH   int
	BitsL, BitsH     int
	IsDarkL, IsDarkH bool
	RangeSpan        int
	ValueSpan        int
}

// DitherColor is the per-ink-channel partition of the input axis plus the
// bit-depth metadata needed to write the right number of bitplanes.
type DitherColor struct {
	NLevels    int
	BitMax     int
	SignifBits int
	Ranges     []DitherSegment
}

// setSimple builds the common case: one segment covering the whole axis,
// a single drop size, 1 significant bit.
func setSimple() DitherColor {
	return DitherColor{
		NLevels:    1,
		BitMax:     1,
		SignifBits: 1,
		Ranges: []DitherSegment{{
			RangeL: 0, RangeH: 65535,
			ValueL: 0, ValueH: 65535,
			BitsL: 0, BitsH: 1,
			RangeSpan: 65535, ValueSpan: 65535,
		}},
	}
}

// setFull builds an nLevels-way partition with evenly spaced value
// boundaries and sequential one-bit-per-level bit patterns, the shape
// set_ranges_full produces for a simple multi-drop-size ink.
func setFull(nLevels int) DitherColor {
	if nLevels < 1 {
		nLevels = 1
	}
	dc := DitherColor{NLevels: nLevels, BitMax: nLevels, SignifBits: bitsFor(nLevels)}
	step := 65536 / nLevels
	for i := 0; i < nLevels; i++ {
		l := i * step
		h := (i + 1) * step
		if i == nLevels-1 {
			h = 65535
		}
		dc.Ranges = append(dc.Ranges, DitherSegment{
			RangeL: l, RangeH: h,
			ValueL: l, ValueH: h,
			BitsL: i, BitsH: i + 1,
			RangeSpan: h - l, ValueSpan: h - l,
		})
	}
	return dc
}

func bitsFor(levels int) int {
	n := 0
	for levels > 1 {
		levels = (levels + 1) / 2
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

// Context is one page's worth of dithering state: configuration (density,
// transition thresholds, spread, randomizers, darkness weights, matrices)
// plus the live error-diffusion ring.
type Context struct {
	SrcWidth, DstWidth int
	Density            int // scaled to 65536
	Spread             int // 12..19

	KLower, KUpper int // K-vs-CMY transition thresholds, scaled to 65536

	Randomizer  [NChannels]int // 0..65536
	KLevel      [3]int         // c,m,y contribution-to-K, in 64ths
	InkDarkness [NChannels]int // darkness weights, in 64ths (only Cyan's is read)
	LightInk    [NChannels]bool

	Algorithm Algorithm

	Colors [NChannels]DitherColor

	dCutoff         int
	adaptiveDivisor int
	adaptiveLimit   int

	// odb, odbMask, offset0Table and offset1Table implement the
	// ink-spread offset tables: how far updateDither's triangular
	// footprint widens for a pale input value, keyed by Spread.
	odb          int
	odbMask      int
	offset0Table []int
	offset1Table []int

	matrices orderedMatrices

	// errs is the two-row error ring: errs[y&1] is "current", errs[(y+1)&1]
	// is "next". Each row holds one residual per channel per column.
	errs [2][][NChannels]int32

	rng *rand.Rand

	logger    *slog.Logger
	demotions int
}

// SetLogger overrides the logger Context uses for per-row adaptive-demotion
// diagnostics. A nil logger (the default) disables the trace entirely.
func (c *Context) SetLogger(l *slog.Logger) {
	c.logger = l
}

// Init creates a Context for a page of the given source/destination widths.
// Init takes no aspect ratio: any resizing of rows happens in the caller
// before they reach DitherCMYK. Init records the widths and sizes the
// error ring from dstWidth.
func Init(srcWidth, dstWidth int) *Context {
	c := &Context{
		SrcWidth:  srcWidth,
		DstWidth:  dstWidth,
		Density:   65536,
		Spread:    13,
		Algorithm: AdaptiveHybrid,
		matrices:  buildOrderedMatrices(),
		rng:       rand.New(rand.NewSource(1)),
	}
	for ch := range c.Colors {
		c.Colors[ch] = setSimple()
	}
	c.recomputeAdaptive()
	c.errs[0] = make([][NChannels]int32, dstWidth+2)
	c.errs[1] = make([][NChannels]int32, dstWidth+2)
	return c
}

func (c *Context) recomputeAdaptive() {
	c.dCutoff = c.Density / 16
	c.adaptiveDivisor = 128 << ((16 - c.Spread) >> 1)
	if c.adaptiveDivisor == 0 {
		c.adaptiveDivisor = 1
	}
	c.adaptiveLimit = c.Density / c.adaptiveDivisor

	if c.Spread >= 16 {
		c.odb = 16
		c.offset0Table = nil
		c.offset1Table = nil
	} else {
		c.odb = c.Spread
		maxOffset := (1 << uint(16-c.Spread)) + 1
		c.offset0Table = make([]int, maxOffset)
		c.offset1Table = make([]int, maxOffset)
		for i := 0; i < maxOffset; i++ {
			c.offset0Table[i] = (i + 1) * (i + 1)
			c.offset1Table[i] = (i + 1) * i / 2
		}
	}
	c.odbMask = (1 << uint(c.odb)) - 1
}
