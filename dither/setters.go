// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dither

// SetDensity sets the overall ink density, scaled to 65536 (1.0 == 65536).
// Changing density recomputes the adaptive-demotion thresholds.
func (c *Context) SetDensity(density int) {
	c.Density = density
	c.recomputeAdaptive()
}

// SetTransition sets the K-vs-CMY transition thresholds directly.
func (c *Context) SetTransition(lower, upper int) {
	c.KLower, c.KUpper = lower, upper
}

// SetBlackLower sets the lower K transition threshold alone.
func (c *Context) SetBlackLower(lower int) { c.KLower = lower }

// SetBlackUpper sets the upper K transition threshold alone.
func (c *Context) SetBlackUpper(upper int) { c.KUpper = upper }

// SetBlackLevel sets how much of each of c/m/y contributes to computed K,
// in 64ths (e.g. 64 == full contribution).
func (c *Context) SetBlackLevel(cyan, magenta, yellow int) {
	c.KLevel = [3]int{cyan, magenta, yellow}
}

// SetRandomizer records a randomizer weight (0..65536) for channel ch.
// printColor reads only the Cyan entry, for every channel, and treats a
// value of 0 as 65536.
func (c *Context) SetRandomizer(ch Channel, value int) {
	c.Randomizer[ch] = value
}

// SetInkDarkness records a darkness weight, in 64ths, for channel ch.
// DitherCMYK reads only the Cyan entry and uses it, for all three of
// C/M/Y, as the weight of the companion inks in the UPDATE_COLOR
// cross-term.
func (c *Context) SetInkDarkness(ch Channel, value int) {
	c.InkDarkness[ch] = value
}

// SetLightInk records whether channel ch has a light-ink variant.
// DitherCMYK does not read the flag and writes no separate light-ink
// plane.
func (c *Context) SetLightInk(ch Channel, enabled bool) {
	c.LightInk[ch] = enabled
}

// SetRangesSimple configures ch with a single drop size covering the whole
// input axis.
func (c *Context) SetRangesSimple(ch Channel) {
	c.Colors[ch] = setSimple()
}

// SetRangesFull configures ch with nLevels evenly spaced drop sizes.
func (c *Context) SetRangesFull(ch Channel, nLevels int) {
	c.Colors[ch] = setFull(nLevels)
}

// SetRangesComplete installs a caller-supplied, pre-validated partition
// (e.g. asymmetric drop sizes from a printer's ink profile). The caller is
// responsible for the total/gap-free/sorted invariant; use
// ValidateRanges to check it.
func (c *Context) SetRangesComplete(ch Channel, ranges []DitherSegment) {
	c.Colors[ch] = DitherColor{
		NLevels:    len(ranges),
		BitMax:     bitMaxOf(ranges),
		SignifBits: bitsFor(len(ranges)),
		Ranges:     ranges,
	}
}

func bitMaxOf(ranges []DitherSegment) int {
	max := 0
	for _, r := range ranges {
		if r.BitsH > max {
			max = r.BitsH
		}
	}
	return max
}

// SetInkSpread sets the error-diffusion breadth (12..19); wider spreads
// distribute error over more neighboring pixels, narrower spreads sharpen
// edges at the cost of more visible dot patterning.
func (c *Context) SetInkSpread(spread int) {
	if spread < 12 {
		spread = 12
	} else if spread > 19 {
		spread = 19
	}
	c.Spread = spread
	c.recomputeAdaptive()
}

// ValidateRanges reports whether ranges form a total, gap-free, strictly
// sorted partition of [0, 65535], per the §8 segment-table-coverage
// invariant.
func ValidateRanges(ranges []DitherSegment) bool {
	if len(ranges) == 0 {
		return false
	}
	if ranges[0].RangeL != 0 {
		return false
	}
	for i, r := range ranges {
		if r.RangeH < r.RangeL {
			return false
		}
		if i > 0 && r.RangeL != ranges[i-1].RangeH {
			return false
		}
	}
	return ranges[len(ranges)-1].RangeH == 65535
}
