// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dither

// PixelResult is the outcome of printColor for one pixel/channel: which
// bit pattern (if any) to OR into the output planes, and the residual ink
// amount left over for error diffusion.
type PixelResult struct {
	Bits      int
	IsDark    bool
	Residual  int
	DidPrint  bool
	BitsPlane int // number of sequential bit-planes bits spans
}

// printColor is the per-pixel threshold routine of §4.G: given a density
// (ink amount request, 0..65536) and the DitherColor's segment table, it
// locates the active segment, optionally demotes ADAPTIVE_* algorithms to
// ORDERED or to their non-adaptive error-diffusion base under low ink
// coverage, computes the dither threshold (vmatrix),
// and decides whether to fire a dot and at which drop size.
func (c *Context) printColor(dc DitherColor, base, density, adjustedValue, x, y int, invertX, invertY bool) PixelResult {
	if density < 0 {
		density = 0
	} else if density > 65536 {
		density = 65536
	}

	seg := dc.Ranges[0]
	for i := len(dc.Ranges) - 1; i >= 0; i-- {
		if density > dc.Ranges[i].RangeL {
			seg = dc.Ranges[i]
			break
		}
	}

	algorithm := c.Algorithm
	randomizer := c.Randomizer[0]
	if randomizer == 0 {
		randomizer = 65536
	}
	if algorithm.adaptive() && base < c.adaptiveLimit {
		dtmp := base * c.adaptiveDivisor * 65536 / max1(c.Density)
		if (c.rng.Uint32()&0xfff000) > uint32(dtmp) {
			algorithm = Ordered
		} else {
			if algorithm == AdaptiveHybrid {
				algorithm = HybridFloyd
			} else {
				algorithm = Floyd
			}
		}
		c.demotions++
	}

	var rangepoint int
	if seg.RangeSpan <= 0 {
		rangepoint = 32768
	} else {
		rangepoint = (density - seg.RangeL) * 65536 / seg.RangeSpan
	}

	virtualValue := interpolateValue(seg, rangepoint)

	if algorithm == Ordered || algorithm == OrderedPerturbed {
		randomizer = 65536
	} else if base > c.dCutoff {
		randomizer = 0
	} else if base > c.dCutoff/2 && c.dCutoff > 0 {
		randomizer = randomizer * 2 * (c.dCutoff - base) / c.dCutoff
	}

	mx, my := x, y
	if invertY {
		mx, my = y, x
	}

	vmatrix := c.computeVMatrix(algorithm, randomizer, virtualValue, mx, my)

	if invertX {
		vmatrix = 65536 - vmatrix
	}

	if adjustedValue < vmatrix {
		return PixelResult{Residual: adjustedValue}
	}

	useHigh := rangepoint >= int(c.matrixThreeValue(mx, my))
	bits, isDark, value, bitsPlane := seg.BitsL, seg.IsDarkL, seg.ValueL, 1
	if useHigh {
		bits, isDark, value = seg.BitsH, seg.IsDarkH, seg.ValueH
	}
	if bits > 1 {
		bitsPlane = bits
	}

	return PixelResult{
		Bits:      bits,
		IsDark:    isDark,
		DidPrint:  true,
		Residual:  adjustedValue - value,
		BitsPlane: bitsPlane,
	}
}

func interpolateValue(seg DitherSegment, rangepoint int) int {
	if seg.ValueSpan == 0 {
		return seg.ValueL
	}
	if rangepoint <= 0 {
		return seg.ValueL
	}
	if rangepoint >= 65536 {
		return seg.ValueH
	}
	return seg.ValueL + (seg.ValueH-seg.ValueL)*rangepoint/65536
}

// computeVMatrix implements §4.G steps 7-8: pick the threshold offset for
// the given algorithm and scale/center it by virtualValue/randomizer.
func (c *Context) computeVMatrix(algorithm Algorithm, randomizer, virtualValue, x, y int) int {
	var vmatrix int
	switch {
	case randomizer == 0:
		vmatrix = virtualValue / 2
	case algorithm == Floyd:
		vmatrix = (int(c.rng.Uint32()&0xffff) + int(c.rng.Uint32()&0xffff)) / 2
	case algorithm == HybridFloyd:
		m1 := c.matrices.at(c.matrices.m0, x, y)
		m2 := c.matrices.at(c.matrices.m1, x, y)
		vmatrix = int(m1 ^ m2)
	case algorithm == OrderedPerturbed:
		xx := x + y/((x/11)%7+3)
		yy := y + x/((y/11)%7+3)
		v := int(c.matrices.at(c.matrices.m0, xx, yy))
		v += int(c.rng.Uint32()&0x7f) - 63
		vmatrix = clampI(v, 0, 65536)
	default: // Ordered and any adaptive-demoted fallback
		xx := x + y/3
		yy := y + x/3
		v := int(c.matrices.at(c.matrices.m0, xx, yy))
		v += int(c.rng.Uint32()&0x7f) - 63
		vmatrix = clampI(v, 0, 65536)
	}

	vmatrix = vmatrix * virtualValue / 65536
	if randomizer < 65536 {
		vbase := virtualValue * (65536 - randomizer) / 131072
		vmatrix = vbase + vmatrix*randomizer/65536
	}
	return vmatrix
}

// matrixThreeValue is the "matrix3" lookup used to choose between a dark
// and light ink variant at the same drop size.
func (c *Context) matrixThreeValue(x, y int) uint16 {
	return c.matrices.at(c.matrices.m1, x, y)
}

func max1(x int) int {
	if x < 1 {
		return 1
	}
	return x
}

func clampI(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
