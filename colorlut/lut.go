// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorlut

import (
	"errors"
	"math"

	"github.com/inkraster/raster/vars"
)

// ErrInvalidSteps is returned by Build when steps is not a power of two.
var ErrInvalidSteps = errors.New("colorlut: steps must be a power of two")

// LUT is a built, read-only set of four 8-bit-indexed, 16-bit-valued
// correction tables: Composite (gray/K path) and per-channel Red/Green/Blue
// (used to derive Cyan/Magenta/Yellow ink response).
type LUT struct {
	Steps     int
	Composite []uint16
	Red       []uint16
	Green     []uint16
	Blue      []uint16

	shiftVal int
	binSize  int
	binShift int
}

// DefaultSteps is the table resolution used unless a caller asks for more
// precision; it is small enough to build in microseconds and interpolation
// at lookup time makes the effective precision 16 bits regardless.
const DefaultSteps = 256

// Build constructs a LUT from v, following the algorithm in order:
// contrast fold around 0.5, brightness, screen-gamma, per-channel ink
// response (cyan/magenta/yellow exponents), and print-gamma with optional
// RGB inversion. Construction is total given a valid vars.Vars; there is no
// error path other than an invalid steps count.
func Build(v *vars.Vars, steps int) (*LUT, error) {
	if steps <= 0 || steps&(steps-1) != 0 {
		return nil, ErrInvalidSteps
	}
	l := &LUT{
		Steps:     steps,
		Composite: make([]uint16, steps),
		Red:       make([]uint16, steps),
		Green:     make([]uint16, steps),
		Blue:      make([]uint16, steps),
	}
	l.shiftVal = log2(steps)
	l.binSize = 65536 / steps
	l.binShift = 16 - l.shiftVal

	printGamma := v.Gamma
	if v.ImageType == vars.ImageMonochrome {
		printGamma = 1.0
	}

	for i := 0; i < steps; i++ {
		pixel := float64(i) / float64(steps-1)
		if v.InputColorModel == vars.CMY {
			pixel = 1 - pixel
		}

		pixel = foldContrast(pixel, v.Contrast)
		pixel = applyBrightness(pixel, v.Brightness)

		// Screen-gamma.
		pixel = 1 - math.Pow(pixel, v.AppGamma/1.7)
		pixel = clamp01(pixel)

		red := inkResponse(pixel, v.Cyan)
		green := inkResponse(pixel, v.Magenta)
		blue := inkResponse(pixel, v.Yellow)

		l.Composite[i] = printGammaScale(pixel, printGamma, v.OutputColorModel)
		l.Red[i] = printGammaScale(red, printGamma, v.OutputColorModel)
		l.Green[i] = printGammaScale(green, printGamma, v.OutputColorModel)
		l.Blue[i] = printGammaScale(blue, printGamma, v.OutputColorModel)
	}
	return l, nil
}

// foldContrast implements step 2 of §4.E: fold the pixel to its distance
// from the nearer of 0 or 1, apply a power-law contrast curve to that
// distance, and unfold. The temp > 1 branch can't be reached (temp is a
// fold of a value in [0,1] and is always <= 0.5) but is kept for parity
// with the reference formula.
func foldContrast(pixel, contrast float64) float64 {
	var temp float64
	if pixel >= 0.5 {
		temp = 1 - pixel
	} else {
		temp = pixel
	}
	switch {
	case temp <= 1e-6 && contrast <= 1e-4:
		temp = 0.5
	case temp > 1:
		temp = 0.5 * math.Pow(2*temp, math.Pow(contrast, contrast))
	default:
		temp = 0.5 - ((0.5 - 0.5*math.Pow(2*temp, contrast)) * contrast)
	}
	if temp > 0.5 {
		temp = 0.5
	} else if temp < 0 {
		temp = 0
	}
	if pixel < 0.5 {
		pixel = temp
	} else {
		pixel = 1 - temp
	}
	return pixel
}

// applyBrightness implements step 3 of §4.E.
func applyBrightness(pixel, brightness float64) float64 {
	if brightness < 1 {
		return pixel * brightness
	}
	return 1 - (1-pixel)*(2-brightness)
}

// inkResponse implements step 5 of §4.E for one channel: red_pixel = 1 -
// pow(1-pixel, cyan). Near pixel == 1 with a near-zero ink exponent, pow's
// 0**epsilon discontinuity would otherwise flip the result to 1; the
// special case forces the physically correct answer of no ink.
func inkResponse(pixel, ink float64) float64 {
	if pixel > 0.9999 && ink < 0.00001 {
		return 0
	}
	return 1 - math.Pow(1-pixel, ink)
}

// printGammaScale implements step 6 of §4.E.
func printGammaScale(x, printGamma float64, outputModel vars.ColorModel) uint16 {
	v := 65535*math.Pow(clamp01(x), printGamma) + 0.5
	if outputModel == vars.RGB {
		v = 65535 - v
	}
	return clampU16(v)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampU16(x float64) uint16 {
	if x < 0 {
		return 0
	}
	if x > 65535 {
		return 65535
	}
	return uint16(x)
}

func log2(n int) int {
	s := 0
	for n > 1 {
		n >>= 1
		s++
	}
	return s
}

// Lookup returns the interpolated value of an 8-bit-indexed table at a
// 16-bit input index v, per §3: lut[idx >> bin_shift] interpolated linearly
// with the low bits. At full table size (binShift == 0) this degenerates
// to a direct index.
func (l *LUT) Lookup(table []uint16, v uint16) uint16 {
	idx := int(v) >> l.binShift
	if idx >= l.Steps-1 {
		return table[l.Steps-1]
	}
	low := int(v) & (l.binSize - 1)
	a, b := int(table[idx]), int(table[idx+1])
	return uint16(a + (b-a)*low/l.binSize)
}

// LookupComposite is a convenience wrapper around Lookup(l.Composite, v).
func (l *LUT) LookupComposite(v uint16) uint16 { return l.Lookup(l.Composite, v) }

// LookupRed is a convenience wrapper around Lookup(l.Red, v).
func (l *LUT) LookupRed(v uint16) uint16 { return l.Lookup(l.Red, v) }

// LookupGreen is a convenience wrapper around Lookup(l.Green, v).
func (l *LUT) LookupGreen(v uint16) uint16 { return l.Lookup(l.Green, v) }

// LookupBlue is a convenience wrapper around Lookup(l.Blue, v).
func (l *LUT) LookupBlue(v uint16) uint16 { return l.Lookup(l.Blue, v) }
