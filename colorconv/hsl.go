// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorconv

import "math"

// RGBToHSL converts a u16 RGB triple to hue (0..6), saturation (0..1) and
// lightness (0..1), following the conversion Gutenprint itself borrowed
// from GIMP's autostretch_hsv.
func RGBToHSL(rgb [3]uint16) (hue, sat, lightness float64) {
	red := float64(rgb[0]) / 65535.0
	green := float64(rgb[1]) / 65535.0
	blue := float64(rgb[2]) / 65535.0

	var max, min float64
	var maxIdx int
	if red > green {
		if red > blue {
			max, maxIdx = red, 0
		} else {
			max, maxIdx = blue, 2
		}
		min = fmin(green, blue)
	} else {
		if green > blue {
			max, maxIdx = green, 1
		} else {
			max, maxIdx = blue, 2
		}
		min = fmin(red, blue)
	}

	l := (max + min) / 2.0
	delta := max - min

	var h, s float64
	if delta < 0.000001 {
		s, h = 0, 0
	} else {
		if l <= 0.5 {
			s = delta / (max + min)
		} else {
			s = delta / (2 - max - min)
		}
		switch maxIdx {
		case 0:
			h = (green - blue) / delta
		case 1:
			h = 2 + (blue-red)/delta
		default:
			h = 4 + (red-green)/delta
		}
		if h < 0 {
			h += 6
		} else if h > 6 {
			h -= 6
		}
	}
	return h, s, l
}

// hslValue is the sub-expression HSLToRGB evaluates once per channel.
func hslValue(n1, n2, hue float64) float64 {
	if hue < 0 {
		hue += 6
	} else if hue > 6 {
		hue -= 6
	}
	switch {
	case hue < 1:
		return n1 + (n2-n1)*hue
	case hue < 3:
		return n2
	case hue < 4:
		return n1 + (n2-n1)*(4-hue)
	default:
		return n1
	}
}

// HSLToRGB converts hue/saturation/lightness back to a u16 RGB triple.
func HSLToRGB(h, s, l float64) [3]uint16 {
	if s < 0.0000001 {
		if l > 1 {
			l = 1
		} else if l < 0 {
			l = 0
		}
		v := uint16(l * 65535)
		return [3]uint16{v, v, v}
	}

	h1 := h + 2
	h2 := h - 2
	var m2 float64
	if l < 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2

	return [3]uint16{
		uint16(65535 * hslValue(m1, m2, h1)),
		uint16(65535 * hslValue(m1, m2, h)),
		uint16(65535 * hslValue(m1, m2, h2)),
	}
}

func fmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// saturationFactors derives the (ssat, isat, split) triple §4.E step 2/3
// needs from the raw Vars.Saturation knob: above the 1.4 threshold the
// adjustment is split into two sqrt(saturation) applications (once before
// the LUT, once after) to reduce hue shift; isat is only meaningful once
// ssat > 1 and is the reciprocal used by the "don't over-desaturate"
// branch of applySaturation.
func saturationFactors(saturation float64) (ssat, isat float64, split bool) {
	ssat = saturation
	isat = 1.0
	split = ssat > splitSaturationThreshold
	if split {
		ssat = math.Sqrt(ssat)
	}
	if ssat > 1 {
		isat = 1.0 / ssat
	}
	return ssat, isat, split
}

// applySaturation implements the `s' = s*sat` / `s' = min(s*sat, 1-(1-s)/sat)`
// adjustment of §4.F step 3.
func applySaturation(s, ssat, isat float64) float64 {
	if ssat < 1 {
		s *= ssat
	} else {
		s1 := s * ssat
		s2 := 1.0 - (1.0-s)*isat
		s = fmin(s1, s2)
	}
	if s > 1 {
		s = 1.0
	}
	return s
}
