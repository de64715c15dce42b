// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorconv

import (
	"math"

	"github.com/inkraster/raster/colorlut"
	"github.com/inkraster/raster/vars"
)

// splitSaturationThreshold is the saturation value above which the
// adjustment is split into two sqrt(saturation) applications (once before
// the LUT, once after) instead of one, trading a small approximation error
// for less hue shift at extreme saturation. Reproduced verbatim from the
// reference implementation; not derived further (see DESIGN.md).
const splitSaturationThreshold = 1.4

// ZeroMask reports, per output channel, whether every pixel converted so
// far in the current row came out exactly zero — a fast-path hint the
// dither engine uses to skip a channel's plane entirely.
type ZeroMask uint8

// Bit assignments for ZeroMask.
const (
	ZeroRed ZeroMask = 1 << iota
	ZeroGreen
	ZeroBlue
)

// RemapCurves holds the optional hue/luminosity/saturation remap tables of
// §4.F step 6, each indexed by hue*8 with linear interpolation between
// adjacent entries (so each table needs 49 entries to cover hue ∈ [0,6]
// inclusive without an out-of-bounds read at h == 6).
type RemapCurves struct {
	Hue        []float64
	Luminosity []float64
	Saturation []float64
}

// deserializePixel turns one pixel's raw bytes into a u16 RGB triple,
// honoring 1 (gray), 2 (gray+alpha), 3 (RGB) or 4 (RGBA) bytes per pixel.
// Alpha is premultiplied over a white background, matching the reference
// "(i0*i3/255 + 255-i3) * 257" formula.
func deserializePixel(row []byte, bpp, idx int) [3]uint16 {
	off := idx * bpp
	switch bpp {
	case 1:
		v := uint16(row[off]) * 257
		return [3]uint16{v, v, v}
	case 2:
		g, a := int(row[off]), int(row[off+1])
		v := uint16((g*a/255 + 255 - a) * 257)
		return [3]uint16{v, v, v}
	case 3:
		return [3]uint16{
			uint16(row[off]) * 257,
			uint16(row[off+1]) * 257,
			uint16(row[off+2]) * 257,
		}
	case 4:
		a := int(row[off+3])
		r := uint16((int(row[off])*a/255 + 255 - a) * 257)
		g := uint16((int(row[off+1])*a/255 + 255 - a) * 257)
		b := uint16((int(row[off+2])*a/255 + 255 - a) * 257)
		return [3]uint16{r, g, b}
	default:
		return [3]uint16{}
	}
}

// Convert runs one pixel through the full §4.F pipeline: deserialize (done
// by the caller via deserializePixel, folded into ConvertRow below),
// saturation split, CMY balance, LUT lookup, optional remap curves, and
// density scaling. It is exported standalone for callers that already have
// a u16 RGB triple (e.g. a gray or indexed-palette source that built one
// without going through deserializePixel).
func Convert(v *vars.Vars, lut *colorlut.LUT, curves *RemapCurves, rgb [3]uint16) [3]uint16 {
	fastPath := v.ImageType != vars.Continuous
	ssat, isat, split := saturationFactors(v.Saturation)
	computeSaturation := v.Saturation <= 0.99999 || v.Saturation >= 1.00001

	if !fastPath && computeSaturation && !allEqual(rgb) {
		h, s, l := RGBToHSL(rgb)
		s = applySaturation(s, ssat, isat)
		rgb = HSLToRGB(h, s, l)
	}

	if !fastPath {
		BalanceCMY(&rgb)
	}

	rgb[0] = lut.LookupRed(rgb[0])
	rgb[1] = lut.LookupGreen(rgb[1])
	rgb[2] = lut.LookupBlue(rgb[2])

	needsRemap := !fastPath && (split || curves != nil) && !allEqual(rgb)
	if needsRemap {
		h, s, l := RGBToHSL(rgb)
		if split {
			s = applySaturation(s, ssat, isat)
		}
		if curves != nil {
			h = remapHue(curves.Hue, h)
			l = remapLuminosity(curves.Luminosity, h, s, l)
			s = remapSaturation(curves.Saturation, h, s)
		}
		rgb = HSLToRGB(h, s, l)
	}

	if v.Density != 1.0 {
		ld := uint32(v.Density * 65536)
		for i := range rgb {
			scaled := uint32(rgb[i]) * ld / 65536
			if scaled > 65535 {
				scaled = 65535
			}
			rgb[i] = uint16(scaled)
		}
	}
	return rgb
}

// ConvertRow converts an entire row of bpp-byte-per-pixel samples into u16
// RGB triples, writing into out (len(out) must be >= the pixel count), and
// returns the row's ZeroMask.
func ConvertRow(v *vars.Vars, lut *colorlut.LUT, curves *RemapCurves, row []byte, bpp int, out [][3]uint16) ZeroMask {
	n := len(row) / bpp
	mask := ZeroRed | ZeroGreen | ZeroBlue
	for i := 0; i < n && i < len(out); i++ {
		px := deserializePixel(row, bpp, i)
		px = Convert(v, lut, curves, px)
		out[i] = px
		if px[0] != 0 {
			mask &^= ZeroRed
		}
		if px[1] != 0 {
			mask &^= ZeroGreen
		}
		if px[2] != 0 {
			mask &^= ZeroBlue
		}
	}
	return mask
}

func allEqual(rgb [3]uint16) bool { return rgb[0] == rgb[1] && rgb[0] == rgb[2] }

// interpTable linearly interpolates table at index h*8, matching the
// reference "nh = h*8; ih = (int)nh; eh = nh-ih" indexing scheme.
func interpTable(table []float64, h float64) (value, eh float64) {
	nh := h * 8
	ih := int(nh)
	if ih+1 >= len(table) {
		ih = len(table) - 2
	}
	if ih < 0 {
		ih = 0
	}
	eh = nh - float64(ih)
	return table[ih] + eh*(table[ih+1]-table[ih]), eh
}

func remapHue(table []float64, h float64) float64 {
	if len(table) < 2 {
		return h
	}
	nh, _ := interpTable(table, h)
	if nh < 0 {
		nh += 6
	} else if nh >= 6 {
		nh -= 6
	}
	return nh
}

func remapLuminosity(table []float64, h, s, l float64) float64 {
	if len(table) < 2 || l <= 0.0001 || l >= 0.9999 {
		return l
	}
	el, _ := interpTable(table, h)
	el = 1.0 + s*(el-1.0)
	if l > 0.5 {
		el = 1.0 + (2.0*(1.0-l))*(el-1.0)
	}
	return 1.0 - math.Pow(1.0-l, el)
}

func remapSaturation(table []float64, h, s float64) float64 {
	if len(table) < 2 {
		return s
	}
	es, _ := interpTable(table, h)
	return 1.0 - math.Pow(1.0-s, es)
}
