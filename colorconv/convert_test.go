// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorconv

import (
	"math"
	"testing"

	"github.com/inkraster/raster/colorlut"
	"github.com/inkraster/raster/vars"
)

func TestHSLRoundTrip(t *testing.T) {
	cases := [][3]uint16{
		{65535, 0, 0},
		{0, 65535, 0},
		{0, 0, 65535},
		{30000, 45000, 10000},
		{65535, 65535, 65535},
	}
	for _, rgb := range cases {
		h, s, l := RGBToHSL(rgb)
		got := HSLToRGB(h, s, l)
		for i := range rgb {
			d := int(rgb[i]) - int(got[i])
			if d < -2 || d > 2 {
				t.Errorf("round trip %v -> (%v,%v,%v) -> %v off by more than rounding at channel %d", rgb, h, s, l, got, i)
			}
		}
	}
}

func TestSaturationSplitScenario(t *testing.T) {
	// Scenario 6: saturation = 2.0 splits into two sqrt(2) applications.
	ssat, isat, split := saturationFactors(2.0)
	if !split {
		t.Fatalf("saturation 2.0 should split")
	}
	if math.Abs(ssat-math.Sqrt2) > 1e-9 {
		t.Fatalf("ssat = %v, want sqrt(2)", ssat)
	}
	s := 0.3
	got := applySaturation(s, ssat, isat)
	want := math.Min(s*math.Sqrt2, 1-(1-s)/math.Sqrt2)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("applySaturation(0.3, sqrt2, ...) = %v, want %v", got, want)
	}
}

func TestBalanceCMYNoOpOnGray(t *testing.T) {
	rgb := [3]uint16{40000, 40000, 40000}
	orig := rgb
	BalanceCMY(&rgb)
	if rgb != orig {
		t.Fatalf("BalanceCMY modified a neutral gray pixel: %v -> %v", orig, rgb)
	}
}

func TestBalanceCMYWeakensPureCyan(t *testing.T) {
	// Pure cyan: R=0, G=B=65535.
	rgb := [3]uint16{0, 65535, 65535}
	BalanceCMY(&rgb)
	if rgb[0] == 0 {
		t.Fatalf("BalanceCMY should weaken pure cyan (R should move off 0), got %v", rgb)
	}
}

func TestConvertRowZeroMask(t *testing.T) {
	v := vars.DefaultVars()
	v.ImageType = vars.Continuous
	lut, err := colorlut.Build(&v, 256)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Under DefaultVars (CMY input model, RGB output model) the LUT maps
	// full-value input to 0, so an all-white row comes out zero on every
	// channel and all three mask bits stay set.
	row := make([]byte, 3*4)
	for i := 0; i < 4; i++ {
		row[3*i] = 255
		row[3*i+1] = 255
		row[3*i+2] = 255
	}
	out := make([][3]uint16, 4)
	mask := ConvertRow(&v, lut, nil, row, 3, out)
	if mask != (ZeroRed | ZeroGreen | ZeroBlue) {
		t.Fatalf("all-white row should zero every channel, got mask %03b", mask)
	}
}

func TestDeserializePixelAlphaPremultiply(t *testing.T) {
	// Half-alpha mid-gray over white should land between the gray value
	// and white.
	row := []byte{128, 128}
	px := deserializePixel(row, 2, 0)
	if px[0] == 0 || px[0] == 65535 {
		t.Fatalf("premultiplied half-alpha pixel should be strictly between black and white, got %v", px[0])
	}
}
