// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorlut

import (
	"math"
	"testing"

	"github.com/inkraster/raster/vars"
)

// TestBuildIdentityScenario reproduces the worked LUT-identity scenario:
// brightness=contrast=gamma=cyan=magenta=yellow=1, app_gamma=1.7,
// input_color_model=output_color_model=CMY. At those parameters the fold,
// brightness and ink-response steps are each an algebraic identity, the
// screen-gamma and input-model inversions cancel, and print-gamma becomes
// a direct linear scale: composite[i] == floor(i*65535/255 + 0.5).
func TestBuildIdentityScenario(t *testing.T) {
	v := vars.DefaultVars()
	v.OutputColorModel = vars.CMY

	lut, err := Build(&v, 256)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 256; i++ {
		want := uint16(math.Floor(float64(i)*65535/255 + 0.5))
		if lut.Composite[i] != want {
			t.Fatalf("Composite[%d] = %d, want %d", i, lut.Composite[i], want)
		}
	}
}

// TestBuildRangeInvariant checks the §8 "LUT range" property: every table
// entry lies in [0, 65535] regardless of parameters (guaranteed by
// construction, but worth pinning against a non-trivial parameter set).
func TestBuildRangeInvariant(t *testing.T) {
	v := vars.DefaultVars()
	v.Gamma = 2.2
	v.Contrast = 1.5
	v.Brightness = 1.3
	v.Cyan, v.Magenta, v.Yellow = 0.8, 1.1, 0.95

	lut, err := Build(&v, 256)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tables := [][]uint16{lut.Composite, lut.Red, lut.Green, lut.Blue}
	for _, table := range tables {
		for _, x := range table {
			if x > 65535 {
				t.Fatalf("table entry %d out of range", x)
			}
		}
	}
}

// TestBuildMonotonicity checks the §8 "LUT monotonicity" invariant: for
// gamma >= 1 and contrast == 1, composite is monotone non-decreasing for
// CMY output and non-increasing for RGB output.
func TestBuildMonotonicity(t *testing.T) {
	for _, model := range []vars.ColorModel{vars.CMY, vars.RGB} {
		v := vars.DefaultVars()
		v.OutputColorModel = model
		v.Gamma = 2.0
		v.Contrast = 1.0

		lut, err := Build(&v, 256)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		for i := 1; i < 256; i++ {
			prev, cur := lut.Composite[i-1], lut.Composite[i]
			if model == vars.CMY && cur < prev {
				t.Fatalf("CMY composite not non-decreasing at %d: %d < %d", i, cur, prev)
			}
			if model == vars.RGB && cur > prev {
				t.Fatalf("RGB composite not non-increasing at %d: %d > %d", i, cur, prev)
			}
		}
	}
}

// TestFoldContrastIdentity checks that contrast == 1 is an algebraic
// identity of foldContrast for any pixel value, which the Build scenario
// derivations above depend on.
func TestFoldContrastIdentity(t *testing.T) {
	for _, p := range []float64{0, 0.1, 0.25, 0.499, 0.5, 0.501, 0.75, 1} {
		got := foldContrast(p, 1.0)
		if math.Abs(got-p) > 1e-9 {
			t.Errorf("foldContrast(%v, 1.0) = %v, want %v", p, got, p)
		}
	}
}

// TestLookupInterpolation checks the binned linear interpolation used by
// Lookup against a hand-built ramp table.
func TestLookupInterpolation(t *testing.T) {
	l := &LUT{Steps: 4, binSize: 65536 / 4, binShift: 16 - 2}
	l.Composite = []uint16{0, 100, 200, 300}

	// Exact bin boundary.
	if got := l.Lookup(l.Composite, 0); got != 0 {
		t.Errorf("Lookup(0) = %d, want 0", got)
	}
	// Halfway into the first bin should interpolate between 0 and 100.
	half := uint16(l.binSize / 2)
	got := l.Lookup(l.Composite, half)
	if got < 40 || got > 60 {
		t.Errorf("Lookup(%d) = %d, want roughly 50", half, got)
	}
	// Past the last bin clamps to the final entry.
	if got := l.Lookup(l.Composite, 65535); got != 300 {
		t.Errorf("Lookup(65535) = %d, want 300", got)
	}
}
