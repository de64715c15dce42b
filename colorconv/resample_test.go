// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorconv

import "testing"

func TestResampleRowNoOpWhenWidthsMatch(t *testing.T) {
	row := []byte{1, 2, 3, 4, 5, 6}
	got := ResampleRow(row, 3, 2, 2)
	if len(got) != len(row) {
		t.Fatalf("ResampleRow with equal widths changed length: got %d, want %d", len(got), len(row))
	}
}

func TestResampleRowPreservesSolidColor(t *testing.T) {
	src := make([]byte, 8*3)
	for i := 0; i < 8; i++ {
		src[3*i], src[3*i+1], src[3*i+2] = 200, 100, 50
	}
	got := ResampleRow(src, 3, 8, 3)
	if len(got) != 9 {
		t.Fatalf("ResampleRow output length = %d, want 9", len(got))
	}
	for i := 0; i < 3; i++ {
		r, g, b := got[3*i], got[3*i+1], got[3*i+2]
		if absByte(r, 200) > 2 || absByte(g, 100) > 2 || absByte(b, 50) > 2 {
			t.Errorf("pixel %d = (%d,%d,%d), want close to (200,100,50)", i, r, g, b)
		}
	}
}

func TestResampleRowUpscalesWidth(t *testing.T) {
	src := []byte{0, 0, 0, 255, 255, 255}
	got := ResampleRow(src, 3, 2, 6)
	if len(got) != 18 {
		t.Fatalf("ResampleRow output length = %d, want 18", len(got))
	}
}

func absByte(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
