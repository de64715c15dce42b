// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package colorconv

// BalanceCMY implements §4.F step 4: pull each ink toward the smaller of
// its two companions, so S=1,V=1 cyan isn't rendered as 100% cyan ink
// (which prints far darker than intended). No ink amount ever increases:
// pure cyan/magenta/yellow lose the most, pure red/green/blue lose less,
// and neutral grays are left unchanged. rgb is modified in place.
func BalanceCMY(rgb *[3]uint16) {
	c := int(65535 - rgb[0])
	m := int(65535 - rgb[1])
	y := int(65535 - rgb[2])
	if c == m && c == y {
		return
	}
	k := minInt(minInt(c, m), y)

	nc := (c*3 + minInt(c, maxInt(m, y))*4 + k) / 8
	nm := (m*3 + minInt(m, maxInt(c, y))*4 + k) / 8
	ny := (y*3 + minInt(y, maxInt(c, m))*4 + k) / 8

	nc = c + (nc-c)/3
	nm = m + (nm-m)/3
	ny = y + (ny-y)/3

	nc = clampInt(nc, 0, 65535)
	nm = clampInt(nm, 0, 65535)
	ny = clampInt(ny, 0, 65535)

	rgb[0] = uint16(65535 - nc)
	rgb[1] = uint16(65535 - nm)
	rgb[2] = uint16(65535 - ny)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
