// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dither

// blackStrengthShift is the fixed 32-bit shift of the K-vs-CMY
// black-strength cubic `diff = (d*d*d) >> 32`. Kept as a named constant
// because the shift must stay exactly 32 regardless of native int width to
// reproduce reference output, even on a 64-bit build (see DESIGN.md).
const blackStrengthShift = 32

// Planes holds one row's worth of output bitplanes, one slice per channel,
// each sized for the worst case signif_bits of that channel's DitherColor.
type Planes [NChannels][][]byte

// ZeroMask uses colorconv.ZeroMask's bit positions, named for the four ink
// channels (C, M, Y, K) rather than R/G/B. A set bit makes DitherCMYK skip
// every write to that channel's plane for the row. The row DitherCMYK
// receives is still RGB; DitherCMYK complements it into ink itself.
type ZeroMask uint8

// Bit assignments for ZeroMask, matching Channel order.
const (
	ZeroCyan ZeroMask = 1 << iota
	ZeroMagenta
	ZeroYellow
	ZeroBlack
)

// DitherCMYK dithers one row of LUT-corrected RGB samples into CMYK
// bitplanes, per §4.G's whole-row algorithm: boustrophedon scan, black
// generation with the colorfulness-weighted cubic, K-vs-CMY transition,
// UPDATE_COLOR cross-terms, and (for non-ordered algorithms) triangular
// error diffusion forward along the current row and into the next row.
func (c *Context) DitherCMYK(rgbRow [][3]uint16, y int, zero ZeroMask, planes Planes, rowLength int) {
	width := len(rgbRow)
	leftToRight := y%2 == 0
	cur := c.errs[y&1]
	next := c.errs[(y+1)&1]
	c.demotions = 0

	start, end, step := 0, width, 1
	if !leftToRight {
		start, end, step = width-1, -1, -1
	}

	for x := start; x != end; x += step {
		rgb := rgbRow[x]
		cc := 65535 - int(rgb[0])
		mm := 65535 - int(rgb[1])
		yy := 65535 - int(rgb[2])
		k := minInt3(cc, mm, yy)

		diffBase := 65536 - (absInt(cc-mm)+absInt(cc-yy)+absInt(mm-yy))/3
		diff := cubicShift32(diffBase)
		k = k * diff / 65536

		if !c.Algorithm.ordered() {
			cc += updateColorTerm(cur[x][Cyan])
			mm += updateColorTerm(cur[x][Magenta])
			yy += updateColorTerm(cur[x][Yellow])
		}

		kDarkness := k
		var bk int
		switch {
		case kDarkness < c.KLower:
			bk = 0
		case kDarkness > c.KUpper:
			bk = k
		default:
			span := c.KUpper - c.KLower
			if span <= 0 {
				bk = k
			} else {
				threshold := c.KLower + int(c.rng.Uint32())%span
				if kDarkness >= threshold {
					bk = k
				}
			}
		}

		cAdj := cc - c.KLevel[0]*bk/64
		mAdj := mm - c.KLevel[1]*bk/64
		yAdj := yy - c.KLevel[2]*bk/64

		kResult := c.printColor(c.Colors[Black], bk, bk, bk, x, y, false, false)
		writeBits(planes[Black], kResult, x, rowLength)

		darkness := c.InkDarkness[Cyan]
		cDensity := cAdj + ((mAdj*darkness + yAdj*darkness) >> 7)
		cResult := c.printColor(c.Colors[Cyan], cAdj, cDensity, cAdj, x, y, !leftToRight, false)
		if zero&ZeroCyan == 0 {
			writeBits(planes[Cyan], cResult, x, rowLength)
		}

		mDensity := mAdj + ((cAdj*darkness + yAdj*darkness) >> 7)
		mResult := c.printColor(c.Colors[Magenta], mAdj, mDensity, mAdj, x, y, !leftToRight, false)
		if zero&ZeroMagenta == 0 {
			writeBits(planes[Magenta], mResult, x, rowLength)
		}

		yDensity := yAdj + ((cAdj*darkness + mAdj*darkness) >> 7)
		yResult := c.printColor(c.Colors[Yellow], yAdj, yDensity, yAdj, x, y, !leftToRight, false)
		if zero&ZeroYellow == 0 {
			writeBits(planes[Yellow], yResult, x, rowLength)
		}

		if !c.Algorithm.ordered() {
			c.updateDither(Cyan, cResult.Residual, cAdj, x, width, leftToRight, cur, next)
			c.updateDither(Magenta, mResult.Residual, mAdj, x, width, leftToRight, cur, next)
			c.updateDither(Yellow, yResult.Residual, yAdj, x, width, leftToRight, cur, next)
			c.updateDither(Black, kResult.Residual, bk, x, width, leftToRight, cur, next)
		}

		cur[x] = [NChannels]int32{}
	}

	if c.logger != nil && c.demotions > 0 {
		c.logger.Debug("dither row adaptive fallback", "row", y, "pixels", c.demotions)
	}
}

// updateColorTerm implements §4.G step 6's UPDATE_COLOR: the accumulated
// error term is scaled by 1/8 before it's folded back into the input,
// using an arithmetic shift for non-negative values and truncating
// division for negative ones (print-dither.c's `dither##r >> 3` vs.
// `dither##r / 8` split).
func updateColorTerm(e int32) int {
	if e >= 0 {
		return int(e >> 3)
	}
	return int(e / 8)
}

// cubicShift32 implements the black-strength cubic `(d*d*d) >> 32` using
// explicit 64-bit arithmetic so behavior doesn't depend on the host's
// native int width.
func cubicShift32(d int) int {
	dd := int64(d)
	return int(((dd * dd * dd) >> blackStrengthShift))
}

// updateDither spreads residual r over a triangular footprint, following
// print-dither.c's update_dither: the footprint's half-width (offset)
// grows as the original input o gets paler (smaller), so light regions
// smear error over more neighbors while dark regions stay tight. Weight
// is split 4/8 into the row below (next) and 4/8 forward along the scan
// direction on the current row (cur), tapering linearly across the
// footprint; with no spread configured (offset 0) this collapses to a
// plain 4/8-next, 4/8-forward split.
func (c *Context) updateDither(ch Channel, r, o, x, width int, leftToRight bool, cur, next [][NChannels]int32) {
	if r == 0 {
		return
	}
	direction := 1
	if !leftToRight {
		direction = -1
	}
	xdw1 := width - 1 - x

	tmp := r
	if tmp > 65535 {
		tmp = 65535
	}

	offset := 0
	if c.odb < 16 && o < 2048 {
		tmpo := uint32(o * 32)
		mask := uint32(c.odbMask)
		offset = int((65535 - (tmpo & 0xffff)) >> uint(c.odb))
		if c.rng.Uint32()&mask > tmpo&mask {
			offset++
		}
		if offset > x {
			offset = x
		} else if offset > xdw1 {
			offset = xdw1
		}
		if offset < 0 {
			offset = 0
		}
		if offset >= len(c.offset0Table) {
			offset = len(c.offset0Table) - 1
		}
	}

	const mySpread = 4
	var dist, dist1, delta1 int
	if offset == 0 {
		dist = mySpread * tmp
		if (x > 0 && direction < 0) || (xdw1 > 0 && direction > 0) {
			if fwd := x + direction; fwd >= 0 && fwd < width {
				cur[fwd][ch] += int32((8 - mySpread) * tmp)
			}
		}
	} else {
		dist = mySpread * tmp / c.offset0Table[offset]
		dist1 = (8 - mySpread) * tmp / c.offset1Table[offset]
		delta1 = dist1 * offset
	}

	delta := dist
	for i := -offset; i <= offset; i++ {
		idx := x + i
		if idx >= 0 && idx < width {
			next[idx][ch] += int32(delta)
		}
		if (i > 0 && direction > 0) || (i < 0 && direction < 0) {
			if idx >= 0 && idx < width {
				cur[idx][ch] += int32(delta1)
			}
			delta1 -= dist1
		}
		if i < 0 {
			delta += dist
		} else {
			delta -= dist
		}
	}
}

func writeBits(plane [][]byte, res PixelResult, x, rowLength int) {
	if !res.DidPrint || res.Bits == 0 || len(plane) == 0 {
		return
	}
	byteIdx := x / 8
	bit := byte(1) << uint(7-x%8)
	for j := 0; j < res.BitsPlane && j < len(plane); j++ {
		row := plane[j]
		if byteIdx < len(row) {
			row[byteIdx] |= bit
		}
	}
	_ = rowLength
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
