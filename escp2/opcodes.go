// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package escp2

import "encoding/binary"

const (
	esc byte = 0x1b
	cr  byte = 0x0d
	ff  byte = 0x0c
)

func le16(v int) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	return b
}

func le32(v int) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	return b
}

func opInit() []byte { return []byte{esc, '@'} }

func opRemoteEnter() []byte {
	return append([]byte{esc, '(', 'R'}, []byte{0x08, 0x00, 0x00, 'R', 'E', 'M', 'O', 'T', 'E', '1'}...)
}

func opRemoteExit() []byte { return []byte{esc, '0', '0', '0'} }

func opPaperPath(mode byte) []byte {
	return []byte{esc, '(', 'P', 'P', 0x02, 0x00, mode, 0x00}
}

func opPaperThickness(v byte) []byte {
	return []byte{esc, '(', 'P', 'H', 0x02, 0x00, v, 0x00}
}

func opVacuum(v byte) []byte {
	return []byte{esc, '(', 'S', 'N', 0x02, 0x00, v, 0x00}
}

func opPlatenGap(v byte) []byte {
	return []byte{esc, '(', 'F', 'P', 0x02, 0x00, v, 0x00}
}

func opRollFeed(mode byte) []byte {
	return []byte{esc, '(', 'I', 'R', 0x02, 0x00, mode, 0x00}
}

func opGraphicsMode() []byte {
	return []byte{esc, '(', 'G', 0x01, 0x00, 0x01}
}

// opResolution builds `ESC ( U 03 00 xu yu zu`, the step-size-per-dot
// triple (in 1/3600" units) for horizontal, vertical, and micro-weave
// vertical resolution.
func opResolution(xdpi, ydpi int) []byte {
	out := []byte{esc, '(', 'U', 0x03, 0x00}
	out = append(out, byte(3600/xdpi), byte(3600/ydpi), byte(3600/ydpi))
	return out
}

func opColorMode(color bool) []byte {
	mode := byte(0)
	if color {
		mode = 2
	}
	return []byte{esc, '(', 'K', 0x02, 0x00, 0x00, mode}
}

func opMicroweave(on bool) []byte {
	v := byte(0)
	if on {
		v = 1
	}
	return []byte{esc, '(', 'i', 0x01, 0x00, v}
}

func opUnidirectional(on bool) []byte {
	v := byte(0)
	if on {
		v = 1
	}
	return []byte{esc, 'U', v}
}

func opDotSize(v byte) []byte {
	return []byte{esc, '(', 'e', 0x02, 0x00, 0x00, v}
}

// opResolutionMagic builds the `ESC ( D 4 0 rs_lo rs_hi y x` printhead
// resolution command per §6's wire-protocol note.
func opResolutionMagic(resolutionScale, y, x int) []byte {
	out := []byte{esc, '(', 'D', 0x04, 0x00}
	out = append(out, le16(resolutionScale)...)
	out = append(out, byte(y), byte(x))
	return out
}

func opPageLength(lengthDots int) []byte {
	out := []byte{esc, '(', 'C', 0x04, 0x00}
	return append(out, le32(lengthDots)[:4]...)
}

func opMargins(top, bottom int) []byte {
	out := []byte{esc, '(', 'c', 0x08, 0x00}
	out = append(out, le32(top)...)
	out = append(out, le32(bottom)...)
	return out
}

func opPaperForm(v byte) []byte {
	return []byte{esc, '(', 'S', 0x01, 0x00, v}
}

func opVerticalPosition(rows int) []byte {
	if rows >= -0x7fff && rows <= 0x7fff {
		out := []byte{esc, '(', 'v', 0x02, 0x00}
		return append(out, le16(rows)...)
	}
	out := []byte{esc, '(', 'v', 0x04, 0x00}
	return append(out, le32(rows)...)
}

func opColorSelect(ch byte) []byte {
	return []byte{esc, '(', 'r', 0x01, 0x00, ch}
}

func opHorizontalPosition(cols int) []byte {
	out := []byte{esc, '(', '$', 0x04, 0x00}
	return append(out, le32(cols)...)
}

func opRasterSoftweave(compression, bitDepth byte, widthBytes, lineCount int) []byte {
	out := []byte{esc, 'i', compression, bitDepth}
	out = append(out, le16(widthBytes)...)
	out = append(out, le16(lineCount)...)
	return out
}

func opRasterMicroweave(compression, bitDepth byte, widthBytes, lineCount int) []byte {
	out := []byte{esc, '.', compression, bitDepth}
	out = append(out, le16(widthBytes)...)
	out = append(out, le16(lineCount)...)
	return out
}

func opCR() []byte { return []byte{cr} }

func opFormFeed() []byte { return []byte{ff} }

// opLoadSettings is the "LD" REMOTE1 teardown opcode, reproduced verbatim
// from the wire protocol rather than reverse-engineered.
func opLoadSettings() []byte {
	return []byte{esc, '(', 'L', 'D', 0x02, 0x00, 0x00, 0x00}
}

// opJobEnd is the "JE" REMOTE1 teardown opcode some models require.
func opJobEnd() []byte {
	return []byte{esc, '(', 'J', 'E', 0x01, 0x00, 0x00}
}
