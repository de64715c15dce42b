// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package packbits

// maxRun is the longest literal or repeat run a single control byte can
// describe: a control byte n in [0..127] is followed by n+1 literal
// bytes (max 128), and n in [129..255] is followed by one byte repeated
// 257-n times (max 128, at n=129).
const maxRun = 128

// Encode compresses src using TIFF PackBits run-length encoding. Its
// output never exceeds len(src) + len(src)/128 + 2 bytes, the worst-case
// PackBits expansion bound, which is the capacity it preallocates.
func Encode(src []byte) []byte {
	dst := make([]byte, 0, len(src)+len(src)/128+2)
	i := 0
	for i < len(src) {
		runLen := 1
		for i+runLen < len(src) && runLen < maxRun && src[i+runLen] == src[i] {
			runLen++
		}
		if runLen >= 3 {
			dst = append(dst, byte(257-runLen), src[i])
			i += runLen
			continue
		}

		// Accumulate a literal run: scan until the next repeat run of 3+
		// bytes, or maxRun literals, whichever comes first. Pairs stay in
		// the literal, since a 2-byte repeat run saves nothing.
		start := i
		i++
		for i < len(src) && i-start < maxRun {
			if i+2 < len(src) && src[i] == src[i+1] && src[i] == src[i+2] {
				break
			}
			i++
		}
		litLen := i - start
		dst = append(dst, byte(litLen-1))
		dst = append(dst, src[start:i]...)
	}
	return dst
}

// Decode expands a TIFF PackBits byte stream back to its original form.
func Decode(src []byte) []byte {
	dst := make([]byte, 0, len(src)*2)
	i := 0
	for i < len(src) {
		n := src[i]
		i++
		switch {
		case n <= 127:
			count := int(n) + 1
			if i+count > len(src) {
				count = len(src) - i
			}
			dst = append(dst, src[i:i+count]...)
			i += count
		case n >= 129:
			if i >= len(src) {
				break
			}
			count := 257 - int(n)
			b := src[i]
			i++
			for j := 0; j < count; j++ {
				dst = append(dst, b)
			}
		default: // n == 128: no-op, per the TIFF spec
		}
	}
	return dst
}
