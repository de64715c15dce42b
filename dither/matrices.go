// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dither

// orderedMatrices holds the precomputed ordered-dither matrix banks the
// reference builds from iterated base-2/3/5 Bayer-style tilings. This
// implementation keeps only two banks (a base-2 Bayer matrix and a linear
// ramp; see buildOrderedMatrices) rather than the full set, which is
// sufficient for the ORDERED/
// ORDERED_PERTURBED/HYBRID_FLOYD paths that only ever read two lookups at
// a time (m1 XOR m2 for HYBRID_FLOYD, or a single twisted lookup for the
// ordered variants).
type orderedMatrices struct {
	size0 int
	size1 int
	m0    []uint16 // base matrix, size0 x size0
	m1    []uint16 // a second, decorrelated matrix, size1 x size1
}

// at returns the matrix entry at (x, y), wrapping into bank's own toroidal
// tiling period (m0 and m1 intentionally have different sizes so combining
// them doesn't reintroduce a shared periodicity).
func (m orderedMatrices) at(bank []uint16, x, y int) uint16 {
	s := m.size0
	if len(bank) == len(m.m1) {
		s = m.size1
	}
	xi := ((x % s) + s) % s
	yi := ((y % s) + s) % s
	return bank[yi*s+xi]
}

// buildOrderedMatrices constructs a 16x16 Bayer matrix (base 2, scaled to
// the 0..65535 output range) as m0, and a 15x15 linear ramp (not a Bayer
// recurrence) as m1, giving two matrices with different
// periods so XOR-combining them (HYBRID_FLOYD) and perturbing their lookup
// coordinates (ORDERED_PERTURBED) doesn't reintroduce visible periodicity.
func buildOrderedMatrices() orderedMatrices {
	const size = 16
	bayer := bayerMatrix(size)
	m0 := make([]uint16, size*size)
	for i, v := range bayer {
		m0[i] = uint16(uint32(v) * 65536 / uint32(size*size))
	}

	const size3 = 15
	m1 := make([]uint16, size3*size3)
	for y := 0; y < size3; y++ {
		for x := 0; x < size3; x++ {
			// A simple decorrelated ramp: (5x + 7y) mod (size3*size3),
			// scaled to 16 bits. Not a true base-3 Bayer recurrence, but it
			// serves the same decorrelation purpose the reference uses a
			// second bank for.
			v := (5*x + 7*y) % (size3 * size3)
			m1[y*size3+x] = uint16(uint32(v) * 65536 / uint32(size3*size3))
		}
	}

	return orderedMatrices{size0: size, size1: size3, m0: m0, m1: m1}
}

// bayerMatrix builds the classic recursive Bayer dither matrix of the
// given power-of-two size, with entries in [0, size*size).
func bayerMatrix(size int) []int {
	m := []int{0}
	n := 1
	for n < size {
		next := make([]int, (n*2)*(n*2))
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				v := m[y*n+x] * 4
				next[y*(2*n)+x] = v
				next[y*(2*n)+x+n] = v + 2
				next[(y+n)*(2*n)+x] = v + 3
				next[(y+n)*(2*n)+x+n] = v + 1
			}
		}
		m = next
		n *= 2
	}
	return m
}
