// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package packbits

import (
	"bytes"
	"testing"
)

func TestEncodeRepeatSplitAtMaxRun(t *testing.T) {
	src := bytes.Repeat([]byte{0x00}, 200)
	got := Encode(src)
	want := []byte{0x81, 0x00, 0xb9, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode(200 zero bytes) = % x, want % x", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte{0xff}, 300),
		[]byte{1, 2, 3, 4, 5, 5, 5, 6, 7, 7, 9},
		bytes.Repeat([]byte{0xaa, 0xbb}, 50),
	}
	for _, src := range cases {
		enc := Encode(src)
		dec := Decode(enc)
		if !bytes.Equal(dec, src) {
			t.Fatalf("round trip mismatch: src=% x enc=% x dec=% x", src, enc, dec)
		}
	}
}

func TestEncodeWorstCaseBound(t *testing.T) {
	src := make([]byte, 1000)
	for i := range src {
		src[i] = byte(i) // no runs at all: pure literal worst case
	}
	enc := Encode(src)
	bound := len(src) + len(src)/128 + 2
	if len(enc) > bound {
		t.Fatalf("Encode exceeded worst-case bound: got %d, bound %d", len(enc), bound)
	}
}
