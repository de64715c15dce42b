// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imgsrc

import (
	"testing"

	"github.com/inkraster/raster/packbits"
	"github.com/inkraster/raster/weave"
)

func TestDrawerStacksPassesIntoRows(t *testing.T) {
	d := NewDrawer(8, 2, weave.PackbitsRLE)

	var blackLine weave.PassData
	blackLine.Width = 8
	blackLine.Counts[weave.NChannels-1] = 1
	blackLine.Lines[weave.NChannels-1] = packbits.Encode([]byte{0xff})
	if err := d.EmitPass(blackLine); err != nil {
		t.Fatalf("EmitPass (black): %v", err)
	}

	var cyanLine weave.PassData
	cyanLine.Width = 8
	cyanLine.Counts[0] = 1
	cyanLine.Lines[0] = packbits.Encode([]byte{0xff})
	if err := d.EmitPass(cyanLine); err != nil {
		t.Fatalf("EmitPass (cyan): %v", err)
	}

	r, g, b, _ := d.Image().At(0, 0).RGBA()
	if r>>8 > 120 || g>>8 > 120 || b>>8 > 120 {
		t.Errorf("row 0 (black) = (%d,%d,%d), want dark", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = d.Image().At(0, 1).RGBA()
	if r>>8 < 200 || g>>8 > 160 || b>>8 > 160 {
		t.Errorf("row 1 (cyan) = (%d,%d,%d), want cyan-tinted", r>>8, g>>8, b>>8)
	}
}

func TestDrawerStopsAtPageBottom(t *testing.T) {
	d := NewDrawer(8, 1, weave.PackbitsRLE)
	var p weave.PassData
	p.Width = 8
	p.Counts[0] = 3
	p.Lines[0] = packbits.Encode([]byte{0xff, 0xff, 0xff})
	if err := d.EmitPass(p); err != nil {
		t.Fatalf("EmitPass: %v", err)
	}
	if d.nextRow != 1 {
		t.Errorf("nextRow = %d, want 1 (clamped to page height)", d.nextRow)
	}
}

func TestDrawerHaltIsNoop(t *testing.T) {
	d := NewDrawer(4, 4, weave.Raw)
	if err := d.Halt(); err != nil {
		t.Errorf("Halt: %v", err)
	}
}
