// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package print

import (
	"github.com/inkraster/raster/escp2"
	"github.com/inkraster/raster/weave"
)

// Model bundles one registered printer's fixed hardware facts: the escp2
// capability set the emitter needs, the weave geometry the scheduler needs,
// and the per-model defaults the engine falls back to when Vars leaves a
// field at its zero value.
type Model struct {
	Caps        escp2.Capabilities
	Geometry    weave.Geometry
	HeadOffset  escp2.HeadOffset
	RemoteSetup escp2.RemoteSetupOpts
	DotSize     byte
	PaperForm   byte
	LUTSteps    int
	MaxWidth    int // points
	MaxHeight   int // points; 0 == roll feed, unbounded
}

func headOffsetToGeometry(h escp2.HeadOffset) [weave.NChannels]int {
	return [weave.NChannels]int(h)
}

// desktopModel is a four-color, zero-margin sheet-fed model: one nozzle
// bank per channel, no oversampling, no head stagger.
var desktopModel = Model{
	Caps: escp2.Capabilities{
		Jets:            96,
		Separation:      4,
		Oversample:      1,
		MinNozzles:      1,
		Softweave:       true,
		Microweave:      true,
		ZeroMargin:      true,
		ResolutionScale: 720,
		XDPI:            720,
		YDPI:            720,
	},
	Geometry: weave.Geometry{
		Jets:              96,
		Separation:        4,
		Oversample:        1,
		HorizontalWeave:   1,
		VerticalSubpasses: 1,
		RepeatCount:       1,
	},
	RemoteSetup: escp2.RemoteSetupOpts{PaperPath: 0, PaperThickness: 0, Vacuum: 0},
	DotSize:     0x11,
	LUTSteps:    256,
	MaxWidth:    612,
	MaxHeight:   792,
}

// wideFormatModel is a roll-feed model with a taller, separated nozzle
// bank and a small per-channel head stagger, the layout softweave exists
// to reconcile.
var wideFormatModel = Model{
	Caps: escp2.Capabilities{
		Jets:            180,
		Separation:      3,
		Oversample:      1,
		MinNozzles:      1,
		Softweave:       true,
		Microweave:      false,
		RollFeed:        true,
		ExitPacketMode:  true,
		JETeardown:      true,
		ResolutionScale: 1440,
		XDPI:            1440,
		YDPI:            720,
	},
	Geometry: weave.Geometry{
		Jets:              180,
		Separation:        3,
		Oversample:        1,
		HorizontalWeave:   1,
		VerticalSubpasses: 1,
		RepeatCount:       1,
	},
	HeadOffset:  escp2.HeadOffset{0, 2, 4, 6},
	RemoteSetup: escp2.RemoteSetupOpts{PaperPath: 1, PaperThickness: 2, Vacuum: 3, RollFeedMode: 1},
	DotSize:     0x12,
	LUTSteps:    256,
	MaxWidth:    2448,
	MaxHeight:   0,
}
