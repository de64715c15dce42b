// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package colorconv converts raw image samples (1/2/3/4 bytes per pixel,
// with or without alpha) into the u16 RGB triples the dither engine
// consumes, applying saturation, CMY color-balance, the color LUT, optional
// hue/luminosity/saturation remap curves, and density scaling along the
// way.
//
// The canonical entry point is Convert, modeled on the single rgb_to_rgb
// converter a driver family would otherwise duplicate per input layout.
package colorconv
