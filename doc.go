// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package raster is a container for the raster-to-ESC/P2 print pipeline:
// color LUT, color space conversion, dithering, weave scheduling and
// driver emission, plus the printer registry and orchestration that wire
// them together.
package raster
