// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dither turns a row of LUT-corrected u16 RGB samples into the
// per-channel, per-bit-depth bitplanes a printhead actually fires, using
// one of several error-diffusion or ordered-matrix strategies.
//
// A Dither context is built fresh per page (Init), configured through its
// set_* operations, and driven one row at a time through DitherCMYK. The
// structure follows the reference dither engine closely: a DitherColor
// holds a sorted, gap-free partition of the 0..65535 input axis into
// DitherSegments, and the per-pixel routine (printColor) walks that
// partition to pick a drop size before handing off to the row-level
// boustrophedon scan and triangular error diffusion in DitherCMYK.
package dither
