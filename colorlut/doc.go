// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package colorlut builds and applies the per-channel 8-bit-indexed,
// 16-bit-valued correction tables (contrast, brightness, gamma, per-channel
// ink response) that the color-space converter looks samples up through on
// their way from an 8-bit image sample to a 16-bit device intensity.
//
// A LUT is built once per page from a vars.Vars and is read-only afterward,
// the same lifecycle as a periph device's precomputed command table.
package colorlut
