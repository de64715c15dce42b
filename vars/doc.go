// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package vars holds the typed settings bag ("Vars") that configures one
// page of raster output: output geometry, color correction knobs, ink and
// media selection, and the dither algorithm. A Vars value is validated
// against a Printer's enumerated options before a page is printed.
//
// Vars is always copied, never shared: the core pipeline takes its own copy
// at print time and never mutates the caller's value.
package vars
