// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package imgsrc defines the two external collaborator interfaces the raster
// pipeline is built around: an Image source that the pipeline pulls rows
// from, and an Output sink that the pipeline pushes protocol bytes into.
// Both are deliberately minimal capability sets, the same shape
// periph.io/x/conn/v3/display.Drawer gives a device to expose exactly the
// operations a caller needs and no more; Drawer in this package implements
// that interface directly, for the reverse direction (reading the
// pipeline's raster back out as a bitmap).
package imgsrc
