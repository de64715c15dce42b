// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package packbits implements TIFF PackBits run-length encoding, the
// compression mode 1 the driver emitter selects for raster row data.
package packbits
