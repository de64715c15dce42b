// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package print wires the color LUT, color converter, dither engine, weave
// scheduler and escp2 driver emitter into the single ROW_LOOP a
// printer.Family.Print implementation drives, and registers the concrete
// escp2 printer models this module ships.
package print
