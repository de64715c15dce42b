// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package escp2 emits the ESC/P2 wire protocol: the byte-level opcode
// sequences an Epson-family printer understands, driven by the weave
// scheduler's completed passes. It implements the INIT -> REMOTE_SETUP ->
// GRAPHICS -> ROW_LOOP/FLUSH_PASS -> EJECT -> DEINIT state machine, with
// every byte sequence going through a single sink write so a failed write
// aborts the page cleanly.
package escp2
