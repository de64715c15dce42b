// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package escp2

// Capabilities is the subset of a printer model's fixed hardware facts the
// emitter needs to build a valid byte stream: nozzle geometry, which
// optional opcodes the model accepts, and resolution scaling.
type Capabilities struct {
	Jets       int
	Separation int
	Oversample int
	MinNozzles int

	Softweave  bool
	Microweave bool

	// ZeroMargin models accept the FP (platen gap) opcode during
	// REMOTE_SETUP; others reject it.
	ZeroMargin bool

	// RollFeed models accept IR/EX roll-feed configuration opcodes.
	RollFeed bool

	// ExitPacketMode models (network/EJL-managed printers) need the magic
	// packet-mode-exit prefix before ESC @ in INIT.
	ExitPacketMode bool

	// JETeardown models expect a JE opcode in the REMOTE1 teardown block.
	JETeardown bool

	ResolutionScale int
	XDPI, YDPI      int
}

// exitPacketModeMagic is the verbatim byte sequence that exits EJL packet
// mode on network-attached models, reproduced as-is rather than
// reverse-engineered further.
var exitPacketModeMagic = []byte{
	0x00, 0x00, 0x00, 0x1b, 0x01,
	'@', 'E', 'J', 'L', ' ', '1', '2', '8', '4', '.', '4', '\n',
	'@', 'E', 'J', 'L', ' ', ' ', ' ', ' ', ' ', '\n',
}
