// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imgsrc

import "io"

// OutputSink is the single byte-stream consumer the driver emitter writes
// the serialized protocol into. Bytes are written in strict emission
// order; the sink is responsible for any framing or transport below it
// (file, pipe, network socket, in-memory buffer).
//
// Unlike the legacy (ctx, buf, len) callback convention, Write returns an
// error: if the sink fails, the emitter aborts the current page and
// surfaces the error to the caller of print.Print (see §7 "Sink write
// failure").
type OutputSink interface {
	Write(buf []byte) error
}

// WriterSink adapts any io.Writer (os.File, bytes.Buffer, a pipe, ...) into
// an OutputSink.
type WriterSink struct {
	W io.Writer
}

// Write implements OutputSink.
func (s WriterSink) Write(buf []byte) error {
	_, err := s.W.Write(buf)
	return err
}
