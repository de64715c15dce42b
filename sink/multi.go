// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sink

import "github.com/inkraster/raster/weave"

// MultiSink fans one weave.Scheduler's passes out to several weave.Sink
// implementations — typically a real escp2.Emitter plus an
// ANSIPreviewSink — stopping at the first error.
type MultiSink struct {
	Sinks []weave.Sink
}

// EmitPass implements weave.Sink.
func (m MultiSink) EmitPass(p weave.PassData) error {
	for _, s := range m.Sinks {
		if s == nil {
			continue
		}
		if err := s.EmitPass(p); err != nil {
			return err
		}
	}
	return nil
}
