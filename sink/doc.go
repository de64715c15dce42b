// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sink provides weave.Sink implementations beyond the ESC/P2
// emitter: a terminal preview for development without physical hardware,
// and a fan-out sink for driving several of them from one page.
package sink
