// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package printer holds the process-wide, immutable-after-init printer and
// papersize registries, plus parameter verification against a printer's
// enumerated capabilities.
//
// Printers are registered once at process start (mirroring how periph
// device families register their capability tables); readers never need to
// lock since the registry is append-only during init and read-only
// afterward.
package printer
