// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package weave schedules dithered output rows into print-head passes for
// a softweave printer: a head with a fixed number of nozzles ("jets")
// spaced `separation` rows apart fires a subset of the page's rows on
// each pass, interleaving passes so the final page shows no banding.
//
// Scheduling is geometry only: write_row decides which pass and jet a
// row belongs to and appends its packed bytes into that pass's slot in a
// ring buffer. A pass is handed to a Sink for emission when a row of a
// different pass needs its ring slot, and flush_all hands over every pass
// still pending at page end.
package weave
