// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package weave

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestAssignRowTwoPassInterleave(t *testing.T) {
	geo := Geometry{
		Jets: 4, Separation: 2, Oversample: 1,
		HorizontalWeave: 1, VerticalSubpasses: 1, RepeatCount: 1,
		FirstRow: 0, LastRow: 7,
	}
	want := map[int][2]int{
		0: {0, 0}, 2: {0, 1}, 4: {0, 2}, 6: {0, 3},
		1: {1, 0}, 3: {1, 1}, 5: {1, 2}, 7: {1, 3},
	}
	for row, exp := range want {
		asn := geo.AssignRow(row)
		if asn.PassIndex != exp[0] || asn.JetIndex != exp[1] {
			t.Fatalf("row %d: got (pass=%d,jet=%d), want (pass=%d,jet=%d)", row, asn.PassIndex, asn.JetIndex, exp[0], exp[1])
		}
	}
}

func TestWeaveTotality(t *testing.T) {
	geo := Geometry{
		Jets: 4, Separation: 2, Oversample: 1,
		HorizontalWeave: 1, VerticalSubpasses: 1, RepeatCount: 1,
		FirstRow: 0, LastRow: 63,
	}
	seen := map[[2]int]bool{}
	for row := geo.FirstRow; row <= geo.LastRow; row++ {
		asn := geo.AssignRow(row)
		if asn.JetIndex < 0 || asn.JetIndex >= geo.jetsPerBank() {
			t.Fatalf("row %d: jet %d out of range [0,%d)", row, asn.JetIndex, geo.jetsPerBank())
		}
		key := [2]int{asn.PassIndex, asn.JetIndex}
		if seen[key] {
			t.Fatalf("row %d: (pass=%d,jet=%d) collides with an earlier row", row, asn.PassIndex, asn.JetIndex)
		}
		seen[key] = true
	}
}

type recordingSink struct {
	passes []PassData
}

func (r *recordingSink) EmitPass(p PassData) error {
	r.passes = append(r.passes, p)
	return nil
}

func TestSchedulerFlushesDisplacedPass(t *testing.T) {
	geo := Geometry{
		Jets: 4, Separation: 2, Oversample: 1,
		HorizontalWeave: 1, VerticalSubpasses: 1, RepeatCount: 1,
		FirstRow: 0, LastRow: 7,
	}
	sink := &recordingSink{}
	s := NewScheduler(geo, Raw, sink)

	rows := []int{0, 1, 2, 3, 4, 5, 6, 7}
	for _, row := range rows {
		var cols [NChannels][]byte
		cols[0] = []byte{byte(row)}
		if err := s.WriteRow(row, 1, 360, 0, 8, 0, 360, cols); err != nil {
			t.Fatalf("WriteRow(%d): %v", row, err)
		}
	}
	if err := s.FlushAll(); err != nil {
		t.Fatalf("FlushAll: %v", err)
	}
	if len(sink.passes) != 2 {
		t.Fatalf("expected 2 passes emitted, got %d", len(sink.passes))
	}
	for _, p := range sink.passes {
		if p.Counts[0] != 4 {
			t.Fatalf("pass %d: expected 4 lines on channel 0, got %d", p.PassIndex, p.Counts[0])
		}
	}
}

func TestSchedulerLogsFlushAndRotation(t *testing.T) {
	geo := Geometry{
		Jets: 4, Separation: 2, Oversample: 1,
		HorizontalWeave: 1, VerticalSubpasses: 1, RepeatCount: 1,
		FirstRow: 0, LastRow: 7,
	}
	var buf bytes.Buffer
	s := NewScheduler(geo, Raw, &recordingSink{})
	s.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	for row := 0; row < 8; row++ {
		var cols [NChannels][]byte
		cols[0] = []byte{byte(row)}
		if err := s.WriteRow(row, 1, 360, 0, 8, 0, 360, cols); err != nil {
			t.Fatalf("WriteRow(%d): %v", row, err)
		}
	}
	if err := s.FlushAll(); err != nil {
		t.Fatalf("FlushAll: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected flush/rotation Debug traces, got none")
	}
}

func TestWriteRowRejectsOverfill(t *testing.T) {
	geo := Geometry{
		Jets: 1, Separation: 1, Oversample: 1,
		HorizontalWeave: 1, VerticalSubpasses: 1, RepeatCount: 1,
		FirstRow: 0, LastRow: 3,
	}
	s := NewScheduler(geo, Raw, nil)
	var cols [NChannels][]byte
	cols[0] = []byte{1}
	if err := s.WriteRow(0, 1, 360, 0, 8, 0, 360, cols); err != nil {
		t.Fatalf("first WriteRow: %v", err)
	}
	// Writing row 0 again lands on the same unflushed pass 0 slot, so it
	// must exceed the single-jet capacity.
	if err := s.WriteRow(0, 1, 360, 0, 8, 0, 360, cols); err == nil {
		t.Fatalf("expected WriteRow to reject a pass overfilled beyond its jet count")
	}
}
