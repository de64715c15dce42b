// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package escp2

import (
	"bytes"
	"errors"
	"testing"

	"github.com/inkraster/raster/imgsrc"
	"github.com/inkraster/raster/vars"
	"github.com/inkraster/raster/weave"
)

func TestInitEmitsResetOpcode(t *testing.T) {
	var buf bytes.Buffer
	v := vars.DefaultVars()
	e := NewEmitter(Capabilities{}, HeadOffset{}, imgsrc.WriterSink{W: &buf}, &v)
	if !e.Init() {
		t.Fatalf("Init failed: %v", e.Err())
	}
	if got := buf.Bytes(); !bytes.Equal(got, opInit()) {
		t.Fatalf("Init wrote % x, want % x", got, opInit())
	}
}

func TestInitPrefixesPacketModeMagic(t *testing.T) {
	var buf bytes.Buffer
	v := vars.DefaultVars()
	e := NewEmitter(Capabilities{ExitPacketMode: true}, HeadOffset{}, imgsrc.WriterSink{W: &buf}, &v)
	e.Init()
	want := append(append([]byte{}, exitPacketModeMagic...), opInit()...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Init with ExitPacketMode = % x, want % x", buf.Bytes(), want)
	}
}

func TestRemoteSetupWrapsRemote1Block(t *testing.T) {
	var buf bytes.Buffer
	v := vars.DefaultVars()
	e := NewEmitter(Capabilities{ZeroMargin: true, RollFeed: true}, HeadOffset{}, imgsrc.WriterSink{W: &buf}, &v)
	if !e.RemoteSetup(RemoteSetupOpts{PaperPath: 1, PaperThickness: 2, Vacuum: 3, RollFeedMode: 1}) {
		t.Fatalf("RemoteSetup failed: %v", e.Err())
	}
	b := buf.Bytes()
	if !bytes.HasPrefix(b, opRemoteEnter()) {
		t.Fatalf("RemoteSetup should start with REMOTE1 entry, got % x", b)
	}
	if !bytes.HasSuffix(b, opRemoteExit()) {
		t.Fatalf("RemoteSetup should end with ESC 0 0 0, got % x", b)
	}
}

type erroringSink struct{ after int }

func (s *erroringSink) Write(buf []byte) error {
	if s.after == 0 {
		return errors.New("sink closed")
	}
	s.after--
	return nil
}

func TestWriteFailureAbortsPage(t *testing.T) {
	v := vars.DefaultVars()
	sink := &erroringSink{after: 0}
	e := NewEmitter(Capabilities{}, HeadOffset{}, sink, &v)
	if e.Init() {
		t.Fatalf("Init should fail once the sink errors")
	}
	if e.Err() == nil {
		t.Fatalf("expected Err() to report the sink failure")
	}
	// Further writes must not panic or overwrite the first error.
	e.RemoteSetup(RemoteSetupOpts{})
	if e.Err().Error() != "sink closed" {
		t.Fatalf("Err() = %v, want the original sink error preserved", e.Err())
	}
}

func TestEmitPassPadsToMinNozzles(t *testing.T) {
	var buf bytes.Buffer
	v := vars.DefaultVars()
	caps := Capabilities{Jets: 4, Separation: 2, Softweave: true, MinNozzles: 4}
	e := NewEmitter(caps, HeadOffset{}, imgsrc.WriterSink{W: &buf}, &v)

	pass := weave.PassData{
		PassIndex: 0,
		Width:     8,
		XOffset:   0,
	}
	pass.Counts[weave.NChannels-1] = 2 // black channel, under MinNozzles
	pass.Lines[weave.NChannels-1] = []byte{0x00, 0xff, 0x00, 0xff}

	if err := e.EmitPass(pass); err != nil {
		t.Fatalf("EmitPass: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("EmitPass wrote nothing")
	}
	// The raster header must announce MinNozzles lines, and the two real
	// lines must be followed by two blank packbits lines ([0x00 0x00] each
	// for a one-byte-wide row).
	want := append(opRasterSoftweave(1, 1, 1, caps.MinNozzles), 0x00, 0xff, 0x00, 0xff, 0x00, 0x00, 0x00, 0x00)
	if !bytes.Contains(buf.Bytes(), want) {
		t.Fatalf("EmitPass output % x does not contain padded raster block % x", buf.Bytes(), want)
	}
	if !e.anyData {
		t.Fatalf("EmitPass should mark anyData once a channel is written")
	}
}

func TestEjectEmitsFormFeedOnlyWhenDataWritten(t *testing.T) {
	v := vars.DefaultVars()

	var noData bytes.Buffer
	e1 := NewEmitter(Capabilities{}, HeadOffset{}, imgsrc.WriterSink{W: &noData}, &v)
	e1.Eject()
	if bytes.Contains(noData.Bytes(), []byte{ff}) {
		t.Fatalf("Eject should not form-feed when no data was written")
	}

	var withData bytes.Buffer
	e2 := NewEmitter(Capabilities{}, HeadOffset{}, imgsrc.WriterSink{W: &withData}, &v)
	e2.anyData = true
	e2.Eject()
	if !bytes.Contains(withData.Bytes(), []byte{ff}) {
		t.Fatalf("Eject should form-feed once data was written")
	}
	if !bytes.HasSuffix(withData.Bytes(), opRemoteExit()) {
		t.Fatalf("Eject should end with REMOTE1 teardown")
	}
}
