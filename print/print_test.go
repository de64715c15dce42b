// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package print

import (
	"bytes"
	"errors"
	"testing"

	"github.com/inkraster/raster/imgsrc"
	"github.com/inkraster/raster/printer"
	"github.com/inkraster/raster/vars"
)

// solidSource is a fixed-size RGB ImageSource returning the same pixel on
// every row, enough to drive Print end to end without a real decoded image.
type solidSource struct {
	w, h    int
	r, g, b byte
}

func (s *solidSource) Init() error  { return nil }
func (s *solidSource) Reset() error { return nil }
func (s *solidSource) Width() int   { return s.w }
func (s *solidSource) Height() int  { return s.h }
func (s *solidSource) BPP() int     { return 3 }

func (s *solidSource) GetRow(buf []byte, row int) (imgsrc.Status, error) {
	for x := 0; x < s.w; x++ {
		buf[3*x], buf[3*x+1], buf[3*x+2] = s.r, s.g, s.b
	}
	return imgsrc.StatusOK, nil
}

func (s *solidSource) ProgressInit()         {}
func (s *solidSource) NoteProgress(int, int) {}
func (s *solidSource) ProgressConclude()     {}

func (s *solidSource) RotateCCW() error          { return nil }
func (s *solidSource) RotateCW() error           { return nil }
func (s *solidSource) Rotate180() error          { return nil }
func (s *solidSource) FlipHorizontal() error     { return nil }
func (s *solidSource) FlipVertical() error       { return nil }
func (s *solidSource) Crop(l, t, r, b int) error { return nil }
func (s *solidSource) Transpose() error          { return nil }
func (s *solidSource) AppName() string           { return "print_test" }

func TestPrintSolidWhiteProducesNoError(t *testing.T) {
	v := vars.DefaultVars()
	v.PageWidth, v.PageHeight = 72, 36 // small page: keeps the test fast
	img := &solidSource{w: 16, h: 8, r: 255, g: 255, b: 255}
	var buf bytes.Buffer
	status, err := Print(desktopModel, 100, &v, img, imgsrc.WriterSink{W: &buf})
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if status != imgsrc.StatusOK {
		t.Fatalf("Print status = %v, want OK", status)
	}
	if buf.Len() == 0 {
		t.Fatalf("Print wrote no bytes to the sink")
	}
}

func TestPrintSolidBlackProducesInk(t *testing.T) {
	v := vars.DefaultVars()
	v.PageWidth, v.PageHeight = 72, 36
	img := &solidSource{w: 16, h: 8, r: 0, g: 0, b: 0}
	var buf bytes.Buffer
	status, err := Print(desktopModel, 100, &v, img, imgsrc.WriterSink{W: &buf})
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if status != imgsrc.StatusOK {
		t.Fatalf("Print status = %v, want OK", status)
	}
	if buf.Len() == 0 {
		t.Fatalf("Print wrote no bytes to the sink")
	}
}

func TestPrintAbortsOnSinkFailure(t *testing.T) {
	v := vars.DefaultVars()
	v.PageWidth, v.PageHeight = 72, 36
	img := &solidSource{w: 16, h: 8, r: 0, g: 0, b: 0}
	status, err := Print(desktopModel, 100, &v, img, failingSink{})
	if status != imgsrc.StatusAbort {
		t.Fatalf("Print status = %v, want ABORT", status)
	}
	if err == nil {
		t.Fatalf("Print returned no error for a failing sink")
	}
}

type failingSink struct{}

func (failingSink) Write(buf []byte) error { return errWriteFailed }

var errWriteFailed = errors.New("sink write failed")

func TestRegisteredModelsPresent(t *testing.T) {
	for _, driver := range []string{"inkraster-d1", "inkraster-w1"} {
		if _, ok := printer.GetByDriver(driver); !ok {
			t.Errorf("driver %q not registered", driver)
		}
	}
}
