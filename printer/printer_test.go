// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package printer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inkraster/raster/imgsrc"
	"github.com/inkraster/raster/vars"
)

func testFamily() *Family {
	return &Family{
		Parameters: func(p *Printer, v *vars.Vars, name string) []Parameter {
			switch name {
			case "Resolution":
				return []Parameter{{Name: "360x360", Text: "360 DPI"}, {Name: "720x720", Text: "720 DPI"}}
			case "InkType":
				return []Parameter{{Name: "CMYK", Text: "Color"}}
			}
			return nil
		},
		Limit: func(p *Printer, v *vars.Vars) (int, int) {
			return 612, 792
		},
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	p := &Printer{LongName: "Test Printer", DriverID: "test-driver", Family: testFamily()}
	Register(p)

	if got, ok := GetByDriver("test-driver"); !ok || got != p {
		t.Fatalf("GetByDriver: got %v, %v", got, ok)
	}
	if got, ok := GetByLongName("Test Printer"); !ok || got != p {
		t.Fatalf("GetByLongName: got %v, %v", got, ok)
	}
	found := false
	for i := 0; i < PrinterModelCount(); i++ {
		if q, ok := GetByIndex(i); ok && q == p {
			found = true
		}
	}
	if !found {
		t.Fatalf("GetByIndex never returned the registered printer")
	}
}

func TestVerifyAccumulatesAllErrors(t *testing.T) {
	p := &Printer{LongName: "Test Printer 2", DriverID: "test-driver-2", Family: testFamily()}
	v := vars.DefaultVars()
	v.Gamma = -1         // out of range
	v.Contrast = 100     // out of range
	v.Resolution = "9x9" // unknown
	v.PageWidth = 5000   // exceeds limit

	ok, errs := Verify(p, &v)
	if ok {
		t.Fatalf("Verify reported ok for invalid Vars")
	}
	if len(errs.Messages) < 4 {
		t.Fatalf("Verify should accumulate every problem, got %d: %v", len(errs.Messages), errs.Messages)
	}
}

func TestVerifyAcceptsDefaults(t *testing.T) {
	p := &Printer{LongName: "Test Printer 3", DriverID: "test-driver-3", Family: testFamily()}
	v := vars.DefaultVars()
	v.Resolution = "360x360"
	v.InkType = "CMYK"

	ok, errs := Verify(p, &v)
	if !ok {
		t.Fatalf("Verify rejected valid Vars: %v", errs.Messages)
	}
}

func TestPapersizeBySize(t *testing.T) {
	got, ok := PapersizeBySize(500, 700)
	if !ok {
		t.Fatalf("PapersizeBySize found nothing")
	}
	want, _ := PapersizeByName("Letter")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PapersizeBySize(500,700) mismatch (-want +got):\n%s", diff)
	}
}

func TestPapersizeBySizeFallsBackToRoll(t *testing.T) {
	got, ok := PapersizeBySize(600, 100000)
	if !ok {
		t.Fatalf("PapersizeBySize found nothing for an oversized height")
	}
	if got.Name != "Roll" {
		t.Errorf("PapersizeBySize(600,100000) = %q, want Roll", got.Name)
	}
}

func TestHaltStopsFurtherPrints(t *testing.T) {
	p := &Printer{LongName: "Test Printer 4", DriverID: "test-driver-4", Family: &Family{
		Print: func(p *Printer, v *vars.Vars, img imgsrc.ImageSource, sink imgsrc.OutputSink) (imgsrc.Status, error) {
			return imgsrc.StatusOK, nil
		},
	}}
	if err := p.Halt(); err != nil {
		t.Fatalf("Halt: %v", err)
	}
	v := vars.DefaultVars()
	status, err := p.Print(&v, nil, nil)
	if err != ErrHalted {
		t.Fatalf("Print after Halt err = %v, want ErrHalted", err)
	}
	if status != imgsrc.StatusAbort {
		t.Errorf("Print after Halt status = %v, want StatusAbort", status)
	}
}

func TestResolveOrientationAuto(t *testing.T) {
	got := ResolveOrientation(&vars.Vars{Orientation: vars.Auto}, 612, 792, 1000, 500)
	if got != vars.Landscape {
		t.Errorf("ResolveOrientation wide-image/tall-page = %v, want LANDSCAPE", got)
	}
	got = ResolveOrientation(&vars.Vars{Orientation: vars.Auto}, 612, 792, 500, 1000)
	if got != vars.Portrait {
		t.Errorf("ResolveOrientation tall-image/tall-page = %v, want PORTRAIT", got)
	}
}
