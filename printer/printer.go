// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package printer

import (
	"errors"

	"periph.io/x/conn/v3"

	"github.com/inkraster/raster/imgsrc"
	"github.com/inkraster/raster/vars"
)

// ErrHalted is returned by Print once Halt has been called.
var ErrHalted = errors.New("printer: halted")

// Parameter is one enumerated choice for a string-valued Vars field, paired
// with display text for a UI layer.
type Parameter struct {
	Name string
	Text string
}

// Family is a printer model's vtable: the set of operations that vary by
// driver family. A Printer holds one Family and delegates every
// family-specific operation to it; this is the composition-over-inheritance
// replacement for the original's function-pointer struct (see the
// REDESIGN FLAGS discussion of function-pointer vtables in DESIGN.md).
type Family struct {
	// Parameters enumerates the valid values of the named option ("PageSize",
	// "MediaType", "InputSlot", "Resolution", "InkType") for this printer
	// under the given Vars.
	Parameters func(p *Printer, v *vars.Vars, name string) []Parameter

	// MediaSize returns the page width and height, in points, implied by
	// v.MediaSize (or by PageWidth/PageHeight directly for roll feed).
	MediaSize func(p *Printer, v *vars.Vars) (width, height int)

	// ImageableArea returns the left, top, right, bottom margins, in points,
	// within which the family can actually place ink.
	ImageableArea func(p *Printer, v *vars.Vars) (left, top, right, bottom int)

	// Limit returns the maximum page width and height, in points, the family
	// can physically handle regardless of media_size.
	Limit func(p *Printer, v *vars.Vars) (maxWidth, maxHeight int)

	// DefaultParameters fills in any Vars fields left at their zero value
	// with the family's preferred defaults (resolution, ink type, ...).
	DefaultParameters func(p *Printer, v *vars.Vars)

	// DescribeResolution parses v.Resolution into horizontal and vertical
	// dots per inch.
	DescribeResolution func(p *Printer, v *vars.Vars) (xdpi, ydpi int)

	// Verify runs family-specific checks beyond the generic ones in Verify;
	// it appends to errs and returns whether it found no errors.
	Verify func(p *Printer, v *vars.Vars, errs *VerifyError) bool

	// Print renders one page of img through v to sink, returning the page
	// status.
	Print func(p *Printer, v *vars.Vars, img imgsrc.ImageSource, sink imgsrc.OutputSink) (imgsrc.Status, error)
}

// Printer is the immutable descriptor for one printer model. Printers are
// constructed once at process start and registered into the global list;
// nothing in this package mutates a Printer after Register.
type Printer struct {
	LongName    string
	DriverID    string
	FamilyID    string
	ModelNumber int
	Family      *Family
	DefaultVars vars.Vars

	halted bool
}

// Parameters delegates to p.Family.Parameters.
func (p *Printer) Parameters(v *vars.Vars, name string) []Parameter {
	if p.Family == nil || p.Family.Parameters == nil {
		return nil
	}
	return p.Family.Parameters(p, v, name)
}

// MediaSize delegates to p.Family.MediaSize.
func (p *Printer) MediaSize(v *vars.Vars) (int, int) {
	if p.Family == nil || p.Family.MediaSize == nil {
		return 0, 0
	}
	return p.Family.MediaSize(p, v)
}

// ImageableArea delegates to p.Family.ImageableArea.
func (p *Printer) ImageableArea(v *vars.Vars) (int, int, int, int) {
	if p.Family == nil || p.Family.ImageableArea == nil {
		return 0, 0, 0, 0
	}
	return p.Family.ImageableArea(p, v)
}

// Limit delegates to p.Family.Limit.
func (p *Printer) Limit(v *vars.Vars) (int, int) {
	if p.Family == nil || p.Family.Limit == nil {
		return 0, 0
	}
	return p.Family.Limit(p, v)
}

// DefaultParameters delegates to p.Family.DefaultParameters.
func (p *Printer) DefaultParameters(v *vars.Vars) {
	if p.Family != nil && p.Family.DefaultParameters != nil {
		p.Family.DefaultParameters(p, v)
	}
}

// DescribeResolution delegates to p.Family.DescribeResolution.
func (p *Printer) DescribeResolution(v *vars.Vars) (int, int) {
	if p.Family == nil || p.Family.DescribeResolution == nil {
		return 0, 0
	}
	return p.Family.DescribeResolution(p, v)
}

// Print delegates to p.Family.Print.
func (p *Printer) Print(v *vars.Vars, img imgsrc.ImageSource, sink imgsrc.OutputSink) (imgsrc.Status, error) {
	if p.halted {
		return imgsrc.StatusAbort, ErrHalted
	}
	return p.Family.Print(p, v, img, sink)
}

// Halt implements conn.Resource, matching the teacher's Dev.Halt contract:
// once called, the printer refuses further Print calls. A registered
// Printer has no live transport of its own to release; Halt's only job
// here is to stop new pages from starting.
func (p *Printer) Halt() error {
	p.halted = true
	return nil
}

var _ conn.Resource = &Printer{}
