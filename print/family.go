// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package print

import (
	"fmt"

	"github.com/inkraster/raster/printer"
	"github.com/inkraster/raster/vars"
)

// resolutions lists the Resolution parameter choices every model offers;
// DescribeResolution below parses these back into dpi pairs.
var resolutions = []printer.Parameter{
	{Name: "360x360", Text: "360x360 DPI"},
	{Name: "720x720", Text: "720x720 DPI"},
	{Name: "1440x720", Text: "1440x720 DPI"},
}

func parametersFor(m Model) func(p *printer.Printer, v *vars.Vars, name string) []printer.Parameter {
	return func(p *printer.Printer, v *vars.Vars, name string) []printer.Parameter {
		switch name {
		case "Resolution":
			return resolutions
		case "PageSize":
			n := printer.PapersizeCount()
			out := make([]printer.Parameter, 0, n)
			for i := 0; i < n; i++ {
				ps, _ := printer.PapersizeByIndex(i)
				if m.MaxHeight == 0 && ps.Height == 0 {
					out = append(out, printer.Parameter{Name: ps.Name, Text: ps.DisplayText})
					continue
				}
				if ps.Width <= m.MaxWidth && (m.MaxHeight == 0 || ps.Height <= m.MaxHeight) {
					out = append(out, printer.Parameter{Name: ps.Name, Text: ps.DisplayText})
				}
			}
			return out
		case "InkType":
			return []printer.Parameter{{Name: "CMYK", Text: "Four Color"}}
		case "MediaType":
			return []printer.Parameter{{Name: "Plain", Text: "Plain Paper"}, {Name: "Photo", Text: "Photo Paper"}}
		case "InputSlot":
			if m.MaxHeight == 0 {
				return []printer.Parameter{{Name: "Roll", Text: "Roll Feed"}}
			}
			return []printer.Parameter{{Name: "Sheet", Text: "Sheet Feeder"}}
		default:
			return nil
		}
	}
}

func mediaSizeFor() func(p *printer.Printer, v *vars.Vars) (int, int) {
	return func(p *printer.Printer, v *vars.Vars) (int, int) {
		if v.MediaSize != "" {
			if ps, ok := printer.PapersizeByName(v.MediaSize); ok {
				return ps.Width, ps.Height
			}
		}
		if v.PageWidth > 0 && v.PageHeight > 0 {
			return v.PageWidth, v.PageHeight
		}
		ps, _ := printer.PapersizeByName("Letter")
		return ps.Width, ps.Height
	}
}

func imageableAreaFor() func(p *printer.Printer, v *vars.Vars) (int, int, int, int) {
	return func(p *printer.Printer, v *vars.Vars) (int, int, int, int) {
		if ps, ok := printer.PapersizeByName(v.MediaSize); ok {
			return ps.Left, ps.Top, ps.Right, ps.Bottom
		}
		return 0, 0, 0, 0
	}
}

func limitFor(m Model) func(p *printer.Printer, v *vars.Vars) (int, int) {
	return func(p *printer.Printer, v *vars.Vars) (int, int) {
		return m.MaxWidth, m.MaxHeight
	}
}

func defaultParametersFor(m Model) func(p *printer.Printer, v *vars.Vars) {
	return func(p *printer.Printer, v *vars.Vars) {
		if v.Resolution == "" {
			v.Resolution = fmt.Sprintf("%dx%d", m.Caps.XDPI, m.Caps.YDPI)
		}
		if v.InkType == "" {
			v.InkType = "CMYK"
		}
		if v.MediaType == "" {
			v.MediaType = "Plain"
		}
		if v.MediaSize == "" && m.MaxHeight != 0 {
			v.MediaSize = "Letter"
		}
	}
}

func describeResolutionFor(m Model) func(p *printer.Printer, v *vars.Vars) (int, int) {
	return func(p *printer.Printer, v *vars.Vars) (int, int) {
		var x, y int
		if n, _ := fmt.Sscanf(v.Resolution, "%dx%d", &x, &y); n == 2 {
			return x, y
		}
		return m.Caps.XDPI, m.Caps.YDPI
	}
}

func verifyFor(m Model) func(p *printer.Printer, v *vars.Vars, errs *printer.VerifyError) bool {
	return func(p *printer.Printer, v *vars.Vars, errs *printer.VerifyError) bool {
		if v.PageWidth > 0 && m.MaxWidth > 0 && v.PageWidth > m.MaxWidth {
			errs.Add("page width %d exceeds %s's maximum of %d", v.PageWidth, p.LongName, m.MaxWidth)
		}
		if v.PageHeight > 0 && m.MaxHeight > 0 && v.PageHeight > m.MaxHeight {
			errs.Add("page height %d exceeds %s's maximum of %d", v.PageHeight, p.LongName, m.MaxHeight)
		}
		return errs.OK()
	}
}

// newFamily builds the printer.Family every registered model shares,
// closing over its own Model so Parameters, limits and Print all agree.
func newFamily(m Model) *printer.Family {
	return &printer.Family{
		Parameters:         parametersFor(m),
		MediaSize:          mediaSizeFor(),
		ImageableArea:      imageableAreaFor(),
		Limit:              limitFor(m),
		DefaultParameters:  defaultParametersFor(m),
		DescribeResolution: describeResolutionFor(m),
		Verify:             verifyFor(m),
		Print:              printFor(m),
	}
}
