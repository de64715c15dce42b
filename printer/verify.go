// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package printer

import (
	"fmt"
	"strings"

	"github.com/inkraster/raster/vars"
)

// VerifyError accumulates every parameter problem found by Verify, so a
// caller can report all of them at once instead of stopping at the first.
// A zero-value VerifyError (no Add calls) is valid and reports ok.
type VerifyError struct {
	Messages []string
}

// Add appends one diagnostic line, formatted like fmt.Sprintf.
func (e *VerifyError) Add(format string, args ...interface{}) {
	e.Messages = append(e.Messages, fmt.Sprintf(format, args...))
}

// OK reports whether no diagnostics were accumulated.
func (e *VerifyError) OK() bool { return len(e.Messages) == 0 }

// Error implements the error interface, joining every diagnostic line.
func (e *VerifyError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// Verify checks v's fields against p's bounds and enumerated options,
// per §7: every invalid field is reported, not just the first. It returns
// false (and a non-nil *VerifyError with Messages) if any check failed.
func Verify(p *Printer, v *vars.Vars) (bool, *VerifyError) {
	errs := &VerifyError{}

	lo, hi := vars.MinimumVars(), vars.MaximumVars()
	checkRange(errs, "brightness", v.Brightness, lo.Brightness, hi.Brightness)
	checkRange(errs, "gamma", v.Gamma, lo.Gamma, hi.Gamma)
	checkRange(errs, "contrast", v.Contrast, lo.Contrast, hi.Contrast)
	checkRange(errs, "cyan", v.Cyan, lo.Cyan, hi.Cyan)
	checkRange(errs, "magenta", v.Magenta, lo.Magenta, hi.Magenta)
	checkRange(errs, "yellow", v.Yellow, lo.Yellow, hi.Yellow)
	checkRange(errs, "saturation", v.Saturation, lo.Saturation, hi.Saturation)
	checkRange(errs, "density", v.Density, lo.Density, hi.Density)
	checkRange(errs, "app_gamma", v.AppGamma, lo.AppGamma, hi.AppGamma)

	if v.Resolution != "" {
		if !hasParameter(p, v, "Resolution", v.Resolution) {
			errs.Add("unknown resolution %q for printer %s", v.Resolution, p.LongName)
		}
	}
	if v.MediaSize != "" {
		if !hasParameter(p, v, "PageSize", v.MediaSize) {
			errs.Add("unknown page size %q for printer %s", v.MediaSize, p.LongName)
		}
	}
	if v.InkType != "" {
		if !hasParameter(p, v, "InkType", v.InkType) {
			errs.Add("unknown ink type %q for printer %s", v.InkType, p.LongName)
		}
	}
	if v.MediaType != "" {
		if !hasParameter(p, v, "MediaType", v.MediaType) {
			errs.Add("unknown media type %q for printer %s", v.MediaType, p.LongName)
		}
	}
	if v.MediaSource != "" {
		if !hasParameter(p, v, "InputSlot", v.MediaSource) {
			errs.Add("unknown media source %q for printer %s", v.MediaSource, p.LongName)
		}
	}

	if p.Family != nil && p.Family.Limit != nil {
		maxW, maxH := p.Limit(v)
		if maxW > 0 && v.PageWidth > maxW {
			errs.Add("page width %d exceeds printer limit %d", v.PageWidth, maxW)
		}
		if maxH > 0 && v.PageHeight > maxH {
			errs.Add("page height %d exceeds printer limit %d", v.PageHeight, maxH)
		}
	}

	if v.OutputType == vars.Color && isGrayOnly(p) {
		errs.Add("printer %s is gray-only but output_type is COLOR", p.LongName)
	}

	if p.Family != nil && p.Family.Verify != nil {
		p.Family.Verify(p, v, errs)
	}

	return errs.OK(), errs
}

func checkRange(errs *VerifyError, field string, value, lo, hi float64) {
	if value < lo || value > hi {
		errs.Add("%s value %g out of range [%g, %g]", field, value, lo, hi)
	}
}

func hasParameter(p *Printer, v *vars.Vars, name, value string) bool {
	for _, param := range p.Parameters(v, name) {
		if param.Name == value {
			return true
		}
	}
	return false
}

// isGrayOnly reports whether p offers no InkType other than a grayscale
// single-channel option. Families with no InkType parameter at all are
// assumed not gray-only (nothing to restrict against).
func isGrayOnly(p *Printer) bool {
	v := p.DefaultVars
	params := p.Parameters(&v, "InkType")
	if len(params) == 0 {
		return false
	}
	for _, param := range params {
		if !strings.Contains(strings.ToLower(param.Name), "gray") &&
			!strings.Contains(strings.ToLower(param.Name), "black") {
			return false
		}
	}
	return true
}
