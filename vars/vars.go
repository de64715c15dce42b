// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package vars

import (
	"log/slog"
	"os"
)

// Vars is the typed settings bag for one page of output. Zero value is not
// generally useful; start from DefaultVars and override fields.
//
// A Vars value is always copy-on-pass: callers own their Vars and the
// pipeline takes a copy at print time.
type Vars struct {
	// String settings, resolved against the Printer's enumerated options.
	OutputTo        string
	Driver          string
	PPDFile         string
	Resolution      string
	MediaSize       string
	MediaType       string
	MediaSource     string
	InkType         string
	DitherAlgorithm string

	OutputType  OutputType
	Orientation Orientation

	// Geometry, in points (1/72 inch).
	Left       int
	Top        int
	PageWidth  int
	PageHeight int

	// Color correction knobs.
	Brightness float64
	Scaling    float64
	Gamma      float64
	Contrast   float64
	Cyan       float64
	Magenta    float64
	Yellow     float64
	Saturation float64
	Density    float64
	AppGamma   float64

	ImageType        ImageType
	InputColorModel  ColorModel
	OutputColorModel ColorModel

	// DebugMask selects which subsystems emit slog.Debug traces. Bit
	// assignments mirror STP_DEBUG: bit 0 = color, bit 1 = dither, bit 2 =
	// weave, bit 3 = escp2.
	DebugMask uint64
	// LogToStderr makes Logger return a text logger on os.Stderr instead of
	// slog.Default, mirroring STP_PRINT_MESSAGES_TO_STDERR. A logger set
	// with SetLogger takes precedence over it.
	LogToStderr bool

	logger *slog.Logger
}

// Debug subsystem bits for DebugMask.
const (
	DebugColor uint64 = 1 << iota
	DebugDither
	DebugWeave
	DebugEscp2
)

// Logger returns the slog.Logger this Vars should log through, honoring
// LogToStderr and falling back to slog.Default.
func (v *Vars) Logger() *slog.Logger {
	if v.logger == nil {
		if v.LogToStderr {
			return slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
		return slog.Default()
	}
	return v.logger
}

// SetLogger overrides the logger used for this Vars' diagnostics. This is
// the structured-logging equivalent of the C API's Vars-carried errfunc
// callback.
func (v *Vars) SetLogger(l *slog.Logger) {
	v.logger = l
}

// DebugEnabled reports whether the given subsystem bit is set in DebugMask.
func (v *Vars) DebugEnabled(bit uint64) bool {
	return v.DebugMask&bit != 0
}

// DefaultVars returns the recommended default settings. Numeric fields sit
// at the identity point of their respective correction (gamma=1, etc.).
func DefaultVars() Vars {
	return Vars{
		OutputType:       Color,
		Orientation:      Auto,
		Brightness:       1.0,
		Scaling:          100.0,
		Gamma:            1.0,
		Contrast:         1.0,
		Cyan:             1.0,
		Magenta:          1.0,
		Yellow:           1.0,
		Saturation:       1.0,
		Density:          1.0,
		AppGamma:         1.7,
		ImageType:        Continuous,
		InputColorModel:  CMY,
		OutputColorModel: RGB,
		DitherAlgorithm:  "Adaptive Hybrid",
	}
}

// MinimumVars returns the lower bound for every numeric field. Used by
// Verify to reject out-of-range settings.
func MinimumVars() Vars {
	return Vars{
		Left:       -0x7fffffff,
		Top:        -0x7fffffff,
		PageWidth:  0,
		PageHeight: 0,
		Brightness: 0.0,
		Scaling:    -2000.0,
		Gamma:      0.1,
		Contrast:   0.0,
		Cyan:       0.0,
		Magenta:    0.0,
		Yellow:     0.0,
		Saturation: 0.0,
		Density:    0.1,
		AppGamma:   0.1,
	}
}

// MaximumVars returns the upper bound for every numeric field.
func MaximumVars() Vars {
	return Vars{
		Left:       0x7fffffff,
		Top:        0x7fffffff,
		PageWidth:  0x7fffffff,
		PageHeight: 0x7fffffff,
		Brightness: 2.0,
		Scaling:    2000.0,
		Gamma:      4.0,
		Contrast:   4.0,
		Cyan:       4.0,
		Magenta:    4.0,
		Yellow:     4.0,
		Saturation: 9.0,
		Density:    2.0,
		AppGamma:   4.0,
	}
}
