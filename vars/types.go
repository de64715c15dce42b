// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package vars

import "fmt"

// OutputType selects how many ink/toner channels a page is rendered for.
type OutputType int

// Valid OutputType values.
const (
	Gray OutputType = iota
	Color
	Monochrome
	RawCMYK
)

// Set sets the OutputType to a value represented by s. Set implements the
// flag.Value interface.
func (o *OutputType) Set(s string) error {
	switch s {
	case "gray", "Gray", "GRAY":
		*o = Gray
	case "color", "Color", "COLOR":
		*o = Color
	case "monochrome", "Monochrome", "MONOCHROME":
		*o = Monochrome
	case "raw_cmyk", "RAW_CMYK":
		*o = RawCMYK
	default:
		return fmt.Errorf("vars: unknown output_type %q: expected GRAY, COLOR, MONOCHROME or RAW_CMYK", s)
	}
	return nil
}

func (o OutputType) String() string {
	switch o {
	case Gray:
		return "GRAY"
	case Color:
		return "COLOR"
	case Monochrome:
		return "MONOCHROME"
	case RawCMYK:
		return "RAW_CMYK"
	default:
		return "UNKNOWN"
	}
}

// Orientation selects the page rotation applied before imaging.
type Orientation int

// Valid Orientation values.
const (
	Auto Orientation = iota
	Portrait
	Landscape
	Upsidedown
	Seascape
)

func (o *Orientation) Set(s string) error {
	switch s {
	case "auto", "AUTO":
		*o = Auto
	case "portrait", "PORTRAIT":
		*o = Portrait
	case "landscape", "LANDSCAPE":
		*o = Landscape
	case "upsidedown", "UPSIDEDOWN":
		*o = Upsidedown
	case "seascape", "SEASCAPE":
		*o = Seascape
	default:
		return fmt.Errorf("vars: unknown orientation %q: expected AUTO, PORTRAIT, LANDSCAPE, UPSIDEDOWN or SEASCAPE", s)
	}
	return nil
}

func (o Orientation) String() string {
	switch o {
	case Auto:
		return "AUTO"
	case Portrait:
		return "PORTRAIT"
	case Landscape:
		return "LANDSCAPE"
	case Upsidedown:
		return "UPSIDEDOWN"
	case Seascape:
		return "SEASCAPE"
	default:
		return "UNKNOWN"
	}
}

// ImageType is a hint about the nature of the source image, used to select
// fast paths in the color converter and to force print-gamma to 1.0 for
// MONOCHROME.
type ImageType int

// Valid ImageType values.
const (
	LineArt ImageType = iota
	SolidTone
	Continuous
	ImageMonochrome
)

func (t *ImageType) Set(s string) error {
	switch s {
	case "line_art", "LINE_ART":
		*t = LineArt
	case "solid_tone", "SOLID_TONE":
		*t = SolidTone
	case "continuous", "CONTINUOUS":
		*t = Continuous
	case "monochrome", "MONOCHROME":
		*t = ImageMonochrome
	default:
		return fmt.Errorf("vars: unknown image_type %q: expected LINE_ART, SOLID_TONE, CONTINUOUS or MONOCHROME", s)
	}
	return nil
}

// ColorModel is the per-pixel sample layout for input or output color data.
type ColorModel int

// Valid ColorModel values.
const (
	RGB ColorModel = iota
	CMY
)

func (m *ColorModel) Set(s string) error {
	switch s {
	case "rgb", "RGB":
		*m = RGB
	case "cmy", "CMY":
		*m = CMY
	default:
		return fmt.Errorf("vars: unknown color_model %q: expected RGB or CMY", s)
	}
	return nil
}

func (m ColorModel) String() string {
	if m == CMY {
		return "CMY"
	}
	return "RGB"
}
