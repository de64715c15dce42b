// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package printer

import "github.com/inkraster/raster/vars"

// ResolveOrientation returns v.Orientation if it is not AUTO, or otherwise
// picks PORTRAIT/LANDSCAPE by comparing the image's aspect ratio against
// the destination page's, following the original auto-rotate heuristic:
// rotate to landscape only when doing so measurably improves the fit
// (image is wider than tall and the page is taller than wide, or vice
// versa).
func ResolveOrientation(v *vars.Vars, pageWidth, pageHeight, imageWidth, imageHeight int) vars.Orientation {
	if v.Orientation != vars.Auto {
		return v.Orientation
	}
	if imageWidth <= 0 || imageHeight <= 0 || pageWidth <= 0 || pageHeight <= 0 {
		return vars.Portrait
	}
	imageIsLandscape := imageWidth > imageHeight
	pageIsLandscape := pageWidth > pageHeight
	if imageIsLandscape != pageIsLandscape {
		return vars.Landscape
	}
	return vars.Portrait
}
