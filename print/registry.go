// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package print

import (
	"github.com/inkraster/raster/printer"
	"github.com/inkraster/raster/vars"
)

func init() {
	printer.Register(&printer.Printer{
		LongName:    "Inkraster D1 Desktop",
		DriverID:    "inkraster-d1",
		FamilyID:    "escp2",
		ModelNumber: 100,
		Family:      newFamily(desktopModel),
		DefaultVars: vars.DefaultVars(),
	})
	printer.Register(&printer.Printer{
		LongName:    "Inkraster W1 Wide Format",
		DriverID:    "inkraster-w1",
		FamilyID:    "escp2",
		ModelNumber: 200,
		Family:      newFamily(wideFormatModel),
		DefaultVars: vars.DefaultVars(),
	})
}
