// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package printer

// Unit is the measurement system a Papersize's dimensions are expressed in.
// Both units are stored internally as 1/72 inch points; Unit only affects
// how a size is described back to a caller.
type Unit int

// Valid Unit values.
const (
	English Unit = iota
	Metric
)

// Papersize describes one entry of the static page-size table. Width and
// Height of zero denote a roll-feed variable axis (the dimension is set by
// the media loaded, not the paper size itself).
type Papersize struct {
	Name        string
	DisplayText string
	Width       int
	Height      int
	Top         int
	Left        int
	Bottom      int
	Right       int
	Unit        Unit
}

// papersizes is the fixed static table, modeled on a handful of common ISO
// and US sizes plus a roll-feed entry. Dimensions are in points (1/72 in).
var papersizes = []Papersize{
	{Name: "Letter", DisplayText: "US Letter", Width: 612, Height: 792, Top: 18, Left: 18, Bottom: 18, Right: 18, Unit: English},
	{Name: "Legal", DisplayText: "US Legal", Width: 612, Height: 1008, Top: 18, Left: 18, Bottom: 18, Right: 18, Unit: English},
	{Name: "A4", DisplayText: "A4", Width: 595, Height: 842, Top: 14, Left: 14, Bottom: 14, Right: 14, Unit: Metric},
	{Name: "A5", DisplayText: "A5", Width: 420, Height: 595, Top: 14, Left: 14, Bottom: 14, Right: 14, Unit: Metric},
	{Name: "4x6", DisplayText: "4x6 in", Width: 288, Height: 432, Top: 0, Left: 0, Bottom: 0, Right: 0, Unit: English},
	{Name: "Roll", DisplayText: "Roll Feed", Width: 612, Height: 0, Top: 0, Left: 0, Bottom: 0, Right: 0, Unit: English},
}

// PapersizeByName returns the table entry with the given name.
func PapersizeByName(name string) (Papersize, bool) {
	for _, p := range papersizes {
		if p.Name == name {
			return p, true
		}
	}
	return Papersize{}, false
}

// PapersizeCount returns the number of entries in the static table.
func PapersizeCount() int { return len(papersizes) }

// PapersizeByIndex returns the i'th entry of the static table.
func PapersizeByIndex(i int) (Papersize, bool) {
	if i < 0 || i >= len(papersizes) {
		return Papersize{}, false
	}
	return papersizes[i], true
}

// PapersizeBySize returns the smallest registered non-roll papersize that
// can hold a page of the given width and height (in points), auto-selecting
// the page size the way a driver infers it from the document geometry
// rather than from an explicit media_size string. Roll-feed entries (height
// == 0) are only returned when no fixed size fits, since a roll always
// technically "fits" any height.
func PapersizeBySize(width, height int) (Papersize, bool) {
	var best Papersize
	found := false
	for _, p := range papersizes {
		if p.Height == 0 {
			continue
		}
		if p.Width >= width && p.Height >= height {
			if !found || p.Width*p.Height < best.Width*best.Height {
				best = p
				found = true
			}
		}
	}
	if found {
		return best, true
	}
	for _, p := range papersizes {
		if p.Height == 0 && p.Width >= width {
			return p, true
		}
	}
	return Papersize{}, false
}
