// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command rasterprint-testpattern renders one of a handful of synthetic
// test images and drives it through the print pipeline, writing the raw
// ESC/P2 byte stream to a file (or stdout) and, when stdout is a
// terminal, an ANSI preview alongside it.
//
// This mirrors the companion-CLI convention periph device packages follow
// (e.g. a `cmd/` tool next to the package that exercises real hardware),
// adapted here to exercise the raster pipeline without a physical
// printer attached.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fogleman/gg"

	"github.com/inkraster/raster/imgsrc"
	"github.com/inkraster/raster/printer"
)

func main() {
	pattern := flag.String("pattern", "cyan-ramp", "test pattern: cyan-ramp, checkerboard, monochrome-threshold")
	driver := flag.String("driver", "inkraster-d1", "registered printer driver id")
	width := flag.Int("width", 256, "test image width, in pixels")
	height := flag.Int("height", 256, "test image height, in pixels")
	out := flag.String("out", "", "output file for the raw ESC/P2 stream (default: stdout)")
	flag.Parse()

	dc := gg.NewContext(*width, *height)
	if err := renderPattern(dc, *pattern); err != nil {
		slog.Error("render pattern", "error", err)
		os.Exit(1)
	}

	p, ok := printer.GetByDriver(*driver)
	if !ok {
		slog.Error("unknown driver", "driver", *driver)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("create output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	v := p.DefaultVars
	p.DefaultParameters(&v)
	img := imgsrc.NewFromImage(dc.Image())
	status, err := p.Print(&v, img, imgsrc.WriterSink{W: w})
	if err != nil {
		slog.Error("print", "error", err, "status", status)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "print status:", status)
}

func renderPattern(dc *gg.Context, pattern string) error {
	w, h := dc.Width(), dc.Height()
	switch pattern {
	case "cyan-ramp":
		for x := 0; x < w; x++ {
			t := float64(x) / float64(w-1)
			dc.SetRGB(1-t, 1, 1)
			dc.DrawRectangle(float64(x), 0, 1, float64(h))
			dc.Fill()
		}
	case "checkerboard":
		const cell = 16
		for cy := 0; cy*cell < h; cy++ {
			for cx := 0; cx*cell < w; cx++ {
				if (cx+cy)%2 == 0 {
					dc.SetRGB(0, 0, 0)
				} else {
					dc.SetRGB(1, 1, 1)
				}
				dc.DrawRectangle(float64(cx*cell), float64(cy*cell), cell, cell)
				dc.Fill()
			}
		}
	case "monochrome-threshold":
		dc.SetRGB(1, 1, 1)
		dc.Clear()
		dc.SetRGB(0, 0, 0)
		dc.DrawCircle(float64(w)/2, float64(h)/2, float64(w)/3)
		dc.Fill()
	default:
		return fmt.Errorf("unknown pattern %q", pattern)
	}
	return nil
}
