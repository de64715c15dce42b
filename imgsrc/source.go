// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package imgsrc

// Status is the result of pulling one row from an ImageSource.
type Status int

// Valid Status values.
const (
	StatusOK Status = iota
	StatusAbort
)

func (s Status) String() string {
	if s == StatusAbort {
		return "ABORT"
	}
	return "OK"
}

// ImageSource is the row-by-row image reader the pipeline pulls pixels
// through. Rows are delivered top-down; GetRow must be deterministic on
// replay within a page (the weave scheduler and softweave buffering may
// request the same row more than once).
//
// Channel count matches BPP: 1 = gray, 2 = gray+alpha, 3 = RGB, 4 = RGBA or
// CMYK depending on output type, 8 = CMYK16.
type ImageSource interface {
	Init() error
	Reset() error
	Width() int
	Height() int
	BPP() int
	// GetRow fills buf with one row's raw samples and returns StatusAbort if
	// the underlying source failed or the caller cancelled.
	GetRow(buf []byte, row int) (Status, error)

	ProgressInit()
	NoteProgress(current, total int)
	ProgressConclude()

	RotateCCW() error
	RotateCW() error
	Rotate180() error
	FlipHorizontal() error
	FlipVertical() error
	Crop(left, top, right, bottom int) error
	Transpose() error

	AppName() string
}
