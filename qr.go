// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes short byte strings into QR codes of versions 1 to 4
and renders them into RGB565 pixel images for small displays.

Content is always stored in byte mode.  The caller picks the version
and error correction level; the mask is fixed and defaults to 0.
*/
package qr // import "github.com/unixdj/badgeqr"

import (
	"errors"

	"github.com/unixdj/badgeqr/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// A Version is a QR code version from 1 (21x21 modules) to 4 (33x33).
type Version = coding.Version

var (
	ErrArgs         = errors.New("qr: invalid arguments")
	ErrNotGenerated = errors.New("qr: symbol not generated")
	ErrNotRendered  = errors.New("qr: symbol not rendered")
)

// A Symbol is a QR code under construction.  Set Version, Level,
// Mask and Content, then call Generate and Render.  The derived
// state is owned by the Symbol and replaced on every call.
//
// A Symbol must not be used by multiple goroutines at once.
type Symbol struct {
	Version Version     // 1 to 4
	Level   Level       // error correction level
	Mask    coding.Mask // mask pattern, 0 by default
	Content []byte      // data stored in byte mode

	// Palette holds the light and dark pixel colours.
	// If nil, White and Black are used.
	Palette *[2]Pixel

	m   *coding.Matrix
	img *Image
}

// Reset discards the generated matrix and the rendered image.
func (s *Symbol) Reset() {
	s.m = nil
	s.img = nil
}

// Generate builds the module matrix from the Symbol's configuration.
// On error the Symbol is left reset.
func (s *Symbol) Generate() error {
	s.Reset()
	m, err := coding.Encode(s.Version, coding.Level(s.Level), s.Mask, s.Content)
	if err != nil {
		return err
	}
	s.m = m
	return nil
}

// Generated reports whether the Symbol holds a generated matrix.
func (s *Symbol) Generated() bool { return s.m != nil }

// Matrix returns the generated module matrix, or nil.
func (s *Symbol) Matrix() *coding.Matrix { return s.m }

// Size returns the number of modules on a side, or 0 if the Symbol
// is not generated.
func (s *Symbol) Size() int {
	if s.m == nil {
		return 0
	}
	return s.m.Size
}

// Image returns the last rendered image, or nil.
func (s *Symbol) Image() *Image { return s.img }

// Black returns true if the module at (x,y) is dark.
func (s *Symbol) Black(x, y int) bool { return s.m != nil && s.m.Black(x, y) }

// Encode returns a generated Symbol holding content.
func Encode(content []byte, v Version, l Level) (*Symbol, error) {
	s := &Symbol{Version: v, Level: l, Content: content}
	if err := s.Generate(); err != nil {
		return nil, err
	}
	return s, nil
}
