// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"image"

	"github.com/unixdj/badgeqr/gf256"
)

// A Matrix is a square grid of QR code modules with a parallel map of
// reserved modules: finder, alignment and timing patterns, format
// information and the dark module.  Reserved modules never receive
// data and are never masked.
type Matrix struct {
	Version Version
	Size    int // number of modules on a side

	dark     []bool
	reserved []bool
}

// NewMatrix returns a Matrix for version v with the function patterns
// drawn and reserved.
func NewMatrix(v Version) *Matrix {
	siz := v.Size()
	m := &Matrix{
		Version:  v,
		Size:     siz,
		dark:     make([]bool, siz*siz),
		reserved: make([]bool, siz*siz),
	}
	m.finder(0, 0)
	m.finder(siz-7, 0)
	m.finder(0, siz-7)
	if v > 1 {
		m.alignment(siz-7, siz-7)
	}
	m.timing()
	// One lonely black pixel
	m.set(8, siz-8, true)
	m.reserve()
	return m
}

func (m *Matrix) set(x, y int, dark bool) { m.dark[y*m.Size+x] = dark }

// Black reports whether the module at (x, y) is dark.
// Modules outside the grid are light.
func (m *Matrix) Black(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.dark[y*m.Size+x]
}

// Stride returns the number of bytes per row in Bitmap.
func (m *Matrix) Stride() int { return (m.Size + 7) / 8 }

// Bitmap returns the modules packed row by row, Stride bytes per
// row, most significant bit first, 1 for dark.
func (m *Matrix) Bitmap() []byte {
	stride := m.Stride()
	b := make([]byte, stride*m.Size)
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if m.dark[y*m.Size+x] {
				b[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return b
}

// Reserved reports whether the module at (x, y) is a function module.
func (m *Matrix) Reserved(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.reserved[y*m.Size+x]
}

// finder draws a position box with upper left corner at x0, y0.
func (m *Matrix) finder(x0, y0 int) {
	for i := 0; i < 7; i++ {
		m.set(x0+i, y0, true)
		m.set(x0+i, y0+6, true)
		m.set(x0, y0+i, true)
		m.set(x0+6, y0+i, true)
	}
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			m.set(x0+x, y0+y, true)
		}
	}
}

// alignment draws a small box centred at cx, cy.
func (m *Matrix) alignment(cx, cy int) {
	m.set(cx, cy, true)
	for i := -2; i <= 2; i++ {
		m.set(cx-2, cy+i, true)
		m.set(cx+2, cy+i, true)
		m.set(cx+i, cy-2, true)
		m.set(cx+i, cy+2, true)
	}
}

// timing draws the timing patterns on row and column 6.
func (m *Matrix) timing() {
	for i := 8; i <= m.Size-8; i += 2 {
		m.set(6, i, true)
		m.set(i, 6, true)
	}
}

// reserve marks function modules, including the format information
// areas, as reserved.
func (m *Matrix) reserve() {
	siz := m.Size
	r := m.reserved
	// Top left box, separators and format information: 9x9.
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			r[y*siz+x] = true
		}
	}
	// Top right 8x9 and bottom left 9x8.
	for i := 0; i < 9; i++ {
		for j := siz - 8; j < siz; j++ {
			r[i*siz+j] = true
			r[j*siz+i] = true
		}
	}
	// Alignment box.
	if m.Version > 1 {
		for y := siz - 9; y <= siz-5; y++ {
			for x := siz - 9; x <= siz-5; x++ {
				r[y*siz+x] = true
			}
		}
	}
	// Timing.
	for i := 8; i <= siz-8; i++ {
		r[i*siz+6] = true
		r[6*siz+i] = true
	}
	r[(siz-8)*siz+8] = true
}

// ScanOrder returns the coordinates of all data modules in zigzag
// scan order: from the bottom right corner, in two module wide
// columns alternately going up and down, right module first,
// skipping the vertical timing column and reserved modules.
func (m *Matrix) ScanOrder() []image.Point {
	siz := m.Size
	pts := make([]image.Point, 0, m.Version.Bytes()*8+m.Version.Remainder())
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if !m.reserved[y*siz+xx] {
					pts = append(pts, image.Pt(xx, y))
				}
			}
		}
		up = !up
	}
	return pts
}

// Place writes the bits of codewords, most significant first, to the
// data modules in zigzag scan order.  The remainder modules are left
// light.  Place panics unless codewords fill the QR code exactly.
func (m *Matrix) Place(codewords []byte) {
	pts := m.ScanOrder()
	v := m.Version
	if len(codewords) != v.Bytes() ||
		len(pts) != len(codewords)*8+v.Remainder() {
		panic("qr: internal error: codeword placement")
	}
	for i, p := range pts[:len(codewords)*8] {
		m.set(p.X, p.Y, codewords[i>>3]>>(7&^i)&1 != 0)
	}
}

// ApplyMask inverts the unreserved modules selected by mask.
func (m *Matrix) ApplyMask(mask Mask) {
	siz := m.Size
	for row := 0; row < siz; row++ {
		for col := 0; col < siz; col++ {
			if i := row*siz + col; !m.reserved[i] && mask.Invert(row, col) {
				m.dark[i] = !m.dark[i]
			}
		}
	}
}

// Format information BCH code.
var (
	formatPoly = gf256.Poly{1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1}
	formatMask = uint16(0b101010000010010)
)

// FormatBits returns the 15 bit format information for the given
// level and mask: 2 bits of level, 3 bits of mask and 10 bits of BCH
// code, masked.  The first bit in reading order is bit 14.
func FormatBits(l Level, mask Mask) uint16 {
	v := l.FormatCode()<<3 | int(mask)
	p := make(gf256.Poly, 15)
	for i := 0; i < 5; i++ {
		p[i] = byte(v >> (4 - i) & 1)
	}
	copy(p[5:], Field.Mod(p, formatPoly))
	var fb uint16
	for _, c := range p {
		fb = fb<<1 | uint16(c)
	}
	return fb ^ formatMask
}

// SetFormat writes the format information for the given level and mask
// into both copies, around the top left box and split between the top
// right and bottom left boxes.
func (m *Matrix) SetFormat(l Level, mask Mask) {
	fb := FormatBits(l, mask)
	siz := m.Size
	bit := func(i int) bool { return fb>>i&1 != 0 }
	for i := 0; i < 15; i++ {
		// Around the top left box, skipping timing.
		switch {
		case i < 6:
			m.set(8, i, bit(i))
		case i < 8:
			m.set(8, i+1, bit(i))
		case i == 8:
			m.set(7, 8, bit(i))
		default:
			m.set(14-i, 8, bit(i))
		}
		// Below top right and right of bottom left boxes.
		if i < 8 {
			m.set(siz-1-i, 8, bit(i))
		} else {
			m.set(8, siz-15+i, bit(i))
		}
	}
}

// Encode returns a Matrix holding content in a QR code with the given
// version, level and mask.
func Encode(v Version, l Level, mask Mask, content []byte) (*Matrix, error) {
	if !mask.IsValid() {
		return nil, ErrMask
	}
	data, err := DataCodewords(v, l, content)
	if err != nil {
		return nil, err
	}
	m := NewMatrix(v)
	m.Place(Codewords(v, l, data))
	m.ApplyMask(mask)
	m.SetFormat(l, mask)
	return m, nil
}
