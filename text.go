// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strings"
)

// PrintBorder is the quiet zone width used by Print.
const PrintBorder = 2

// Print writes the generated matrix to w for terminal debugging, two
// characters per module, light modules as blocks, with a quiet zone
// of PrintBorder modules.
func (s *Symbol) Print(w io.Writer) error {
	if s.m == nil {
		return ErrNotGenerated
	}
	b := bufio.NewWriter(w)
	for y := -PrintBorder; y < s.m.Size+PrintBorder; y++ {
		for x := -PrintBorder; x < s.m.Size+PrintBorder; x++ {
			if s.m.Black(x, y) {
				b.WriteString("  ")
			} else {
				b.WriteString("██")
			}
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// WriteUTF8 writes the generated matrix to w using half block
// characters, two modules per character cell, with a quiet zone of
// border modules.  Light modules are drawn, for display on dark
// terminals.
func (s *Symbol) WriteUTF8(w io.Writer, border int) error {
	if s.m == nil {
		return ErrNotGenerated
	}
	if border < 0 {
		return ErrArgs
	}
	var b strings.Builder
	siz := s.m.Size
	for y := -border; y < siz+border; y += 2 {
		for x := -border; x < siz+border; x++ {
			n := 0
			if s.m.Black(x, y) {
				n = 2
			}
			// The odd row past the quiet zone is left undrawn.
			if y+1 < siz+border && s.m.Black(x, y+1) || y+1 == siz+border {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
