// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image of img to w, for use
// with netpbm.  Pixels of the dark palette colour are black, others
// are white.
func (img *Image) EncodePBM(w io.Writer) error {
	if img == nil || img.Side <= 0 || len(img.Pix) != img.Side*img.Side {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(img.Side)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (img.Side+7)/8)
	for y := 0; y < img.Side; y++ {
		pbmRow(row, img, y)
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of img in PBM format, 1 bit per pixel,
// most significant first, 1 is black.
func pbmRow(row []byte, img *Image, y int) {
	for i := range row {
		row[i] = 0
	}
	for x := 0; x < img.Side; x++ {
		if img.Black(x, y) {
			row[x>>3] |= 0x80 >> (x & 7)
		}
	}
}
