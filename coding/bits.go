// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

// ErrContentTooLong is matched by a CapacityError.
var ErrContentTooLong = errors.New("qr: content too long")

// A CapacityError reports content that does not fit in a QR code of
// the given version and level.
type CapacityError struct {
	Version Version
	Level   Level
	Len     int // content length in bytes
	Max     int // maximum content length in bytes
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d bytes do not fit in version %s-%s code "+
		"(maximum %d)", e.Len, e.Version, e.Level, e.Max)
}

func (e *CapacityError) Is(target error) bool { return target == ErrContentTooLong }

// Byte mode segment header.
const (
	byteIndicator = 4 // 0100
	byteCountLen  = 8 // character count bits, versions 1 to 9
	terminatorLen = 4
)

// Bits accumulates a bit stream, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, vtab[v].bytes)}
}

func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v to b.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBytes appends the bytes of s to b, 8 bits each.
func (b *Bits) WriteBytes(s []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, s...)
		b.nbit += len(s) * 8
		return
	}
	for _, c := range s {
		b.Write(uint32(c), 8)
	}
}

// PadTo adds up to terminatorLen zero bits to b, rounds it up to a
// whole byte and fills it to n bytes with alternating 0xec and 0x11.
func (b *Bits) PadTo(n int) {
	if b.nbit > n*8 {
		panic("qr: too much data")
	}
	b.nbit = min(b.nbit+terminatorLen, n*8)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); len(b.b) < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = len(b.b) * 8
}

// WriteSegment writes a byte mode segment holding content to b.
func (b *Bits) WriteSegment(content []byte) {
	b.Write(byteIndicator, 4)
	b.Write(uint32(len(content)), byteCountLen)
	b.WriteBytes(content)
}

// DataCodewords returns the byte mode encoding of content, with
// terminator and padding, filling the data capacity of a QR code
// with the given version and level.
func DataCodewords(v Version, l Level, content []byte) ([]byte, error) {
	if err := check(v, l); err != nil {
		return nil, err
	}
	if max := v.MaxContent(l); len(content) > max {
		return nil, &CapacityError{v, l, len(content), max}
	}
	b := NewBits(v)
	b.WriteSegment(content)
	b.PadTo(v.DataBytes(l))
	return b.Bytes(), nil
}
