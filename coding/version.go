// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strconv"

	"github.com/unixdj/badgeqr/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions 1 to 4 are supported.
type Version int

const (
	MinVersion Version = 1 // Minimum QR version
	MaxVersion Version = 4 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a supported version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a QR code of
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	vt := &vtab[v]
	return vt.bytes - vt.level[l].nblock*vt.level[l].check
}

// ECBytes returns the total number of error correction codewords
// in a QR code with the given version and level.
func (v Version) ECBytes(l Level) int {
	lev := vtab[v].level[l]
	return lev.nblock * lev.check
}

// Bytes returns the total number of codewords in a QR code of
// version v.
func (v Version) Bytes() int { return vtab[v].bytes }

// Remainder returns the number of modules left over after placing
// all codewords of version v.
func (v Version) Remainder() int { return vtab[v].remainder }

// MaxContent returns the maximum length of byte mode content in a QR
// code with the given version and level.  The mode indicator,
// character count and terminator take two codewords.
func (v Version) MaxContent(l Level) int { return v.DataBytes(l) - 2 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is a valid level.
func (l Level) IsValid() bool { return L <= l && l <= H }

// FormatCode returns the 2 bit level indicator stored in the format
// information: L=01, M=00, Q=11, H=10.
func (l Level) FormatCode() int { return int(l) ^ 1 }

// A version describes metadata associated with a version.
type version struct {
	bytes     int // total codewords
	remainder int // remainder bits
	level     [4]level
}

type level struct {
	nblock int // error correction blocks
	check  int // error correction codewords per block
}

// Version table, from ISO/IEC 18004 tables 1 and 9.
var vtab = [MaxVersion + 1]version{
	1: {26, 0, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}},
	2: {44, 7, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},
	3: {70, 7, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},
	4: {100, 7, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},
}

func check(v Version, l Level) error {
	if !v.IsValid() {
		return ErrVersion
	}
	if !l.IsValid() {
		return ErrLevel
	}
	return nil
}
