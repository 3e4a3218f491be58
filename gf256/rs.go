// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// Generator returns the Reed-Solomon generator polynomial of the given
// degree, the product of (x + α^i) for i from 0 to degree-1.
func (f *Field) Generator(degree int) Poly {
	p := Poly{1}
	term := Poly{1, 0}
	for i := 0; i < degree; i++ {
		term[1] = f.Exp(i)
		p = f.MulPoly(p, term)
	}
	return p
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Generator(c)}
}

// Check returns the number of error correction bytes.
func (rs *RSEncoder) Check() int { return rs.c }

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	// The check bytes are the remainder after dividing
	// data padded with c zeros by the generator polynomial.
	rem := rs.f.Mod(Poly(data).Shift(rs.c), rs.gen)
	if len(rem) != rs.c {
		panic("gf256: internal error")
	}
	copy(check, rem)
}

// Parity returns the error correcting code bytes for data.
func (rs *RSEncoder) Parity(data []byte) []byte {
	check := make([]byte, rs.c)
	rs.ECC(data, check)
	return check
}
