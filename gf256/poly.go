// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over GF(256).  Coefficients are stored most
// significant first: p[0] is the leading coefficient of the term of
// degree len(p)-1.  The empty Poly is the zero polynomial, of degree -1.
//
// Operations on polynomials allocate their results and never modify
// their operands.
type Poly []byte

// Degree returns the degree of p, -1 for the empty Poly.
// Leading zero coefficients are counted.
func (p Poly) Degree() int { return len(p) - 1 }

// Shift returns p multiplied by x^n.
func (p Poly) Shift(n int) Poly {
	if len(p) == 0 {
		return nil
	}
	q := make(Poly, len(p)+n)
	copy(q, p)
	return q
}

// Scale returns p with every coefficient multiplied by k.
func (f *Field) Scale(p Poly, k byte) Poly {
	if len(p) == 0 {
		return nil
	}
	q := make(Poly, len(p))
	for i, c := range p {
		q[i] = f.Mul(c, k)
	}
	return q
}

// MulPoly returns the product of a and b.
func (f *Field) MulPoly(a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	q := make(Poly, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			q[i+j] ^= f.Mul(x, y)
		}
	}
	return q
}

// Mod returns the remainder of a divided by b.  The remainder always
// has exactly b.Degree() coefficients, padded with leading zeros.
// Mod panics if b is empty or its leading coefficient is zero.
func (f *Field) Mod(a, b Poly) Poly {
	if len(b) == 0 || b[0] == 0 {
		panic("gf256: invalid divisor")
	}
	n := b.Degree()
	if len(a) < n {
		r := make(Poly, n)
		copy(r[n-len(a):], a)
		return r
	}
	t := make(Poly, len(a))
	copy(t, a)
	for off := 0; len(t)-off > n; off++ {
		lead := t[off]
		if lead == 0 {
			continue
		}
		for i, c := range f.Scale(b, f.Div(lead, b[0])) {
			t[off+i] ^= c
		}
		if t[off] != 0 {
			panic("gf256: internal error")
		}
	}
	return t[len(t)-n:]
}
