// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGenerator(t *testing.T) {
	for _, tt := range []struct {
		degree int
		logs   []int // logarithms of coefficients, leading first
	}{
		{7, []int{0, 87, 229, 146, 149, 238, 102, 21}},
		{10, []int{0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45}},
	} {
		g := qrField.Generator(tt.degree)
		assert.Equal(t, tt.degree, g.Degree())
		logs := make([]int, len(g))
		for i, c := range g {
			logs[i] = qrField.Log(c)
		}
		assert.Equal(t, tt.logs, logs, "degree %d", tt.degree)
	}
	assert.Equal(t, Poly{1}, qrField.Generator(0))
}

func TestECCKnown(t *testing.T) {
	for _, tt := range []struct {
		name       string
		data, want []byte
	}{
		{
			"01234567 1-M",
			[]byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
				0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11},
			[]byte{0xa5, 0x24, 0xd4, 0xc1, 0xed, 0x36, 0xc7, 0x87,
				0x2c, 0x55},
		},
		{
			"HELLO WORLD 1-M",
			[]byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236,
				17, 236, 17, 236, 17},
			[]byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23},
		},
	} {
		rs := NewRSEncoder(qrField, len(tt.want))
		assert.Equal(t, tt.want, rs.Parity(tt.data), tt.name)
	}
}

// lfsrECC computes check bytes with a division shift register,
// independently of Poly.
func lfsrECC(f *Field, data []byte, c int) []byte {
	gen := f.Generator(c)[1:]
	reg := make([]byte, c)
	for _, d := range data {
		fb := d ^ reg[0]
		copy(reg, reg[1:])
		reg[c-1] = 0
		for i, g := range gen {
			reg[i] ^= f.Mul(g, fb)
		}
	}
	return reg
}

func TestECCProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.IntRange(1, 30).Draw(t, "c")
		data := rapid.SliceOfN(rapid.Byte(), 1, 80).Draw(t, "data")
		rs := NewRSEncoder(qrField, c)
		check := rs.Parity(data)
		assert.Len(t, check, c)
		assert.Equal(t, lfsrECC(qrField, data, c), check)

		// data followed by check bytes is a multiple of the generator.
		code := append(append(Poly(nil), data...), check...)
		assert.Equal(t, make(Poly, c), qrField.Mod(code, qrField.Generator(c)))
	})
}

func TestECCShortCheck(t *testing.T) {
	rs := NewRSEncoder(qrField, 10)
	assert.Equal(t, 10, rs.Check())
	assert.Panics(t, func() { rs.ECC([]byte{1, 2, 3}, make([]byte, 9)) })
}
