// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/badgeqr/gf256"

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  Blocks shorter by one byte come first.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}

// Codewords returns the final codeword sequence for data codewords
// of a QR code with the given version and level: data split into
// error correction blocks, checksum bytes computed for each and both
// interleaved, data first.  Codewords panics if data does not fill
// the data capacity exactly.
func Codewords(v Version, l Level, data []byte) []byte {
	nd := v.DataBytes(l)
	if len(data) != nd {
		panic("qr: wrong data length")
	}
	lev := vtab[v].level[l]
	b := make([]byte, v.Bytes())
	copy(b, data)
	chk := b[nd:]
	db := nd / lev.nblock
	normal := (db+1)*lev.nblock - nd
	rs := gf256.NewRSEncoder(Field, lev.check)
	for i := 0; i < lev.nblock; i++ {
		if i == normal {
			db++
		}
		rs.ECC(data[:db], chk[:lev.check])
		data, chk = data[db:], chk[lev.check:]
	}
	if lev.nblock == 1 {
		return b
	}
	out := make([]byte, len(b))
	interleave(out[:nd], b[:nd], lev.nblock)
	interleave(out[nd:], b[nd:], lev.nblock)
	return out
}
