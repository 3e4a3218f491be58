// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// A Charset selects how text is converted to bytes for byte mode.
type Charset int

const (
	UTF8     Charset = iota // no conversion
	Latin1                  // ISO 8859-1, the QR default byte mode charset
	ShiftJIS                // Shift JIS
)

var charsets = [...]struct {
	name string
	enc  encoding.Encoding
}{
	UTF8:     {"utf-8", nil},
	Latin1:   {"latin-1", charmap.ISO8859_1},
	ShiftJIS: {"shift-jis", japanese.ShiftJIS},
}

func (c Charset) String() string {
	if 0 <= c && int(c) < len(charsets) {
		return charsets[c].name
	}
	return strconv.Itoa(int(c))
}

// Bytes converts UTF-8 text to bytes in charset c.
func (c Charset) Bytes(text string) ([]byte, error) {
	if c < 0 || int(c) >= len(charsets) {
		return nil, ErrArgs
	}
	enc := charsets[c].enc
	if enc == nil {
		return []byte(text), nil
	}
	b, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("qr: text not encodable as %s: %w", c, err)
	}
	return b, nil
}

// EncodeText returns a generated Symbol holding text converted to
// charset c.
func EncodeText(text string, c Charset, v Version, l Level) (*Symbol, error) {
	b, err := c.Bytes(text)
	if err != nil {
		return nil, err
	}
	return Encode(b, v, l)
}
