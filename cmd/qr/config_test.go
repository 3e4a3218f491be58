// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/badgeqr"
	"github.com/unixdj/badgeqr/coding"
)

func noFlags(rune) bool { return false }

func TestProfile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "badge.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(`
version: 2
level: M
mask: 3
scale: 6
margin: 0
type: pbm
foreground: 1f3f7f
background: yellow
charset: Latin-1
`), 0666))
	p, err := loadProfile(fn)
	require.NoError(t, err)
	var s settings
	require.NoError(t, p.apply(&s, noFlags))
	assert.Equal(t, settings{
		ver:     2,
		lev:     qr.M,
		mask:    3,
		scale:   6,
		border:  0,
		format:  "pbm",
		charset: qr.Latin1,
		fg:      rgb{0x1f, 0x3f, 0x7f},
		bg:      rgb{0xff, 0xff, 0x00},
	}, s)
}

func TestProfileFlagsWin(t *testing.T) {
	p, err := parseProfile([]byte("version: 3\nlevel: h\nmargin: 1\ncharset: shift-jis\n"))
	require.NoError(t, err)
	s := settings{ver: 1, lev: qr.L, border: 4, charset: qr.Latin1}
	require.NoError(t, p.apply(&s, func(r rune) bool {
		return strings.ContainsRune("vm1", r)
	}))
	assert.Equal(t, qr.Version(1), s.ver)
	assert.Equal(t, qr.H, s.lev)
	assert.Equal(t, 4, s.border)
	assert.Equal(t, qr.Latin1, s.charset)
}

func TestProfileEmpty(t *testing.T) {
	p, err := parseProfile(nil)
	require.NoError(t, err)
	s := g
	require.NoError(t, p.apply(&s, noFlags))
	assert.Equal(t, g, s)
}

func TestProfileErrors(t *testing.T) {
	_, err := parseProfile([]byte("colour: red\n"))
	assert.Error(t, err, "unknown key")
	_, err = loadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	for _, in := range []string{
		"version: 5",
		"level: x",
		"level: mm",
		"mask: 8",
		"mask: -1",
		"scale: -2",
		"scale: 4097",
		"scale: 100000",
		"margin: -1",
		"margin: 65",
		"margin: 1000000",
		"type: eps",
		"charset: ebcdic",
	} {
		p, err := parseProfile([]byte(in))
		require.NoError(t, err, in)
		var s settings
		assert.ErrorIs(t, p.apply(&s, noFlags), errProfile, in)
	}
	p, err := parseProfile([]byte("foreground: chartreuse"))
	require.NoError(t, err)
	var s settings
	assert.Error(t, p.apply(&s, noFlags))
}

func TestProfileLimits(t *testing.T) {
	p, err := parseProfile([]byte("scale: 4096\nmargin: 64\n"))
	require.NoError(t, err)
	var s settings
	require.NoError(t, p.apply(&s, noFlags))
	assert.Equal(t, maxScale, s.scale)
	assert.Equal(t, maxMargin, s.border)

	p, err = parseProfile([]byte("scale: 100000\nmargin: 1000000\n"))
	require.NoError(t, err)
	s = settings{scale: 4, border: 4}
	assert.ErrorIs(t, p.apply(&s, noFlags), errProfile)
	assert.Equal(t, 4, s.scale)
	assert.Equal(t, 4, s.border)
}

func TestProfileCommandLine(t *testing.T) {
	// No flags are parsed under test, so the profile applies in full.
	p, err := parseProfile([]byte("version: 3\nlevel: q\n"))
	require.NoError(t, err)
	var s settings
	require.NoError(t, p.apply(&s, flagSet))
	assert.False(t, flagSet('v'))
	assert.Equal(t, qr.Version(3), s.ver)
	assert.Equal(t, qr.Q, s.lev)
}

func TestColour(t *testing.T) {
	for _, c := range []struct {
		in   string
		want rgb
		str  string
	}{
		{"black", rgb{0, 0, 0}, "black"},
		{"White", rgb{0xff, 0xff, 0xff}, "white"},
		{"f80", rgb{0xff, 0x88, 0x00}, "ff8800"},
		{"123456", rgb{0x12, 0x34, 0x56}, "123456"},
	} {
		var v rgb
		require.NoError(t, v.Set(c.in, nil), c.in)
		assert.Equal(t, c.want, v, c.in)
		assert.Equal(t, c.str, v.String(), c.in)
	}
	for _, in := range []string{"", "12", "1234", "1234567", "xyz"} {
		var v rgb
		assert.Error(t, v.Set(in, nil), in)
	}
	assert.Equal(t, qr.Pixel(0xf800), rgb{0xff, 0, 0}.Pixel())
}

func TestFitVersion(t *testing.T) {
	for l := qr.L; l <= qr.H; l++ {
		prev := 0
		for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
			n := v.MaxContent(coding.Level(l))
			got, ok := fitVersion(n, l)
			assert.True(t, ok)
			assert.Equal(t, v, got)
			got, ok = fitVersion(prev+1, l)
			assert.True(t, ok)
			assert.Equal(t, v, got)
			prev = n
		}
		_, ok := fitVersion(prev+1, l)
		assert.False(t, ok)
	}
}

func TestASCII(t *testing.T) {
	s, err := qr.Encode([]byte("ascii"), 1, qr.L)
	require.NoError(t, err)
	old := g.border
	defer func() { g.border = old }()
	g.border = 1
	var b strings.Builder
	require.NoError(t, ascii(s, &b))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 23)
	assert.Equal(t, strings.Repeat(" ", 46), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  "+strings.Repeat("#", 14)+"  "))
	assert.Equal(t, qr.ErrNotGenerated, ascii(&qr.Symbol{}, &b))
}
