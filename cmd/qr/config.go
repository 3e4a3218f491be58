// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/unixdj/badgeqr"
	"github.com/unixdj/badgeqr/coding"

	"github.com/pborman/getopt/v2"
	"gopkg.in/yaml.v3"
)

// A profile holds defaults read from a YAML file, for example:
//
//	version: 2
//	level: m
//	scale: 4
//	margin: 2
//	type: pbm
//	foreground: "1f3f7f"
//	charset: latin-1
type profile struct {
	Version    int    `yaml:"version"`
	Level      string `yaml:"level"`
	Mask       *int   `yaml:"mask"`
	Scale      int    `yaml:"scale"`
	Margin     *int   `yaml:"margin"`
	Type       string `yaml:"type"`
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Charset    string `yaml:"charset"`
}

// loadProfile reads the profile in file fn.  Unknown keys are errors.
func loadProfile(fn string) (*profile, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return parseProfile(b)
}

func parseProfile(b []byte) (*profile, error) {
	var p profile
	d := yaml.NewDecoder(bytes.NewReader(b))
	d.KnownFields(true)
	if err := d.Decode(&p); err != nil && err != io.EOF {
		return nil, err
	}
	return &p, nil
}

var errProfile = errors.New("bad profile value")

// apply copies the profile's values to s, except those whose flags
// isSet reports as given on the command line.
func (p *profile) apply(s *settings, isSet func(rune) bool) error {
	if p.Version != 0 && !isSet('v') {
		v := qr.Version(p.Version)
		if !v.IsValid() {
			return fmt.Errorf("version %d: %w", p.Version, errProfile)
		}
		s.ver = v
	}
	if p.Level != "" && !isSet('l') {
		n := strings.Index("lmqh", strings.ToLower(p.Level))
		if len(p.Level) != 1 || n < 0 {
			return fmt.Errorf("level %q: %w", p.Level, errProfile)
		}
		s.lev = qr.Level(n)
	}
	if p.Mask != nil && !isSet('x') {
		m := coding.Mask(*p.Mask)
		if !m.IsValid() {
			return fmt.Errorf("mask %d: %w", *p.Mask, errProfile)
		}
		s.mask = m
	}
	if p.Scale != 0 && !isSet('s') {
		if p.Scale < 1 || p.Scale > maxScale {
			return fmt.Errorf("scale %d: %w", p.Scale, errProfile)
		}
		s.scale = p.Scale
	}
	if p.Margin != nil && !isSet('m') {
		if *p.Margin < 0 || *p.Margin > maxMargin {
			return fmt.Errorf("margin %d: %w", *p.Margin, errProfile)
		}
		s.border = *p.Margin
	}
	if p.Type != "" && !isSet('t') {
		if _, ok := encoders[p.Type]; !ok {
			return fmt.Errorf("type %q: %w", p.Type, errProfile)
		}
		s.format = p.Type
	}
	for _, c := range []struct {
		name rune
		v    string
		dst  *rgb
	}{
		{'F', p.Foreground, &s.fg},
		{'B', p.Background, &s.bg},
	} {
		if c.v != "" && !isSet(c.name) {
			if err := c.dst.Set(c.v, nil); err != nil {
				return err
			}
		}
	}
	if p.Charset != "" && !isSet('1') && !isSet('k') {
		cs, ok := charsets[strings.ToLower(p.Charset)]
		if !ok {
			return fmt.Errorf("charset %q: %w", p.Charset, errProfile)
		}
		s.charset = cs
	}
	return nil
}

var charsets = map[string]qr.Charset{
	qr.UTF8.String():     qr.UTF8,
	qr.Latin1.String():   qr.Latin1,
	qr.ShiftJIS.String(): qr.ShiftJIS,
}

type rgb struct {
	R, G, B uint8
}

var colours = map[string]rgb{
	"black":   {0x00, 0x00, 0x00},
	"white":   {0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00},
	"green":   {0x00, 0xff, 0x00},
	"blue":    {0x00, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00},
	"cyan":    {0x00, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff},
}

// Pixel returns the RGB565 pixel closest to c.
func (c rgb) Pixel() qr.Pixel { return qr.RGB888(c.R, c.G, c.B) }

func (c *rgb) String() string {
	for k, v := range colours {
		if v == *c && (k == "black" || k == "white") {
			return k
		}
	}
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c *rgb) Set(s string, _ getopt.Option) error {
	if v, ok := colours[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		*c = v
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 24)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n>>8&0xf*0x110000 | n>>4&0xf*0x1100 | n&0xf*0x11
	case 6:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B = uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}
