// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr encodes a string as a QR code of version 1 to 4.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/badgeqr"
	"github.com/unixdj/badgeqr/coding"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

// settings hold the resolved command line and profile options.
type settings struct {
	ver     qr.Version  // QR version, 0 for smallest fitting
	lev     qr.Level    // QR correction level
	mask    coding.Mask // mask pattern
	scale   int         // image pixels per module
	border  int         // quiet zone modules
	format  string      // output format
	fn      string      // output file name
	charset qr.Charset  // byte mode charset
	bg, fg  rgb         // colours
	profile string      // YAML profile file name
	debug   bool        // debug logging
}

var g = settings{
	scale:  4,
	border: 4,
	bg:     rgb{0xff, 0xff, 0xff},
	fg:     rgb{0x00, 0x00, 0x00},
}

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "qr"})

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator for small displays\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Data is stored in byte mode, UTF-8 unless -1 or
-k is given.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

// Limits on scale and margin, for flags and profiles alike.
const (
	maxScale  = 1 << 12
	maxMargin = 64
)

// flagSet reports whether the flag name was given on the command line.
func flagSet(name rune) bool { return getopt.IsSet(name) }

var formats = []string{"png", "pbm", "utf8", "ascii", "dump"}

var encoders = map[string]func(*qr.Symbol, io.Writer) error{
	"png": func(s *qr.Symbol, w io.Writer) error {
		img, err := s.RenderBorder(g.scale, g.border)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	},
	"pbm": func(s *qr.Symbol, w io.Writer) error {
		img, err := s.RenderBorder(g.scale, g.border)
		if err != nil {
			return err
		}
		return img.EncodePBM(w)
	},
	"utf8": func(s *qr.Symbol, w io.Writer) error {
		return s.WriteUTF8(w, g.border)
	},
	"ascii": ascii,
	"dump":  (*qr.Symbol).Print,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3 or 6 hex digits or a basic colour name; `+
		`only for types png and pbm`, "RGB|name")
	latin1 := getopt.Bool('1', "convert data to Latin-1")
	sjis := getopt.Bool('k', "convert data to Shift JIS")
	getopt.Flag(&g.debug, 'd', "log debugging information and "+
		"dump the symbol to standard error")
	getopt.Flag(&g.profile, 'c', "read defaults from YAML profile; "+
		"flags given on the command line take precedence", "file")
	border := getopt.Unsigned('m', 4, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: maxMargin},
		`quiet zone modules; ignored for type dump`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 4},
		"QR code version [smallest that fits]", "ver")
	mask := getopt.Unsigned('x', 0, &getopt.UnsignedLimit{Base: 0, Bits: 3, Min: 0, Max: 7},
		"mask pattern", "mask")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: maxScale},
		`image pixels per QR module; `+
			`only for types png and pbm`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if *latin1 && *sjis {
		fmt.Fprintln(os.Stderr, "-1 and -k are incompatible")
		usage()
	}
	g.scale = int(*scale)
	g.border = int(*border)
	g.ver = qr.Version(*ver)
	g.mask = coding.Mask(*mask)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	g.format = *ff
	switch {
	case *latin1:
		g.charset = qr.Latin1
	case *sjis:
		g.charset = qr.ShiftJIS
	}
	if g.debug {
		logger.SetLevel(log.DebugLevel)
	}
	if g.profile != "" {
		p, err := loadProfile(g.profile)
		if err != nil {
			logger.Fatal("profile", "err", err)
		}
		if err := p.apply(&g, flagSet); err != nil {
			logger.Fatal("profile", "file", g.profile, "err", err)
		}
		logger.Debug("profile loaded", "file", g.profile)
	}
	if g.format == "" {
		if !fno.Seen() && g.fn == "" &&
			isatty.IsTerminal(uintptr(syscall.Stdout)) {
			g.format = "utf8"
		} else {
			g.format = "png"
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

// fitVersion returns the smallest version holding n bytes at level l.
func fitVersion(n int, l qr.Level) (qr.Version, bool) {
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		if n <= v.MaxContent(coding.Level(l)) {
			return v, true
		}
	}
	return 0, false
}

func main() {
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			logger.Fatal(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	content, err := g.charset.Bytes(s)
	if err != nil {
		logger.Fatal(err)
	}
	if g.ver == 0 {
		var ok bool
		if g.ver, ok = fitVersion(len(content), g.lev); !ok {
			logger.Fatal(&coding.CapacityError{
				Version: coding.MaxVersion,
				Level:   coding.Level(g.lev),
				Len:     len(content),
				Max:     coding.MaxVersion.MaxContent(coding.Level(g.lev)),
			})
		}
	}
	sym := &qr.Symbol{
		Version: g.ver,
		Level:   g.lev,
		Mask:    g.mask,
		Content: content,
		Palette: &[2]qr.Pixel{g.bg.Pixel(), g.fg.Pixel()},
	}
	logger.Debug("encoding", "version", g.ver, "level", g.lev,
		"mask", g.mask, "charset", g.charset, "bytes", len(content),
		"max", g.ver.MaxContent(coding.Level(g.lev)))
	if err := sym.Generate(); err != nil {
		logger.Fatal(err)
	}
	logger.Debug("generated", "size", sym.Size(),
		"data", g.ver.DataBytes(coding.Level(g.lev)),
		"ec", g.ver.ECBytes(coding.Level(g.lev)))
	if g.debug {
		sym.Print(os.Stderr)
	}
	write(sym)
}

func write(s *qr.Symbol) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			logger.Fatal(err)
		}
	}
	err := encoders[g.format](s, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		logger.Fatal(err)
	}
	logger.Debug("written", "format", g.format, "file", g.fn)
}

func ascii(s *qr.Symbol, w io.Writer) error {
	m := s.Matrix()
	if m == nil {
		return qr.ErrNotGenerated
	}
	siz := m.Size
	bm, stride := m.Bitmap(), m.Stride()
	bord := g.border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if 0 <= x && x < siz && 0 <= y && y < siz &&
				bm[y*stride+x>>3]&(0x80>>(x&7)) != 0 {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
