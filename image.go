// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
)

// A Pixel is an RGB565 colour, as used by small LCD panels:
// 5 bits of red, 6 of green and 5 of blue.
type Pixel uint16

const (
	Black Pixel = 0x0000
	White Pixel = 0xffff
)

// RGB888 returns the Pixel closest to the 24 bit colour r, g, b.
func RGB888(r, g, b uint8) Pixel {
	return Pixel(r)&0xf8<<8 | Pixel(g)&0xfc<<3 | Pixel(b)>>3
}

// Gray returns the Pixel for the grey level l.
func Gray(l uint8) Pixel { return RGB888(l, l, l) }

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p >> 11)
	g = uint32(p >> 5 & 0x3f)
	b = uint32(p & 0x1f)
	r = (r<<3 | r>>2) * 0x101
	g = (g<<2 | g>>4) * 0x101
	b = (b<<3 | b>>2) * 0x101
	return r, g, b, 0xffff
}

// PixelModel converts colours to Pixels.
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return RGB888(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// An Image is a rendered QR code: a square of Side×Side pixels,
// Scale pixels per module, with a quiet zone of Border modules.
// It implements image.Image.
type Image struct {
	Pix    []Pixel // pixels, row by row
	Side   int     // number of pixels on a side
	Scale  int     // number of image pixels per QR module
	Border int     // quiet zone width in modules

	palette [2]Pixel
}

func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.Side, img.Side) }

func (img *Image) ColorModel() color.Model { return PixelModel }

func (img *Image) At(x, y int) color.Color { return img.PixelAt(x, y) }

// PixelAt returns the pixel at (x,y).  Pixels outside the image are
// light.
func (img *Image) PixelAt(x, y int) Pixel {
	if 0 <= x && x < img.Side && 0 <= y && y < img.Side {
		return img.Pix[y*img.Side+x]
	}
	return img.palette[0]
}

// Black reports whether the pixel at (x,y) has the dark colour.
func (img *Image) Black(x, y int) bool {
	return img.PixelAt(x, y) == img.palette[1] && img.palette[0] != img.palette[1]
}

func (s *Symbol) palette() [2]Pixel {
	if s.Palette != nil {
		return *s.Palette
	}
	return [2]Pixel{White, Black}
}

// Render rasterises the generated matrix at scale pixels per module,
// with no quiet zone.  The image has Size()*scale pixels on a side.
func (s *Symbol) Render(scale int) (*Image, error) {
	return s.RenderBorder(scale, 0)
}

// RenderBorder rasterises the generated matrix at scale pixels per
// module, surrounded by a quiet zone border modules wide.  The image
// is kept by the Symbol for Draw.
func (s *Symbol) RenderBorder(scale, border int) (*Image, error) {
	s.img = nil
	if s.m == nil {
		return nil, ErrNotGenerated
	}
	if scale < 1 || border < 0 {
		return nil, ErrArgs
	}
	pal := s.palette()
	siz := s.m.Size
	side := (siz + 2*border) * scale
	img := &Image{
		Pix:     make([]Pixel, side*side),
		Side:    side,
		Scale:   scale,
		Border:  border,
		palette: pal,
	}
	row := img.Pix[:0]
	for y := -border; y < siz+border; y++ {
		row = row[len(row):][:side]
		i := 0
		for x := -border; x < siz+border; x++ {
			c := pal[0]
			if s.m.Black(x, y) {
				c = pal[1]
			}
			for j := 0; j < scale; j++ {
				row[i] = c
				i++
			}
		}
		dst := row
		for j := 1; j < scale; j++ {
			dst = dst[len(dst):][:side]
			copy(dst, row)
		}
		row = dst
	}
	s.img = img
	return img, nil
}
