// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

// A Surface is a pixel display that accepts rectangular copies.
// Copy copies a width×height block of pixels, stride pixels per row
// in pix, to the surface at left, top.
type Surface interface {
	Copy(left, top, width, height, stride int, pix []Pixel)
}

// Draw copies the last rendered image to dst with its upper left
// corner at left, top.
func (s *Symbol) Draw(dst Surface, left, top int) error {
	if dst == nil {
		return ErrArgs
	}
	img := s.img
	if img == nil {
		return ErrNotRendered
	}
	dst.Copy(left, top, img.Side, img.Side, img.Side, img.Pix)
	return nil
}

// A Framebuffer is an in-memory Surface.
type Framebuffer struct {
	Width, Height int
	Pix           []Pixel
}

// NewFramebuffer returns a white Framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{width, height, make([]Pixel, width*height)}
	fb.Fill(White)
	return fb
}

// Fill sets all pixels to c.
func (fb *Framebuffer) Fill(c Pixel) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// At returns the pixel at (x,y).  Pixels outside the framebuffer
// are White.
func (fb *Framebuffer) At(x, y int) Pixel {
	if 0 <= x && x < fb.Width && 0 <= y && y < fb.Height {
		return fb.Pix[y*fb.Width+x]
	}
	return White
}

// Copy implements Surface.  The block is clipped to the framebuffer.
func (fb *Framebuffer) Copy(left, top, width, height, stride int, pix []Pixel) {
	if left < 0 {
		width += left
		pix = pix[min(-left, len(pix)):]
		left = 0
	}
	if top < 0 {
		height += top
		pix = pix[min(-top*stride, len(pix)):]
		top = 0
	}
	width = min(width, fb.Width-left)
	height = min(height, fb.Height-top)
	if width <= 0 || height <= 0 {
		return
	}
	for y := 0; y < height; y++ {
		dst := fb.Pix[(top+y)*fb.Width+left:]
		copy(dst[:width], pix[y*stride:y*stride+width])
	}
}
