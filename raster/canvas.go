// seehuhn.de/go/comb - curvature combs for glyph outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/comb"
)

// Canvas draws into an RGBA image.  It implements [comb.Surface].
//
// Paths are given in user space and mapped to pixel coordinates using
// CTM.  Pixel (0, 0) is the top-left corner of the image.
type Canvas struct {
	Img *image.RGBA
	CTM matrix.Matrix

	r     *Rasteriser
	mask  *image.Alpha
	path  *path.Data
	saved []matrix.Matrix
}

// NewCanvas returns a canvas which draws into img, using the identity
// transformation.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{
		Img:  img,
		CTM:  matrix.Identity,
		r:    NewRasteriser(clip),
		mask: image.NewAlpha(b),
		path: &path.Data{},
	}
}

// FitTransform returns a transformation which maps the rectangle box, given
// in y-up font units, into an image of the given size with a margin of
// margin pixels on every side.  The aspect ratio is preserved and the
// result is centred.
func FitTransform(box rect.Rect, width, height int, margin float64) matrix.Matrix {
	bw := box.URx - box.LLx
	bh := box.URy - box.LLy
	aw := float64(width) - 2*margin
	ah := float64(height) - 2*margin
	if !(bw > 0 && bh > 0 && aw > 0 && ah > 0) {
		return matrix.Identity
	}

	s := math.Min(aw/bw, ah/bh)
	tx := (float64(width)-s*bw)/2 - s*box.LLx
	ty := (float64(height)+s*bh)/2 + s*box.LLy
	return matrix.Scale(s, -s).Translate(tx, ty)
}

// Clear fills the whole image with a single colour.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Save pushes the current transformation onto a stack.
func (c *Canvas) Save() {
	c.saved = append(c.saved, c.CTM)
}

// Restore pops the transformation stored by the matching call to Save.
// Calls without a matching Save are ignored.
func (c *Canvas) Restore() {
	n := len(c.saved)
	if n == 0 {
		return
	}
	c.CTM = c.saved[n-1]
	c.saved = c.saved[:n-1]
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(p vec.Vec2) {
	c.path.MoveTo(p)
}

// LineTo appends a straight line to the current subpath.
func (c *Canvas) LineTo(p vec.Vec2) {
	c.path.LineTo(p)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// Fill paints the interior of the current path using the nonzero winding
// rule.
func (c *Canvas) Fill(col comb.Color) {
	c.r.CTM = c.CTM
	c.paint(col, c.r.FillNonZero, c.path)
}

// FillOutline paints a glyph contour set using the even-odd rule.  This is
// used to draw the glyph underneath its comb.
func (c *Canvas) FillOutline(contours []comb.Contour, col color.Color) {
	p := &path.Data{}
	for _, cont := range contours {
		sub := cont.Path()
		p.Cmds = append(p.Cmds, sub.Cmds...)
		p.Coords = append(p.Coords, sub.Coords...)
	}
	c.r.CTM = c.CTM
	c.paint(col, c.r.FillEvenOdd, p)
}

type fillFunc func(p *path.Data, emit func(y, xMin int, coverage []float32))

// paint composites col onto the image, using the coverage produced by fill
// as the mask.
func (c *Canvas) paint(col color.Color, fill fillFunc, p *path.Data) {
	touched := image.Rectangle{}
	fill(p, func(y, xMin int, coverage []float32) {
		row := c.mask.PixOffset(xMin, y)
		for i, v := range coverage {
			c.mask.Pix[row+i] = uint8(v*255 + 0.5)
		}
		touched = touched.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if touched.Empty() {
		return
	}

	draw.DrawMask(c.Img, touched, image.NewUniform(col), image.Point{}, c.mask, touched.Min, draw.Over)

	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		row := c.mask.PixOffset(touched.Min.X, y)
		clear(c.mask.Pix[row : row+touched.Dx()])
	}
}

var _ comb.Surface = (*Canvas)(nil)
