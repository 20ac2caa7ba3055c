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

// Package pdfcanvas draws curvature combs into PDF content streams.
package pdfcanvas

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/comb"
)

// Page is the subset of the PDF content stream writer used by [Canvas].
// It is implemented by [document.Page].
type Page interface {
	PushGraphicsState()
	PopGraphicsState()
	Transform(m matrix.Matrix)
	SetFillColor(c color.Color)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Fill()
	FillEvenOdd()
}

// Canvas implements [comb.Surface] on a PDF page.
//
// PDF fill colours have no alpha channel, so translucent comb colours are
// flattened against a white background.  Overlapping teeth therefore do
// not darken each other as they do in the raster output.
type Canvas struct {
	Page Page
}

// Save emits a "q" operator.
func (c *Canvas) Save() { c.Page.PushGraphicsState() }

// Restore emits a "Q" operator.
func (c *Canvas) Restore() { c.Page.PopGraphicsState() }

// BeginPath does nothing, since PDF paths are consumed by the painting
// operators.
func (c *Canvas) BeginPath() {}

func (c *Canvas) MoveTo(p vec.Vec2) { c.Page.MoveTo(p.X, p.Y) }

func (c *Canvas) LineTo(p vec.Vec2) { c.Page.LineTo(p.X, p.Y) }

func (c *Canvas) ClosePath() { c.Page.ClosePath() }

// Fill paints the current path with the nonzero winding rule.
func (c *Canvas) Fill(col comb.Color) {
	c.Page.SetFillColor(flatten(col))
	c.Page.Fill()
}

// FillOutline paints the glyph contours with the even-odd rule, using the
// given gray level.
func (c *Canvas) FillOutline(contours []comb.Contour, gray float64) {
	c.Page.SetFillColor(color.DeviceGray(gray))
	n := 0
	for _, cont := range contours {
		for cmd, pts := range cont.Path().Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				c.Page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				c.Page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				c.Page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				c.Page.ClosePath()
			}
			n++
		}
	}
	if n > 0 {
		c.Page.FillEvenOdd()
	}
}

// flatten composites col onto white and returns the opaque result.
func flatten(col comb.Color) color.Color {
	a := col.Alpha
	if !(a >= 0) {
		a = 0
	} else if a > 1 {
		a = 1
	}
	mix := func(v uint8) float64 {
		return 1 - a + a*float64(v)/255
	}
	return color.DeviceRGB{mix(col.R), mix(col.G), mix(col.B)}
}

// Options controls the page layout used by [WriteFile].
type Options struct {
	// Width and Height give the page size in PDF points.
	Width, Height float64

	// Margin is the minimal distance between the glyph box and the page
	// edge, in PDF points.
	Margin float64

	// Outline is the gray level of the glyph fill.  Negative values
	// disable the outline.
	Outline float64
}

// WriteFile creates a single-page PDF file showing the contours and their
// curvature combs.  The rectangle box, given in the coordinates of the
// contours, is scaled to fit the page.
func WriteFile(fname string, contours []comb.Contour, box rect.Rect, opt Options, r *comb.Renderer) (comb.Stats, error) {
	paper := &pdf.Rectangle{URx: opt.Width, URy: opt.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return comb.Stats{}, err
	}

	stats := Draw(page, contours, box, opt, r)
	if err := page.Close(); err != nil {
		return stats, err
	}
	return stats, nil
}

// Draw writes the outline and the combs to p.  PDF user space is y-up,
// like font design space, so only scaling and translation are needed.
func Draw(p Page, contours []comb.Contour, box rect.Rect, opt Options, r *comb.Renderer) comb.Stats {
	c := &Canvas{Page: p}
	c.Save()
	c.Page.Transform(fit(box, opt))
	if opt.Outline >= 0 {
		c.FillOutline(contours, opt.Outline)
	}
	stats := r.Draw(c, contours)
	c.Restore()
	return stats
}

// fit maps box into the page area inside the margins, keeping the aspect
// ratio.
func fit(box rect.Rect, opt Options) matrix.Matrix {
	bw := box.URx - box.LLx
	bh := box.URy - box.LLy
	aw := opt.Width - 2*opt.Margin
	ah := opt.Height - 2*opt.Margin
	if !(bw > 0 && bh > 0 && aw > 0 && ah > 0) {
		return matrix.Identity
	}
	s := min(aw/bw, ah/bh)
	tx := (opt.Width-s*bw)/2 - s*box.LLx
	ty := (opt.Height-s*bh)/2 - s*box.LLy
	return matrix.Scale(s, s).Translate(tx, ty)
}

var _ comb.Surface = (*Canvas)(nil)
