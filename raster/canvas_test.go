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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/comb"
)

func newWhiteCanvas(w, h int) *Canvas {
	c := NewCanvas(image.NewRGBA(image.Rect(0, 0, w, h)))
	c.Clear(color.White)
	return c
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestCanvasFill(t *testing.T) {
	c := newWhiteCanvas(20, 20)

	c.BeginPath()
	c.MoveTo(vec.Vec2{X: 5, Y: 5})
	c.LineTo(vec.Vec2{X: 15, Y: 5})
	c.LineTo(vec.Vec2{X: 15, Y: 15})
	c.LineTo(vec.Vec2{X: 5, Y: 15})
	c.ClosePath()
	c.Fill(comb.Color{R: 255, Alpha: 1})

	if got := c.Img.RGBAAt(10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside: got %v", got)
	}
	if got := c.Img.RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside: got %v", got)
	}

	// the mask must be cleared between fills
	c.BeginPath()
	c.MoveTo(vec.Vec2{X: 0, Y: 0})
	c.LineTo(vec.Vec2{X: 2, Y: 0})
	c.LineTo(vec.Vec2{X: 2, Y: 2})
	c.ClosePath()
	c.Fill(comb.Color{B: 255, Alpha: 1})
	if got := c.Img.RGBAAt(10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("second fill changed the first shape: %v", got)
	}
}

func TestCanvasTranslucent(t *testing.T) {
	c := newWhiteCanvas(4, 4)
	c.BeginPath()
	c.MoveTo(vec.Vec2{X: 0, Y: 0})
	c.LineTo(vec.Vec2{X: 4, Y: 0})
	c.LineTo(vec.Vec2{X: 4, Y: 4})
	c.LineTo(vec.Vec2{X: 0, Y: 4})
	c.ClosePath()
	c.Fill(comb.Color{R: 128, G: 128, B: 128, Alpha: comb.ToothOpacity})

	// 0.4·128 + 0.6·255
	got := c.Img.RGBAAt(1, 1)
	if !near(got.R, 204, 2) || got.R != got.G || got.G != got.B || got.A != 255 {
		t.Errorf("got %v, want about (204, 204, 204, 255)", got)
	}
}

func TestCanvasSaveRestore(t *testing.T) {
	c := newWhiteCanvas(4, 4)
	c.Restore() // ignored

	c.Save()
	c.CTM = matrix.Scale(2, 2)
	c.Save()
	c.CTM = matrix.Identity
	c.Restore()
	if c.CTM != matrix.Scale(2, 2) {
		t.Errorf("got CTM %v after the inner Restore", c.CTM)
	}
	c.Restore()
	if c.CTM != matrix.Identity {
		t.Errorf("got CTM %v after the outer Restore", c.CTM)
	}
}

func TestFitTransform(t *testing.T) {
	box := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}
	m := FitTransform(box, 220, 120, 10)

	apply := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: m[0]*x + m[2]*y + m[4], Y: m[1]*x + m[3]*y + m[5]}
	}
	if got := apply(0, 0); got != (vec.Vec2{X: 10, Y: 110}) {
		t.Errorf("lower left maps to %v", got)
	}
	if got := apply(100, 50); got != (vec.Vec2{X: 210, Y: 10}) {
		t.Errorf("upper right maps to %v", got)
	}

	if got := FitTransform(rect.Rect{}, 100, 100, 10); got != matrix.Identity {
		t.Errorf("empty box gives %v", got)
	}
}

func TestCanvasFillOutline(t *testing.T) {
	ring := []comb.Contour{
		{Nodes: []comb.Node{
			{Kind: comb.LineCorner, X: 0, Y: 0},
			{Kind: comb.LineCorner, X: 20, Y: 0},
			{Kind: comb.LineCorner, X: 20, Y: 20},
			{Kind: comb.LineCorner, X: 0, Y: 20},
		}, Closed: true},
		{Nodes: []comb.Node{
			{Kind: comb.LineCorner, X: 5, Y: 5},
			{Kind: comb.LineCorner, X: 15, Y: 5},
			{Kind: comb.LineCorner, X: 15, Y: 15},
			{Kind: comb.LineCorner, X: 5, Y: 15},
		}, Closed: true},
	}

	c := newWhiteCanvas(20, 20)
	c.FillOutline(ring, color.Black)
	if got := c.Img.RGBAAt(10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("hole is painted: %v", got)
	}
	if got := c.Img.RGBAAt(2, 10); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("ring is not painted: %v", got)
	}
}

func TestCanvasComb(t *testing.T) {
	circle := comb.Contour{
		Nodes: []comb.Node{
			{Kind: comb.Smooth, X: 0, Y: 100},
			{Kind: comb.OffCurve, X: 55.23, Y: 100},
			{Kind: comb.OffCurve, X: 100, Y: 55.23},
			{Kind: comb.Smooth, X: 100, Y: 0},
			{Kind: comb.OffCurve, X: 100, Y: -55.23},
			{Kind: comb.OffCurve, X: 55.23, Y: -100},
			{Kind: comb.Smooth, X: 0, Y: -100},
			{Kind: comb.OffCurve, X: -55.23, Y: -100},
			{Kind: comb.OffCurve, X: -100, Y: -55.23},
			{Kind: comb.Smooth, X: -100, Y: 0},
			{Kind: comb.OffCurve, X: -100, Y: 55.23},
			{Kind: comb.OffCurve, X: -55.23, Y: 100},
		},
		Closed: true,
	}

	c := newWhiteCanvas(200, 200)
	c.CTM = FitTransform(rect.Rect{LLx: -400, LLy: -400, URx: 400, URy: 400}, 200, 200, 0)

	r := &comb.Renderer{Config: comb.StaticParams{Scale: 0, Exponent: 1}}
	stats := r.Draw(c, []comb.Contour{circle})
	if stats.Segments != 4 || stats.Teeth != 4*(comb.SamplesPerCurve-1) {
		t.Fatalf("got %+v", stats)
	}
	if len(c.saved) != 0 {
		t.Errorf("%d unbalanced Save calls", len(c.saved))
	}

	// The teeth of a circle point outwards.  With curvature 0.01 and scale
	// 2000 they extend to radius 120, i.e. 30 pixels from the centre.
	inside := c.Img.RGBAAt(100+27, 100)
	outside := c.Img.RGBAAt(100+33, 100)
	centre := c.Img.RGBAAt(100, 100)
	if inside == (color.RGBA{255, 255, 255, 255}) {
		t.Error("comb is not drawn")
	}
	if outside != (color.RGBA{255, 255, 255, 255}) || centre != outside {
		t.Errorf("comb is drawn outside the teeth: %v, %v", outside, centre)
	}
}
