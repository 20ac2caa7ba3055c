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

package pdfcanvas

import (
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/comb"
)

// fakePage records the content stream operators it receives.
type fakePage struct {
	ops    []string
	colors []color.Color
	ctm    []matrix.Matrix
}

func (p *fakePage) PushGraphicsState()  { p.ops = append(p.ops, "q") }
func (p *fakePage) PopGraphicsState()   { p.ops = append(p.ops, "Q") }
func (p *fakePage) MoveTo(x, y float64) { p.ops = append(p.ops, "m") }
func (p *fakePage) LineTo(x, y float64) { p.ops = append(p.ops, "l") }
func (p *fakePage) ClosePath()          { p.ops = append(p.ops, "h") }
func (p *fakePage) Fill()               { p.ops = append(p.ops, "f") }
func (p *fakePage) FillEvenOdd()        { p.ops = append(p.ops, "f*") }

func (p *fakePage) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.ops = append(p.ops, "c")
}

func (p *fakePage) Transform(m matrix.Matrix) {
	p.ops = append(p.ops, "cm")
	p.ctm = append(p.ctm, m)
}

func (p *fakePage) SetFillColor(c color.Color) {
	p.ops = append(p.ops, "sc")
	p.colors = append(p.colors, c)
}

func TestFlatten(t *testing.T) {
	cases := []struct {
		in   comb.Color
		want [3]float64
	}{
		{comb.Color{R: 255, G: 0, B: 0, Alpha: 1}, [3]float64{1, 0, 0}},
		{comb.Color{R: 0, G: 0, B: 0, Alpha: 0}, [3]float64{1, 1, 1}},
		{comb.Color{R: 0, G: 255, B: 0, Alpha: 0.4}, [3]float64{0.6, 1, 0.6}},
		{comb.Color{R: 0, G: 0, B: 0, Alpha: math.NaN()}, [3]float64{1, 1, 1}},
	}
	for _, c := range cases {
		got := flatten(c.in).(color.DeviceRGB)
		for i := range 3 {
			if math.Abs(got[i]-c.want[i]) > 1e-12 {
				t.Errorf("%v: got %v, want %v", c.in, got, c.want)
				break
			}
		}
	}
}

func TestDraw(t *testing.T) {
	contour := comb.Contour{
		Nodes: []comb.Node{
			{Kind: comb.Smooth, X: 0, Y: 0},
			{Kind: comb.OffCurve, X: 0, Y: 55.23},
			{Kind: comb.OffCurve, X: 44.77, Y: 100},
			{Kind: comb.Smooth, X: 100, Y: 100},
			{Kind: comb.LineCorner, X: 100, Y: 0},
		},
		Closed: true,
	}
	box := rect.Rect{URx: 100, URy: 100}
	opt := Options{Width: 300, Height: 200, Margin: 50, Outline: 0.8}

	p := &fakePage{}
	stats := Draw(p, []comb.Contour{contour}, box, opt, &comb.Renderer{})
	if stats.Teeth != comb.SamplesPerCurve-1 {
		t.Fatalf("got %+v", stats)
	}

	ops := strings.Join(p.ops, " ")
	if !strings.HasPrefix(ops, "q cm sc m c l l h f* q ") || !strings.HasSuffix(ops, " Q Q") {
		t.Errorf("unexpected operator sequence %q...", ops[:min(len(ops), 60)])
	}
	if n := strings.Count(ops, "m l l l h sc f"); n != stats.Teeth {
		t.Errorf("got %d teeth in the content stream, want %d", n, stats.Teeth)
	}

	// 100×100 box into the 200×100 area inside the margins
	if want := (matrix.Matrix{1, 0, 0, 1, 100, 50}); p.ctm[0] != want {
		t.Errorf("got transformation %v, want %v", p.ctm[0], want)
	}
	if g, ok := p.colors[0].(color.DeviceGray); !ok || float64(g) != 0.8 {
		t.Errorf("outline colour %v", p.colors[0])
	}
}

func TestDrawNoOutline(t *testing.T) {
	p := &fakePage{}
	opt := Options{Width: 100, Height: 100, Outline: -1}
	Draw(p, nil, rect.Rect{}, opt, &comb.Renderer{})

	ops := strings.Join(p.ops, " ")
	if ops != "q cm q Q Q" {
		t.Errorf("got %q", ops)
	}
	if p.ctm[0] != matrix.Identity {
		t.Errorf("empty box gives transformation %v", p.ctm[0])
	}
}
