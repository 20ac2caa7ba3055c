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

// Package testcases provides glyph outlines for testing and comparing the
// comb renderers.
package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/comb"
)

// TestCase defines a single comb rendering test.
type TestCase struct {
	Name     string         // lowercase a-z, 0-9 and _ only
	Contours []comb.Contour // the outline, in font units (y up)
	Box      rect.Rect      // the part of design space shown in the image
	Width    int            // image width in pixels
	Height   int            // image height in pixels
	Params   comb.Params    // zero value means comb.DefaultParams
}

// Renderer returns a comb renderer which uses the parameters of the test
// case.
func (tc TestCase) Renderer(log comb.Logger) *comb.Renderer {
	p := tc.Params
	if p == (comb.Params{}) {
		p = comb.DefaultParams
	}
	return &comb.Renderer{Config: comb.StaticParams(p), Log: log}
}

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

// Node constructors.  The names follow the node type codes of the layer
// format.
func c(x, y float64) comb.Node  { return comb.Node{Kind: comb.Corner, X: x, Y: y} }
func cs(x, y float64) comb.Node { return comb.Node{Kind: comb.Smooth, X: x, Y: y} }
func l(x, y float64) comb.Node  { return comb.Node{Kind: comb.LineCorner, X: x, Y: y} }
func o(x, y float64) comb.Node  { return comb.Node{Kind: comb.OffCurve, X: x, Y: y} }
func q(x, y float64) comb.Node  { return comb.Node{Kind: comb.QCurve, X: x, Y: y} }

func closed(nodes ...comb.Node) comb.Contour {
	return comb.Contour{Nodes: nodes, Closed: true}
}

func open(nodes ...comb.Node) comb.Contour {
	return comb.Contour{Nodes: nodes}
}

// ellipse returns a closed contour made of four cubic arcs.  The contour
// runs counter-clockwise if ccw is set, clockwise otherwise.
func ellipse(cx, cy, rx, ry float64, ccw bool) comb.Contour {
	kx, ky := kappa*rx, kappa*ry
	if ccw {
		return closed(
			cs(cx+rx, cy), o(cx+rx, cy+ky), o(cx+kx, cy+ry),
			cs(cx, cy+ry), o(cx-kx, cy+ry), o(cx-rx, cy+ky),
			cs(cx-rx, cy), o(cx-rx, cy-ky), o(cx-kx, cy-ry),
			cs(cx, cy-ry), o(cx+kx, cy-ry), o(cx+rx, cy-ky),
		)
	}
	return closed(
		cs(cx+rx, cy), o(cx+rx, cy-ky), o(cx+kx, cy-ry),
		cs(cx, cy-ry), o(cx-kx, cy-ry), o(cx-rx, cy-ky),
		cs(cx-rx, cy), o(cx-rx, cy+ky), o(cx-kx, cy+ry),
		cs(cx, cy+ry), o(cx+kx, cy+ry), o(cx+rx, cy+ky),
	)
}

// squircle is a rounded square whose handles are longer than those of a
// circle, so that the curvature varies along each arc.
func squircle(cx, cy, r, k float64) comb.Contour {
	h := k * r
	return closed(
		cs(cx+r, cy), o(cx+r, cy+h), o(cx+h, cy+r),
		cs(cx, cy+r), o(cx-h, cy+r), o(cx-r, cy+h),
		cs(cx-r, cy), o(cx-r, cy-h), o(cx-h, cy-r),
		cs(cx, cy-r), o(cx+h, cy-r), o(cx+r, cy-h),
	)
}

// em is the default view: a 1000 unit em square with some room for the
// comb teeth.
var em = rect.Rect{LLx: -250, LLy: -250, URx: 1250, URy: 1250}
