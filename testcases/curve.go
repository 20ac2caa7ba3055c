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

package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/comb"
)

var curveCases = []TestCase{
	{
		Name:     "arc",
		Contours: []comb.Contour{open(cs(0, 0), o(0, 1000*kappa), o(1000*(1-kappa), 1000), cs(1000, 1000))},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		Name:     "circle",
		Contours: []comb.Contour{ellipse(500, 500, 400, 400, true)},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		Name:     "circle_clockwise",
		Contours: []comb.Contour{ellipse(500, 500, 400, 400, false)},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		Name:     "ellipse",
		Contours: []comb.Contour{ellipse(500, 500, 450, 200, true)},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		Name:     "squircle",
		Contours: []comb.Contour{squircle(500, 500, 400, 0.9)},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		Name:     "s_curve",
		Contours: []comb.Contour{open(cs(100, 100), o(900, 100), o(100, 900), cs(900, 900))},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		Name:     "flat",
		Contours: []comb.Contour{open(cs(0, 500), o(333, 520), o(667, 480), cs(1000, 500))},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		// the control polygon crosses itself, giving a cusp-like spike
		Name:     "cusp",
		Contours: []comb.Contour{open(c(100, 100), o(1000, 900), o(0, 900), c(900, 100))},
		Box:      em,
		Width:    256,
		Height:   256,
	},
	{
		Name:     "loop",
		Contours: []comb.Contour{open(c(0, 300), o(1300, 1000), o(-300, 1000), c(1000, 300))},
		Box:      rect.Rect{LLx: -500, LLy: -250, URx: 1500, URy: 1500},
		Width:    256,
		Height:   224,
	},
	{
		// two smooth joins with a curvature jump at each
		Name: "chain",
		Contours: []comb.Contour{open(
			cs(0, 0), o(200, 300), o(400, 300),
			cs(500, 200), o(600, 100), o(700, 0),
			cs(1000, 200),
		)},
		Box:    em,
		Width:  256,
		Height: 256,
	},
}
