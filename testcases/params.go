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

import "seehuhn.de/go/comb"

// paramsCases show the same outline with different comb settings.
var paramsCases = []TestCase{
	{
		Name:     "scale_min",
		Contours: []comb.Contour{squircle(500, 500, 300, 0.9)},
		Box:      em,
		Width:    256,
		Height:   256,
		Params:   comb.Params{Scale: comb.MinScale, Exponent: 1},
	},
	{
		Name:     "scale_max",
		Contours: []comb.Contour{squircle(500, 500, 300, 0.9)},
		Box:      em,
		Width:    256,
		Height:   256,
		Params:   comb.Params{Scale: comb.MaxScale, Exponent: 1},
	},
	{
		Name:     "exponent_3",
		Contours: []comb.Contour{squircle(500, 500, 300, 0.9)},
		Box:      em,
		Width:    256,
		Height:   256,
		Params:   comb.Params{Scale: comb.DefaultScale, Exponent: 3},
	},
	{
		Name:     "exponent_max",
		Contours: []comb.Contour{squircle(500, 500, 300, 0.9)},
		Box:      em,
		Width:    256,
		Height:   256,
		Params:   comb.Params{Scale: comb.DefaultScale, Exponent: comb.MaxExponent},
	},
	{
		// out of range values are clamped to scale 100, exponent 1
		Name:     "clamped",
		Contours: []comb.Contour{squircle(500, 500, 300, 0.9)},
		Box:      em,
		Width:    256,
		Height:   256,
		Params:   comb.Params{Scale: 500, Exponent: -2},
	},
}
